package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quote-request-service/internal/adapters/http/dto"
)

// TestConcurrent_CreateAndList verifies that concurrent submissions are all
// stored exactly once while readers list the store.
func TestConcurrent_CreateAndList(t *testing.T) {
	srv, store := newTestServer(t, serverConfig())

	const numGoroutines = 50

	var (
		wg      sync.WaitGroup
		created atomic.Int32
		listErr atomic.Int32
	)

	for i := range numGoroutines {
		wg.Add(2)

		go func() {
			defer wg.Done()

			body := fmt.Sprintf(`{"name":"Visitor %d","email":"v%d@example.com","message":"hello"}`, i, i)
			if w := serve(srv, http.MethodPost, "/api/quotes", body); w.Code == http.StatusCreated {
				created.Add(1)
			}
		}()

		go func() {
			defer wg.Done()

			if w := serve(srv, http.MethodGet, "/api/quotes", ""); w.Code != http.StatusOK {
				listErr.Add(1)
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, int32(numGoroutines), created.Load())
	assert.Zero(t, listErr.Load())
	assert.Equal(t, numGoroutines, store.Count())

	w := serve(srv, http.MethodGet, "/api/quotes", "")
	require.Equal(t, http.StatusOK, w.Code)

	var list struct {
		Data []dto.QuoteResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Data, numGoroutines)

	ids := make(map[string]struct{}, numGoroutines)
	for i, q := range list.Data {
		ids[q.ID] = struct{}{}

		if i > 0 {
			assert.False(t, q.CreatedAt.After(list.Data[i-1].CreatedAt), "list must be newest first")
		}
	}

	assert.Len(t, ids, numGoroutines, "ids must be unique")
}
