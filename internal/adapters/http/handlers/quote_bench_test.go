package handlers

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/quote-request-service/internal/adapters/store/memory"
	"github.com/jsamuelsen/quote-request-service/internal/app"
)

const benchBody = `{"name":"Ada","email":"ada@example.com","service":"LED Signage","message":"Storefront sign"}`

func benchRouter(b *testing.B) *gin.Engine {
	b.Helper()

	service := app.NewQuoteService(app.QuoteServiceConfig{
		Store:      memory.NewQuoteStore(memory.QuoteStoreConfig{}),
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		Registerer: prometheus.NewRegistry(),
	})

	router := gin.New()
	NewQuoteHandler(service).RegisterQuoteRoutes(router.Group("/api"))

	return router
}

func BenchmarkQuoteHandler_Create(b *testing.B) {
	router := benchRouter(b)

	b.ReportAllocs()

	for b.Loop() {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/quotes", strings.NewReader(benchBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
	}
}

func BenchmarkQuoteHandler_List(b *testing.B) {
	for _, size := range []int{10, 1000} {
		b.Run(fmt.Sprintf("quotes=%d", size), func(b *testing.B) {
			router := benchRouter(b)

			for range size {
				req := httptest.NewRequest(http.MethodPost, "/api/quotes", strings.NewReader(benchBody))
				req.Header.Set("Content-Type", "application/json")
				router.ServeHTTP(httptest.NewRecorder(), req)
			}

			b.ReportAllocs()

			for b.Loop() {
				router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/quotes", nil))
			}
		})
	}
}
