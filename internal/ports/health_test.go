package ports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubChecker implements HealthChecker for testing.
type stubChecker struct {
	name string
	err  error
}

func (s *stubChecker) Name() string {
	return s.name
}

func (s *stubChecker) Check(context.Context) error {
	return s.err
}

// blockingChecker waits for the context to end or for delay to pass.
type blockingChecker struct {
	name  string
	delay time.Duration
}

func (b *blockingChecker) Name() string {
	return b.name
}

func (b *blockingChecker) Check(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(b.delay):
		return nil
	}
}

func TestNewHealthRegistry(t *testing.T) {
	registry := NewHealthRegistry()

	require.NotNil(t, registry)
	assert.Empty(t, registry.checkers)
	assert.Equal(t, DefaultCheckTimeout, registry.timeout)
}

func TestRegister_DuplicateName(t *testing.T) {
	registry := NewHealthRegistry()

	require.NoError(t, registry.Register(&stubChecker{name: "quote-store"}))

	err := registry.Register(&stubChecker{name: "quote-store"})

	require.ErrorIs(t, err, ErrDuplicateChecker)
	assert.Contains(t, err.Error(), "quote-store")
	assert.Len(t, registry.checkers, 1)
}

func TestCheckAll_NoCheckers(t *testing.T) {
	result := NewHealthRegistry().CheckAll(context.Background())

	require.NotNil(t, result)
	assert.Equal(t, HealthStatusHealthy, result.Status)
	assert.NotNil(t, result.Checks)
	assert.Empty(t, result.Checks)
	assert.False(t, result.Timestamp.IsZero())
}

func TestCheckAll(t *testing.T) {
	tests := []struct {
		name     string
		checkers []HealthChecker
		expected HealthStatus
		messages map[string]string
	}{
		{
			name: "all healthy",
			checkers: []HealthChecker{
				&stubChecker{name: "quote-store"},
				&stubChecker{name: "telemetry"},
			},
			expected: HealthStatusHealthy,
			messages: map[string]string{"quote-store": "", "telemetry": ""},
		},
		{
			name: "one unhealthy",
			checkers: []HealthChecker{
				&stubChecker{name: "quote-store"},
				&stubChecker{name: "telemetry", err: errors.New("exporter unreachable")},
			},
			expected: HealthStatusUnhealthy,
			messages: map[string]string{"quote-store": "", "telemetry": "exporter unreachable"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := NewHealthRegistry()
			for _, c := range tt.checkers {
				require.NoError(t, registry.Register(c))
			}

			result := registry.CheckAll(context.Background())

			assert.Equal(t, tt.expected, result.Status)
			require.Len(t, result.Checks, len(tt.messages))

			for name, msg := range tt.messages {
				assert.Equal(t, msg, result.Checks[name].Message, name)
			}
		})
	}
}

func TestCheckAll_ContextCancelled(t *testing.T) {
	registry := NewHealthRegistry()
	require.NoError(t, registry.Register(&blockingChecker{name: "slow", delay: time.Second}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := registry.CheckAll(ctx)

	assert.Equal(t, HealthStatusUnhealthy, result.Status)
	assert.Contains(t, result.Checks["slow"].Message, "context canceled")
}

func TestCheckAll_CheckTimeout(t *testing.T) {
	registry := NewHealthRegistry()
	registry.timeout = 10 * time.Millisecond
	require.NoError(t, registry.Register(&blockingChecker{name: "slow", delay: time.Second}))

	result := registry.CheckAll(context.Background())

	assert.Equal(t, HealthStatusUnhealthy, result.Status)
	assert.Contains(t, result.Checks["slow"].Message, "deadline exceeded")
}
