package rate

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewScheduler_Constructs(t *testing.T) {
	s := NewScheduler(NewCache(new(MockRateFetcher), nil), 10*time.Second)
	require.NotNil(t, s)
	require.Nil(t, s.sched)
}

func TestScheduler_Shutdown_NoScheduler_ReturnsNil(t *testing.T) {
	s := NewScheduler(NewCache(new(MockRateFetcher), nil), 10*time.Second)
	err := s.Shutdown()
	require.NoError(t, err)
	require.Nil(t, s.sched)
}

func TestScheduler_Start_And_ContextCancel_ShutsDown(t *testing.T) {
	s := NewScheduler(NewCache(new(MockRateFetcher), nil), 10*time.Second)
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, s.Start(ctx))
	require.NotNil(t, s.sched)

	// Cancel and ensure Shutdown is called by goroutine
	cancel()

	// Wait until s.sched becomes nil (Shutdown sets it to nil)
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if s.sched == nil {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	require.Nil(t, s.sched, "expected scheduler to be shutdown after ctx cancel")
}

func TestScheduler_Shutdown_AfterStart_Idempotent(t *testing.T) {
	s := NewScheduler(NewCache(new(MockRateFetcher), nil), 10*time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, s.Start(ctx))
	require.NotNil(t, s.sched)

	require.NoError(t, s.Shutdown())
	require.Nil(t, s.sched)

	// Second shutdown should be a no-op and return nil
	require.NoError(t, s.Shutdown())
}

func TestFlushCachedRates_EmptiesTheCache(t *testing.T) {
	mockFetcher := new(MockRateFetcher)
	cache := NewCache(mockFetcher, nil)

	mockFetcher.On("FetchRate", mock.Anything, mock.Anything, mock.Anything).
		Return(decimal.RequireFromString("1.5"), nil)

	_, err := cache.GetRate(context.Background(), "USD", "EUR")
	require.NoError(t, err)
	require.Equal(t, 1, cache.Len())

	FlushCachedRates("test-exec", cache)
	require.Equal(t, 0, cache.Len())

	// Running against an already empty cache is fine.
	FlushCachedRates("test-exec", cache)
	require.Equal(t, 0, cache.Len())
}
