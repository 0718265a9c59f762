package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "same-key", loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "value" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_UsesCachedValueAfterFirstLoad(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		return "cached", nil
	}

	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("first GetOrLoad error: %v", err)
	}
	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("second GetOrLoad error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")

func TestLoad_TypedValueAndExpiry(t *testing.T) {
	t.Parallel()

	store := NewStore(20 * time.Millisecond)
	var calls atomic.Int32
	loader := func(context.Context) (map[string]string, error) {
		calls.Add(1)
		return map[string]string{"4046": "Patrick Mahomes"}, nil
	}

	got, err := Load(context.Background(), store, "players:nfl", loader)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got["4046"] != "Patrick Mahomes" {
		t.Fatalf("unexpected value: %+v", got)
	}
	if _, err := Load(context.Background(), store, "players:nfl", loader); err != nil {
		t.Fatalf("second Load error: %v", err)
	}
	if calls.Load() != 1 {
		t.Fatalf("loader called %d times, want 1", calls.Load())
	}

	time.Sleep(30 * time.Millisecond)
	if _, err := Load(context.Background(), store, "players:nfl", loader); err != nil {
		t.Fatalf("Load after expiry error: %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("loader called %d times after expiry, want 2", calls.Load())
	}
}

func TestLoad_PropagatesLoaderError(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	want := errors.New("upstream down")
	_, err := Load(context.Background(), store, "k", func(context.Context) (int, error) {
		return 0, want
	})
	if !errors.Is(err, want) {
		t.Fatalf("expected loader error, got %v", err)
	}
	if _, ok := store.Get(context.Background(), "k"); ok {
		t.Fatalf("failed load must not be cached")
	}
}

func TestStore_ExpiryAndPrefixDelete(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 12, 14, 18, 0, 0, 0, time.UTC)
	store := NewStore(time.Minute)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	store.Set(ctx, "team:list:league=1", 1)
	store.Set(ctx, "team:list:league=2", 2)
	store.Set(ctx, "league:list", 3)
	if store.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", store.Len())
	}

	store.DeletePrefix(ctx, "team:")
	if _, ok := store.Get(ctx, "team:list:league=1"); ok {
		t.Fatalf("expected team keys to be dropped")
	}
	if _, ok := store.Get(ctx, "league:list"); !ok {
		t.Fatalf("expected league key to survive a team prefix delete")
	}

	now = now.Add(time.Minute)
	if _, ok := store.Get(ctx, "league:list"); ok {
		t.Fatalf("expected entry to expire at its ttl")
	}
	if store.Len() != 0 {
		t.Fatalf("expected no live entries, got %d", store.Len())
	}
}

func TestStore_ZeroTTLNeverExpires(t *testing.T) {
	t.Parallel()

	now := time.Now()
	store := NewStore(0)
	store.now = func() time.Time { return now }
	store.Set(context.Background(), "players:nfl", "cached")

	now = now.Add(24 * time.Hour)
	if _, ok := store.Get(context.Background(), "players:nfl"); !ok {
		t.Fatalf("expected entry without ttl to persist")
	}
}
