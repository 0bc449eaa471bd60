package controllers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/becandrade6/wedding-gift-list/models"
)

func TestGiftCacheRefreshKeepsSnapshotOnError(t *testing.T) {
	var fail atomic.Bool
	cache := NewGiftCache(func() ([]models.Gift, error) {
		if fail.Load() {
			return nil, errors.New("db down")
		}
		return []models.Gift{{ID: 1, Name: "Cafeteira"}}, nil
	}, time.Hour)

	if err := cache.Refresh(); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if got := cache.Gifts(); len(got) != 1 {
		t.Fatalf("expected 1 gift, got %d", len(got))
	}

	fail.Store(true)
	if err := cache.Refresh(); err == nil {
		t.Fatal("expected refresh error")
	}
	if got := cache.Gifts(); len(got) != 1 {
		t.Errorf("snapshot lost after failed refresh, got %d gifts", len(got))
	}
}

func TestGiftCacheStartStop(t *testing.T) {
	var calls atomic.Int32
	cache := NewGiftCache(func() ([]models.Gift, error) {
		calls.Add(1)
		return nil, nil
	}, 10*time.Millisecond)

	cache.Start(context.Background())

	deadline := time.After(2 * time.Second)
	for calls.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("poller made only %d fetches", calls.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}

	cache.Stop()
	after := calls.Load()
	time.Sleep(50 * time.Millisecond)
	if calls.Load() != after {
		t.Error("poller kept fetching after Stop")
	}
}

func TestGiftCacheStopWithoutStart(t *testing.T) {
	cache := NewGiftCache(func() ([]models.Gift, error) { return nil, nil }, time.Hour)
	cache.Stop() // must not block or panic
}

func TestGiftCacheGiftsReturnsCopy(t *testing.T) {
	cache := NewGiftCache(func() ([]models.Gift, error) {
		return []models.Gift{{ID: 1, Name: "Cafeteira"}}, nil
	}, time.Hour)
	if err := cache.Refresh(); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	got := cache.Gifts()
	got[0].Name = "mutated"

	if cache.Gifts()[0].Name != "Cafeteira" {
		t.Error("caller mutation leaked into the snapshot")
	}
}
