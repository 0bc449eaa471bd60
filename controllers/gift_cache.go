package controllers

import (
	"context"
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/becandrade6/wedding-gift-list/database"
	"github.com/becandrade6/wedding-gift-list/models"
)

// GiftCache keeps the latest snapshot of the gifts table so the public
// catalog reflects purchases made from other sessions within one poll
// interval. It replaces the per-view timers the catalog would otherwise
// scatter around.
type GiftCache struct {
	mu       sync.RWMutex
	gifts    []models.Gift
	fetch    func() ([]models.Gift, error)
	interval time.Duration
	cancel   context.CancelFunc
	done     chan struct{}
}

// Catalog is the shared snapshot used by the public gift handlers.
// It is set once at startup via InitCatalog.
var Catalog *GiftCache

const defaultPollInterval = 2500 * time.Millisecond

// InitCatalog builds the shared cache backed by the database and starts
// polling. Poll interval comes from GIFT_POLL_MS when set.
func InitCatalog(ctx context.Context) *GiftCache {
	interval := defaultPollInterval
	if s := os.Getenv("GIFT_POLL_MS"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			interval = time.Duration(v) * time.Millisecond
		}
	}
	Catalog = NewGiftCache(fetchGiftsFromDB, interval)
	Catalog.Start(ctx)
	return Catalog
}

func fetchGiftsFromDB() ([]models.Gift, error) {
	var gifts []models.Gift
	err := database.DB.Order("created_at ASC").Find(&gifts).Error
	return gifts, err
}

func NewGiftCache(fetch func() ([]models.Gift, error), interval time.Duration) *GiftCache {
	return &GiftCache{
		fetch:    fetch,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start fills the snapshot once and then refreshes it on every tick until
// the context is cancelled or Stop is called.
func (c *GiftCache) Start(ctx context.Context) {
	ctx, c.cancel = context.WithCancel(ctx)

	if err := c.Refresh(); err != nil {
		log.Printf("[catalog] initial fetch failed: %v", err)
	}

	go func() {
		defer close(c.done)
		tick := time.NewTicker(c.interval)
		defer tick.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-tick.C:
				if err := c.Refresh(); err != nil {
					log.Printf("[catalog] refresh failed: %v", err)
				}
			}
		}
	}()
}

// Stop cancels the polling goroutine and waits for it to exit.
func (c *GiftCache) Stop() {
	if c.cancel == nil {
		return
	}
	c.cancel()
	<-c.done
}

// Refresh re-reads the gifts table. On failure the previous snapshot is kept.
func (c *GiftCache) Refresh() error {
	gifts, err := c.fetch()
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.gifts = gifts
	c.mu.Unlock()
	return nil
}

// Gifts returns a copy of the current snapshot.
func (c *GiftCache) Gifts() []models.Gift {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Gift, len(c.gifts))
	copy(out, c.gifts)
	return out
}
