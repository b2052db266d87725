package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sbilibin2017/gw-currency-swap/internal/logger"
	"github.com/sbilibin2017/gw-currency-swap/internal/models"
)

// CatalogRefresher keeps a PriceCatalog up to date by polling a PriceFeed.
type CatalogRefresher struct {
	catalog  *PriceCatalog
	feed     PriceFeed
	interval time.Duration
	attempts int
	backoff  time.Duration

	listeners []func([]models.Instrument)

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewCatalogRefresher creates a refresher polling every interval. A zero interval
// disables polling; Refresh can still be called on demand.
func NewCatalogRefresher(catalog *PriceCatalog, feed PriceFeed, interval time.Duration) *CatalogRefresher {
	return &CatalogRefresher{
		catalog:  catalog,
		feed:     feed,
		interval: interval,
		attempts: 3,
		backoff:  time.Second,
	}
}

// OnRefresh registers fn to run after every successful refresh. Register
// listeners before Start.
func (r *CatalogRefresher) OnRefresh(fn func([]models.Instrument)) {
	r.listeners = append(r.listeners, fn)
}

// Refresh ingests the feed, retrying with exponential backoff. Malformed quotes
// are not retried.
func (r *CatalogRefresher) Refresh(ctx context.Context) ([]models.Instrument, error) {
	var lastErr error
	for i := 0; i < r.attempts; i++ {
		if i > 0 {
			delay := r.backoff << uint(i-1)
			logger.Log.Infow("retrying price feed refresh", "attempt", i+1, "delay", delay)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		instruments, err := r.catalog.Refresh(ctx, r.feed)
		if err == nil {
			for _, fn := range r.listeners {
				fn(instruments)
			}
			return instruments, nil
		}
		lastErr = err
		logger.Log.Warnw("price feed refresh attempt failed", "attempt", i+1, "error", err)
		if errors.Is(err, ErrMalformedQuotes) {
			break
		}
	}
	return nil, lastErr
}

// Start refreshes once and then keeps polling in the background until Stop.
// A failed first refresh is returned but polling continues.
func (r *CatalogRefresher) Start(ctx context.Context) error {
	ctx, r.cancel = context.WithCancel(ctx)

	_, err := r.Refresh(ctx)
	if err != nil {
		logger.Log.Errorw("initial price feed refresh failed", "error", err)
	}

	if r.interval <= 0 {
		return err
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				logger.Log.Info("price feed polling stopped")
				return
			case <-ticker.C:
				_, _ = r.Refresh(ctx)
			}
		}
	}()

	return err
}

// Stop ends background polling.
func (r *CatalogRefresher) Stop() {
	if r.cancel != nil {
		r.cancel()
		r.wg.Wait()
	}
}
