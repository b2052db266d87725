package services

//go:generate mockgen -source=feed.go -destination=feed_mock_test.go -package=services

import (
	"context"

	"github.com/sbilibin2017/gw-currency-swap/internal/logger"
	"github.com/sbilibin2017/gw-currency-swap/internal/models"
)

// QuoteCache stores the last good raw quote set.
type QuoteCache interface {
	GetQuotes(ctx context.Context) ([]models.PriceQuote, error)
	SetQuotes(ctx context.Context, quotes []models.PriceQuote) error
	DeleteQuotes(ctx context.Context) error
}

// CachedPriceFeed serves quotes from the cache and falls back to the upstream feed.
type CachedPriceFeed struct {
	upstream PriceFeed
	cache    QuoteCache
}

// NewCachedPriceFeed wraps upstream with cache.
func NewCachedPriceFeed(upstream PriceFeed, cache QuoteCache) *CachedPriceFeed {
	return &CachedPriceFeed{upstream: upstream, cache: cache}
}

// FetchQuotes returns cached quotes when present, otherwise fetches and caches them.
func (f *CachedPriceFeed) FetchQuotes(ctx context.Context) ([]models.PriceQuote, error) {
	quotes, err := f.cache.GetQuotes(ctx)
	if err == nil && len(quotes) > 0 {
		return quotes, nil
	}

	quotes, err = f.upstream.FetchQuotes(ctx)
	if err != nil {
		logger.Log.Errorw("failed to fetch quotes from upstream feed", "error", err)
		return nil, err
	}

	if err := f.cache.SetQuotes(ctx, quotes); err != nil {
		logger.Log.Errorw("failed to cache quotes", "quotes", len(quotes), "error", err)
	}
	return quotes, nil
}

// Invalidate drops the cached quote set so the next fetch goes upstream.
func (f *CachedPriceFeed) Invalidate(ctx context.Context) error {
	return f.cache.DeleteQuotes(ctx)
}
