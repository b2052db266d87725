package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-currency-swap/internal/logger"
	"github.com/sbilibin2017/gw-currency-swap/internal/models"
)

const quotesKey = "price_feed:quotes"

// ErrQuotesNotCached is returned when no quote set is cached or it has expired.
var ErrQuotesNotCached = errors.New("quotes not found in cache")

// QuoteCacheRepository caches the raw price feed in Redis.
type QuoteCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration of the cached quote set
}

// NewQuoteCacheRepository creates a repository with the given TTL.
func NewQuoteCacheRepository(client *redis.Client, expiration time.Duration) *QuoteCacheRepository {
	return &QuoteCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetQuotes returns the cached quote set.
func (r *QuoteCacheRepository) GetQuotes(ctx context.Context) ([]models.PriceQuote, error) {
	val, err := r.client.Get(ctx, quotesKey).Bytes()
	if err != nil {
		logger.Log.Infow("quote cache read",
			"key", quotesKey,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return nil, ErrQuotesNotCached
		}
		return nil, err
	}

	var quotes []models.PriceQuote
	if err := json.Unmarshal(val, &quotes); err != nil {
		logger.Log.Infow("quote cache decode",
			"key", quotesKey,
			"size", len(val),
			"error", err,
		)
		return nil, fmt.Errorf("decode cached quotes: %w", err)
	}

	logger.Log.Infow("quote cache read",
		"key", quotesKey,
		"result", len(quotes),
		"error", nil,
	)
	return quotes, nil
}

// SetQuotes stores the quote set with the configured expiration.
func (r *QuoteCacheRepository) SetQuotes(ctx context.Context, quotes []models.PriceQuote) error {
	data, err := json.Marshal(quotes)
	if err != nil {
		return err
	}
	err = r.client.Set(ctx, quotesKey, data, r.exp).Err()

	logger.Log.Infow("quote cache write",
		"key", quotesKey,
		"quotes", len(quotes),
		"error", err,
	)
	return err
}

// DeleteQuotes removes the cached quote set.
func (r *QuoteCacheRepository) DeleteQuotes(ctx context.Context) error {
	err := r.client.Del(ctx, quotesKey).Err()

	logger.Log.Infow("quote cache delete",
		"key", quotesKey,
		"error", err,
	)
	return err
}
