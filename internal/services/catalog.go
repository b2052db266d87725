package services

//go:generate mockgen -source=catalog.go -destination=catalog_mock_test.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"sync/atomic"

	"github.com/sbilibin2017/gw-currency-swap/internal/logger"
	"github.com/sbilibin2017/gw-currency-swap/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultIconBaseURL is the location icon references are synthesized against.
const DefaultIconBaseURL = "https://raw.githubusercontent.com/Switcheo/token-icons/main/tokens"

var (
	// ErrFeed is returned when the price feed is unreachable or delivers malformed data.
	ErrFeed = errors.New("price feed unavailable")
	// ErrMalformedQuotes is the ErrFeed case where quotes arrived but could not be ingested.
	ErrMalformedQuotes = fmt.Errorf("%w: malformed quotes", ErrFeed)
)

// PriceFeed fetches the raw, unreduced quote list from an upstream source.
type PriceFeed interface {
	FetchQuotes(ctx context.Context) ([]models.PriceQuote, error)
}

// FeedInvalidator is implemented by feeds that keep a copy of delivered quotes
// and can drop it when the copy turns out to be unusable.
type FeedInvalidator interface {
	Invalidate(ctx context.Context) error
}

type catalogSnapshot struct {
	instruments []models.Instrument
	bySymbol    map[string]models.Instrument
}

// PriceCatalog keeps one authoritative price per instrument.
// Readers always observe a complete snapshot; ingestion swaps it atomically.
type PriceCatalog struct {
	iconBaseURL string
	snapshot    atomic.Pointer[catalogSnapshot]
}

// NewPriceCatalog creates an empty catalog.
func NewPriceCatalog(iconBaseURL string) *PriceCatalog {
	if iconBaseURL == "" {
		iconBaseURL = DefaultIconBaseURL
	}
	c := &PriceCatalog{iconBaseURL: strings.TrimRight(iconBaseURL, "/")}
	c.snapshot.Store(&catalogSnapshot{bySymbol: map[string]models.Instrument{}})
	return c
}

// Ingest reduces quotes to the latest quote per symbol, drops non-positive prices
// and replaces the catalog contents. On malformed input the catalog is left untouched.
func (c *PriceCatalog) Ingest(quotes []models.PriceQuote) ([]models.Instrument, error) {
	latest := make(map[string]models.PriceQuote, len(quotes))
	for i, q := range quotes {
		if q.Currency == "" {
			return nil, fmt.Errorf("%w: quote %d has no currency", ErrMalformedQuotes, i)
		}
		if math.IsNaN(q.Price) || math.IsInf(q.Price, 0) {
			return nil, fmt.Errorf("%w: quote %d for %s has a non-finite price", ErrMalformedQuotes, i, q.Currency)
		}
		// equal timestamps keep the quote seen first
		if existing, ok := latest[q.Currency]; !ok || q.Date.After(existing.Date) {
			latest[q.Currency] = q
		}
	}

	instruments := make([]models.Instrument, 0, len(latest))
	for symbol, q := range latest {
		if q.Price <= 0 {
			continue
		}
		instruments = append(instruments, models.Instrument{
			Symbol:  symbol,
			Price:   q.Price,
			IconRef: c.iconRef(symbol),
		})
	}
	sortInstruments(instruments)

	bySymbol := make(map[string]models.Instrument, len(instruments))
	for _, inst := range instruments {
		bySymbol[inst.Symbol] = inst
	}
	c.snapshot.Store(&catalogSnapshot{instruments: instruments, bySymbol: bySymbol})

	logger.Log.Infow("price catalog updated", "quotes", len(quotes), "instruments", len(instruments))

	return slices.Clone(instruments), nil
}

// Refresh fetches the feed and ingests it. Any failure is reported as ErrFeed
// and the previous contents are kept. Quotes that fail ingestion are dropped
// from feeds implementing FeedInvalidator.
func (c *PriceCatalog) Refresh(ctx context.Context, feed PriceFeed) ([]models.Instrument, error) {
	quotes, err := feed.FetchQuotes(ctx)
	if err != nil {
		logger.Log.Errorw("failed to fetch price feed", "error", err)
		if errors.Is(err, ErrFeed) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrFeed, err)
	}

	instruments, err := c.Ingest(quotes)
	if err != nil {
		logger.Log.Errorw("failed to ingest price feed", "quotes", len(quotes), "error", err)
		if inv, ok := feed.(FeedInvalidator); ok {
			if invErr := inv.Invalidate(ctx); invErr != nil {
				logger.Log.Errorw("failed to invalidate cached quotes", "error", invErr)
			}
		}
		return nil, err
	}
	return instruments, nil
}

// Lookup returns the instrument for symbol.
func (c *PriceCatalog) Lookup(symbol string) (models.Instrument, bool) {
	inst, ok := c.snapshot.Load().bySymbol[symbol]
	return inst, ok
}

// Instruments returns all instruments ordered by symbol.
func (c *PriceCatalog) Instruments() []models.Instrument {
	return slices.Clone(c.snapshot.Load().instruments)
}

func (c *PriceCatalog) iconRef(symbol string) string {
	return fmt.Sprintf("%s/%s.svg", c.iconBaseURL, symbol)
}

// sortInstruments orders by locale-aware symbol comparison, falling back to
// byte order so the result is deterministic.
func sortInstruments(instruments []models.Instrument) {
	col := collate.New(language.Und)
	slices.SortFunc(instruments, func(a, b models.Instrument) int {
		if c := col.CompareString(a.Symbol, b.Symbol); c != 0 {
			return c
		}
		return strings.Compare(a.Symbol, b.Symbol)
	})
}
