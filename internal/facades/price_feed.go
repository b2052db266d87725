package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-currency-swap/internal/logger"
	"github.com/sbilibin2017/gw-currency-swap/internal/models"
)

// DefaultPriceFeedURL serves the public price list.
const DefaultPriceFeedURL = "https://interview.switcheo.com/prices.json"

// PriceFeedHTTPFacade fetches the price list from an HTTP JSON endpoint.
type PriceFeedHTTPFacade struct {
	url        string
	httpClient *http.Client
}

// NewPriceFeedHTTPFacade creates a facade for url using a client with a 10s timeout.
func NewPriceFeedHTTPFacade(url string) *PriceFeedHTTPFacade {
	if url == "" {
		url = DefaultPriceFeedURL
	}
	return &PriceFeedHTTPFacade{
		url:        url,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchQuotes downloads and decodes the feed.
func (f *PriceFeedHTTPFacade) FetchQuotes(ctx context.Context) ([]models.PriceQuote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		logger.Log.Errorw("price feed request failed", "url", f.url, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("price feed returned unexpected status", "url", f.url, "status", resp.StatusCode)
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var quotes []models.PriceQuote
	if err := json.NewDecoder(resp.Body).Decode(&quotes); err != nil {
		logger.Log.Errorw("failed to decode price feed", "url", f.url, "error", err)
		return nil, fmt.Errorf("decode price feed: %w", err)
	}
	return quotes, nil
}
