package facades

import (
	"context"
	"time"

	"github.com/sbilibin2017/gw-currency-swap/internal/logger"
	"github.com/sbilibin2017/gw-currency-swap/internal/models"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
)

// ExchangeRatesGRPCFacade reads prices from the exchanger gRPC service.
type ExchangeRatesGRPCFacade struct {
	client pb.ExchangeServiceClient
	now    func() time.Time
}

// NewExchangeRatesGRPCFacade creates a new facade with a gRPC client.
func NewExchangeRatesGRPCFacade(client pb.ExchangeServiceClient) *ExchangeRatesGRPCFacade {
	return &ExchangeRatesGRPCFacade{client: client, now: time.Now}
}

// FetchQuotes turns the exchanger's current rates into quotes observed now.
func (f *ExchangeRatesGRPCFacade) FetchQuotes(ctx context.Context) ([]models.PriceQuote, error) {
	resp, err := f.client.GetExchangeRates(ctx, &pb.Empty{})
	if err != nil {
		logger.Log.Errorw("failed to fetch exchange rates via gRPC", "error", err)
		return nil, err
	}

	observed := f.now().UTC()
	quotes := make([]models.PriceQuote, 0, len(resp.Rates))
	for currency, rate := range resp.Rates {
		quotes = append(quotes, models.PriceQuote{
			Currency: currency,
			Date:     observed,
			Price:    float64(rate),
		})
	}
	return quotes, nil
}
