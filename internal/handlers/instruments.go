package handlers

//go:generate mockgen -source=instruments.go -destination=instruments_mock_test.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-currency-swap/internal/logger"
	"github.com/sbilibin2017/gw-currency-swap/internal/models"
)

// InstrumentLister returns the current price catalog.
type InstrumentLister interface {
	Instruments() []models.Instrument
}

// InstrumentRefresher re-fetches the price feed.
type InstrumentRefresher interface {
	Refresh(ctx context.Context) ([]models.Instrument, error)
}

// NewListInstrumentsHandler returns an HTTP handler listing the swappable instruments.
// @Summary List instruments
// @Description Returns instruments with a positive latest price, ordered by symbol
// @Tags instruments
// @Produce json
// @Success 200 {object} models.InstrumentsResponse "Instruments"
// @Router /instruments [get]
func NewListInstrumentsHandler(catalog InstrumentLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.InstrumentsResponse{
			Instruments: catalog.Instruments(),
		})
	}
}

// NewRefreshInstrumentsHandler returns an HTTP handler that reloads the price feed.
// @Summary Refresh instruments
// @Description Fetches the price feed again. On failure the previous instruments are kept.
// @Tags instruments
// @Produce json
// @Success 200 {object} models.InstrumentsResponse "Instruments"
// @Failure 503 {object} models.ErrorResponse "Price feed unavailable"
// @Router /instruments/refresh [post]
func NewRefreshInstrumentsHandler(refresher InstrumentRefresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		instruments, err := refresher.Refresh(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to refresh instruments", "error", err)
			status := statusFor(err)
			writeError(w, status, errorMessage(err, status))
			return
		}

		writeJSON(w, http.StatusOK, models.InstrumentsResponse{Instruments: instruments})
	}
}
