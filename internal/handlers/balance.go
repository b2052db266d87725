package handlers

//go:generate mockgen -source=balance.go -destination=balance_mock_test.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-currency-swap/internal/logger"
	"github.com/sbilibin2017/gw-currency-swap/internal/models"
)

// BalanceReader returns the balances known for a holder.
type BalanceReader interface {
	Balances(ctx context.Context, holder string) []models.HolderBalance
}

// BalanceRefresher reloads a holder's balances from the wallet store.
type BalanceRefresher interface {
	RefreshBalances(ctx context.Context, holder string) ([]models.HolderBalance, error)
}

// NewGetBalancesHandler returns an HTTP handler for a holder's balances.
// @Summary Get balances
// @Description Returns the holder's balances ordered by symbol
// @Tags balances
// @Produce json
// @Param holder path string true "Wallet identifier"
// @Success 200 {object} models.BalancesResponse "Balances"
// @Failure 400 {object} models.ErrorResponse "Missing holder"
// @Router /holders/{holder}/balances [get]
func NewGetBalancesHandler(reader BalanceReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		holder := holderFromRequest(r)
		if holder == "" {
			writeError(w, http.StatusBadRequest, "holder is required")
			return
		}

		writeJSON(w, http.StatusOK, models.BalancesResponse{
			Holder:   holder,
			Balances: reader.Balances(r.Context(), holder),
		})
	}
}

// NewRefreshBalancesHandler returns an HTTP handler that reloads a holder's balances.
// @Summary Refresh balances
// @Description Reloads balances from the wallet store and revalidates the open swap form
// @Tags balances
// @Produce json
// @Param holder path string true "Wallet identifier"
// @Success 200 {object} models.BalancesResponse "Balances"
// @Failure 400 {object} models.ErrorResponse "Missing holder"
// @Failure 501 {object} models.ErrorResponse "No wallet store configured"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /holders/{holder}/balances/refresh [post]
func NewRefreshBalancesHandler(refresher BalanceRefresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		holder := holderFromRequest(r)
		if holder == "" {
			writeError(w, http.StatusBadRequest, "holder is required")
			return
		}

		balances, err := refresher.RefreshBalances(r.Context(), holder)
		if err != nil {
			logger.Log.Errorw("failed to refresh balances", "holder", holder, "error", err)
			status := statusFor(err)
			writeError(w, status, errorMessage(err, status))
			return
		}

		writeJSON(w, http.StatusOK, models.BalancesResponse{Holder: holder, Balances: balances})
	}
}
