package handlers

//go:generate mockgen -source=form.go -destination=form_mock_test.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-currency-swap/internal/logger"
	"github.com/sbilibin2017/gw-currency-swap/internal/models"
)

// SwapStateReader returns the swap form and submission of a holder.
type SwapStateReader interface {
	State(ctx context.Context, holder string) models.SwapStateResponse
}

// SwapFormUpdater applies partial form edits.
type SwapFormUpdater interface {
	UpdateForm(ctx context.Context, holder string, edit models.UpdateFormRequest) (models.SwapStateResponse, error)
}

// DirectionSwapper flips the trade direction.
type DirectionSwapper interface {
	SwapDirection(ctx context.Context, holder string) models.SwapStateResponse
}

// MaxBalanceFiller fills in the whole source balance.
type MaxBalanceFiller interface {
	UseMaxBalance(ctx context.Context, holder string) models.SwapStateResponse
}

// NewGetSwapStateHandler returns an HTTP handler for the holder's swap state.
// @Summary Get swap state
// @Description Returns the swap form with derived amounts, field errors and the current submission
// @Tags swap
// @Produce json
// @Param holder path string true "Wallet identifier"
// @Success 200 {object} models.SwapStateResponse "Swap state"
// @Failure 400 {object} models.ErrorResponse "Missing holder"
// @Router /holders/{holder}/swap [get]
func NewGetSwapStateHandler(svc SwapStateReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		holder := holderFromRequest(r)
		if holder == "" {
			writeError(w, http.StatusBadRequest, "holder is required")
			return
		}

		writeJSON(w, http.StatusOK, svc.State(r.Context(), holder))
	}
}

// NewUpdateSwapFormHandler returns an HTTP handler editing the swap form.
// @Summary Edit swap form
// @Description Sets any of source symbol, target symbol and source amount. Field errors are part of the returned state.
// @Tags swap
// @Accept json
// @Produce json
// @Param holder path string true "Wallet identifier"
// @Param request body models.UpdateFormRequest true "Form edit"
// @Success 200 {object} models.SwapStateResponse "Swap state"
// @Failure 400 {object} models.ErrorResponse "Malformed request"
// @Failure 422 {object} models.SwapActionErrorResponse "Amount is not a plain decimal number"
// @Router /holders/{holder}/swap/form [patch]
func NewUpdateSwapFormHandler(svc SwapFormUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		holder := holderFromRequest(r)
		if holder == "" {
			writeError(w, http.StatusBadRequest, "holder is required")
			return
		}

		var edit models.UpdateFormRequest
		if err := json.NewDecoder(r.Body).Decode(&edit); err != nil {
			logger.Log.Errorw("failed to decode form edit", "holder", holder, "error", err)
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		state, err := svc.UpdateForm(r.Context(), holder, edit)
		if err != nil {
			writeActionError(w, holder, err, state)
			return
		}

		writeJSON(w, http.StatusOK, state)
	}
}

// NewSwapDirectionHandler returns an HTTP handler flipping source and target.
// @Summary Swap direction
// @Description Exchanges source and target; the computed target amount becomes the new source amount
// @Tags swap
// @Produce json
// @Param holder path string true "Wallet identifier"
// @Success 200 {object} models.SwapStateResponse "Swap state"
// @Failure 400 {object} models.ErrorResponse "Missing holder"
// @Router /holders/{holder}/swap/direction [post]
func NewSwapDirectionHandler(svc DirectionSwapper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		holder := holderFromRequest(r)
		if holder == "" {
			writeError(w, http.StatusBadRequest, "holder is required")
			return
		}

		writeJSON(w, http.StatusOK, svc.SwapDirection(r.Context(), holder))
	}
}

// NewUseMaxBalanceHandler returns an HTTP handler filling in the whole source balance.
// @Summary Use max balance
// @Description Sets the source amount to the full balance of the source instrument
// @Tags swap
// @Produce json
// @Param holder path string true "Wallet identifier"
// @Success 200 {object} models.SwapStateResponse "Swap state"
// @Failure 400 {object} models.ErrorResponse "Missing holder"
// @Router /holders/{holder}/swap/max [post]
func NewUseMaxBalanceHandler(svc MaxBalanceFiller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		holder := holderFromRequest(r)
		if holder == "" {
			writeError(w, http.StatusBadRequest, "holder is required")
			return
		}

		writeJSON(w, http.StatusOK, svc.UseMaxBalance(r.Context(), holder))
	}
}

// writeActionError reports a rejected swap action together with the state that explains it.
func writeActionError(w http.ResponseWriter, holder string, err error, state models.SwapStateResponse) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Log.Errorw("swap action failed", "holder", holder, "error", err)
	} else {
		logger.Log.Infow("swap action rejected", "holder", holder, "error", err)
	}
	writeJSON(w, status, models.SwapActionErrorResponse{
		Error: errorMessage(err, status),
		State: state,
	})
}
