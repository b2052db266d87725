package handlers

//go:generate mockgen -source=submission.go -destination=submission_mock_test.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-currency-swap/internal/models"
)

// SwapPreviewer opens the confirmation step.
type SwapPreviewer interface {
	Preview(ctx context.Context, holder string) (models.SwapStateResponse, error)
}

// SwapConfirmer starts settlement of a previewed swap.
type SwapConfirmer interface {
	Confirm(ctx context.Context, holder string) (models.SwapStateResponse, error)
}

// SwapCanceller abandons a preview.
type SwapCanceller interface {
	Cancel(ctx context.Context, holder string) (models.SwapStateResponse, error)
}

// SwapDismisser hides a settled swap.
type SwapDismisser interface {
	Dismiss(ctx context.Context, holder string) (models.SwapStateResponse, error)
}

type swapAction func(ctx context.Context, holder string) (models.SwapStateResponse, error)

func newSwapActionHandler(action swapAction) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		holder := holderFromRequest(r)
		if holder == "" {
			writeError(w, http.StatusBadRequest, "holder is required")
			return
		}

		state, err := action(r.Context(), holder)
		if err != nil {
			writeActionError(w, holder, err, state)
			return
		}

		writeJSON(w, http.StatusOK, state)
	}
}

// NewPreviewSwapHandler returns an HTTP handler opening the confirmation step.
// @Summary Preview swap
// @Description Revalidates the form and freezes amounts, rate and balance for confirmation
// @Tags submission
// @Produce json
// @Param holder path string true "Wallet identifier"
// @Success 200 {object} models.SwapStateResponse "Previewing"
// @Failure 409 {object} models.SwapActionErrorResponse "Not idle"
// @Failure 422 {object} models.SwapActionErrorResponse "Form has errors"
// @Router /holders/{holder}/swap/preview [post]
func NewPreviewSwapHandler(svc SwapPreviewer) http.HandlerFunc {
	return newSwapActionHandler(svc.Preview)
}

// NewConfirmSwapHandler returns an HTTP handler confirming the previewed swap.
// @Summary Confirm swap
// @Description Starts settlement. Repeated confirms while settling are ignored.
// @Tags submission
// @Produce json
// @Param holder path string true "Wallet identifier"
// @Success 200 {object} models.SwapStateResponse "Confirming"
// @Failure 409 {object} models.SwapActionErrorResponse "Nothing to confirm"
// @Failure 422 {object} models.SwapActionErrorResponse "Form no longer valid"
// @Router /holders/{holder}/swap/confirm [post]
func NewConfirmSwapHandler(svc SwapConfirmer) http.HandlerFunc {
	return newSwapActionHandler(svc.Confirm)
}

// NewCancelSwapHandler returns an HTTP handler abandoning the preview.
// @Summary Cancel swap
// @Description Returns from preview to editing without side effects
// @Tags submission
// @Produce json
// @Param holder path string true "Wallet identifier"
// @Success 200 {object} models.SwapStateResponse "Idle"
// @Failure 409 {object} models.SwapActionErrorResponse "Settlement in progress"
// @Router /holders/{holder}/swap/cancel [post]
func NewCancelSwapHandler(svc SwapCanceller) http.HandlerFunc {
	return newSwapActionHandler(svc.Cancel)
}

// NewDismissSwapHandler returns an HTTP handler hiding a settled swap.
// @Summary Dismiss settled swap
// @Description Clears the amounts right away instead of waiting for the display window
// @Tags submission
// @Produce json
// @Param holder path string true "Wallet identifier"
// @Success 200 {object} models.SwapStateResponse "Idle"
// @Failure 409 {object} models.SwapActionErrorResponse "Nothing settled"
// @Router /holders/{holder}/swap/dismiss [post]
func NewDismissSwapHandler(svc SwapDismisser) http.HandlerFunc {
	return newSwapActionHandler(svc.Dismiss)
}
