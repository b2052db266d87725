package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-currency-swap/internal/models"
	"github.com/sbilibin2017/gw-currency-swap/internal/services"
)

// holderParam is the chi URL parameter carrying the wallet identity.
const holderParam = "holder"

func holderFromRequest(r *http.Request) string {
	return chi.URLParam(r, holderParam)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.ErrorResponse{Error: msg})
}

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrNotSubmittable), errors.Is(err, services.ErrInvalidAmount):
		return http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrInvalidTransition), errors.Is(err, services.ErrFlowClosed):
		return http.StatusConflict
	case errors.Is(err, services.ErrFeed):
		return http.StatusServiceUnavailable
	case errors.Is(err, services.ErrNoWalletSource):
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage hides internal error details behind a generic message.
func errorMessage(err error, status int) string {
	if status == http.StatusInternalServerError {
		return "Internal server error"
	}
	return err.Error()
}
