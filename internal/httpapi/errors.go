package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/TemirB/bytebazaar/internal/admin"
	"github.com/TemirB/bytebazaar/internal/application/service"
	"github.com/TemirB/bytebazaar/internal/cart"
	"github.com/TemirB/bytebazaar/internal/domain"

	"go.uber.org/zap"
)

type errorBody struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// statusOf maps service errors to HTTP statuses. Validation and simulation
// failures are checked first because they may wrap the sentinels below.
func statusOf(err error) int {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity
	case domain.IsSimulationFailure(err):
		return http.StatusInternalServerError
	case errors.Is(err, service.ErrCheckoutPending), errors.Is(err, domain.ErrOutOfStock):
		return http.StatusConflict
	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, cart.ErrNotInCart):
		return http.StatusNotFound
	case errors.Is(err, admin.ErrInvalidCredentials), errors.Is(err, admin.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	body := errorBody{Error: err.Error()}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		body.Field = verr.Field
	}
	if status == http.StatusInternalServerError && !domain.IsSimulationFailure(err) {
		s.logger.Error("Request failed",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		body.Error = "internal error"
	}
	writeJSON(w, status, body)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorBody{Error: msg})
}
