package httpapi

import (
	"net/http"
	"time"

	"github.com/TemirB/bytebazaar/internal/observability"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type metricsResponse struct {
	Recent []observability.Event `json:"recent"`
	Totals observability.Totals  `json:"totals"`
}

func (s *Server) adminLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		badRequest(w, "bad json")
		return
	}

	if err := s.deps.Verifier.Verify(r.Context(), req.Email, req.Password); err != nil {
		s.logger.Warn("Admin login rejected", zap.String("email", req.Email))
		s.writeError(w, r, err)
		return
	}

	token, exp, err := s.deps.Tokens.Issue(req.Email)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{Token: token, ExpiresAt: exp})
}

func (s *Server) adminOrders(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.deps.Orders.Orders())
}

func (s *Server) adminOrder(w http.ResponseWriter, r *http.Request) {
	v, err := s.deps.Orders.Order(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) adminMetrics(w http.ResponseWriter, _ *http.Request) {
	recent, totals := s.deps.Stats.Snapshot()
	writeJSON(w, http.StatusOK, metricsResponse{Recent: recent, Totals: totals})
}
