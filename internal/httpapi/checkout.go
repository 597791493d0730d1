package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/TemirB/bytebazaar/internal/domain"
	"github.com/TemirB/bytebazaar/internal/observability"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// checkoutItem is what a browser would send alongside the form. Only the price
// is read, and only to show that it is ignored.
type checkoutItem struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity,omitempty"`
	Price     decimal.Decimal `json:"price"`
}

type checkoutRequest struct {
	Name  string         `json:"name"`
	Email string         `json:"email"`
	Phone string         `json:"phone"`
	Items []checkoutItem `json:"items,omitempty"`
}

func (s *Server) checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := decodeJSON(w, r, &req); err != nil {
		badRequest(w, "bad json")
		return
	}

	var clientPrices map[string]decimal.Decimal
	if len(req.Items) > 0 {
		clientPrices = make(map[string]decimal.Decimal, len(req.Items))
		for _, it := range req.Items {
			clientPrices[it.ProductID] = it.Price
		}
	}

	start := time.Now()
	sess := sessionFrom(r.Context())
	task, err := sess.Checkout(r.Context(), domain.Customer{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}, clientPrices)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	o, err := task.Wait(r.Context())
	if err != nil {
		if ctxErr := r.Context().Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			s.logger.Info("Client left before the order resolved; placement continues",
				zap.Error(err),
			)
			return
		}
		s.writeError(w, r, err)
		return
	}

	dur := float64(time.Since(start).Microseconds()) / 1000.0
	observability.AppendServerTiming(w, "checkout", dur, o.ID)
	observability.SetIfPos(w, "X-Checkout-Time", dur)
	w.Header().Set("Location", "/orders/last")
	writeJSON(w, http.StatusCreated, o)
}

func (s *Server) lastOrder(w http.ResponseWriter, r *http.Request) {
	o, ok := sessionFrom(r.Context()).LastOrder()
	if !ok {
		s.writeError(w, r, domain.ErrOrderNotFound)
		return
	}
	writeJSON(w, http.StatusOK, o)
}
