package httpapi

import (
	"net/http"

	"github.com/TemirB/bytebazaar/internal/application/service"
	"github.com/TemirB/bytebazaar/internal/cart"

	"github.com/go-chi/chi/v5"
)

type cartResponse struct {
	Change *cart.Change `json:"change,omitempty"`
	service.CartView
}

type addItemRequest struct {
	ProductID string `json:"product_id"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (s *Server) getCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, cartResponse{CartView: sessionFrom(r.Context()).Cart()})
}

func (s *Server) addItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := decodeJSON(w, r, &req); err != nil || req.ProductID == "" {
		badRequest(w, "body must be {\"product_id\": \"...\"}")
		return
	}

	sess := sessionFrom(r.Context())
	ch, err := sess.Add(req.ProductID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cartResponse{Change: &ch, CartView: sess.Cart()})
}

func (s *Server) setQuantity(w http.ResponseWriter, r *http.Request) {
	var req setQuantityRequest
	if err := decodeJSON(w, r, &req); err != nil {
		badRequest(w, "body must be {\"quantity\": n}")
		return
	}

	sess := sessionFrom(r.Context())
	ch, err := sess.SetQuantity(chi.URLParam(r, "id"), req.Quantity)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cartResponse{Change: &ch, CartView: sess.Cart()})
}

func (s *Server) removeItem(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())
	if _, err := sess.Remove(chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cartResponse{CartView: sess.Cart()})
}

func (s *Server) clearCart(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())
	if err := sess.Clear(); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cartResponse{CartView: sess.Cart()})
}
