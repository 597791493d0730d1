package service

import (
	"time"

	"github.com/TemirB/bytebazaar/internal/cart"
	"github.com/TemirB/bytebazaar/internal/pricing"
)

type CartView struct {
	Lines     []cart.Line     `json:"lines"`
	ItemCount int             `json:"item_count"`
	Summary   pricing.Summary `json:"summary"`
	Pending   bool            `json:"checkout_pending"`
}

type CheckoutStats struct {
	OrderID string
	TotalMs float64
}

func convertToMs(t time.Time) float64 {
	return float64(time.Since(t).Microseconds()) / 1000.0
}
