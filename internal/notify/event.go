package notify

import (
	"time"

	"github.com/TemirB/bytebazaar/internal/domain"

	"github.com/shopspring/decimal"
)

const EventOrderPlaced = "order.placed"

type OrderPlacedLine struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// OrderPlaced reports a placed order together with the fact that its prices came
// from the catalog.
type OrderPlaced struct {
	Type          string            `json:"type"`
	OrderID       string            `json:"order_id"`
	CustomerEmail string            `json:"customer_email"`
	Lines         []OrderPlacedLine `json:"lines"`
	Subtotal      decimal.Decimal   `json:"subtotal"`
	Tax           decimal.Decimal   `json:"tax"`
	Total         decimal.Decimal   `json:"total"`
	PriceSource   string            `json:"price_source"`
	CreatedAt     time.Time         `json:"created_at"`
}

func NewOrderPlaced(o domain.Order) OrderPlaced {
	ev := OrderPlaced{
		Type:          EventOrderPlaced,
		OrderID:       o.ID,
		CustomerEmail: o.Customer.Email,
		Lines:         make([]OrderPlacedLine, 0, len(o.Lines)),
		Subtotal:      o.Subtotal,
		Tax:           o.Tax,
		Total:         o.Total,
		PriceSource:   "catalog",
		CreatedAt:     o.CreatedAt,
	}
	for _, l := range o.Lines {
		ev.Lines = append(ev.Lines, OrderPlacedLine{ProductID: l.ProductID, Quantity: l.Quantity, UnitPrice: l.UnitPrice})
	}
	return ev
}
