package admin

import (
	"time"

	"github.com/TemirB/bytebazaar/internal/domain"

	"github.com/shopspring/decimal"
)

type OrderLister interface {
	All() []domain.Order
	Get(id string) (domain.Order, error)
}

type LineView struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type OrderView struct {
	ID        string          `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	Customer  domain.Customer `json:"customer"`
	Lines     []LineView      `json:"lines"`
	ItemCount int             `json:"item_count"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Tax       decimal.Decimal `json:"tax"`
	Total     decimal.Decimal `json:"total"`
}

// ReadModel projects the order history for the admin view. It never writes.
type ReadModel struct {
	orders OrderLister
}

func NewReadModel(orders OrderLister) *ReadModel {
	return &ReadModel{orders: orders}
}

// Orders lists every order, newest first.
func (r *ReadModel) Orders() []OrderView {
	all := r.orders.All()
	out := make([]OrderView, 0, len(all))
	for _, o := range all {
		out = append(out, project(o))
	}
	return out
}

// Order returns one order or domain.ErrOrderNotFound.
func (r *ReadModel) Order(id string) (OrderView, error) {
	o, err := r.orders.Get(id)
	if err != nil {
		return OrderView{}, err
	}
	return project(o), nil
}

func project(o domain.Order) OrderView {
	v := OrderView{
		ID:        o.ID,
		CreatedAt: o.CreatedAt,
		Customer:  o.Customer,
		Lines:     make([]LineView, 0, len(o.Lines)),
		ItemCount: o.ItemCount(),
		Subtotal:  o.Subtotal,
		Tax:       o.Tax,
		Total:     o.Total,
	}
	for _, l := range o.Lines {
		v.Lines = append(v.Lines, LineView{
			ProductID: l.ProductID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		})
	}
	return v
}
