package cart

import (
	"errors"
	"fmt"

	"github.com/TemirB/bytebazaar/internal/domain"
	"github.com/TemirB/bytebazaar/internal/pricing"

	"github.com/shopspring/decimal"
)

var ErrNotInCart = errors.New("product is not in the cart")

// Mutation names used in metrics.
const (
	OpAdd         = "add"
	OpSetQuantity = "set_quantity"
	OpRemove      = "remove"
	OpClear       = "clear"
)

// Line is a cart entry together with the catalog product it was added from.
type Line struct {
	Product  domain.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

// Change describes the stored state of a line after a mutation. Clamped is set
// when the requested quantity was cut down to the product's stock.
type Change struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Stock     int    `json:"stock"`
	Clamped   bool   `json:"max_stock_reached"`
}

// Ledger is the per-session basket. Lines keep first-added order and there is
// at most one line per product. It is not safe for concurrent use; the owning
// session serializes access.
type Ledger struct {
	lines []Line
}

func NewLedger() *Ledger {
	return &Ledger{}
}

func (l *Ledger) find(productID string) int {
	for i := range l.lines {
		if l.lines[i].Product.ID == productID {
			return i
		}
	}
	return -1
}

// Add puts one more unit of p in the cart, never going above p.Stock. A product
// without stock cannot be added at all.
func (l *Ledger) Add(p domain.Product) (Change, error) {
	if p.Stock < 1 {
		return Change{}, fmt.Errorf("%w: %s", domain.ErrOutOfStock, p.ID)
	}

	i := l.find(p.ID)
	if i < 0 {
		l.lines = append(l.lines, Line{Product: p.Clone(), Quantity: 1})
		return Change{ProductID: p.ID, Quantity: 1, Stock: p.Stock}, nil
	}

	line := &l.lines[i]
	want := line.Quantity + 1
	line.Quantity = min(want, line.Product.Stock)
	return Change{
		ProductID: p.ID,
		Quantity:  line.Quantity,
		Stock:     line.Product.Stock,
		Clamped:   line.Quantity < want,
	}, nil
}

// SetQuantity stores min(quantity, stock). Quantities below one are ignored:
// lines only go away through Remove.
func (l *Ledger) SetQuantity(productID string, quantity int) (Change, error) {
	i := l.find(productID)
	if i < 0 {
		return Change{}, fmt.Errorf("%w: %s", ErrNotInCart, productID)
	}

	line := &l.lines[i]
	ch := Change{ProductID: productID, Stock: line.Product.Stock}
	if quantity < 1 {
		ch.Quantity = line.Quantity
		return ch, nil
	}

	line.Quantity = min(quantity, line.Product.Stock)
	ch.Quantity = line.Quantity
	ch.Clamped = line.Quantity < quantity
	return ch, nil
}

// Remove reports whether a line was deleted.
func (l *Ledger) Remove(productID string) bool {
	i := l.find(productID)
	if i < 0 {
		return false
	}
	l.lines = append(l.lines[:i], l.lines[i+1:]...)
	return true
}

func (l *Ledger) Clear() {
	l.lines = nil
}

func (l *Ledger) TotalItemCount() int {
	n := 0
	for _, line := range l.lines {
		n += line.Quantity
	}
	return n
}

func (l *Ledger) Len() int { return len(l.lines) }

func (l *Ledger) IsEmpty() bool { return len(l.lines) == 0 }

// Lines returns a copy of the cart in first-added order.
func (l *Ledger) Lines() []Line {
	out := make([]Line, len(l.lines))
	for i, line := range l.lines {
		out[i] = Line{Product: line.Product.Clone(), Quantity: line.Quantity}
	}
	return out
}

// CartLines returns the id/quantity pairs only.
func (l *Ledger) CartLines() []domain.CartLine {
	out := make([]domain.CartLine, len(l.lines))
	for i, line := range l.lines {
		out[i] = domain.CartLine{ProductID: line.Product.ID, Quantity: line.Quantity}
	}
	return out
}

// Summary prices the cart for display. It uses the prices captured when the
// products were added; checkout recomputes them from the catalog.
func (l *Ledger) Summary(rate decimal.Decimal) pricing.Summary {
	lines := make([]pricing.Line, len(l.lines))
	for i, line := range l.lines {
		lines[i] = pricing.Line{UnitPrice: line.Product.Price, Quantity: line.Quantity}
	}
	return pricing.Calculate(lines, rate)
}
