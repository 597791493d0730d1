package domain

import "github.com/shopspring/decimal"

type Category struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Icon        string `json:"icon,omitempty" yaml:"icon"`
}

// Product is read-only once the catalog is loaded: price and stock never change
// within a process.
type Product struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Price            decimal.Decimal `json:"price"`
	Stock            int             `json:"stock"`
	CategoryID       string          `json:"category_id"`
	ShortDescription string          `json:"short_description,omitempty"`
	Description      string          `json:"description"`
	Features         []string        `json:"features,omitempty"`
	Images           []string        `json:"images"`
}

// Image returns the primary image reference, or "" when the product has none.
func (p Product) Image() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// Clone copies the slices so the result shares no memory with p.
func (p Product) Clone() Product {
	c := p
	if p.Features != nil {
		c.Features = append([]string(nil), p.Features...)
	}
	if p.Images != nil {
		c.Images = append([]string(nil), p.Images...)
	}
	return c
}
