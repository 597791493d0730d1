package domain

import (
	"context"
)

// CatalogSource yields the authoritative product and category data the catalog
// store is built from. It is consulted once at startup.
type CatalogSource interface {
	LoadCategories(ctx context.Context) ([]Category, error)
	LoadProducts(ctx context.Context) ([]Product, error)
}

type ProductReader interface {
	All() []Product
	ByID(id string) (Product, error)
}
