package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/TemirB/bytebazaar/internal/domain"

	"go.uber.org/zap"
)

//go:generate mockgen -source internal/domain/repo.go -destination=internal/catalog/source_mock_test.go -package=catalog

// Store is the read-only catalog. It is filled once by Load and never mutated
// afterwards, so concurrent readers need no locking.
type Store struct {
	products   []domain.Product
	byID       map[string]int
	categories []domain.Category
	catByID    map[string]int
}

func Load(ctx context.Context, src domain.CatalogSource, logger *zap.Logger) (*Store, error) {
	cats, err := src.LoadCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	products, err := src.LoadProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	s, err := New(cats, products)
	if err != nil {
		return nil, err
	}
	logger.Info("Catalog loaded",
		zap.Int("categories", len(s.categories)),
		zap.Int("products", len(s.products)),
	)
	return s, nil
}

// New validates and indexes the given data.
func New(categories []domain.Category, products []domain.Product) (*Store, error) {
	s := &Store{
		byID:    make(map[string]int, len(products)),
		catByID: make(map[string]int, len(categories)),
	}

	for _, c := range categories {
		if strings.TrimSpace(c.ID) == "" {
			return nil, fmt.Errorf("category with empty id")
		}
		if _, dup := s.catByID[c.ID]; dup {
			return nil, fmt.Errorf("duplicate category %q", c.ID)
		}
		s.catByID[c.ID] = len(s.categories)
		s.categories = append(s.categories, c)
	}

	for _, p := range products {
		if strings.TrimSpace(p.ID) == "" {
			return nil, fmt.Errorf("product with empty id")
		}
		if _, dup := s.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product %q", p.ID)
		}
		if p.Price.IsNegative() {
			return nil, fmt.Errorf("product %q: negative price %s", p.ID, p.Price)
		}
		if p.Stock < 0 {
			return nil, fmt.Errorf("product %q: negative stock %d", p.ID, p.Stock)
		}
		if p.CategoryID != "" {
			if _, ok := s.catByID[p.CategoryID]; !ok {
				return nil, fmt.Errorf("product %q: %w: %s", p.ID, domain.ErrCategoryNotFound, p.CategoryID)
			}
		}
		s.byID[p.ID] = len(s.products)
		s.products = append(s.products, p.Clone())
	}
	return s, nil
}

func (s *Store) All() []domain.Product {
	out := make([]domain.Product, len(s.products))
	for i, p := range s.products {
		out[i] = p.Clone()
	}
	return out
}

func (s *Store) ByID(id string) (domain.Product, error) {
	i, ok := s.byID[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("%w: %s", domain.ErrProductNotFound, id)
	}
	return s.products[i].Clone(), nil
}

func (s *Store) Categories() []domain.Category {
	return append([]domain.Category(nil), s.categories...)
}

func (s *Store) Category(id string) (domain.Category, error) {
	i, ok := s.catByID[id]
	if !ok {
		return domain.Category{}, fmt.Errorf("%w: %s", domain.ErrCategoryNotFound, id)
	}
	return s.categories[i], nil
}

// ByCategory lists the products of a category in catalog order.
func (s *Store) ByCategory(id string) ([]domain.Product, error) {
	if _, ok := s.catByID[id]; !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrCategoryNotFound, id)
	}
	var out []domain.Product
	for _, p := range s.products {
		if p.CategoryID == id {
			out = append(out, p.Clone())
		}
	}
	return out, nil
}
