package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/TemirB/bytebazaar/internal/domain"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

type seedFile struct {
	Categories []domain.Category `yaml:"categories"`
	Products   []seedProduct     `yaml:"products"`
}

type seedProduct struct {
	ID               string   `yaml:"id"`
	Name             string   `yaml:"name"`
	Price            string   `yaml:"price"`
	Stock            int      `yaml:"stock"`
	CategoryID       string   `yaml:"category_id"`
	ShortDescription string   `yaml:"short_description"`
	Description      string   `yaml:"description"`
	Features         []string `yaml:"features"`
	Images           []string `yaml:"images"`
}

// YAMLSource reads the catalog from a YAML document.
type YAMLSource struct {
	file seedFile
}

func NewYAMLSource(data []byte) (*YAMLSource, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog seed: %w", err)
	}
	return &YAMLSource{file: f}, nil
}

// DefaultSource is the catalog shipped with the binary.
func DefaultSource() (*YAMLSource, error) {
	return NewYAMLSource(defaultSeed)
}

// FileSource reads a seed from path, falling back to the embedded seed when
// path is empty.
func FileSource(path string) (*YAMLSource, error) {
	if path == "" {
		return DefaultSource()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog seed %s: %w", path, err)
	}
	return NewYAMLSource(data)
}

func (s *YAMLSource) LoadCategories(context.Context) ([]domain.Category, error) {
	return append([]domain.Category(nil), s.file.Categories...), nil
}

func (s *YAMLSource) LoadProducts(context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(s.file.Products))
	for _, p := range s.file.Products {
		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			return nil, fmt.Errorf("product %s: bad price %q: %w", p.ID, p.Price, err)
		}
		out = append(out, domain.Product{
			ID:               p.ID,
			Name:             p.Name,
			Price:            price,
			Stock:            p.Stock,
			CategoryID:       p.CategoryID,
			ShortDescription: p.ShortDescription,
			Description:      p.Description,
			Features:         p.Features,
			Images:           p.Images,
		})
	}
	return out, nil
}
