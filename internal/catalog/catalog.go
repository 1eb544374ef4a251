// Package catalog serves the static sample products the dashboard falls back to
// when no live listings are available.
package catalog

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/storepulse/storepulse/internal/core/normalize"
	"github.com/storepulse/storepulse/internal/core/product"
)

//go:embed sample_products.yaml
var embeddedCatalog []byte

// Source loads the sample catalog once and hands out copies of it.
type Source struct {
	path string

	once     sync.Once
	products []product.Product
	err      error
}

// NewSource returns a Source backed by the embedded catalog, or by the YAML file
// at path when path is not empty.
func NewSource(path string) *Source {
	return &Source{path: strings.TrimSpace(path)}
}

// Products returns the sample catalog. The first call loads and parses it; later
// calls reuse the result, including a load error. Callers own the returned slice.
func (s *Source) Products() ([]product.Product, error) {
	s.once.Do(s.load)
	if s.err != nil {
		return nil, s.err
	}

	out := make([]product.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

func (s *Source) load() {
	data := embeddedCatalog
	origin := "embedded"

	if s.path != "" {
		raw, err := os.ReadFile(s.path)
		if err != nil {
			s.err = fmt.Errorf("failed to read sample catalog %q: %w", s.path, err)
			return
		}
		data = raw
		origin = s.path
	}

	products, err := Parse(data)
	if err != nil {
		s.err = fmt.Errorf("failed to parse sample catalog %s: %w", origin, err)
		return
	}

	s.products = products
	slog.Info("[Catalog] Sample catalog loaded", "source", origin, "products", len(products))
}

// Parse decodes a YAML list of products. Missing names and categories get the
// usual placeholders and unrecognised stores become Unknown.
func Parse(data []byte) ([]product.Product, error) {
	var products []product.Product
	if err := yaml.Unmarshal(data, &products); err != nil {
		return nil, err
	}

	for i := range products {
		p := &products[i]
		if strings.TrimSpace(p.ID) == "" {
			return nil, fmt.Errorf("product %d: id is required", i)
		}
		if strings.TrimSpace(p.Name) == "" {
			p.Name = product.DefaultName
		}
		if strings.TrimSpace(p.Category) == "" {
			p.Category = product.DefaultCategory
		}
		if !normalize.IsKnownStore(p.Store) {
			p.Store = normalize.NormalizeStoreName(p.Store)
		}
		if p.Price < 0 {
			p.Price = 0
		}
		if p.Availability < 0 {
			p.Availability = 0
		}
	}

	if products == nil {
		products = []product.Product{}
	}
	return products, nil
}
