package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/lynnadornets/adornets-backend/pkg/enums"
)

//go:embed products.json
var defaultDataset []byte

// Feed is the read-only product collection the storefront serves. It is
// loaded once at process start and never mutated.
type Feed struct {
	products []Product
	byID     map[string]int
}

// NewFeed parses and validates a JSON dataset into a Feed.
func NewFeed(dataset []byte) (*Feed, error) {
	var products []Product
	if err := json.Unmarshal(dataset, &products); err != nil {
		return nil, fmt.Errorf("decoding catalog dataset: %w", err)
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("catalog dataset is empty")
	}

	byID := make(map[string]int, len(products))
	for i, p := range products {
		if err := validateProduct(p); err != nil {
			return nil, fmt.Errorf("product %q: %w", p.ID, err)
		}
		if _, exists := byID[p.ID]; exists {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}
		byID[p.ID] = i
	}

	return &Feed{products: products, byID: byID}, nil
}

// DefaultFeed loads the embedded production dataset.
func DefaultFeed() (*Feed, error) {
	return NewFeed(defaultDataset)
}

// All returns every product in feed order.
func (f *Feed) All() []Product {
	out := make([]Product, len(f.products))
	copy(out, f.products)
	return out
}

// ByID returns the product with the given identifier.
func (f *Feed) ByID(id string) (Product, bool) {
	i, ok := f.byID[id]
	if !ok {
		return Product{}, false
	}
	return f.products[i], true
}

// ByCategory returns every product in the given category, in feed order.
func (f *Feed) ByCategory(category enums.Category) []Product {
	var out []Product
	for _, p := range f.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Featured returns every product flagged for promotional highlighting.
func (f *Feed) Featured() []Product {
	var out []Product
	for _, p := range f.products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

func validateProduct(p Product) error {
	if p.ID == "" {
		return fmt.Errorf("id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if p.Price <= 0 {
		return fmt.Errorf("price must be positive")
	}
	if p.OriginalPrice != nil && *p.OriginalPrice < p.Price {
		return fmt.Errorf("original price must be >= price")
	}
	if !p.Category.IsValid() {
		return fmt.Errorf("unknown category %q", p.Category)
	}
	if len(p.Images) == 0 {
		return fmt.Errorf("at least one image is required")
	}
	return nil
}
