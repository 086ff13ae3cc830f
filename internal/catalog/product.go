package catalog

import (
	"github.com/lynnadornets/adornets-backend/pkg/enums"
)

// Product is one record in the catalog feed. Records are immutable after load.
type Product struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Price         int            `json:"price"`
	OriginalPrice *int           `json:"original_price,omitempty"`
	Category      enums.Category `json:"category"`
	Images        []string       `json:"images"`
	InStock       bool           `json:"in_stock"`
	Featured      bool           `json:"featured,omitempty"`
	Materials     []string       `json:"materials,omitempty"`
	Size          string         `json:"size,omitempty"`
}
