package enums

import "fmt"

// Category classifies a catalog product.
type Category string

const (
	CategoryNecklaces  Category = "necklaces"
	CategoryEarrings   Category = "earrings"
	CategoryBracelets  Category = "bracelets"
	CategoryRings      Category = "rings"
	CategorySunglasses Category = "sunglasses"
	CategoryBridal     Category = "bridal"
	CategoryCustom     Category = "custom"
)

var validCategories = []Category{
	CategoryNecklaces,
	CategoryEarrings,
	CategoryBracelets,
	CategoryRings,
	CategorySunglasses,
	CategoryBridal,
	CategoryCustom,
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return string(c)
}

// IsValid reports whether the value is a known Category.
func (c Category) IsValid() bool {
	for _, candidate := range validCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCategory converts raw input into a Category.
func ParseCategory(value string) (Category, error) {
	for _, candidate := range validCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid category %q", value)
}
