package enums

import "fmt"

// DeliveryType describes where an order ships.
type DeliveryType string

const (
	DeliveryTypeLocal         DeliveryType = "local"
	DeliveryTypeInternational DeliveryType = "international"
)

var validDeliveryTypes = []DeliveryType{
	DeliveryTypeLocal,
	DeliveryTypeInternational,
}

// String implements fmt.Stringer.
func (d DeliveryType) String() string {
	return string(d)
}

// Label returns the human wording used in order summaries.
func (d DeliveryType) Label() string {
	if d == DeliveryTypeInternational {
		return "International"
	}
	return "Local (Kenya)"
}

// IsValid reports whether the value is a known DeliveryType.
func (d DeliveryType) IsValid() bool {
	for _, candidate := range validDeliveryTypes {
		if candidate == d {
			return true
		}
	}
	return false
}

// ParseDeliveryType converts raw input into a DeliveryType.
func ParseDeliveryType(value string) (DeliveryType, error) {
	for _, candidate := range validDeliveryTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid delivery type %q", value)
}
