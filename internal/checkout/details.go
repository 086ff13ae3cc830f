package checkout

import (
	"strings"

	"github.com/lynnadornets/adornets-backend/pkg/enums"
	pkgerrors "github.com/lynnadornets/adornets-backend/pkg/errors"
)

// DefaultCountry is assumed when the customer leaves the field blank.
const DefaultCountry = "Kenya"

// CustomerDetails is the checkout form. It exists only for the duration of
// one submission and is never retained.
type CustomerDetails struct {
	Name          string
	Phone         string
	Email         string
	Address       string
	City          string
	Country       string
	DeliveryType  enums.DeliveryType
	PaymentMethod enums.PaymentMethod
	Notes         string
}

// Normalize trims the fields and applies defaults.
func (d *CustomerDetails) Normalize() {
	d.Name = strings.TrimSpace(d.Name)
	d.Phone = strings.TrimSpace(d.Phone)
	d.Email = strings.TrimSpace(d.Email)
	d.Address = strings.TrimSpace(d.Address)
	d.City = strings.TrimSpace(d.City)
	d.Country = strings.TrimSpace(d.Country)
	d.Notes = strings.TrimSpace(d.Notes)

	if d.Country == "" {
		d.Country = DefaultCountry
	}
	if d.DeliveryType == "" {
		d.DeliveryType = enums.DeliveryTypeLocal
	}
}

// Validate enforces the required checkout fields.
func (d CustomerDetails) Validate() error {
	missing := map[string]string{}
	if d.Name == "" {
		missing["name"] = "is required"
	}
	if d.Phone == "" {
		missing["phone"] = "is required"
	}
	if d.Email == "" {
		missing["email"] = "is required"
	}
	if d.Address == "" {
		missing["address"] = "is required"
	}
	if d.City == "" {
		missing["city"] = "is required"
	}
	if len(missing) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "checkout form incomplete").WithDetails(missing)
	}

	if !d.DeliveryType.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid delivery type")
	}
	if !d.PaymentMethod.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid payment method")
	}
	return nil
}
