package enums

// CheckoutState tracks where a session sits in the checkout flow.
type CheckoutState string

const (
	CheckoutStateBrowsing   CheckoutState = "browsing"
	CheckoutStateForm       CheckoutState = "checkout_form"
	CheckoutStateSubmitting CheckoutState = "submitting"
	CheckoutStateSuccess    CheckoutState = "success"
)

// String implements fmt.Stringer.
func (c CheckoutState) String() string {
	return string(c)
}
