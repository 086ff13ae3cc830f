package checkout

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lynnadornets/adornets-backend/internal/cart"
	"github.com/lynnadornets/adornets-backend/pkg/enums"
)

// PaymentInstructions carries the fixed M-Pesa pay-bill details rendered for
// the mobile-money payment methods.
type PaymentInstructions struct {
	PayBillNumber string
	AccountNumber string
	AccountName   string
}

var kshPrinter = message.NewPrinter(language.English)

// FormatKSH renders a whole-KSH amount with digit grouping, e.g. "KSH 1,800".
func FormatKSH(amount int) string {
	return kshPrinter.Sprintf("KSH %d", amount)
}

// FormatOrder serializes the checkout form and cart snapshot into the order
// summary text handed to the messaging channel. Field presence rules: the
// cash method renders no pay-bill block, both M-Pesa methods render the
// pay-bill details, pay-now additionally renders the pre-payment
// instruction, and the notes section appears only when notes are non-empty.
func FormatOrder(details CustomerDetails, lines []cart.Line, total int, instructions PaymentInstructions) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🛍️ *New order from %s*\n\n", details.Name)

	b.WriteString("👤 *Customer Details:*\n")
	fmt.Fprintf(&b, "Name: %s\n", details.Name)
	fmt.Fprintf(&b, "Phone: %s\n", details.Phone)
	fmt.Fprintf(&b, "Email: %s\n\n", details.Email)

	b.WriteString("📍 *Delivery Address:*\n")
	fmt.Fprintf(&b, "%s\n", details.Address)
	fmt.Fprintf(&b, "%s, %s\n", details.City, details.Country)
	fmt.Fprintf(&b, "Delivery Type: %s\n\n", details.DeliveryType.Label())

	b.WriteString(paymentBlock(details.PaymentMethod, instructions))
	b.WriteString("\n\n")

	b.WriteString("🛒 *Order Items:*\n")
	for _, line := range lines {
		fmt.Fprintf(&b, "%s - Qty: %d - %s\n", line.Product.Name, line.Quantity, FormatKSH(line.Product.Price))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "💰 *Total: %s*\n", FormatKSH(total))

	if details.Notes != "" {
		fmt.Fprintf(&b, "\n📝 *Notes:* %s\n", details.Notes)
	}

	b.WriteString("\nPlease confirm this order. Thank you! ✨")

	return b.String()
}

func paymentBlock(method enums.PaymentMethod, instructions PaymentInstructions) string {
	switch method {
	case enums.PaymentMethodMpesaDelivery:
		return fmt.Sprintf("💳 *Payment Method:* M-Pesa on Delivery\nPay Bill No: %s\nAccount No: %s\nAccount Name: %s",
			instructions.PayBillNumber, instructions.AccountNumber, instructions.AccountName)
	case enums.PaymentMethodMpesaNow:
		return fmt.Sprintf("💳 *Payment Method:* M-Pesa (Pay Now)\nPay Bill No: %s\nAccount No: %s\nAccount Name: %s\n*Please complete payment before delivery*",
			instructions.PayBillNumber, instructions.AccountNumber, instructions.AccountName)
	default:
		return "💵 *Payment Method:* Cash on Delivery"
	}
}
