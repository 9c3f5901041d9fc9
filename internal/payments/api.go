package payments

import (
	"context"

	"github.com/stripe/stripe-go/v79"
)

// API is the slice of Stripe this service reads. Keeping it an interface
// lets the reshaping logic be tested against fakes without network calls.
type API interface {
	// ListPaymentLinks returns up to limit payment links.
	ListPaymentLinks(ctx context.Context, limit int64) ([]*stripe.PaymentLink, error)

	// GetPaymentLink retrieves one payment link with line_items expanded.
	GetPaymentLink(ctx context.Context, id string) (*stripe.PaymentLink, error)

	// GetPrice retrieves a price with its product expanded.
	GetPrice(ctx context.Context, id string) (*stripe.Price, error)

	// ListCheckoutSessions returns up to limit checkout sessions for a
	// payment link, with data.customer and data.payment_intent expanded.
	ListCheckoutSessions(ctx context.Context, paymentLinkID string, limit int64) ([]*stripe.CheckoutSession, error)
}
