package payments

import (
	"context"
	"errors"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// StripeClient implements API against the real Stripe backend. It owns a
// dedicated client.API instance rather than the package-global key so the
// secret lives in one place and tests never touch global state.
type StripeClient struct {
	sc *client.API
}

func NewStripeClient(apiKey string) *StripeClient {
	sc := &client.API{}
	sc.Init(apiKey, nil)

	return &StripeClient{sc: sc}
}

func (s *StripeClient) ListPaymentLinks(ctx context.Context, limit int64) ([]*stripe.PaymentLink, error) {
	params := &stripe.PaymentLinkListParams{}
	params.Limit = stripe.Int64(limit)
	params.Context = ctx

	var links []*stripe.PaymentLink

	iter := s.sc.PaymentLinks.List(params)
	for iter.Next() {
		links = append(links, iter.PaymentLink())
	}
	if err := iter.Err(); err != nil {
		return nil, mapStripeError(err)
	}

	return links, nil
}

func (s *StripeClient) GetPaymentLink(ctx context.Context, id string) (*stripe.PaymentLink, error) {
	params := &stripe.PaymentLinkParams{}
	params.Context = ctx
	params.AddExpand("line_items")

	link, err := s.sc.PaymentLinks.Get(id, params)
	if err != nil {
		return nil, mapStripeError(err)
	}

	return link, nil
}

func (s *StripeClient) GetPrice(ctx context.Context, id string) (*stripe.Price, error) {
	params := &stripe.PriceParams{}
	params.Context = ctx
	params.AddExpand("product")

	price, err := s.sc.Prices.Get(id, params)
	if err != nil {
		return nil, mapStripeError(err)
	}

	return price, nil
}

func (s *StripeClient) ListCheckoutSessions(ctx context.Context, paymentLinkID string, limit int64) ([]*stripe.CheckoutSession, error) {
	params := &stripe.CheckoutSessionListParams{
		PaymentLink: stripe.String(paymentLinkID),
	}
	params.Limit = stripe.Int64(limit)
	params.Context = ctx
	params.AddExpand("data.customer")
	params.AddExpand("data.payment_intent")

	var sessions []*stripe.CheckoutSession

	iter := s.sc.CheckoutSessions.List(params)
	for iter.Next() {
		sessions = append(sessions, iter.CheckoutSession())
	}
	if err := iter.Err(); err != nil {
		return nil, mapStripeError(err)
	}

	return sessions, nil
}

// mapStripeError unwraps stripe-go errors to their human-readable message
// so callers surface "No such payment link: ..." instead of the library's
// full JSON dump. Everything else passes through unchanged.
func mapStripeError(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.Msg != "" {
		return errors.New(stripeErr.Msg)
	}
	return err
}
