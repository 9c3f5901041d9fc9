package payments

import (
	"context"
	"time"

	"github.com/stripe/stripe-go/v79"
)

const (
	listLimit = 100

	// UnknownProduct is returned when a payment link has no line items or
	// its product data cannot be resolved.
	UnknownProduct = "Unknown Product"

	defaultTimeout = 30 * time.Second
)

// PaymentLinkSummary is the dashboard's row for one payment link.
type PaymentLinkSummary struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	ProductName string `json:"product_name"`
}

// Customer is the slice of the Stripe customer the dashboard shows.
type Customer struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Payment is a payment intent reshaped for the dashboard, with the
// originating checkout session's customer attached.
type Payment struct {
	ID       string    `json:"id"`
	Amount   int64     `json:"amount"`
	Currency string    `json:"currency"`
	Status   string    `json:"status"`
	Created  int64     `json:"created"`
	Customer *Customer `json:"customer"`
}

// Service reads payment data from Stripe and reshapes it. It holds no
// state beyond its collaborators, so concurrent requests never interfere.
type Service struct {
	api     API
	cache   ProductNameCache
	timeout time.Duration
}

// NewService wires the Stripe API and an optional product-name cache.
// cache may be nil, in which case every request resolves product names
// from Stripe directly.
func NewService(api API, cache ProductNameCache) *Service {
	return &Service{
		api:     api,
		cache:   cache,
		timeout: defaultTimeout,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

// ListPaymentLinksWithProducts lists up to 100 payment links and resolves
// each one's product name through its first line item. This is one
// retrieve per link on top of the listing call; the cache (when
// configured) absorbs the repeat lookups, the response shape is identical
// either way.
func (s *Service) ListPaymentLinksWithProducts(ctx context.Context) ([]PaymentLinkSummary, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	links, err := s.api.ListPaymentLinks(ctx, listLimit)
	if err != nil {
		return nil, err
	}

	summaries := make([]PaymentLinkSummary, 0, len(links))

	for _, link := range links {
		name, err := s.productName(ctx, link.ID)
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, PaymentLinkSummary{
			ID:          link.ID,
			URL:         link.URL,
			ProductName: name,
		})
	}

	return summaries, nil
}

func (s *Service) productName(ctx context.Context, linkID string) (string, error) {
	if s.cache != nil {
		if name, ok := s.cache.Get(ctx, linkID); ok {
			return name, nil
		}
	}

	details, err := s.api.GetPaymentLink(ctx, linkID)
	if err != nil {
		return "", err
	}

	name := UnknownProduct

	if details.LineItems != nil && len(details.LineItems.Data) > 0 {
		item := details.LineItems.Data[0]
		if item.Price != nil {
			price, err := s.api.GetPrice(ctx, item.Price.ID)
			if err != nil {
				return "", err
			}
			if price.Product != nil && price.Product.Name != "" {
				name = price.Product.Name
			}
		}
	}

	if s.cache != nil {
		s.cache.Set(ctx, linkID, name)
	}

	return name, nil
}

// ListPayments lists up to 100 checkout sessions for a payment link and
// returns their payment intents with the session's customer attached.
// Sessions without a payment intent are dropped.
func (s *Service) ListPayments(ctx context.Context, paymentLinkID string) ([]Payment, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	sessions, err := s.api.ListCheckoutSessions(ctx, paymentLinkID, listLimit)
	if err != nil {
		return nil, err
	}

	payments := make([]Payment, 0, len(sessions))

	for _, sess := range sessions {
		if sess.PaymentIntent == nil {
			continue
		}

		payments = append(payments, Payment{
			ID:       sess.PaymentIntent.ID,
			Amount:   sess.PaymentIntent.Amount,
			Currency: string(sess.PaymentIntent.Currency),
			Status:   string(sess.PaymentIntent.Status),
			Created:  sess.PaymentIntent.Created,
			Customer: reshapeCustomer(sess.Customer),
		})
	}

	return payments, nil
}

func reshapeCustomer(c *stripe.Customer) *Customer {
	if c == nil {
		return nil
	}
	return &Customer{
		ID:    c.ID,
		Email: c.Email,
		Name:  c.Name,
	}
}
