package payments

import (
	"context"
	"errors"
	"testing"

	"github.com/stripe/stripe-go/v79"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- MOCKS ---

type fakeAPI struct {
	links    []*stripe.PaymentLink
	details  map[string]*stripe.PaymentLink
	prices   map[string]*stripe.Price
	sessions []*stripe.CheckoutSession
	err      error

	listLinkCalls    int
	getLinkCalls     int
	getPriceCalls    int
	listSessionCalls int
}

func (f *fakeAPI) ListPaymentLinks(ctx context.Context, limit int64) ([]*stripe.PaymentLink, error) {
	f.listLinkCalls++
	return f.links, f.err
}

func (f *fakeAPI) GetPaymentLink(ctx context.Context, id string) (*stripe.PaymentLink, error) {
	f.getLinkCalls++
	if f.err != nil {
		return nil, f.err
	}
	link, ok := f.details[id]
	if !ok {
		return nil, errors.New("no such payment link")
	}
	return link, nil
}

func (f *fakeAPI) GetPrice(ctx context.Context, id string) (*stripe.Price, error) {
	f.getPriceCalls++
	if f.err != nil {
		return nil, f.err
	}
	price, ok := f.prices[id]
	if !ok {
		return nil, errors.New("no such price")
	}
	return price, nil
}

func (f *fakeAPI) ListCheckoutSessions(ctx context.Context, paymentLinkID string, limit int64) ([]*stripe.CheckoutSession, error) {
	f.listSessionCalls++
	return f.sessions, f.err
}

type fakeCache struct {
	entries map[string]string
	hits    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]string{}}
}

func (f *fakeCache) Get(ctx context.Context, linkID string) (string, bool) {
	name, ok := f.entries[linkID]
	if ok {
		f.hits++
	}
	return name, ok
}

func (f *fakeCache) Set(ctx context.Context, linkID string, name string) {
	f.entries[linkID] = name
}

// twoLinksAPI returns one link resolving to product "Widget" and one with
// no line items at all.
func twoLinksAPI() *fakeAPI {
	return &fakeAPI{
		links: []*stripe.PaymentLink{
			{ID: "plink_1", URL: "https://buy.stripe.com/aaa"},
			{ID: "plink_2", URL: "https://buy.stripe.com/bbb"},
		},
		details: map[string]*stripe.PaymentLink{
			"plink_1": {
				ID: "plink_1",
				LineItems: &stripe.LineItemList{
					Data: []*stripe.LineItem{
						{Price: &stripe.Price{ID: "price_1"}},
					},
				},
			},
			"plink_2": {ID: "plink_2"},
		},
		prices: map[string]*stripe.Price{
			"price_1": {
				ID:      "price_1",
				Product: &stripe.Product{Name: "Widget"},
			},
		},
	}
}

// --- TESTS ---

func TestListPaymentLinksWithProducts(t *testing.T) {
	api := twoLinksAPI()
	svc := NewService(api, nil)

	got, err := svc.ListPaymentLinksWithProducts(context.Background())
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, PaymentLinkSummary{
		ID:          "plink_1",
		URL:         "https://buy.stripe.com/aaa",
		ProductName: "Widget",
	}, got[0])
	assert.Equal(t, PaymentLinkSummary{
		ID:          "plink_2",
		URL:         "https://buy.stripe.com/bbb",
		ProductName: UnknownProduct,
	}, got[1])

	// One retrieve per link, one price lookup for the link with items.
	assert.Equal(t, 1, api.listLinkCalls)
	assert.Equal(t, 2, api.getLinkCalls)
	assert.Equal(t, 1, api.getPriceCalls)
}

func TestListPaymentLinksWarmCacheSkipsLookups(t *testing.T) {
	api := twoLinksAPI()
	cache := newFakeCache()
	svc := NewService(api, cache)

	_, err := svc.ListPaymentLinksWithProducts(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, api.getLinkCalls)

	got, err := svc.ListPaymentLinksWithProducts(context.Background())
	require.NoError(t, err)

	// Second pass serves product names from cache: no new retrieves.
	assert.Equal(t, 2, api.getLinkCalls)
	assert.Equal(t, 1, api.getPriceCalls)
	assert.Equal(t, 2, cache.hits)
	assert.Equal(t, "Widget", got[0].ProductName)
	assert.Equal(t, UnknownProduct, got[1].ProductName)
}

func TestListPaymentLinksUpstreamError(t *testing.T) {
	api := &fakeAPI{err: errors.New("rate limited")}
	svc := NewService(api, nil)

	_, err := svc.ListPaymentLinksWithProducts(context.Background())
	assert.EqualError(t, err, "rate limited")
}

func TestListPayments(t *testing.T) {
	api := &fakeAPI{
		sessions: []*stripe.CheckoutSession{
			{
				PaymentIntent: &stripe.PaymentIntent{
					ID:       "pi_1",
					Amount:   2000,
					Currency: stripe.Currency("usd"),
					Status:   stripe.PaymentIntentStatusSucceeded,
					Created:  1700000100,
				},
				Customer: &stripe.Customer{
					ID:    "cus_1",
					Email: "ada@example.com",
					Name:  "Ada",
				},
			},
			{
				// Abandoned checkout: no payment intent, must be dropped.
				Customer: &stripe.Customer{ID: "cus_2"},
			},
			{
				PaymentIntent: &stripe.PaymentIntent{
					ID:       "pi_3",
					Amount:   500,
					Currency: stripe.Currency("eur"),
					Status:   stripe.PaymentIntentStatusProcessing,
					Created:  1700000200,
				},
				Customer: &stripe.Customer{
					ID:    "cus_3",
					Email: "grace@example.com",
					Name:  "Grace",
				},
			},
		},
	}
	svc := NewService(api, nil)

	got, err := svc.ListPayments(context.Background(), "plink_1")
	require.NoError(t, err)

	require.Len(t, got, 2)

	assert.Equal(t, "pi_1", got[0].ID)
	assert.Equal(t, int64(2000), got[0].Amount)
	assert.Equal(t, "usd", got[0].Currency)
	assert.Equal(t, "succeeded", got[0].Status)
	require.NotNil(t, got[0].Customer)
	assert.Equal(t, "ada@example.com", got[0].Customer.Email)

	assert.Equal(t, "pi_3", got[1].ID)
	require.NotNil(t, got[1].Customer)
	assert.Equal(t, "Grace", got[1].Customer.Name)
}

func TestListPaymentsNoCustomer(t *testing.T) {
	api := &fakeAPI{
		sessions: []*stripe.CheckoutSession{
			{PaymentIntent: &stripe.PaymentIntent{ID: "pi_1"}},
		},
	}
	svc := NewService(api, nil)

	got, err := svc.ListPayments(context.Background(), "plink_1")
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Nil(t, got[0].Customer)
}

func TestListPaymentsUpstreamError(t *testing.T) {
	api := &fakeAPI{err: errors.New("no such payment link")}
	svc := NewService(api, nil)

	_, err := svc.ListPayments(context.Background(), "plink_missing")
	assert.EqualError(t, err, "no such payment link")
}
