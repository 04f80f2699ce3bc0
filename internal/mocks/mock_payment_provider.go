package mocks

import (
	"context"

	"github.com/cdt-manas/Tikat/internal/domain"
	"github.com/stripe/stripe-go/v82"
)

type MockPaymentProvider struct {
	domain.PaymentProvider
	CreateCheckoutSessionFunc   func(ctx context.Context, user *domain.User, checkout domain.Checkout) (*stripe.CheckoutSession, error)
	RetrieveCheckoutSessionFunc func(ctx context.Context, id string) (*stripe.CheckoutSession, error)
}

func (m *MockPaymentProvider) CreateCheckoutSession(
	ctx context.Context,
	user *domain.User,
	checkout domain.Checkout) (*stripe.CheckoutSession, error) {

	return m.CreateCheckoutSessionFunc(ctx, user, checkout)
}

func (m *MockPaymentProvider) RetrieveCheckoutSession(ctx context.Context, id string) (*stripe.CheckoutSession, error) {
	return m.RetrieveCheckoutSessionFunc(ctx, id)
}
