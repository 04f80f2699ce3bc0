package domain

import (
	"context"

	"github.com/stripe/stripe-go/v82"
)

// Checkout is everything the payment provider needs to present a checkout
// page for a candidate purchase.
type Checkout struct {
	Show        *Show
	MovieTitle  string
	TheaterName string
	Seats       []string
}

type PaymentProvider interface {
	CreateCheckoutSession(ctx context.Context, user *User, checkout Checkout) (*stripe.CheckoutSession, error)
	RetrieveCheckoutSession(ctx context.Context, id string) (*stripe.CheckoutSession, error)
}
