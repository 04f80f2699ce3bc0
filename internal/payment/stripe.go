package payment

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/cdt-manas/Tikat/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
)

type StripePaymentProvider struct {
	successUrl string
	failureUrl string
}

func NewStripePaymentProvider(successUrl, failureUrl string) *StripePaymentProvider {
	return &StripePaymentProvider{
		successUrl: successUrl,
		failureUrl: failureUrl,
	}
}

func (s *StripePaymentProvider) CreateCheckoutSession(
	ctx context.Context,
	user *domain.User,
	checkout domain.Checkout) (*stripe.CheckoutSession, error) {

	show := checkout.Show
	priceCents := show.TicketPrice.Mul(decimal.NewFromInt(100)).IntPart()

	lineItem := &stripe.CheckoutSessionLineItemParams{
		PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
			Currency:   stripe.String(string(stripe.CurrencyUSD)),
			UnitAmount: stripe.Int64(priceCents),
			ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
				Name: stripe.String(fmt.Sprintf("🎬 %s - %s", checkout.MovieTitle, checkout.TheaterName)),
				Description: stripe.String(fmt.Sprintf(
					"Seats: %s • %s • %s",
					strings.Join(checkout.Seats, ", "),
					show.StartsAt.Format("Jan 2, 2006 15:04"),
					show.Format,
				)),
			},
		},
		Quantity: stripe.Int64(int64(len(checkout.Seats))),
	}

	metadata := domain.CheckoutMetadata{
		UserID: user.ID,
		ShowID: show.ID,
		Seats:  checkout.Seats,
	}

	params := &stripe.CheckoutSessionParams{
		Params:            stripe.Params{Context: ctx},
		LineItems:         []*stripe.CheckoutSessionLineItemParams{lineItem},
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(s.successUrl),
		CancelURL:         stripe.String(s.failureUrl),
		Metadata:          metadata.Encode(),
		CustomerEmail:     &user.Email,
		ClientReferenceID: stripe.String(strconv.Itoa(user.ID)),
	}

	return session.New(params)
}

func (s *StripePaymentProvider) RetrieveCheckoutSession(ctx context.Context, id string) (*stripe.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Params: stripe.Params{Context: ctx},
	}

	return session.Get(id, params)
}
