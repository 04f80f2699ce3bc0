package payment

import (
	"context"
	"fmt"
	"sync"

	"github.com/cdt-manas/Tikat/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
)

// FakeProvider is an in-memory payment provider for integration tests. It
// hands out session ids and plays back the metadata a real provider would
// hold, with a configurable payment status.
type FakeProvider struct {
	mu       sync.Mutex
	sessions map[string]*stripe.CheckoutSession
	counter  int

	// PaymentStatus is assigned to every created session when it is
	// retrieved. Defaults to paid.
	PaymentStatus stripe.CheckoutSessionPaymentStatus
}

func NewFakeProvider() *FakeProvider {
	return &FakeProvider{
		sessions:      make(map[string]*stripe.CheckoutSession),
		PaymentStatus: stripe.CheckoutSessionPaymentStatusPaid,
	}
}

func (f *FakeProvider) CreateCheckoutSession(
	ctx context.Context,
	user *domain.User,
	checkout domain.Checkout) (*stripe.CheckoutSession, error) {

	f.mu.Lock()
	defer f.mu.Unlock()

	f.counter++
	id := fmt.Sprintf("cs_test_%03d", f.counter)

	metadata := domain.CheckoutMetadata{
		UserID: user.ID,
		ShowID: checkout.Show.ID,
		Seats:  checkout.Seats,
	}

	amount := checkout.Show.TotalFor(len(checkout.Seats))

	session := &stripe.CheckoutSession{
		ID:          id,
		URL:         "https://checkout.example.com/" + id,
		Metadata:    metadata.Encode(),
		AmountTotal: amount.Mul(decimal.NewFromInt(100)).IntPart(),
	}

	f.sessions[id] = session

	return session, nil
}

func (f *FakeProvider) RetrieveCheckoutSession(ctx context.Context, id string) (*stripe.CheckoutSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	session, ok := f.sessions[id]
	if !ok {
		return nil, &stripe.Error{
			Type: stripe.ErrorTypeInvalidRequest,
			Code: stripe.ErrorCodeResourceMissing,
			Msg:  fmt.Sprintf("No such checkout.session: '%s'", id),
		}
	}

	session.PaymentStatus = f.PaymentStatus

	return session, nil
}
