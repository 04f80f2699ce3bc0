package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/cdt-manas/Tikat/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
)

const (
	checkoutSessionTimeout  = 10 * time.Second
	retrieveSessionTimeout  = 5 * time.Second
	retrieveSessionAttempts = 3
)

type CreateBookingRequest struct {
	ShowID int      `json:"showId" validate:"required,gt=0"`
	Seats  []string `json:"seats" validate:"required,min=1,max=6,dive,seat_label"`
}

type ConfirmBookingRequest struct {
	SessionID string `json:"session_id" validate:"required"`
}

type BookingResponse struct {
	ID          int             `json:"id"`
	Reference   string          `json:"reference"`
	ShowID      int             `json:"showId"`
	Seats       []string        `json:"seats"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type BookingSummaryResponse struct {
	BookingID   int             `json:"bookingId"`
	Reference   string          `json:"reference"`
	MovieTitle  string          `json:"movieTitle"`
	PosterUrl   string          `json:"posterUrl"`
	TheaterName string          `json:"theaterName"`
	TheaterCity string          `json:"theaterCity"`
	ShowDate    time.Time       `json:"showDate"`
	Seats       []string        `json:"seats"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type BookingListResponse struct {
	Bookings []BookingSummaryResponse `json:"bookings"`
	Metadata MetadataResponse         `json:"metadata"`
}

type CheckoutSessionResponse struct {
	SessionID string `json:"sessionId"`
	Url       string `json:"url"`
}

type BookingStatsResponse struct {
	Revenue  decimal.Decimal `json:"revenue"`
	Bookings int             `json:"bookings"`
	Movies   int             `json:"movies"`
	Theaters int             `json:"theaters"`
}

func toBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		Reference:   b.Reference.String(),
		ShowID:      b.ShowID,
		Seats:       b.Seats,
		TotalAmount: b.TotalAmount,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt,
	}
}

func toBookingSummaryResponses(summaries []domain.BookingSummary) []BookingSummaryResponse {
	resp := make([]BookingSummaryResponse, 0, len(summaries))

	for _, s := range summaries {
		resp = append(resp, BookingSummaryResponse{
			BookingID:   s.BookingID,
			Reference:   s.Reference.String(),
			MovieTitle:  s.MovieTitle,
			PosterUrl:   s.PosterUrl,
			TheaterName: s.TheaterName,
			TheaterCity: s.TheaterCity,
			ShowDate:    s.ShowDate,
			Seats:       s.Seats,
			TotalAmount: s.TotalAmount,
			Status:      string(s.Status),
			CreatedAt:   s.CreatedAt,
		})
	}

	return resp
}

// CreateBooking books seats directly, without going through the payment
// provider. The seats are claimed first in one atomic operation; the claim
// is rolled back if writing the booking record fails afterwards.
func (app *Application) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest

	err := app.readJSON(w, r, &req)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(req)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	show, err := app.showRepo.GetById(r.Context(), req.ShowID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = show.Screen.ValidateSeats(req.Seats)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	userId := app.contextGetUserId(r)

	err = app.seatRepo.ClaimSeats(r.Context(), show.ID, req.Seats)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSeatsAlreadyBooked):
			app.seatConflictResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	booking := &domain.Booking{
		Reference:   uuid.New(),
		UserID:      userId,
		ShowID:      show.ID,
		Seats:       req.Seats,
		TotalAmount: show.TotalFor(len(req.Seats)),
		Status:      domain.BookingStatusConfirmed,
	}

	err = app.bookingRepo.Create(r.Context(), booking)
	if err != nil {
		app.releaseSeats(r.Context(), show.ID, req.Seats)
		app.serverErrorResponse(w, r, err)
		return
	}

	app.sendBookingConfirmation(userId, booking)

	app.writeJSON(w, http.StatusCreated, toBookingResponse(booking), nil)
}

// CreateCheckoutSessionHandler opens a checkout session at the payment
// provider for a candidate purchase. The purchase state travels on the
// session's metadata, so confirmation never has to trust anything the
// client sends back beyond the session id.
func (app *Application) CreateCheckoutSessionHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest

	err := app.readJSON(w, r, &req)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(req)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	user, err := app.userRepo.GetById(r.Context(), app.contextGetUserId(r))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	show, err := app.showRepo.GetById(r.Context(), req.ShowID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = show.Screen.ValidateSeats(req.Seats)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	// Early availability check. The authoritative claim happens at
	// confirmation time, so this only spares the user a pointless payment.
	for _, seat := range req.Seats {
		if slices.Contains(show.BookedSeats, seat) {
			app.seatConflictResponse(w, r)
			return
		}
	}

	movie, err := app.movieRepo.GetById(r.Context(), show.MovieID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	theater, err := app.theaterRepo.GetById(r.Context(), show.TheaterID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), checkoutSessionTimeout)
	defer cancel()

	session, err := app.paymentProvider.CreateCheckoutSession(ctx, user, domain.Checkout{
		Show:        show,
		MovieTitle:  movie.Title,
		TheaterName: theater.Name,
		Seats:       req.Seats,
	})
	if err != nil {
		app.paymentProviderErrorResponse(w, r, err)
		return
	}

	resp := CheckoutSessionResponse{
		SessionID: session.ID,
		Url:       session.URL,
	}

	app.writeJSON(w, http.StatusCreated, resp, nil)
}

// ConfirmBookingHandler finalizes a purchase after the user returns from
// the payment provider. The session is retrieved server-side and only its
// payment status and metadata are trusted. Confirming the same session
// twice returns the original booking rather than creating another one.
func (app *Application) ConfirmBookingHandler(w http.ResponseWriter, r *http.Request) {
	var req ConfirmBookingRequest

	err := app.readJSON(w, r, &req)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(req)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	existing, err := app.bookingRepo.GetByCheckoutSessionID(r.Context(), req.SessionID)
	if err != nil && !errors.Is(err, domain.ErrRecordNotFound) {
		app.serverErrorResponse(w, r, err)
		return
	}
	if existing != nil {
		app.writeJSON(w, http.StatusOK, toBookingResponse(existing), nil)
		return
	}

	session, err := app.retrieveCheckoutSession(r.Context(), req.SessionID)
	if err != nil {
		var stripeErr *stripe.Error
		switch {
		case errors.As(err, &stripeErr) && stripeErr.Code == stripe.ErrorCodeResourceMissing:
			app.notFoundResponse(w, r)
		case errors.As(err, &stripeErr) && stripeErr.Type == stripe.ErrorTypeInvalidRequest:
			app.badRequestResponse(w, r, err)
		default:
			app.paymentProviderErrorResponse(w, r, err)
		}
		return
	}

	if session.PaymentStatus != stripe.CheckoutSessionPaymentStatusPaid {
		err := fmt.Errorf("%w: session %s has payment status %s",
			domain.ErrPaymentNotVerified, req.SessionID, session.PaymentStatus)
		app.paymentNotVerifiedResponse(w, r, err)
		return
	}

	metadata, err := domain.ParseCheckoutMetadata(session.Metadata)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	booking := &domain.Booking{
		Reference:         uuid.New(),
		UserID:            metadata.UserID,
		ShowID:            metadata.ShowID,
		Seats:             metadata.Seats,
		TotalAmount:       decimal.NewFromInt(session.AmountTotal).Div(decimal.NewFromInt(100)),
		Status:            domain.BookingStatusConfirmed,
		CheckoutSessionID: &req.SessionID,
	}

	err = app.bookingRepo.CreateWithSeats(r.Context(), booking)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSeatsAlreadyBooked):
			// The user has paid for seats that were sold in the meantime.
			// This needs a refund, so it must never fail silently.
			app.logger.Error("seat conflict after successful payment, manual reconciliation required",
				"sessionId", req.SessionID,
				"userId", metadata.UserID,
				"showId", metadata.ShowID,
				"seats", metadata.Seats,
			)
			app.seatConflictResponse(w, r)
		case errors.Is(err, domain.ErrDuplicateBooking):
			// Lost a race with a concurrent confirm of the same session.
			existing, err := app.bookingRepo.GetByCheckoutSessionID(r.Context(), req.SessionID)
			if err != nil {
				app.serverErrorResponse(w, r, err)
				return
			}
			app.writeJSON(w, http.StatusOK, toBookingResponse(existing), nil)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.sendBookingConfirmation(metadata.UserID, booking)

	app.writeJSON(w, http.StatusCreated, toBookingResponse(booking), nil)
}

func (app *Application) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	pagination := app.readPagination(r.URL.Query())

	summaries, metadata, err := app.bookingRepo.GetSummariesByUserId(r.Context(), app.contextGetUserId(r), pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := BookingListResponse{
		Bookings: toBookingSummaryResponses(summaries),
		Metadata: toMetadataResponse(metadata),
	}

	app.writeJSON(w, http.StatusOK, resp, nil)
}

func (app *Application) GetBooking(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	booking, err := app.bookingRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	if booking.UserID != app.contextGetUserId(r) && app.contextGetUserRole(r) != domain.RoleAdmin {
		app.notFoundResponse(w, r)
		return
	}

	app.writeJSON(w, http.StatusOK, toBookingResponse(booking), nil)
}

func (app *Application) GetAllBookings(w http.ResponseWriter, r *http.Request) {
	pagination := app.readPagination(r.URL.Query())

	summaries, metadata, err := app.bookingRepo.GetAll(r.Context(), pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := BookingListResponse{
		Bookings: toBookingSummaryResponses(summaries),
		Metadata: toMetadataResponse(metadata),
	}

	app.writeJSON(w, http.StatusOK, resp, nil)
}

func (app *Application) GetAdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := app.bookingRepo.GetStats(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := BookingStatsResponse{
		Revenue:  stats.Revenue,
		Bookings: stats.Bookings,
		Movies:   stats.Movies,
		Theaters: stats.Theaters,
	}

	app.writeJSON(w, http.StatusOK, resp, nil)
}

// retrieveCheckoutSession fetches the session from the payment provider,
// retrying transient failures a few times before giving up. Invalid-request
// errors are the caller's mistake and can never succeed on retry, so they
// fail fast.
func (app *Application) retrieveCheckoutSession(ctx context.Context, id string) (*stripe.CheckoutSession, error) {
	var lastErr error

	for attempt := 1; attempt <= retrieveSessionAttempts; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, retrieveSessionTimeout)
		session, err := app.paymentProvider.RetrieveCheckoutSession(attemptCtx, id)
		cancel()

		if err == nil {
			return session, nil
		}
		lastErr = err

		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Type == stripe.ErrorTypeInvalidRequest {
			return nil, err
		}

		app.logger.Warn("failed to retrieve checkout session",
			"sessionId", id,
			"attempt", attempt,
			"error", err,
		)

		if attempt < retrieveSessionAttempts {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * 250 * time.Millisecond):
			}
		}
	}

	return nil, fmt.Errorf("retrieve checkout session %s: %w", id, lastErr)
}

// releaseSeats is the compensating action for a claim whose booking insert
// failed. It must run even when the request context is already gone.
func (app *Application) releaseSeats(ctx context.Context, showID int, seats []string) {
	releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	err := app.seatRepo.ReleaseSeats(releaseCtx, showID, seats)
	if err != nil {
		app.logger.Error("failed to release claimed seats",
			"showId", showID,
			"seats", seats,
			"error", err,
		)
	}
}

func (app *Application) sendBookingConfirmation(userId int, booking *domain.Booking) {
	app.background(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		user, err := app.userRepo.GetById(ctx, userId)
		if err != nil {
			app.logger.Error("failed to load user for confirmation email", "userId", userId, "error", err)
			return
		}

		show, err := app.showRepo.GetById(ctx, booking.ShowID)
		if err != nil {
			app.logger.Error("failed to load show for confirmation email", "showId", booking.ShowID, "error", err)
			return
		}

		movie, err := app.movieRepo.GetById(ctx, show.MovieID)
		if err != nil {
			app.logger.Error("failed to load movie for confirmation email", "movieId", show.MovieID, "error", err)
			return
		}

		theater, err := app.theaterRepo.GetById(ctx, show.TheaterID)
		if err != nil {
			app.logger.Error("failed to load theater for confirmation email", "theaterId", show.TheaterID, "error", err)
			return
		}

		data := map[string]any{
			"Name":        user.Name,
			"MovieTitle":  movie.Title,
			"TheaterName": theater.Name,
			"Seats":       booking.Seats,
			"TotalAmount": booking.TotalAmount.StringFixed(2),
			"Reference":   booking.Reference.String(),
		}

		err = app.mailer.Send(user.Email, "booking_confirmation.tmpl", data)
		if err != nil {
			app.logger.Error("failed to send confirmation email", "userId", userId, "error", err)
		}
	})
}
