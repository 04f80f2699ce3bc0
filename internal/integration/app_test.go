package integration_test

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/cdt-manas/Tikat/internal/app"
	"github.com/cdt-manas/Tikat/internal/domain"
	"github.com/cdt-manas/Tikat/internal/mailer"
	"github.com/cdt-manas/Tikat/internal/payment"
	"github.com/cdt-manas/Tikat/internal/repository"
	appvalidator "github.com/cdt-manas/Tikat/internal/validator"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type TestApp struct {
	App             *app.Application
	DB              *pgxpool.Pool
	Mailer          *mailer.MockMailer
	PaymentProvider *payment.FakeProvider
	SessionManager  *scs.SessionManager
	SeatRepo        domain.SeatRepository
	BookingRepo     domain.BookingRepository
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	validator := appvalidator.NewValidator()
	mockMailer := mailer.NewMockMailer()

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	sessionManager := app.NewSessionManager(redisClient)

	userRepo := repository.NewPostgresUserRepository(db)
	movieRepo := repository.NewPostgresMovieRepository(db)
	theaterRepo := repository.NewPostgresTheaterRepository(db)
	showRepo := repository.NewPostgresShowRepository(db)
	seatRepo := repository.NewPostgresSeatRepository(db)
	bookingRepo := repository.NewPostgresBookingRepository(db)

	paymentProvider := payment.NewFakeProvider()

	application := app.NewApp(
		cfg,
		logger,
		db,
		redisClient,
		validator,
		mockMailer,
		sessionManager,
		userRepo,
		movieRepo,
		theaterRepo,
		showRepo,
		seatRepo,
		bookingRepo,
		paymentProvider,
	)

	return &TestApp{
		App:             application,
		DB:              db,
		Mailer:          mockMailer,
		PaymentProvider: paymentProvider,
		SessionManager:  sessionManager,
		SeatRepo:        seatRepo,
		BookingRepo:     bookingRepo,
	}, nil
}

// authenticatedUserCookies commits a session carrying the given identity
// straight to the session store and returns the matching cookie, so tests
// don't depend on the external authentication service.
func (ta *TestApp) authenticatedUserCookies(t testing.TB, userId int, role string) []http.Cookie {
	ctx, err := ta.SessionManager.Load(context.Background(), "")
	require.NoError(t, err)

	ta.SessionManager.Put(ctx, app.SessionKeyUserId.String(), userId)
	ta.SessionManager.Put(ctx, app.SessionKeyUserRole.String(), role)

	token, _, err := ta.SessionManager.Commit(ctx)
	require.NoError(t, err)

	return []http.Cookie{{Name: "session_id", Value: token}}
}
