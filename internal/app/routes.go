package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"
)

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.Logger)
	r.Use(middleware.RequestID)
	r.Use(otelchi.Middleware("tikat-api", otelchi.WithChiRoutes(r)))
	r.Use(app.recoverPanic)
	r.Use(app.sessionManager.LoadAndSave)

	r.Get("/health", app.GetHealth)

	r.Route("/movies", func(r chi.Router) {
		r.Get("/", app.GetMovies)
		r.Get("/{id}", app.GetMovie)
		r.With(app.requireAuthentication, app.requireAdmin).Post("/", app.CreateMovie)
		r.With(app.requireAuthentication, app.requireAdmin).Put("/{id}", app.UpdateMovie)
		r.With(app.requireAuthentication, app.requireAdmin).Delete("/{id}", app.DeleteMovie)
	})

	r.Route("/theaters", func(r chi.Router) {
		r.Get("/", app.GetTheaters)
		r.Get("/{id}", app.GetTheater)
		r.With(app.requireAuthentication, app.requireAdmin).Post("/", app.CreateTheater)
		r.With(app.requireAuthentication, app.requireAdmin).Put("/{id}", app.UpdateTheater)
		r.With(app.requireAuthentication, app.requireAdmin).Delete("/{id}", app.DeleteTheater)
	})

	r.Route("/shows", func(r chi.Router) {
		r.Get("/", app.GetShows)
		r.Get("/{id}", app.GetShow)
		r.With(app.requireAuthentication, app.requireAdmin).Post("/", app.CreateShow)
		r.With(app.requireAuthentication, app.requireAdmin).Delete("/{id}", app.DeleteShow)
	})

	r.Route("/bookings", func(r chi.Router) {
		r.Use(app.requireAuthentication)

		r.Post("/", app.CreateBooking)
		r.Post("/create-checkout-session", app.CreateCheckoutSessionHandler)
		r.Post("/confirm", app.ConfirmBookingHandler)
		r.Get("/my-bookings", app.GetMyBookings)
		r.With(app.requireAdmin).Get("/", app.GetAllBookings)
		r.With(app.requireAdmin).Get("/stats", app.GetAdminStats)
		r.Get("/{id}", app.GetBooking)
	})

	return r
}
