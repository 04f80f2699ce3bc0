package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cdt-manas/Tikat/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateShowRequest struct {
	MovieID     int             `json:"movieId" validate:"required,gt=0"`
	TheaterID   int             `json:"theaterId" validate:"required,gt=0"`
	ScreenName  string          `json:"screenName" validate:"required"`
	Format      string          `json:"format" validate:"required,show_format"`
	StartsAt    time.Time       `json:"startsAt" validate:"required"`
	TicketPrice decimal.Decimal `json:"ticketPrice"`
}

type ShowResponse struct {
	ID          int             `json:"id"`
	MovieID     int             `json:"movieId"`
	TheaterID   int             `json:"theaterId"`
	ScreenName  string          `json:"screenName"`
	Rows        int             `json:"rows"`
	Cols        int             `json:"cols"`
	Format      string          `json:"format"`
	StartsAt    time.Time       `json:"startsAt"`
	TicketPrice decimal.Decimal `json:"ticketPrice"`
	BookedSeats []string        `json:"bookedSeats"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type ShowSummaryResponse struct {
	ID          int             `json:"id"`
	MovieID     int             `json:"movieId"`
	MovieTitle  string          `json:"movieTitle"`
	PosterUrl   string          `json:"posterUrl"`
	TheaterID   int             `json:"theaterId"`
	TheaterName string          `json:"theaterName"`
	TheaterCity string          `json:"theaterCity"`
	ScreenName  string          `json:"screenName"`
	Format      string          `json:"format"`
	StartsAt    time.Time       `json:"startsAt"`
	TicketPrice decimal.Decimal `json:"ticketPrice"`
}

type ShowListResponse struct {
	Shows []ShowSummaryResponse `json:"shows"`
}

func toShowResponse(s *domain.Show) ShowResponse {
	bookedSeats := s.BookedSeats
	if bookedSeats == nil {
		bookedSeats = []string{}
	}

	return ShowResponse{
		ID:          s.ID,
		MovieID:     s.MovieID,
		TheaterID:   s.TheaterID,
		ScreenName:  s.Screen.Name,
		Rows:        s.Screen.Rows,
		Cols:        s.Screen.Cols,
		Format:      string(s.Format),
		StartsAt:    s.StartsAt,
		TicketPrice: s.TicketPrice,
		BookedSeats: bookedSeats,
		CreatedAt:   s.CreatedAt,
	}
}

func (app *Application) GetShows(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()

	filters := domain.ShowFilters{
		MovieID: app.readQueryInt(qs, "movieId", 0),
	}

	if date := qs.Get("date"); date != "" {
		dateFrom, err := time.Parse("2006-01-02", date)
		if err != nil {
			app.badRequestResponse(w, r, errors.New("date must be in YYYY-MM-DD format"))
			return
		}
		filters.DateFrom = dateFrom
	}

	summaries, err := app.showRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := ShowListResponse{Shows: make([]ShowSummaryResponse, 0, len(summaries))}
	for _, s := range summaries {
		resp.Shows = append(resp.Shows, ShowSummaryResponse{
			ID:          s.ID,
			MovieID:     s.MovieID,
			MovieTitle:  s.MovieTitle,
			PosterUrl:   s.PosterUrl,
			TheaterID:   s.TheaterID,
			TheaterName: s.TheaterName,
			TheaterCity: s.TheaterCity,
			ScreenName:  s.ScreenName,
			Format:      string(s.Format),
			StartsAt:    s.StartsAt,
			TicketPrice: s.TicketPrice,
		})
	}

	app.writeJSON(w, http.StatusOK, resp, nil)
}

func (app *Application) GetShow(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	show, err := app.showRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.writeJSON(w, http.StatusOK, toShowResponse(show), nil)
}

// CreateShow schedules a screening. The screen geometry and ticket price
// are snapshotted onto the show, so later theater or pricing changes never
// affect already scheduled shows.
func (app *Application) CreateShow(w http.ResponseWriter, r *http.Request) {
	var req CreateShowRequest

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

	if !req.TicketPrice.IsPositive() {
		app.badRequestResponse(w, r, errors.New("ticketPrice must be greater than zero"))
		return
	}

	_, err = app.movieRepo.GetById(r.Context(), req.MovieID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.badRequestResponse(w, r, fmt.Errorf("movie %d does not exist", req.MovieID))
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	theater, err := app.theaterRepo.GetById(r.Context(), req.TheaterID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.badRequestResponse(w, r, fmt.Errorf("theater %d does not exist", req.TheaterID))
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	screen := theater.ScreenByName(req.ScreenName)
	if screen == nil {
		app.badRequestResponse(w, r, fmt.Errorf("theater %d has no screen named %q", req.TheaterID, req.ScreenName))
		return
	}

	show := &domain.Show{
		MovieID:     req.MovieID,
		TheaterID:   req.TheaterID,
		Screen:      *screen,
		Format:      domain.ShowFormat(req.Format),
		StartsAt:    req.StartsAt,
		TicketPrice: req.TicketPrice,
	}

	err = app.showRepo.Create(r.Context(), show)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateShowSlot):
			app.errorResponse(w, r, http.StatusConflict, "A show is already scheduled on this screen at this time")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.writeJSON(w, http.StatusCreated, toShowResponse(show), nil)
}

func (app *Application) DeleteShow(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	err = app.showRepo.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
