package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/cdt-manas/Tikat/internal/domain"
)

type CreateMovieRequest struct {
	Title       string    `json:"title" validate:"required,max=200"`
	Description string    `json:"description" validate:"required"`
	Genres      []string  `json:"genres" validate:"required,min=1,max=5,dive,required"`
	Language    string    `json:"language" validate:"required"`
	Duration    int       `json:"duration" validate:"required,gt=0,lte=600"`
	PosterUrl   string    `json:"posterUrl" validate:"omitempty,url"`
	ReleaseDate time.Time `json:"releaseDate" validate:"required"`
}

type MovieResponse struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Genres      []string  `json:"genres"`
	Language    string    `json:"language"`
	Duration    int       `json:"duration"`
	PosterUrl   string    `json:"posterUrl"`
	ReleaseDate time.Time `json:"releaseDate"`
	CreatedAt   time.Time `json:"createdAt"`
}

type MovieListResponse struct {
	Movies   []MovieResponse  `json:"movies"`
	Metadata MetadataResponse `json:"metadata"`
}

func toMovieResponse(m *domain.Movie) MovieResponse {
	return MovieResponse{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Genres:      m.Genres,
		Language:    m.Language,
		Duration:    m.Duration,
		PosterUrl:   m.PosterUrl,
		ReleaseDate: m.ReleaseDate,
		CreatedAt:   m.CreatedAt,
	}
}

func (app *Application) GetMovies(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()

	pagination := app.readPagination(qs)

	filters := domain.MovieFilters{
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
		Term:     app.readQueryString(qs, "term", ""),
		Sort:     app.readQueryString(qs, "sort", "id"),
	}

	switch filters.SortColumn() {
	case "id", "title", "release_date", "duration":
	default:
		app.badRequestResponse(w, r, errors.New("invalid sort parameter"))
		return
	}

	movies, metadata, err := app.movieRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := MovieListResponse{
		Movies:   make([]MovieResponse, 0, len(movies)),
		Metadata: toMetadataResponse(metadata),
	}
	for _, m := range movies {
		resp.Movies = append(resp.Movies, toMovieResponse(m))
	}

	app.writeJSON(w, http.StatusOK, resp, nil)
}

func (app *Application) GetMovie(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	movie, err := app.movieRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.writeJSON(w, http.StatusOK, toMovieResponse(movie), nil)
}

func (app *Application) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req CreateMovieRequest

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

	movie := &domain.Movie{
		Title:       req.Title,
		Description: req.Description,
		Genres:      req.Genres,
		Language:    req.Language,
		Duration:    req.Duration,
		PosterUrl:   req.PosterUrl,
		ReleaseDate: req.ReleaseDate,
	}

	err = app.movieRepo.Create(r.Context(), movie)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.writeJSON(w, http.StatusCreated, toMovieResponse(movie), nil)
}

// UpdateMovie replaces the movie's details wholesale.
func (app *Application) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	var req CreateMovieRequest

	err = app.readJSON(w, r, &req)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(req)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	movie := &domain.Movie{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Genres:      req.Genres,
		Language:    req.Language,
		Duration:    req.Duration,
		PosterUrl:   req.PosterUrl,
		ReleaseDate: req.ReleaseDate,
	}

	err = app.movieRepo.Update(r.Context(), movie)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.writeJSON(w, http.StatusOK, toMovieResponse(movie), nil)
}

func (app *Application) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	err = app.movieRepo.Delete(r.Context(), id)
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
