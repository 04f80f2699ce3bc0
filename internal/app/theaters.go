package app

import (
	"errors"
	"net/http"

	"github.com/cdt-manas/Tikat/internal/domain"
)

type CreateScreenRequest struct {
	Name string `json:"name" validate:"required,max=50"`
	Rows int    `json:"rows" validate:"required,gt=0,lte=26"`
	Cols int    `json:"cols" validate:"required,gt=0,lte=50"`
}

type CreateTheaterRequest struct {
	Name    string                `json:"name" validate:"required,max=100"`
	City    string                `json:"city" validate:"required,max=100"`
	Address string                `json:"address" validate:"required,max=200"`
	Screens []CreateScreenRequest `json:"screens" validate:"required,min=1,max=20,dive"`
}

type UpdateTheaterRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	City    string `json:"city" validate:"required,max=100"`
	Address string `json:"address" validate:"required,max=200"`
}

type ScreenResponse struct {
	Name string `json:"name"`
	Rows int    `json:"rows"`
	Cols int    `json:"cols"`
}

type TheaterResponse struct {
	ID      int              `json:"id"`
	Name    string           `json:"name"`
	City    string           `json:"city"`
	Address string           `json:"address"`
	Screens []ScreenResponse `json:"screens"`
}

type TheaterListResponse struct {
	Theaters []TheaterResponse `json:"theaters"`
	Metadata MetadataResponse  `json:"metadata"`
}

func toTheaterResponse(t *domain.Theater) TheaterResponse {
	screens := make([]ScreenResponse, 0, len(t.Screens))
	for _, s := range t.Screens {
		screens = append(screens, ScreenResponse{Name: s.Name, Rows: s.Rows, Cols: s.Cols})
	}

	return TheaterResponse{
		ID:      t.ID,
		Name:    t.Name,
		City:    t.City,
		Address: t.Address,
		Screens: screens,
	}
}

func (app *Application) GetTheaters(w http.ResponseWriter, r *http.Request) {
	pagination := app.readPagination(r.URL.Query())

	theaters, metadata, err := app.theaterRepo.GetAll(r.Context(), pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := TheaterListResponse{
		Theaters: make([]TheaterResponse, 0, len(theaters)),
		Metadata: toMetadataResponse(metadata),
	}
	for i := range theaters {
		resp.Theaters = append(resp.Theaters, toTheaterResponse(&theaters[i]))
	}

	app.writeJSON(w, http.StatusOK, resp, nil)
}

func (app *Application) GetTheater(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	theater, err := app.theaterRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.writeJSON(w, http.StatusOK, toTheaterResponse(theater), nil)
}

func (app *Application) CreateTheater(w http.ResponseWriter, r *http.Request) {
	var req CreateTheaterRequest

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

	seen := make(map[string]bool, len(req.Screens))
	for _, s := range req.Screens {
		if seen[s.Name] {
			app.badRequestResponse(w, r, errors.New("screen names must be unique within a theater"))
			return
		}
		seen[s.Name] = true
	}

	theater := &domain.Theater{
		Name:    req.Name,
		City:    req.City,
		Address: req.Address,
		Screens: make([]domain.Screen, 0, len(req.Screens)),
	}
	for _, s := range req.Screens {
		theater.Screens = append(theater.Screens, domain.Screen{Name: s.Name, Rows: s.Rows, Cols: s.Cols})
	}

	err = app.theaterRepo.Create(r.Context(), theater)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.writeJSON(w, http.StatusCreated, toTheaterResponse(theater), nil)
}

// UpdateTheater changes the theater's name, city and address. Screen
// layouts are fixed at creation time; shows snapshot their geometry anyway.
func (app *Application) UpdateTheater(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	var req UpdateTheaterRequest

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

	theater := &domain.Theater{
		ID:      id,
		Name:    req.Name,
		City:    req.City,
		Address: req.Address,
	}

	err = app.theaterRepo.Update(r.Context(), theater)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	updated, err := app.theaterRepo.GetById(r.Context(), id)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.writeJSON(w, http.StatusOK, toTheaterResponse(updated), nil)
}

func (app *Application) DeleteTheater(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	err = app.theaterRepo.Delete(r.Context(), id)
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
