package app

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/cdt-manas/Tikat/internal/domain"
	"github.com/cdt-manas/Tikat/internal/mocks"
	"github.com/stretchr/testify/suite"
)

type UpdateTheaterTestSuite struct {
	suite.Suite
	app         *Application
	theaterRepo *mocks.MockTheaterRepo
}

func (s *UpdateTheaterTestSuite) SetupTest() {
	s.theaterRepo = &mocks.MockTheaterRepo{}

	s.app = newTestApplication(func(a *Application) {
		a.theaterRepo = s.theaterRepo
	})
}

func TestUpdateTheaterSuite(t *testing.T) {
	suite.Run(t, new(UpdateTheaterTestSuite))
}

func (s *UpdateTheaterTestSuite) TestUpdateTheater() {
	tests := []struct {
		name           string
		body           any
		setupMocks     func()
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:           "should fail when the city is missing",
			body:           UpdateTheaterRequest{Name: "Grand Cinema", Address: "1 Main Street"},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "is required",
		},
		{
			name: "should fail when the theater does not exist",
			body: UpdateTheaterRequest{Name: "Grand Cinema", City: "Springfield", Address: "1 Main Street"},
			setupMocks: func() {
				s.theaterRepo.UpdateFunc = func(ctx context.Context, theater *domain.Theater) error {
					return domain.ErrRecordNotFound
				}
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "should update the theater but not its screens",
			body: UpdateTheaterRequest{Name: "Grand Cinema", City: "Springfield", Address: "1 Main Street"},
			setupMocks: func() {
				s.theaterRepo.UpdateFunc = func(ctx context.Context, theater *domain.Theater) error {
					s.Equal(4, theater.ID)
					s.Equal("Grand Cinema", theater.Name)
					return nil
				}
				s.theaterRepo.GetByIdFunc = func(ctx context.Context, id int) (*domain.Theater, error) {
					return &domain.Theater{
						ID:      id,
						Name:    "Grand Cinema",
						City:    "Springfield",
						Address: "1 Main Street",
						Screens: []domain.Screen{testScreen()},
					}, nil
				}
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			if tt.setupMocks != nil {
				tt.setupMocks()
			}

			w, r := executeRequest(s.T(), http.MethodPut, "/theaters/4", tt.body)
			r = setupTestSession(s.T(), s.app, r, 1, domain.RoleAdmin)
			r = withChiURLParam(r, "id", "4")

			handler := http.Handler(http.HandlerFunc(s.app.UpdateTheater))
			handler = s.app.requireAdmin(handler)
			handler = s.app.sessionManager.LoadAndSave(handler)
			handler = s.app.requireAuthentication(handler)
			handler.ServeHTTP(w, r)

			s.Equal(tt.wantStatus, w.Code)
			checkErrorResponse(s.T(), w, tt.wantStatus, tt.wantErrMessage)

			if tt.wantStatus == http.StatusOK {
				var resp TheaterResponse
				s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))

				s.Equal(4, resp.ID)
				s.Equal("Springfield", resp.City)
				s.Len(resp.Screens, 1)
			}
		})
	}
}
