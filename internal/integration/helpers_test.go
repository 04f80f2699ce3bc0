package integration_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var keysToIgnore = map[string]struct{}{
	"timestamp": {},
	"requestId": {},
	"createdAt": {},
	"reference": {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string, cookies []http.Cookie) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	for i := range cookies {
		req.AddCookie(&cookies[i])
	}

	return req, nil
}

func newRecorderFor(app *TestApp, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	app.App.Routes().ServeHTTP(rec, req)

	return rec
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	cleanMap(actual)

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indeterministic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		_, ok := keysToIgnore[k]
		return ok
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func cleanMap(m map[string]any) {
	for k := range m {
		if _, ok := keysToIgnore[k]; ok {
			delete(m, k)
			continue
		}
		if nested, ok := m[k].(map[string]any); ok {
			cleanMap(nested)
		}
	}
}

func mustDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func truncateAll(t testing.TB, db *pgxpool.Pool) {
	_, err := db.Exec(context.Background(),
		`TRUNCATE bookings, booked_seats, shows, theater_screens, theaters, movies, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
}

func insertTestUser(t testing.TB, db *pgxpool.Pool, name, email, role string) int {
	var id int

	err := db.QueryRow(context.Background(),
		`INSERT INTO users (name, email, role) VALUES ($1, $2, $3) RETURNING id`,
		name, email, role,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

func insertTestMovie(t testing.TB, db *pgxpool.Pool, title string) int {
	var id int

	err := db.QueryRow(context.Background(),
		`INSERT INTO movies (title, description, genres, language, duration_mins, poster_url, release_date)
		 VALUES ($1, 'A test movie description.', '{"Drama"}', 'English', 120, 'https://example.com/poster.jpg', now())
		 RETURNING id`,
		title,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

func insertTestTheater(t testing.TB, db *pgxpool.Pool, name, screenName string, rows, cols int) int {
	var id int

	err := db.QueryRow(context.Background(),
		`INSERT INTO theaters (name, city, address) VALUES ($1, 'Test City', '1 Test Street') RETURNING id`,
		name,
	).Scan(&id)
	require.NoError(t, err)

	_, err = db.Exec(context.Background(),
		`INSERT INTO theater_screens (theater_id, name, seat_rows, seat_cols) VALUES ($1, $2, $3, $4)`,
		id, screenName, rows, cols,
	)
	require.NoError(t, err)

	return id
}

func insertTestShow(t testing.TB, db *pgxpool.Pool, movieId, theaterId int, screenName string, price decimal.Decimal) int {
	var id int

	err := db.QueryRow(context.Background(),
		`INSERT INTO shows (movie_id, theater_id, screen_name, seat_rows, seat_cols, format, starts_at, ticket_price)
		 VALUES ($1, $2, $3, 5, 10, '2D', $4, $5)
		 RETURNING id`,
		movieId, theaterId, screenName, time.Now().Add(48*time.Hour), price,
	).Scan(&id)
	require.NoError(t, err)

	return id
}
