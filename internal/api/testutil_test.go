package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"travel_api/internal/config"
	dbsetup "travel_api/internal/db"
	"travel_api/internal/domain"
	"travel_api/internal/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// testEnv bundles the router and backing stores for a handler test
type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	rdb    *redis.Client
}

// newTestEnv spins up an in-memory database, an in-process Redis and the
// mounted router
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	// The in-memory database exists per connection, keep the pool at one
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Role{}, &domain.Travel{}, &domain.Tour{}))
	require.NoError(t, dbsetup.SeedRoles(db))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	cfg := &config.Config{PageSize: config.DefaultPageSize}
	return &testEnv{router: SetupRouter(cfg, db, rdb), db: db, rdb: rdb}
}

// createUser inserts a user with the given role names attached
func (e *testEnv) createUser(t *testing.T, email, password string, roleNames ...string) domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	var roles []domain.Role
	for _, name := range roleNames {
		var role domain.Role
		require.NoError(t, e.db.Where("name = ?", name).First(&role).Error)
		roles = append(roles, role)
	}
	user := domain.User{Email: email, Password: string(hash), Roles: roles}
	require.NoError(t, e.db.Create(&user).Error)
	return user
}

// tokenFor mints and stores a bearer token for the user
func (e *testEnv) tokenFor(t *testing.T, user domain.User) string {
	t.Helper()
	token, err := utils.NewToken()
	require.NoError(t, err)
	require.NoError(t, utils.StoreToken(context.Background(), e.rdb, token, user.ID, "test"))
	return token
}

// createTravel inserts a travel record directly
func (e *testEnv) createTravel(t *testing.T, travel domain.Travel) domain.Travel {
	t.Helper()
	if travel.Name == "" {
		travel.Name = "Some travel"
	}
	if travel.Slug == "" {
		travel.Slug = utils.Slugify(travel.Name)
	}
	require.NoError(t, e.db.Create(&travel).Error)
	return travel
}

// createTour inserts a tour record directly, filling date defaults
func (e *testEnv) createTour(t *testing.T, tour domain.Tour) domain.Tour {
	t.Helper()
	if tour.Name == "" {
		tour.Name = "Some tour"
	}
	if tour.StartingDate.IsZero() {
		tour.StartingDate = date(2030, 1, 10)
	}
	if tour.EndingDate.IsZero() {
		tour.EndingDate = tour.StartingDate.AddDate(0, 0, 1)
	}
	require.NoError(t, e.db.Create(&tour).Error)
	return tour
}

// date builds a UTC midnight timestamp, matching parsed wire dates
func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// request performs an HTTP request against the router. A non-nil body is JSON
// encoded; a non-empty token goes into the Authorization header.
func (e *testEnv) request(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// listResponse mirrors the paginated envelope for assertions
type listResponse struct {
	Data  []map[string]any `json:"data"`
	Links map[string]any   `json:"links"`
	Meta  map[string]any   `json:"meta"`
}

// decodeList unmarshals a paginated envelope response
func decodeList(t *testing.T, w *httptest.ResponseRecorder) listResponse {
	t.Helper()
	var resp listResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// decodeBody unmarshals any JSON response into a generic map
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// fieldErrors extracts the errors map from a 422 response
func fieldErrors(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	body := decodeBody(t, w)
	errs, ok := body["errors"].(map[string]any)
	require.True(t, ok, "response carries no errors map: %s", w.Body.String())
	return errs
}

// ids projects the id column of an envelope's data slice
func ids(data []map[string]any) []uint {
	out := make([]uint, len(data))
	for i, row := range data {
		out[i] = uint(row["id"].(float64))
	}
	return out
}
