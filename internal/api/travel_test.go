package api

import (
	"fmt"
	"net/http"
	"testing"

	"travel_api/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTravelsListShowsOnlyPublicRecords(t *testing.T) {
	env := newTestEnv(t)
	public := env.createTravel(t, domain.Travel{Name: "Public travel", IsPublic: true, NumberOfDays: 3})
	env.createTravel(t, domain.Travel{Name: "Hidden travel", IsPublic: false, NumberOfDays: 3})

	w := env.request(t, http.MethodGet, "/api/v1/travels", nil, "")

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeList(t, w)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, public.Name, resp.Data[0]["name"])
}

func TestTravelsListReturnsPaginatedData(t *testing.T) {
	env := newTestEnv(t)
	for i := 0; i < 16; i++ {
		env.createTravel(t, domain.Travel{
			Name:         fmt.Sprintf("Travel %d", i),
			Slug:         fmt.Sprintf("travel-%d", i),
			IsPublic:     true,
			NumberOfDays: 3,
		})
	}

	w := env.request(t, http.MethodGet, "/api/v1/travels", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeList(t, w)
	assert.Len(t, resp.Data, 15)
	assert.EqualValues(t, 2, resp.Meta["last_page"])
	assert.EqualValues(t, 16, resp.Meta["total"])
	assert.EqualValues(t, 1, resp.Meta["from"])
	assert.EqualValues(t, 15, resp.Meta["to"])
	assert.NotNil(t, resp.Links["next"])
	assert.Nil(t, resp.Links["prev"])

	w = env.request(t, http.MethodGet, "/api/v1/travels?page=2", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	resp = decodeList(t, w)
	assert.Len(t, resp.Data, 1)
	assert.EqualValues(t, 2, resp.Meta["current_page"])
	assert.Nil(t, resp.Links["next"])
	assert.NotNil(t, resp.Links["prev"])
}

func TestTravelsListPageBeyondEndIsEmptyNotAnError(t *testing.T) {
	env := newTestEnv(t)
	env.createTravel(t, domain.Travel{Name: "Only travel", IsPublic: true, NumberOfDays: 3})

	w := env.request(t, http.MethodGet, "/api/v1/travels?page=9", nil, "")

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeList(t, w)
	assert.Empty(t, resp.Data)
	assert.EqualValues(t, 9, resp.Meta["current_page"])
	assert.EqualValues(t, 1, resp.Meta["last_page"])
	assert.Nil(t, resp.Meta["from"])
	assert.Nil(t, resp.Meta["to"])
	assert.EqualValues(t, 1, resp.Meta["total"])
}

func TestPublicUserCannotCreateTravel(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/v1/admin/travels", map[string]any{}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// A made-up token is just as unauthenticated
	w = env.request(t, http.MethodPost, "/api/v1/admin/travels", map[string]any{}, "deadbeef")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestNonAdminUserCannotCreateTravel(t *testing.T) {
	env := newTestEnv(t)
	editor := env.createUser(t, "editor@example.com", "password", "editor")
	token := env.tokenFor(t, editor)

	w := env.request(t, http.MethodPost, "/api/v1/admin/travels", map[string]any{
		"name":           "Travel name",
		"number_of_days": 5,
	}, token)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateTravelValidatesInput(t *testing.T) {
	env := newTestEnv(t)
	admin := env.createUser(t, "admin@example.com", "password", "admin")
	token := env.tokenFor(t, admin)

	w := env.request(t, http.MethodPost, "/api/v1/admin/travels", map[string]any{
		"name": "Travel name",
	}, token)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, fieldErrors(t, w), "number_of_days")
}

func TestCreateTravelPersistsAndDerivesSlug(t *testing.T) {
	env := newTestEnv(t)
	admin := env.createUser(t, "admin@example.com", "password", "admin")
	token := env.tokenFor(t, admin)

	w := env.request(t, http.MethodPost, "/api/v1/admin/travels", map[string]any{
		"name":           "First Travel!",
		"is_public":      true,
		"description":    "Some description",
		"number_of_days": 5,
	}, token)

	require.Equal(t, http.StatusCreated, w.Code)
	data := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, "first-travel", data["slug"])

	list := env.request(t, http.MethodGet, "/api/v1/travels", nil, "")
	require.Equal(t, http.StatusOK, list.Code)
	resp := decodeList(t, list)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "First Travel!", resp.Data[0]["name"])
}

func TestCreateTravelDefaultsToUnpublished(t *testing.T) {
	env := newTestEnv(t)
	admin := env.createUser(t, "admin@example.com", "password", "admin")
	token := env.tokenFor(t, admin)

	w := env.request(t, http.MethodPost, "/api/v1/admin/travels", map[string]any{
		"name":           "Quiet travel",
		"number_of_days": 2,
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	// Omitted is_public means the travel stays out of the public listing
	list := env.request(t, http.MethodGet, "/api/v1/travels", nil, "")
	require.Equal(t, http.StatusOK, list.Code)
	assert.Empty(t, decodeList(t, list).Data)
}

func TestCreateTravelSlugCollisionGetsSuffix(t *testing.T) {
	env := newTestEnv(t)
	admin := env.createUser(t, "admin@example.com", "password", "admin")
	token := env.tokenFor(t, admin)

	for i, want := range []string{"city-break", "city-break-2", "city-break-3"} {
		w := env.request(t, http.MethodPost, "/api/v1/admin/travels", map[string]any{
			"name":           "City Break",
			"number_of_days": i + 1,
		}, token)
		require.Equal(t, http.StatusCreated, w.Code)
		data := decodeBody(t, w)["data"].(map[string]any)
		assert.Equal(t, want, data["slug"])
	}
}

func TestUpdateTravelIsAFullReplace(t *testing.T) {
	env := newTestEnv(t)
	editor := env.createUser(t, "editor@example.com", "password", "editor")
	token := env.tokenFor(t, editor)
	travel := env.createTravel(t, domain.Travel{Name: "Travel Name", Slug: "travel-name", IsPublic: true, NumberOfDays: 3})

	// Supplying only the name must fail like on create
	w := env.request(t, http.MethodPut, fmt.Sprintf("/api/v1/admin/travels/%d", travel.ID), map[string]any{
		"name": "Travel Name",
	}, token)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, fieldErrors(t, w), "number_of_days")

	w = env.request(t, http.MethodPut, fmt.Sprintf("/api/v1/admin/travels/%d", travel.ID), map[string]any{
		"name":           "Travel Name updated",
		"is_public":      true,
		"description":    "Some description",
		"number_of_days": 5,
	}, token)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]any)
	// The slug never follows a rename
	assert.Equal(t, "travel-name", data["slug"])

	list := env.request(t, http.MethodGet, "/api/v1/travels", nil, "")
	require.Equal(t, http.StatusOK, list.Code)
	resp := decodeList(t, list)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Travel Name updated", resp.Data[0]["name"])
}

func TestUpdateTravelAllowedForAdminToo(t *testing.T) {
	env := newTestEnv(t)
	admin := env.createUser(t, "admin@example.com", "password", "admin")
	token := env.tokenFor(t, admin)
	travel := env.createTravel(t, domain.Travel{Name: "Old", Slug: "old", NumberOfDays: 1})

	w := env.request(t, http.MethodPut, fmt.Sprintf("/api/v1/admin/travels/%d", travel.ID), map[string]any{
		"name":           "New name",
		"number_of_days": 2,
	}, token)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateTravelNotFound(t *testing.T) {
	env := newTestEnv(t)
	editor := env.createUser(t, "editor@example.com", "password", "editor")
	token := env.tokenFor(t, editor)

	w := env.request(t, http.MethodPut, "/api/v1/admin/travels/9999", map[string]any{
		"name":           "Travel Name",
		"number_of_days": 5,
	}, token)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
