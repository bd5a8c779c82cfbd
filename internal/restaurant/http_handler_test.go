package restaurant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandlerFixture(t *testing.T) (*HTTPHandler, *memRepo) {
	t.Helper()
	repo := &memRepo{}
	for _, r := range []Restaurant{
		{Name: "Joe Beef", CuisineType: "French", PriceRange: PriceLuxury, AverageRating: 4.5},
		{Name: "La Banquise", CuisineType: "Quebecois", PriceRange: PriceModerate, AverageRating: 4.1},
	} {
		seeded := r
		require.NoError(t, repo.Create(context.Background(), &seeded))
	}
	places := &fixedPlaces{results: []Restaurant{
		{Name: "Toqué!", PlaceID: "place-9", CuisineType: "Fine Dining"},
	}}
	return NewHTTPHandler(NewService(repo, places)), repo
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []Restaurant {
	t.Helper()
	var resp struct {
		Data []Restaurant `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func TestHTTPHandler_GetByID(t *testing.T) {
	handler, repo := newHandlerFixture(t)

	t.Run("success", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/restaurants/"+repo.restaurants[0].ID, nil)
		r.SetPathValue("id", repo.restaurants[0].ID)

		handler.GetByID(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/restaurants/no-such", nil)
		r.SetPathValue("id", "no-such")

		handler.GetByID(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "NOT_FOUND")
	})
}

func TestHTTPHandler_Search(t *testing.T) {
	handler, _ := newHandlerFixture(t)

	t.Run("matches by substring", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/restaurants/search?name=banquise", nil)

		handler.Search(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		data := decodeList(t, w)
		require.Len(t, data, 1)
		assert.Equal(t, "La Banquise", data[0].Name)
	})

	t.Run("missing name parameter", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/restaurants/search", nil)

		handler.Search(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHTTPHandler_ListByMinRating(t *testing.T) {
	handler, _ := newHandlerFixture(t)

	t.Run("filters by threshold", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/restaurants/rating/4.5", nil)
		r.SetPathValue("minRating", "4.5")

		handler.ListByMinRating(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		data := decodeList(t, w)
		require.Len(t, data, 1)
		assert.Equal(t, "Joe Beef", data[0].Name)
	})

	t.Run("rejects out-of-range and non-numeric values", func(t *testing.T) {
		for _, raw := range []string{"-1", "5.1", "abc"} {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/api/restaurants/rating/"+raw, nil)
			r.SetPathValue("minRating", raw)

			handler.ListByMinRating(w, r)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		}
	})
}

func TestHTTPHandler_Import(t *testing.T) {
	handler, repo := newHandlerFixture(t)

	t.Run("missing query parameter", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/restaurants/import", nil)

		handler.Import(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("imports and returns created records", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/restaurants/import?query=fine+dining", nil)

		handler.Import(w, r)

		require.Equal(t, http.StatusCreated, w.Code)
		data := decodeList(t, w)
		require.Len(t, data, 1)
		assert.Equal(t, "Toqué!", data[0].Name)
		assert.Len(t, repo.restaurants, 3)
	})
}
