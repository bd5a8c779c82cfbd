package restaurant

import (
	"errors"
	"net/http"
	"strconv"

	"restaurantapi/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// List handles GET /api/restaurants
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.service.List(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, restaurants)
}

// GetByID handles GET /api/restaurants/{id}
func (h *HTTPHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	rest, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Restaurant not found", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, rest)
}

// Search handles GET /api/restaurants/search?name=
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", []httpx.ErrorDetail{
			{Field: "name", Message: "name query parameter is required"},
		})
		return
	}
	restaurants, err := h.service.SearchByName(r.Context(), name)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, restaurants)
}

// ListByCuisine handles GET /api/restaurants/cuisine/{cuisineType}
func (h *HTTPHandler) ListByCuisine(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.service.ListByCuisine(r.Context(), r.PathValue("cuisineType"))
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, restaurants)
}

// ListByPriceRange handles GET /api/restaurants/price/{priceRange}
func (h *HTTPHandler) ListByPriceRange(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.service.ListByPriceRange(r.Context(), r.PathValue("priceRange"))
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, restaurants)
}

// ListByMinRating handles GET /api/restaurants/rating/{minRating}
func (h *HTTPHandler) ListByMinRating(w http.ResponseWriter, r *http.Request) {
	minRating, err := strconv.ParseFloat(r.PathValue("minRating"), 64)
	if err != nil || minRating < 0 || minRating > 5 {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", []httpx.ErrorDetail{
			{Field: "minRating", Message: "must be a number between 0 and 5"},
		})
		return
	}
	restaurants, err := h.service.ListByMinRating(r.Context(), minRating)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, restaurants)
}

// Import handles POST /api/restaurants/import?query=
func (h *HTTPHandler) Import(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", []httpx.ErrorDetail{
			{Field: "query", Message: "query parameter is required"},
		})
		return
	}
	imported, err := h.service.ImportFromPlaces(r.Context(), query)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccessCreated(w, imported)
}
