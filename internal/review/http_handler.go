package review

import (
	"encoding/json"
	"errors"
	"net/http"

	"restaurantapi/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type submitReviewReq struct {
	RestaurantID string `json:"restaurant_id" validate:"required"`
	Rating       int    `json:"rating" validate:"required,min=1,max=5"`
	Comment      string `json:"comment"`
}

// Submit handles POST /api/reviews. The acting user comes from the auth
// token, never from the request body.
func (h *HTTPHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	var req submitReviewReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	rev, err := h.service.Submit(r.Context(), req.RestaurantID, userID, req.Rating, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRating):
			httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", []httpx.ErrorDetail{
				{Field: "rating", Message: "must be between 1 and 5"},
			})
		case errors.Is(err, ErrNotFound):
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "User or restaurant not found", nil)
		default:
			httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}
	httpx.JSONSuccessCreated(w, rev)
}

// ListByRestaurant handles GET /api/reviews/restaurant/{restaurantId}
func (h *HTTPHandler) ListByRestaurant(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.ListByRestaurant(r.Context(), r.PathValue("restaurantId"))
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, reviews)
}

// ListByUser handles GET /api/reviews/user/{userId}
func (h *HTTPHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.ListByUser(r.Context(), r.PathValue("userId"))
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, reviews)
}
