package weather

import (
	"net/http"

	"restaurantapi/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Current handles GET /api/weather/current
func (h *HTTPHandler) Current(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccess(w, h.service.Current(r.Context()))
}

// Recommendations handles GET /api/weather/recommendations
func (h *HTTPHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	report, rec := h.service.Recommendations(r.Context())
	httpx.JSONSuccess(w, map[string]any{
		"weather":         report,
		"recommendations": rec,
	})
}
