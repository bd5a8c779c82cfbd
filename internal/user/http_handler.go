package user

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"restaurantapi/internal/auth"
	"restaurantapi/internal/httpx"
)

type HTTPHandler struct {
	service  *Service
	secret   string
	tokenTTL time.Duration
}

func NewHTTPHandler(service *Service, secret string, tokenTTL time.Duration) *HTTPHandler {
	return &HTTPHandler{service: service, secret: secret, tokenTTL: tokenTTL}
}

type registerReq struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// Register handles POST /api/users/register
func (h *HTTPHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	newUser, err := h.service.Register(r.Context(), req.Username, req.Email, hashedPassword)
	if err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			httpx.JSONError(w, http.StatusConflict, "ALREADY_EXISTS", "Username or email already exists", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccessCreated(w, newUser)
}

type loginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login handles POST /api/users/login
func (h *HTTPHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	u, err := h.service.GetByEmail(r.Context(), strings.TrimSpace(req.Email))
	if err != nil || !auth.VerifyPassword(u.Password, req.Password) {
		httpx.JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid email or password", nil)
		return
	}

	token, err := auth.GenerateToken(h.secret, u.ID, u.Role, h.tokenTTL)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, map[string]any{
		"access_token": token,
		"user":         u,
	})
}

// GetByID handles GET /api/users/{id}
func (h *HTTPHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	u, err := h.service.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "User not found", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, u)
}

// GetByUsername handles GET /api/users/username/{username}
func (h *HTTPHandler) GetByUsername(w http.ResponseWriter, r *http.Request) {
	u, err := h.service.GetByUsername(r.Context(), r.PathValue("username"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "User not found", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, u)
}
