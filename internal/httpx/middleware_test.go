package httpx

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCORSMiddleware_AllowedOrigin(t *testing.T) {
	middleware := CORSMiddleware([]string{"http://localhost:3000", "http://localhost:5173"})
	handler := middleware(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:3000" {
		t.Errorf("Expected CORS header for allowed origin, got %s", w.Header().Get("Access-Control-Allow-Origin"))
	}
	if w.Header().Get("Access-Control-Allow-Credentials") != "true" {
		t.Errorf("Expected credentials header, got %s", w.Header().Get("Access-Control-Allow-Credentials"))
	}
}

func TestCORSMiddleware_DisallowedOrigin(t *testing.T) {
	middleware := CORSMiddleware([]string{"http://localhost:3000"})
	handler := middleware(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Origin", "http://evil.com")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Errorf("Expected no CORS header for disallowed origin, got %s", w.Header().Get("Access-Control-Allow-Origin"))
	}
}

func TestCORSMiddleware_OPTIONSRequest(t *testing.T) {
	middleware := CORSMiddleware([]string{"http://localhost:3000"})
	handler := middleware(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/test", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("Expected 204 for OPTIONS request, got %d", w.Code)
	}
	methods := w.Header().Get("Access-Control-Allow-Methods")
	if !strings.Contains(methods, "GET") || !strings.Contains(methods, "POST") {
		t.Errorf("Expected methods header to include GET and POST, got %s", methods)
	}
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	handler := SecurityHeadersMiddleware(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Errorf("Expected nosniff header, got %s", w.Header().Get("X-Content-Type-Options"))
	}
	if w.Header().Get("X-Frame-Options") != "DENY" {
		t.Errorf("Expected DENY frame options, got %s", w.Header().Get("X-Frame-Options"))
	}
}

func TestRequestSizeLimitMiddleware_UnderLimit(t *testing.T) {
	middleware := RequestSizeLimitMiddleware(1024)
	handler := middleware(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBuffer(make([]byte, 512)))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 for request under limit, got %d", w.Code)
	}
}

func TestRequestSizeLimitMiddleware_OverLimit(t *testing.T) {
	middleware := RequestSizeLimitMiddleware(1024)
	handler := middleware(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBuffer(make([]byte, 2048)))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("Expected 413 for request over limit, got %d", w.Code)
	}
}
