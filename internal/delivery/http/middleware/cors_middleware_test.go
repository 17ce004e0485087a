package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORSWildcard(t *testing.T) {
	m := NewCORSMiddleware([]string{"*"})

	called := false
	handler := m.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set("Origin", "https://anywhere.example")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.True(t, called)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Header().Get("Vary"))
}

func TestCORSAllowlist(t *testing.T) {
	m := NewCORSMiddleware([]string{"https://app.homebonzenga.com", "http://localhost:3000"})

	handler := m.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	tests := []struct {
		name   string
		origin string
		want   string
	}{
		{"listed origin echoed", "https://app.homebonzenga.com", "https://app.homebonzenga.com"},
		{"second listed origin echoed", "http://localhost:3000", "http://localhost:3000"},
		{"unlisted origin gets no header", "https://evil.example", ""},
		{"no origin header", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Header().Get("Access-Control-Allow-Origin"))
			if tt.want != "" {
				assert.Equal(t, "Origin", rec.Header().Get("Vary"))
			}
		})
	}
}

func TestCORSPreflightShortCircuits(t *testing.T) {
	m := NewCORSMiddleware([]string{"*"})

	called := false
	handler := m.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/customer/bookings", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
}
