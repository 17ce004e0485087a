package middleware

import (
	"net/http"
	"strings"
)

// CORSMiddleware answers preflight requests and stamps the CORS headers for
// origins on the configured allowlist. A "*" entry allows any origin.
type CORSMiddleware struct {
	allowedOrigins []string
	allowAll       bool
}

func NewCORSMiddleware(allowedOrigins []string) *CORSMiddleware {
	m := &CORSMiddleware{allowedOrigins: allowedOrigins}
	for _, origin := range allowedOrigins {
		if origin == "*" {
			m.allowAll = true
		}
	}
	return m
}

func (m *CORSMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if origin := m.resolveOrigin(req.Header.Get("Origin")); origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if !m.allowAll {
				w.Header().Set("Vary", "Origin")
			}
		}

		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, req)
	})
}

// resolveOrigin returns the header value to echo back, or "" when the request
// origin is not allowed.
func (m *CORSMiddleware) resolveOrigin(origin string) string {
	if m.allowAll {
		return "*"
	}
	if origin == "" {
		return ""
	}
	for _, allowed := range m.allowedOrigins {
		if strings.EqualFold(allowed, origin) {
			return origin
		}
	}
	return ""
}
