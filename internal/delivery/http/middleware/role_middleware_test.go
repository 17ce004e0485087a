package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func requestWithRole(roleID int) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/manager/bookings", nil)
	ctx := context.WithValue(req.Context(), RoleIDKey, roleID)
	return req.WithContext(ctx)
}

func TestRequireRole(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name     string
		handler  http.Handler
		roleID   int
		expected int
	}{
		{"manager allowed", RequireManager(okHandler), entity.RoleIDManager, http.StatusOK},
		{"customer blocked from manager routes", RequireManager(okHandler), entity.RoleIDCustomer, http.StatusForbidden},
		{"admin allowed on back office", RequireAdminOrManager(okHandler), entity.RoleIDAdmin, http.StatusOK},
		{"manager allowed on back office", RequireAdminOrManager(okHandler), entity.RoleIDManager, http.StatusOK},
		{"vendor blocked from back office", RequireAdminOrManager(okHandler), entity.RoleIDVendor, http.StatusForbidden},
		{"customer allowed on own routes", RequireCustomer(okHandler), entity.RoleIDCustomer, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.handler.ServeHTTP(rec, requestWithRole(tt.roleID))
			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}

func TestRequireRoleWithoutContext(t *testing.T) {
	handler := RequireManager(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/manager/bookings", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
