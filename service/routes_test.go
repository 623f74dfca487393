package service

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avelinejewellery/aveline/storage"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestEcho(t *testing.T) (*echo.Echo, *Service) {
	t.Helper()

	database, _, cleanup, err := storage.NewTestDB()
	require.NoError(t, err)
	t.Cleanup(cleanup)

	config := &Config{
		Environment: "test",
		Port:        "8000",
		BaseURL:     "http://localhost:8000",
	}
	config.Admin.Username = "admin"
	config.Admin.Password = "test-password"

	svc := New(storage.NewFromDB(database), config)

	e := echo.New()
	svc.RegisterRoutes(e)
	return e, svc
}

// TestPublicRoutes tests that the public API routes exist and respond
func TestPublicRoutes(t *testing.T) {
	e, _ := setupTestEcho(t)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"Health check", "GET", "/health", http.StatusOK},
		{"Product listing", "GET", "/api/products", http.StatusOK},
		{"Product detail missing", "GET", "/api/products/missing", http.StatusNotFound},
		{"Reviews for missing product", "GET", "/api/products/missing/reviews", http.StatusOK},

		// POST endpoints reject empty bodies but must be routed
		{"Checkout session", "POST", "/api/checkout/session", http.StatusBadRequest},
		{"Email capture", "POST", "/api/checkout/capture-email", http.StatusBadRequest},
		{"Coupon validation", "POST", "/api/coupons/validate", http.StatusBadRequest},
		{"Subscribe", "POST", "/api/subscribe", http.StatusBadRequest},
		{"Contact", "POST", "/api/contact", http.StatusBadRequest},
		{"Search log", "POST", "/api/search/log", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code,
				"Route %s %s should return %d, got %d",
				tt.method, tt.path, tt.wantStatus, rec.Code)
		})
	}
}

// TestAdminRoutesRequireAuth tests that the admin API rejects anonymous requests
func TestAdminRoutesRequireAuth(t *testing.T) {
	e, _ := setupTestEcho(t)

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"Dashboard", "GET", "/admin/api/dashboard"},
		{"Orders list", "GET", "/admin/api/orders"},
		{"Order detail", "GET", "/admin/api/orders/pi_1"},
		{"Fulfillment update", "PUT", "/admin/api/orders/pi_1/fulfillment"},
		{"Packing slip", "GET", "/admin/api/orders/pi_1/packing-slip"},
		{"Recovery run", "POST", "/admin/api/abandoned-carts/run"},
		{"Search logs", "GET", "/admin/api/search-logs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code,
				"Route %s %s should require auth", tt.method, tt.path)
		})
	}
}

// TestAdminRoutesWithCredentials tests that valid basic auth reaches the handlers
func TestAdminRoutesWithCredentials(t *testing.T) {
	e, _ := setupTestEcho(t)

	req := httptest.NewRequest("GET", "/admin/api/dashboard", nil)
	req.SetBasicAuth("admin", "test-password")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

// TestAdminRejectsWrongPassword tests that bad credentials stay locked out
func TestAdminRejectsWrongPassword(t *testing.T) {
	e, _ := setupTestEcho(t)

	req := httptest.NewRequest("GET", "/admin/api/dashboard", nil)
	req.SetBasicAuth("admin", "wrong")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// TestNonExistentRoutes tests that unknown paths 404
func TestNonExistentRoutes(t *testing.T) {
	e, _ := setupTestEcho(t)

	for _, path := range []string{"/api/nonexistent", "/definitely-not-here"} {
		req := httptest.NewRequest("GET", path, nil)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code,
			"Non-existent route %s should return 404", path)
	}
}
