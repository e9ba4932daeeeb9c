package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestServerStartup verifies the full application wires together. It uses the
// actual setupRouter function, not a test-only router.
func TestServerStartup(t *testing.T) {
	app := newTestApp(t)
	assert.NotNil(t, app.router, "Router should be initialized")
}

// TestDashboardDataAcceptance simulates the first page load of the dashboard:
// every read endpoint must answer immediately with usable data
func TestDashboardDataAcceptance(t *testing.T) {
	app := newTestApp(t)

	paths := []string{
		"/api/v1/health",
		"/api/v1/inventory",
		"/api/v1/orders",
		"/api/v1/navigation",
		"/api/v1/products",
		"/api/v1/storage/status",
	}

	for _, path := range paths {
		w := app.request(t, "GET", path, nil)
		assert.Equal(t, http.StatusOK, w.Code, fmt.Sprintf("%s should return 200 OK", path))

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err, fmt.Sprintf("%s should return valid JSON", path))
		assert.Equal(t, true, response["success"], fmt.Sprintf("%s should report success", path))
	}
}

// TestHealthEndpointAvailability tests that the health endpoint is consistent
func TestHealthEndpointAvailability(t *testing.T) {
	app := newTestApp(t)

	for i := 0; i < 5; i++ {
		w := app.request(t, "GET", "/api/v1/health", nil)
		assert.Equal(t, http.StatusOK, w.Code,
			fmt.Sprintf("Request %d should succeed", i+1))

		var response map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Equal(t, true, response["success"],
			fmt.Sprintf("Request %d should have success=true", i+1))
	}
}

// TestHealthEndpointResponseTime tests that the endpoint responds quickly
func TestHealthEndpointResponseTime(t *testing.T) {
	app := newTestApp(t)

	start := time.Now()
	w := app.request(t, "GET", "/api/v1/health", nil)
	elapsed := time.Since(start)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Less(t, elapsed, time.Second, "Health endpoint should respond within a second")
}
