package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupInventoryRouter(t *testing.T) (*gin.Engine, *InventoryController) {
	stores, _ := newTestStores(t)
	ctrl := NewInventoryController(stores)

	router := gin.New()
	router.GET("/inventory", ctrl.List)
	router.POST("/inventory", ctrl.Create)
	router.PATCH("/inventory/:id/quantity", ctrl.UpdateQuantity)
	return router, ctrl
}

func TestListInventory(t *testing.T) {
	router, _ := setupInventoryRouter(t)

	w := performRequest(t, router, "GET", "/inventory", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	response := parseResponse(t, w)
	assert.True(t, response["success"].(bool))
	assert.True(t, response["hydrated"].(bool))
	assert.Len(t, response["data"].([]interface{}), 8, "Hydrated empty storage yields the default data set")
}

func TestListInventoryFiltersAndSorts(t *testing.T) {
	router, _ := setupInventoryRouter(t)

	tests := []struct {
		name     string
		query    string
		expected int
	}{
		{"search by name", "?search=red", 2},
		{"filter by size", "?sizes=S", 2},
		{"filter by multiple sizes", "?sizes=S,M", 5},
		{"filter by color", "?colors=white", 3},
		{"combined search and color", "?search=black&colors=black", 3},
		{"low stock only", "?lowStock=true", 2},
		{"no matches", "?search=hoodie", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(t, router, "GET", "/inventory"+tt.query, nil)
			assert.Equal(t, http.StatusOK, w.Code)
			response := parseResponse(t, w)
			assert.Len(t, response["data"].([]interface{}), tt.expected)
		})
	}
}

func TestListInventorySortOrder(t *testing.T) {
	router, _ := setupInventoryRouter(t)

	w := performRequest(t, router, "GET", "/inventory?sortBy=quantity&sortDir=desc", nil)
	response := parseResponse(t, w)
	data := response["data"].([]interface{})

	first := data[0].(map[string]interface{})
	assert.Equal(t, float64(51), first["quantity"], "Highest quantity first when sorting descending")
}

func TestListInventoryInvalidFilter(t *testing.T) {
	router, _ := setupInventoryRouter(t)

	w := performRequest(t, router, "GET", "/inventory?sizes=XXL", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(parseResponse(t, w)))
}

func TestCreateInventoryItem(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		expectedStatus int
		expectedError  string
		checkResponse  func(t *testing.T, response map[string]interface{})
	}{
		{
			name: "Successfully create item",
			requestBody: map[string]interface{}{
				"name":        "Comfort Colors Tee",
				"size":        "XL",
				"color":       "white",
				"quantity":    12,
				"requiredPcs": 48,
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, response map[string]interface{}) {
				data := response["data"].(map[string]interface{})
				assert.Equal(t, "Comfort Colors Tee", data["name"])
				assert.Equal(t, float64(9), data["id"], "Identity continues past the default set")
				assert.Equal(t, float64(48), data["requiredPcs"])
			},
		},
		{
			name: "Threshold defaults to pack size",
			requestBody: map[string]interface{}{
				"name":  "AS Colour Tee",
				"size":  "S",
				"color": "black",
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, response map[string]interface{}) {
				data := response["data"].(map[string]interface{})
				assert.Equal(t, float64(24), data["requiredPcs"])
				assert.Equal(t, float64(0), data["quantity"])
			},
		},
		{
			name: "Fail with missing name",
			requestBody: map[string]interface{}{
				"size":  "M",
				"color": "red",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
		{
			name: "Fail with invalid size",
			requestBody: map[string]interface{}{
				"name":  "Odd Tee",
				"size":  "XXXL",
				"color": "red",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
		{
			name: "Fail with invalid color",
			requestBody: map[string]interface{}{
				"name":  "Odd Tee",
				"size":  "M",
				"color": "green",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
		{
			name: "Fail with negative quantity",
			requestBody: map[string]interface{}{
				"name":     "Odd Tee",
				"size":     "M",
				"color":    "red",
				"quantity": -1,
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := setupInventoryRouter(t)

			w := performRequest(t, router, "POST", "/inventory", tt.requestBody)
			assert.Equal(t, tt.expectedStatus, w.Code)

			response := parseResponse(t, w)
			if tt.expectedError != "" {
				assert.False(t, response["success"].(bool))
				assert.Equal(t, tt.expectedError, errorCode(response))
			} else {
				assert.True(t, response["success"].(bool))
			}
			if tt.checkResponse != nil {
				tt.checkResponse(t, response)
			}
		})
	}
}

func TestUpdateQuantity(t *testing.T) {
	router, _ := setupInventoryRouter(t)

	// Absolute set
	w := performRequest(t, router, "PATCH", "/inventory/1/quantity", map[string]interface{}{"quantity": 40})
	assert.Equal(t, http.StatusOK, w.Code)
	data := parseResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(40), data["quantity"])

	// Additive delta
	w = performRequest(t, router, "PATCH", "/inventory/1/quantity", map[string]interface{}{"delta": -15})
	assert.Equal(t, http.StatusOK, w.Code)
	data = parseResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(25), data["quantity"])

	// Negative set clamps to zero
	w = performRequest(t, router, "PATCH", "/inventory/1/quantity", map[string]interface{}{"quantity": -5})
	assert.Equal(t, http.StatusOK, w.Code)
	data = parseResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["quantity"])
}

func TestUpdateQuantityErrors(t *testing.T) {
	router, _ := setupInventoryRouter(t)

	// Unknown item surfaces the stale reference instead of silently dropping it
	w := performRequest(t, router, "PATCH", "/inventory/999/quantity", map[string]interface{}{"quantity": 5})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "ITEM_NOT_FOUND", errorCode(parseResponse(t, w)))

	// Both quantity and delta is ambiguous
	w = performRequest(t, router, "PATCH", "/inventory/1/quantity", map[string]interface{}{"quantity": 5, "delta": 2})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Neither is provided
	w = performRequest(t, router, "PATCH", "/inventory/1/quantity", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Non-numeric id
	w = performRequest(t, router, "PATCH", "/inventory/abc/quantity", map[string]interface{}{"quantity": 5})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
