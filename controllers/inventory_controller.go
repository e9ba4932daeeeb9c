package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lena-laurent/blanks-inventory-api/models"
	"github.com/lena-laurent/blanks-inventory-api/store"
)

// InventoryController handles inventory endpoints
type InventoryController struct {
	stores *store.Stores
}

// NewInventoryController creates an inventory controller backed by the given stores
func NewInventoryController(stores *store.Stores) *InventoryController {
	return &InventoryController{stores: stores}
}

// CreateItemRequest represents the request body for adding an inventory item
type CreateItemRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Size        string `json:"size" binding:"required"`
	Color       string `json:"color" binding:"required"`
	Quantity    int    `json:"quantity" binding:"min=0,max=9999"`
	RequiredPcs int    `json:"requiredPcs" binding:"omitempty,min=1,max=9999"`
}

// UpdateQuantityRequest represents the request body for changing on-hand
// quantity. Exactly one of quantity (absolute) or delta (additive) is used.
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity"`
	Delta    *int `json:"delta"`
}

// List handles GET /api/v1/inventory - returns the filtered, sorted inventory view
func (ctrl *InventoryController) List(c *gin.Context) {
	state := store.FilterSortState{
		Search:  c.Query("search"),
		SortBy:  store.SortOption(c.DefaultQuery("sortBy", "name")),
		SortDir: store.SortDirection(c.DefaultQuery("sortDir", "asc")),
	}

	if sizes := c.Query("sizes"); sizes != "" {
		for _, s := range strings.Split(sizes, ",") {
			size := models.ProductSize(s)
			if !size.IsValid() {
				validationError(c, gin.H{"sizes": "Invalid size filter: " + s})
				return
			}
			state.Filters.Sizes = append(state.Filters.Sizes, size)
		}
	}
	if colors := c.Query("colors"); colors != "" {
		for _, col := range strings.Split(colors, ",") {
			color := models.ProductColor(col)
			if !color.IsValid() {
				validationError(c, gin.H{"colors": "Invalid color filter: " + col})
				return
			}
			state.Filters.Colors = append(state.Filters.Colors, color)
		}
	}
	state.Filters.LowStock = c.Query("lowStock") == "true"

	items := store.FilterSortInventory(ctrl.stores.Inventory.Items(), state)

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"data":     items,
		"hydrated": ctrl.stores.Inventory.State() == store.StateReady,
	})
}

// Create handles POST /api/v1/inventory - adds a new inventory item
func (ctrl *InventoryController) Create(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	// Enum membership is checked explicitly so the client gets a field-level message
	fieldErrors := gin.H{}
	size := models.ProductSize(req.Size)
	if !size.IsValid() {
		fieldErrors["size"] = "Invalid size selected"
	}
	color := models.ProductColor(req.Color)
	if !color.IsValid() {
		fieldErrors["color"] = "Invalid color selected"
	}
	if strings.TrimSpace(req.Name) == "" {
		fieldErrors["name"] = "Product name is required"
	}
	if len(fieldErrors) > 0 {
		validationError(c, fieldErrors)
		return
	}

	item := ctrl.stores.Inventory.AddItem(models.CreateTShirtItem{
		Name:        req.Name,
		Size:        size,
		Color:       color,
		Quantity:    req.Quantity,
		RequiredPcs: req.RequiredPcs,
	})

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    item,
	})
}

// UpdateQuantity handles PATCH /api/v1/inventory/:id/quantity
func (ctrl *InventoryController) UpdateQuantity(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		validationError(c, gin.H{"id": "Item id must be an integer"})
		return
	}

	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}
	if (req.Quantity == nil) == (req.Delta == nil) {
		validationError(c, gin.H{"quantity": "Provide exactly one of quantity or delta"})
		return
	}

	var result store.Result
	if req.Quantity != nil {
		result = ctrl.stores.Inventory.SetQuantity(id, *req.Quantity)
	} else {
		result = ctrl.stores.Inventory.AddQuantity(id, *req.Delta)
	}

	if result == store.ResultNotFound {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ITEM_NOT_FOUND",
				"message": "Inventory item not found",
			},
		})
		return
	}

	item, _ := ctrl.stores.Inventory.Get(id)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    item,
	})
}

// validationError writes a 400 with field-level error messages
func validationError(c *gin.Context, fields gin.H) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "VALIDATION_ERROR",
			"message": "Invalid request data",
			"fields":  fields,
		},
	})
}
