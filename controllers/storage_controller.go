package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lena-laurent/blanks-inventory-api/storage"
	"github.com/lena-laurent/blanks-inventory-api/store"
)

// StorageController exposes storage health and maintenance endpoints
type StorageController struct {
	gateway *storage.Gateway
	stores  *store.Stores
}

// NewStorageController creates a storage controller
func NewStorageController(gateway *storage.Gateway, stores *store.Stores) *StorageController {
	return &StorageController{gateway: gateway, stores: stores}
}

// Status handles GET /api/v1/storage/status - reports availability and
// approximate usage. Usage numbers are for display only.
func (ctrl *StorageController) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"available": ctrl.gateway.IsAvailable(),
			"usage":     ctrl.gateway.GetUsageInfo(),
		},
	})
}

// Clear handles DELETE /api/v1/storage - deletes all persisted application
// data and resets the in-memory stores to their built-in defaults
func (ctrl *StorageController) Clear(c *gin.Context) {
	ctrl.gateway.ClearAll()
	ctrl.stores.Reset()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "All application data cleared",
	})
}
