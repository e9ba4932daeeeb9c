package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lena-laurent/blanks-inventory-api/models"
	"github.com/lena-laurent/blanks-inventory-api/store"
)

// OrderController handles order queue endpoints
type OrderController struct {
	stores *store.Stores
}

// NewOrderController creates an order controller backed by the given stores
func NewOrderController(stores *store.Stores) *OrderController {
	return &OrderController{stores: stores}
}

// CreateOrderRequest represents the request body for placing an order
type CreateOrderRequest struct {
	ItemID   int `json:"itemId" binding:"required"`
	Quantity int `json:"quantity" binding:"required,gt=0,max=1000"`
}

// UpdateStatusRequest represents the request body for a status transition
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// List handles GET /api/v1/orders - returns the order queue, optionally searched
func (ctrl *OrderController) List(c *gin.Context) {
	orders := store.FilterOrders(ctrl.stores.Orders.Orders(), c.Query("search"))

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"data":     orders,
		"hydrated": ctrl.stores.Orders.State() == store.StateReady,
	})
}

// Create handles POST /api/v1/orders - places an order for an inventory item
func (ctrl *OrderController) Create(c *gin.Context) {
	var req CreateOrderRequest
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

	item, found := ctrl.stores.Inventory.Get(req.ItemID)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ITEM_NOT_FOUND",
				"message": "Inventory item not found",
			},
		})
		return
	}

	order := ctrl.stores.Orders.Create(item, req.Quantity)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    order,
	})
}

// UpdateStatus handles PATCH /api/v1/orders/:id/status - transitions an order
func (ctrl *OrderController) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		validationError(c, gin.H{"id": "Order id must be an integer"})
		return
	}

	var req UpdateStatusRequest
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

	status := models.OrderStatus(req.Status)
	if !status.IsValid() {
		validationError(c, gin.H{"status": "Invalid status selected"})
		return
	}

	result, creditApplied := ctrl.stores.Orders.SetStatus(id, status)
	switch result {
	case store.ResultNotFound:
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ORDER_NOT_FOUND",
				"message": "Order not found",
			},
		})
		return
	case store.ResultInvalidTransition:
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_TRANSITION",
				"message": "Completed orders cannot move back in the queue",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"id":            id,
			"status":        status,
			"creditApplied": creditApplied,
		},
	})
}

// Delete handles DELETE /api/v1/orders/:id - removes an order in any status
func (ctrl *OrderController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		validationError(c, gin.H{"id": "Order id must be an integer"})
		return
	}

	if ctrl.stores.Orders.Remove(id) == store.ResultNotFound {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ORDER_NOT_FOUND",
				"message": "Order not found",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order removed",
	})
}
