package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lena-laurent/blanks-inventory-api/models"
	"github.com/lena-laurent/blanks-inventory-api/store"
)

// NavigationController handles the persisted UI navigation state
type NavigationController struct {
	stores *store.Stores
}

// NewNavigationController creates a navigation controller backed by the given stores
func NewNavigationController(stores *store.Stores) *NavigationController {
	return &NavigationController{stores: stores}
}

// UpdateNavigationRequest represents the request body for updating navigation
// state. Fields are optional so each can be changed independently.
type UpdateNavigationRequest struct {
	ActiveNavItem   *string `json:"activeNavItem"`
	SidebarExpanded *bool   `json:"sidebarExpanded"`
}

// Get handles GET /api/v1/navigation
func (ctrl *NavigationController) Get(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"data":     ctrl.stores.Navigation.Get(),
		"hydrated": ctrl.stores.Navigation.State() == store.StateReady,
	})
}

// Update handles PUT /api/v1/navigation
func (ctrl *NavigationController) Update(c *gin.Context) {
	var req UpdateNavigationRequest
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

	if req.ActiveNavItem != nil {
		item := models.NavItem(*req.ActiveNavItem)
		if !item.IsValid() {
			validationError(c, gin.H{"activeNavItem": "Invalid navigation section"})
			return
		}
		ctrl.stores.Navigation.SetActiveNavItem(item)
	}
	if req.SidebarExpanded != nil {
		ctrl.stores.Navigation.SetSidebarExpanded(*req.SidebarExpanded)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    ctrl.stores.Navigation.Get(),
	})
}
