package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lena-laurent/blanks-inventory-api/store"
)

// RequireHydrated rejects mutating requests until every domain store has
// finished loading persisted state. Mutations applied before hydration would
// target the built-in defaults and then be overwritten by the loaded data.
func RequireHydrated(stores *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !stores.Ready() {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "HYDRATING",
					"message": "Persisted state is still loading, retry shortly",
				},
			})
			return
		}
		c.Next()
	}
}
