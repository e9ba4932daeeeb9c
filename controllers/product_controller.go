package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lena-laurent/blanks-inventory-api/models"
	"github.com/lena-laurent/blanks-inventory-api/services"
	"github.com/lena-laurent/blanks-inventory-api/store"
	"github.com/lena-laurent/blanks-inventory-api/utils"
)

// descriptionPreviewLength bounds the short description shown on product cards
const descriptionPreviewLength = 120

// ProductController serves the external catalog feed
type ProductController struct {
	feed *store.ProductFeed
}

// NewProductController creates a product controller over the given feed
func NewProductController(feed *store.ProductFeed) *ProductController {
	return &ProductController{feed: feed}
}

// productView decorates a catalog product with display-ready fields
type productView struct {
	models.ConvertedProduct
	PriceDisplay string `json:"priceDisplay"`
	Preview      string `json:"preview"`
}

func toProductView(p models.ConvertedProduct) productView {
	return productView{
		ConvertedProduct: p,
		PriceDisplay:     utils.FormatPrice(p.Price),
		Preview:          utils.TruncateText(p.Description, descriptionPreviewLength),
	}
}

// Feed handles GET /api/v1/products - returns the current catalog feed state
func (ctrl *ProductController) Feed(c *gin.Context) {
	snapshot := ctrl.feed.Snapshot()

	views := make([]productView, 0, len(snapshot.Products))
	for _, p := range snapshot.Products {
		views = append(views, toProductView(p))
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"products": views,
			"loading":  snapshot.Loading,
			"error":    snapshot.Error,
			"hasMore":  snapshot.HasMore,
		},
	})
}

// Refresh handles POST /api/v1/products/refresh - resets the feed and reloads
// the first page in the background
func (ctrl *ProductController) Refresh(c *gin.Context) {
	ctrl.feed.Refresh()
	c.JSON(http.StatusAccepted, gin.H{
		"success": true,
		"message": "Catalog refresh started",
	})
}

// LoadMore handles POST /api/v1/products/load-more - loads the next catalog
// page in the background
func (ctrl *ProductController) LoadMore(c *gin.Context) {
	ctrl.feed.LoadMore()
	c.JSON(http.StatusAccepted, gin.H{
		"success": true,
		"message": "Catalog page load started",
	})
}

// GetByID handles GET /api/v1/products/:id - fetches a single catalog product
func (ctrl *ProductController) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		validationError(c, gin.H{"id": "Product id must be an integer"})
		return
	}

	product, err := services.GetCatalogService().FetchProductByID(id)
	if err != nil {
		// External dependency failure is the one error class surfaced to the
		// user, with a manual retry on their side.
		c.JSON(http.StatusBadGateway, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "CATALOG_ERROR",
				"message": "Failed to fetch product from catalog",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    toProductView(product),
	})
}
