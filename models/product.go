package models

// ExternalCategory is the category object returned by the public catalog API
type ExternalCategory struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// ExternalProduct is a product as returned by the public catalog API
type ExternalProduct struct {
	ID          int              `json:"id"`
	Title       string           `json:"title"`
	Price       float64          `json:"price"`
	Description string           `json:"description"`
	Category    ExternalCategory `json:"category"`
	Images      []string         `json:"images"`
}

// PlaceholderImage is shown when a catalog product carries no images
const PlaceholderImage = "https://placehold.co/400x300"

// ConvertedProduct is the internal catalog shape presented to the dashboard
type ConvertedProduct struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	Images      []string `json:"images"`
}

// ConvertProduct maps the external API product format to the internal format
func ConvertProduct(p ExternalProduct) ConvertedProduct {
	image := PlaceholderImage
	if len(p.Images) > 0 {
		image = p.Images[0]
	}
	return ConvertedProduct{
		ID:          p.ID,
		Name:        p.Title,
		Price:       p.Price,
		Description: p.Description,
		Category:    p.Category.Name,
		Image:       image,
		Images:      p.Images,
	}
}
