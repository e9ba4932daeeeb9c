package services

import (
	"encoding/json"
	"fmt"
	"net/http"

	appConfig "github.com/lena-laurent/blanks-inventory-api/config"
	"github.com/lena-laurent/blanks-inventory-api/models"
)

// CatalogInterface defines the interface for the external product catalog
type CatalogInterface interface {
	FetchProducts(limit, offset int) ([]models.ConvertedProduct, error)
	FetchProductByID(id int) (models.ConvertedProduct, error)
}

// CatalogService fetches product listings from the public catalog API
type CatalogService struct {
	baseURL    string
	httpClient *http.Client
}

var catalogServiceInstance CatalogInterface

// InitCatalogService initializes the catalog service from configuration
func InitCatalogService() CatalogInterface {
	cfg := appConfig.GetConfig()
	catalogServiceInstance = NewCatalogService(cfg.CatalogAPIURL)
	return catalogServiceInstance
}

// GetCatalogService returns the initialized catalog service instance
func GetCatalogService() CatalogInterface {
	return catalogServiceInstance
}

// SetCatalogService sets the catalog service instance (primarily for testing)
func SetCatalogService(service CatalogInterface) {
	catalogServiceInstance = service
}

// NewCatalogService creates a catalog service against the given base URL
func NewCatalogService(baseURL string) *CatalogService {
	return &CatalogService{
		baseURL: baseURL,
		// No request timeout: a failed fetch surfaces as an error state in the
		// catalog view with a manual retry, there is no automatic cancellation.
		httpClient: &http.Client{},
	}
}

// FetchProducts fetches a page of products and maps them to the internal format
func (s *CatalogService) FetchProducts(limit, offset int) ([]models.ConvertedProduct, error) {
	url := fmt.Sprintf("%s/products?limit=%d&offset=%d", s.baseURL, limit, offset)

	resp, err := s.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch products: unexpected status %d", resp.StatusCode)
	}

	var external []models.ExternalProduct
	if err := json.NewDecoder(resp.Body).Decode(&external); err != nil {
		return nil, fmt.Errorf("failed to decode products response: %w", err)
	}

	products := make([]models.ConvertedProduct, 0, len(external))
	for _, p := range external {
		products = append(products, models.ConvertProduct(p))
	}
	return products, nil
}

// FetchProductByID fetches a single product by its identity
func (s *CatalogService) FetchProductByID(id int) (models.ConvertedProduct, error) {
	url := fmt.Sprintf("%s/products/%d", s.baseURL, id)

	resp, err := s.httpClient.Get(url)
	if err != nil {
		return models.ConvertedProduct{}, fmt.Errorf("failed to fetch product: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.ConvertedProduct{}, fmt.Errorf("failed to fetch product: unexpected status %d", resp.StatusCode)
	}

	var external models.ExternalProduct
	if err := json.NewDecoder(resp.Body).Decode(&external); err != nil {
		return models.ConvertedProduct{}, fmt.Errorf("failed to decode product response: %w", err)
	}
	return models.ConvertProduct(external), nil
}
