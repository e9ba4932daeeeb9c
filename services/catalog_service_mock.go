package services

import (
	"fmt"
	"sync"

	"github.com/lena-laurent/blanks-inventory-api/models"
)

// MockCatalogService is a mock implementation of CatalogInterface for testing
type MockCatalogService struct {
	mu sync.Mutex

	// Products is the full canned catalog; FetchProducts slices pages out of it
	Products []models.ConvertedProduct
	// Err, when set, is returned by every fetch
	Err error
	// Gate, when set, blocks each FetchProducts call until it receives a
	// value, letting tests control completion order
	Gate chan struct{}

	fetchCalls int
}

// SetAsMockForTesting sets this mock as the global catalog service instance
func (m *MockCatalogService) SetAsMockForTesting() {
	SetCatalogService(m)
}

// NewMockCatalogService creates a mock with n generated products
func NewMockCatalogService(n int) *MockCatalogService {
	products := make([]models.ConvertedProduct, 0, n)
	for i := 1; i <= n; i++ {
		products = append(products, models.ConvertedProduct{
			ID:          i,
			Name:        fmt.Sprintf("Mock Product %d", i),
			Price:       float64(i) * 9.99,
			Description: fmt.Sprintf("Description for mock product %d", i),
			Category:    "Clothes",
			Image:       models.PlaceholderImage,
			Images:      []string{models.PlaceholderImage},
		})
	}
	return &MockCatalogService{Products: products}
}

// FetchProducts returns a page of the canned catalog
func (m *MockCatalogService) FetchProducts(limit, offset int) ([]models.ConvertedProduct, error) {
	if m.Gate != nil {
		<-m.Gate
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.fetchCalls++

	if m.Err != nil {
		return nil, m.Err
	}

	if offset >= len(m.Products) {
		return []models.ConvertedProduct{}, nil
	}
	end := offset + limit
	if end > len(m.Products) {
		end = len(m.Products)
	}
	page := make([]models.ConvertedProduct, end-offset)
	copy(page, m.Products[offset:end])
	return page, nil
}

// FetchProductByID returns the canned product with the given identity
func (m *MockCatalogService) FetchProductByID(id int) (models.ConvertedProduct, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return models.ConvertedProduct{}, m.Err
	}
	for _, p := range m.Products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.ConvertedProduct{}, fmt.Errorf("product %d not found", id)
}

// FetchCalls returns how many times FetchProducts has been called
func (m *MockCatalogService) FetchCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fetchCalls
}
