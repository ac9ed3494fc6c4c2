package repositories

import (
	"sync"

	"catalogview/internal/models"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
// It keeps the catalog order and counts how often it was read.
type MockProductRepository struct {
	products []models.Product
	err      error
	calls    int
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository(products ...models.Product) *MockProductRepository {
	return &MockProductRepository{
		products: append([]models.Product(nil), products...),
	}
}

// GetAll returns a copy of the seeded products, or the configured failure.
func (r *MockProductRepository) GetAll() ([]models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	productList := make([]models.Product, len(r.products))
	copy(productList, r.products)
	return productList, nil
}

// Seed appends products to the catalog.
func (r *MockProductRepository) Seed(products ...models.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = append(r.products, products...)
}

// FailWith makes every following GetAll return err. A nil err restores normal reads.
func (r *MockProductRepository) FailWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.err = err
}

// Calls returns the number of GetAll invocations so far.
func (r *MockProductRepository) Calls() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.calls
}
