package services

import (
	"fmt"
	"log"

	"catalogview/internal/models"
	"catalogview/internal/repositories"
)

// ProductService loads the working collection from the catalog.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// LoadCatalog fetches the catalog once and drops every product without a name.
func (s *ProductService) LoadCatalog() ([]models.Product, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	named := ExcludeUnnamed(products)
	if dropped := len(products) - len(named); dropped > 0 {
		log.Printf("Dropped %d unnamed products from catalog of %d", dropped, len(products))
	}
	return named, nil
}
