package repositories

import (
	"catalogview/internal/models"
)

// ProductRepository defines the interface for reading the product catalog.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
}
