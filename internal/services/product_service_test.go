package services_test

import (
	"fmt"
	"testing"

	"catalogview/internal/models"
	"catalogview/internal/repositories"
	"catalogview/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func TestProductService_LoadCatalog(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	fetched := []models.Product{
		named(1, "Product A"),
		{ID: 2, SKU: "NO-NAME"},
		named(3, "Product B"),
	}

	mockRepo.On("GetAll").Return(fetched, nil).Once()

	products, err := service.LoadCatalog()

	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, []int64{1, 3}, ids(products))
	mockRepo.AssertExpectations(t)
}

func TestProductService_LoadCatalogFailure(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	upstreamErr := fmt.Errorf("%w: catalog responded with status 500", repositories.ErrFetchFailed)
	mockRepo.On("GetAll").Return(nil, upstreamErr).Once()

	products, err := service.LoadCatalog()

	assert.Error(t, err)
	assert.Nil(t, products)
	assert.ErrorIs(t, err, repositories.ErrFetchFailed)
	assert.Contains(t, err.Error(), "failed to load catalog")
	mockRepo.AssertExpectations(t)
}
