package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogService(productRepo *mockRepo.MockProductRepository) usecase.CatalogUsecase {
	return NewCatalogService(CatalogServiceParams{
		ProductRepo: productRepo,
		Logger:      testLogger(),
	})
}

func TestCatalogService_ListProducts(t *testing.T) {
	mockProduct := new(mockRepo.MockProductRepository)
	service := newCatalogService(mockProduct)

	ctx := context.Background()
	products := []*entity.Product{
		testProduct("p1", 10000),
		testProduct("p2", 5000),
	}
	mockProduct.On("ListProducts", ctx, repository.ProductFilter{Category: "electronics"}).
		Return(products, nil)

	got, err := service.ListProducts(ctx, usecase.ProductQuery{Category: "electronics"})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestCatalogService_ListProducts_PassesSearchFilter(t *testing.T) {
	mockProduct := new(mockRepo.MockProductRepository)
	service := newCatalogService(mockProduct)

	ctx := context.Background()
	mockProduct.On("ListProducts", ctx, repository.ProductFilter{Search: "headphones"}).
		Return([]*entity.Product{}, nil)

	got, err := service.ListProducts(ctx, usecase.ProductQuery{Search: "headphones"})
	require.NoError(t, err)
	assert.Empty(t, got)
	mockProduct.AssertExpectations(t)
}

func TestCatalogService_GetProduct(t *testing.T) {
	mockProduct := new(mockRepo.MockProductRepository)
	service := newCatalogService(mockProduct)

	ctx := context.Background()
	mockProduct.On("FindProductByID", ctx, "p1").Return(testProduct("p1", 10000), nil)

	product, err := service.GetProduct(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", product.ID)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	mockProduct := new(mockRepo.MockProductRepository)
	service := newCatalogService(mockProduct)

	ctx := context.Background()
	mockProduct.On("FindProductByID", ctx, "ghost").Return(nil, repository.ErrProductNotFound)

	product, err := service.GetProduct(ctx, "ghost")
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_GetProduct_RepositoryError(t *testing.T) {
	mockProduct := new(mockRepo.MockProductRepository)
	service := newCatalogService(mockProduct)

	ctx := context.Background()
	mockProduct.On("FindProductByID", ctx, "p1").Return(nil, errors.New("store unavailable"))

	product, err := service.GetProduct(ctx, "p1")
	assert.Nil(t, product)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrProductNotFound)
}
