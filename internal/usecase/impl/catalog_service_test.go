package impl

import (
	"context"
	"testing"

	"abuadfarms/config"
	"abuadfarms/internal/domain/entity"
	domainerrors "abuadfarms/internal/domain/errors"
	"abuadfarms/internal/domain/repository"
	"abuadfarms/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	productRepo *mockProductRepository
}

func createTestCatalogService(_ *testing.T) catalogServiceFixtures {
	productRepo := &mockProductRepository{}

	cfg := &config.Config{}
	cfg.Catalog = &config.CatalogConfig{DefaultPageSize: 24, FeaturedLimit: 5}

	service := NewCatalogService(CatalogServiceParams{
		ProductRepo: productRepo,
		Config:      cfg,
		Logger:      discardLogger(),
	})

	return catalogServiceFixtures{
		service:     service,
		productRepo: productRepo,
	}
}

func TestCatalogService_ListProducts_Defaults(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.productRepo.On("List", ctx, repository.ProductFilter{
		Sort:  repository.SortLatest,
		Page:  1,
		Limit: 24,
	}).Return([]*entity.Product{{ID: 1}}, nil)

	products, err := fx.service.ListProducts(ctx, &usecase.ListProductsInput{})
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestCatalogService_ListProducts_NormalizesSort(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	min := 100.0
	fx.productRepo.On("List", ctx, repository.ProductFilter{
		Search:   "yam",
		MinPrice: &min,
		Sort:     repository.SortPriceDesc,
		Page:     2,
		Limit:    10,
	}).Return([]*entity.Product{}, nil)

	_, err := fx.service.ListProducts(ctx, &usecase.ListProductsInput{
		Search:   " yam ",
		MinPrice: &min,
		Sort:     "PRICE_DESC",
		Page:     2,
		Limit:    10,
	})
	require.NoError(t, err)

	// Unknown sort labels fall back to latest.
	fx.productRepo.On("List", ctx, repository.ProductFilter{
		Sort:  repository.SortLatest,
		Page:  1,
		Limit: 24,
	}).Return([]*entity.Product{}, nil)

	_, err = fx.service.ListProducts(ctx, &usecase.ListProductsInput{Sort: "cheapest"})
	require.NoError(t, err)
}

func TestCatalogService_GetFeaturedProducts(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.productRepo.On("ListFeatured", ctx, 5).Return([]*entity.Product{{ID: 2, Featured: true}}, nil)

	products, err := fx.service.GetFeaturedProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.True(t, products[0].Featured)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.productRepo.On("FindByID", ctx, int64(99)).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.GetProduct(ctx, 99)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_DeleteProduct_InUse(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.productRepo.On("Delete", ctx, int64(3)).Return(repository.ErrProductInUse)

	err := fx.service.DeleteProduct(ctx, 3)
	assert.ErrorIs(t, err, domainerrors.ErrProductInUse)
}

func TestCatalogService_RenameCategory(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.productRepo.On("RenameCategory", ctx, "Tubers", "Root Crops").Return(int64(4), nil)

	output, err := fx.service.RenameCategory(ctx, &usecase.RenameCategoryInput{
		OldName: " Tubers ",
		NewName: "Root Crops",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 4, output.Updated)
}

func TestCatalogService_DeleteCategory_ProtectsOthers(t *testing.T) {
	fx := createTestCatalogService(t)

	_, err := fx.service.DeleteCategory(context.Background(), &usecase.DeleteCategoryInput{Category: "others"})
	assert.ErrorIs(t, err, domainerrors.ErrCategoryProtected)
	fx.productRepo.AssertNotCalled(t, "ClearCategory", mock.Anything, mock.Anything)
}

func TestCatalogService_DeleteCategory(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.productRepo.On("ClearCategory", ctx, "Fish").Return(int64(2), nil)

	output, err := fx.service.DeleteCategory(ctx, &usecase.DeleteCategoryInput{Category: "Fish"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, output.Updated)
}
