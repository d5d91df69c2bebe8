package impl

import (
	"context"
	"log/slog"
	"strings"

	"abuadfarms/config"
	deliverycontext "abuadfarms/internal/delivery/context"
	"abuadfarms/internal/domain/entity"
	domainerrors "abuadfarms/internal/domain/errors"
	"abuadfarms/internal/domain/repository"
	"abuadfarms/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo     repository.ProductRepository
	defaultPageSize int
	featuredLimit   int
	logger          *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo:     params.ProductRepo,
		defaultPageSize: params.Config.Catalog.DefaultPageSize,
		featuredLimit:   params.Config.Catalog.FeaturedLimit,
		logger:          params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts applies the composable filters with paging defaults.
func (srv *catalogService) ListProducts(ctx context.Context, input *usecase.ListProductsInput) ([]*entity.Product, error) {
	filter := repository.ProductFilter{
		Search:   strings.TrimSpace(input.Search),
		Category: strings.TrimSpace(input.Category),
		MinPrice: input.MinPrice,
		MaxPrice: input.MaxPrice,
		Sort:     parseSort(input.Sort),
		Page:     input.Page,
		Limit:    input.Limit,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = srv.defaultPageSize
	}

	products, err := srv.productRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetFeaturedProducts returns the storefront's featured shelf.
func (srv *catalogService) GetFeaturedProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListFeatured(ctx, srv.featuredLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list featured products")
	}

	return products, nil
}

// GetProduct retrieves one product by id.
func (srv *catalogService) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "failed to get product")
		}

		return nil, errors.Wrap(err, "failed to get product")
	}

	return product, nil
}

// CreateProduct adds a new product to the catalog.
func (srv *catalogService) CreateProduct(ctx context.Context, input *usecase.SaveProductInput) (*entity.Product, error) {
	product := productFromInput(input)

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to create product", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Int64("productID", product.ID), slog.String("name", product.Name))

	return product, nil
}

// UpdateProduct replaces an existing product's fields.
func (srv *catalogService) UpdateProduct(ctx context.Context, id int64, input *usecase.SaveProductInput) (*entity.Product, error) {
	product := productFromInput(input)
	product.ID = id

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "failed to update product")
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// DeleteProduct removes a product unless it appears in existing orders.
func (srv *catalogService) DeleteProduct(ctx context.Context, id int64) error {
	err := srv.productRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductInUse) {
			return errors.Wrap(domainerrors.ErrProductInUse, "failed to delete product")
		}
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(domainerrors.ErrProductNotFound, "failed to delete product")
		}

		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.Int64("productID", id))

	return nil
}

// ListCategories aggregates the distinct categories with counts.
func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.CategoryCount, error) {
	counts, err := srv.productRepo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return counts, nil
}

// RenameCategory re-labels every product in a category.
func (srv *catalogService) RenameCategory(ctx context.Context, input *usecase.RenameCategoryInput) (*usecase.CategoryChangeOutput, error) {
	oldName := strings.TrimSpace(input.OldName)
	newName := strings.TrimSpace(input.NewName)

	updated, err := srv.productRepo.RenameCategory(ctx, oldName, newName)
	if err != nil {
		return nil, errors.Wrap(err, "failed to rename category")
	}

	srv.log(ctx).Info("Category renamed",
		slog.String("from", oldName), slog.String("to", newName), slog.Int64("updated", updated))

	return &usecase.CategoryChangeOutput{Updated: updated}, nil
}

// DeleteCategory dissolves a category; its products fall back to the
// "Others" bucket. The bucket itself cannot be deleted.
func (srv *catalogService) DeleteCategory(ctx context.Context, input *usecase.DeleteCategoryInput) (*usecase.CategoryChangeOutput, error) {
	category := strings.TrimSpace(input.Category)
	if strings.EqualFold(category, entity.CategoryOthers) {
		return nil, errors.Wrap(domainerrors.ErrCategoryProtected, "failed to delete category")
	}

	updated, err := srv.productRepo.ClearCategory(ctx, category)
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete category")
	}

	srv.log(ctx).Info("Category deleted", slog.String("category", category), slog.Int64("updated", updated))

	return &usecase.CategoryChangeOutput{Updated: updated}, nil
}

func parseSort(raw string) repository.ProductSort {
	switch repository.ProductSort(strings.ToLower(strings.TrimSpace(raw))) {
	case repository.SortPriceAsc:
		return repository.SortPriceAsc
	case repository.SortPriceDesc:
		return repository.SortPriceDesc
	default:
		return repository.SortLatest
	}
}

func productFromInput(input *usecase.SaveProductInput) *entity.Product {
	return &entity.Product{
		Name:          strings.TrimSpace(input.Name),
		Description:   input.Description,
		Price:         input.Price,
		Category:      strings.TrimSpace(input.Category),
		Featured:      input.Featured,
		ImageURL:      strings.TrimSpace(input.ImageURL),
		StockQuantity: input.StockQuantity,
	}
}
