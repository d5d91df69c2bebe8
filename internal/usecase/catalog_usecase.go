package usecase

import (
	"context"

	"abuadfarms/internal/domain/entity"
)

// --- Input DTOs ---

// ListProductsInput carries the composable catalog filters as received from
// the query string. Zero values mean "no constraint".
type ListProductsInput struct {
	Search   string
	Category string
	MinPrice *float64
	MaxPrice *float64
	Sort     string
	Page     int
	Limit    int
}

// SaveProductInput defines the data for creating or replacing a product.
type SaveProductInput struct {
	Name          string  `json:"name" validate:"required"`
	Description   string  `json:"description"`
	Price         float64 `json:"price" validate:"min=0"`
	Category      string  `json:"category"`
	Featured      bool    `json:"featured"`
	ImageURL      string  `json:"image_url"`
	StockQuantity int     `json:"stock_quantity" validate:"min=0"`
}

// RenameCategoryInput defines the data for a bulk category re-label.
type RenameCategoryInput struct {
	OldName string `json:"oldName" validate:"required"`
	NewName string `json:"newName" validate:"required"`
}

// DeleteCategoryInput defines the data for dissolving a category.
type DeleteCategoryInput struct {
	Category string `json:"category" validate:"required"`
}

// CategoryChangeOutput reports how many products a category operation touched.
type CategoryChangeOutput struct {
	Updated int64
}

// CatalogUsecase defines the interface for product and category operations.
type CatalogUsecase interface {
	ListProducts(ctx context.Context, input *ListProductsInput) ([]*entity.Product, error)
	GetFeaturedProducts(ctx context.Context) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)

	CreateProduct(ctx context.Context, input *SaveProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id int64, input *SaveProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	// ListCategories aggregates the distinct categories with counts,
	// "Others" bucket first.
	ListCategories(ctx context.Context) ([]*entity.CategoryCount, error)
	RenameCategory(ctx context.Context, input *RenameCategoryInput) (*CategoryChangeOutput, error)
	DeleteCategory(ctx context.Context, input *DeleteCategoryInput) (*CategoryChangeOutput, error)
}
