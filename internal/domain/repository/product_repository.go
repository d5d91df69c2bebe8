package repository

import (
	"context"
	"errors"

	"abuadfarms/internal/domain/entity"
)

// ErrProductNotFound is returned when no product matches the given id.
var ErrProductNotFound = errors.New("product not found")

// ErrProductInUse is returned when a delete is blocked because order_items
// rows still reference the product.
var ErrProductInUse = errors.New("product referenced by existing order items")

// ProductSort enumerates the supported catalog sort orders.
type ProductSort string

const (
	// SortLatest orders by descending id (newest first). This is the default.
	SortLatest ProductSort = "latest"
	// SortPriceAsc orders by ascending price.
	SortPriceAsc ProductSort = "price_asc"
	// SortPriceDesc orders by descending price.
	SortPriceDesc ProductSort = "price_desc"
)

// ProductFilter describes the composable catalog filters. Zero values mean
// "no constraint"; all present filters combine with logical AND.
type ProductFilter struct {
	// Search matches a case-insensitive substring of name or description.
	Search string

	// Category filters by exact category label. The special value "others"
	// (any casing) matches products with a NULL or blank category.
	Category string

	// MinPrice and MaxPrice are inclusive bounds.
	MinPrice *float64
	MaxPrice *float64

	Sort ProductSort

	// Page is 1-based; Limit is the page size. The caller supplies defaults.
	Page  int
	Limit int
}

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// FindByID retrieves a single product by its primary key.
	FindByID(ctx context.Context, id int64) (*entity.Product, error)

	// List retrieves products matching the filter, paginated.
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)

	// ListFeatured retrieves up to limit featured products, newest first.
	ListFeatured(ctx context.Context, limit int) ([]*entity.Product, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update overwrites an existing product row.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product. It fails with ErrProductInUse when any
	// order_items row references it and ErrProductNotFound when absent.
	Delete(ctx context.Context, id int64) error

	// ListCategories aggregates distinct categories with product counts.
	// NULL/blank categories are bucketed as "Others", sorted first.
	ListCategories(ctx context.Context) ([]*entity.CategoryCount, error)

	// RenameCategory re-labels every product in oldName to newName and
	// returns the number of affected rows. "Others" maps to NULL on either
	// side.
	RenameCategory(ctx context.Context, oldName, newName string) (int64, error)

	// ClearCategory sets the category of matching products to NULL and
	// returns the number of affected rows.
	ClearCategory(ctx context.Context, category string) (int64, error)
}
