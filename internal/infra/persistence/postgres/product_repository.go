package postgres

import (
	"context"
	"strings"

	"abuadfarms/internal/domain/entity"
	domainerrors "abuadfarms/internal/domain/errors"
	"abuadfarms/internal/domain/repository"
	"abuadfarms/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// categoryBucketExpr folds NULL/blank categories into the synthetic "Others"
// bucket. TRIM/NULLIF/COALESCE behave identically on PostgreSQL and sqlite.
const categoryBucketExpr = "COALESCE(NULLIF(TRIM(category), ''), 'Others')"

// productRepository implements the repository.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// FindByID retrieves a single product by its primary key.
func (repo *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// List retrieves products matching the filter, paginated.
func (repo *productRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).Model(&model.ProductModel{})

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", like, like)
	}

	if filter.Category != "" {
		if strings.EqualFold(filter.Category, entity.CategoryOthers) {
			query = query.Where("category IS NULL OR TRIM(category) = ''")
		} else {
			query = query.Where("category = ?", filter.Category)
		}
	}

	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}

	switch filter.Sort {
	case repository.SortPriceAsc:
		query = query.Order("price ASC")
	case repository.SortPriceDesc:
		query = query.Order("price DESC")
	default:
		query = query.Order("id DESC")
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset((page - 1) * filter.Limit)
	}

	var productModels []*model.ProductModel
	if err := query.Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return toProductDomainSlice(productModels), nil
}

// ListFeatured retrieves up to limit featured products, newest first.
func (repo *productRepository) ListFeatured(ctx context.Context, limit int) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("featured = ?", true).
		Order("id DESC").
		Limit(limit).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list featured products")
	}

	return toProductDomainSlice(productModels), nil
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update overwrites an existing product row.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Select("name", "description", "price", "category", "featured", "image_url", "stock_quantity").
		Updates(productM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	updated, err := repo.FindByID(ctx, product.ID)
	if err != nil {
		return err
	}
	*product = *updated

	return nil
}

// Delete removes a product unless order_items rows still reference it. The
// pre-delete count gives a friendly error; the RESTRICT FK stays as the
// backstop against races.
func (repo *productRepository) Delete(ctx context.Context, id int64) error {
	var refs int64
	if err := repo.db.WithContext(ctx).
		Model(&model.OrderItemModel{}).
		Where("product_id = ?", id).
		Count(&refs).Error; err != nil {
		return errors.Wrap(err, "failed to count order item references")
	}
	if refs > 0 {
		return repository.ErrProductInUse
	}

	result := repo.db.WithContext(ctx).Delete(&model.ProductModel{}, id)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrProductInUse
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// ListCategories aggregates distinct categories with product counts,
// bucketing NULL/blank into "Others" and sorting "Others" first.
func (repo *productRepository) ListCategories(ctx context.Context) ([]*entity.CategoryCount, error) {
	var counts []*entity.CategoryCount

	err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Select(categoryBucketExpr + " AS category, COUNT(*) AS count").
		Group(categoryBucketExpr).
		Order("CASE WHEN " + categoryBucketExpr + " = 'Others' THEN 0 ELSE 1 END, category").
		Scan(&counts).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate categories")
	}

	return counts, nil
}

// RenameCategory re-labels every product in oldName to newName. "Others"
// addresses the NULL/blank bucket and maps back to NULL as a target.
func (repo *productRepository) RenameCategory(ctx context.Context, oldName, newName string) (int64, error) {
	var target *string
	if newName != entity.CategoryOthers {
		target = &newName
	}

	query := repo.db.WithContext(ctx).Model(&model.ProductModel{})
	if oldName == entity.CategoryOthers {
		query = query.Where("category IS NULL OR TRIM(category) = ''")
	} else {
		query = query.Where("category = ?", oldName)
	}

	result := query.Update("category", target)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to rename category")
	}

	return result.RowsAffected, nil
}

// ClearCategory sets the category of matching products to NULL.
func (repo *productRepository) ClearCategory(ctx context.Context, category string) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("category = ?", category).
		Update("category", nil)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to clear category")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	product := &entity.Product{
		ID:            data.ID,
		Name:          data.Name,
		Description:   data.Description,
		Price:         data.Price,
		Featured:      data.Featured,
		StockQuantity: data.StockQuantity,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
	if data.Category != nil {
		product.Category = *data.Category
	}
	if data.ImageURL != nil {
		product.ImageURL = *data.ImageURL
	}

	return product
}

func toProductDomainSlice(data []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(data))
	for _, productM := range data {
		products = append(products, toProductDomain(productM))
	}

	return products
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	productM := &model.ProductModel{
		ID:            data.ID,
		Name:          data.Name,
		Description:   data.Description,
		Price:         data.Price,
		Featured:      data.Featured,
		StockQuantity: data.StockQuantity,
	}
	if trimmed := strings.TrimSpace(data.Category); trimmed != "" && trimmed != entity.CategoryOthers {
		productM.Category = &trimmed
	}
	if data.ImageURL != "" {
		imageURL := data.ImageURL
		productM.ImageURL = &imageURL
	}

	return productM
}
