package postgres

import (
	"context"

	"abuadfarms/internal/domain/entity"
	domainerrors "abuadfarms/internal/domain/errors"
	"abuadfarms/internal/domain/repository"
	"abuadfarms/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create inserts the order row and all of its line items. The caller wraps
// this in TransactionManager.Execute so a failed item insert rolls back the
// order row as well.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Omit("Items", "User").Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrOrderNumberTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	for i, item := range order.Items {
		itemM := &model.OrderItemModel{
			OrderID:   orderM.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}

		if err := repo.db.WithContext(ctx).Omit("Order", "Product").Create(itemM).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to create order item")
		}

		order.Items[i].ID = itemM.ID
		order.Items[i].OrderID = orderM.ID
	}

	order.ID = orderM.ID
	order.Status = orderM.Status
	order.CreatedAt = orderM.CreatedAt

	return nil
}

// ListWithItemCounts retrieves all orders newest first, each annotated with
// its line item count.
func (repo *orderRepository) ListWithItemCounts(ctx context.Context) ([]*entity.OrderSummary, error) {
	var orderModels []*model.OrderModel
	if err := repo.db.WithContext(ctx).
		Order("id DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	type countRow struct {
		OrderID int64
		Count   int64
	}
	var countRows []countRow
	if err := repo.db.WithContext(ctx).
		Model(&model.OrderItemModel{}).
		Select("order_id, COUNT(*) AS count").
		Group("order_id").
		Scan(&countRows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count order items")
	}

	counts := make(map[int64]int64, len(countRows))
	for _, row := range countRows {
		counts[row.OrderID] = row.Count
	}

	summaries := make([]*entity.OrderSummary, 0, len(orderModels))
	for _, orderM := range orderModels {
		summaries = append(summaries, &entity.OrderSummary{
			Order:     *toOrderDomain(orderM),
			ItemCount: counts[orderM.ID],
		})
	}

	return summaries, nil
}

// FindByNumber retrieves an order by its order_number together with its line
// items joined against the product catalog for display. A non-nil userID
// restricts the lookup to that user's own orders.
func (repo *orderRepository) FindByNumber(ctx context.Context, orderNumber string, userID *int64) (*entity.Order, error) {
	query := repo.db.WithContext(ctx).Where("order_number = ?", orderNumber)
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}

	var orderM model.OrderModel
	if err := query.First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by number")
	}

	type itemRow struct {
		ID          int64
		OrderID     int64
		ProductID   int64
		Quantity    int
		Price       float64
		ProductName string
		ImageURL    *string
	}
	var itemRows []itemRow
	if err := repo.db.WithContext(ctx).
		Model(&model.OrderItemModel{}).
		Select("order_items.id, order_items.order_id, order_items.product_id, order_items.quantity, order_items.price, products.name AS product_name, products.image_url AS image_url").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("order_items.order_id = ?", orderM.ID).
		Order("order_items.id ASC").
		Scan(&itemRows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load order items")
	}

	order := toOrderDomain(&orderM)
	order.Items = make([]*entity.OrderItem, 0, len(itemRows))
	for _, row := range itemRows {
		item := &entity.OrderItem{
			ID:          row.ID,
			OrderID:     row.OrderID,
			ProductID:   row.ProductID,
			Quantity:    row.Quantity,
			Price:       row.Price,
			ProductName: row.ProductName,
		}
		if row.ImageURL != nil {
			item.ImageURL = *row.ImageURL
		}
		order.Items = append(order.Items, item)
	}

	return order, nil
}

// UpdateStatus sets the status of an order by id and returns the updated row.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id int64, status string) (*entity.Order, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrOrderNotFound
	}

	var orderM model.OrderModel
	if err := repo.db.WithContext(ctx).First(&orderM, id).Error; err != nil {
		return nil, errors.Wrap(err, "failed to reload order after status update")
	}

	return toOrderDomain(&orderM), nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity. Items
// are loaded separately by the callers that need them.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:           data.ID,
		OrderNumber:  data.OrderNumber,
		CustomerName: data.CustomerName,
		Email:        data.Email,
		Phone:        data.Phone,
		Address:      data.Address,
		Total:        data.Total,
		Status:       data.Status,
		UserID:       data.UserID,
		CreatedAt:    data.CreatedAt,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	status := data.Status
	if status == "" {
		status = entity.OrderStatusPending
	}

	return &model.OrderModel{
		ID:           data.ID,
		OrderNumber:  data.OrderNumber,
		CustomerName: data.CustomerName,
		Email:        data.Email,
		Phone:        data.Phone,
		Address:      data.Address,
		Total:        data.Total,
		Status:       status,
		UserID:       data.UserID,
	}
}
