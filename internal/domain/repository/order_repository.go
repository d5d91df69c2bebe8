package repository

import (
	"context"
	"errors"

	"abuadfarms/internal/domain/entity"
)

// ErrOrderNotFound is returned when no order matches the given key.
var ErrOrderNotFound = errors.New("order not found")

// ErrOrderNumberTaken is returned when an insert collides with an existing
// order_number. The generator is probabilistic, so the caller retries with a
// fresh number.
var ErrOrderNumberTaken = errors.New("order number already taken")

// OrderRepository defines the standard operations for order persistence.
type OrderRepository interface {
	// Create persists an order row together with all of its line items.
	// Callers run it inside TransactionManager.Execute so the order and its
	// items commit or roll back as one unit.
	Create(ctx context.Context, order *entity.Order) error

	// ListWithItemCounts retrieves all orders newest first, each with its
	// line item count.
	ListWithItemCounts(ctx context.Context) ([]*entity.OrderSummary, error)

	// FindByNumber retrieves an order by order_number including its items
	// joined with product name and image. When userID is non-nil the match
	// is additionally restricted to orders owned by that user.
	FindByNumber(ctx context.Context, orderNumber string, userID *int64) (*entity.Order, error)

	// UpdateStatus sets the status of an order by id and returns the
	// updated row.
	UpdateStatus(ctx context.Context, id int64, status string) (*entity.Order, error)
}
