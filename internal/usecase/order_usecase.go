package usecase

import (
	"context"
	"time"

	"abuadfarms/internal/domain/entity"
)

// --- Input DTOs ---

// OrderCustomerInput is the contact block captured at checkout.
type OrderCustomerInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address" validate:"required"`
}

// OrderItemInput is one requested line item. Price is what the client
// displayed at checkout; the server snapshots the current product price and
// rejects the order when the implied total no longer matches.
type OrderItemInput struct {
	ProductID int64   `json:"id" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,min=1"`
	Price     float64 `json:"price"`
}

// PlaceOrderInput defines the data required to place an order. UserID is
// set by the delivery layer from the optional auth token, never by the
// client payload. Total is a pointer so an omitted total (no check possible)
// is distinguishable from an explicit, wrong zero.
type PlaceOrderInput struct {
	Customer OrderCustomerInput `json:"customer" validate:"required"`
	Items    []*OrderItemInput  `json:"items" validate:"required,min=1,dive"`
	Total    *float64           `json:"total"`
	UserID   *int64             `json:"-"`
}

// UpdateOrderStatusInput defines the data for an admin status change.
type UpdateOrderStatusInput struct {
	OrderID int64
	Status  string `json:"status" validate:"required"`
}

// GetOrderInput identifies one order. A non-nil RequesterID restricts the
// lookup to that user's own orders; admins pass nil.
type GetOrderInput struct {
	OrderNumber string
	RequesterID *int64
}

// --- Output DTOs ---

// PlaceOrderOutput confirms a placed order.
type PlaceOrderOutput struct {
	OrderID     int64
	OrderNumber string
	Total       float64
	CreatedAt   time.Time
}

// OrderUsecase defines the interface for order-related business operations.
type OrderUsecase interface {
	// PlaceOrder validates the cart, snapshots current prices, recomputes
	// the total and creates the order with its items atomically.
	PlaceOrder(ctx context.Context, input *PlaceOrderInput) (*PlaceOrderOutput, error)

	// ListOrders returns every order with its item count, newest first.
	// Admin only.
	ListOrders(ctx context.Context) ([]*entity.OrderSummary, error)

	GetOrder(ctx context.Context, input *GetOrderInput) (*entity.Order, error)

	// UpdateOrderStatus sets an order's fulfilment status. Admin only.
	UpdateOrderStatus(ctx context.Context, input *UpdateOrderStatusInput) (*entity.Order, error)
}
