package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	deliverycontext "abuadfarms/internal/delivery/context"
	"abuadfarms/internal/domain/entity"
	domainerrors "abuadfarms/internal/domain/errors"
	"abuadfarms/internal/domain/repository"
	"abuadfarms/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// orderNumberAttempts bounds the retry loop for order number
	// collisions. The millisecond timestamp plus random suffix makes a
	// second collision vanishingly unlikely.
	orderNumberAttempts = 3

	// totalTolerance absorbs float rounding when comparing the client's
	// displayed total with the server-side recomputation.
	totalTolerance = 0.01
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	logger    *slog.Logger

	// newOrderNumber is swappable in tests to force collisions.
	newOrderNumber func() string
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:      params.TxManager,
		orderRepo:      params.OrderRepo,
		logger:         params.Logger,
		newOrderNumber: generateOrderNumber,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder validates the cart against the live catalog, snapshots current
// prices and creates the order with all of its line items in one
// transaction. Either the order and every item land together or nothing is
// written.
func (srv *orderService) PlaceOrder(ctx context.Context, input *usecase.PlaceOrderInput) (*usecase.PlaceOrderOutput, error) {
	srv.log(ctx).Info("Placing order",
		slog.String("email", input.Customer.Email), slog.Int("items", len(input.Items)))

	var placed *entity.Order

	for attempt := 1; attempt <= orderNumberAttempts; attempt++ {
		order := &entity.Order{
			OrderNumber:  srv.newOrderNumber(),
			CustomerName: input.Customer.Name,
			Email:        input.Customer.Email,
			Phone:        input.Customer.Phone,
			Address:      input.Customer.Address,
			Status:       entity.OrderStatusPending,
			UserID:       input.UserID,
		}

		err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			items, total, err := srv.buildLineItems(ctx, repoFactory.NewProductRepository(), input)
			if err != nil {
				return err
			}

			order.Items = items
			order.Total = total

			return repoFactory.NewOrderRepository().Create(ctx, order)
		})
		if errors.Is(err, repository.ErrOrderNumberTaken) {
			srv.log(ctx).Warn("Order number collision, retrying",
				slog.String("orderNumber", order.OrderNumber), slog.Int("attempt", attempt))

			continue
		}
		if err != nil {
			srv.log(ctx).Error("Failed to place order", slog.Any("error", err))

			return nil, errors.Wrap(err, "failed to execute order transaction")
		}

		placed = order

		break
	}

	if placed == nil {
		return nil, errors.Wrap(domainerrors.ErrOrderCreationFailed, "exhausted order number attempts")
	}

	srv.log(ctx).Info("Order placed",
		slog.String("orderNumber", placed.OrderNumber), slog.Int64("orderID", placed.ID))

	return &usecase.PlaceOrderOutput{
		OrderID:     placed.ID,
		OrderNumber: placed.OrderNumber,
		Total:       placed.Total,
		CreatedAt:   placed.CreatedAt,
	}, nil
}

// buildLineItems resolves each requested product, snapshots its current
// price and recomputes the order total. A client total, when sent, is only
// accepted when it matches the recomputation; stale carts get a clean
// rejection instead of a silently different charge. An omitted total skips
// the comparison.
func (srv *orderService) buildLineItems(
	ctx context.Context,
	productRepo repository.ProductRepository,
	input *usecase.PlaceOrderInput,
) ([]*entity.OrderItem, float64, error) {
	items := make([]*entity.OrderItem, 0, len(input.Items))
	var total float64

	for _, requested := range input.Items {
		product, err := productRepo.FindByID(ctx, requested.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return nil, 0, domainerrors.ErrValidationFailed.WithDetails(
					fmt.Sprintf("unknown product %d", requested.ProductID))
			}

			return nil, 0, errors.Wrap(err, "failed to load product for order")
		}

		items = append(items, &entity.OrderItem{
			ProductID: product.ID,
			Quantity:  requested.Quantity,
			Price:     product.Price,
		})
		total += float64(requested.Quantity) * product.Price
	}

	total = roundToCents(total)

	if input.Total != nil && math.Abs(total-*input.Total) > totalTolerance {
		return nil, 0, errors.Wrap(domainerrors.ErrTotalMismatch,
			fmt.Sprintf("client total %.2f, recomputed %.2f", *input.Total, total))
	}

	return items, total, nil
}

// ListOrders returns every order with its item count, newest first.
func (srv *orderService) ListOrders(ctx context.Context) ([]*entity.OrderSummary, error) {
	summaries, err := srv.orderRepo.ListWithItemCounts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return summaries, nil
}

// GetOrder retrieves one order by number. Non-admin requesters only see
// their own orders; anyone else's number reads as not found.
func (srv *orderService) GetOrder(ctx context.Context, input *usecase.GetOrderInput) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByNumber(ctx, input.OrderNumber, input.RequesterID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "failed to get order")
		}

		return nil, errors.Wrap(err, "failed to get order")
	}

	return order, nil
}

// UpdateOrderStatus sets an order's fulfilment status.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, input *usecase.UpdateOrderStatusInput) (*entity.Order, error) {
	order, err := srv.orderRepo.UpdateStatus(ctx, input.OrderID, input.Status)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "failed to update order status")
		}

		return nil, errors.Wrap(err, "failed to update order status")
	}

	srv.log(ctx).Info("Order status updated",
		slog.Int64("orderID", order.ID), slog.String("status", order.Status))

	return order, nil
}

// generateOrderNumber builds the human-readable order identifier, e.g.
// "ABUAD-1726000000000-421".
func generateOrderNumber() string {
	return fmt.Sprintf("ABUAD-%d-%d", time.Now().UnixMilli(), rand.Intn(1000))
}

func roundToCents(v float64) float64 {
	return math.Round(v*100) / 100
}
