package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "abuadfarms/internal/delivery/context"
	"abuadfarms/internal/delivery/http/response"
	"abuadfarms/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// Place handles checkout. Login is not required; when a valid token rides
// along, the order is attributed to that account.
func (h *OrderHandler) Place(c echo.Context) error {
	var input usecase.PlaceOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if claims := deliverycontext.GetClaims(c); claims != nil {
		userID := claims.UserID
		input.UserID = &userID
	}

	output, err := h.uc.PlaceOrder(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, echo.Map{
		"order_id":     output.OrderID,
		"order_number": output.OrderNumber,
		"total":        output.Total,
		"created_at":   output.CreatedAt,
	}, "Order placed successfully")
}

// List handles the admin order listing.
func (h *OrderHandler) List(c echo.Context) error {
	summaries, err := h.uc.ListOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOrderSummaryViews(summaries), "")
}

// Get handles a single order read by order number. Admins can read any
// order; everyone else only their own.
func (h *OrderHandler) Get(c echo.Context) error {
	input := &usecase.GetOrderInput{OrderNumber: c.Param("order_number")}

	claims := deliverycontext.GetClaims(c)
	if claims != nil && !claims.IsAdmin() {
		userID := claims.UserID
		input.RequesterID = &userID
	}

	order, err := h.uc.GetOrder(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOrderView(order), "")
}

// UpdateStatus handles the admin order status change.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.UpdateOrderStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}
	input.OrderID = id

	order, err := h.uc.UpdateOrderStatus(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOrderView(order), "Order status updated")
}
