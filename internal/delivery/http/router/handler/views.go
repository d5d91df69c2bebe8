// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"abuadfarms/internal/domain/entity"
)

// Response views. Entities never serialize directly: the user view drops
// the password hash and the order views flatten what the storefront needs.

type userView struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type productView struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	Category      string    `json:"category"`
	Featured      bool      `json:"featured"`
	ImageURL      string    `json:"image_url"`
	StockQuantity int       `json:"stock_quantity"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type orderItemView struct {
	ID          int64   `json:"id"`
	ProductID   int64   `json:"product_id"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	ProductName string  `json:"product_name,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`
}

type orderView struct {
	ID           int64           `json:"id"`
	OrderNumber  string          `json:"order_number"`
	CustomerName string          `json:"customer_name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	Address      string          `json:"address"`
	Total        float64         `json:"total"`
	Status       string          `json:"status"`
	UserID       *int64          `json:"user_id,omitempty"`
	Items        []orderItemView `json:"items,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

type orderSummaryView struct {
	orderView
	ItemCount int64 `json:"item_count"`
}

func newUserView(user *entity.User) userView {
	return userView{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role.String(),
		CreatedAt: user.CreatedAt,
	}
}

func newUserViews(users []*entity.User) []userView {
	views := make([]userView, 0, len(users))
	for _, user := range users {
		views = append(views, newUserView(user))
	}

	return views
}

func newProductView(product *entity.Product) productView {
	return productView{
		ID:            product.ID,
		Name:          product.Name,
		Description:   product.Description,
		Price:         product.Price,
		Category:      product.Category,
		Featured:      product.Featured,
		ImageURL:      product.ImageURL,
		StockQuantity: product.StockQuantity,
		CreatedAt:     product.CreatedAt,
		UpdatedAt:     product.UpdatedAt,
	}
}

func newProductViews(products []*entity.Product) []productView {
	views := make([]productView, 0, len(products))
	for _, product := range products {
		views = append(views, newProductView(product))
	}

	return views
}

func newOrderView(order *entity.Order) orderView {
	view := orderView{
		ID:           order.ID,
		OrderNumber:  order.OrderNumber,
		CustomerName: order.CustomerName,
		Email:        order.Email,
		Phone:        order.Phone,
		Address:      order.Address,
		Total:        order.Total,
		Status:       order.Status,
		UserID:       order.UserID,
		CreatedAt:    order.CreatedAt,
	}
	for _, item := range order.Items {
		view.Items = append(view.Items, orderItemView{
			ID:          item.ID,
			ProductID:   item.ProductID,
			Quantity:    item.Quantity,
			Price:       item.Price,
			ProductName: item.ProductName,
			ImageURL:    item.ImageURL,
		})
	}

	return view
}

func newOrderSummaryViews(summaries []*entity.OrderSummary) []orderSummaryView {
	views := make([]orderSummaryView, 0, len(summaries))
	for _, summary := range summaries {
		views = append(views, orderSummaryView{
			orderView: newOrderView(&summary.Order),
			ItemCount: summary.ItemCount,
		})
	}

	return views
}
