package model

import "time"

// OrderModel mirrors the 'orders' table. UserID is nullable: guest checkouts
// leave it NULL, and deleting a user detaches their orders (SET NULL).
type OrderModel struct {
	ID           int64   `gorm:"primaryKey;autoIncrement"`
	OrderNumber  string  `gorm:"column:order_number;type:text;uniqueIndex;not null"`
	CustomerName string  `gorm:"type:text;not null"`
	Email        string  `gorm:"type:text;not null"`
	Phone        string  `gorm:"type:text;not null"`
	Address      string  `gorm:"type:text;not null"`
	Total        float64 `gorm:"type:numeric(12,2);not null"`
	Status       string  `gorm:"type:text;not null;default:pending"`
	UserID       *int64  `gorm:"index"`
	CreatedAt    time.Time

	User  *UserModel        `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
	Items []*OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Price is the unit price
// snapshot captured at purchase time. The product FK is RESTRICT so a
// product referenced by any line item cannot be deleted.
type OrderItemModel struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	OrderID   int64   `gorm:"not null;index"`
	ProductID int64   `gorm:"not null;index"`
	Quantity  int     `gorm:"not null;default:1"`
	Price     float64 `gorm:"type:numeric(10,2);not null"`

	Order   *OrderModel   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Product *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
