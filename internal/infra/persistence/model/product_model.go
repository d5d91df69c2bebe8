package model

import "time"

// ProductModel mirrors the 'products' table. Category is nullable: NULL or
// blank rows belong to the synthetic "Others" bucket.
type ProductModel struct {
	ID            int64   `gorm:"primaryKey;autoIncrement"`
	Name          string  `gorm:"type:text;not null;index"`
	Description   string  `gorm:"type:text"`
	Price         float64 `gorm:"type:numeric(10,2);not null;default:0"`
	Category      *string `gorm:"type:text;index"`
	Featured      bool    `gorm:"not null;default:false"`
	ImageURL      *string `gorm:"column:image_url;type:text"`
	StockQuantity int     `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
