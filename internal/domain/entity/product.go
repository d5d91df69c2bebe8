// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// CategoryOthers is the synthetic bucket for products whose category is
// NULL or blank. It is never stored in the database; repositories map
// NULL/blank to it on the way out and back to NULL on the way in.
const CategoryOthers = "Others"

// Product is a single item in the catalog.
type Product struct {
	ID            int64     // Primary key, assigned by the database.
	Name          string    // Product name shown in the catalog.
	Description   string    // Free-text description, may be empty.
	Price         float64   // Unit price, never negative.
	Category      string    // Category label; empty means uncategorized ("Others").
	Featured      bool      // Whether the product appears in the featured strip.
	ImageURL      string    // URL of the product image, may be empty.
	StockQuantity int       // Informational stock counter, never decremented by checkout.
	CreatedAt     time.Time // Timestamp of when the product was created.
	UpdatedAt     time.Time // Timestamp of the last modification.
}

// CategoryCount pairs a category label with the number of products in it.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}
