// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// OrderStatusPending is the status assigned to every newly created order.
// Status is free text beyond this default; admins set whatever label their
// fulfilment flow uses.
const OrderStatusPending = "pending"

// Order is a confirmed checkout: one row of customer contact data plus a
// set of line items. Orders are immutable after creation except for the
// status field.
type Order struct {
	ID           int64        // Primary key, assigned by the database.
	OrderNumber  string       // Human-readable unique identifier, e.g. "ABUAD-1726000000000-421".
	CustomerName string       // Contact block captured at checkout.
	Email        string       //
	Phone        string       //
	Address      string       //
	Total        float64      // Sum of quantity*price over all items, fixed at creation.
	Status       string       // Fulfilment status, defaults to OrderStatusPending.
	UserID       *int64       // Owning user, nil for guest checkouts.
	Items        []*OrderItem // Line items; populated on detail reads and at creation.
	CreatedAt    time.Time    // Timestamp of when the order was placed.
}

// OrderItem is one product+quantity+price tuple within an order. Price is a
// point-in-time copy of the product price at purchase, not a live join.
type OrderItem struct {
	ID        int64   // Primary key, assigned by the database.
	OrderID   int64   // Owning order.
	ProductID int64   // Referenced product; the FK blocks product deletion.
	Quantity  int     // Number of units, at least 1.
	Price     float64 // Unit price snapshot taken at purchase time.

	// Read-only presentation fields joined from the product row on detail
	// reads; never written back.
	ProductName string
	ImageURL    string
}

// OrderSummary is an order row augmented with its line item count, as
// returned by the admin order listing.
type OrderSummary struct {
	Order
	ItemCount int64
}
