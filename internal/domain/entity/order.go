// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Order represents a customer's purchase at a single restaurant. The four
// price components and PayPrice are fixed at creation and never change;
// only Status, CourierID, Paid and UpdatedAt are mutable afterwards.
type Order struct {
	ID              uuid.UUID   // The unique identifier for the order.
	CustomerID      uuid.UUID   // The customer who placed the order.
	RestaurantID    uuid.UUID   // The restaurant the order was placed at.
	CourierID       *uuid.UUID  // The courier assigned at pickup; nil until claimed.
	Status          OrderStatus // Current lifecycle state.
	DeliveryAddress string      // Where the order is delivered to.
	Items           []OrderItem // Line items; quantities are always > 0.
	RawPrice        int64       // Sum of price x quantity across all items.
	TaxFee          int64       // Copied from the restaurant at creation time.
	AdditionalFee   int64       // Copied from the restaurant at creation time.
	CourierFee      int64       // Fixed platform constant at creation time.
	PayPrice        int64       // RawPrice + TaxFee + AdditionalFee + CourierFee.
	Paid            bool        // Whether payment has been recorded for this order.
	CreatedAt       time.Time   // Timestamp of creation.
	UpdatedAt       time.Time   // Timestamp of the last status change.
}

// OrderItem is a single line of an order. Price is a snapshot of the food
// item's unit price at creation time.
type OrderItem struct {
	FoodItemID uuid.UUID // The ordered food item.
	Quantity   int       // Units ordered, always > 0.
	Price      int64     // Unit price snapshot in the smallest currency unit.
}

// ComputePayPrice recomputes the total from the four components. The stored
// PayPrice must always equal this; it is never accepted from a caller.
func (o *Order) ComputePayPrice() int64 {
	return o.RawPrice + o.TaxFee + o.AdditionalFee + o.CourierFee
}

// SellerShare is the amount credited to the restaurant's seller at settlement.
func (o *Order) SellerShare() int64 {
	return o.RawPrice + o.AdditionalFee
}
