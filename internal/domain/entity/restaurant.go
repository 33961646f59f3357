// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Restaurant represents a seller-owned store. TaxFee and AdditionalFee are
// flat per-order amounts copied onto every order at creation time, so later
// fee changes never affect existing orders.
type Restaurant struct {
	ID            uuid.UUID   // The unique identifier for the restaurant.
	Name          string      // The restaurant's display name.
	OwnerIDs      []uuid.UUID // Seller accounts that own this restaurant (many-to-many).
	TaxFee        int64       // Flat per-order tax amount in the smallest currency unit.
	AdditionalFee int64       // Flat per-order service amount in the smallest currency unit.
	Approval      Approval    // Admin approval gate; customers only see confirmed restaurants.
	CreatedAt     time.Time   // Timestamp of when the restaurant was registered.
	UpdatedAt     time.Time   // Timestamp of the last modification.
}

// IsOwnedBy reports whether the given seller account owns this restaurant.
func (r *Restaurant) IsOwnedBy(sellerID uuid.UUID) bool {
	for _, id := range r.OwnerIDs {
		if id == sellerID {
			return true
		}
	}

	return false
}

// FoodItem represents a single menu entry. Supply is the only contended
// field in the order creation path and is mutated exclusively through the
// repository's conditional decrement.
type FoodItem struct {
	ID           uuid.UUID // The unique identifier for the food item.
	RestaurantID uuid.UUID // The restaurant this item belongs to.
	Name         string    // The item's display name.
	Category     string    // Free-form category, e.g. "pizza", "drinks".
	Price        int64     // Unit price in the smallest currency unit.
	Supply       int       // Units currently available, never negative.
	CreatedAt    time.Time // Timestamp of when the item was added to the menu.
	UpdatedAt    time.Time // Timestamp of the last modification.
}
