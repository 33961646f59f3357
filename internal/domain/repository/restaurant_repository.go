package repository

import (
	"context"

	"chow/internal/domain/entity"

	"github.com/google/uuid"
)

// RestaurantRepository defines persistence operations for restaurants.
type RestaurantRepository interface {
	// Create persists a new restaurant with its owner links.
	Create(ctx context.Context, restaurant *entity.Restaurant) error

	// FindByID retrieves a restaurant by its unique ID, including owner IDs.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)

	// ListByApproval retrieves all restaurants in the given approval state.
	ListByApproval(ctx context.Context, approval entity.Approval) ([]*entity.Restaurant, error)

	// ListByOwner retrieves the restaurants owned by a seller.
	ListByOwner(ctx context.Context, sellerID uuid.UUID) ([]*entity.Restaurant, error)

	// UpdateApproval flips a restaurant's approval status.
	UpdateApproval(ctx context.Context, id uuid.UUID, approval entity.Approval) error
}

// FoodItemRepository defines persistence operations for menu items.
// All items live in a single table keyed by restaurant id; supply changes
// are conditional single-statement updates, never read-then-write.
type FoodItemRepository interface {
	// Create persists a new food item.
	Create(ctx context.Context, item *entity.FoodItem) error

	// FindByID retrieves a food item by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FoodItem, error)

	// ListByRestaurant retrieves a restaurant's menu.
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.FoodItem, error)

	// Update persists changes to price, category, name and supply.
	Update(ctx context.Context, item *entity.FoodItem) error

	// ReserveSupply atomically decrements supply by quantity if at least that
	// much remains, returning ErrInsufficientSupply otherwise. Two concurrent
	// reservations against the same item serialize in the store; supply never
	// goes negative.
	ReserveSupply(ctx context.Context, id uuid.UUID, quantity int) error

	// ReleaseSupply atomically returns quantity units to the item, used when
	// an unpaid order is rejected or cancelled.
	ReleaseSupply(ctx context.Context, id uuid.UUID, quantity int) error
}
