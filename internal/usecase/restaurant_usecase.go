package usecase

import (
	"context"

	"chow/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateRestaurantInput defines the data required to register a restaurant.
type CreateRestaurantInput struct {
	SellerID      uuid.UUID
	Name          string
	TaxFee        int64
	AdditionalFee int64
}

// AddFoodItemInput defines the data required to add a menu item.
type AddFoodItemInput struct {
	SellerID     uuid.UUID
	RestaurantID uuid.UUID
	Name         string
	Category     string
	Price        int64
	Supply       int
}

// UpdateFoodItemInput defines the data required to edit a menu item.
type UpdateFoodItemInput struct {
	SellerID   uuid.UUID
	FoodItemID uuid.UUID
	Name       string
	Category   string
	Price      int64
	Supply     int
}

// ApproveRestaurantInput defines an admin decision on a pending restaurant.
type ApproveRestaurantInput struct {
	RestaurantID uuid.UUID
	Approve      bool
}

// RestaurantUsecase defines the interface for restaurant and menu operations.
type RestaurantUsecase interface {
	// CreateRestaurant registers a restaurant owned by the calling seller.
	// New restaurants start in the pending approval state.
	CreateRestaurant(ctx context.Context, input *CreateRestaurantInput) (*entity.Restaurant, error)

	// AddFoodItem adds a menu item to a restaurant the caller owns.
	AddFoodItem(ctx context.Context, input *AddFoodItemInput) (*entity.FoodItem, error)

	// UpdateFoodItem edits a menu item on a restaurant the caller owns.
	// Price changes never affect already placed orders.
	UpdateFoodItem(ctx context.Context, input *UpdateFoodItemInput) (*entity.FoodItem, error)

	// ListRestaurants returns all confirmed restaurants.
	ListRestaurants(ctx context.Context) ([]*entity.Restaurant, error)

	// ListOwnRestaurants returns the restaurants owned by a seller.
	ListOwnRestaurants(ctx context.Context, sellerID uuid.UUID) ([]*entity.Restaurant, error)

	// ListMenu returns a restaurant's menu.
	ListMenu(ctx context.Context, restaurantID uuid.UUID) ([]*entity.FoodItem, error)

	// ApproveRestaurant records an admin's decision on a pending restaurant.
	ApproveRestaurant(ctx context.Context, input *ApproveRestaurantInput) (*entity.Restaurant, error)
}
