package repository

import (
	"context"

	"chow/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderRepository defines persistence operations for orders and their line items.
type OrderRepository interface {
	// Create persists a new order together with its line items.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order by its unique ID, including line items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListAll retrieves every order, newest first. Admin use only.
	ListAll(ctx context.Context) ([]*entity.Order, error)

	// ListByCustomer retrieves a customer's orders, newest first.
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error)

	// ListByRestaurants retrieves orders placed at any of the given restaurants, newest first.
	ListByRestaurants(ctx context.Context, restaurantIDs []uuid.UUID) ([]*entity.Order, error)

	// ListByStatus retrieves all orders currently in the given status, newest first.
	ListByStatus(ctx context.Context, status entity.OrderStatus) ([]*entity.Order, error)

	// ListByCourier retrieves the orders assigned to a courier, newest first.
	ListByCourier(ctx context.Context, courierID uuid.UUID) ([]*entity.Order, error)

	// UpdateStatus persists a status change as a compare-and-swap against the
	// status the caller read, returning ErrOrderStatusStale when no row
	// matches. Price fields are never touched; courierID is set when a courier
	// claims the order, paid when payment lands.
	UpdateStatus(ctx context.Context, order *entity.Order, from entity.OrderStatus) error
}
