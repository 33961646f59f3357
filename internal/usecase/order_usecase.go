package usecase

import (
	"context"

	"chow/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// OrderItemInput is one requested line of a new order.
type OrderItemInput struct {
	FoodItemID uuid.UUID
	Quantity   int
}

// CreateOrderInput defines the data required to place an order.
type CreateOrderInput struct {
	CustomerID      uuid.UUID
	RestaurantID    uuid.UUID
	DeliveryAddress string
	Items           []OrderItemInput
}

// UpdateOrderStatusInput defines a requested lifecycle transition. The actor
// is the authenticated user driving the transition; role checks happen
// against the actor, never against client-supplied data.
type UpdateOrderStatusInput struct {
	Actor   *entity.User
	OrderID uuid.UUID
	Target  entity.OrderStatus
}

// ClaimOrderInput defines a courier claiming an order by scanning its pickup QR code.
type ClaimOrderInput struct {
	Actor  *entity.User
	QRData string
}

// OrderUsecase defines the interface for order lifecycle operations.
type OrderUsecase interface {
	// CreateOrder places an order: it validates the restaurant and items,
	// reserves supply, computes the price server-side and persists the order
	// in the pending admin approval state, all within one transaction.
	CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error)

	// GetOrder retrieves an order if the actor is allowed to see it.
	GetOrder(ctx context.Context, actor *entity.User, orderID uuid.UUID) (*entity.Order, error)

	// ListOrders returns the orders visible to the actor: own orders for
	// customers, orders at owned restaurants for sellers, assigned orders
	// for couriers and everything for admins.
	ListOrders(ctx context.Context, actor *entity.User) ([]*entity.Order, error)

	// ListOrdersByStatus returns all orders in one status. Admins see every
	// status; couriers only the ready-for-pickup pool.
	ListOrdersByStatus(ctx context.Context, actor *entity.User, status entity.OrderStatus) ([]*entity.Order, error)

	// UpdateStatus drives one lifecycle transition after validating it
	// against the state machine and the actor's relationship to the order.
	UpdateStatus(ctx context.Context, input *UpdateOrderStatusInput) (*entity.Order, error)

	// PickupQR generates the pickup QR code for an order the seller owns.
	PickupQR(ctx context.Context, actor *entity.User, orderID uuid.UUID) ([]byte, error)

	// ClaimOrder lets a courier claim a ready order by scanning its pickup
	// QR code, moving it on the way in one step.
	ClaimOrder(ctx context.Context, input *ClaimOrderInput) (*entity.Order, error)
}
