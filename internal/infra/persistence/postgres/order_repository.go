package postgres

import (
	"context"

	"chow/internal/domain/entity"
	domainerrors "chow/internal/domain/errors"
	"chow/internal/domain/repository"
	"chow/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the domain.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists a new order together with its line items. GORM inserts the
// association rows along with the order inside the ambient transaction.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOrderNotFound.WrapMessage("invalid order reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindByID retrieves an order by its unique ID, including line items.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&orderM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// ListAll retrieves every order, newest first.
func (repo *orderRepository) ListAll(ctx context.Context) ([]*entity.Order, error) {
	return repo.list(ctx, "1 = 1")
}

// ListByCustomer retrieves a customer's orders, newest first.
func (repo *orderRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	return repo.list(ctx, "customer_id = ?", customerID)
}

// ListByRestaurants retrieves orders placed at any of the given restaurants, newest first.
func (repo *orderRepository) ListByRestaurants(ctx context.Context, restaurantIDs []uuid.UUID) ([]*entity.Order, error) {
	if len(restaurantIDs) == 0 {
		return []*entity.Order{}, nil
	}

	return repo.list(ctx, "restaurant_id IN ?", restaurantIDs)
}

// ListByStatus retrieves all orders currently in the given status, newest first.
func (repo *orderRepository) ListByStatus(ctx context.Context, status entity.OrderStatus) ([]*entity.Order, error) {
	return repo.list(ctx, "status = ?", status.String())
}

// ListByCourier retrieves the orders assigned to a courier, newest first.
func (repo *orderRepository) ListByCourier(ctx context.Context, courierID uuid.UUID) ([]*entity.Order, error) {
	return repo.list(ctx, "courier_id = ?", courierID)
}

func (repo *orderRepository) list(ctx context.Context, cond string, args ...any) ([]*entity.Order, error) {
	var orderMs []model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Where(cond, args...).
		Order("created_at DESC").
		Find(&orderMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderMs))
	for i := range orderMs {
		orders = append(orders, toOrderDomain(&orderMs[i]))
	}

	return orders, nil
}

// UpdateStatus persists a status change along with the courier assignment and
// paid flag. Price fields and line items are never touched after creation.
// The write is conditional on the status the caller read, so two concurrent
// transitions off the same snapshot cannot both land; the loser gets
// ErrOrderStatusStale instead of silently overwriting the winner.
func (repo *orderRepository) UpdateStatus(ctx context.Context, order *entity.Order, from entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND status = ?", order.ID, from.String()).
		Updates(map[string]any{
			"status":     order.Status.String(),
			"courier_id": order.CourierID,
			"paid":       order.Paid,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderStatusStale
	}

	return nil
}

// toOrderDomain maps a persistence model back to a pure domain entity.
func toOrderDomain(orderM *model.OrderModel) *entity.Order {
	items := make([]entity.OrderItem, 0, len(orderM.Items))
	for i := range orderM.Items {
		items = append(items, entity.OrderItem{
			FoodItemID: orderM.Items[i].FoodItemID,
			Quantity:   orderM.Items[i].Quantity,
			Price:      orderM.Items[i].Price,
		})
	}

	return &entity.Order{
		ID:              orderM.ID,
		CustomerID:      orderM.CustomerID,
		RestaurantID:    orderM.RestaurantID,
		CourierID:       orderM.CourierID,
		Status:          entity.OrderStatus(orderM.Status),
		DeliveryAddress: orderM.DeliveryAddress,
		Items:           items,
		RawPrice:        orderM.RawPrice,
		TaxFee:          orderM.TaxFee,
		AdditionalFee:   orderM.AdditionalFee,
		CourierFee:      orderM.CourierFee,
		PayPrice:        orderM.PayPrice,
		Paid:            orderM.Paid,
		CreatedAt:       orderM.CreatedAt,
		UpdatedAt:       orderM.UpdatedAt,
	}
}

// fromOrderDomain maps a pure domain entity to a GORM persistence model.
func fromOrderDomain(order *entity.Order) *model.OrderModel {
	items := make([]model.OrderItemModel, 0, len(order.Items))
	for i := range order.Items {
		items = append(items, model.OrderItemModel{
			FoodItemID: order.Items[i].FoodItemID,
			Quantity:   order.Items[i].Quantity,
			Price:      order.Items[i].Price,
		})
	}

	return &model.OrderModel{
		ID:              order.ID,
		CustomerID:      order.CustomerID,
		RestaurantID:    order.RestaurantID,
		CourierID:       order.CourierID,
		Status:          order.Status.String(),
		DeliveryAddress: order.DeliveryAddress,
		RawPrice:        order.RawPrice,
		TaxFee:          order.TaxFee,
		AdditionalFee:   order.AdditionalFee,
		CourierFee:      order.CourierFee,
		PayPrice:        order.PayPrice,
		Paid:            order.Paid,
		Items:           items,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
}
