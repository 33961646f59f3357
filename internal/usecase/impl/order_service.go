package impl

import (
	"context"
	"log/slog"

	"chow/config"
	deliverycontext "chow/internal/delivery/context"
	"chow/internal/domain/entity"
	domainerrors "chow/internal/domain/errors"
	"chow/internal/domain/repository"
	"chow/internal/domain/service"
	"chow/internal/domain/statemachine"
	"chow/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager      repository.TransactionManager
	orderRepo      repository.OrderRepository
	restaurantRepo repository.RestaurantRepository
	qrcodeService  service.QRCodeService
	eventPublisher service.EventPublisher
	courierFee     int64
	logger         *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	OrderRepo      repository.OrderRepository
	RestaurantRepo repository.RestaurantRepository
	QRCodeService  service.QRCodeService
	EventPublisher service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	var courierFee int64
	if params.Config != nil && params.Config.Pricing != nil {
		courierFee = params.Config.Pricing.CourierFee
	}

	return &orderService{
		txManager:      params.TxManager,
		orderRepo:      params.OrderRepo,
		restaurantRepo: params.RestaurantRepo,
		qrcodeService:  params.QRCodeService,
		eventPublisher: params.EventPublisher,
		courierFee:     courierFee,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder places an order. Stock reservation, price computation and the
// order insert happen in one transaction; a reservation failure on any line
// rolls back every earlier reservation.
func (srv *orderService) CreateOrder(ctx context.Context, input *usecase.CreateOrderInput) (*entity.Order, error) {
	srv.log(ctx).Info("Creating order", slog.Any("customerID", input.CustomerID), slog.Any("restaurantID", input.RestaurantID))

	// 1. Validate the request shape before touching the store.
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("order must contain at least one item")
	}
	for _, line := range input.Items {
		if line.Quantity <= 0 {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("item quantity must be positive")
		}
	}

	var createdOrder *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		restaurantRepo := repoFactory.RestaurantRepo()
		foodItemRepo := repoFactory.FoodItemRepo()

		// 2. The restaurant must exist and be confirmed; unapproved
		// restaurants are invisible to customers.
		restaurant, err := restaurantRepo.FindByID(ctx, input.RestaurantID)
		if err != nil {
			if errors.Is(err, repository.ErrRestaurantNotFound) {
				return domainerrors.ErrRestaurantNotFound
			}

			return errors.Wrap(err, "failed to find restaurant by id")
		}
		if !restaurant.Approval.IsConfirmed() {
			return domainerrors.ErrRestaurantNotFound
		}

		// 3. Snapshot each item's price and reserve its supply. The
		// conditional decrement keeps concurrent orders from overselling.
		var rawPrice int64
		orderItems := make([]entity.OrderItem, 0, len(input.Items))
		for _, line := range input.Items {
			item, err := foodItemRepo.FindByID(ctx, line.FoodItemID)
			if err != nil {
				if errors.Is(err, repository.ErrFoodItemNotFound) {
					return domainerrors.ErrFoodItemNotFound
				}

				return errors.Wrap(err, "failed to find food item by id")
			}
			if item.RestaurantID != restaurant.ID {
				return domainerrors.ErrFoodItemNotFound.WrapMessage("food item does not belong to this restaurant")
			}

			if err := foodItemRepo.ReserveSupply(ctx, item.ID, line.Quantity); err != nil {
				if errors.Is(err, repository.ErrInsufficientSupply) {
					return domainerrors.ErrInsufficientStock.WithDetails(item.Name)
				}

				return errors.Wrap(err, "failed to reserve supply")
			}

			rawPrice += item.Price * int64(line.Quantity)
			orderItems = append(orderItems, entity.OrderItem{
				FoodItemID: item.ID,
				Quantity:   line.Quantity,
				Price:      item.Price,
			})
		}

		// 4. Price components are fixed here and never recomputed; the total
		// is always derived server-side.
		newOrder := &entity.Order{
			CustomerID:      input.CustomerID,
			RestaurantID:    restaurant.ID,
			Status:          entity.StatusPendingAdminApproval,
			DeliveryAddress: input.DeliveryAddress,
			Items:           orderItems,
			RawPrice:        rawPrice,
			TaxFee:          restaurant.TaxFee,
			AdditionalFee:   restaurant.AdditionalFee,
			CourierFee:      srv.courierFee,
		}
		newOrder.PayPrice = newOrder.ComputePayPrice()

		if err := repoFactory.OrderRepo().Create(ctx, newOrder); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		createdOrder = newOrder

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute create order transaction", slog.Any("customerID", input.CustomerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute create order transaction")
	}

	srv.publishEvent(ctx, service.EventOrderCreated, createdOrder, "", createdOrder.Status)

	return createdOrder, nil
}

// GetOrder retrieves an order if the actor is allowed to see it.
func (srv *orderService) GetOrder(ctx context.Context, actor *entity.User, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	visible, err := srv.canView(ctx, actor, order)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, domainerrors.ErrForbidden.WrapMessage("order belongs to another party")
	}

	return order, nil
}

// ListOrders returns the orders visible to the actor.
func (srv *orderService) ListOrders(ctx context.Context, actor *entity.User) ([]*entity.Order, error) {
	switch actor.Role {
	case entity.RoleCustomer:
		orders, err := srv.orderRepo.ListByCustomer(ctx, actor.ID)

		return orders, errors.Wrap(err, "failed to list orders by customer")
	case entity.RoleSeller:
		restaurants, err := srv.restaurantRepo.ListByOwner(ctx, actor.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list restaurants by owner")
		}
		ids := make([]uuid.UUID, 0, len(restaurants))
		for _, r := range restaurants {
			ids = append(ids, r.ID)
		}
		orders, err := srv.orderRepo.ListByRestaurants(ctx, ids)

		return orders, errors.Wrap(err, "failed to list orders by restaurants")
	case entity.RoleCourier:
		orders, err := srv.orderRepo.ListByCourier(ctx, actor.ID)

		return orders, errors.Wrap(err, "failed to list orders by courier")
	case entity.RoleAdmin:
		orders, err := srv.orderRepo.ListAll(ctx)

		return orders, errors.Wrap(err, "failed to list all orders")
	default:
		return nil, domainerrors.ErrForbidden
	}
}

// ListOrdersByStatus returns all orders in one status. Admins may inspect any
// status; couriers only the ready-for-pickup pool they can claim from.
func (srv *orderService) ListOrdersByStatus(ctx context.Context, actor *entity.User, status entity.OrderStatus) ([]*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown order status")
	}

	switch {
	case actor.Role == entity.RoleAdmin:
	case actor.Role == entity.RoleCourier && status == entity.StatusReadyForPickup:
	default:
		return nil, domainerrors.ErrForbidden
	}

	orders, err := srv.orderRepo.ListByStatus(ctx, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by status")
	}

	return orders, nil
}

// UpdateStatus drives one lifecycle transition. The state machine decides
// legality for the actor's role; this method checks the actor's relationship
// to the order and applies the side effects in the same transaction.
func (srv *orderService) UpdateStatus(ctx context.Context, input *usecase.UpdateOrderStatusInput) (*entity.Order, error) {
	actor := input.Actor
	srv.log(ctx).Info("Updating order status",
		slog.Any("orderID", input.OrderID),
		slog.String("target", input.Target.String()),
		slog.Any("role", actor.Role),
	)

	if !input.Target.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown order status")
	}

	var updatedOrder *entity.Order
	var fromStatus entity.OrderStatus
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		order, err := orderRepo.FindByID(ctx, input.OrderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to find order by id")
		}
		fromStatus = order.Status

		// 1. Legality of (from, to, role) per the lifecycle table.
		if err := statemachine.Validate(order.Status, input.Target, actor.Role); err != nil {
			return err
		}

		// 2. The actor must actually stand in the claimed relationship.
		if err := srv.checkActorRelationship(ctx, repoFactory, actor, order, input.Target); err != nil {
			return err
		}

		// 3. Apply the transition.
		if input.Target == entity.StatusOnTheWay && order.CourierID == nil {
			courierID := actor.ID
			order.CourierID = &courierID
		}
		order.Status = input.Target

		// 4. Side effects that must commit with the transition.
		if err := srv.applyTransitionEffects(ctx, repoFactory, order); err != nil {
			return err
		}

		if err := orderRepo.UpdateStatus(ctx, order, fromStatus); err != nil {
			if errors.Is(err, repository.ErrOrderStatusStale) {
				return domainerrors.ErrConflict.WrapMessage("order was updated concurrently")
			}

			return errors.Wrap(err, "failed to update order status")
		}

		updatedOrder = order

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Order status update rejected", slog.Any("orderID", input.OrderID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute order status transaction")
	}

	srv.publishEvent(ctx, service.EventOrderStatusChanged, updatedOrder, fromStatus, updatedOrder.Status)

	return updatedOrder, nil
}

// PickupQR generates the pickup QR code for a ready order at a restaurant the
// seller owns. Couriers scan it to claim the order at hand-off.
func (srv *orderService) PickupQR(ctx context.Context, actor *entity.User, orderID uuid.UUID) ([]byte, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	if err := srv.requireSellerOnOrder(ctx, srv.restaurantRepo, actor, order); err != nil {
		return nil, err
	}

	if order.Status != entity.StatusReadyForPickup {
		return nil, domainerrors.ErrIllegalTransition.WithDetails("pickup QR is only available for ready orders")
	}

	qrCode, err := srv.qrcodeService.GeneratePickupQR(order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate pickup QR")
	}

	return qrCode, nil
}

// ClaimOrder lets a courier claim a ready order by scanning its pickup QR code.
func (srv *orderService) ClaimOrder(ctx context.Context, input *usecase.ClaimOrderInput) (*entity.Order, error) {
	orderID, err := srv.qrcodeService.ParsePickupQR(input.QRData)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid pickup QR code")
	}

	return srv.UpdateStatus(ctx, &usecase.UpdateOrderStatusInput{
		Actor:   input.Actor,
		OrderID: orderID,
		Target:  entity.StatusOnTheWay,
	})
}

// checkActorRelationship verifies the actor stands in the relationship the
// transition assumes: customers act on their own orders, sellers on orders at
// restaurants they own, couriers on the order they carry (or an unclaimed
// ready order), admins on anything.
func (srv *orderService) checkActorRelationship(ctx context.Context, repoFactory repository.RepositoryFactory, actor *entity.User, order *entity.Order, target entity.OrderStatus) error {
	switch actor.Role {
	case entity.RoleAdmin:
		return nil
	case entity.RoleCustomer:
		if order.CustomerID != actor.ID {
			return domainerrors.ErrForbidden.WrapMessage("order belongs to another customer")
		}

		return nil
	case entity.RoleSeller:
		return srv.requireSellerOnOrder(ctx, repoFactory.RestaurantRepo(), actor, order)
	case entity.RoleCourier:
		if target == entity.StatusOnTheWay {
			if order.CourierID != nil && *order.CourierID != actor.ID {
				return domainerrors.ErrConflict.WrapMessage("order already claimed by another courier")
			}

			return nil
		}
		if order.CourierID == nil || *order.CourierID != actor.ID {
			return domainerrors.ErrForbidden.WrapMessage("order is assigned to another courier")
		}

		return nil
	default:
		return domainerrors.ErrForbidden
	}
}

// requireSellerOnOrder verifies the seller owns the order's restaurant.
func (srv *orderService) requireSellerOnOrder(ctx context.Context, restaurantRepo repository.RestaurantRepository, actor *entity.User, order *entity.Order) error {
	restaurant, err := restaurantRepo.FindByID(ctx, order.RestaurantID)
	if err != nil {
		return errors.Wrap(err, "failed to find restaurant by id")
	}
	if !restaurant.IsOwnedBy(actor.ID) {
		return domainerrors.ErrForbidden.WrapMessage("order belongs to another restaurant")
	}

	return nil
}

// applyTransitionEffects runs the side effects a transition carries, inside
// the same transaction as the status change itself.
func (srv *orderService) applyTransitionEffects(ctx context.Context, repoFactory repository.RepositoryFactory, order *entity.Order) error {
	switch order.Status {
	case entity.StatusRejectedByAdmin, entity.StatusRejectedByVendor:
		return srv.releaseOrderSupply(ctx, repoFactory.FoodItemRepo(), order)
	case entity.StatusCancelled:
		if !order.Paid {
			return srv.releaseOrderSupply(ctx, repoFactory.FoodItemRepo(), order)
		}

		return srv.refundOrder(ctx, repoFactory.WalletRepo(), order)
	case entity.StatusCompleted:
		return srv.settleOrder(ctx, repoFactory, order)
	default:
		return nil
	}
}

// releaseOrderSupply returns every reserved line back to its food item.
func (srv *orderService) releaseOrderSupply(ctx context.Context, foodItemRepo repository.FoodItemRepository, order *entity.Order) error {
	for _, line := range order.Items {
		if err := foodItemRepo.ReleaseSupply(ctx, line.FoodItemID, line.Quantity); err != nil {
			return errors.Wrap(err, "failed to release supply")
		}
	}

	return nil
}

// refundOrder returns the full pay price to the customer when a paid order is
// cancelled, with a matching ledger row.
func (srv *orderService) refundOrder(ctx context.Context, walletRepo repository.WalletRepository, order *entity.Order) error {
	if err := walletRepo.Credit(ctx, order.CustomerID, order.PayPrice); err != nil {
		return errors.Wrap(err, "failed to refund customer wallet")
	}

	orderID := order.ID
	refund := &entity.WalletTransaction{
		UserID:  order.CustomerID,
		OrderID: &orderID,
		Amount:  order.PayPrice,
		Type:    entity.TransactionOrderPayment,
		Status:  entity.TransactionSuccess,
	}
	if err := walletRepo.AppendTransaction(ctx, refund); err != nil {
		return errors.Wrap(err, "failed to append refund transaction")
	}

	return nil
}

// settleOrder pays out the order on delivery: the restaurant's seller gets
// the raw price plus additional fee, the courier gets the courier fee. Both
// credits commit with the COMPLETED transition or not at all.
func (srv *orderService) settleOrder(ctx context.Context, repoFactory repository.RepositoryFactory, order *entity.Order) error {
	restaurant, err := repoFactory.RestaurantRepo().FindByID(ctx, order.RestaurantID)
	if err != nil {
		return errors.Wrap(err, "failed to find restaurant for settlement")
	}
	if len(restaurant.OwnerIDs) == 0 {
		return errors.New("restaurant has no owner to settle to")
	}
	if order.CourierID == nil {
		return errors.New("completed order has no assigned courier")
	}

	walletRepo := repoFactory.WalletRepo()
	orderID := order.ID

	// Payout goes to the restaurant's primary owner.
	sellerID := restaurant.OwnerIDs[0]
	if err := walletRepo.Credit(ctx, sellerID, order.SellerShare()); err != nil {
		return errors.Wrap(err, "failed to credit seller wallet")
	}
	sellerTxn := &entity.WalletTransaction{
		UserID:  sellerID,
		OrderID: &orderID,
		Amount:  order.SellerShare(),
		Type:    entity.TransactionSettlement,
		Status:  entity.TransactionSuccess,
	}
	if err := walletRepo.AppendTransaction(ctx, sellerTxn); err != nil {
		return errors.Wrap(err, "failed to append seller settlement transaction")
	}

	if err := walletRepo.Credit(ctx, *order.CourierID, order.CourierFee); err != nil {
		return errors.Wrap(err, "failed to credit courier wallet")
	}
	courierTxn := &entity.WalletTransaction{
		UserID:  *order.CourierID,
		OrderID: &orderID,
		Amount:  order.CourierFee,
		Type:    entity.TransactionSettlement,
		Status:  entity.TransactionSuccess,
	}
	if err := walletRepo.AppendTransaction(ctx, courierTxn); err != nil {
		return errors.Wrap(err, "failed to append courier settlement transaction")
	}

	return nil
}

// canView reports whether the actor may read the order.
func (srv *orderService) canView(ctx context.Context, actor *entity.User, order *entity.Order) (bool, error) {
	switch actor.Role {
	case entity.RoleAdmin:
		return true, nil
	case entity.RoleCustomer:
		return order.CustomerID == actor.ID, nil
	case entity.RoleCourier:
		return order.CourierID != nil && *order.CourierID == actor.ID, nil
	case entity.RoleSeller:
		restaurant, err := srv.restaurantRepo.FindByID(ctx, order.RestaurantID)
		if err != nil {
			return false, errors.Wrap(err, "failed to find restaurant by id")
		}

		return restaurant.IsOwnedBy(actor.ID), nil
	default:
		return false, nil
	}
}

// publishEvent emits an order lifecycle event after commit. Publishing is
// best-effort: a failure is logged and never rolls back the transaction.
func (srv *orderService) publishEvent(ctx context.Context, eventType string, order *entity.Order, from, to entity.OrderStatus) {
	event := &service.OrderEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		EventType:    eventType,
		OrderID:      order.ID.String(),
		CustomerID:   order.CustomerID.String(),
		RestaurantID: order.RestaurantID.String(),
		FromStatus:   from.String(),
		ToStatus:     to.String(),
		PayPrice:     order.PayPrice,
	}

	if err := srv.eventPublisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order event",
			slog.String("eventType", eventType),
			slog.Any("orderID", order.ID),
			slog.Any("error", err),
		)
	}
}
