package impl

import (
	"context"
	"net/http"
	"testing"

	"chow/internal/domain/entity"
	domainerrors "chow/internal/domain/errors"
	"chow/internal/domain/repository"
	mockRepo "chow/internal/mocks/repository"
	mockSvc "chow/internal/mocks/service"
	"chow/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceMocks struct {
	txManager      *mockRepo.MockTransactionManager
	orderRepo      *mockRepo.MockOrderRepository
	restaurantRepo *mockRepo.MockRestaurantRepository
	qrcodeService  *mockSvc.MockQRCodeService
	eventPublisher *mockSvc.MockEventPublisher
}

func newOrderService(t *testing.T) (usecase.OrderUsecase, *orderServiceMocks) {
	mocks := &orderServiceMocks{
		txManager:      mockRepo.NewMockTransactionManager(t),
		orderRepo:      mockRepo.NewMockOrderRepository(t),
		restaurantRepo: mockRepo.NewMockRestaurantRepository(t),
		qrcodeService:  mockSvc.NewMockQRCodeService(t),
		eventPublisher: mockSvc.NewMockEventPublisher(t),
	}

	service := NewOrderService(OrderServiceParams{
		TxManager:      mocks.txManager,
		OrderRepo:      mocks.orderRepo,
		RestaurantRepo: mocks.restaurantRepo,
		QRCodeService:  mocks.qrcodeService,
		EventPublisher: mocks.eventPublisher,
		Config:         newTestConfig(3000),
		Logger:         newDiscardLogger(),
	})

	return service, mocks
}

func confirmedRestaurant(taxFee, additionalFee int64) *entity.Restaurant {
	return &entity.Restaurant{
		ID:            uuid.New(),
		Name:          "Noodle House",
		OwnerIDs:      []uuid.UUID{uuid.New()},
		TaxFee:        taxFee,
		AdditionalFee: additionalFee,
		Approval:      entity.ApprovalConfirmed,
	}
}

func TestOrderService_CreateOrder_ComputesPriceAndReservesSupply(t *testing.T) {
	service, mocks := newOrderService(t)
	ctx := context.Background()

	restaurant := confirmedRestaurant(200, 100)
	item := &entity.FoodItem{
		ID:           uuid.New(),
		RestaurantID: restaurant.ID,
		Name:         "Beef Noodles",
		Price:        1000,
		Supply:       10,
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txRestaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	txFoodItemRepo := mockRepo.NewMockFoodItemRepository(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	factory.EXPECT().RestaurantRepo().Return(txRestaurantRepo)
	factory.EXPECT().FoodItemRepo().Return(txFoodItemRepo)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)
	expectTransaction(t, mocks.txManager, factory)

	txRestaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)
	txFoodItemRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)
	txFoodItemRepo.EXPECT().ReserveSupply(ctx, item.ID, 2).Return(nil)
	txOrderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(ctx context.Context, order *entity.Order) {
			order.ID = uuid.New()
		}).
		Return(nil)
	mocks.eventPublisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil)

	customerID := uuid.New()
	order, err := service.CreateOrder(ctx, &usecase.CreateOrderInput{
		CustomerID:      customerID,
		RestaurantID:    restaurant.ID,
		DeliveryAddress: "1 Main St",
		Items:           []usecase.OrderItemInput{{FoodItemID: item.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusPendingAdminApproval, order.Status)
	assert.Equal(t, customerID, order.CustomerID)
	assert.Equal(t, int64(2000), order.RawPrice)
	assert.Equal(t, int64(200), order.TaxFee)
	assert.Equal(t, int64(100), order.AdditionalFee)
	assert.Equal(t, int64(3000), order.CourierFee)
	assert.Equal(t, int64(5300), order.PayPrice)
	require.Len(t, order.Items, 1)
	assert.Equal(t, int64(1000), order.Items[0].Price)
	assert.False(t, order.Paid)
}

func TestOrderService_CreateOrder_InsufficientStock(t *testing.T) {
	service, mocks := newOrderService(t)
	ctx := context.Background()

	restaurant := confirmedRestaurant(0, 0)
	item := &entity.FoodItem{ID: uuid.New(), RestaurantID: restaurant.ID, Name: "Dumplings", Price: 500, Supply: 1}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txRestaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	txFoodItemRepo := mockRepo.NewMockFoodItemRepository(t)
	factory.EXPECT().RestaurantRepo().Return(txRestaurantRepo)
	factory.EXPECT().FoodItemRepo().Return(txFoodItemRepo)
	expectTransaction(t, mocks.txManager, factory)

	txRestaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)
	txFoodItemRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)
	txFoodItemRepo.EXPECT().ReserveSupply(ctx, item.ID, 5).Return(repository.ErrInsufficientSupply)

	order, err := service.CreateOrder(ctx, &usecase.CreateOrderInput{
		CustomerID:   uuid.New(),
		RestaurantID: restaurant.ID,
		Items:        []usecase.OrderItemInput{{FoodItemID: item.ID, Quantity: 5}},
	})
	require.Error(t, err)
	assert.Nil(t, order)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INSUFFICIENT_STOCK", appErr.ErrorCode())
	assert.Equal(t, "Dumplings", appErr.Details())
}

func TestOrderService_CreateOrder_ItemFromAnotherRestaurant(t *testing.T) {
	service, mocks := newOrderService(t)
	ctx := context.Background()

	restaurant := confirmedRestaurant(0, 0)
	foreignItem := &entity.FoodItem{ID: uuid.New(), RestaurantID: uuid.New(), Name: "Sushi", Price: 900, Supply: 5}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txRestaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	txFoodItemRepo := mockRepo.NewMockFoodItemRepository(t)
	factory.EXPECT().RestaurantRepo().Return(txRestaurantRepo)
	factory.EXPECT().FoodItemRepo().Return(txFoodItemRepo)
	expectTransaction(t, mocks.txManager, factory)

	txRestaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)
	txFoodItemRepo.EXPECT().FindByID(ctx, foreignItem.ID).Return(foreignItem, nil)

	order, err := service.CreateOrder(ctx, &usecase.CreateOrderInput{
		CustomerID:   uuid.New(),
		RestaurantID: restaurant.ID,
		Items:        []usecase.OrderItemInput{{FoodItemID: foreignItem.ID, Quantity: 1}},
	})
	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrFoodItemNotFound)
}

func TestOrderService_CreateOrder_UnapprovedRestaurantIsInvisible(t *testing.T) {
	service, mocks := newOrderService(t)
	ctx := context.Background()

	restaurant := confirmedRestaurant(0, 0)
	restaurant.Approval = entity.ApprovalPending

	factory := mockRepo.NewMockRepositoryFactory(t)
	txRestaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	factory.EXPECT().RestaurantRepo().Return(txRestaurantRepo)
	factory.EXPECT().FoodItemRepo().Return(mockRepo.NewMockFoodItemRepository(t)).Maybe()
	expectTransaction(t, mocks.txManager, factory)

	txRestaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)

	order, err := service.CreateOrder(ctx, &usecase.CreateOrderInput{
		CustomerID:   uuid.New(),
		RestaurantID: restaurant.ID,
		Items:        []usecase.OrderItemInput{{FoodItemID: uuid.New(), Quantity: 1}},
	})
	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrRestaurantNotFound)
}

func TestOrderService_CreateOrder_EmptyItemsRejectedBeforeTransaction(t *testing.T) {
	service, _ := newOrderService(t)

	order, err := service.CreateOrder(context.Background(), &usecase.CreateOrderInput{
		CustomerID:   uuid.New(),
		RestaurantID: uuid.New(),
	})
	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_UpdateStatus_SellerAcceptsOrder(t *testing.T) {
	service, mocks := newOrderService(t)
	ctx := context.Background()

	restaurant := confirmedRestaurant(0, 0)
	seller := &entity.User{ID: restaurant.OwnerIDs[0], Role: entity.RoleSeller}
	order := &entity.Order{
		ID:           uuid.New(),
		CustomerID:   uuid.New(),
		RestaurantID: restaurant.ID,
		Status:       entity.StatusPendingVendorApproval,
		Paid:         true,
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txRestaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)
	factory.EXPECT().RestaurantRepo().Return(txRestaurantRepo)
	expectTransaction(t, mocks.txManager, factory)

	txOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	txRestaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)
	txOrderRepo.EXPECT().UpdateStatus(ctx, order, entity.StatusPendingVendorApproval).Return(nil)
	mocks.eventPublisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil)

	updated, err := service.UpdateStatus(ctx, &usecase.UpdateOrderStatusInput{
		Actor:   seller,
		OrderID: order.ID,
		Target:  entity.StatusPreparing,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPreparing, updated.Status)
}

func TestOrderService_UpdateStatus_ForeignSellerForbidden(t *testing.T) {
	service, mocks := newOrderService(t)
	ctx := context.Background()

	restaurant := confirmedRestaurant(0, 0)
	intruder := &entity.User{ID: uuid.New(), Role: entity.RoleSeller}
	order := &entity.Order{
		ID:           uuid.New(),
		CustomerID:   uuid.New(),
		RestaurantID: restaurant.ID,
		Status:       entity.StatusPendingVendorApproval,
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txRestaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)
	factory.EXPECT().RestaurantRepo().Return(txRestaurantRepo)
	expectTransaction(t, mocks.txManager, factory)

	txOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	txRestaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)

	updated, err := service.UpdateStatus(ctx, &usecase.UpdateOrderStatusInput{
		Actor:   intruder,
		OrderID: order.ID,
		Target:  entity.StatusPreparing,
	})
	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_UpdateStatus_CourierClaimAssignsCourier(t *testing.T) {
	service, mocks := newOrderService(t)
	ctx := context.Background()

	courier := &entity.User{ID: uuid.New(), Role: entity.RoleCourier}
	order := &entity.Order{
		ID:           uuid.New(),
		CustomerID:   uuid.New(),
		RestaurantID: uuid.New(),
		Status:       entity.StatusReadyForPickup,
		Paid:         true,
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)
	expectTransaction(t, mocks.txManager, factory)

	txOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	txOrderRepo.EXPECT().UpdateStatus(ctx, order, entity.StatusReadyForPickup).Return(nil)
	mocks.eventPublisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil)

	updated, err := service.UpdateStatus(ctx, &usecase.UpdateOrderStatusInput{
		Actor:   courier,
		OrderID: order.ID,
		Target:  entity.StatusOnTheWay,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusOnTheWay, updated.Status)
	require.NotNil(t, updated.CourierID)
	assert.Equal(t, courier.ID, *updated.CourierID)
}

func TestOrderService_UpdateStatus_ClaimedOrderConflicts(t *testing.T) {
	service, mocks := newOrderService(t)
	ctx := context.Background()

	firstCourier := uuid.New()
	secondCourier := &entity.User{ID: uuid.New(), Role: entity.RoleCourier}
	order := &entity.Order{
		ID:           uuid.New(),
		CustomerID:   uuid.New(),
		RestaurantID: uuid.New(),
		CourierID:    &firstCourier,
		Status:       entity.StatusReadyForPickup,
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)
	expectTransaction(t, mocks.txManager, factory)

	txOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	updated, err := service.UpdateStatus(ctx, &usecase.UpdateOrderStatusInput{
		Actor:   secondCourier,
		OrderID: order.ID,
		Target:  entity.StatusOnTheWay,
	})
	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestOrderService_UpdateStatus_LostClaimRaceConflicts(t *testing.T) {
	service, mocks := newOrderService(t)
	ctx := context.Background()

	courier := &entity.User{ID: uuid.New(), Role: entity.RoleCourier}
	order := &entity.Order{
		ID:           uuid.New(),
		CustomerID:   uuid.New(),
		RestaurantID: uuid.New(),
		Status:       entity.StatusReadyForPickup,
		Paid:         true,
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)
	expectTransaction(t, mocks.txManager, factory)

	// The order still reads as unclaimed, but by write time another courier's
	// claim has landed; the conditional update matches no row.
	txOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	txOrderRepo.EXPECT().
		UpdateStatus(ctx, order, entity.StatusReadyForPickup).
		Return(repository.ErrOrderStatusStale)

	updated, err := service.UpdateStatus(ctx, &usecase.UpdateOrderStatusInput{
		Actor:   courier,
		OrderID: order.ID,
		Target:  entity.StatusOnTheWay,
	})
	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestOrderService_UpdateStatus_CompletionSettlesSellerAndCourier(t *testing.T) {
	service, mocks := newOrderService(t)
	ctx := context.Background()

	restaurant := confirmedRestaurant(200, 100)
	courierID := uuid.New()
	courier := &entity.User{ID: courierID, Role: entity.RoleCourier}
	order := &entity.Order{
		ID:            uuid.New(),
		CustomerID:    uuid.New(),
		RestaurantID:  restaurant.ID,
		CourierID:     &courierID,
		Status:        entity.StatusOnTheWay,
		RawPrice:      2000,
		TaxFee:        200,
		AdditionalFee: 100,
		CourierFee:    3000,
		PayPrice:      5300,
		Paid:          true,
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txRestaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	txWalletRepo := mockRepo.NewMockWalletRepository(t)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)
	factory.EXPECT().RestaurantRepo().Return(txRestaurantRepo)
	factory.EXPECT().WalletRepo().Return(txWalletRepo)
	expectTransaction(t, mocks.txManager, factory)

	txOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	txRestaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)

	// Seller share is raw price plus additional fee; tax and courier fee stay out.
	sellerID := restaurant.OwnerIDs[0]
	txWalletRepo.EXPECT().Credit(ctx, sellerID, int64(2100)).Return(nil)
	txWalletRepo.EXPECT().
		AppendTransaction(ctx, mock.MatchedBy(func(txn *entity.WalletTransaction) bool {
			return txn.UserID == sellerID && txn.Amount == 2100 && txn.Type == entity.TransactionSettlement
		})).
		Return(nil)
	txWalletRepo.EXPECT().Credit(ctx, courierID, int64(3000)).Return(nil)
	txWalletRepo.EXPECT().
		AppendTransaction(ctx, mock.MatchedBy(func(txn *entity.WalletTransaction) bool {
			return txn.UserID == courierID && txn.Amount == 3000 && txn.Type == entity.TransactionSettlement
		})).
		Return(nil)

	txOrderRepo.EXPECT().UpdateStatus(ctx, order, entity.StatusOnTheWay).Return(nil)
	mocks.eventPublisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil)

	updated, err := service.UpdateStatus(ctx, &usecase.UpdateOrderStatusInput{
		Actor:   courier,
		OrderID: order.ID,
		Target:  entity.StatusCompleted,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, updated.Status)
}

func TestOrderService_UpdateStatus_UnpaidCancellationReleasesSupply(t *testing.T) {
	service, mocks := newOrderService(t)
	ctx := context.Background()

	customerID := uuid.New()
	customer := &entity.User{ID: customerID, Role: entity.RoleCustomer}
	itemID := uuid.New()
	order := &entity.Order{
		ID:           uuid.New(),
		CustomerID:   customerID,
		RestaurantID: uuid.New(),
		Status:       entity.StatusPendingVendorApproval,
		Items:        []entity.OrderItem{{FoodItemID: itemID, Quantity: 3, Price: 700}},
		Paid:         false,
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txFoodItemRepo := mockRepo.NewMockFoodItemRepository(t)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)
	factory.EXPECT().FoodItemRepo().Return(txFoodItemRepo)
	expectTransaction(t, mocks.txManager, factory)

	txOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	txFoodItemRepo.EXPECT().ReleaseSupply(ctx, itemID, 3).Return(nil)
	txOrderRepo.EXPECT().UpdateStatus(ctx, order, entity.StatusPendingVendorApproval).Return(nil)
	mocks.eventPublisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil)

	updated, err := service.UpdateStatus(ctx, &usecase.UpdateOrderStatusInput{
		Actor:   customer,
		OrderID: order.ID,
		Target:  entity.StatusCancelled,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelled, updated.Status)
}

func TestOrderService_UpdateStatus_PaidCancellationRefundsCustomer(t *testing.T) {
	service, mocks := newOrderService(t)
	ctx := context.Background()

	customerID := uuid.New()
	customer := &entity.User{ID: customerID, Role: entity.RoleCustomer}
	order := &entity.Order{
		ID:           uuid.New(),
		CustomerID:   customerID,
		RestaurantID: uuid.New(),
		Status:       entity.StatusPreparing,
		PayPrice:     5300,
		Paid:         true,
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txWalletRepo := mockRepo.NewMockWalletRepository(t)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)
	factory.EXPECT().WalletRepo().Return(txWalletRepo)
	expectTransaction(t, mocks.txManager, factory)

	txOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	txWalletRepo.EXPECT().Credit(ctx, customerID, int64(5300)).Return(nil)
	txWalletRepo.EXPECT().
		AppendTransaction(ctx, mock.MatchedBy(func(txn *entity.WalletTransaction) bool {
			return txn.UserID == customerID &&
				txn.Amount == 5300 &&
				txn.Type == entity.TransactionOrderPayment &&
				txn.OrderID != nil && *txn.OrderID == order.ID
		})).
		Return(nil)
	txOrderRepo.EXPECT().UpdateStatus(ctx, order, entity.StatusPreparing).Return(nil)
	mocks.eventPublisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil)

	updated, err := service.UpdateStatus(ctx, &usecase.UpdateOrderStatusInput{
		Actor:   customer,
		OrderID: order.ID,
		Target:  entity.StatusCancelled,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelled, updated.Status)
}

func TestOrderService_UpdateStatus_IllegalTransitionRejected(t *testing.T) {
	service, mocks := newOrderService(t)
	ctx := context.Background()

	customer := &entity.User{ID: uuid.New(), Role: entity.RoleCustomer}
	order := &entity.Order{
		ID:           uuid.New(),
		CustomerID:   customer.ID,
		RestaurantID: uuid.New(),
		Status:       entity.StatusPendingAdminApproval,
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)
	expectTransaction(t, mocks.txManager, factory)

	txOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	updated, err := service.UpdateStatus(ctx, &usecase.UpdateOrderStatusInput{
		Actor:   customer,
		OrderID: order.ID,
		Target:  entity.StatusCompleted,
	})
	require.Error(t, err)
	assert.Nil(t, updated)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ILLEGAL_TRANSITION", appErr.ErrorCode())
}

func TestOrderService_GetOrder_StrangerForbidden(t *testing.T) {
	service, mocks := newOrderService(t)
	ctx := context.Background()

	stranger := &entity.User{ID: uuid.New(), Role: entity.RoleCustomer}
	order := &entity.Order{ID: uuid.New(), CustomerID: uuid.New(), RestaurantID: uuid.New()}

	mocks.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	found, err := service.GetOrder(ctx, stranger, order.ID)
	require.Error(t, err)
	assert.Nil(t, found)

	// An existing order the actor may not read is Forbidden, not NotFound.
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode())
}

func TestOrderService_ListOrdersByStatus_CourierSeesOnlyReadyPool(t *testing.T) {
	service, mocks := newOrderService(t)
	ctx := context.Background()

	courier := &entity.User{ID: uuid.New(), Role: entity.RoleCourier}

	mocks.orderRepo.EXPECT().
		ListByStatus(ctx, entity.StatusReadyForPickup).
		Return([]*entity.Order{}, nil)

	orders, err := service.ListOrdersByStatus(ctx, courier, entity.StatusReadyForPickup)
	require.NoError(t, err)
	assert.Empty(t, orders)

	forbidden, err := service.ListOrdersByStatus(ctx, courier, entity.StatusPreparing)
	require.Error(t, err)
	assert.Nil(t, forbidden)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_PickupQR_OnlyForReadyOrders(t *testing.T) {
	service, mocks := newOrderService(t)
	ctx := context.Background()

	restaurant := confirmedRestaurant(0, 0)
	seller := &entity.User{ID: restaurant.OwnerIDs[0], Role: entity.RoleSeller}
	order := &entity.Order{
		ID:           uuid.New(),
		CustomerID:   uuid.New(),
		RestaurantID: restaurant.ID,
		Status:       entity.StatusPreparing,
	}

	mocks.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	mocks.restaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)

	png, err := service.PickupQR(ctx, seller, order.ID)
	require.Error(t, err)
	assert.Nil(t, png)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ILLEGAL_TRANSITION", appErr.ErrorCode())
}

func TestOrderService_PickupQR_SellerGetsCode(t *testing.T) {
	service, mocks := newOrderService(t)
	ctx := context.Background()

	restaurant := confirmedRestaurant(0, 0)
	seller := &entity.User{ID: restaurant.OwnerIDs[0], Role: entity.RoleSeller}
	order := &entity.Order{
		ID:           uuid.New(),
		CustomerID:   uuid.New(),
		RestaurantID: restaurant.ID,
		Status:       entity.StatusReadyForPickup,
	}

	mocks.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	mocks.restaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)
	mocks.qrcodeService.EXPECT().GeneratePickupQR(order.ID).Return([]byte{0x89, 0x50, 0x4e, 0x47}, nil)

	png, err := service.PickupQR(ctx, seller, order.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestOrderService_ClaimOrder_InvalidQRCode(t *testing.T) {
	service, mocks := newOrderService(t)
	ctx := context.Background()

	courier := &entity.User{ID: uuid.New(), Role: entity.RoleCourier}

	mocks.qrcodeService.EXPECT().ParsePickupQR("garbage").Return(uuid.Nil, assert.AnError)

	order, err := service.ClaimOrder(ctx, &usecase.ClaimOrderInput{Actor: courier, QRData: "garbage"})
	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
