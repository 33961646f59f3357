package impl

import (
	"context"
	"testing"

	"chow/internal/domain/entity"
	domainerrors "chow/internal/domain/errors"
	"chow/internal/domain/repository"
	mockRepo "chow/internal/mocks/repository"
	"chow/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRestaurantService(t *testing.T) (usecase.RestaurantUsecase, *mockRepo.MockTransactionManager, *mockRepo.MockRestaurantRepository, *mockRepo.MockFoodItemRepository) {
	txManager := mockRepo.NewMockTransactionManager(t)
	restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	foodItemRepo := mockRepo.NewMockFoodItemRepository(t)

	service := NewRestaurantService(RestaurantServiceParams{
		TxManager:      txManager,
		RestaurantRepo: restaurantRepo,
		FoodItemRepo:   foodItemRepo,
		Logger:         newDiscardLogger(),
	})

	return service, txManager, restaurantRepo, foodItemRepo
}

func TestRestaurantService_CreateRestaurant_StartsPending(t *testing.T) {
	service, _, restaurantRepo, _ := newRestaurantService(t)
	ctx := context.Background()

	sellerID := uuid.New()
	restaurantRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Restaurant")).
		Run(func(ctx context.Context, restaurant *entity.Restaurant) {
			restaurant.ID = uuid.New()
		}).
		Return(nil)

	restaurant, err := service.CreateRestaurant(ctx, &usecase.CreateRestaurantInput{
		SellerID:      sellerID,
		Name:          "Noodle House",
		TaxFee:        200,
		AdditionalFee: 100,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalPending, restaurant.Approval)
	assert.Equal(t, []uuid.UUID{sellerID}, restaurant.OwnerIDs)
	assert.Equal(t, int64(200), restaurant.TaxFee)
}

func TestRestaurantService_CreateRestaurant_NegativeFeeRejected(t *testing.T) {
	service, _, _, _ := newRestaurantService(t)

	restaurant, err := service.CreateRestaurant(context.Background(), &usecase.CreateRestaurantInput{
		SellerID: uuid.New(),
		Name:     "Noodle House",
		TaxFee:   -1,
	})
	require.Error(t, err)
	assert.Nil(t, restaurant)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestRestaurantService_AddFoodItem_OwnerAddsItem(t *testing.T) {
	service, txManager, _, _ := newRestaurantService(t)
	ctx := context.Background()

	sellerID := uuid.New()
	restaurant := &entity.Restaurant{ID: uuid.New(), OwnerIDs: []uuid.UUID{sellerID}, Approval: entity.ApprovalConfirmed}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txRestaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	txFoodItemRepo := mockRepo.NewMockFoodItemRepository(t)
	factory.EXPECT().RestaurantRepo().Return(txRestaurantRepo)
	factory.EXPECT().FoodItemRepo().Return(txFoodItemRepo)
	expectTransaction(t, txManager, factory)

	txRestaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)
	txFoodItemRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.FoodItem")).
		Run(func(ctx context.Context, item *entity.FoodItem) {
			item.ID = uuid.New()
		}).
		Return(nil)

	item, err := service.AddFoodItem(ctx, &usecase.AddFoodItemInput{
		SellerID:     sellerID,
		RestaurantID: restaurant.ID,
		Name:         "Beef Noodles",
		Category:     "mains",
		Price:        1000,
		Supply:       10,
	})
	require.NoError(t, err)
	assert.Equal(t, restaurant.ID, item.RestaurantID)
	assert.Equal(t, int64(1000), item.Price)
	assert.Equal(t, 10, item.Supply)
}

func TestRestaurantService_AddFoodItem_NonOwnerForbidden(t *testing.T) {
	service, txManager, _, _ := newRestaurantService(t)
	ctx := context.Background()

	restaurant := &entity.Restaurant{ID: uuid.New(), OwnerIDs: []uuid.UUID{uuid.New()}}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txRestaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	factory.EXPECT().RestaurantRepo().Return(txRestaurantRepo)
	expectTransaction(t, txManager, factory)

	txRestaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)

	item, err := service.AddFoodItem(ctx, &usecase.AddFoodItemInput{
		SellerID:     uuid.New(),
		RestaurantID: restaurant.ID,
		Name:         "Beef Noodles",
		Price:        1000,
		Supply:       10,
	})
	require.Error(t, err)
	assert.Nil(t, item)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestRestaurantService_AddFoodItem_NonPositivePriceRejected(t *testing.T) {
	service, _, _, _ := newRestaurantService(t)

	item, err := service.AddFoodItem(context.Background(), &usecase.AddFoodItemInput{
		SellerID:     uuid.New(),
		RestaurantID: uuid.New(),
		Name:         "Free Lunch",
		Price:        0,
	})
	require.Error(t, err)
	assert.Nil(t, item)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestRestaurantService_UpdateFoodItem_OwnerEditsItem(t *testing.T) {
	service, txManager, _, _ := newRestaurantService(t)
	ctx := context.Background()

	sellerID := uuid.New()
	restaurant := &entity.Restaurant{ID: uuid.New(), OwnerIDs: []uuid.UUID{sellerID}}
	item := &entity.FoodItem{
		ID:           uuid.New(),
		RestaurantID: restaurant.ID,
		Name:         "Beef Noodles",
		Category:     "mains",
		Price:        1000,
		Supply:       10,
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txRestaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	txFoodItemRepo := mockRepo.NewMockFoodItemRepository(t)
	factory.EXPECT().RestaurantRepo().Return(txRestaurantRepo)
	factory.EXPECT().FoodItemRepo().Return(txFoodItemRepo)
	expectTransaction(t, txManager, factory)

	txFoodItemRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)
	txRestaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)
	txFoodItemRepo.EXPECT().Update(ctx, item).Return(nil)

	updated, err := service.UpdateFoodItem(ctx, &usecase.UpdateFoodItemInput{
		SellerID:   sellerID,
		FoodItemID: item.ID,
		Name:       "Spicy Beef Noodles",
		Category:   "mains",
		Price:      1200,
		Supply:     8,
	})
	require.NoError(t, err)
	assert.Equal(t, "Spicy Beef Noodles", updated.Name)
	assert.Equal(t, int64(1200), updated.Price)
	assert.Equal(t, 8, updated.Supply)
}

func TestRestaurantService_ListRestaurants_OnlyConfirmed(t *testing.T) {
	service, _, restaurantRepo, _ := newRestaurantService(t)
	ctx := context.Background()

	confirmed := []*entity.Restaurant{{ID: uuid.New(), Approval: entity.ApprovalConfirmed}}
	restaurantRepo.EXPECT().ListByApproval(ctx, entity.ApprovalConfirmed).Return(confirmed, nil)

	restaurants, err := service.ListRestaurants(ctx)
	require.NoError(t, err)
	assert.Equal(t, confirmed, restaurants)
}

func TestRestaurantService_ListMenu_UnknownRestaurant(t *testing.T) {
	service, _, restaurantRepo, _ := newRestaurantService(t)
	ctx := context.Background()

	restaurantID := uuid.New()
	restaurantRepo.EXPECT().FindByID(ctx, restaurantID).Return(nil, repository.ErrRestaurantNotFound)

	items, err := service.ListMenu(ctx, restaurantID)
	require.Error(t, err)
	assert.Nil(t, items)
	assert.ErrorIs(t, err, domainerrors.ErrRestaurantNotFound)
}

func TestRestaurantService_ApproveRestaurant_FlipsApproval(t *testing.T) {
	service, txManager, _, _ := newRestaurantService(t)
	ctx := context.Background()

	restaurant := &entity.Restaurant{ID: uuid.New(), OwnerIDs: []uuid.UUID{uuid.New()}, Approval: entity.ApprovalPending}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txRestaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	factory.EXPECT().RestaurantRepo().Return(txRestaurantRepo)
	expectTransaction(t, txManager, factory)

	txRestaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)
	txRestaurantRepo.EXPECT().UpdateApproval(ctx, restaurant.ID, entity.ApprovalConfirmed).Return(nil)

	approved, err := service.ApproveRestaurant(ctx, &usecase.ApproveRestaurantInput{
		RestaurantID: restaurant.ID,
		Approve:      true,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalConfirmed, approved.Approval)
}
