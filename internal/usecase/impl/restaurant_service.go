package impl

import (
	"context"
	"log/slog"

	deliverycontext "chow/internal/delivery/context"
	"chow/internal/domain/entity"
	domainerrors "chow/internal/domain/errors"
	"chow/internal/domain/repository"
	"chow/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// restaurantService implements the RestaurantUsecase interface.
type restaurantService struct {
	txManager      repository.TransactionManager
	restaurantRepo repository.RestaurantRepository
	foodItemRepo   repository.FoodItemRepository
	logger         *slog.Logger
}

// RestaurantServiceParams holds dependencies for RestaurantService, injected by Fx.
type RestaurantServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	RestaurantRepo repository.RestaurantRepository
	FoodItemRepo   repository.FoodItemRepository
	Logger         *slog.Logger
}

// NewRestaurantService is the constructor for restaurantService.
func NewRestaurantService(params RestaurantServiceParams) usecase.RestaurantUsecase {
	return &restaurantService{
		txManager:      params.TxManager,
		restaurantRepo: params.RestaurantRepo,
		foodItemRepo:   params.FoodItemRepo,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *restaurantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateRestaurant registers a restaurant owned by the calling seller.
func (srv *restaurantService) CreateRestaurant(ctx context.Context, input *usecase.CreateRestaurantInput) (*entity.Restaurant, error) {
	srv.log(ctx).Info("Creating restaurant", slog.String("name", input.Name), slog.Any("sellerID", input.SellerID))

	if input.TaxFee < 0 || input.AdditionalFee < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("fees must not be negative")
	}

	restaurant := &entity.Restaurant{
		Name:          input.Name,
		OwnerIDs:      []uuid.UUID{input.SellerID},
		TaxFee:        input.TaxFee,
		AdditionalFee: input.AdditionalFee,
		Approval:      entity.ApprovalPending,
	}

	if err := srv.restaurantRepo.Create(ctx, restaurant); err != nil {
		srv.log(ctx).Error("Failed to create restaurant", slog.Any("sellerID", input.SellerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create restaurant")
	}

	return restaurant, nil
}

// AddFoodItem adds a menu item to a restaurant the caller owns.
func (srv *restaurantService) AddFoodItem(ctx context.Context, input *usecase.AddFoodItemInput) (*entity.FoodItem, error) {
	srv.log(ctx).Info("Adding food item", slog.Any("restaurantID", input.RestaurantID), slog.String("name", input.Name))

	if input.Price <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("price must be positive")
	}
	if input.Supply < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("supply must not be negative")
	}

	item := &entity.FoodItem{
		RestaurantID: input.RestaurantID,
		Name:         input.Name,
		Category:     input.Category,
		Price:        input.Price,
		Supply:       input.Supply,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.requireOwnership(ctx, repoFactory.RestaurantRepo(), input.RestaurantID, input.SellerID); err != nil {
			return err
		}

		if err := repoFactory.FoodItemRepo().Create(ctx, item); err != nil {
			return errors.Wrap(err, "failed to create food item")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute add food item transaction", slog.Any("restaurantID", input.RestaurantID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute add food item transaction")
	}

	return item, nil
}

// UpdateFoodItem edits a menu item on a restaurant the caller owns. Orders
// already placed keep their price snapshots.
func (srv *restaurantService) UpdateFoodItem(ctx context.Context, input *usecase.UpdateFoodItemInput) (*entity.FoodItem, error) {
	srv.log(ctx).Info("Updating food item", slog.Any("foodItemID", input.FoodItemID))

	if input.Price <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("price must be positive")
	}
	if input.Supply < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("supply must not be negative")
	}

	var updated *entity.FoodItem
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		foodItemRepo := repoFactory.FoodItemRepo()

		item, err := foodItemRepo.FindByID(ctx, input.FoodItemID)
		if err != nil {
			if errors.Is(err, repository.ErrFoodItemNotFound) {
				return domainerrors.ErrFoodItemNotFound
			}

			return errors.Wrap(err, "failed to find food item by id")
		}

		if err := srv.requireOwnership(ctx, repoFactory.RestaurantRepo(), item.RestaurantID, input.SellerID); err != nil {
			return err
		}

		item.Name = input.Name
		item.Category = input.Category
		item.Price = input.Price
		item.Supply = input.Supply

		if err := foodItemRepo.Update(ctx, item); err != nil {
			return errors.Wrap(err, "failed to update food item")
		}

		updated = item

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute update food item transaction", slog.Any("foodItemID", input.FoodItemID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute update food item transaction")
	}

	return updated, nil
}

// ListRestaurants returns all confirmed restaurants.
func (srv *restaurantService) ListRestaurants(ctx context.Context) ([]*entity.Restaurant, error) {
	restaurants, err := srv.restaurantRepo.ListByApproval(ctx, entity.ApprovalConfirmed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list confirmed restaurants")
	}

	return restaurants, nil
}

// ListOwnRestaurants returns the restaurants owned by a seller.
func (srv *restaurantService) ListOwnRestaurants(ctx context.Context, sellerID uuid.UUID) ([]*entity.Restaurant, error) {
	restaurants, err := srv.restaurantRepo.ListByOwner(ctx, sellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list restaurants by owner")
	}

	return restaurants, nil
}

// ListMenu returns a restaurant's menu.
func (srv *restaurantService) ListMenu(ctx context.Context, restaurantID uuid.UUID) ([]*entity.FoodItem, error) {
	if _, err := srv.restaurantRepo.FindByID(ctx, restaurantID); err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant by id")
	}

	items, err := srv.foodItemRepo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list food items by restaurant")
	}

	return items, nil
}

// ApproveRestaurant records an admin's decision on a pending restaurant.
func (srv *restaurantService) ApproveRestaurant(ctx context.Context, input *usecase.ApproveRestaurantInput) (*entity.Restaurant, error) {
	srv.log(ctx).Info("Approving restaurant", slog.Any("restaurantID", input.RestaurantID), slog.Bool("approve", input.Approve))

	var approved *entity.Restaurant
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		restaurantRepo := repoFactory.RestaurantRepo()

		restaurant, err := restaurantRepo.FindByID(ctx, input.RestaurantID)
		if err != nil {
			if errors.Is(err, repository.ErrRestaurantNotFound) {
				return domainerrors.ErrRestaurantNotFound
			}

			return errors.Wrap(err, "failed to find restaurant by id")
		}

		approval := entity.ApprovalConfirmed
		if !input.Approve {
			approval = entity.ApprovalRejected
		}

		if err := restaurantRepo.UpdateApproval(ctx, restaurant.ID, approval); err != nil {
			return errors.Wrap(err, "failed to update restaurant approval")
		}

		restaurant.Approval = approval
		approved = restaurant

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute restaurant approval transaction", slog.Any("restaurantID", input.RestaurantID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute restaurant approval transaction")
	}

	return approved, nil
}

// requireOwnership loads the restaurant and verifies the seller owns it.
func (srv *restaurantService) requireOwnership(ctx context.Context, restaurantRepo repository.RestaurantRepository, restaurantID, sellerID uuid.UUID) error {
	restaurant, err := restaurantRepo.FindByID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return domainerrors.ErrRestaurantNotFound
		}

		return errors.Wrap(err, "failed to find restaurant by id")
	}

	if !restaurant.IsOwnedBy(sellerID) {
		return domainerrors.ErrForbidden.WrapMessage("seller does not own this restaurant")
	}

	return nil
}
