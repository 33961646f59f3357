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

// restaurantRepository implements the domain.RestaurantRepository interface using GORM.
type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository is the constructor for restaurantRepository.
func NewRestaurantRepository(db *gorm.DB) repository.RestaurantRepository {
	return &restaurantRepository{db: db}
}

// Create persists a new restaurant together with its owner links.
// Omit("Owners.*") writes the join rows without upserting the user records.
func (repo *restaurantRepository) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	restaurantM := fromRestaurantDomain(restaurant)

	if err := repo.db.WithContext(ctx).Omit("Owners.*").Create(restaurantM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create restaurant")
	}

	restaurant.ID = restaurantM.ID
	restaurant.CreatedAt = restaurantM.CreatedAt
	restaurant.UpdatedAt = restaurantM.UpdatedAt

	return nil
}

// FindByID retrieves a restaurant by its unique ID, preloading its owners.
func (repo *restaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	var restaurantM model.RestaurantModel
	err := repo.db.WithContext(ctx).
		Preload("Owners").
		Where("id = ?", id).
		First(&restaurantM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant by id")
	}

	return toRestaurantDomain(&restaurantM), nil
}

// ListByApproval retrieves all restaurants in the given approval state.
func (repo *restaurantRepository) ListByApproval(ctx context.Context, approval entity.Approval) ([]*entity.Restaurant, error) {
	var restaurantMs []model.RestaurantModel
	err := repo.db.WithContext(ctx).
		Preload("Owners").
		Where("approval = ?", approval.String()).
		Order("created_at DESC").
		Find(&restaurantMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list restaurants by approval")
	}

	restaurants := make([]*entity.Restaurant, 0, len(restaurantMs))
	for i := range restaurantMs {
		restaurants = append(restaurants, toRestaurantDomain(&restaurantMs[i]))
	}

	return restaurants, nil
}

// ListByOwner retrieves the restaurants owned by a seller.
func (repo *restaurantRepository) ListByOwner(ctx context.Context, sellerID uuid.UUID) ([]*entity.Restaurant, error) {
	var restaurantMs []model.RestaurantModel
	err := repo.db.WithContext(ctx).
		Preload("Owners").
		Joins("JOIN restaurant_owners ro ON ro.restaurant_id = restaurants.id").
		Where("ro.user_id = ?", sellerID).
		Order("restaurants.created_at DESC").
		Find(&restaurantMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list restaurants by owner")
	}

	restaurants := make([]*entity.Restaurant, 0, len(restaurantMs))
	for i := range restaurantMs {
		restaurants = append(restaurants, toRestaurantDomain(&restaurantMs[i]))
	}

	return restaurants, nil
}

// UpdateApproval flips a restaurant's approval status.
func (repo *restaurantRepository) UpdateApproval(ctx context.Context, id uuid.UUID, approval entity.Approval) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RestaurantModel{}).
		Where("id = ?", id).
		Update("approval", approval.String())

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update restaurant approval")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRestaurantNotFound
	}

	return nil
}

// toRestaurantDomain maps a persistence model back to a pure domain entity.
func toRestaurantDomain(restaurantM *model.RestaurantModel) *entity.Restaurant {
	ownerIDs := make([]uuid.UUID, 0, len(restaurantM.Owners))
	for i := range restaurantM.Owners {
		ownerIDs = append(ownerIDs, restaurantM.Owners[i].ID)
	}

	return &entity.Restaurant{
		ID:            restaurantM.ID,
		Name:          restaurantM.Name,
		OwnerIDs:      ownerIDs,
		TaxFee:        restaurantM.TaxFee,
		AdditionalFee: restaurantM.AdditionalFee,
		Approval:      entity.Approval(restaurantM.Approval),
		CreatedAt:     restaurantM.CreatedAt,
		UpdatedAt:     restaurantM.UpdatedAt,
	}
}

// fromRestaurantDomain maps a pure domain entity to a GORM persistence model.
func fromRestaurantDomain(restaurant *entity.Restaurant) *model.RestaurantModel {
	owners := make([]model.UserModel, 0, len(restaurant.OwnerIDs))
	for _, ownerID := range restaurant.OwnerIDs {
		owners = append(owners, model.UserModel{ID: ownerID})
	}

	return &model.RestaurantModel{
		ID:            restaurant.ID,
		Name:          restaurant.Name,
		TaxFee:        restaurant.TaxFee,
		AdditionalFee: restaurant.AdditionalFee,
		Approval:      restaurant.Approval.String(),
		Owners:        owners,
		CreatedAt:     restaurant.CreatedAt,
		UpdatedAt:     restaurant.UpdatedAt,
	}
}
