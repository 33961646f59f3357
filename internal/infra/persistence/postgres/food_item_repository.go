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

// foodItemRepository implements the domain.FoodItemRepository interface using GORM.
type foodItemRepository struct {
	db *gorm.DB
}

// NewFoodItemRepository is the constructor for foodItemRepository.
func NewFoodItemRepository(db *gorm.DB) repository.FoodItemRepository {
	return &foodItemRepository{db: db}
}

// Create persists a new food item.
func (repo *foodItemRepository) Create(ctx context.Context, item *entity.FoodItem) error {
	itemM := fromFoodItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRestaurantNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create food item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// FindByID retrieves a food item by its unique ID.
func (repo *foodItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FoodItem, error) {
	var itemM model.FoodItemModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&itemM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFoodItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find food item by id")
	}

	return toFoodItemDomain(&itemM), nil
}

// ListByRestaurant retrieves a restaurant's menu.
func (repo *foodItemRepository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.FoodItem, error) {
	var itemMs []model.FoodItemModel
	err := repo.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("category, name").
		Find(&itemMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list food items by restaurant")
	}

	items := make([]*entity.FoodItem, 0, len(itemMs))
	for i := range itemMs {
		items = append(items, toFoodItemDomain(&itemMs[i]))
	}

	return items, nil
}

// Update persists changes to a food item's mutable fields.
func (repo *foodItemRepository) Update(ctx context.Context, item *entity.FoodItem) error {
	result := repo.db.WithContext(ctx).
		Model(&model.FoodItemModel{}).
		Where("id = ?", item.ID).
		Updates(map[string]any{
			"name":     item.Name,
			"category": item.Category,
			"price":    item.Price,
			"supply":   item.Supply,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update food item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFoodItemNotFound
	}

	return nil
}

// ReserveSupply decrements supply by quantity in a single conditional UPDATE.
// The WHERE guard makes concurrent reservations serialize on the row; zero
// rows affected means the remaining supply did not cover the request.
func (repo *foodItemRepository) ReserveSupply(ctx context.Context, id uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.FoodItemModel{}).
		Where("id = ? AND supply >= ?", id, quantity).
		Update("supply", gorm.Expr("supply - ?", quantity))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to reserve supply")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInsufficientSupply
	}

	return nil
}

// ReleaseSupply returns quantity units to the item after an unpaid order is
// rejected or cancelled.
func (repo *foodItemRepository) ReleaseSupply(ctx context.Context, id uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.FoodItemModel{}).
		Where("id = ?", id).
		Update("supply", gorm.Expr("supply + ?", quantity))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to release supply")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFoodItemNotFound
	}

	return nil
}

// toFoodItemDomain maps a persistence model back to a pure domain entity.
func toFoodItemDomain(itemM *model.FoodItemModel) *entity.FoodItem {
	return &entity.FoodItem{
		ID:           itemM.ID,
		RestaurantID: itemM.RestaurantID,
		Name:         itemM.Name,
		Category:     itemM.Category,
		Price:        itemM.Price,
		Supply:       itemM.Supply,
		CreatedAt:    itemM.CreatedAt,
		UpdatedAt:    itemM.UpdatedAt,
	}
}

// fromFoodItemDomain maps a pure domain entity to a GORM persistence model.
func fromFoodItemDomain(item *entity.FoodItem) *model.FoodItemModel {
	return &model.FoodItemModel{
		ID:           item.ID,
		RestaurantID: item.RestaurantID,
		Name:         item.Name,
		Category:     item.Category,
		Price:        item.Price,
		Supply:       item.Supply,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}
