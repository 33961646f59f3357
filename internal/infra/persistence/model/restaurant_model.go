package model

import (
	"time"

	"github.com/google/uuid"
)

// RestaurantModel mirrors the 'restaurants' table.
type RestaurantModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name          string    `gorm:"type:varchar(100);not null"`
	TaxFee        int64     `gorm:"not null;default:0"`
	AdditionalFee int64     `gorm:"not null;default:0"`
	Approval      string    `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Owners    []UserModel     `gorm:"many2many:restaurant_owners;joinForeignKey:RestaurantID;joinReferences:UserID"`
	FoodItems []FoodItemModel `gorm:"foreignKey:RestaurantID"`
}

// TableName explicitly sets the table name for GORM.
func (RestaurantModel) TableName() string {
	return "restaurants"
}

// FoodItemModel mirrors the 'food_items' table. Supply is decremented atomically
// with a conditional update so concurrent reservations never oversell.
type FoodItemModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Category     string    `gorm:"type:varchar(50)"`
	Price        int64     `gorm:"not null"`
	Supply       int       `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (FoodItemModel) TableName() string {
	return "food_items"
}
