package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. Price columns store amounts in the
// smallest currency unit.
type OrderModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	RestaurantID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	CourierID       *uuid.UUID `gorm:"type:uuid;index"`
	Status          string     `gorm:"type:varchar(32);not null;index"`
	DeliveryAddress string     `gorm:"type:text;not null"`
	RawPrice        int64      `gorm:"not null"`
	TaxFee          int64      `gorm:"not null"`
	AdditionalFee   int64      `gorm:"not null"`
	CourierFee      int64      `gorm:"not null"`
	PayPrice        int64      `gorm:"not null"`
	Paid            bool       `gorm:"not null;default:false"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Price captures the food item's
// unit price at order time so later menu edits never change a placed order.
type OrderItemModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	FoodItemID uuid.UUID `gorm:"type:uuid;not null"`
	Quantity   int       `gorm:"not null"`
	Price      int64     `gorm:"not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
