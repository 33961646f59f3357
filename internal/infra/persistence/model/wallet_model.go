package model

import (
	"time"

	"github.com/google/uuid"
)

// WalletModel mirrors the 'wallets' table. Balance is debited atomically with a
// conditional update so it can never go negative.
type WalletModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Balance   int64     `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (WalletModel) TableName() string {
	return "wallets"
}

// WalletTransactionModel mirrors the 'wallet_transactions' table. Rows are
// append-only; Amount is signed (positive credit, negative debit).
type WalletTransactionModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	OrderID   *uuid.UUID `gorm:"type:uuid;index"`
	Amount    int64      `gorm:"not null"`
	Type      string     `gorm:"type:varchar(32);not null"`
	Status    string     `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (WalletTransactionModel) TableName() string {
	return "wallet_transactions"
}
