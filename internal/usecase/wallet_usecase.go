package usecase

import (
	"context"

	"chow/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// TopUpInput defines the data required to add funds to a wallet.
type TopUpInput struct {
	UserID uuid.UUID
	Amount int64
}

// PayOrderInput defines the data required to pay for an order. Method selects
// the wallet balance or an external online payment.
type PayOrderInput struct {
	CustomerID uuid.UUID
	OrderID    uuid.UUID
	Method     string
}

// WalletUsecase defines the interface for the wallet ledger. Every balance
// mutation commits together with exactly one transaction log row.
type WalletUsecase interface {
	// GetWallet retrieves a user's wallet.
	GetWallet(ctx context.Context, userID uuid.UUID) (*entity.Wallet, error)

	// TopUp credits a positive amount to the caller's wallet.
	TopUp(ctx context.Context, input *TopUpInput) (*entity.Wallet, error)

	// PayForOrder pays for an order awaiting payment. A wallet payment debits
	// the order's total from the customer's balance; either method marks the
	// order paid and moves it to preparing in the same transaction.
	PayForOrder(ctx context.Context, input *PayOrderInput) (*entity.Order, error)

	// ListTransactions returns the caller's ledger rows, newest first.
	ListTransactions(ctx context.Context, userID uuid.UUID) ([]*entity.WalletTransaction, error)
}
