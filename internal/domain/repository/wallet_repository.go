package repository

import (
	"context"

	"chow/internal/domain/entity"

	"github.com/google/uuid"
)

// WalletRepository defines persistence operations for wallets and their
// append-only transaction log. Credit and Debit mutate the balance and MUST
// be paired with exactly one AppendTransaction inside the same store
// transaction; the wallet ledger use case owns that pairing.
type WalletRepository interface {
	// Create persists a zero-balance wallet for a user.
	Create(ctx context.Context, wallet *entity.Wallet) error

	// FindByUser retrieves a user's wallet.
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Wallet, error)

	// Credit atomically adds amount (> 0) to the wallet balance.
	Credit(ctx context.Context, userID uuid.UUID, amount int64) error

	// Debit atomically subtracts amount (> 0) from the wallet balance if the
	// balance covers it, returning ErrInsufficientBalance otherwise. Two
	// concurrent debits against the same wallet serialize in the store; the
	// balance never goes negative.
	Debit(ctx context.Context, userID uuid.UUID, amount int64) error

	// AppendTransaction writes one row of the audit trail. Rows are never
	// updated or deleted.
	AppendTransaction(ctx context.Context, txn *entity.WalletTransaction) error

	// ListTransactions retrieves a user's ledger rows, newest first.
	ListTransactions(ctx context.Context, userID uuid.UUID) ([]*entity.WalletTransaction, error)
}
