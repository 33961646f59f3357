// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Wallet holds a user's balance in the smallest currency unit. The balance
// is never assigned directly; every change goes through the wallet ledger's
// credit/debit operations so that each mutation leaves a transaction row.
type Wallet struct {
	UserID    uuid.UUID // The owning user; one wallet per user.
	Balance   int64     // Current balance, never negative.
	CreatedAt time.Time // Timestamp of wallet creation (at registration).
	UpdatedAt time.Time // Timestamp of the last balance change.
}

// TransactionType classifies a wallet ledger entry.
type TransactionType string

const (
	// TransactionTopUp is a customer adding funds to their wallet.
	TransactionTopUp TransactionType = "TOP_UP"
	// TransactionOrderPayment is a customer paying for an order.
	TransactionOrderPayment TransactionType = "ORDER_PAYMENT"
	// TransactionSettlement is a payout to a seller or courier on delivery.
	TransactionSettlement TransactionType = "SETTLEMENT"
)

// String returns the string representation of the TransactionType.
func (t TransactionType) String() string {
	return string(t)
}

// IsValid checks if the TransactionType is a valid value.
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTopUp, TransactionOrderPayment, TransactionSettlement:
		return true
	default:
		return false
	}
}

// TransactionStatus records the outcome of a ledger mutation.
type TransactionStatus string

const (
	// TransactionSuccess marks a committed ledger mutation.
	TransactionSuccess TransactionStatus = "SUCCESS"
	// TransactionFailed marks a mutation that was rejected.
	TransactionFailed TransactionStatus = "FAILED"
)

// String returns the string representation of the TransactionStatus.
func (s TransactionStatus) String() string {
	return string(s)
}

// WalletTransaction is one row of the append-only audit trail. Exactly one
// row is written per balance mutation and rows are never rewritten.
type WalletTransaction struct {
	ID        uuid.UUID         // The unique identifier for this ledger entry.
	UserID    uuid.UUID         // The wallet owner.
	OrderID   *uuid.UUID        // The related order, if any.
	Amount    int64             // Signed amount; positive credits, negative debits.
	Type      TransactionType   // What kind of mutation this was.
	Status    TransactionStatus // Outcome of the mutation.
	CreatedAt time.Time         // Timestamp of the mutation.
}
