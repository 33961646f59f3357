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

// walletRepository implements the domain.WalletRepository interface using GORM.
type walletRepository struct {
	db *gorm.DB
}

// NewWalletRepository is the constructor for walletRepository.
func NewWalletRepository(db *gorm.DB) repository.WalletRepository {
	return &walletRepository{db: db}
}

// Create persists a zero-balance wallet for a user.
func (repo *walletRepository) Create(ctx context.Context, wallet *entity.Wallet) error {
	walletM := fromWalletDomain(wallet)

	if err := repo.db.WithContext(ctx).Create(walletM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create wallet")
	}

	wallet.CreatedAt = walletM.CreatedAt
	wallet.UpdatedAt = walletM.UpdatedAt

	return nil
}

// FindByUser retrieves a user's wallet.
func (repo *walletRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Wallet, error) {
	var walletM model.WalletModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&walletM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWalletNotFound
		}

		return nil, errors.Wrap(err, "failed to find wallet by user")
	}

	return toWalletDomain(&walletM), nil
}

// Credit adds amount to the wallet balance in a single UPDATE.
func (repo *walletRepository) Credit(ctx context.Context, userID uuid.UUID, amount int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.WalletModel{}).
		Where("user_id = ?", userID).
		Update("balance", gorm.Expr("balance + ?", amount))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to credit wallet")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWalletNotFound
	}

	return nil
}

// Debit subtracts amount from the wallet balance in a single conditional
// UPDATE. The WHERE guard makes concurrent debits serialize on the row; zero
// rows affected means the balance did not cover the amount.
func (repo *walletRepository) Debit(ctx context.Context, userID uuid.UUID, amount int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.WalletModel{}).
		Where("user_id = ? AND balance >= ?", userID, amount).
		Update("balance", gorm.Expr("balance - ?", amount))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to debit wallet")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInsufficientBalance
	}

	return nil
}

// AppendTransaction writes one row of the audit trail. Rows are never updated
// or deleted afterwards.
func (repo *walletRepository) AppendTransaction(ctx context.Context, txn *entity.WalletTransaction) error {
	txnM := fromWalletTransactionDomain(txn)

	if err := repo.db.WithContext(ctx).Create(txnM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append wallet transaction")
	}

	txn.ID = txnM.ID
	txn.CreatedAt = txnM.CreatedAt

	return nil
}

// ListTransactions retrieves a user's ledger rows, newest first.
func (repo *walletRepository) ListTransactions(ctx context.Context, userID uuid.UUID) ([]*entity.WalletTransaction, error) {
	var txnMs []model.WalletTransactionModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&txnMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list wallet transactions")
	}

	txns := make([]*entity.WalletTransaction, 0, len(txnMs))
	for i := range txnMs {
		txns = append(txns, toWalletTransactionDomain(&txnMs[i]))
	}

	return txns, nil
}

// toWalletDomain maps a persistence model back to a pure domain entity.
func toWalletDomain(walletM *model.WalletModel) *entity.Wallet {
	return &entity.Wallet{
		UserID:    walletM.UserID,
		Balance:   walletM.Balance,
		CreatedAt: walletM.CreatedAt,
		UpdatedAt: walletM.UpdatedAt,
	}
}

// fromWalletDomain maps a pure domain entity to a GORM persistence model.
func fromWalletDomain(wallet *entity.Wallet) *model.WalletModel {
	return &model.WalletModel{
		UserID:    wallet.UserID,
		Balance:   wallet.Balance,
		CreatedAt: wallet.CreatedAt,
		UpdatedAt: wallet.UpdatedAt,
	}
}

// toWalletTransactionDomain maps a persistence model back to a pure domain entity.
func toWalletTransactionDomain(txnM *model.WalletTransactionModel) *entity.WalletTransaction {
	return &entity.WalletTransaction{
		ID:        txnM.ID,
		UserID:    txnM.UserID,
		OrderID:   txnM.OrderID,
		Amount:    txnM.Amount,
		Type:      entity.TransactionType(txnM.Type),
		Status:    entity.TransactionStatus(txnM.Status),
		CreatedAt: txnM.CreatedAt,
	}
}

// fromWalletTransactionDomain maps a pure domain entity to a GORM persistence model.
func fromWalletTransactionDomain(txn *entity.WalletTransaction) *model.WalletTransactionModel {
	return &model.WalletTransactionModel{
		ID:        txn.ID,
		UserID:    txn.UserID,
		OrderID:   txn.OrderID,
		Amount:    txn.Amount,
		Type:      txn.Type.String(),
		Status:    txn.Status.String(),
		CreatedAt: txn.CreatedAt,
	}
}
