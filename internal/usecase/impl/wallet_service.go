package impl

import (
	"context"
	"log/slog"

	deliverycontext "chow/internal/delivery/context"
	"chow/internal/domain/constants"
	"chow/internal/domain/entity"
	domainerrors "chow/internal/domain/errors"
	"chow/internal/domain/repository"
	"chow/internal/domain/service"
	"chow/internal/domain/statemachine"
	"chow/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// walletService implements the WalletUsecase interface. Every balance change
// commits together with exactly one SUCCESS ledger row; a SUCCESS row without
// a matching balance change (or vice versa) can never exist. Rejected debits
// are logged as FAILED rows with no balance change.
type walletService struct {
	txManager      repository.TransactionManager
	walletRepo     repository.WalletRepository
	eventPublisher service.EventPublisher
	logger         *slog.Logger
}

// WalletServiceParams holds dependencies for WalletService, injected by Fx.
type WalletServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	WalletRepo     repository.WalletRepository
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewWalletService is the constructor for walletService.
func NewWalletService(params WalletServiceParams) usecase.WalletUsecase {
	return &walletService{
		txManager:      params.TxManager,
		walletRepo:     params.WalletRepo,
		eventPublisher: params.EventPublisher,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *walletService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetWallet retrieves a user's wallet.
func (srv *walletService) GetWallet(ctx context.Context, userID uuid.UUID) (*entity.Wallet, error) {
	wallet, err := srv.walletRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrWalletNotFound) {
			return nil, domainerrors.ErrWalletNotFound
		}

		return nil, errors.Wrap(err, "failed to find wallet by user")
	}

	return wallet, nil
}

// TopUp credits a positive amount to the caller's wallet, appending the
// matching ledger row in the same transaction.
func (srv *walletService) TopUp(ctx context.Context, input *usecase.TopUpInput) (*entity.Wallet, error) {
	srv.log(ctx).Info("Topping up wallet", slog.Any("userID", input.UserID), slog.Int64("amount", input.Amount))

	if input.Amount <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("top-up amount must be positive")
	}

	var wallet *entity.Wallet
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		walletRepo := repoFactory.WalletRepo()

		if err := walletRepo.Credit(ctx, input.UserID, input.Amount); err != nil {
			if errors.Is(err, repository.ErrWalletNotFound) {
				return domainerrors.ErrWalletNotFound
			}

			return errors.Wrap(err, "failed to credit wallet")
		}

		txn := &entity.WalletTransaction{
			UserID: input.UserID,
			Amount: input.Amount,
			Type:   entity.TransactionTopUp,
			Status: entity.TransactionSuccess,
		}
		if err := walletRepo.AppendTransaction(ctx, txn); err != nil {
			return errors.Wrap(err, "failed to append top-up transaction")
		}

		var err error
		wallet, err = walletRepo.FindByUser(ctx, input.UserID)

		return errors.Wrap(err, "failed to reload wallet after top-up")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute top-up transaction", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute top-up transaction")
	}

	return wallet, nil
}

// PayForOrder pays for an order awaiting payment. The debit, its ledger row,
// the paid flag and the move to preparing commit as one unit of work; an
// insufficient balance rolls back everything and leaves only a FAILED row in
// the audit trail.
func (srv *walletService) PayForOrder(ctx context.Context, input *usecase.PayOrderInput) (*entity.Order, error) {
	srv.log(ctx).Info("Paying for order", slog.Any("orderID", input.OrderID), slog.String("method", input.Method))

	if input.Method != constants.PaymentMethodWallet && input.Method != constants.PaymentMethodOnline {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown payment method")
	}

	var paidOrder *entity.Order
	var fromStatus entity.OrderStatus
	var failedTxn *entity.WalletTransaction
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		order, err := orderRepo.FindByID(ctx, input.OrderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to find order by id")
		}
		fromStatus = order.Status

		// 1. Only the order's customer may pay for it.
		if order.CustomerID != input.CustomerID {
			return domainerrors.ErrForbidden.WrapMessage("order belongs to another customer")
		}

		// 2. The order must be awaiting payment and unpaid.
		if order.Paid {
			return domainerrors.ErrOrderAlreadyPaid
		}
		if err := statemachine.ValidatePayment(order.Status); err != nil {
			return err
		}

		// 3. A wallet payment debits the total and logs it; an online payment
		// is settled externally and touches no ledger.
		if input.Method == constants.PaymentMethodWallet {
			if err := srv.debitForOrder(ctx, repoFactory.WalletRepo(), order); err != nil {
				if errors.Is(err, domainerrors.ErrInsufficientBalance) {
					orderID := order.ID
					failedTxn = &entity.WalletTransaction{
						UserID:  order.CustomerID,
						OrderID: &orderID,
						Amount:  -order.PayPrice,
						Type:    entity.TransactionOrderPayment,
						Status:  entity.TransactionFailed,
					}
				}

				return err
			}
		}

		// 4. Mark paid and move to preparing in the same transaction. The
		// conditional write ensures a concurrent payment off the same unpaid
		// snapshot rolls back its debit instead of charging twice.
		order.Paid = true
		order.Status = entity.StatusPreparing
		if err := orderRepo.UpdateStatus(ctx, order, fromStatus); err != nil {
			if errors.Is(err, repository.ErrOrderStatusStale) {
				return domainerrors.ErrConflict.WrapMessage("order was updated concurrently")
			}

			return errors.Wrap(err, "failed to update order after payment")
		}

		paidOrder = order

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Order payment rejected", slog.Any("orderID", input.OrderID), slog.Any("error", err))

		// A rejected debit still lands in the audit trail. The FAILED row is
		// written outside the rolled-back unit of work so the rollback cannot
		// take it with it; the balance itself stays untouched.
		if failedTxn != nil {
			if appendErr := srv.walletRepo.AppendTransaction(ctx, failedTxn); appendErr != nil {
				srv.log(ctx).Warn("Failed to record rejected payment", slog.Any("orderID", input.OrderID), slog.Any("error", appendErr))
			}
		}

		return nil, errors.Wrap(err, "failed to execute order payment transaction")
	}

	srv.publishStatusChanged(ctx, paidOrder, fromStatus)

	return paidOrder, nil
}

// ListTransactions returns the caller's ledger rows, newest first.
func (srv *walletService) ListTransactions(ctx context.Context, userID uuid.UUID) ([]*entity.WalletTransaction, error) {
	txns, err := srv.walletRepo.ListTransactions(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list wallet transactions")
	}

	return txns, nil
}

// debitForOrder debits the order total from the customer and appends the
// matching ORDER_PAYMENT row.
func (srv *walletService) debitForOrder(ctx context.Context, walletRepo repository.WalletRepository, order *entity.Order) error {
	if err := walletRepo.Debit(ctx, order.CustomerID, order.PayPrice); err != nil {
		if errors.Is(err, repository.ErrInsufficientBalance) {
			return domainerrors.ErrInsufficientBalance
		}
		if errors.Is(err, repository.ErrWalletNotFound) {
			return domainerrors.ErrWalletNotFound
		}

		return errors.Wrap(err, "failed to debit wallet")
	}

	orderID := order.ID
	txn := &entity.WalletTransaction{
		UserID:  order.CustomerID,
		OrderID: &orderID,
		Amount:  -order.PayPrice,
		Type:    entity.TransactionOrderPayment,
		Status:  entity.TransactionSuccess,
	}
	if err := walletRepo.AppendTransaction(ctx, txn); err != nil {
		return errors.Wrap(err, "failed to append order payment transaction")
	}

	return nil
}

// publishStatusChanged emits the payment-driven transition event after commit.
func (srv *walletService) publishStatusChanged(ctx context.Context, order *entity.Order, from entity.OrderStatus) {
	event := &service.OrderEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		EventType:    service.EventOrderStatusChanged,
		OrderID:      order.ID.String(),
		CustomerID:   order.CustomerID.String(),
		RestaurantID: order.RestaurantID.String(),
		FromStatus:   from.String(),
		ToStatus:     order.Status.String(),
		PayPrice:     order.PayPrice,
	}

	if err := srv.eventPublisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order event",
			slog.Any("orderID", order.ID),
			slog.Any("error", err),
		)
	}
}
