package impl

import (
	"context"
	"testing"

	"chow/internal/domain/constants"
	"chow/internal/domain/entity"
	domainerrors "chow/internal/domain/errors"
	"chow/internal/domain/repository"
	mockRepo "chow/internal/mocks/repository"
	mockSvc "chow/internal/mocks/service"
	"chow/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newWalletService(t *testing.T) (usecase.WalletUsecase, *mockRepo.MockTransactionManager, *mockRepo.MockWalletRepository, *mockSvc.MockEventPublisher) {
	txManager := mockRepo.NewMockTransactionManager(t)
	walletRepo := mockRepo.NewMockWalletRepository(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)

	service := NewWalletService(WalletServiceParams{
		TxManager:      txManager,
		WalletRepo:     walletRepo,
		EventPublisher: eventPublisher,
		Logger:         newDiscardLogger(),
	})

	return service, txManager, walletRepo, eventPublisher
}

func TestWalletService_TopUp_CreditsAndLogs(t *testing.T) {
	service, txManager, _, _ := newWalletService(t)
	ctx := context.Background()

	userID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txWalletRepo := mockRepo.NewMockWalletRepository(t)
	factory.EXPECT().WalletRepo().Return(txWalletRepo)
	expectTransaction(t, txManager, factory)

	txWalletRepo.EXPECT().Credit(ctx, userID, int64(10000)).Return(nil)
	txWalletRepo.EXPECT().
		AppendTransaction(ctx, mock.MatchedBy(func(txn *entity.WalletTransaction) bool {
			return txn.UserID == userID &&
				txn.Amount == 10000 &&
				txn.Type == entity.TransactionTopUp &&
				txn.OrderID == nil
		})).
		Return(nil)
	txWalletRepo.EXPECT().FindByUser(ctx, userID).Return(&entity.Wallet{UserID: userID, Balance: 10000}, nil)

	wallet, err := service.TopUp(ctx, &usecase.TopUpInput{UserID: userID, Amount: 10000})
	require.NoError(t, err)
	assert.Equal(t, int64(10000), wallet.Balance)
}

func TestWalletService_TopUp_NonPositiveAmountRejected(t *testing.T) {
	service, _, _, _ := newWalletService(t)

	wallet, err := service.TopUp(context.Background(), &usecase.TopUpInput{UserID: uuid.New(), Amount: 0})
	require.Error(t, err)
	assert.Nil(t, wallet)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestWalletService_PayForOrder_WalletMethodDebitsAndAdvancesOrder(t *testing.T) {
	service, txManager, _, eventPublisher := newWalletService(t)
	ctx := context.Background()

	customerID := uuid.New()
	order := &entity.Order{
		ID:           uuid.New(),
		CustomerID:   customerID,
		RestaurantID: uuid.New(),
		Status:       entity.StatusPendingPayment,
		PayPrice:     5300,
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txWalletRepo := mockRepo.NewMockWalletRepository(t)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)
	factory.EXPECT().WalletRepo().Return(txWalletRepo)
	expectTransaction(t, txManager, factory)

	txOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	txWalletRepo.EXPECT().Debit(ctx, customerID, int64(5300)).Return(nil)
	txWalletRepo.EXPECT().
		AppendTransaction(ctx, mock.MatchedBy(func(txn *entity.WalletTransaction) bool {
			return txn.UserID == customerID &&
				txn.Amount == -5300 &&
				txn.Type == entity.TransactionOrderPayment &&
				txn.OrderID != nil && *txn.OrderID == order.ID
		})).
		Return(nil)
	txOrderRepo.EXPECT().UpdateStatus(ctx, order, entity.StatusPendingPayment).Return(nil)
	eventPublisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil)

	paid, err := service.PayForOrder(ctx, &usecase.PayOrderInput{
		CustomerID: customerID,
		OrderID:    order.ID,
		Method:     constants.PaymentMethodWallet,
	})
	require.NoError(t, err)
	assert.True(t, paid.Paid)
	assert.Equal(t, entity.StatusPreparing, paid.Status)
}

func TestWalletService_PayForOrder_InsufficientBalanceRollsBackDebit(t *testing.T) {
	service, txManager, walletRepo, _ := newWalletService(t)
	ctx := context.Background()

	customerID := uuid.New()
	order := &entity.Order{
		ID:         uuid.New(),
		CustomerID: customerID,
		Status:     entity.StatusPendingPayment,
		PayPrice:   5300,
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txWalletRepo := mockRepo.NewMockWalletRepository(t)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)
	factory.EXPECT().WalletRepo().Return(txWalletRepo)
	expectTransaction(t, txManager, factory)

	txOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	txWalletRepo.EXPECT().Debit(ctx, customerID, int64(5300)).Return(repository.ErrInsufficientBalance)

	// The rollback erases the debit, so the FAILED audit row is written
	// through the non-transactional repository afterwards.
	walletRepo.EXPECT().
		AppendTransaction(ctx, mock.MatchedBy(func(txn *entity.WalletTransaction) bool {
			return txn.UserID == customerID &&
				txn.Amount == -5300 &&
				txn.Type == entity.TransactionOrderPayment &&
				txn.Status == entity.TransactionFailed &&
				txn.OrderID != nil && *txn.OrderID == order.ID
		})).
		Return(nil)

	paid, err := service.PayForOrder(ctx, &usecase.PayOrderInput{
		CustomerID: customerID,
		OrderID:    order.ID,
		Method:     constants.PaymentMethodWallet,
	})
	require.Error(t, err)
	assert.Nil(t, paid)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientBalance)
}

func TestWalletService_PayForOrder_ConcurrentPaymentConflicts(t *testing.T) {
	service, txManager, _, _ := newWalletService(t)
	ctx := context.Background()

	customerID := uuid.New()
	order := &entity.Order{
		ID:         uuid.New(),
		CustomerID: customerID,
		Status:     entity.StatusPendingPayment,
		PayPrice:   5300,
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txWalletRepo := mockRepo.NewMockWalletRepository(t)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)
	factory.EXPECT().WalletRepo().Return(txWalletRepo)
	expectTransaction(t, txManager, factory)

	// Another payment off the same unpaid snapshot committed first: the debit
	// succeeds but the conditional status write matches no row, so the whole
	// unit of work rolls back and the customer is charged exactly once.
	txOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	txWalletRepo.EXPECT().Debit(ctx, customerID, int64(5300)).Return(nil)
	txWalletRepo.EXPECT().AppendTransaction(ctx, mock.Anything).Return(nil)
	txOrderRepo.EXPECT().
		UpdateStatus(ctx, order, entity.StatusPendingPayment).
		Return(repository.ErrOrderStatusStale)

	paid, err := service.PayForOrder(ctx, &usecase.PayOrderInput{
		CustomerID: customerID,
		OrderID:    order.ID,
		Method:     constants.PaymentMethodWallet,
	})
	require.Error(t, err)
	assert.Nil(t, paid)
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestWalletService_PayForOrder_OnlineMethodSkipsWallet(t *testing.T) {
	service, txManager, _, eventPublisher := newWalletService(t)
	ctx := context.Background()

	customerID := uuid.New()
	order := &entity.Order{
		ID:         uuid.New(),
		CustomerID: customerID,
		Status:     entity.StatusPendingPayment,
		PayPrice:   5300,
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)
	expectTransaction(t, txManager, factory)

	// No WalletRepo expectation: an online payment must not touch the ledger.
	txOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	txOrderRepo.EXPECT().UpdateStatus(ctx, order, entity.StatusPendingPayment).Return(nil)
	eventPublisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil)

	paid, err := service.PayForOrder(ctx, &usecase.PayOrderInput{
		CustomerID: customerID,
		OrderID:    order.ID,
		Method:     constants.PaymentMethodOnline,
	})
	require.NoError(t, err)
	assert.True(t, paid.Paid)
	assert.Equal(t, entity.StatusPreparing, paid.Status)
}

func TestWalletService_PayForOrder_NotAwaitingPayment(t *testing.T) {
	service, txManager, _, _ := newWalletService(t)
	ctx := context.Background()

	customerID := uuid.New()
	order := &entity.Order{
		ID:         uuid.New(),
		CustomerID: customerID,
		Status:     entity.StatusPendingAdminApproval,
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)
	expectTransaction(t, txManager, factory)

	txOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	paid, err := service.PayForOrder(ctx, &usecase.PayOrderInput{
		CustomerID: customerID,
		OrderID:    order.ID,
		Method:     constants.PaymentMethodWallet,
	})
	require.Error(t, err)
	assert.Nil(t, paid)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ORDER_NOT_PAYABLE", appErr.ErrorCode())
}

func TestWalletService_PayForOrder_AlreadyPaid(t *testing.T) {
	service, txManager, _, _ := newWalletService(t)
	ctx := context.Background()

	customerID := uuid.New()
	order := &entity.Order{
		ID:         uuid.New(),
		CustomerID: customerID,
		Status:     entity.StatusPendingPayment,
		Paid:       true,
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)
	expectTransaction(t, txManager, factory)

	txOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	paid, err := service.PayForOrder(ctx, &usecase.PayOrderInput{
		CustomerID: customerID,
		OrderID:    order.ID,
		Method:     constants.PaymentMethodWallet,
	})
	require.Error(t, err)
	assert.Nil(t, paid)
	assert.ErrorIs(t, err, domainerrors.ErrOrderAlreadyPaid)
}

func TestWalletService_PayForOrder_WrongCustomer(t *testing.T) {
	service, txManager, _, _ := newWalletService(t)
	ctx := context.Background()

	order := &entity.Order{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		Status:     entity.StatusPendingPayment,
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)
	expectTransaction(t, txManager, factory)

	txOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	paid, err := service.PayForOrder(ctx, &usecase.PayOrderInput{
		CustomerID: uuid.New(),
		OrderID:    order.ID,
		Method:     constants.PaymentMethodWallet,
	})
	require.Error(t, err)
	assert.Nil(t, paid)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestWalletService_PayForOrder_UnknownMethodRejected(t *testing.T) {
	service, _, _, _ := newWalletService(t)

	paid, err := service.PayForOrder(context.Background(), &usecase.PayOrderInput{
		CustomerID: uuid.New(),
		OrderID:    uuid.New(),
		Method:     "cheque",
	})
	require.Error(t, err)
	assert.Nil(t, paid)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestWalletService_GetWallet_NotFound(t *testing.T) {
	service, _, walletRepo, _ := newWalletService(t)
	ctx := context.Background()

	userID := uuid.New()
	walletRepo.EXPECT().FindByUser(ctx, userID).Return(nil, repository.ErrWalletNotFound)

	wallet, err := service.GetWallet(ctx, userID)
	require.Error(t, err)
	assert.Nil(t, wallet)
	assert.ErrorIs(t, err, domainerrors.ErrWalletNotFound)
}

func TestWalletService_ListTransactions(t *testing.T) {
	service, _, walletRepo, _ := newWalletService(t)
	ctx := context.Background()

	userID := uuid.New()
	txns := []*entity.WalletTransaction{
		{UserID: userID, Amount: 10000, Type: entity.TransactionTopUp, Status: entity.TransactionSuccess},
		{UserID: userID, Amount: -5300, Type: entity.TransactionOrderPayment, Status: entity.TransactionSuccess},
	}
	walletRepo.EXPECT().ListTransactions(ctx, userID).Return(txns, nil)

	listed, err := service.ListTransactions(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, txns, listed)
}
