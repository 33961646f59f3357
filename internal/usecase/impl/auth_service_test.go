package impl

import (
	"context"
	"testing"

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

func newAuthService(t *testing.T) (usecase.AuthUsecase, *mockRepo.MockTransactionManager, *mockRepo.MockUserRepository, *mockSvc.MockPasswordHasher, *mockSvc.MockSessionStore) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	sessionStore := mockSvc.NewMockSessionStore(t)

	service := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		SessionStore: sessionStore,
		Logger:       newDiscardLogger(),
	})

	return service, txManager, userRepo, hasher, sessionStore
}

func TestAuthService_Register_CustomerIsConfirmedImmediately(t *testing.T) {
	service, txManager, _, hasher, _ := newAuthService(t)
	ctx := context.Background()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	txWalletRepo := mockRepo.NewMockWalletRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	factory.EXPECT().WalletRepo().Return(txWalletRepo)
	expectTransaction(t, txManager, factory)

	hasher.EXPECT().Hash("secret-password").Return("hashed", nil)

	userID := uuid.New()
	txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = userID
		}).
		Return(nil)
	txWalletRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Wallet")).
		Run(func(ctx context.Context, wallet *entity.Wallet) {
			assert.Equal(t, userID, wallet.UserID)
			assert.Zero(t, wallet.Balance)
		}).
		Return(nil)

	output, err := service.Register(ctx, &usecase.RegisterInput{
		Name:     "Alice",
		Phone:    "0912345678",
		Password: "secret-password",
		Role:     entity.RoleCustomer,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalConfirmed, output.User.Approval)
	assert.Equal(t, "hashed", output.User.PasswordHash)
}

func TestAuthService_Register_SellerStartsPending(t *testing.T) {
	service, txManager, _, hasher, _ := newAuthService(t)
	ctx := context.Background()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	txWalletRepo := mockRepo.NewMockWalletRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	factory.EXPECT().WalletRepo().Return(txWalletRepo)
	expectTransaction(t, txManager, factory)

	hasher.EXPECT().Hash("secret-password").Return("hashed", nil)
	txUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	txWalletRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Wallet")).Return(nil)

	output, err := service.Register(ctx, &usecase.RegisterInput{
		Name:     "Bob",
		Phone:    "0987654321",
		Password: "secret-password",
		Role:     entity.RoleSeller,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalPending, output.User.Approval)
}

func TestAuthService_Register_AdminRoleRejected(t *testing.T) {
	service, _, _, _, _ := newAuthService(t)

	output, err := service.Register(context.Background(), &usecase.RegisterInput{
		Name:     "Mallory",
		Phone:    "0911111111",
		Password: "secret-password",
		Role:     entity.RoleAdmin,
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthService_Login_Success(t *testing.T) {
	service, _, userRepo, hasher, sessionStore := newAuthService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:           uuid.New(),
		Phone:        "0912345678",
		PasswordHash: "hashed",
		Role:         entity.RoleCustomer,
		Approval:     entity.ApprovalConfirmed,
	}
	userRepo.EXPECT().FindByPhone(ctx, "0912345678").Return(user, nil)
	hasher.EXPECT().Check("secret-password", "hashed").Return(true)
	sessionStore.EXPECT().Issue(user.ID).Return("token-123")

	output, err := service.Login(ctx, &usecase.LoginInput{Phone: "0912345678", Password: "secret-password"})
	require.NoError(t, err)
	assert.Equal(t, "token-123", output.Token)
	assert.Equal(t, user, output.User)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	service, _, userRepo, hasher, _ := newAuthService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Phone: "0912345678", PasswordHash: "hashed"}
	userRepo.EXPECT().FindByPhone(ctx, "0912345678").Return(user, nil)
	hasher.EXPECT().Check("wrong", "hashed").Return(false)

	output, err := service.Login(ctx, &usecase.LoginInput{Phone: "0912345678", Password: "wrong"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownPhoneLooksLikeWrongPassword(t *testing.T) {
	service, _, userRepo, _, _ := newAuthService(t)
	ctx := context.Background()

	userRepo.EXPECT().FindByPhone(ctx, "0900000000").Return(nil, repository.ErrUserNotFound)

	output, err := service.Login(ctx, &usecase.LoginInput{Phone: "0900000000", Password: "whatever"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Logout(t *testing.T) {
	service, _, _, _, sessionStore := newAuthService(t)

	sessionStore.EXPECT().Revoke("token-123").Return()

	err := service.Logout(context.Background(), &usecase.LogoutInput{Token: "token-123"})
	require.NoError(t, err)
}

func TestAuthService_ApproveUser_ConfirmsPendingSeller(t *testing.T) {
	service, txManager, _, _, _ := newAuthService(t)
	ctx := context.Background()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	expectTransaction(t, txManager, factory)

	userID := uuid.New()
	pending := &entity.User{ID: userID, Role: entity.RoleSeller, Approval: entity.ApprovalPending}
	txUserRepo.EXPECT().FindByID(ctx, userID).Return(pending, nil)
	txUserRepo.EXPECT().UpdateApproval(ctx, userID, entity.ApprovalConfirmed).Return(nil)

	approved, err := service.ApproveUser(ctx, &usecase.ApproveUserInput{UserID: userID, Approve: true})
	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalConfirmed, approved.Approval)
}

func TestAuthService_ApproveUser_RejectionRevokesSession(t *testing.T) {
	service, txManager, _, _, sessionStore := newAuthService(t)
	ctx := context.Background()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	expectTransaction(t, txManager, factory)

	userID := uuid.New()
	pending := &entity.User{ID: userID, Role: entity.RoleCourier, Approval: entity.ApprovalPending}
	txUserRepo.EXPECT().FindByID(ctx, userID).Return(pending, nil)
	txUserRepo.EXPECT().UpdateApproval(ctx, userID, entity.ApprovalRejected).Return(nil)
	sessionStore.EXPECT().RevokeUser(userID).Return()

	rejected, err := service.ApproveUser(ctx, &usecase.ApproveUserInput{UserID: userID, Approve: false})
	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalRejected, rejected.Approval)
}

func TestAuthService_ApproveUser_CustomerNeedsNoApproval(t *testing.T) {
	service, txManager, _, _, _ := newAuthService(t)
	ctx := context.Background()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	expectTransaction(t, txManager, factory)

	userID := uuid.New()
	customer := &entity.User{ID: userID, Role: entity.RoleCustomer, Approval: entity.ApprovalConfirmed}
	txUserRepo.EXPECT().FindByID(ctx, userID).Return(customer, nil)

	approved, err := service.ApproveUser(ctx, &usecase.ApproveUserInput{UserID: userID, Approve: true})
	require.Error(t, err)
	assert.Nil(t, approved)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
