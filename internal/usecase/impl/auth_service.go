// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "chow/internal/delivery/context"
	"chow/internal/domain/entity"
	domainerrors "chow/internal/domain/errors"
	"chow/internal/domain/repository"
	"chow/internal/domain/service"
	"chow/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	sessionStore service.SessionStore
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	SessionStore service.SessionStore
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		sessionStore: params.SessionStore,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete registration process. The user and their
// zero-balance wallet are created in one transaction so no account ever
// exists without a wallet.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.Any("role", input.Role), slog.String("phone", input.Phone))

	// 1. Validate the requested role. Admin accounts are provisioned out of
	// band, never through self-registration.
	if !input.Role.IsValid() || input.Role == entity.RoleAdmin {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid role for registration")
	}

	// 2. Hash the password outside the transaction (bcrypt is CPU-bound).
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	// 3. Sellers and couriers start pending; customers are approved immediately.
	approval := entity.ApprovalConfirmed
	if input.Role.RequiresApproval() {
		approval = entity.ApprovalPending
	}

	newUser := &entity.User{
		Name:         input.Name,
		Phone:        input.Phone,
		PasswordHash: hashedPassword,
		Role:         input.Role,
		Approval:     approval,
	}

	// 4. Create the user and their wallet atomically.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		wallet := &entity.Wallet{UserID: newUser.ID, Balance: 0}
		if err := repoFactory.WalletRepo().Create(ctx, wallet); err != nil {
			return errors.Wrap(err, "failed to create wallet during registration")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("phone", input.Phone), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("role", input.Role), slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// Login orchestrates the login process. Issuing a new session token revokes
// any previously issued token for the same user.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("phone", input.Phone))

	// 1. Load the user by phone. An unknown phone is reported the same way as
	// a wrong password so login probing reveals nothing.
	loggedInUser, err := srv.userRepo.FindByPhone(ctx, input.Phone)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("phone", input.Phone))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by phone")
	}

	// 2. Check password outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, loggedInUser.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("phone", input.Phone))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	// 3. Issue a fresh session token; the store drops the previous one.
	token := srv.sessionStore.Issue(loggedInUser.ID)

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", loggedInUser.ID))

	return &usecase.LoginOutput{
		Token: token,
		User:  loggedInUser,
	}, nil
}

// Logout revokes a session token. Unknown tokens are ignored so logout is idempotent.
func (srv *authService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.log(ctx).Info("Logging out")

	srv.sessionStore.Revoke(input.Token)

	return nil
}

// ApproveUser records an admin's decision on a pending seller or courier.
func (srv *authService) ApproveUser(ctx context.Context, input *usecase.ApproveUserInput) (*entity.User, error) {
	srv.log(ctx).Info("Approving user", slog.Any("userID", input.UserID), slog.Bool("approve", input.Approve))

	var approvedUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		pendingUser, err := userRepo.FindByID(ctx, input.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user by id")
		}

		if !pendingUser.Role.RequiresApproval() {
			return domainerrors.ErrValidationFailed.WrapMessage("role does not require approval")
		}

		approval := entity.ApprovalConfirmed
		if !input.Approve {
			approval = entity.ApprovalRejected
		}

		if err := userRepo.UpdateApproval(ctx, pendingUser.ID, approval); err != nil {
			return errors.Wrap(err, "failed to update user approval")
		}

		pendingUser.Approval = approval
		approvedUser = pendingUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute user approval transaction", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user approval transaction")
	}

	// A rejected account must not keep an open session.
	if !input.Approve {
		srv.sessionStore.RevokeUser(approvedUser.ID)
	}

	return approvedUser, nil
}
