// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"chow/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string
	Phone    string
	Password string
	Role     entity.Role
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Phone    string
	Password string
}

// LogoutInput carries the session token to revoke.
type LogoutInput struct {
	Token string
}

// ApproveUserInput defines an admin decision on a pending seller or courier.
type ApproveUserInput struct {
	UserID  uuid.UUID
	Approve bool
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the session token after a successful login.
type LoginOutput struct {
	Token string
	User  *entity.User
}

// AuthUsecase defines the interface for identity and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a new user together with a zero-balance wallet.
	// Sellers and couriers start in the pending approval state.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login verifies the phone/password pair and issues a session token,
	// revoking any previously issued token for the same user.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Logout revokes a session token. Revoking an unknown token is a no-op.
	Logout(ctx context.Context, input *LogoutInput) error

	// ApproveUser records an admin's decision on a pending seller or courier.
	ApproveUser(ctx context.Context, input *ApproveUserInput) (*entity.User, error)
}
