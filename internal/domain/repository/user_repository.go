package repository

import (
	"context"

	"chow/internal/domain/entity"

	"github.com/google/uuid"
)

// UserRepository defines persistence operations for user identities.
type UserRepository interface {
	// Create persists a new user. Phone uniqueness is enforced by the store.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByPhone retrieves a user by their unique phone number.
	FindByPhone(ctx context.Context, phone string) (*entity.User, error)

	// UpdateApproval flips a user's approval status. Identity fields never change.
	UpdateApproval(ctx context.Context, id uuid.UUID, approval entity.Approval) error
}
