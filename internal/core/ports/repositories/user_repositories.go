package repositories

import (
	"context"
	"time"

	"github.com/tajuwa/clickbit_backend/internal/core/domain"
)

// UserRepository is the persistence contract for user records. All lookup
// methods exclude soft-deleted rows and return apperrors.ErrNotFound when no
// row matches.
type UserRepository interface {
	// CreateUser inserts a new user and returns the stored row. A duplicate
	// email surfaces as apperrors.ErrDuplicate.
	CreateUser(ctx context.Context, user domain.User) (*domain.User, error)

	// FindUserByID retrieves a user by ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by exact (normalized) email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByProviderID retrieves a federated user by provider and external id.
	FindUserByProviderID(ctx context.Context, provider domain.AuthProvider, providerID string) (*domain.User, error)

	// UpdateProfile overwrites the profile fields (first/last name, phone,
	// avatar) of an existing user and returns the refreshed row.
	UpdateProfile(ctx context.Context, user domain.User) (*domain.User, error)

	// UpdateLastLogin records a successful login timestamp.
	UpdateLastLogin(ctx context.Context, userID string, loginAt time.Time) error

	// UpdatePassword stores a new password hash and bumps token_version in the
	// same statement, so the two can never drift.
	UpdatePassword(ctx context.Context, userID string, passwordHash string) error

	// IncrementTokenVersion bumps the invalidation counter, voiding all
	// previously issued tokens for the user.
	IncrementTokenVersion(ctx context.Context, userID string) error

	// MarkUserDeleted soft-deletes a user; subsequent lookups skip the row.
	MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time) error
}
