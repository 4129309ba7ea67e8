package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tajuwa/clickbit_backend/internal/apperrors"
	"github.com/tajuwa/clickbit_backend/internal/core/domain"
	portsrepo "github.com/tajuwa/clickbit_backend/internal/core/ports/repositories"
	"github.com/tajuwa/clickbit_backend/internal/models"
)

type PgxUserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a pgx-backed user repository.
func NewUserRepository(db *pgxpool.Pool) portsrepo.UserRepository {
	return &PgxUserRepository{db: db}
}

// Ensure PgxUserRepository implements portsrepo.UserRepository
var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

const userColumns = `id, first_name, last_name, email, password, role, auth_provider, provider_id,
	is_active, is_verified, token_version, last_login, phone, avatar_url, created_at, updated_at, deleted_at`

// Helper to convert domain.User to models.User
func toModelUser(d domain.User) models.User {
	return models.User{
		UserID:       d.UserID,
		FirstName:    d.FirstName,
		LastName:     toNullString(d.LastName),
		Email:        d.Email,
		Password:     toNullString(d.PasswordHash),
		Role:         string(d.Role),
		AuthProvider: string(d.AuthProvider),
		ProviderID:   toNullString(d.ProviderID),
		IsActive:     d.IsActive,
		IsVerified:   d.IsVerified,
		TokenVersion: d.TokenVersion,
		LastLogin:    toNullTime(d.LastLogin),
		Phone:        toNullString(d.Phone),
		AvatarURL:    toNullString(d.AvatarURL),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
		DeletedAt:    toNullTime(d.DeletedAt),
	}
}

// Helper to convert models.User to domain.User
func toDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		FirstName:    m.FirstName,
		LastName:     m.LastName.String,
		Email:        m.Email,
		PasswordHash: m.Password.String,
		Role:         domain.UserRole(m.Role),
		AuthProvider: domain.AuthProvider(m.AuthProvider),
		ProviderID:   m.ProviderID.String,
		IsActive:     m.IsActive,
		IsVerified:   m.IsVerified,
		TokenVersion: m.TokenVersion,
		LastLogin:    fromNullTime(m.LastLogin),
		Phone:        m.Phone.String,
		AvatarURL:    m.AvatarURL.String,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		DeletedAt:    fromNullTime(m.DeletedAt),
	}
}

func toNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func toNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func fromNullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.FirstName,
		&m.LastName,
		&m.Email,
		&m.Password,
		&m.Role,
		&m.AuthProvider,
		&m.ProviderID,
		&m.IsActive,
		&m.IsVerified,
		&m.TokenVersion,
		&m.LastLogin,
		&m.Phone,
		&m.AvatarURL,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	d := toDomainUser(m)
	return &d, nil
}

func (r *PgxUserRepository) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	m := toModelUser(user)
	query := `
        INSERT INTO users (id, first_name, last_name, email, password, role, auth_provider, provider_id,
            is_active, is_verified, token_version, phone, avatar_url, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
        RETURNING ` + userColumns + `;`

	saved, err := scanUser(r.db.QueryRow(ctx, query,
		m.UserID,
		m.FirstName,
		m.LastName,
		m.Email,
		m.Password,
		m.Role,
		m.AuthProvider,
		m.ProviderID,
		m.IsActive,
		m.IsVerified,
		m.TokenVersion,
		m.Phone,
		m.AvatarURL,
		m.CreatedAt,
		m.UpdatedAt,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, apperrors.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return saved, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 AND deleted_at IS NULL;`
	user, err := scanUser(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID %s: %w", userID, err)
	}
	return user, nil
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 AND deleted_at IS NULL;`
	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return user, nil
}

func (r *PgxUserRepository) FindUserByProviderID(ctx context.Context, provider domain.AuthProvider, providerID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE auth_provider = $1 AND provider_id = $2 AND deleted_at IS NULL;`
	user, err := scanUser(r.db.QueryRow(ctx, query, string(provider), providerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by provider details: %w", err)
	}
	return user, nil
}

func (r *PgxUserRepository) UpdateProfile(ctx context.Context, user domain.User) (*domain.User, error) {
	m := toModelUser(user)
	query := `
        UPDATE users
        SET first_name = $1, last_name = $2, phone = $3, avatar_url = $4, updated_at = now()
        WHERE id = $5 AND deleted_at IS NULL
        RETURNING ` + userColumns + `;`

	updated, err := scanUser(r.db.QueryRow(ctx, query,
		m.FirstName,
		m.LastName,
		m.Phone,
		m.AvatarURL,
		m.UserID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update user profile: %w", err)
	}
	return updated, nil
}

func (r *PgxUserRepository) UpdateLastLogin(ctx context.Context, userID string, loginAt time.Time) error {
	query := `
        UPDATE users
        SET last_login = $1, updated_at = now()
        WHERE id = $2 AND deleted_at IS NULL;`
	cmdTag, err := r.db.Exec(ctx, query, loginAt, userID)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdatePassword stores the new hash and bumps token_version in a single
// statement so the rotation and the invalidation cannot drift.
func (r *PgxUserRepository) UpdatePassword(ctx context.Context, userID string, passwordHash string) error {
	query := `
        UPDATE users
        SET password = $1, token_version = token_version + 1, updated_at = now()
        WHERE id = $2 AND deleted_at IS NULL;`
	cmdTag, err := r.db.Exec(ctx, query, passwordHash, userID)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) IncrementTokenVersion(ctx context.Context, userID string) error {
	query := `
        UPDATE users
        SET token_version = token_version + 1, updated_at = now()
        WHERE id = $1 AND deleted_at IS NULL;`
	cmdTag, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to increment token version: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time) error {
	query := `
        UPDATE users
        SET deleted_at = $1, updated_at = $1
        WHERE id = $2 AND deleted_at IS NULL;`
	cmdTag, err := r.db.Exec(ctx, query, deletedAt, userID)
	if err != nil {
		return fmt.Errorf("failed to mark user as deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
