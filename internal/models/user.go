package models

import (
	"database/sql"
	"time"
)

// User is the database row shape for the users table. Nullable columns use
// sql.Null types; conversion to the domain representation happens in the
// repository layer.
type User struct {
	UserID       string         `db:"id"`
	FirstName    string         `db:"first_name"`
	LastName     sql.NullString `db:"last_name"`
	Email        string         `db:"email"`
	Password     sql.NullString `db:"password"` // bcrypt hash, NULL for OAuth accounts
	Role         string         `db:"role"`
	AuthProvider string         `db:"auth_provider"`
	ProviderID   sql.NullString `db:"provider_id"`
	IsActive     bool           `db:"is_active"`
	IsVerified   bool           `db:"is_verified"`
	TokenVersion int            `db:"token_version"`
	LastLogin    sql.NullTime   `db:"last_login"`
	Phone        sql.NullString `db:"phone"`
	AvatarURL    sql.NullString `db:"avatar_url"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
	DeletedAt    sql.NullTime   `db:"deleted_at"`
}
