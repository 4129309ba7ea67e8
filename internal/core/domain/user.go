package domain

import "time"

// UserRole is the authorization role assigned to a user.
type UserRole string

const (
	RoleBuyer UserRole = "buyer"
	RoleAdmin UserRole = "admin"
)

// AuthProvider identifies how an account authenticates.
type AuthProvider string

const (
	ProviderLocal    AuthProvider = "local"
	ProviderGoogle   AuthProvider = "google"
	ProviderFacebook AuthProvider = "facebook"
)

// User represents a user of the application in the domain.
// PasswordHash is empty for federated (OAuth) identities.
type User struct {
	UserID       string       `json:"userID"` // Primary Key (UUID)
	FirstName    string       `json:"firstName"`
	LastName     string       `json:"lastName,omitempty"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	Role         UserRole     `json:"role"`
	AuthProvider AuthProvider `json:"authProvider"`
	ProviderID   string       `json:"-"`
	IsActive     bool         `json:"isActive"`
	IsVerified   bool         `json:"isVerified"`

	// TokenVersion is the per-user invalidation counter. It never decreases;
	// logout and password change bump it, and session resolution rejects
	// tokens minted against an older value.
	TokenVersion int `json:"-"`

	LastLogin *time.Time `json:"lastLogin,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	AvatarURL string     `json:"avatarUrl,omitempty"`

	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}

// IsLocal reports whether the account authenticates with a stored password.
func (u *User) IsLocal() bool {
	return u.AuthProvider == ProviderLocal
}
