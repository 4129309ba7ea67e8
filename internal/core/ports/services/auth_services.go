package services

import (
	"context"
	"time"

	"github.com/tajuwa/clickbit_backend/internal/core/domain"
	"github.com/tajuwa/clickbit_backend/internal/dto"
	"github.com/tajuwa/clickbit_backend/internal/utils"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// AuthSvcFacade is the account lifecycle controller: it orchestrates the
// password policy, credential store and token service for every identity
// operation. All methods return domain errors from apperrors; handlers map
// them to HTTP statuses.
type AuthSvcFacade interface {
	// Register validates, creates and immediately signs in a local account.
	// Returns the created user and a minted session token.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, string, error)

	// Login authenticates by email and password. The error for an unknown
	// email and a wrong password is identical.
	Login(ctx context.Context, req dto.LoginRequest) (*domain.User, string, error)

	// LoginWithGoogle exchanges an OAuth authorization code for a validated
	// identity, creating the user on first sight, and mints a session token.
	LoginWithGoogle(ctx context.Context, code string) (*domain.User, string, error)

	// Logout invalidates all outstanding tokens for the user.
	Logout(ctx context.Context, userID string) error

	// ChangePassword rotates the password after verifying the current one,
	// invalidating outstanding tokens.
	ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) error

	// UpdateProfile overwrites only the provided fields and returns the
	// refreshed user.
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error)
}

// UserSvcFacade exposes user lookups needed outside the lifecycle flows
// (session resolution, the /me endpoint).
type UserSvcFacade interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// TokenSvcFacade defines the interface for token management services.
type TokenSvcFacade interface {
	// CreateAccessToken mints a short-lived access token for the user.
	CreateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// CreateRefreshToken mints a long-lived refresh token for the user.
	CreateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// VerifyToken decodes and checks a token of the expected type. It returns
	// apperrors.ErrTokenExpired for expiry and apperrors.ErrUnauthorized for
	// any other failure.
	VerifyToken(ctx context.Context, tokenString string, expectedType utils.TokenType) (*utils.SessionClaims, error)
}

// GoogleOAuthSvcFacade defines the Google OAuth operations the auth service consumes.
type GoogleOAuthSvcFacade interface {
	// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)

	// ValidateGoogleIDToken validates an ID token string from Google and returns its payload.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
