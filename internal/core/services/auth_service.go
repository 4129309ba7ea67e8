package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tajuwa/clickbit_backend/internal/apperrors"
	"github.com/tajuwa/clickbit_backend/internal/core/domain"
	portsrepo "github.com/tajuwa/clickbit_backend/internal/core/ports/repositories"
	portssvc "github.com/tajuwa/clickbit_backend/internal/core/ports/services"
	"github.com/tajuwa/clickbit_backend/internal/dto"
	"github.com/tajuwa/clickbit_backend/internal/utils"
)

// authService is the account lifecycle controller. It validates credentials
// through the password policy, reads and writes the credential store, and
// mints session tokens. Domain failures come back as apperrors values;
// anything else is an infrastructure fault the handler turns opaque.
type authService struct {
	userRepo    portsrepo.UserRepository
	tokenSvc    portssvc.TokenSvcFacade
	googleOAuth portssvc.GoogleOAuthSvcFacade
}

// NewAuthService creates a new instance of authService.
func NewAuthService(userRepo portsrepo.UserRepository, tokenSvc portssvc.TokenSvcFacade, googleOAuth portssvc.GoogleOAuthSvcFacade) portssvc.AuthSvcFacade {
	return &authService{
		userRepo:    userRepo,
		tokenSvc:    tokenSvc,
		googleOAuth: googleOAuth,
	}
}

// normalizeEmail lower-cases and trims an address; applied before every
// store read or write so lookups stay case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, string, error) {
	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)
	email := normalizeEmail(req.Email)

	if firstName == "" || email == "" || req.Password == "" {
		return nil, "", apperrors.E(apperrors.ErrValidation, "All fields are required: firstName, email, and password")
	}

	if strength := utils.ValidatePasswordStrength(req.Password); !strength.IsValid {
		return nil, "", apperrors.E(apperrors.ErrValidation,
			"Password validation failed: "+strings.Join(strength.Errors, ", "))
	}

	_, err := s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		return nil, "", apperrors.E(apperrors.ErrDuplicate, "Email already registered")
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, "", fmt.Errorf("failed to check for existing email: %w", err)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         domain.RoleBuyer,
		AuthProvider: domain.ProviderLocal,
		IsActive:     true,
		IsVerified:   false, // verified out-of-band
		TokenVersion: 0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Lost a race with a concurrent registration for the same email.
			return nil, "", apperrors.E(apperrors.ErrDuplicate, "Email already registered")
		}
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, _, err := s.tokenSvc.CreateAccessToken(ctx, created)
	if err != nil {
		return nil, "", fmt.Errorf("failed to mint session token: %w", err)
	}

	return created, token, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*domain.User, string, error) {
	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, "", apperrors.E(apperrors.ErrValidation, "Email and password are required")
	}

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same message as a wrong password: never reveal which it was.
			return nil, "", apperrors.E(apperrors.ErrInvalidCredentials, "Invalid email or password")
		}
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	// Federated accounts have no stored password and cannot log in locally.
	if !user.IsLocal() || user.PasswordHash == "" || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, "", apperrors.E(apperrors.ErrInvalidCredentials, "Invalid email or password")
	}

	if !user.IsActive {
		return nil, "", apperrors.E(apperrors.ErrAccountDeactivated, "Account is deactivated")
	}

	return s.establishSession(ctx, user)
}

// establishSession stamps last_login and mints the session token.
func (s *authService) establishSession(ctx context.Context, user *domain.User) (*domain.User, string, error) {
	now := time.Now()
	if err := s.userRepo.UpdateLastLogin(ctx, user.UserID, now); err != nil {
		return nil, "", fmt.Errorf("failed to update last login: %w", err)
	}
	user.LastLogin = &now

	token, _, err := s.tokenSvc.CreateAccessToken(ctx, user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to mint session token: %w", err)
	}
	return user, token, nil
}

func (s *authService) LoginWithGoogle(ctx context.Context, code string) (*domain.User, string, error) {
	if code == "" {
		return nil, "", apperrors.E(apperrors.ErrValidation, "Authorization code is required")
	}

	oauth2Token, err := s.googleOAuth.ExchangeCodeForToken(ctx, code)
	if err != nil {
		return nil, "", apperrors.E(apperrors.ErrValidation, "Invalid or expired authorization code")
	}

	idTokenString, ok := oauth2Token.Extra("id_token").(string)
	if !ok || idTokenString == "" {
		return nil, "", fmt.Errorf("id_token missing from Google token response")
	}

	payload, err := s.googleOAuth.ValidateGoogleIDToken(ctx, idTokenString)
	if err != nil {
		return nil, "", apperrors.E(apperrors.ErrUnauthorized, "Invalid Google ID token")
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	emailVerified, _ := payload.Claims["email_verified"].(bool)
	providerID := payload.Subject

	if email == "" || providerID == "" {
		return nil, "", fmt.Errorf("essential claims missing from Google ID token")
	}
	email = normalizeEmail(email)

	user, err := s.userRepo.FindUserByProviderID(ctx, domain.ProviderGoogle, providerID)
	if errors.Is(err, apperrors.ErrNotFound) {
		// Fall back to email: an existing local account signs in as itself.
		user, err = s.userRepo.FindUserByEmail(ctx, email)
	}
	if errors.Is(err, apperrors.ErrNotFound) {
		user, err = s.createGoogleUser(ctx, name, email, providerID, emailVerified)
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to resolve Google user: %w", err)
	}

	if !user.IsActive {
		return nil, "", apperrors.E(apperrors.ErrAccountDeactivated, "Account is deactivated")
	}

	return s.establishSession(ctx, user)
}

func (s *authService) createGoogleUser(ctx context.Context, name, email, providerID string, emailVerified bool) (*domain.User, error) {
	firstName := strings.TrimSpace(name)
	lastName := ""
	if i := strings.LastIndex(firstName, " "); i > 0 {
		lastName = firstName[i+1:]
		firstName = strings.TrimSpace(firstName[:i])
	}
	if firstName == "" {
		firstName = strings.SplitN(email, "@", 2)[0]
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		Role:         domain.RoleBuyer,
		AuthProvider: domain.ProviderGoogle,
		ProviderID:   providerID,
		IsActive:     true,
		IsVerified:   emailVerified,
		TokenVersion: 0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return s.userRepo.CreateUser(ctx, user)
}

func (s *authService) Logout(ctx context.Context, userID string) error {
	err := s.userRepo.IncrementTokenVersion(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.E(apperrors.ErrNotFound, "User not found")
		}
		return fmt.Errorf("failed to invalidate session: %w", err)
	}
	return nil
}

func (s *authService) ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.E(apperrors.ErrNotFound, "User not found")
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	// Federated accounts have no password to rotate.
	if !user.IsLocal() || user.PasswordHash == "" || !utils.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return apperrors.E(apperrors.ErrValidation, "Current password is incorrect")
	}

	if strength := utils.ValidatePasswordStrength(req.NewPassword); !strength.IsValid {
		return apperrors.E(apperrors.ErrValidation,
			"New password validation failed: "+strings.Join(strength.Errors, ", "))
	}

	passwordHash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	// Stores the hash and bumps token_version in one statement.
	if err := s.userRepo.UpdatePassword(ctx, userID, passwordHash); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.E(apperrors.ErrNotFound, "User not found")
		}
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

func (s *authService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.E(apperrors.ErrNotFound, "User not found")
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if req.FirstName != nil {
		user.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		user.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Phone != nil {
		user.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.AvatarURL != nil {
		user.AvatarURL = strings.TrimSpace(*req.AvatarURL)
	}

	updated, err := s.userRepo.UpdateProfile(ctx, *user)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.E(apperrors.ErrNotFound, "User not found")
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return updated, nil
}
