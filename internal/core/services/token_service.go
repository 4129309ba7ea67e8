package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tajuwa/clickbit_backend/internal/apperrors"
	"github.com/tajuwa/clickbit_backend/internal/core/domain"
	portssvc "github.com/tajuwa/clickbit_backend/internal/core/ports/services"
	"github.com/tajuwa/clickbit_backend/internal/platform/config"
	"github.com/tajuwa/clickbit_backend/internal/utils"
)

// tokenService implements TokenSvcFacade on top of the JWT helpers in utils.
// It owns the mapping from a user record to the typed session claim set.
type tokenService struct {
	cfg    *config.Config
	method jwt.SigningMethod
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	method, err := utils.SigningMethodFromAlgorithm(cfg.Algorithm)
	if err != nil {
		// LoadConfig rejects unsupported algorithms, so this only guards
		// hand-built configs in tests.
		method = jwt.SigningMethodHS256
	}
	return &tokenService{cfg: cfg, method: method}
}

func (s *tokenService) claimsFor(user *domain.User, tokenType utils.TokenType) *utils.SessionClaims {
	return &utils.SessionClaims{
		UserName:     user.FirstName,
		UserEmail:    user.Email,
		Role:         string(user.Role),
		TokenVersion: user.TokenVersion,
		TokenType:    tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: user.UserID,
		},
	}
}

// CreateAccessToken mints a short-lived access token embedding the user's
// current token_version.
func (s *tokenService) CreateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	ttl := s.cfg.AccessTokenTTL()
	expiryTime := time.Now().Add(ttl)

	token, err := utils.GenerateSessionJWT(s.claimsFor(user, utils.TokenTypeAccess), s.cfg.SecretKey, s.method, ttl)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiryTime, nil
}

// CreateRefreshToken mints a refresh token with the configured fixed TTL.
func (s *tokenService) CreateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	ttl := s.cfg.RefreshTokenTTL()
	expiryTime := time.Now().Add(ttl)

	token, err := utils.GenerateSessionJWT(s.claimsFor(user, utils.TokenTypeRefresh), s.cfg.SecretKey, s.method, ttl)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiryTime, nil
}

// VerifyToken decodes and signature-checks a token. Expiry is reported as
// ErrTokenExpired; every other failure, including a type mismatch, collapses
// into ErrUnauthorized so callers behave identically for all of them.
func (s *tokenService) VerifyToken(ctx context.Context, tokenString string, expectedType utils.TokenType) (*utils.SessionClaims, error) {
	claims, err := utils.ParseSessionJWT(tokenString, s.cfg.SecretKey)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrUnauthorized
	}

	if claims.TokenType != expectedType {
		return nil, apperrors.ErrUnauthorized
	}

	return claims, nil
}
