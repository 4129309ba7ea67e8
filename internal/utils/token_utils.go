package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenType discriminates access tokens from refresh tokens. A token of one
// type never verifies as the other.
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// SessionClaims is the fixed, typed claim set embedded in every token this
// service issues. Subject carries the user ID.
type SessionClaims struct {
	UserName     string    `json:"user_name"`
	UserEmail    string    `json:"user_email"`
	Role         string    `json:"role"`
	TokenVersion int       `json:"token_version"`
	TokenType    TokenType `json:"type"`
	jwt.RegisteredClaims
}

// HasRequiredClaims reports whether the claims needed for session resolution
// are all present.
func (c *SessionClaims) HasRequiredClaims() bool {
	return c.Subject != "" && c.UserName != "" && c.UserEmail != "" && c.Role != ""
}

// SigningMethodFromAlgorithm resolves a configured algorithm name to a JWT
// signing method. Only HMAC variants are supported.
func SigningMethodFromAlgorithm(algorithm string) (jwt.SigningMethod, error) {
	switch algorithm {
	case "HS256":
		return jwt.SigningMethodHS256, nil
	case "HS384":
		return jwt.SigningMethodHS384, nil
	case "HS512":
		return jwt.SigningMethodHS512, nil
	default:
		return nil, fmt.Errorf("unsupported signing algorithm: %s", algorithm)
	}
}

// GenerateSessionJWT signs the given claims, stamping exp and iat from the
// provided TTL. Caller-supplied claim fields are preserved.
func GenerateSessionJWT(claims *SessionClaims, secret string, method jwt.SigningMethod, ttl time.Duration) (string, error) {
	now := time.Now()
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	claims.IssuedAt = jwt.NewNumericDate(now)
	token := jwt.NewWithClaims(method, claims)
	return token.SignedString([]byte(secret))
}

// ParseSessionJWT parses a token string and validates its signature and
// expiry. The returned error wraps jwt.ErrTokenExpired when the token is
// merely expired, letting callers distinguish that case for messaging.
func ParseSessionJWT(tokenString string, secret string) (*SessionClaims, error) {
	claims := &SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}

	return claims, nil
}
