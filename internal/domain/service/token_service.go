package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by the JWT tokens.
type Claims struct {
	UserID string
	Roles  []string
	Type   string // "access" or "refresh"
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases. The roles
// carried in the access token are the caller's granted role set consumed by
// the authorization middleware.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given user.
	GenerateTokens(userID string, roles []string) (accessToken string, refreshToken string, err error)

	// ValidateToken checks the validity of a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
