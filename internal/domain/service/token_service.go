package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims are the verified contents of an access token.
type Claims struct {
	AccountID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService issues and verifies access tokens.
type TokenService interface {
	// GenerateAccessToken signs a token whose subject is accountID.
	GenerateAccessToken(accountID uuid.UUID) (string, error)

	// ValidateToken verifies signature and expiry and returns the claims.
	ValidateToken(tokenString string) (*Claims, error)

	// AccessTokenTTL is the lifetime of tokens issued by GenerateAccessToken.
	AccessTokenTTL() time.Duration
}
