package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims are the verified contents of an access token.
type Claims struct {
	UserID   uuid.UUID `json:"-"`
	Username string    `json:"username"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken issues an access token for the user.
	GenerateToken(userID uuid.UUID, username string) (string, error)

	// ValidateToken verifies signature and expiry and returns the claims.
	ValidateToken(tokenString string) (*Claims, error)
}
