package auth

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

// Identity is what a verified access token says about its bearer.
type Identity struct {
	UserID uuid.UUID
	Role   string
}

type Authenticator interface {
	GenerateTokens(userID uuid.UUID, role string) (string, string, error)
	ValidateAccessToken(token string) (Identity, error)
	ValidateRefreshToken(token string) (uuid.UUID, error)
}
