package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	accessTTL  = 3 * 24 * time.Hour
	refreshTTL = 9 * 24 * time.Hour
)

// claims carries the viewer's role next to the registered claims so the
// dashboard can tell hosts from creators without a second lookup.
type claims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

type JWTAuthenticator struct {
	secret        string
	refreshSecret string
	aud           string
	iss           string
	now           func() time.Time
}

func NewJWTAuthenticator(secret, refreshSecret, aud, iss string) *JWTAuthenticator {
	return &JWTAuthenticator{
		secret:        secret,
		refreshSecret: refreshSecret,
		aud:           aud,
		iss:           iss,
		now:           time.Now,
	}
}

// GenerateTokens issues an access and a refresh token for userID.
func (a *JWTAuthenticator) GenerateTokens(userID uuid.UUID, role string) (string, string, error) {
	now := a.now()

	access := claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    a.iss,
			Audience:  jwt.ClaimStrings{a.aud},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTTL)),
		},
	}
	refresh := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    a.iss,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(refreshTTL)),
		},
	}

	accessToken, err := sign(access, a.secret)
	if err != nil {
		return "", "", err
	}
	refreshToken, err := sign(refresh, a.refreshSecret)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

func sign(c claims, secret string) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
}

// ValidateAccessToken verifies signature, expiry, issuer and audience and
// returns the bearer's identity.
func (a *JWTAuthenticator) ValidateAccessToken(token string) (Identity, error) {
	c, err := a.parse(token, a.secret, jwt.WithAudience(a.aud))
	if err != nil {
		return Identity{}, err
	}
	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: subject: %v", ErrInvalidToken, err)
	}
	return Identity{UserID: id, Role: c.Role}, nil
}

func (a *JWTAuthenticator) ValidateRefreshToken(token string) (uuid.UUID, error) {
	c, err := a.parse(token, a.refreshSecret)
	if err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: subject: %v", ErrInvalidToken, err)
	}
	return id, nil
}

func (a *JWTAuthenticator) parse(token, secret string, opts ...jwt.ParserOption) (*claims, error) {
	opts = append(opts,
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(a.iss),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithTimeFunc(a.now),
	)

	var c claims
	_, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return &c, nil
}
