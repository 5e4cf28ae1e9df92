package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/yigit/studentms/internal/app/models"
	"github.com/yigit/studentms/internal/pkg/apperrors"
)

// TokenTTL is the fixed lifetime of an issued session token
const TokenTTL = time.Hour

// Token errors
var (
	ErrMissingToken = apperrors.ErrMissingToken
	ErrInvalidToken = apperrors.ErrInvalidToken
)

// TokenConfig defines token signing settings
type TokenConfig struct {
	SecretKey   string
	TokenIssuer string
}

// TokenAuthenticator issues and verifies signed session tokens
type TokenAuthenticator struct {
	config TokenConfig
	now    func() time.Time
}

// NewTokenAuthenticator creates a new token authenticator
func NewTokenAuthenticator(config TokenConfig) *TokenAuthenticator {
	return &TokenAuthenticator{
		config: config,
		now:    time.Now,
	}
}

// WithClock replaces the time source used for issuing and verifying tokens
func (a *TokenAuthenticator) WithClock(now func() time.Time) *TokenAuthenticator {
	a.now = now
	return a
}

// Claims defines the session claim carried inside a token
type Claims struct {
	UserID int64       `json:"id"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

// Issue signs a token for the given user that expires after TokenTTL
func (a *TokenAuthenticator) Issue(user *models.User) (string, error) {
	issuedAt := a.now()

	claims := &Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			Issuer:    a.config.TokenIssuer,
			Subject:   fmt.Sprintf("%d", user.ID),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(a.config.SecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify parses and validates a token. Every failure, expiry included, is ErrInvalidToken.
func (a *TokenAuthenticator) Verify(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(a.config.SecretKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(a.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID <= 0 || claims.Role == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// ExtractBearerToken returns the second space-delimited field of the Authorization header
func ExtractBearerToken(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 || parts[1] == "" {
		return "", ErrMissingToken
	}
	return parts[1], nil
}
