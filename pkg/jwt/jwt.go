package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// Claims represents admin session token claims. SessionID ties the token
// to a server-side session record, so a signed token alone is not enough
// to pass the guard once the session has been revoked.
type Claims struct {
	AdminID   uuid.UUID `json:"adminId"`
	Email     string    `json:"email"`
	SessionID string    `json:"sessionId"`
	jwt.RegisteredClaims
}

// Service signs and verifies admin session tokens
type Service struct {
	secret        []byte
	sessionExpiry time.Duration
}

var signToken = func(token *jwt.Token, secret []byte) (string, error) {
	return token.SignedString(secret)
}

// NewService creates a new JWT service
func NewService(secret string, sessionExpiry time.Duration) *Service {
	return &Service{
		secret:        []byte(secret),
		sessionExpiry: sessionExpiry,
	}
}

// SessionExpiry returns the configured session token lifetime
func (s *Service) SessionExpiry() time.Duration {
	return s.sessionExpiry
}

// GenerateSessionToken generates a signed, expiring session token
func (s *Service) GenerateSessionToken(adminID uuid.UUID, email, sessionID string) (string, error) {
	now := time.Now()
	claims := &Claims{
		AdminID:   adminID,
		Email:     email,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return signToken(token, s.secret)
}

// ValidateToken verifies signature and expiry and returns the claims
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
