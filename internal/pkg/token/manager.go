// FILE: internal/pkg/token/manager.go
package token

import (
	"errors"
	"time"

	"consulta-ai-be/internal/pkg/apperr"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims carries the verified identity embedded in a bearer token.
type Claims struct {
	jwt.RegisteredClaims
	UserId string `json:"user_id"`
	Email  string `json:"email"`
}

// Manager signs and verifies bearer tokens. The signing secret is fixed at
// construction; rotating it invalidates every outstanding token.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (m *Manager) Issue(userId uuid.UUID, email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		UserId: userId.String(),
		Email:  email,
	})

	return token.SignedString(m.secret)
}

// Verify validates signature and expiry; the token carries everything needed,
// no stored state is consulted.
func (m *Manager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperr.ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperr.ErrExpiredToken
		}
		return nil, apperr.ErrInvalidToken
	}
	if !parsed.Valid {
		return nil, apperr.ErrInvalidToken
	}

	if _, err := uuid.Parse(claims.UserId); err != nil {
		return nil, apperr.ErrInvalidToken
	}

	return claims, nil
}
