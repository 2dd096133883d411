// Package sessiontoken signs session tokens the way the identity service
// does, for tests that drive the authenticated routes.
package sessiontoken

import (
	"time"

	"loan-marketplace/internal/adapter/middleware"
	"loan-marketplace/internal/domain/user"

	"github.com/golang-jwt/jwt/v5"
)

func New(secret []byte, userID uint64, role user.Role, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := middleware.Claims{
		UserID: userID,
		Role:   string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}
