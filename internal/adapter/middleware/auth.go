package middleware

import (
	"errors"
	"net/http"
	"strings"

	"loan-marketplace/internal/domain/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	SessionCookie = "session"
	sessionCtxKey = "session"
)

var errNoToken = errors.New("missing session token")

type Session struct {
	UserID uint64
	Role   user.Role
}

// Claims mirror the token issued by the identity service.
type Claims struct {
	UserID uint64 `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Auth verifies an HS256 session from the Authorization header or the
// session cookie. Requests without a valid session get 401.
func Auth(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s, err := parseSession(c, secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
			}
			SetSession(c, s)
			return next(c)
		}
	}
}

// RequireRole must run after Auth; a session with another role gets 403.
func RequireRole(roles ...user.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s, ok := SessionFrom(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
			}
			for _, r := range roles {
				if s.Role == r {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Forbidden"})
		}
	}
}

func SetSession(c echo.Context, s Session) { c.Set(sessionCtxKey, s) }

func SessionFrom(c echo.Context) (Session, bool) {
	s, ok := c.Get(sessionCtxKey).(Session)
	return s, ok
}

func parseSession(c echo.Context, secret []byte) (Session, error) {
	raw := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
	if raw == "" {
		if ck, err := c.Cookie(SessionCookie); err == nil {
			raw = strings.TrimSpace(ck.Value)
		}
	}
	if raw == "" {
		return Session{}, errNoToken
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Session{}, err
	}

	role := user.Role(claims.Role)
	if claims.UserID == 0 || !role.Valid() {
		return Session{}, errors.New("session token missing userId or role")
	}
	return Session{UserID: claims.UserID, Role: role}, nil
}

func bearerToken(h string) string {
	parts := strings.Fields(h)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
