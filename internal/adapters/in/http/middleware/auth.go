// Package middleware provides authentication and authorization for the HTTP API.
//
// Every request carries a bearer token; Authenticate verifies it and resolves
// the caller into a kernel.Actor which downstream handlers read from the echo
// context. Tenant identity always comes from the verified token, never from a
// client-supplied field.
package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"supplychain/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// actorContextKey is the echo context key under which the resolved actor is stored.
const actorContextKey = "actor"

// Claims defines the token payload issued to agency, head-office and
// logistics users.
type Claims struct {
	Role     string `json:"role"`
	TenantID string `json:"tenantId"`
	jwt.RegisteredClaims
}

// GenerateToken signs a token for the given actor. Used by the login flow and
// by tests; the lifecycle API itself only verifies tokens.
func GenerateToken(secret []byte, actor kernel.Actor, ttl time.Duration) (string, error) {
	if err := actor.Validate(); err != nil {
		return "", err
	}

	claims := &Claims{
		Role:     actor.Role().String(),
		TenantID: actor.TenantID().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// Authenticate verifies the bearer token and stores the resolved actor in the
// request context. Requests without a valid token are rejected with 401.
func Authenticate(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return unauthorized(c, "Authorization header is required")
			}

			tokenString := strings.TrimPrefix(header, "Bearer ")
			if tokenString == header {
				return unauthorized(c, "Invalid token format")
			}

			claims := &Claims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return secret, nil
			})
			if err != nil || !token.Valid {
				return unauthorized(c, "Invalid or expired token")
			}

			actor, err := resolveActor(claims)
			if err != nil {
				return unauthorized(c, "Token carries an unknown identity")
			}

			c.Set(actorContextKey, actor)
			return next(c)
		}
	}
}

// RequireRole rejects authenticated requests whose actor role is not in the
// allowed set. Must run after Authenticate.
func RequireRole(allowed ...kernel.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, err := ActorFromContext(c)
			if err != nil {
				return unauthorized(c, "Authentication is required")
			}

			for _, role := range allowed {
				if actor.Role() == role {
					return next(c)
				}
			}

			return c.JSON(http.StatusForbidden, echo.Map{
				"code":    http.StatusForbidden,
				"message": "You do not have permission to access this resource",
			})
		}
	}
}

// ActorFromContext returns the actor resolved by Authenticate.
func ActorFromContext(c echo.Context) (kernel.Actor, error) {
	actor, ok := c.Get(actorContextKey).(kernel.Actor)
	if !ok {
		return kernel.Actor{}, errors.New("no authenticated actor in request context")
	}
	return actor, nil
}

func resolveActor(claims *Claims) (kernel.Actor, error) {
	tenantID, err := kernel.UUIDFromString(claims.TenantID)
	if err != nil {
		return kernel.Actor{}, err
	}
	return kernel.NewActor(kernel.Role(claims.Role), tenantID)
}

func unauthorized(c echo.Context, message string) error {
	return c.JSON(http.StatusUnauthorized, echo.Map{
		"code":    http.StatusUnauthorized,
		"message": message,
	})
}
