// Package middleware contains HTTP middleware functions for the handicap API.
// Middleware sits between the HTTP server and route handlers. It runs on every
// request that passes through it, making it the right place for cross-cutting
// concerns like authentication and role checks.
package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/trentd187/golf-handicap/internal/config"
)

// Role is a caller's permission level, carried in the token's "role" claim.
type Role string

const (
	RoleAdmin   Role = "admin"   // Full access
	RoleManager Role = "manager" // Can update the roster
	RoleUser    Role = "user"    // Can read reference data and calculate handicaps
)

// Keys under which Auth stores caller details in c.Locals.
const (
	LocalUserID   = "userID"
	LocalUserRole = "userRole"
)

// Claims defines the data we expect inside a bearer token payload:
// the standard registered claims plus the caller's role.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// Auth returns a Fiber middleware handler that:
//  1. Reads the token from the "Authorization: Bearer <token>" header
//  2. Verifies its HS256 signature against cfg.JWTSecret and its expiry
//  3. Stores the subject and role in c.Locals for downstream handlers
func Auth(cfg *config.Config) fiber.Handler {
	key := []byte(cfg.JWTSecret)
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing or invalid authorization header",
			})
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		claims := &Claims{}
		_, err := parser.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (interface{}, error) {
			if len(key) == 0 {
				return nil, errors.New("signing key not configured")
			}
			return key, nil
		})
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "token expired"
			}
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": msg})
		}

		if claims.Subject == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "token missing subject",
			})
		}

		c.Locals(LocalUserID, claims.Subject)
		c.Locals(LocalUserRole, string(roleFromClaim(claims.Role)))
		return c.Next()
	}
}

// roleFromClaim converts the raw role string from the token into a Role.
// Missing or unrecognised roles default to RoleUser (least privileged).
func roleFromClaim(s string) Role {
	switch Role(s) {
	case RoleAdmin, RoleManager:
		return Role(s)
	default:
		return RoleUser
	}
}
