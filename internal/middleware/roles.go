package middleware

import "github.com/gofiber/fiber/v2"

// RequireRole returns a middleware handler that allows only callers whose role
// is one of roles. It must run after Auth, which stores the role in c.Locals.
//
//	api.Put("/players/:name/index", middleware.RequireRole(middleware.RoleAdmin, middleware.RoleManager), ...)
//
// A missing role and a role that isn't allowed both get 403 Forbidden: the
// caller is authenticated, just not authorized.
func RequireRole(roles ...Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userRole, ok := c.Locals(LocalUserRole).(string)
		if !ok || userRole == "" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "forbidden",
			})
		}

		for _, role := range roles {
			if Role(userRole) == role {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "insufficient permissions",
		})
	}
}
