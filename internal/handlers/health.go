package handlers

import "github.com/gofiber/fiber/v2"

// HealthCheck handles GET /health.
// It returns {"status": "ok"} without touching the database or requiring a
// token, so load balancers and container probes can call it freely.
func HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
