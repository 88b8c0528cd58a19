// Package server wires the HTTP routes of the handicap API onto a Fiber app.
// It is kept separate from cmd/server so tests can build the exact same app
// against a test database.
package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"

	"github.com/trentd187/golf-handicap/internal/config"
	"github.com/trentd187/golf-handicap/internal/handlers"
	"github.com/trentd187/golf-handicap/internal/middleware"
)

// New builds the Fiber app with all middleware and routes registered.
func New(cfg *config.Config, db *gorm.DB) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "Golf Handicap API",
	})

	// --- Global middleware ---
	app.Use(recover.New())
	if !cfg.IsProduction() {
		// Request logging is noisy behind the production load balancer, which logs requests itself.
		app.Use(logger.New())
	}
	app.Use(cors.New())

	// --- Public routes ---
	app.Get("/health", handlers.HealthCheck)

	// --- Authenticated API routes ---
	// Every route under /api/v1 needs a valid bearer token.
	api := app.Group("/api/v1", middleware.Auth(cfg))

	// Reference data
	api.Get("/formats", handlers.GetFormats)
	api.Get("/clubs", handlers.SearchClubs(db))
	api.Get("/courses", handlers.GetCourses(db))
	api.Get("/courses/:id", handlers.GetCourse(db))

	// Roster
	api.Get("/players", handlers.GetPlayers(db))
	api.Put("/players/:name/index",
		middleware.RequireRole(middleware.RoleAdmin, middleware.RoleManager),
		handlers.UpdatePlayerIndex(db))

	// Course and playing handicaps for a group of players
	api.Post("/handicaps", handlers.CalculateHandicaps(db, cfg.DefaultFormat))

	return app
}
