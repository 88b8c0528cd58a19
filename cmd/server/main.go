// cmd/server/main.go
// This is the entry point for the Golf Handicap API server.
// The cmd/ folder holds executable binaries; internal/ holds the packages they are built from.
package main

import (
	"log"

	"github.com/trentd187/golf-handicap/internal/config"
	"github.com/trentd187/golf-handicap/internal/database"
	"github.com/trentd187/golf-handicap/internal/server"
)

func main() {
	// Load configuration from environment variables (and optionally a .env file).
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	// Run any pending SQL migrations before accepting traffic, so the courses,
	// tees and players tables always match the code.
	if err := database.RunMigrations(cfg.MigrationsPath, cfg.DatabaseURL); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	app := server.New(cfg, db)

	log.Printf("Starting server on port %s (%s), default format %q", cfg.Port, cfg.Env, cfg.DefaultFormat)
	log.Fatal(app.Listen(":" + cfg.Port))
}
