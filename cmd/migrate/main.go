package main

import (
	"rental_booking/internal/config" // Custom import path (Config)
	"rental_booking/internal/db"     // Custom import path (Database)
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration

	db.Migrate(cfg.DatabaseURI) // Run schema migration against the configured database
}
