package main

import (
	"delivery_orders/internal/config" // Custom import path (Config)
	"delivery_orders/internal/db"     // Custom import path (Database)
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration
	db.Migrate(cfg)            // Create users and orders tables
}
