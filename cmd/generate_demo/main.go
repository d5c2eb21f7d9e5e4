// Command generate_demo creates a fresh demo database holding the
// demonstration genres, books, sellers and sales.
// Usage: go run cmd/generate_demo/main.go [--db path/to/demo.db]
package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/AFCVentura/Bookstore/internal/config"
	"github.com/AFCVentura/Bookstore/internal/database"
	"github.com/AFCVentura/Bookstore/internal/seeding"
)

func main() {
	dbPath := pflag.String("db", config.DefaultDemoDatabasePath, "path to the demo database file")
	pflag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(*dbPath), 0o755); err != nil {
		log.Fatalf("Failed to create demo directory: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	result, err := seeding.NewSeeder(db, nil).Seed(context.Background())
	if err != nil {
		log.Fatalf("Failed to seed demo database: %v", err)
	}

	log.Printf("Demo database generated successfully: %s", result)
}
