// Command generate_demo writes the demo words, lectures and user into a SQLite file.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db] [-seed seed.yaml]
//
// Point DEMO_DATABASE_PATH at the file to serve it with `lexicard serve-demo`.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/mrlokans/lexicard/internal/database"
	"github.com/mrlokans/lexicard/internal/demo"
)

const defaultDemoDatabasePath = "./demo/demo.db"

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	seedPath := flag.String("seed", "", "YAML seed file (defaults to the built-in seed)")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(*dbPath), 0o755); err != nil {
		log.Fatalf("Failed to create demo directory: %v", err)
	}

	seed, err := loadSeed(*seedPath)
	if err != nil {
		log.Fatalf("Failed to load seed: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create demo database: %v", err)
	}
	defer db.Close()

	if err := demo.SeedDatabase(db, seed, 0, time.Now()); err != nil {
		log.Fatalf("Failed to seed demo database: %v", err)
	}

	log.Printf("Demo database ready, log in as %q", seed.User.Username)
}

func loadSeed(path string) (*demo.Seed, error) {
	if path == "" {
		return demo.DefaultSeed()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return demo.ParseSeed(data)
}
