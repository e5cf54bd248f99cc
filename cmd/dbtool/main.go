package main

import (
	"context"
	"database/sql"
	"waypoint-route-service/internal/adapters/cache"
	"waypoint-route-service/internal/adapters/repositories"
	"waypoint-route-service/internal/config"
	"waypoint-route-service/internal/platform/db"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// dbtool prepares storage ahead of the first server start: the SQLite schema
// and technician roster, plus the postgres route cache table when DATABASE_URL is set.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	sqliteDB, err := db.OpenSqlite(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer sqliteDB.Close()

	seedPath := config.Get("SEED_PATH", "data/seeds/technicians.json")
	initAndSeed(sqliteDB, seedPath)

	databaseURL := config.Get("DATABASE_URL", "")
	if databaseURL == "" {
		log.Println("DATABASE_URL not set, skipping postgres route cache.")
		return
	}

	pg, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pg.Close()

	log.Println("Creating postgres route cache table...")
	if err := cache.NewSQLRouteCache(pg, 0).EnsureSchema(context.Background()); err != nil {
		log.Fatalf("route cache schema failed: %v", err)
	}
	log.Println("Route cache ready.")
}

func initAndSeed(sqliteDB *sql.DB, seedPath string) {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(sqliteDB); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding technicians...")
	if err := repositories.SeedTechniciansFromJSON(sqliteDB, seedPath); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}
