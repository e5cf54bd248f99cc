package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createTechniciansQuery := `
	CREATE TABLE IF NOT EXISTS technicians (
		technician_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		zone TEXT NOT NULL DEFAULT ''
	);
	`

	createRouteCacheQuery := `
	CREATE TABLE IF NOT EXISTS route_cache (
		cache_key TEXT PRIMARY KEY,
		geometry BLOB NOT NULL,
		created_at INTEGER NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_route_cache_created_at
	ON route_cache(created_at);
	`

	statements := []string{
		createTechniciansQuery,
		createRouteCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type TechnicianSeed struct {
	TechnicianID int    `json:"technician_id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Zone         string `json:"zone"`
}

// Populate the technicians table from a JSON file.
func SeedTechniciansFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed technicians: read %q: %w", jsonPath, err)
	}

	var data []TechnicianSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed technicians: parse json: %w", err)
	}

	rows := make([]TechnicianSeed, 0, len(data))
	for i, item := range data {
		if item.TechnicianID <= 0 {
			return fmt.Errorf("seed technicians: invalid technician_id at index %d: %d", i+1, item.TechnicianID)
		}

		name := strings.TrimSpace(item.Name)
		if name == "" {
			return fmt.Errorf("seed technicians: item at index %d: name cannot be empty", i+1)
		}
		rows = append(rows, TechnicianSeed{
			TechnicianID: item.TechnicianID,
			Name:         name,
			Phone:        strings.TrimSpace(item.Phone),
			Zone:         strings.TrimSpace(item.Zone),
		})
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed technicians: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT OR REPLACE INTO technicians (
		technician_id,
		name,
		phone,
		zone
	)
	VALUES (?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed technicians: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.Exec(r.TechnicianID, r.Name, r.Phone, r.Zone); err != nil {
			return fmt.Errorf("seed technicians: insert technician_id=%d: %w", r.TechnicianID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed technicians: commit tx: %w", err)
	}

	return nil
}
