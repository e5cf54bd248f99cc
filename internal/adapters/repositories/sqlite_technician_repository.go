package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"waypoint-route-service/internal/domain"
	"waypoint-route-service/internal/platform/obs"
)

// SQLite-backed implementation of the TechnicianRepository port.
type SqliteTechnicianRepository struct{ DB *sql.DB }

func NewSqliteTechnicianRepository(db *sql.DB) *SqliteTechnicianRepository {
	return &SqliteTechnicianRepository{DB: db}
}

// Return the full roster ordered by id.
func (s *SqliteTechnicianRepository) ListTechnicians(ctx context.Context) (_ []domain.Technician, err error) {
	defer obs.Time(ctx, "technicians.List")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite technician repository: DB is nil")
	}

	query := `
	SELECT
		technician_id,
		name,
		phone,
		zone
	FROM technicians
	ORDER BY technician_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list technicians: query technicians table: %w", err)
	}
	defer rows.Close()

	technicians := make([]domain.Technician, 0, 16)
	for rows.Next() {
		var t domain.Technician
		if err := rows.Scan(&t.TechnicianID, &t.Name, &t.Phone, &t.Zone); err != nil {
			return nil, fmt.Errorf("list technicians: scan row: %w", err)
		}
		technicians = append(technicians, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list technicians: row iteration: %w", err)
	}

	return technicians, nil
}
