package ports

import (
	"context"
	"waypoint-route-service/internal/domain"
)

// Port: a boundary for retrieving the technician roster from a data source.
type TechnicianRepository interface {
	ListTechnicians(ctx context.Context) ([]domain.Technician, error)
}
