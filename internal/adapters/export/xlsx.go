package export

import (
	"fmt"
	"io"
	"waypoint-route-service/internal/domain"

	"github.com/xuri/excelize/v2"
)

const (
	RouteSheet       = "Route"
	TechniciansSheet = "Technicians"
)

var (
	routeHeader      = []any{"Order", "Label", "Phone", "Latitude", "Longitude", "Date", "Time"}
	technicianHeader = []any{"ID", "Name", "Phone", "Zone"}
)

// WriteRouteWorkbook writes waypoints (already in display order) and an optional
// roster as an .xlsx workbook. Cells carry plain values only.
func WriteRouteWorkbook(w io.Writer, waypoints []domain.Waypoint, technicians []domain.Technician) error {
	f := excelize.NewFile()
	defer f.Close()

	// NewFile starts with "Sheet1"; rename it rather than leaving an empty sheet behind.
	if err := f.SetSheetName("Sheet1", RouteSheet); err != nil {
		return fmt.Errorf("export route: rename sheet: %w", err)
	}

	if err := writeRow(f, RouteSheet, 1, routeHeader); err != nil {
		return fmt.Errorf("export route: header: %w", err)
	}
	for i, wp := range waypoints {
		date := ""
		if wp.HasDate() {
			date = wp.ScheduledDate.Format(domain.DateLayout)
		}
		row := []any{i + 1, wp.Label, wp.ContactPhone, wp.Location.Lat, wp.Location.Lon, date, wp.ScheduledTime.String()}
		if err := writeRow(f, RouteSheet, i+2, row); err != nil {
			return fmt.Errorf("export route: waypoint %q: %w", wp.ID, err)
		}
	}

	if len(technicians) > 0 {
		if _, err := f.NewSheet(TechniciansSheet); err != nil {
			return fmt.Errorf("export route: add technicians sheet: %w", err)
		}
		if err := writeRow(f, TechniciansSheet, 1, technicianHeader); err != nil {
			return fmt.Errorf("export route: technicians header: %w", err)
		}
		for i, t := range technicians {
			row := []any{t.TechnicianID, t.Name, t.Phone, t.Zone}
			if err := writeRow(f, TechniciansSheet, i+2, row); err != nil {
				return fmt.Errorf("export route: technician %d: %w", t.TechnicianID, err)
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("export route: write workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}
