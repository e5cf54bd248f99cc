package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"
	"waypoint-route-service/internal/adapters/export"
	"waypoint-route-service/internal/domain"
	"waypoint-route-service/internal/ports"
	"waypoint-route-service/internal/services"
	"waypoint-route-service/internal/session"

	log "github.com/sirupsen/logrus"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler downloads a session's route as a spreadsheet.
type ExportHandler struct {
	Sessions *session.Registry
	Roster   ports.TechnicianRepository // optional
}

func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	store, ok := sessionStore(w, r, h.Sessions)
	if !ok {
		return
	}

	var technicians []domain.Technician
	if h.Roster != nil {
		var err error
		technicians, err = h.Roster.ListTechnicians(r.Context())
		if err != nil {
			log.WithError(err).Error("list technicians for export failed")
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}
	}

	var buf bytes.Buffer
	if err := export.WriteRouteWorkbook(&buf, services.SortWaypoints(store.List()), technicians); err != nil {
		log.WithError(err).Error("export route workbook failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	filename := fmt.Sprintf("route-%s.xlsx", time.Now().Format("20060102-150405"))
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.WithError(err).Warn("write export response failed")
	}
}
