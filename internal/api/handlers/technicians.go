package handlers

import (
	"net/http"
	"waypoint-route-service/internal/api/dto"
	"waypoint-route-service/internal/ports"

	log "github.com/sirupsen/logrus"
)

// TechnicianHandler exposes the read-only technician roster.
type TechnicianHandler struct {
	Repo ports.TechnicianRepository
}

func (h *TechnicianHandler) List(w http.ResponseWriter, r *http.Request) {
	techs, err := h.Repo.ListTechnicians(r.Context())
	if err != nil {
		log.WithError(err).Error("list technicians failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListTechniciansResponse{
		Technicians: make([]dto.TechnicianResponse, 0, len(techs)),
	}
	for _, t := range techs {
		res.Technicians = append(res.Technicians, dto.TechnicianResponse{
			TechnicianID: t.TechnicianID,
			Name:         t.Name,
			Phone:        t.Phone,
			Zone:         t.Zone,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
