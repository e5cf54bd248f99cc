package dto

type TechnicianResponse struct {
	TechnicianID int    `json:"technician_id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Zone         string `json:"zone"`
}

type ListTechniciansResponse struct {
	Technicians []TechnicianResponse `json:"technicians"`
}
