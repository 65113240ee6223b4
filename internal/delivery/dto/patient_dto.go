package dto

type PatientResponse struct {
	ID     int             `json:"id"`
	Name   string          `json:"name"`
	Status *StatusResponse `json:"status"`
}

type GetPatientListRequest struct {
	PageRequest
	Name     *string `json:"name"`
	StatusID *int    `json:"statusId"`
}

type GetPatientListResponse struct {
	Total int64             `json:"total"`
	Items []PatientResponse `json:"items"`
}

type PatientForm struct {
	Name     string `json:"name" validate:"required,min=2,max=255"`
	StatusID *int   `json:"statusId" validate:"omitempty,gt=0"`
}
