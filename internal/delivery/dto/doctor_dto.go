package dto

type DoctorResponse struct {
	ID        int                 `json:"id"`
	Name      string              `json:"name"`
	Specialty []SpecialtyResponse `json:"specialty"`
	Status    *StatusResponse     `json:"status"`
}

// GetDoctorListRequest filters by name with a plain string: empty means no filter.
type GetDoctorListRequest struct {
	PageRequest
	Name        string `json:"name"`
	StatusID    *int   `json:"statusId"`
	SpecialtyID *int   `json:"specialtyId"`
}

type GetDoctorListResponse struct {
	Total int64            `json:"total"`
	Items []DoctorResponse `json:"items"`
}

type DoctorForm struct {
	Name      string `json:"name" validate:"required,min=2,max=255"`
	Specialty []int  `json:"specialty" validate:"unique,dive,gt=0"`
	StatusID  *int   `json:"statusId" validate:"omitempty,gt=0"`
}
