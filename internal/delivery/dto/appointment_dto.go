package dto

type AppointmentResponse struct {
	ID              int               `json:"id"`
	Patient         PatientResponse   `json:"patient"`
	Doctor          DoctorResponse    `json:"doctor"`
	Specialty       SpecialtyResponse `json:"specialty"`
	SpecialtyIDs    []int             `json:"specialtyIds,omitempty"`
	AppointmentDate string            `json:"appointmentDate"`
	Observation     string            `json:"observation"`
}

type GetAppointmentListRequest struct {
	PageRequest
	PatientName *string `json:"patientName"`
	DoctorName  *string `json:"doctorName"`
	SpecialtyID *int    `json:"specialtyId"`
}

type GetAppointmentListResponse struct {
	Total int64                 `json:"total"`
	Items []AppointmentResponse `json:"items"`
}

// AppointmentForm references related records by id. The first specialty id
// becomes the appointment's primary specialty.
type AppointmentForm struct {
	PatientID       int    `json:"patientId" validate:"required,gt=0"`
	DoctorID        int    `json:"doctorId" validate:"required,gt=0"`
	SpecialtyID     []int  `json:"specialtyId" validate:"required,min=1,unique,dive,gt=0"`
	AppointmentDate string `json:"appointmentDate" validate:"required,datetime_local"`
	Observation     string `json:"observation" validate:"max=2000"`
}
