package entity

// Page is the offset window shared by every list query.
type Page struct {
	Limit  int
	Offset int
}

// NameFilter filters lookup tables (specialties, statuses) by name (ILIKE).
// Nil fields mean "no filter applied".
type NameFilter struct {
	Name *string
}

type PatientFilter struct {
	Name     *string
	StatusID *int
}

type DoctorFilter struct {
	Name        string // empty means no filter
	StatusID    *int
	SpecialtyID *int
}

type AppointmentFilter struct {
	PatientName *string
	DoctorName  *string
	SpecialtyID *int
}
