package entity

import "time"

// Appointment books a patient with a doctor for a specialty.
// SpecialtyID is the primary specialty; Specialties holds every specialty
// submitted with the form, the primary one included.
type Appointment struct {
	ID              int       `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID       int       `gorm:"not null;index" json:"patient_id"`
	DoctorID        int       `gorm:"not null;index" json:"doctor_id"`
	SpecialtyID     int       `gorm:"not null;index" json:"specialty_id"`
	AppointmentDate time.Time `gorm:"not null;index" json:"appointment_date"`
	Observation     string    `gorm:"type:text" json:"observation"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient     Patient     `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor      Doctor      `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Specialty   Specialty   `gorm:"foreignKey:SpecialtyID" json:"specialty,omitempty"`
	Specialties []Specialty `gorm:"many2many:appointment_specialties" json:"specialties,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}
