package entity

import "time"

// Doctor practises one or more specialties and carries an optional status.
type Doctor struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null;index" json:"name"`
	StatusID  *int      `gorm:"index" json:"status_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Status      *Status     `gorm:"foreignKey:StatusID" json:"status,omitempty"`
	Specialties []Specialty `gorm:"many2many:doctor_specialties" json:"specialties,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// HasSpecialty reports whether the doctor practises the given specialty.
func (d *Doctor) HasSpecialty(specialtyID int) bool {
	for _, s := range d.Specialties {
		if s.ID == specialtyID {
			return true
		}
	}
	return false
}
