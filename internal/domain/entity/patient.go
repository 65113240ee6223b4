package entity

import "time"

// Patient represents a person receiving care at the clinic
type Patient struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null;index" json:"name"`
	StatusID  *int      `gorm:"index" json:"status_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Status *Status `gorm:"foreignKey:StatusID" json:"status,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}
