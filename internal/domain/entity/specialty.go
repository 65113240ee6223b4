package entity

import "time"

// Specialty is a medical specialty a doctor practises and an appointment is booked for.
type Specialty struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Specialty) TableName() string {
	return "specialties"
}
