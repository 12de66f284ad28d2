package entity

import (
	"time"

	"github.com/google/uuid"
)

// Appointment represents an accepted appointment submission. Rows are
// append-only: the intake path creates them and nothing updates or
// deletes them afterwards.
type Appointment struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	IsFirstVisit      bool      `gorm:"not null" json:"isFirstVisit"`
	Name              string    `gorm:"type:varchar(255);not null" json:"name"`
	ContactNumber     string    `gorm:"type:varchar(20);not null" json:"contactNumber"`
	Email             string    `gorm:"type:varchar(255);not null" json:"email"`
	Address           string    `gorm:"type:text;not null" json:"address"`
	MedicalDepartment string    `gorm:"type:varchar(100);not null" json:"medicalDepartment"`
	SpecialtyType     string    `gorm:"type:varchar(20);not null;index" json:"specialtyType"`
	CreatedAt         time.Time `gorm:"not null;index" json:"created_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}
