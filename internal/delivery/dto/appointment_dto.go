package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// CreateAppointmentRequest is the appointment submission payload. Field
// names follow the booking form contract; unknown fields are ignored on
// decode.
type CreateAppointmentRequest struct {
	IsFirstVisit      *bool  `json:"isFirstVisit" validate:"required"`
	Name              string `json:"name" validate:"required,min=3"`
	ContactNumber     string `json:"contactNumber" validate:"required,digits,min=8,max=15"`
	Email             string `json:"email" validate:"required,email"`
	Address           string `json:"address" validate:"required,min=5"`
	MedicalDepartment string `json:"medicalDepartment" validate:"required"`
	SpecialtyType     string `json:"specialtyType" validate:"required,oneof=medical surgical"`
}

// phoneSeparators are characters people commonly type into phone fields.
var phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "")

// Normalize trims submitted strings and strips separators from the
// contact number. Must run before validation so length and digit rules
// apply to the normalized values.
func (r *CreateAppointmentRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.ContactNumber = phoneSeparators.Replace(strings.TrimSpace(r.ContactNumber))
	r.Email = strings.TrimSpace(r.Email)
	r.Address = strings.TrimSpace(r.Address)
	r.MedicalDepartment = strings.TrimSpace(r.MedicalDepartment)
	r.SpecialtyType = strings.ToLower(strings.TrimSpace(r.SpecialtyType))
}

// Response DTOs

// AppointmentAckResponse acknowledges an accepted submission.
type AppointmentAckResponse struct {
	Patient     string    `json:"patient"`
	Department  string    `json:"department"`
	ReferenceID uuid.UUID `json:"reference_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type AppointmentResponse struct {
	ID                uuid.UUID `json:"id"`
	IsFirstVisit      bool      `json:"isFirstVisit"`
	Name              string    `json:"name"`
	ContactNumber     string    `json:"contactNumber"`
	Email             string    `json:"email"`
	Address           string    `json:"address"`
	MedicalDepartment string    `json:"medicalDepartment"`
	SpecialtyType     string    `json:"specialtyType"`
	CreatedAt         time.Time `json:"created_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

type SpecialtyListResponse struct {
	SpecialtyType string   `json:"specialty_type"`
	Departments   []string `json:"departments"`
	Total         int      `json:"total"`
}
