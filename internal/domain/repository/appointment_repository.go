package repository

import (
	"context"

	"evercare-appointment-api/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentRepository is the durable store behind the intake's persist
// sink. Implementations must support concurrent appends; the dispatcher
// never updates or deletes rows.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindAll(ctx context.Context) ([]entity.Appointment, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
}
