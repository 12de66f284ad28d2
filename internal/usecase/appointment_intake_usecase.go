package usecase

import (
	"context"
	"errors"
	"time"

	"evercare-appointment-api/config"
	"evercare-appointment-api/internal/converter"
	"evercare-appointment-api/internal/delivery/dto"
	"evercare-appointment-api/internal/domain/entity"
	"evercare-appointment-api/internal/domain/repository"
	"evercare-appointment-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrNoSinkConfigured    = errors.New("no intake sink is configured")
)

type AppointmentIntakeUsecase interface {
	Submit(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentAckResponse, error)
	GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	GetAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
}

type appointmentIntakeUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	notifier        service.AppointmentNotifier
	auditService    service.AuditService
	cfg             config.IntakeConfig
}

func NewAppointmentIntakeUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	notifier service.AppointmentNotifier,
	auditService service.AuditService,
	cfg config.IntakeConfig,
) AppointmentIntakeUsecase {
	return &appointmentIntakeUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		notifier:        notifier,
		auditService:    auditService,
		cfg:             cfg,
	}
}

// Submit dispatches a validated submission to the configured sinks.
//
// Flow:
// 1. Build the record: assign id and created_at exactly once
// 2. Persist sink first - failure here is fatal, notify is never attempted
// 3. Audit trail entry (non-fatal)
// 4. Notify sink with a bounded timeout - failure is non-fatal once the
//    record is durable, fatal when the notifier is the only sink
//
// Re-submitting identical data creates a new, distinct record; there is
// no dedup key.
func (u *appointmentIntakeUsecase) Submit(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentAckResponse, error) {
	if !u.cfg.PersistEnabled && !u.cfg.NotifyEnabled {
		return nil, ErrNoSinkConfigured
	}

	appointment := &entity.Appointment{
		ID:                uuid.New(),
		IsFirstVisit:      *req.IsFirstVisit,
		Name:              req.Name,
		ContactNumber:     req.ContactNumber,
		Email:             req.Email,
		Address:           req.Address,
		MedicalDepartment: req.MedicalDepartment,
		SpecialtyType:     req.SpecialtyType,
		CreatedAt:         time.Now().UTC(),
	}

	persisted := false
	if u.cfg.PersistEnabled {
		if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
			u.log.Errorf("Failed to persist appointment %s: %+v", appointment.ID, err)
			return nil, err
		}
		persisted = true

		// Best effort: the record is already durable
		_ = u.auditService.LogAction(ctx, entity.AuditActionAppointmentCreate, entity.JSON{
			"appointment_id": appointment.ID.String(),
			"department":     appointment.MedicalDepartment,
			"specialty_type": appointment.SpecialtyType,
		})
	}

	if u.cfg.NotifyEnabled {
		// Fresh context: a client disconnect must not abort the courtesy
		// mail for a record that is already committed.
		notifyCtx, cancel := context.WithTimeout(context.Background(), u.cfg.NotifyTimeout)
		defer cancel()

		if err := u.notifier.Send(notifyCtx, appointment); err != nil {
			if !persisted {
				u.log.Errorf("Failed to notify appointment %s with no persist sink configured: %+v", appointment.ID, err)
				return nil, err
			}
			// The record is durable; losing the courtesy mail is acceptable.
			// Retries belong to a background delivery mechanism, not here.
			u.log.Warnf("Failed to notify appointment %s (non-fatal): %+v", appointment.ID, err)
		} else if persisted {
			_ = u.auditService.LogAction(ctx, entity.AuditActionAppointmentNotify, entity.JSON{
				"appointment_id": appointment.ID.String(),
			})
		}
	}

	u.log.Infof("Appointment accepted: id=%s, department=%s, specialty=%s", appointment.ID, appointment.MedicalDepartment, appointment.SpecialtyType)
	return converter.AppointmentToAck(appointment), nil
}

// GetAllAppointments returns every stored appointment record, newest first
func (u *appointmentIntakeUsecase) GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentIntakeUsecase) GetAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}
