package usecase

import (
	"context"
	"sync"
	"sync/atomic"

	"evercare-appointment-api/internal/domain/entity"
	"evercare-appointment-api/internal/domain/repository"
	"evercare-appointment-api/internal/service"

	"github.com/google/uuid"
)

// Compile-time check to ensure the fake implements AppointmentRepository
var _ repository.AppointmentRepository = (*MemoryAppointmentRepository)(nil)

// MemoryAppointmentRepository is an in-memory store fake. The default
// behavior appends to a slice; CreateFunc overrides it to inject
// failures.
type MemoryAppointmentRepository struct {
	CreateFunc func(ctx context.Context, appointment *entity.Appointment) error

	mu           sync.Mutex
	appointments []entity.Appointment

	CreateCallCount int32
}

func (m *MemoryAppointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, appointment)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.appointments = append(m.appointments, *appointment)
	return nil
}

func (m *MemoryAppointmentRepository) FindAll(ctx context.Context) ([]entity.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entity.Appointment, len(m.appointments))
	copy(out, m.appointments)
	return out, nil
}

func (m *MemoryAppointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.appointments {
		if a.ID == id {
			found := a
			return &found, nil
		}
	}
	return nil, nil
}

// Len reports how many records the fake holds.
func (m *MemoryAppointmentRepository) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.appointments)
}

// Compile-time check to ensure MockNotifier implements AppointmentNotifier
var _ service.AppointmentNotifier = (*MockNotifier)(nil)

// MockNotifier is a mock implementation of AppointmentNotifier.
type MockNotifier struct {
	SendFunc func(ctx context.Context, appointment *entity.Appointment) error

	SendCallCount int32
}

func (m *MockNotifier) Send(ctx context.Context, appointment *entity.Appointment) error {
	atomic.AddInt32(&m.SendCallCount, 1)
	if m.SendFunc != nil {
		return m.SendFunc(ctx, appointment)
	}
	return nil
}

// Compile-time check to ensure MockAuditLogRepository implements AuditLogRepository
var _ repository.AuditLogRepository = (*MockAuditLogRepository)(nil)

// MockAuditLogRepository records audit entries in memory.
type MockAuditLogRepository struct {
	CreateFunc func(ctx context.Context, log *entity.AuditLog) error

	mu   sync.Mutex
	logs []entity.AuditLog
}

func (m *MockAuditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, log)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logs = append(m.logs, *log)
	return nil
}

func (m *MockAuditLogRepository) FindAll(ctx context.Context) ([]entity.AuditLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entity.AuditLog, len(m.logs))
	copy(out, m.logs)
	return out, nil
}
