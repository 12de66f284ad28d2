package service

import (
	"context"
	"testing"
	"time"

	"evercare-appointment-api/config"
	"evercare-appointment-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func sampleAppointment() *entity.Appointment {
	return &entity.Appointment{
		ID:                uuid.New(),
		IsFirstVisit:      true,
		Name:              "John Doe",
		ContactNumber:     "12345678",
		Email:             "john@example.com",
		Address:           "123 Main St",
		MedicalDepartment: "Cardiology Clinic",
		SpecialtyType:     "medical",
		CreatedAt:         time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC),
	}
}

func TestFormatAppointmentMessage(t *testing.T) {
	appointment := sampleAppointment()

	msg := formatAppointmentMessage(appointment)

	assert.Contains(t, msg, "Reference ID: "+appointment.ID.String())
	assert.Contains(t, msg, "First Visit: Yes")
	assert.Contains(t, msg, "Name: John Doe")
	assert.Contains(t, msg, "Contact: 12345678")
	assert.Contains(t, msg, "Department: Cardiology Clinic")
	assert.Contains(t, msg, "Submitted At: 2025-06-01 09:30:00")

	appointment.IsFirstVisit = false
	assert.Contains(t, formatAppointmentMessage(appointment), "First Visit: No")
}

func TestSMTPNotifierRespectsDeadline(t *testing.T) {
	notifier := NewSMTPNotifier(config.MailConfig{
		SMTPHost: "10.255.255.1", // non-routable, the dial blocks
		SMTPPort: 25,
		From:     "noreply@example.com",
		To:       "staff@example.com",
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := notifier.Send(ctx, sampleAppointment())

	assert.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}
