package service

import (
	"context"
	"fmt"

	"evercare-appointment-api/config"
	"evercare-appointment-api/internal/domain/entity"

	"gopkg.in/gomail.v2"
)

// AppointmentNotifier is the notify sink: it forwards an accepted
// appointment to the staff mailbox. Implementations must be safe for
// concurrent use and must not touch the record store.
type AppointmentNotifier interface {
	Send(ctx context.Context, appointment *entity.Appointment) error
}

type smtpNotifier struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

// NewSMTPNotifier creates a notifier that delivers appointment details
// over SMTP using the configured transport.
func NewSMTPNotifier(cfg config.MailConfig) AppointmentNotifier {
	return &smtpNotifier{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		from:   cfg.From,
		to:     cfg.To,
	}
}

func (n *smtpNotifier) Send(ctx context.Context, appointment *entity.Appointment) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", n.from)
	msg.SetHeader("To", n.to)
	msg.SetHeader("Subject", fmt.Sprintf("New Appointment - %s", appointment.Name))
	msg.SetBody("text/plain", formatAppointmentMessage(appointment))

	// gomail has no context support, so the dial-and-send runs in its
	// own goroutine and the caller's deadline wins the race.
	errChan := make(chan error, 1)
	go func() {
		errChan <- n.dialer.DialAndSend(msg)
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("failed to send appointment mail: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("appointment mail timed out: %w", ctx.Err())
	}
}

func formatAppointmentMessage(appointment *entity.Appointment) string {
	firstVisit := "No"
	if appointment.IsFirstVisit {
		firstVisit = "Yes"
	}

	return fmt.Sprintf(`New Appointment Details

Reference ID: %s
First Visit: %s
Name: %s
Contact: %s
Email: %s
Address: %s
Specialty Type: %s
Department: %s
Submitted At: %s
`,
		appointment.ID,
		firstVisit,
		appointment.Name,
		appointment.ContactNumber,
		appointment.Email,
		appointment.Address,
		appointment.SpecialtyType,
		appointment.MedicalDepartment,
		appointment.CreatedAt.Format("2006-01-02 15:04:05"),
	)
}
