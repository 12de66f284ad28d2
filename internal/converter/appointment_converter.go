package converter

import (
	"evercare-appointment-api/internal/delivery/dto"
	"evercare-appointment-api/internal/domain/entity"
)

// AppointmentToAck converts an Appointment entity to the intake
// acknowledgement DTO
func AppointmentToAck(appointment *entity.Appointment) *dto.AppointmentAckResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentAckResponse{
		Patient:     appointment.Name,
		Department:  appointment.MedicalDepartment,
		ReferenceID: appointment.ID,
		CreatedAt:   appointment.CreatedAt,
	}
}

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:                appointment.ID,
		IsFirstVisit:      appointment.IsFirstVisit,
		Name:              appointment.Name,
		ContactNumber:     appointment.ContactNumber,
		Email:             appointment.Email,
		Address:           appointment.Address,
		MedicalDepartment: appointment.MedicalDepartment,
		SpecialtyType:     appointment.SpecialtyType,
		CreatedAt:         appointment.CreatedAt,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToResponse(&appointment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
