package handler

import (
	"net/http"

	"evercare-appointment-api/internal/delivery/dto"
	"evercare-appointment-api/internal/domain/entity"
	"evercare-appointment-api/pkg/response"
)

// SpecialtyHandler serves the static department catalogs the booking
// form is populated from.
type SpecialtyHandler struct{}

func NewSpecialtyHandler() *SpecialtyHandler {
	return &SpecialtyHandler{}
}

func (h *SpecialtyHandler) GetMedicalSpecialties(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, dto.SpecialtyListResponse{
		SpecialtyType: string(entity.SpecialtyTypeMedical),
		Departments:   entity.MedicalDepartments,
		Total:         len(entity.MedicalDepartments),
	})
}

func (h *SpecialtyHandler) GetSurgicalSpecialties(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, dto.SpecialtyListResponse{
		SpecialtyType: string(entity.SpecialtyTypeSurgical),
		Departments:   entity.SurgicalDepartments,
		Total:         len(entity.SurgicalDepartments),
	})
}
