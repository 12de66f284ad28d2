package handler

import (
	"encoding/json"
	"net/http"

	"evercare-appointment-api/internal/delivery/dto"
	"evercare-appointment-api/internal/domain/entity"
	"evercare-appointment-api/internal/usecase"
	"evercare-appointment-api/pkg/response"
	"evercare-appointment-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	intakeUsecase usecase.AppointmentIntakeUsecase
	validator     *validator.CustomValidator
}

func NewAppointmentHandler(intakeUsecase usecase.AppointmentIntakeUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		intakeUsecase: intakeUsecase,
		validator:     validator,
	}
}

func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Normalize()

	violations := map[string]string{}
	if err := h.validator.Validate(&req); err != nil {
		violations = h.validator.FormatValidationErrors(err)
	}

	// Catalog membership is cross-field, so it is merged into the same
	// violation list rather than expressed as a struct tag.
	if _, seen := violations["MedicalDepartment"]; !seen && req.MedicalDepartment != "" {
		if entity.DepartmentsFor(req.SpecialtyType) != nil && !entity.IsKnownDepartment(req.SpecialtyType, req.MedicalDepartment) {
			violations["MedicalDepartment"] = "MedicalDepartment is not in the " + req.SpecialtyType + " department catalog"
		}
	}

	if len(violations) > 0 {
		response.ValidationError(w, violations)
		return
	}

	ack, err := h.intakeUsecase.Submit(r.Context(), &req)
	if err != nil {
		// Dispatch details stay in the server log, the caller only sees
		// the generic failure shape.
		response.InternalServerError(w, "Failed to create appointment")
		return
	}

	response.Success(w, http.StatusCreated, ack)
}

func (h *AppointmentHandler) GetAllAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.intakeUsecase.GetAllAppointments(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, appointments)
}

func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID")
		return
	}

	appointment, err := h.intakeUsecase.GetAppointment(r.Context(), appointmentID)
	if err != nil {
		if err == usecase.ErrAppointmentNotFound {
			response.NotFound(w, "Appointment not found")
			return
		}
		response.InternalServerError(w, "Failed to get appointment")
		return
	}

	response.Success(w, http.StatusOK, appointment)
}
