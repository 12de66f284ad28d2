package http

import (
	"fmt"
	"net/http"
	"time"

	"evercare-appointment-api/internal/delivery/http/handler"
	"evercare-appointment-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	appointmentHandler  *handler.AppointmentHandler
	specialtyHandler    *handler.SpecialtyHandler
	auditLogHandler     *handler.AuditLogHandler
	adminMiddleware     *middleware.AdminMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	appointmentHandler *handler.AppointmentHandler,
	specialtyHandler *handler.SpecialtyHandler,
	auditLogHandler *handler.AuditLogHandler,
	adminMiddleware *middleware.AdminMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		appointmentHandler:  appointmentHandler,
		specialtyHandler:    specialtyHandler,
		auditLogHandler:     auditLogHandler,
		adminMiddleware:     adminMiddleware,
		rateLimitMiddleware: rateLimitMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Specialty catalogs (public, static)
	api.HandleFunc("/specialties/medical", r.specialtyHandler.GetMedicalSpecialties).Methods(http.MethodGet)
	api.HandleFunc("/specialties/surgical", r.specialtyHandler.GetSurgicalSpecialties).Methods(http.MethodGet)

	// Appointment intake (public, rate limited)
	intake := api.PathPrefix("/appointments").Subrouter()
	intake.Use(r.rateLimitMiddleware.Limit)
	intake.HandleFunc("", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)

	// Staff reads (admin token required)
	admin := api.PathPrefix("").Subrouter()
	admin.Use(r.adminMiddleware.Authenticate)
	admin.HandleFunc("/appointments", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `{"status": "healthy", "timestamp": %q}`, time.Now().UTC().Format(time.RFC3339))
}
