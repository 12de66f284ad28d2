package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"evercare-appointment-api/config"
	"evercare-appointment-api/internal/delivery/http/handler"
	"evercare-appointment-api/internal/delivery/http/middleware"
	"evercare-appointment-api/internal/domain/entity"
	"evercare-appointment-api/internal/service"
	"evercare-appointment-api/internal/usecase"
	"evercare-appointment-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type memoryStore struct {
	mu           sync.Mutex
	appointments []entity.Appointment
	auditLogs    []entity.AuditLog
}

func (m *memoryStore) Create(ctx context.Context, appointment *entity.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.appointments = append(m.appointments, *appointment)
	return nil
}

func (m *memoryStore) FindAll(ctx context.Context) ([]entity.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entity.Appointment, len(m.appointments))
	copy(out, m.appointments)
	return out, nil
}

func (m *memoryStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
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

type memoryAuditStore struct{ store *memoryStore }

func (m memoryAuditStore) Create(ctx context.Context, log *entity.AuditLog) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	m.store.auditLogs = append(m.store.auditLogs, *log)
	return nil
}

func (m memoryAuditStore) FindAll(ctx context.Context) ([]entity.AuditLog, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	out := make([]entity.AuditLog, len(m.store.auditLogs))
	copy(out, m.store.auditLogs)
	return out, nil
}

type noopNotifier struct{}

func (noopNotifier) Send(ctx context.Context, appointment *entity.Appointment) error { return nil }

const adminToken = "test-admin-token"

func setupRouter() *mux.Router {
	log := logrus.New()
	log.SetOutput(io.Discard)

	store := &memoryStore{}
	auditStore := memoryAuditStore{store: store}
	auditService := service.NewAuditService(log, auditStore)

	cfg := config.IntakeConfig{
		PersistEnabled: true,
		NotifyEnabled:  true,
		NotifyTimeout:  time.Second,
	}
	intakeUsecase := usecase.NewAppointmentIntakeUsecase(log, store, noopNotifier{}, auditService, cfg)
	auditLogUsecase := usecase.NewAuditLogUsecase(log, auditStore)

	router := NewRouter(
		handler.NewAppointmentHandler(intakeUsecase, validator.NewValidator()),
		handler.NewSpecialtyHandler(),
		handler.NewAuditLogHandler(auditLogUsecase),
		middleware.NewAdminMiddleware(adminToken),
		middleware.NewRateLimitMiddleware(nil, log, 0),
		middleware.NewCORSMiddleware(),
	)
	return router.Setup()
}

func TestHealthEndpoint(t *testing.T) {
	router := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status    string    `json:"status"`
		Timestamp time.Time `json:"timestamp"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body.Status)
	assert.WithinDuration(t, time.Now().UTC(), body.Timestamp, time.Second)
}

func TestSpecialtyCatalogEndpoints(t *testing.T) {
	router := setupRouter()

	cases := []struct {
		path          string
		specialtyType string
		wantContains  string
		wantTotal     int
	}{
		{"/api/specialties/medical", "medical", "Cardiology Clinic", 17},
		{"/api/specialties/surgical", "surgical", "Orthodontics", 14},
	}

	for _, tc := range cases {
		t.Run(tc.specialtyType, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)

			var body struct {
				Status string `json:"status"`
				Data   struct {
					SpecialtyType string   `json:"specialty_type"`
					Departments   []string `json:"departments"`
					Total         int      `json:"total"`
				} `json:"data"`
			}
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "success", body.Status)
			assert.Equal(t, tc.specialtyType, body.Data.SpecialtyType)
			assert.Equal(t, tc.wantTotal, body.Data.Total)
			assert.Contains(t, body.Data.Departments, tc.wantContains)
		})
	}
}

func TestIntakeIsPublicButReadsRequireAdminToken(t *testing.T) {
	router := setupRouter()

	payload := `{
		"isFirstVisit": true,
		"name": "John Doe",
		"contactNumber": "12345678",
		"email": "john@example.com",
		"address": "123 Main St",
		"medicalDepartment": "Cardiology Clinic",
		"specialtyType": "medical"
	}`

	// Public submit needs no token
	req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)

	// Admin listing without a token is rejected
	req = httptest.NewRequest(http.MethodGet, "/api/appointments", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// And accepted with the configured token
	req = httptest.NewRequest(http.MethodGet, "/api/appointments", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "John Doe")
}

func TestAuditLogEndpointListsIntakeActions(t *testing.T) {
	router := setupRouter()

	payload := `{
		"isFirstVisit": false,
		"name": "Jane Smith",
		"contactNumber": "9876543210",
		"email": "jane@example.com",
		"address": "456 Oak Ave",
		"medicalDepartment": "Orthodontics",
		"specialtyType": "surgical"
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/audit-logs", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), entity.AuditActionAppointmentCreate)
}

func TestCORSHeadersPresent(t *testing.T) {
	router := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
