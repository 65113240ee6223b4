package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinic-admin/config"
	"clinic-admin/internal/delivery/http/handler"
	"clinic-admin/internal/delivery/http/middleware"
	"clinic-admin/internal/delivery/web"
	"clinic-admin/pkg/jwt"
	"clinic-admin/pkg/validator"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestRouter() http.Handler {
	log := logrus.New()
	log.SetOutput(io.Discard)

	v := validator.NewValidator()
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test", AccessExpiry: time.Minute, RefreshExpiry: time.Hour})

	handlers := Handlers{
		Auth:        handler.NewAuthHandler(nil, v),
		Specialty:   handler.NewSpecialtyHandler(nil, v),
		Status:      handler.NewStatusHandler(nil, v),
		Patient:     handler.NewPatientHandler(nil, v),
		Doctor:      handler.NewDoctorHandler(nil, v),
		Appointment: handler.NewAppointmentHandler(nil, v),
		AuditLog:    handler.NewAuditLogHandler(nil, v),
	}

	return NewRouter(
		"/api/v1",
		handlers,
		web.NewPages(web.DefaultTable(), "/api/v1", log),
		middleware.NewAuthMiddleware(jwtService, nil, log),
		middleware.NewCORSMiddleware(""),
		middleware.NewLoggingMiddleware(log),
	).Setup()
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter()

	for _, target := range []struct{ method, path string }{
		{http.MethodGet, "/api/v1/doctors"},
		{http.MethodPost, "/api/v1/appointments"},
		{http.MethodGet, "/api/v1/specialties/options"},
		{http.MethodDelete, "/api/v1/patients/3"},
		{http.MethodGet, "/api/v1/audit-logs"},
		{http.MethodGet, "/api/v1/auth/me"},
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(target.method, target.path, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, target.path)
	}
}

func TestPagesAreServed(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/doctor/update/5", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-page="DoctorFormPage"`)
}

func TestPreflight(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/v1/doctors", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
