package http

import (
	"net/http"

	"clinic-admin/internal/delivery/http/handler"
	"clinic-admin/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	basePath           string
	authHandler        *handler.AuthHandler
	specialtyHandler   *handler.SpecialtyHandler
	statusHandler      *handler.StatusHandler
	patientHandler     *handler.PatientHandler
	doctorHandler      *handler.DoctorHandler
	appointmentHandler *handler.AppointmentHandler
	auditLogHandler    *handler.AuditLogHandler
	pages              http.Handler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
	loggingMiddleware  *middleware.LoggingMiddleware
}

type Handlers struct {
	Auth        *handler.AuthHandler
	Specialty   *handler.SpecialtyHandler
	Status      *handler.StatusHandler
	Patient     *handler.PatientHandler
	Doctor      *handler.DoctorHandler
	Appointment *handler.AppointmentHandler
	AuditLog    *handler.AuditLogHandler
}

func NewRouter(
	basePath string,
	handlers Handlers,
	pages http.Handler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		basePath:           basePath,
		authHandler:        handlers.Auth,
		specialtyHandler:   handlers.Specialty,
		statusHandler:      handlers.Status,
		patientHandler:     handlers.Patient,
		doctorHandler:      handlers.Doctor,
		appointmentHandler: handlers.Appointment,
		auditLogHandler:    handlers.AuditLog,
		pages:              pages,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
		loggingMiddleware:  loggingMiddleware,
	}
}

// Setup registers every route. CORS wraps the whole router so preflight
// requests are answered before method matching.
func (r *Router) Setup() http.Handler {
	// API versioning
	api := r.router.PathPrefix(r.basePath).Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	protected := api.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	// Lookup options are registered before /{id}
	protected.HandleFunc("/specialties/options", r.specialtyHandler.Options).Methods(http.MethodGet)
	protected.HandleFunc("/statuses/options", r.statusHandler.Options).Methods(http.MethodGet)

	crud(protected, "/specialties", r.specialtyHandler)
	crud(protected, "/statuses", r.statusHandler)
	crud(protected, "/patients", r.patientHandler)
	crud(protected, "/doctors", r.doctorHandler)
	crud(protected, "/appointments", r.appointmentHandler)

	protected.HandleFunc("/audit-logs", r.auditLogHandler.GetList).Methods(http.MethodGet)

	// Page routes
	r.router.PathPrefix("/").Handler(r.pages)

	r.router.Use(r.loggingMiddleware.Handle)

	return r.corsMiddleware.Handle(r.router)
}

type crudHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetList(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

func crud(router *mux.Router, prefix string, h crudHandler) {
	router.HandleFunc(prefix, h.GetList).Methods(http.MethodGet)
	router.HandleFunc(prefix, h.Create).Methods(http.MethodPost)
	router.HandleFunc(prefix+"/{id}", h.Get).Methods(http.MethodGet)
	router.HandleFunc(prefix+"/{id}", h.Update).Methods(http.MethodPut)
	router.HandleFunc(prefix+"/{id}", h.Delete).Methods(http.MethodDelete)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
