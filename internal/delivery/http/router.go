package http

import (
	"net/http"

	"ads-dental-admin/internal/delivery/http/handler"
	"ads-dental-admin/internal/delivery/http/middleware"
	"ads-dental-admin/internal/usecase"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	dashboardHandler   *handler.DashboardHandler
	patientHandler     *handler.PatientHandler
	referenceHandler   *handler.ReferenceHandler
	appointmentHandler *handler.AppointmentHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
	loggerMiddleware   *middleware.LoggerMiddleware
	gatherer           prometheus.Gatherer
}

func NewRouter(
	authHandler *handler.AuthHandler,
	dashboardHandler *handler.DashboardHandler,
	patientHandler *handler.PatientHandler,
	referenceHandler *handler.ReferenceHandler,
	appointmentHandler *handler.AppointmentHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggerMiddleware *middleware.LoggerMiddleware,
	gatherer prometheus.Gatherer,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		dashboardHandler:   dashboardHandler,
		patientHandler:     patientHandler,
		referenceHandler:   referenceHandler,
		appointmentHandler: appointmentHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
		loggerMiddleware:   loggerMiddleware,
		gatherer:           gatherer,
	}
}

func (r *Router) Setup() *mux.Router {
	// Prometheus scrape endpoint
	if r.gatherer != nil {
		r.router.Handle("/metrics", promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)

	// Everything below needs a session
	protected := api.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)
	protected.HandleFunc("/auth/me", r.authHandler.Me).Methods(http.MethodGet)
	protected.HandleFunc("/dashboard", r.dashboardHandler.GetDashboard).Methods(http.MethodGet)

	// Appointments (all roles; actions are gated per role in the usecases).
	// The form routes come first so "form" is never read as an id.
	protected.HandleFunc("/appointments", r.appointmentHandler.GetAppointments).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/form", r.appointmentHandler.GetForm).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/form", r.appointmentHandler.OpenCreateForm).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/form", r.appointmentHandler.BindForm).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/form", r.appointmentHandler.CloseForm).Methods(http.MethodDelete)
	protected.HandleFunc("/appointments/form/submit", r.appointmentHandler.SubmitForm).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{id:[0-9]+}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)
	protected.HandleFunc("/appointments/{id:[0-9]+}/form", r.appointmentHandler.OpenEditForm).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{id:[0-9]+}/complete", r.appointmentHandler.CompleteAppointment).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{id:[0-9]+}/cancel", r.appointmentHandler.CancelAppointment).Methods(http.MethodPost)

	// Admin pages
	admin := protected.NewRoute().Subrouter()
	admin.Use(middleware.RequireRole(usecase.PatientsPageRoles...))
	admin.HandleFunc("/patients", r.patientHandler.GetPatients).Methods(http.MethodGet)
	admin.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	admin.HandleFunc("/patients/{id:[0-9]+}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	admin.HandleFunc("/patients/{id:[0-9]+}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)
	admin.HandleFunc("/dentists", r.referenceHandler.GetDentists).Methods(http.MethodGet)
	admin.HandleFunc("/addresses", r.referenceHandler.GetAddresses).Methods(http.MethodGet)

	// Surgeries (admin or dentist)
	surgeries := protected.NewRoute().Subrouter()
	surgeries.Use(middleware.RequireRole(usecase.SurgeriesPageRoles...))
	surgeries.HandleFunc("/surgeries", r.referenceHandler.GetSurgeries).Methods(http.MethodGet)

	// Add CORS and request logging middleware
	r.router.Use(r.loggerMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
