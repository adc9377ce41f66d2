package http

import (
	"net/http"

	"hospital-management-core/internal/delivery/http/handler"
	"hospital-management-core/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	authHandler       *handler.AuthHandler
	doctorHandler     *handler.DoctorHandler
	patientHandler    *handler.PatientHandler
	assignmentHandler *handler.AssignmentHandler
	reportHandler     *handler.ReportHandler
	authMiddleware    *middleware.AuthMiddleware
	corsMiddleware    *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	assignmentHandler *handler.AssignmentHandler,
	reportHandler *handler.ReportHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		authHandler:       authHandler,
		doctorHandler:     doctorHandler,
		patientHandler:    patientHandler,
		assignmentHandler: assignmentHandler,
		reportHandler:     reportHandler,
		authMiddleware:    authMiddleware,
		corsMiddleware:    corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// Doctor management (admin)
	admin.HandleFunc("/doctors", r.doctorHandler.RegisterDoctor).Methods(http.MethodPost)
	admin.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)

	// Patient management (admin)
	admin.HandleFunc("/patients", r.patientHandler.AdmitPatient).Methods(http.MethodPost)
	admin.HandleFunc("/patients", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	admin.HandleFunc("/patients/discharged", r.patientHandler.GetDischargedPatients).Methods(http.MethodGet)
	admin.HandleFunc("/patients/families", r.patientHandler.GetFamilies).Methods(http.MethodGet)
	admin.HandleFunc("/patients/{index}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	admin.HandleFunc("/patients/{index}/symptoms", r.patientHandler.GetSymptoms).Methods(http.MethodGet)
	admin.HandleFunc("/patients/{index}/symptoms", r.patientHandler.AddSymptoms).Methods(http.MethodPost)
	admin.HandleFunc("/patients/{index}/discharge", r.patientHandler.DischargePatient).Methods(http.MethodPost)

	// Assignment state machine (admin)
	admin.HandleFunc("/patients/{index}/assign", r.assignmentHandler.AssignPatient).Methods(http.MethodPost)
	admin.HandleFunc("/patients/{index}/relocate", r.assignmentHandler.RelocatePatient).Methods(http.MethodPost)
	admin.HandleFunc("/patients/{index}/reschedule", r.assignmentHandler.ReschedulePatient).Methods(http.MethodPost)

	// Reports (admin)
	admin.HandleFunc("/reports/doctors", r.reportHandler.DoctorTotals).Methods(http.MethodGet)
	admin.HandleFunc("/reports/patients-per-doctor", r.reportHandler.PatientsPerDoctor).Methods(http.MethodGet)
	admin.HandleFunc("/reports/appointments-per-doctor", r.reportHandler.AppointmentsPerDoctor).Methods(http.MethodGet)
	admin.HandleFunc("/reports/symptoms", r.reportHandler.Symptoms).Methods(http.MethodGet)
	admin.HandleFunc("/reports/appointments", r.reportHandler.Appointments).Methods(http.MethodGet)

	// Admin settings
	admin.HandleFunc("/settings", r.authHandler.UpdateAdminSettings).Methods(http.MethodPut)

	// Doctor self-service routes (protected - doctor only)
	doctor := api.PathPrefix("/doctor").Subrouter()
	doctor.Use(r.authMiddleware.Authenticate)
	doctor.Use(middleware.RequireDoctor)
	doctor.HandleFunc("/patients", r.doctorHandler.MyPatients).Methods(http.MethodGet)
	doctor.HandleFunc("/patients/{index}/symptoms", r.doctorHandler.MyPatientSymptoms).Methods(http.MethodGet)
	doctor.HandleFunc("/patients/{index}/symptoms", r.doctorHandler.AddMyPatientSymptoms).Methods(http.MethodPost)
	doctor.HandleFunc("/settings", r.authHandler.UpdateDoctorSettings).Methods(http.MethodPut)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
