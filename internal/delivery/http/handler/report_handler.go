package handler

import (
	"net/http"

	"hospital-management-core/internal/usecase"
	"hospital-management-core/pkg/response"
)

// ReportHandler serves the read-only aggregation endpoints. No request
// bodies: every report derives from current state or the appointment log.
type ReportHandler struct {
	reportUsecase usecase.ReportUsecase
}

func NewReportHandler(reportUsecase usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{reportUsecase: reportUsecase}
}

// DoctorTotals reports the doctor headcount by speciality
// @Summary Doctor totals
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/reports/doctors [get]
func (h *ReportHandler) DoctorTotals(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Report generated successfully", h.reportUsecase.DoctorTotals())
}

// PatientsPerDoctor reports patient counts per doctor
// @Summary Patients per doctor
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/reports/patients-per-doctor [get]
func (h *ReportHandler) PatientsPerDoctor(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Report generated successfully", h.reportUsecase.PatientsPerDoctor())
}

// AppointmentsPerDoctor reports monthly appointment counts per doctor
// @Summary Appointments per doctor
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/reports/appointments-per-doctor [get]
func (h *ReportHandler) AppointmentsPerDoctor(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Report generated successfully", h.reportUsecase.AppointmentsPerDoctor())
}

// Symptoms reports patient counts per symptom
// @Summary Patients per symptom
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/reports/symptoms [get]
func (h *ReportHandler) Symptoms(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Report generated successfully", h.reportUsecase.PatientsBySymptom())
}

// Appointments reports the full appointment history grouped by month
// @Summary Appointment history
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/reports/appointments [get]
func (h *ReportHandler) Appointments(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportUsecase.AppointmentsByMonth()
	if err != nil {
		response.InternalServerError(w, "Failed to read appointment history")
		return
	}
	response.Success(w, http.StatusOK, "Report generated successfully", report)
}
