package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"hospital-management-core/internal/delivery/dto"
	"hospital-management-core/internal/usecase"
	"hospital-management-core/pkg/response"
	"hospital-management-core/pkg/validator"

	"github.com/gorilla/mux"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

// AdmitPatient registers a new unassigned patient
// @Summary Admit patient
// @Tags Patients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.AdmitPatientRequest true "Patient Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /admin/patients [post]
func (h *PatientHandler) AdmitPatient(w http.ResponseWriter, r *http.Request) {
	var req dto.AdmitPatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.Admit(&req)
	if err != nil {
		response.InternalServerError(w, "Failed to admit patient")
		return
	}

	response.Success(w, http.StatusCreated, "Patient admitted successfully", patient)
}

// GetAllPatients lists the active patients
// @Summary List patients
// @Tags Patients
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/patients [get]
func (h *PatientHandler) GetAllPatients(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Patients retrieved successfully", h.patientUsecase.List())
}

// GetDischargedPatients lists the discharged patients
// @Summary List discharged patients
// @Tags Patients
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/patients/discharged [get]
func (h *PatientHandler) GetDischargedPatients(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Discharged patients retrieved successfully", h.patientUsecase.ListDischarged())
}

// GetFamilies groups active patients by surname
// @Summary Group patients by family
// @Tags Patients
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/patients/families [get]
func (h *PatientHandler) GetFamilies(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Families retrieved successfully", h.patientUsecase.GroupBySurname())
}

// UpdatePatient patches a patient's details
// @Summary Update patient
// @Tags Patients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param index path int true "Patient index"
// @Param request body dto.UpdatePatientRequest true "Update Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/patients/{index} [put]
func (h *PatientHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	index, ok := patientIndex(w, r)
	if !ok {
		return
	}

	var req dto.UpdatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.UpdateDetails(index, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to update patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient updated successfully", patient)
}

// GetSymptoms shows one patient's symptoms
// @Summary Patient symptoms
// @Tags Patients
// @Security BearerAuth
// @Produce json
// @Param index path int true "Patient index"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/patients/{index}/symptoms [get]
func (h *PatientHandler) GetSymptoms(w http.ResponseWriter, r *http.Request) {
	index, ok := patientIndex(w, r)
	if !ok {
		return
	}

	symptoms, err := h.patientUsecase.Symptoms(index)
	if err != nil {
		response.NotFound(w, "Patient not found")
		return
	}

	response.Success(w, http.StatusOK, "Symptoms retrieved successfully", symptoms)
}

// AddSymptoms appends symptoms to a patient
// @Summary Add symptoms
// @Tags Patients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param index path int true "Patient index"
// @Param request body dto.AddSymptomsRequest true "Symptoms Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/patients/{index}/symptoms [post]
func (h *PatientHandler) AddSymptoms(w http.ResponseWriter, r *http.Request) {
	index, ok := patientIndex(w, r)
	if !ok {
		return
	}

	var req dto.AddSymptomsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.AddSymptoms(index, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to add symptoms")
		}
		return
	}

	response.Success(w, http.StatusOK, "Symptoms added successfully", patient)
}

// DischargePatient moves a patient to the discharged collection
// @Summary Discharge patient
// @Tags Patients
// @Security BearerAuth
// @Produce json
// @Param index path int true "Patient index"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/patients/{index}/discharge [post]
func (h *PatientHandler) DischargePatient(w http.ResponseWriter, r *http.Request) {
	index, ok := patientIndex(w, r)
	if !ok {
		return
	}

	patient, err := h.patientUsecase.Discharge(index)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to discharge patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient discharged successfully", patient)
}

// patientIndex parses the positional {index} route variable.
func patientIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil || index < 0 {
		response.Error(w, http.StatusBadRequest, "Invalid patient index", nil)
		return 0, false
	}
	return index, true
}
