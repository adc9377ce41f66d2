package handler

import (
	"encoding/json"
	"net/http"

	"hospital-management-core/internal/delivery/dto"
	"hospital-management-core/internal/delivery/http/middleware"
	"hospital-management-core/internal/usecase"
	"hospital-management-core/pkg/response"
	"hospital-management-core/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

// RegisterDoctor creates a new doctor
// @Summary Register doctor
// @Tags Doctors
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.RegisterDoctorRequest true "Doctor Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/doctors [post]
func (h *DoctorHandler) RegisterDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.Register(&req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNameExists:
			response.Error(w, http.StatusConflict, "A doctor with that name already exists", nil)
		default:
			response.InternalServerError(w, "Failed to register doctor")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Doctor registered successfully", doctor)
}

// GetAllDoctors lists every doctor
// @Summary List doctors
// @Tags Doctors
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/doctors [get]
func (h *DoctorHandler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Doctors retrieved successfully", h.doctorUsecase.List())
}

// GetDoctor returns one doctor by id
// @Summary Get doctor
// @Tags Doctors
// @Security BearerAuth
// @Produce json
// @Param id path string true "Doctor ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/doctors/{id} [get]
func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	id, ok := doctorID(w, r)
	if !ok {
		return
	}

	doctor, err := h.doctorUsecase.Get(id)
	if err != nil {
		response.NotFound(w, "Doctor not found")
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

// UpdateDoctor changes a doctor's name or speciality
// @Summary Update doctor
// @Tags Doctors
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Doctor ID"
// @Param request body dto.UpdateDoctorRequest true "Update Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/doctors/{id} [put]
func (h *DoctorHandler) UpdateDoctor(w http.ResponseWriter, r *http.Request) {
	id, ok := doctorID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	doctor, err := h.doctorUsecase.Update(id, &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to update doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor updated successfully", doctor)
}

// DeleteDoctor removes a doctor
// @Summary Delete doctor
// @Tags Doctors
// @Security BearerAuth
// @Produce json
// @Param id path string true "Doctor ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/doctors/{id} [delete]
func (h *DoctorHandler) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	id, ok := doctorID(w, r)
	if !ok {
		return
	}

	if err := h.doctorUsecase.Delete(id); err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to delete doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor deleted successfully", nil)
}

// MyPatients lists the logged-in doctor's patients
// @Summary My patients
// @Tags Doctors
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /doctor/patients [get]
func (h *DoctorHandler) MyPatients(w http.ResponseWriter, r *http.Request) {
	username, ok := middleware.GetUsernameFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	patients, err := h.doctorUsecase.MyPatients(username)
	if err != nil {
		response.NotFound(w, "Doctor not found")
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}

// MyPatientSymptoms shows one of the doctor's patients' symptoms
// @Summary My patient's symptoms
// @Tags Doctors
// @Security BearerAuth
// @Produce json
// @Param index path int true "Patient index"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctor/patients/{index}/symptoms [get]
func (h *DoctorHandler) MyPatientSymptoms(w http.ResponseWriter, r *http.Request) {
	username, ok := middleware.GetUsernameFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	index, ok := patientIndex(w, r)
	if !ok {
		return
	}

	symptoms, err := h.doctorUsecase.PatientSymptoms(username, index)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to retrieve symptoms")
		}
		return
	}

	response.Success(w, http.StatusOK, "Symptoms retrieved successfully", symptoms)
}

// AddMyPatientSymptoms appends symptoms to one of the doctor's patients
// @Summary Add symptoms to my patient
// @Tags Doctors
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param index path int true "Patient index"
// @Param request body dto.AddSymptomsRequest true "Symptoms Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctor/patients/{index}/symptoms [post]
func (h *DoctorHandler) AddMyPatientSymptoms(w http.ResponseWriter, r *http.Request) {
	username, ok := middleware.GetUsernameFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
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

	symptoms, err := h.doctorUsecase.AddPatientSymptoms(username, index, &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to add symptoms")
		}
		return
	}

	response.Success(w, http.StatusOK, "Symptoms added successfully", symptoms)
}

// doctorID parses the {id} route variable; a malformed id is reported and
// false returned.
func doctorID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return uuid.Nil, false
	}
	return id, true
}
