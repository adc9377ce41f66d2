package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"hospital-management-core/internal/delivery/dto"
	"hospital-management-core/internal/domain/entity"
	"hospital-management-core/internal/usecase"
	"hospital-management-core/pkg/response"
	"hospital-management-core/pkg/validator"
)

type AssignmentHandler struct {
	assignmentUsecase usecase.AssignmentUsecase
	validator         *validator.CustomValidator
}

func NewAssignmentHandler(assignmentUsecase usecase.AssignmentUsecase, validator *validator.CustomValidator) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentUsecase: assignmentUsecase,
		validator:         validator,
	}
}

// AssignPatient links an unassigned patient to a doctor
// @Summary Assign patient
// @Tags Assignments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param index path int true "Patient index"
// @Param request body dto.AssignRequest true "Assign Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/patients/{index}/assign [post]
func (h *AssignmentHandler) AssignPatient(w http.ResponseWriter, r *http.Request) {
	index, ok := patientIndex(w, r)
	if !ok {
		return
	}

	var req dto.AssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	res, err := h.assignmentUsecase.Assign(index, req.DoctorID, req.Appointment)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Patient assigned successfully", res)
}

// RelocatePatient moves an assigned patient to a different doctor
// @Summary Relocate patient
// @Tags Assignments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param index path int true "Patient index"
// @Param request body dto.AssignRequest true "Relocate Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/patients/{index}/relocate [post]
func (h *AssignmentHandler) RelocatePatient(w http.ResponseWriter, r *http.Request) {
	index, ok := patientIndex(w, r)
	if !ok {
		return
	}

	var req dto.AssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	res, err := h.assignmentUsecase.Relocate(index, req.DoctorID, req.Appointment)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Patient relocated successfully", res)
}

// ReschedulePatient updates an assigned patient's appointment
// @Summary Reschedule appointment
// @Tags Assignments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param index path int true "Patient index"
// @Param request body dto.RescheduleRequest true "Reschedule Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/patients/{index}/reschedule [post]
func (h *AssignmentHandler) ReschedulePatient(w http.ResponseWriter, r *http.Request) {
	index, ok := patientIndex(w, r)
	if !ok {
		return
	}

	var req dto.RescheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	res, err := h.assignmentUsecase.Reschedule(index, req.Appointment)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment rescheduled successfully", res)
}

func (h *AssignmentHandler) writeError(w http.ResponseWriter, err error) {
	var verr *entity.ValidationError
	switch {
	case errors.Is(err, usecase.ErrPatientNotFound):
		response.NotFound(w, "Patient not found")
	case errors.Is(err, usecase.ErrDoctorNotFound):
		response.NotFound(w, "Doctor not found")
	case errors.Is(err, usecase.ErrAlreadyAssigned):
		response.Error(w, http.StatusConflict, "Patient is already assigned to a doctor", nil)
	case errors.Is(err, usecase.ErrNotAssigned):
		response.Error(w, http.StatusConflict, "Patient has no doctor assigned yet", nil)
	case errors.As(err, &verr):
		response.Error(w, http.StatusBadRequest, verr.Error(), nil)
	default:
		response.InternalServerError(w, "Failed to update assignment")
	}
}
