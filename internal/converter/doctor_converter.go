package converter

import (
	"hospital-management-core/internal/delivery/dto"
	"hospital-management-core/internal/domain/entity"
)

func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}
	return &dto.DoctorResponse{
		ID:                  doctor.ID,
		FullName:            doctor.FullName(),
		Speciality:          doctor.Speciality,
		Username:            doctor.Username,
		TotalPatients:       doctor.TotalPatients(),
		Patients:            doctor.Patients,
		AppointmentsByMonth: doctor.AppointmentsByMonth,
	}
}

func DoctorsToResponses(doctors []*entity.Doctor) []*dto.DoctorResponse {
	responses := make([]*dto.DoctorResponse, 0, len(doctors))
	for _, doctor := range doctors {
		responses = append(responses, DoctorToResponse(doctor))
	}
	return responses
}
