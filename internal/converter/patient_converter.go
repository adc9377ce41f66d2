package converter

import (
	"hospital-management-core/internal/delivery/dto"
	"hospital-management-core/internal/domain/entity"
)

// PatientToResponse converts a patient at a given collection index. The doctor
// field is null while unassigned; the "None" sentinel never leaves the
// persistence layer.
func PatientToResponse(index int, patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	resp := &dto.PatientResponse{
		Index:    index,
		FullName: patient.FullName(),
		Age:      patient.Age,
		Mobile:   patient.Mobile,
		Postcode: patient.Postcode,
		Address:  patient.Address,
		Symptoms: patient.Symptoms,
	}
	if patient.Assigned() {
		doctor := patient.Doctor
		resp.Doctor = &doctor
	}
	if patient.AppointmentDate != nil {
		formatted := patient.AppointmentDate.Format(entity.AppointmentTimeLayout)
		resp.AppointmentDate = &formatted
	}
	return resp
}

func PatientsToResponses(patients []*entity.Patient) []*dto.PatientResponse {
	responses := make([]*dto.PatientResponse, 0, len(patients))
	for i, patient := range patients {
		responses = append(responses, PatientToResponse(i, patient))
	}
	return responses
}
