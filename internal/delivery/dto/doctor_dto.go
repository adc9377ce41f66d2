package dto

import "github.com/google/uuid"

type RegisterDoctorRequest struct {
	FirstName  string `json:"first_name" validate:"required"`
	Surname    string `json:"surname" validate:"required"`
	Speciality string `json:"speciality" validate:"required"`
	Username   string `json:"username" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type UpdateDoctorRequest struct {
	FirstName  string `json:"first_name,omitempty"`
	Surname    string `json:"surname,omitempty"`
	Speciality string `json:"speciality,omitempty"`
}

type DoctorResponse struct {
	ID                  uuid.UUID      `json:"id"`
	FullName            string         `json:"full_name"`
	Speciality          string         `json:"speciality"`
	Username            string         `json:"username"`
	TotalPatients       int            `json:"total_patients"`
	Patients            []string       `json:"patients,omitempty"`
	AppointmentsByMonth map[string]int `json:"appointments_by_month,omitempty"`
}

type DoctorListResponse struct {
	Doctors []*DoctorResponse `json:"doctors"`
	Total   int               `json:"total"`
}
