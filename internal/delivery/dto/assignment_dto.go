package dto

import "github.com/google/uuid"

// AppointmentTimeRequest carries a broken-down appointment timestamp. Hour
// and minute ranges are validated here and again in the core together with
// calendar validity.
type AppointmentTimeRequest struct {
	Year   int `json:"year" validate:"required"`
	Month  int `json:"month" validate:"required,gte=1,lte=12"`
	Day    int `json:"day" validate:"required,gte=1,lte=31"`
	Hour   int `json:"hour" validate:"gte=0,lte=23"`
	Minute int `json:"minute" validate:"gte=0,lte=59"`
}

type AssignRequest struct {
	DoctorID    uuid.UUID              `json:"doctor_id" validate:"required"`
	Appointment AppointmentTimeRequest `json:"appointment" validate:"required"`
}

type RescheduleRequest struct {
	Appointment AppointmentTimeRequest `json:"appointment" validate:"required"`
}

type AssignmentResponse struct {
	Patient         string `json:"patient"`
	Doctor          string `json:"doctor"`
	AppointmentDate string `json:"appointment_date"`
}
