package dto

type AdmitPatientRequest struct {
	FirstName string   `json:"first_name" validate:"required"`
	Surname   string   `json:"surname" validate:"required"`
	Age       int      `json:"age" validate:"gte=0"`
	Mobile    string   `json:"mobile" validate:"required"`
	Postcode  string   `json:"postcode" validate:"required"`
	Address   string   `json:"address" validate:"required"`
	Symptoms  []string `json:"symptoms"`
}

// UpdatePatientRequest updates any subset of a patient's details. Nil fields
// are left untouched; Symptoms, when present, replaces the whole list.
type UpdatePatientRequest struct {
	FirstName *string   `json:"first_name,omitempty"`
	Surname   *string   `json:"surname,omitempty"`
	Age       *int      `json:"age,omitempty" validate:"omitempty,gte=0"`
	Mobile    *string   `json:"mobile,omitempty"`
	Postcode  *string   `json:"postcode,omitempty"`
	Address   *string   `json:"address,omitempty"`
	Symptoms  *[]string `json:"symptoms,omitempty"`
}

type AddSymptomsRequest struct {
	Symptoms []string `json:"symptoms" validate:"required,min=1,dive,required"`
}

type PatientResponse struct {
	Index           int      `json:"index"`
	FullName        string   `json:"full_name"`
	Age             int      `json:"age"`
	Mobile          string   `json:"mobile"`
	Postcode        string   `json:"postcode"`
	Address         string   `json:"address"`
	Symptoms        []string `json:"symptoms"`
	Doctor          *string  `json:"doctor"`
	AppointmentDate *string  `json:"appointment_date,omitempty"`
}

type PatientListResponse struct {
	Patients []*PatientResponse `json:"patients"`
	Total    int                `json:"total"`
}

type FamilyGroup struct {
	Surname  string             `json:"surname"`
	Patients []*PatientResponse `json:"patients"`
}

type FamilyGroupsResponse struct {
	Families []FamilyGroup `json:"families"`
}

type SymptomsResponse struct {
	FullName string   `json:"full_name"`
	Symptoms []string `json:"symptoms"`
}
