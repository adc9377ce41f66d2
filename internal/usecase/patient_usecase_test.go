package usecase

import (
	"os"
	"path/filepath"
	"testing"

	"hospital-management-core/internal/delivery/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdmitAppendsUnassignedPatient(t *testing.T) {
	env := newTestEnv(t)
	uc := env.patients(t)

	res, err := uc.Admit(&dto.AdmitPatientRequest{
		FirstName: "Sara",
		Surname:   "Smith",
		Age:       20,
		Mobile:    "07012345678",
		Postcode:  "B1 234",
		Address:   "Kathmandu",
		Symptoms:  []string{"Fever", "Cough"},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Index)
	assert.Equal(t, "Sara Smith", res.FullName)
	assert.Nil(t, res.Doctor)

	raw, err := os.ReadFile(filepath.Join(env.dir, "patients_file.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Sara Smith|20|07012345678|B1 234|Kathmandu|Fever, Cough|None")
}

func TestAddSymptomsAppendsAndRewrites(t *testing.T) {
	env := newTestEnv(t)
	uc := env.patients(t)
	admitSara(t, uc)

	res, err := uc.AddSymptoms(0, &dto.AddSymptomsRequest{Symptoms: []string{"Fatigue"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Fever", "Cough", "Fatigue"}, res.Symptoms)

	raw, err := os.ReadFile(filepath.Join(env.dir, "patients_file.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Fever, Cough, Fatigue")
}

func TestUpdateDetailsPatchesOnlyProvidedFields(t *testing.T) {
	env := newTestEnv(t)
	uc := env.patients(t)
	admitSara(t, uc)

	mobile := "07999999999"
	age := 21
	res, err := uc.UpdateDetails(0, &dto.UpdatePatientRequest{Mobile: &mobile, Age: &age})
	require.NoError(t, err)
	assert.Equal(t, "Sara Smith", res.FullName)
	assert.Equal(t, 21, res.Age)
	assert.Equal(t, "07999999999", res.Mobile)
	assert.Equal(t, "B1 234", res.Postcode)
}

func TestDischargeMovesPatientAndPreservesOrder(t *testing.T) {
	env := newTestEnv(t)
	uc := env.patients(t)
	admitSara(t, uc)

	for _, p := range []struct{ first, surname string }{
		{"Mike", "Jones"},
		{"David", "Smith"},
	} {
		_, err := uc.Admit(&dto.AdmitPatientRequest{
			FirstName: p.first, Surname: p.surname, Age: 30,
			Mobile: "07000000000", Postcode: "L1 1AA", Address: "Leeds",
			Symptoms: []string{"Headache"},
		})
		require.NoError(t, err)
	}

	res, err := uc.Discharge(1)
	require.NoError(t, err)
	assert.Equal(t, "Mike Jones", res.FullName)

	active := uc.List()
	require.Equal(t, 2, active.Total)
	assert.Equal(t, "Sara Smith", active.Patients[0].FullName)
	assert.Equal(t, "David Smith", active.Patients[1].FullName)

	discharged := uc.ListDischarged()
	require.Equal(t, 1, discharged.Total)
	assert.Equal(t, "Mike Jones", discharged.Patients[0].FullName)

	raw, err := os.ReadFile(filepath.Join(env.dir, "discharged_patient.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Mike Jones")

	raw, err = os.ReadFile(filepath.Join(env.dir, "patients_file.txt"))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "Mike Jones")
}

func TestDischargeOutOfRange(t *testing.T) {
	env := newTestEnv(t)
	uc := env.patients(t)
	_, err := uc.Discharge(0)
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestGroupBySurnameKeepsInsertionOrder(t *testing.T) {
	env := newTestEnv(t)
	uc := env.patients(t)
	admitSara(t, uc)

	for _, p := range []struct{ first, surname string }{
		{"Mike", "Jones"},
		{"David", "Smith"},
	} {
		_, err := uc.Admit(&dto.AdmitPatientRequest{
			FirstName: p.first, Surname: p.surname, Age: 30,
			Mobile: "07000000000", Postcode: "L1 1AA", Address: "Leeds",
			Symptoms: []string{"Headache"},
		})
		require.NoError(t, err)
	}

	groups := uc.GroupBySurname()
	require.Len(t, groups.Families, 2)
	assert.Equal(t, "Smith", groups.Families[0].Surname)
	require.Len(t, groups.Families[0].Patients, 2)
	assert.Equal(t, "Sara Smith", groups.Families[0].Patients[0].FullName)
	assert.Equal(t, "David Smith", groups.Families[0].Patients[1].FullName)
	assert.Equal(t, "Jones", groups.Families[1].Surname)
}
