package usecase

import (
	"os"
	"path/filepath"
	"testing"

	"hospital-management-core/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignLinksPatientAndDoctor(t *testing.T) {
	env := newTestEnv(t)
	admitSara(t, env.patients(t))
	uc := env.assignments(t)

	john := env.state.DoctorByFullName("John Smith")
	require.NotNil(t, john)

	res, err := uc.Assign(0, john.ID, febAppointment())
	require.NoError(t, err)
	assert.Equal(t, "Sara Smith", res.Patient)
	assert.Equal(t, "John Smith", res.Doctor)
	assert.Equal(t, "2026/02/12 09:00", res.AppointmentDate)

	patient, ok := env.state.PatientAt(0)
	require.True(t, ok)
	assert.True(t, patient.Assigned())
	assert.Equal(t, "John Smith", patient.Doctor)

	assert.Equal(t, []string{"Sara Smith"}, john.Patients)
	assert.Equal(t, map[string]int{"February 2026": 1}, john.AppointmentsByMonth)

	// The patient file now carries the doctor name and the log has one row.
	raw, err := os.ReadFile(filepath.Join(env.dir, "patients_file.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Sara Smith|20|07012345678|B1 234|Kathmandu|Fever, Cough|John Smith")

	raw, err = os.ReadFile(filepath.Join(env.dir, "2026_appointments.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Sara Smith|John Smith|2026/02/12 09:00")
	assert.NotContains(t, string(raw), "(Updated)")
}

func TestAssignRejectsAlreadyAssignedPatient(t *testing.T) {
	env := newTestEnv(t)
	admitSara(t, env.patients(t))
	uc := env.assignments(t)

	john := env.state.DoctorByFullName("John Smith")
	_, err := uc.Assign(0, john.ID, febAppointment())
	require.NoError(t, err)

	jane := env.state.DoctorByFullName("Jane Smith")
	_, err = uc.Assign(0, jane.ID, febAppointment())
	assert.ErrorIs(t, err, ErrAlreadyAssigned)
	assert.Empty(t, jane.Patients)
}

func TestAssignRejectsInvalidTimeBeforeTouchingState(t *testing.T) {
	env := newTestEnv(t)
	admitSara(t, env.patients(t))
	uc := env.assignments(t)

	john := env.state.DoctorByFullName("John Smith")
	bad := febAppointment()
	bad.Hour = 25

	_, err := uc.Assign(0, john.ID, bad)
	var verr *entity.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "hour", verr.Field)

	patient, _ := env.state.PatientAt(0)
	assert.False(t, patient.Assigned())
	assert.Empty(t, john.Patients)
	_, statErr := os.Stat(filepath.Join(env.dir, "2026_appointments.txt"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRelocateKeepsPreviousDoctorMembership(t *testing.T) {
	env := newTestEnv(t)
	admitSara(t, env.patients(t))
	uc := env.assignments(t)

	john := env.state.DoctorByFullName("John Smith")
	jane := env.state.DoctorByFullName("Jane Smith")

	_, err := uc.Assign(0, john.ID, febAppointment())
	require.NoError(t, err)

	later := febAppointment()
	later.Month = 3
	res, err := uc.Relocate(0, jane.ID, later)
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", res.Doctor)

	patient, _ := env.state.PatientAt(0)
	assert.Equal(t, "Jane Smith", patient.Doctor)

	// The previous doctor's list is never pruned.
	assert.Equal(t, []string{"Sara Smith"}, john.Patients)
	assert.Equal(t, []string{"Sara Smith"}, jane.Patients)
	assert.Equal(t, map[string]int{"March 2026": 1}, jane.AppointmentsByMonth)

	raw, err := os.ReadFile(filepath.Join(env.dir, "2026_appointments.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Sara Smith|John Smith|2026/02/12 09:00")
	assert.Contains(t, string(raw), "Sara Smith|Jane Smith|2026/03/12 09:00")
}

func TestRelocateRequiresAssignedPatient(t *testing.T) {
	env := newTestEnv(t)
	admitSara(t, env.patients(t))
	uc := env.assignments(t)

	jane := env.state.DoctorByFullName("Jane Smith")
	_, err := uc.Relocate(0, jane.ID, febAppointment())
	assert.ErrorIs(t, err, ErrNotAssigned)
}

func TestRescheduleAppendsMarkedRowWithoutRewrite(t *testing.T) {
	env := newTestEnv(t)
	admitSara(t, env.patients(t))
	uc := env.assignments(t)

	john := env.state.DoctorByFullName("John Smith")
	_, err := uc.Assign(0, john.ID, febAppointment())
	require.NoError(t, err)

	before, err := os.ReadFile(filepath.Join(env.dir, "patients_file.txt"))
	require.NoError(t, err)

	moved := febAppointment()
	moved.Day = 20
	res, err := uc.Reschedule(0, moved)
	require.NoError(t, err)
	assert.Equal(t, "2026/02/20 09:00", res.AppointmentDate)

	// One fresh appointment only: the rescheduled row is marked and the
	// doctor's month counter is unchanged.
	assert.Equal(t, map[string]int{"February 2026": 1}, john.AppointmentsByMonth)

	raw, err := os.ReadFile(filepath.Join(env.dir, "2026_appointments.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Sara Smith|John Smith|2026/02/20 09:00 (Updated)")

	after, err := os.ReadFile(filepath.Join(env.dir, "patients_file.txt"))
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestAssignUnknownPatientOrDoctor(t *testing.T) {
	env := newTestEnv(t)
	uc := env.assignments(t)

	john := env.state.DoctorByFullName("John Smith")
	_, err := uc.Assign(0, john.ID, febAppointment())
	assert.ErrorIs(t, err, ErrPatientNotFound)

	admitSara(t, env.patients(t))
	_, err = uc.Assign(0, uuid.New(), febAppointment())
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}
