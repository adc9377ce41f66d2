package usecase

import (
	"io"
	"testing"

	"hospital-management-core/internal/delivery/dto"
	domainRepo "hospital-management-core/internal/domain/repository"
	"hospital-management-core/internal/repository"
	"hospital-management-core/internal/session"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// testEnv wires the repositories against a throwaway directory and loads a
// freshly bootstrapped session: the default admin, the three default doctors,
// and no patients.
type testEnv struct {
	dir   string
	state *session.Session
	log   *logrus.Logger

	adminRepo      domainRepo.AdminRepository
	doctorRepo     domainRepo.DoctorRepository
	patientRepo    domainRepo.PatientRepository
	dischargedRepo domainRepo.DischargedPatientRepository
	logRepo        domainRepo.AppointmentLogRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dir := t.TempDir()
	env := &testEnv{
		dir:            dir,
		log:            logrus.New(),
		adminRepo:      repository.NewAdminRepository(dir),
		doctorRepo:     repository.NewDoctorRepository(dir),
		patientRepo:    repository.NewPatientRepository(dir),
		dischargedRepo: repository.NewDischargedPatientRepository(dir),
		logRepo:        repository.NewAppointmentLogRepository(dir),
	}
	env.log.SetOutput(io.Discard)

	state, err := session.Load(env.adminRepo, env.doctorRepo, env.patientRepo, env.dischargedRepo, env.logRepo)
	require.NoError(t, err)
	env.state = state
	return env
}

func (e *testEnv) patients(t *testing.T) PatientUsecase {
	t.Helper()
	return NewPatientUsecase(e.state, e.log, e.patientRepo, e.dischargedRepo)
}

func (e *testEnv) doctors(t *testing.T) DoctorUsecase {
	t.Helper()
	return NewDoctorUsecase(e.state, e.log, e.doctorRepo, e.patientRepo)
}

func (e *testEnv) assignments(t *testing.T) AssignmentUsecase {
	t.Helper()
	return NewAssignmentUsecase(e.state, e.log, e.patientRepo, e.logRepo)
}

func (e *testEnv) reports(t *testing.T) ReportUsecase {
	t.Helper()
	return NewReportUsecase(e.state, e.log, e.logRepo)
}

// admitSara gives most tests their patient: Sara Smith, unassigned.
func admitSara(t *testing.T, patients PatientUsecase) {
	t.Helper()
	_, err := patients.Admit(&dto.AdmitPatientRequest{
		FirstName: "Sara",
		Surname:   "Smith",
		Age:       20,
		Mobile:    "07012345678",
		Postcode:  "B1 234",
		Address:   "Kathmandu",
		Symptoms:  []string{"Fever", "Cough"},
	})
	require.NoError(t, err)
}

func febAppointment() dto.AppointmentTimeRequest {
	return dto.AppointmentTimeRequest{Year: 2026, Month: 2, Day: 12, Hour: 9, Minute: 0}
}
