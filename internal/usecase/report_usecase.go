package usecase

import (
	"sort"

	"hospital-management-core/internal/delivery/dto"
	"hospital-management-core/internal/domain/entity"
	"hospital-management-core/internal/domain/repository"
	"hospital-management-core/internal/session"

	"github.com/sirupsen/logrus"
)

type ReportUsecase interface {
	DoctorTotals() *dto.DoctorTotalsReport
	PatientsPerDoctor() *dto.PatientsPerDoctorReport
	AppointmentsPerDoctor() *dto.AppointmentsPerDoctorReport
	PatientsBySymptom() *dto.SymptomsReport
	AppointmentsByMonth() (*dto.AppointmentsReport, error)
}

type reportUsecase struct {
	state   *session.Session
	log     *logrus.Logger
	logRepo repository.AppointmentLogRepository
}

func NewReportUsecase(state *session.Session, log *logrus.Logger, logRepo repository.AppointmentLogRepository) ReportUsecase {
	return &reportUsecase{
		state:   state,
		log:     log,
		logRepo: logRepo,
	}
}

// DoctorTotals reports the overall headcount and the breakdown per speciality.
func (u *reportUsecase) DoctorTotals() *dto.DoctorTotalsReport {
	u.state.Lock()
	defer u.state.Unlock()

	report := &dto.DoctorTotalsReport{
		TotalDoctors: len(u.state.Doctors),
		BySpeciality: map[string]int{},
	}
	for _, doctor := range u.state.Doctors {
		report.BySpeciality[doctor.Speciality]++
	}
	return report
}

// PatientsPerDoctor reports how many patients each doctor currently carries,
// in registration order.
func (u *reportUsecase) PatientsPerDoctor() *dto.PatientsPerDoctorReport {
	u.state.Lock()
	defer u.state.Unlock()

	report := &dto.PatientsPerDoctorReport{Doctors: []dto.DoctorPatientCount{}}
	for _, doctor := range u.state.Doctors {
		report.Doctors = append(report.Doctors, dto.DoctorPatientCount{
			Doctor:   doctor.FullName(),
			Patients: doctor.TotalPatients(),
		})
	}
	return report
}

// AppointmentsPerDoctor reports each doctor's scheduling events counted per
// "Month Year" label, in registration order.
func (u *reportUsecase) AppointmentsPerDoctor() *dto.AppointmentsPerDoctorReport {
	u.state.Lock()
	defer u.state.Unlock()

	report := &dto.AppointmentsPerDoctorReport{Doctors: []dto.DoctorMonthlyAppointments{}}
	for _, doctor := range u.state.Doctors {
		months := map[string]int{}
		for label, count := range doctor.AppointmentsByMonth {
			months[label] = count
		}
		report.Doctors = append(report.Doctors, dto.DoctorMonthlyAppointments{
			Doctor: doctor.FullName(),
			Months: months,
		})
	}
	return report
}

// PatientsBySymptom counts active patients per recorded symptom, most common
// first. Ties break alphabetically so the ordering is reproducible.
func (u *reportUsecase) PatientsBySymptom() *dto.SymptomsReport {
	u.state.Lock()
	defer u.state.Unlock()

	counts := map[string]int{}
	for _, patient := range u.state.Patients {
		for _, symptom := range patient.Symptoms {
			counts[symptom]++
		}
	}

	report := &dto.SymptomsReport{Symptoms: []dto.SymptomCount{}}
	for symptom, patients := range counts {
		report.Symptoms = append(report.Symptoms, dto.SymptomCount{Symptom: symptom, Patients: patients})
	}
	sort.Slice(report.Symptoms, func(i, j int) bool {
		if report.Symptoms[i].Patients != report.Symptoms[j].Patients {
			return report.Symptoms[i].Patients > report.Symptoms[j].Patients
		}
		return report.Symptoms[i].Symptom < report.Symptoms[j].Symptom
	})
	return report
}

// AppointmentsByMonth re-reads the full appointment log and groups its rows
// by "YYYY/MM", months ascending, rows in log order within a month.
func (u *reportUsecase) AppointmentsByMonth() (*dto.AppointmentsReport, error) {
	appointments, err := u.logRepo.LoadAll()
	if err != nil {
		u.log.Errorf("Failed to read appointment log: %+v", err)
		return nil, err
	}

	byMonth := map[string][]dto.AppointmentEntry{}
	for _, appointment := range appointments {
		key := appointment.YearMonth()
		byMonth[key] = append(byMonth[key], dto.AppointmentEntry{
			Patient:  appointment.PatientFullName,
			Doctor:   appointment.DoctorFullName,
			DateTime: appointment.When.Format(entity.AppointmentTimeLayout),
			Updated:  appointment.Updated,
		})
	}

	keys := make([]string, 0, len(byMonth))
	for key := range byMonth {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	report := &dto.AppointmentsReport{Months: []dto.MonthAppointments{}}
	for _, key := range keys {
		report.Months = append(report.Months, dto.MonthAppointments{
			YearMonth:    key,
			Appointments: byMonth[key],
		})
	}
	return report, nil
}
