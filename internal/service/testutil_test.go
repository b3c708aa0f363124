package service

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"eyeflow-api/internal/domain/appointment"
	"eyeflow-api/internal/domain/billing"
	"eyeflow-api/internal/domain/doctor"
	"eyeflow-api/internal/domain/patient"
	"eyeflow-api/internal/repository"
	"eyeflow-api/pkg/database"
	"eyeflow-api/pkg/metrics"
)

// env wires real repositories over an in-memory store so service
// tests exercise the same query paths production uses.
type env struct {
	db               *gorm.DB
	patientRepo      *repository.PatientRepository
	doctorRepo       *repository.DoctorRepository
	appointmentRepo  *repository.AppointmentRepository
	eyeTestRepo      *repository.EyeTestRepository
	prescriptionRepo *repository.PrescriptionRepository
	billingRepo      *repository.BillingRepository
	reportRepo       *repository.ReportRepository
	deleter          *repository.CascadeDeleter
	collector        *metrics.Collector
	log              *zap.Logger
}

func newEnv(t *testing.T) *env {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("getting sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(database.Models()...); err != nil {
		t.Fatalf("migrating test schema: %v", err)
	}

	return &env{
		db:               db,
		patientRepo:      repository.NewPatientRepository(db),
		doctorRepo:       repository.NewDoctorRepository(db),
		appointmentRepo:  repository.NewAppointmentRepository(db),
		eyeTestRepo:      repository.NewEyeTestRepository(db),
		prescriptionRepo: repository.NewPrescriptionRepository(db),
		billingRepo:      repository.NewBillingRepository(db),
		reportRepo:       repository.NewReportRepository(db),
		deleter:          repository.NewCascadeDeleter(db),
		collector:        metrics.NewCollector("eyeflow_test", prometheus.NewRegistry()),
		log:              zap.NewNop(),
	}
}

func (e *env) addPatient(t *testing.T, first, last, email string) *patient.Patient {
	t.Helper()

	p := &patient.Patient{
		FirstName:   first,
		LastName:    last,
		DateOfBirth: time.Date(1980, 5, 2, 0, 0, 0, 0, time.UTC),
		Gender:      patient.GenderOther,
		Phone:       "5550001111",
		Email:       email,
		Address:     "4 Main St",
	}
	if err := e.patientRepo.Create(context.Background(), p); err != nil {
		t.Fatalf("adding patient: %v", err)
	}
	return p
}

func (e *env) addDoctor(t *testing.T, first, last, email, license string) *doctor.Doctor {
	t.Helper()

	d := &doctor.Doctor{
		FirstName:     first,
		LastName:      last,
		Specialty:     "Ophthalmology",
		Phone:         "5552223333",
		Email:         email,
		LicenseNumber: license,
	}
	if err := e.doctorRepo.Create(context.Background(), d); err != nil {
		t.Fatalf("adding doctor: %v", err)
	}
	return d
}

func (e *env) addAppointment(t *testing.T, patientID, doctorID uint, date time.Time, status appointment.Status) *appointment.Appointment {
	t.Helper()

	a := &appointment.Appointment{
		PatientID:       patientID,
		DoctorID:        doctorID,
		AppointmentDate: date,
		AppointmentTime: "10:00",
		Status:          status,
	}
	if err := e.appointmentRepo.Create(context.Background(), a); err != nil {
		t.Fatalf("adding appointment: %v", err)
	}
	return a
}

func (e *env) addBilling(t *testing.T, patientID uint, amount float64, status billing.Status, created time.Time) *billing.Billing {
	t.Helper()

	b := &billing.Billing{
		CreatedAt: created,
		PatientID: patientID,
		Amount:    amount,
		Status:    status,
	}
	if err := e.billingRepo.Create(context.Background(), b); err != nil {
		t.Fatalf("adding billing: %v", err)
	}
	return b
}
