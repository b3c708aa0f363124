package repository

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"eyeflow-api/internal/domain/appointment"
	"eyeflow-api/internal/domain/billing"
	"eyeflow-api/internal/domain/doctor"
	"eyeflow-api/internal/domain/patient"
	"eyeflow-api/pkg/database"
)

// newTestDB opens an in-memory sqlite database with the full schema.
// A single connection keeps every query on the same :memory: store.
func newTestDB(t *testing.T) *gorm.DB {
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
	return db
}

func seedPatient(t *testing.T, db *gorm.DB, email string) *patient.Patient {
	t.Helper()

	p := &patient.Patient{
		FirstName:   "Ana",
		LastName:    "Silva",
		DateOfBirth: time.Date(1985, 3, 12, 0, 0, 0, 0, time.UTC),
		Gender:      patient.GenderFemale,
		Phone:       "5551234567",
		Email:       email,
		Address:     "12 Harbor Lane",
	}
	if err := NewPatientRepository(db).Create(context.Background(), p); err != nil {
		t.Fatalf("seeding patient: %v", err)
	}
	return p
}

func seedDoctor(t *testing.T, db *gorm.DB, email, license string) *doctor.Doctor {
	t.Helper()

	d := &doctor.Doctor{
		FirstName:     "Maria",
		LastName:      "Gonzalez",
		Specialty:     "Ophthalmology",
		Phone:         "5559876543",
		Email:         email,
		LicenseNumber: license,
	}
	if err := NewDoctorRepository(db).Create(context.Background(), d); err != nil {
		t.Fatalf("seeding doctor: %v", err)
	}
	return d
}

func seedAppointment(t *testing.T, db *gorm.DB, patientID, doctorID uint, date time.Time) *appointment.Appointment {
	t.Helper()

	a := &appointment.Appointment{
		PatientID:       patientID,
		DoctorID:        doctorID,
		AppointmentDate: date,
		AppointmentTime: "09:30",
		Status:          appointment.StatusScheduled,
	}
	if err := NewAppointmentRepository(db).Create(context.Background(), a); err != nil {
		t.Fatalf("seeding appointment: %v", err)
	}
	return a
}

func seedBilling(t *testing.T, db *gorm.DB, patientID uint, appointmentID *uint, amount float64, status billing.Status) *billing.Billing {
	t.Helper()

	b := &billing.Billing{
		PatientID:     patientID,
		AppointmentID: appointmentID,
		Amount:        amount,
		Status:        status,
	}
	if err := NewBillingRepository(db).Create(context.Background(), b); err != nil {
		t.Fatalf("seeding billing: %v", err)
	}
	return b
}
