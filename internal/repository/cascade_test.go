package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"eyeflow-api/internal/domain/appointment"
	"eyeflow-api/internal/domain/billing"
	"eyeflow-api/internal/domain/eyetest"
	"eyeflow-api/internal/domain/patient"
	"eyeflow-api/internal/domain/prescription"
)

func TestCascadeDeleter_Patient(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	deleter := NewCascadeDeleter(db)

	p1 := seedPatient(t, db, "p1@example.com")
	p2 := seedPatient(t, db, "p2@example.com")
	d := seedDoctor(t, db, "doc@example.com", "LIC-1")

	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	a1 := seedAppointment(t, db, p1.ID, d.ID, date)
	a2 := seedAppointment(t, db, p2.ID, d.ID, date)

	rxRepo := NewPrescriptionRepository(db)
	rx1 := &prescription.Prescription{
		PatientID:        p1.ID,
		DoctorID:         d.ID,
		PrescriptionDate: date,
		DurationMonths:   12,
	}
	if err := rxRepo.Create(ctx, rx1); err != nil {
		t.Fatalf("creating prescription: %v", err)
	}

	etRepo := NewEyeTestRepository(db)
	et1 := &eyetest.EyeTestResult{AppointmentID: a1.ID, PatientID: p1.ID, TestDate: date}
	if err := etRepo.Create(ctx, et1); err != nil {
		t.Fatalf("creating eye test: %v", err)
	}

	linked := seedBilling(t, db, p1.ID, &a1.ID, 100, billing.StatusPaid)
	// Unlinked billing: outside the appointment-reachable closure,
	// so it survives the patient delete.
	unlinked := seedBilling(t, db, p1.ID, nil, 50, billing.StatusPending)
	other := seedBilling(t, db, p2.ID, &a2.ID, 75, billing.StatusPaid)

	if err := deleter.DeletePatient(ctx, p1.ID); err != nil {
		t.Fatalf("DeletePatient: %v", err)
	}

	if _, err := NewPatientRepository(db).GetByID(ctx, p1.ID); !errors.Is(err, patient.ErrPatientNotFound) {
		t.Errorf("patient still present: %v", err)
	}
	if _, err := NewAppointmentRepository(db).GetByID(ctx, a1.ID); !errors.Is(err, appointment.ErrAppointmentNotFound) {
		t.Errorf("appointment still present: %v", err)
	}
	if _, err := rxRepo.GetByID(ctx, rx1.ID); !errors.Is(err, prescription.ErrPrescriptionNotFound) {
		t.Errorf("prescription still present: %v", err)
	}
	if _, err := etRepo.GetByID(ctx, et1.ID); !errors.Is(err, eyetest.ErrResultNotFound) {
		t.Errorf("eye test still present: %v", err)
	}

	billRepo := NewBillingRepository(db)
	if _, err := billRepo.GetByID(ctx, linked.ID); !errors.Is(err, billing.ErrBillingNotFound) {
		t.Errorf("linked billing still present: %v", err)
	}
	if _, err := billRepo.GetByID(ctx, unlinked.ID); err != nil {
		t.Errorf("unlinked billing should survive: %v", err)
	}

	// The other patient's records are untouched.
	if _, err := NewPatientRepository(db).GetByID(ctx, p2.ID); err != nil {
		t.Errorf("other patient removed: %v", err)
	}
	if _, err := NewAppointmentRepository(db).GetByID(ctx, a2.ID); err != nil {
		t.Errorf("other appointment removed: %v", err)
	}
	if _, err := billRepo.GetByID(ctx, other.ID); err != nil {
		t.Errorf("other billing removed: %v", err)
	}
}

func TestCascadeDeleter_Doctor(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	deleter := NewCascadeDeleter(db)

	p := seedPatient(t, db, "p@example.com")
	d1 := seedDoctor(t, db, "d1@example.com", "LIC-1")
	d2 := seedDoctor(t, db, "d2@example.com", "LIC-2")

	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	a1 := seedAppointment(t, db, p.ID, d1.ID, date)
	a2 := seedAppointment(t, db, p.ID, d2.ID, date)

	rxRepo := NewPrescriptionRepository(db)
	rx := &prescription.Prescription{
		PatientID:        p.ID,
		DoctorID:         d1.ID,
		PrescriptionDate: date,
		DurationMonths:   6,
	}
	if err := rxRepo.Create(ctx, rx); err != nil {
		t.Fatalf("creating prescription: %v", err)
	}

	b1 := seedBilling(t, db, p.ID, &a1.ID, 120, billing.StatusPending)
	b2 := seedBilling(t, db, p.ID, &a2.ID, 80, billing.StatusPending)

	if err := deleter.DeleteDoctor(ctx, d1.ID); err != nil {
		t.Fatalf("DeleteDoctor: %v", err)
	}

	apptRepo := NewAppointmentRepository(db)
	if _, err := apptRepo.GetByID(ctx, a1.ID); !errors.Is(err, appointment.ErrAppointmentNotFound) {
		t.Errorf("appointment for deleted doctor still present: %v", err)
	}
	if _, err := apptRepo.GetByID(ctx, a2.ID); err != nil {
		t.Errorf("other doctor's appointment removed: %v", err)
	}
	if _, err := rxRepo.GetByID(ctx, rx.ID); !errors.Is(err, prescription.ErrPrescriptionNotFound) {
		t.Errorf("prescription still present: %v", err)
	}

	billRepo := NewBillingRepository(db)
	if _, err := billRepo.GetByID(ctx, b1.ID); !errors.Is(err, billing.ErrBillingNotFound) {
		t.Errorf("billing for deleted doctor's appointment still present: %v", err)
	}
	if _, err := billRepo.GetByID(ctx, b2.ID); err != nil {
		t.Errorf("other billing removed: %v", err)
	}

	// The shared patient is never part of a doctor cascade.
	if _, err := NewPatientRepository(db).GetByID(ctx, p.ID); err != nil {
		t.Errorf("patient removed by doctor cascade: %v", err)
	}
}

func TestCascadeDeleter_Appointment(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	deleter := NewCascadeDeleter(db)

	p := seedPatient(t, db, "p@example.com")
	d := seedDoctor(t, db, "d@example.com", "LIC-1")

	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	a := seedAppointment(t, db, p.ID, d.ID, date)

	etRepo := NewEyeTestRepository(db)
	et := &eyetest.EyeTestResult{AppointmentID: a.ID, PatientID: p.ID, TestDate: date}
	if err := etRepo.Create(ctx, et); err != nil {
		t.Fatalf("creating eye test: %v", err)
	}
	b := seedBilling(t, db, p.ID, &a.ID, 200, billing.StatusPaid)

	if err := deleter.DeleteAppointment(ctx, a.ID); err != nil {
		t.Fatalf("DeleteAppointment: %v", err)
	}

	if _, err := NewAppointmentRepository(db).GetByID(ctx, a.ID); !errors.Is(err, appointment.ErrAppointmentNotFound) {
		t.Errorf("appointment still present: %v", err)
	}
	if _, err := etRepo.GetByID(ctx, et.ID); !errors.Is(err, eyetest.ErrResultNotFound) {
		t.Errorf("eye test still present: %v", err)
	}
	if _, err := NewBillingRepository(db).GetByID(ctx, b.ID); !errors.Is(err, billing.ErrBillingNotFound) {
		t.Errorf("billing still present: %v", err)
	}

	// Parents of the appointment stay.
	if _, err := NewPatientRepository(db).GetByID(ctx, p.ID); err != nil {
		t.Errorf("patient removed: %v", err)
	}
	if _, err := NewDoctorRepository(db).GetByID(ctx, d.ID); err != nil {
		t.Errorf("doctor removed: %v", err)
	}
}

func TestCascadeDeleter_MissingParent(t *testing.T) {
	db := newTestDB(t)
	deleter := NewCascadeDeleter(db)

	if err := deleter.DeletePatient(context.Background(), 42); !errors.Is(err, patient.ErrPatientNotFound) {
		t.Fatalf("err = %v, want ErrPatientNotFound", err)
	}
	if err := deleter.DeleteAppointment(context.Background(), 42); !errors.Is(err, appointment.ErrAppointmentNotFound) {
		t.Fatalf("err = %v, want ErrAppointmentNotFound", err)
	}
}
