package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"eyeflow-api/internal/domain/appointment"
	"eyeflow-api/internal/domain/patient"
)

func newPatientService(e *env) *PatientService {
	return NewPatientService(e.patientRepo, e.deleter, e.collector, e.log)
}

func TestPatientService_Register(t *testing.T) {
	e := newEnv(t)
	svc := newPatientService(e)
	ctx := context.Background()

	cmd := &patient.Command{
		FirstName:   "Ana",
		LastName:    "Silva",
		DateOfBirth: time.Date(1985, 3, 12, 0, 0, 0, 0, time.UTC),
		Gender:      patient.GenderFemale,
		Phone:       "5551234567",
		Email:       "ana@example.com",
		Address:     "12 Harbor Lane",
	}

	p, err := svc.Register(ctx, cmd)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if p.ID == 0 {
		t.Fatal("expected assigned id")
	}

	if _, err := svc.Register(ctx, cmd); !errors.Is(err, patient.ErrEmailTaken) {
		t.Fatalf("second Register err = %v, want ErrEmailTaken", err)
	}
}

func TestPatientService_UpdateEmailConflict(t *testing.T) {
	e := newEnv(t)
	svc := newPatientService(e)
	ctx := context.Background()

	p1 := e.addPatient(t, "Ana", "Silva", "ana@example.com")
	e.addPatient(t, "Ben", "Okafor", "ben@example.com")

	cmd := &patient.Command{
		FirstName:   p1.FirstName,
		LastName:    p1.LastName,
		DateOfBirth: p1.DateOfBirth,
		Gender:      p1.Gender,
		Phone:       p1.Phone,
		Email:       "ben@example.com",
		Address:     p1.Address,
	}
	if _, err := svc.Update(ctx, p1.ID, cmd); !errors.Is(err, patient.ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}

	// Keeping your own email is not a conflict.
	cmd.Email = "ana@example.com"
	cmd.Phone = "5559998888"
	updated, err := svc.Update(ctx, p1.ID, cmd)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Phone != "5559998888" {
		t.Errorf("phone = %q, want updated value", updated.Phone)
	}
}

func TestPatientService_DeleteCascades(t *testing.T) {
	e := newEnv(t)
	svc := newPatientService(e)
	ctx := context.Background()

	p := e.addPatient(t, "Ana", "Silva", "ana@example.com")
	d := e.addDoctor(t, "Maria", "Gonzalez", "mg@example.com", "LIC-1")
	a := e.addAppointment(t, p.ID, d.ID, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), appointment.StatusScheduled)

	if err := svc.Delete(ctx, p.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := svc.Get(ctx, p.ID); !errors.Is(err, patient.ErrPatientNotFound) {
		t.Errorf("patient still present: %v", err)
	}
	if _, err := e.appointmentRepo.GetByID(ctx, a.ID); !errors.Is(err, appointment.ErrAppointmentNotFound) {
		t.Errorf("appointment still present: %v", err)
	}
}

func TestPatientService_DeleteMissing(t *testing.T) {
	e := newEnv(t)
	svc := newPatientService(e)

	if err := svc.Delete(context.Background(), 123); !errors.Is(err, patient.ErrPatientNotFound) {
		t.Fatalf("err = %v, want ErrPatientNotFound", err)
	}
}
