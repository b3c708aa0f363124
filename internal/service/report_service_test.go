package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"eyeflow-api/internal/domain/appointment"
	"eyeflow-api/internal/domain/billing"
	"eyeflow-api/internal/domain/prescription"
	"eyeflow-api/internal/domain/report"
)

func newReportService(e *env) *ReportService {
	return NewReportService(
		e.reportRepo, e.patientRepo, e.doctorRepo, e.appointmentRepo,
		e.prescriptionRepo, e.billingRepo, e.collector, e.log,
	)
}

func TestReportService_AppointmentSummary(t *testing.T) {
	e := newEnv(t)
	svc := newReportService(e)
	ctx := context.Background()

	p := e.addPatient(t, "Ana", "Silva", "ana@example.com")
	d := e.addDoctor(t, "Maria", "Gonzalez", "mg@example.com", "LIC-1")

	e.addAppointment(t, p.ID, d.ID, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), appointment.StatusScheduled)
	e.addAppointment(t, p.ID, d.ID, time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), appointment.StatusCompleted)
	e.addAppointment(t, p.ID, d.ID, time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC), appointment.StatusCancelled)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	r, err := svc.Generate(ctx, &report.GenerateCommand{
		Type:      report.TypeAppointmentSummary,
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	var payload report.AppointmentSummaryPayload
	if err := json.Unmarshal(r.Payload(), &payload); err != nil {
		t.Fatalf("decoding payload: %v", err)
	}
	if payload.TotalAppointments != 2 || payload.Scheduled != 1 || payload.Completed != 1 || payload.Cancelled != 0 {
		t.Errorf("payload = %+v, want total=2 scheduled=1 completed=1 cancelled=0", payload)
	}

	if r.Parameters == nil || r.Parameters.StartDate == nil || *r.Parameters.StartDate != "2024-01-01" {
		t.Errorf("start date parameter = %+v, want 2024-01-01", r.Parameters)
	}
	if r.GeneratedBy != "System User" {
		t.Errorf("generated_by = %q, want System User", r.GeneratedBy)
	}
}

func TestReportService_BillingSummary(t *testing.T) {
	e := newEnv(t)
	svc := newReportService(e)
	ctx := context.Background()

	p := e.addPatient(t, "Ana", "Silva", "ana@example.com")
	created := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	e.addBilling(t, p.ID, 100, billing.StatusPaid, created)
	e.addBilling(t, p.ID, 50, billing.StatusPending, created)
	e.addBilling(t, p.ID, 75, billing.StatusPaid, created)

	r, err := svc.Generate(ctx, &report.GenerateCommand{Type: report.TypeBillingSummary})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	var payload report.BillingSummaryPayload
	if err := json.Unmarshal(r.Payload(), &payload); err != nil {
		t.Fatalf("decoding payload: %v", err)
	}
	if payload.TotalBillings != 3 || payload.Paid != 2 || payload.Pending != 1 {
		t.Errorf("payload = %+v, want total=3 paid=2 pending=1", payload)
	}
	if payload.TotalAmount != 175 {
		t.Errorf("total_amount = %v, want 175 (paid only)", payload.TotalAmount)
	}
}

func TestReportService_PatientHistory(t *testing.T) {
	e := newEnv(t)
	svc := newReportService(e)
	ctx := context.Background()

	p1 := e.addPatient(t, "Ana", "Silva", "ana@example.com")
	p2 := e.addPatient(t, "Ben", "Okafor", "ben@example.com")
	d := e.addDoctor(t, "Maria", "Gonzalez", "mg@example.com", "LIC-1")

	date := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	e.addAppointment(t, p1.ID, d.ID, date, appointment.StatusCompleted)
	e.addAppointment(t, p1.ID, d.ID, date, appointment.StatusScheduled)
	e.addBilling(t, p1.ID, 60, billing.StatusPaid, date)

	rx := &prescription.Prescription{
		PatientID:        p1.ID,
		DoctorID:         d.ID,
		PrescriptionDate: date,
		DurationMonths:   12,
	}
	if err := e.prescriptionRepo.Create(ctx, rx); err != nil {
		t.Fatalf("creating prescription: %v", err)
	}

	t.Run("all patients", func(t *testing.T) {
		r, err := svc.Generate(ctx, &report.GenerateCommand{Type: report.TypePatientHistory})
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}

		var payload report.PatientHistoryPayload
		if err := json.Unmarshal(r.Payload(), &payload); err != nil {
			t.Fatalf("decoding payload: %v", err)
		}
		if len(payload.Patients) != 2 {
			t.Fatalf("len(patients) = %d, want 2", len(payload.Patients))
		}
		first := payload.Patients[0]
		if first.ID != p1.ID || first.Appointments != 2 || first.Prescriptions != 1 || first.Billings != 1 {
			t.Errorf("first patient activity = %+v", first)
		}
	})

	t.Run("single patient filter", func(t *testing.T) {
		r, err := svc.Generate(ctx, &report.GenerateCommand{
			Type:      report.TypePatientHistory,
			PatientID: &p2.ID,
		})
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}

		var payload report.PatientHistoryPayload
		if err := json.Unmarshal(r.Payload(), &payload); err != nil {
			t.Fatalf("decoding payload: %v", err)
		}
		if len(payload.Patients) != 1 || payload.Patients[0].ID != p2.ID {
			t.Fatalf("payload = %+v, want only patient %d", payload, p2.ID)
		}
		if payload.Patients[0].Appointments != 0 {
			t.Errorf("appointments = %d, want 0", payload.Patients[0].Appointments)
		}
	})
}

func TestReportService_DoctorPerformance(t *testing.T) {
	e := newEnv(t)
	svc := newReportService(e)
	ctx := context.Background()

	p := e.addPatient(t, "Ana", "Silva", "ana@example.com")
	d1 := e.addDoctor(t, "Maria", "Gonzalez", "mg@example.com", "LIC-1")
	d2 := e.addDoctor(t, "Raj", "Patel", "rp@example.com", "LIC-2")

	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	e.addAppointment(t, p.ID, d1.ID, date, appointment.StatusCompleted)
	e.addAppointment(t, p.ID, d1.ID, date, appointment.StatusCompleted)
	e.addAppointment(t, p.ID, d2.ID, date, appointment.StatusScheduled)

	r, err := svc.Generate(ctx, &report.GenerateCommand{Type: report.TypeDoctorPerformance})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	var payload report.DoctorPerformancePayload
	if err := json.Unmarshal(r.Payload(), &payload); err != nil {
		t.Fatalf("decoding payload: %v", err)
	}
	if len(payload.Doctors) != 2 {
		t.Fatalf("len(doctors) = %d, want 2", len(payload.Doctors))
	}
	if payload.Doctors[0].Appointments != 2 || payload.Doctors[1].Appointments != 1 {
		t.Errorf("appointment counts = %+v", payload.Doctors)
	}
}

func TestReportService_InvalidType(t *testing.T) {
	e := newEnv(t)
	svc := newReportService(e)

	_, err := svc.Generate(context.Background(), &report.GenerateCommand{Type: "weekly_digest"})
	if !errors.Is(err, report.ErrInvalidReportType) {
		t.Fatalf("err = %v, want ErrInvalidReportType", err)
	}
}

func TestReportService_SnapshotIsStable(t *testing.T) {
	e := newEnv(t)
	svc := newReportService(e)
	ctx := context.Background()

	p := e.addPatient(t, "Ana", "Silva", "ana@example.com")
	e.addBilling(t, p.ID, 100, billing.StatusPaid, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))

	r, err := svc.Generate(ctx, &report.GenerateCommand{Type: report.TypeBillingSummary})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	// New data after generation must not change the stored snapshot.
	e.addBilling(t, p.ID, 500, billing.StatusPaid, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC))

	got, err := svc.Get(ctx, r.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	var payload report.BillingSummaryPayload
	if err := json.Unmarshal(got.Payload(), &payload); err != nil {
		t.Fatalf("decoding payload: %v", err)
	}
	if payload.TotalBillings != 1 || payload.TotalAmount != 100 {
		t.Errorf("snapshot changed after generation: %+v", payload)
	}
}
