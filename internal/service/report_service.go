package service

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"eyeflow-api/internal/domain/appointment"
	"eyeflow-api/internal/domain/billing"
	"eyeflow-api/internal/domain/doctor"
	"eyeflow-api/internal/domain/patient"
	"eyeflow-api/internal/domain/prescription"
	"eyeflow-api/internal/domain/report"
	"eyeflow-api/internal/forms"
	"eyeflow-api/pkg/metrics"
)

const defaultGeneratedBy = "System User"

// ReportService computes point-in-time aggregate snapshots. Payloads
// are persisted at generation and never recomputed on read.
type ReportService struct {
	repo             report.Repository
	patientRepo      patient.Repository
	doctorRepo       doctor.Repository
	appointmentRepo  appointment.Repository
	prescriptionRepo prescription.Repository
	billingRepo      billing.Repository
	metrics          *metrics.Collector
	log              *zap.Logger
}

func NewReportService(
	repo report.Repository,
	patientRepo patient.Repository,
	doctorRepo doctor.Repository,
	appointmentRepo appointment.Repository,
	prescriptionRepo prescription.Repository,
	billingRepo billing.Repository,
	collector *metrics.Collector,
	log *zap.Logger,
) *ReportService {
	return &ReportService{
		repo:             repo,
		patientRepo:      patientRepo,
		doctorRepo:       doctorRepo,
		appointmentRepo:  appointmentRepo,
		prescriptionRepo: prescriptionRepo,
		billingRepo:      billingRepo,
		metrics:          collector,
		log:              log,
	}
}

func (s *ReportService) Generate(ctx context.Context, cmd *report.GenerateCommand) (*report.Report, error) {
	if !cmd.Type.IsValid() {
		return nil, report.ErrInvalidReportType
	}

	var (
		payload any
		err     error
	)
	switch cmd.Type {
	case report.TypePatientHistory:
		payload, err = s.patientHistory(ctx, cmd.PatientID)
	case report.TypeAppointmentSummary:
		payload, err = s.appointmentSummary(ctx, cmd)
	case report.TypeBillingSummary:
		payload, err = s.billingSummary(ctx, cmd)
	case report.TypeDoctorPerformance:
		payload, err = s.doctorPerformance(ctx, cmd.DoctorID)
	}
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding report payload: %w", err)
	}

	generatedBy := cmd.GeneratedBy
	if generatedBy == "" {
		generatedBy = defaultGeneratedBy
	}

	r := &report.Report{
		ReportType:  cmd.Type,
		GeneratedBy: generatedBy,
		Parameters:  buildParameters(cmd),
		Data:        string(data),
	}

	if err := s.repo.Create(ctx, r); err != nil {
		s.log.Error("failed to persist report", zap.Error(err))
		return nil, fmt.Errorf("persisting report: %w", err)
	}

	s.metrics.ReportsGeneratedTotal.WithLabelValues(string(cmd.Type)).Inc()
	s.log.Info("report generated",
		zap.Uint("report_id", r.ID),
		zap.String("report_type", string(r.ReportType)),
	)
	return r, nil
}

func (s *ReportService) Get(ctx context.Context, id uint) (*report.Report, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ReportService) List(ctx context.Context) ([]*report.Report, error) {
	return s.repo.List(ctx)
}

func (s *ReportService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("report deleted", zap.Uint("report_id", id))
	return nil
}

// patientHistory counts activity per patient: for one patient when an
// id is given, for every patient otherwise.
func (s *ReportService) patientHistory(ctx context.Context, patientID *uint) (*report.PatientHistoryPayload, error) {
	var patients []*patient.Patient
	if patientID != nil {
		p, err := s.patientRepo.GetByID(ctx, *patientID)
		if err != nil {
			return nil, err
		}
		patients = []*patient.Patient{p}
	} else {
		var err error
		patients, err = s.patientRepo.List(ctx)
		if err != nil {
			return nil, err
		}
	}

	payload := &report.PatientHistoryPayload{Patients: make([]report.PatientActivity, 0, len(patients))}
	for _, p := range patients {
		appts, err := s.appointmentRepo.CountByPatient(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		rxs, err := s.prescriptionRepo.CountByPatient(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		bills, err := s.billingRepo.CountByPatient(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		payload.Patients = append(payload.Patients, report.PatientActivity{
			ID:            p.ID,
			Name:          p.FullName(),
			Appointments:  appts,
			Prescriptions: rxs,
			Billings:      bills,
		})
	}
	return payload, nil
}

// appointmentSummary buckets appointments inside the date window by
// status. Both bounds are inclusive; a missing bound is open-ended.
func (s *ReportService) appointmentSummary(ctx context.Context, cmd *report.GenerateCommand) (*report.AppointmentSummaryPayload, error) {
	appts, err := s.appointmentRepo.ListByDateRange(ctx, cmd.StartDate, cmd.EndDate)
	if err != nil {
		return nil, err
	}

	payload := &report.AppointmentSummaryPayload{TotalAppointments: len(appts)}
	for _, a := range appts {
		switch a.Status {
		case appointment.StatusScheduled:
			payload.Scheduled++
		case appointment.StatusCompleted:
			payload.Completed++
		case appointment.StatusCancelled:
			payload.Cancelled++
		}
	}
	return payload, nil
}

// billingSummary windows on record creation time. The amount total
// covers paid billings only.
func (s *ReportService) billingSummary(ctx context.Context, cmd *report.GenerateCommand) (*report.BillingSummaryPayload, error) {
	bills, err := s.billingRepo.ListByCreatedRange(ctx, cmd.StartDate, cmd.EndDate)
	if err != nil {
		return nil, err
	}

	payload := &report.BillingSummaryPayload{TotalBillings: len(bills)}
	for _, b := range bills {
		switch b.Status {
		case billing.StatusPaid:
			payload.Paid++
			payload.TotalAmount += b.Amount
		case billing.StatusPending:
			payload.Pending++
		}
	}
	return payload, nil
}

func (s *ReportService) doctorPerformance(ctx context.Context, doctorID *uint) (*report.DoctorPerformancePayload, error) {
	var doctors []*doctor.Doctor
	if doctorID != nil {
		d, err := s.doctorRepo.GetByID(ctx, *doctorID)
		if err != nil {
			return nil, err
		}
		doctors = []*doctor.Doctor{d}
	} else {
		var err error
		doctors, err = s.doctorRepo.List(ctx)
		if err != nil {
			return nil, err
		}
	}

	payload := &report.DoctorPerformancePayload{Doctors: make([]report.DoctorActivity, 0, len(doctors))}
	for _, d := range doctors {
		appts, err := s.appointmentRepo.CountByDoctor(ctx, d.ID)
		if err != nil {
			return nil, err
		}
		rxs, err := s.prescriptionRepo.CountByDoctor(ctx, d.ID)
		if err != nil {
			return nil, err
		}
		payload.Doctors = append(payload.Doctors, report.DoctorActivity{
			ID:            d.ID,
			Name:          d.FullName(),
			Appointments:  appts,
			Prescriptions: rxs,
		})
	}
	return payload, nil
}

// buildParameters echoes the request filters back in storable form.
func buildParameters(cmd *report.GenerateCommand) *report.Parameters {
	params := &report.Parameters{
		PatientID: cmd.PatientID,
		DoctorID:  cmd.DoctorID,
	}
	if cmd.StartDate != nil {
		v := cmd.StartDate.Format(forms.DateLayout)
		params.StartDate = &v
	}
	if cmd.EndDate != nil {
		v := cmd.EndDate.Format(forms.DateLayout)
		params.EndDate = &v
	}
	return params
}
