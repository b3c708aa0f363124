package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"eyeflow-api/internal/domain/appointment"
	"eyeflow-api/internal/domain/doctor"
	"eyeflow-api/internal/domain/patient"
	"eyeflow-api/pkg/metrics"
)

type AppointmentService struct {
	repo        appointment.Repository
	patientRepo patient.Repository
	doctorRepo  doctor.Repository
	deleter     CascadeDeleter
	metrics     *metrics.Collector
	log         *zap.Logger
}

func NewAppointmentService(
	repo appointment.Repository,
	patientRepo patient.Repository,
	doctorRepo doctor.Repository,
	deleter CascadeDeleter,
	collector *metrics.Collector,
	log *zap.Logger,
) *AppointmentService {
	return &AppointmentService{
		repo:        repo,
		patientRepo: patientRepo,
		doctorRepo:  doctorRepo,
		deleter:     deleter,
		metrics:     collector,
		log:         log,
	}
}

func (s *AppointmentService) Schedule(ctx context.Context, cmd *appointment.Command) (*appointment.Appointment, error) {
	if err := s.checkRefs(ctx, cmd.PatientID, cmd.DoctorID); err != nil {
		return nil, err
	}

	a := &appointment.Appointment{
		PatientID:       cmd.PatientID,
		DoctorID:        cmd.DoctorID,
		AppointmentDate: cmd.AppointmentDate,
		AppointmentTime: cmd.AppointmentTime,
		Status:          cmd.Status,
		Notes:           cmd.Notes,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		s.log.Error("failed to create appointment", zap.Error(err))
		return nil, fmt.Errorf("creating appointment: %w", err)
	}

	s.metrics.AppointmentsBookedTotal.Inc()
	s.log.Info("appointment scheduled",
		zap.Uint("appointment_id", a.ID),
		zap.Uint("patient_id", a.PatientID),
		zap.Uint("doctor_id", a.DoctorID),
	)
	return a, nil
}

func (s *AppointmentService) Get(ctx context.Context, id uint) (*appointment.Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *AppointmentService) List(ctx context.Context) ([]*appointment.Appointment, error) {
	return s.repo.List(ctx)
}

func (s *AppointmentService) Update(ctx context.Context, id uint, cmd *appointment.Command) (*appointment.Appointment, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkRefs(ctx, cmd.PatientID, cmd.DoctorID); err != nil {
		return nil, err
	}

	a.PatientID = cmd.PatientID
	a.DoctorID = cmd.DoctorID
	a.AppointmentDate = cmd.AppointmentDate
	a.AppointmentTime = cmd.AppointmentTime
	a.Status = cmd.Status
	a.Notes = cmd.Notes

	if err := s.repo.Update(ctx, a); err != nil {
		s.log.Error("failed to update appointment", zap.Uint("appointment_id", id), zap.Error(err))
		return nil, err
	}
	return a, nil
}

// Delete removes the appointment along with its eye test results and
// billing records.
func (s *AppointmentService) Delete(ctx context.Context, id uint) error {
	if err := s.deleter.DeleteAppointment(ctx, id); err != nil {
		return err
	}
	s.metrics.CascadeDeletesTotal.WithLabelValues("appointment").Inc()
	s.log.Info("appointment deleted", zap.Uint("appointment_id", id))
	return nil
}

func (s *AppointmentService) checkRefs(ctx context.Context, patientID, doctorID uint) error {
	if _, err := s.patientRepo.GetByID(ctx, patientID); err != nil {
		return err
	}
	if _, err := s.doctorRepo.GetByID(ctx, doctorID); err != nil {
		return err
	}
	return nil
}
