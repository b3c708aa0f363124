package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"eyeflow-api/internal/domain/patient"
	"eyeflow-api/pkg/metrics"
)

// CascadeDeleter removes a parent row together with every dependent
// record, atomically.
type CascadeDeleter interface {
	DeletePatient(ctx context.Context, id uint) error
	DeleteDoctor(ctx context.Context, id uint) error
	DeleteAppointment(ctx context.Context, id uint) error
}

type PatientService struct {
	repo    patient.Repository
	deleter CascadeDeleter
	metrics *metrics.Collector
	log     *zap.Logger
}

func NewPatientService(
	repo patient.Repository,
	deleter CascadeDeleter,
	collector *metrics.Collector,
	log *zap.Logger,
) *PatientService {
	return &PatientService{repo: repo, deleter: deleter, metrics: collector, log: log}
}

func (s *PatientService) Register(ctx context.Context, cmd *patient.Command) (*patient.Patient, error) {
	taken, err := s.repo.ExistsByEmail(ctx, cmd.Email, nil)
	if err != nil {
		return nil, fmt.Errorf("checking email uniqueness: %w", err)
	}
	if taken {
		return nil, patient.ErrEmailTaken
	}

	p := &patient.Patient{
		FirstName:      cmd.FirstName,
		LastName:       cmd.LastName,
		DateOfBirth:    cmd.DateOfBirth,
		Gender:         cmd.Gender,
		Phone:          cmd.Phone,
		Email:          cmd.Email,
		Address:        cmd.Address,
		MedicalHistory: cmd.MedicalHistory,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.log.Error("failed to create patient", zap.Error(err))
		return nil, fmt.Errorf("creating patient: %w", err)
	}

	s.metrics.PatientsRegisteredTotal.Inc()
	s.log.Info("patient registered", zap.Uint("patient_id", p.ID))
	return p, nil
}

func (s *PatientService) Get(ctx context.Context, id uint) (*patient.Patient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PatientService) List(ctx context.Context) ([]*patient.Patient, error) {
	return s.repo.List(ctx)
}

// Update replaces the full record; partial edits are not supported.
func (s *PatientService) Update(ctx context.Context, id uint, cmd *patient.Command) (*patient.Patient, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	taken, err := s.repo.ExistsByEmail(ctx, cmd.Email, &id)
	if err != nil {
		return nil, fmt.Errorf("checking email uniqueness: %w", err)
	}
	if taken {
		return nil, patient.ErrEmailTaken
	}

	p.FirstName = cmd.FirstName
	p.LastName = cmd.LastName
	p.DateOfBirth = cmd.DateOfBirth
	p.Gender = cmd.Gender
	p.Phone = cmd.Phone
	p.Email = cmd.Email
	p.Address = cmd.Address
	p.MedicalHistory = cmd.MedicalHistory

	if err := s.repo.Update(ctx, p); err != nil {
		s.log.Error("failed to update patient", zap.Uint("patient_id", id), zap.Error(err))
		return nil, err
	}
	return p, nil
}

// Delete removes the patient and every appointment, prescription,
// eye test result and appointment-linked billing that references it.
func (s *PatientService) Delete(ctx context.Context, id uint) error {
	if err := s.deleter.DeletePatient(ctx, id); err != nil {
		return err
	}
	s.metrics.CascadeDeletesTotal.WithLabelValues("patient").Inc()
	s.log.Info("patient deleted", zap.Uint("patient_id", id))
	return nil
}
