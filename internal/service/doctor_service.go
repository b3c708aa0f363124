package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"eyeflow-api/internal/domain/doctor"
	"eyeflow-api/pkg/metrics"
)

type DoctorService struct {
	repo    doctor.Repository
	deleter CascadeDeleter
	metrics *metrics.Collector
	log     *zap.Logger
}

func NewDoctorService(
	repo doctor.Repository,
	deleter CascadeDeleter,
	collector *metrics.Collector,
	log *zap.Logger,
) *DoctorService {
	return &DoctorService{repo: repo, deleter: deleter, metrics: collector, log: log}
}

func (s *DoctorService) Register(ctx context.Context, cmd *doctor.Command) (*doctor.Doctor, error) {
	if err := s.checkUnique(ctx, cmd, nil); err != nil {
		return nil, err
	}

	d := &doctor.Doctor{
		FirstName:     cmd.FirstName,
		LastName:      cmd.LastName,
		Specialty:     cmd.Specialty,
		Phone:         cmd.Phone,
		Email:         cmd.Email,
		LicenseNumber: cmd.LicenseNumber,
	}

	if err := s.repo.Create(ctx, d); err != nil {
		s.log.Error("failed to create doctor", zap.Error(err))
		return nil, fmt.Errorf("creating doctor: %w", err)
	}

	s.log.Info("doctor registered", zap.Uint("doctor_id", d.ID))
	return d, nil
}

func (s *DoctorService) Get(ctx context.Context, id uint) (*doctor.Doctor, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *DoctorService) List(ctx context.Context) ([]*doctor.Doctor, error) {
	return s.repo.List(ctx)
}

func (s *DoctorService) Update(ctx context.Context, id uint, cmd *doctor.Command) (*doctor.Doctor, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkUnique(ctx, cmd, &id); err != nil {
		return nil, err
	}

	d.FirstName = cmd.FirstName
	d.LastName = cmd.LastName
	d.Specialty = cmd.Specialty
	d.Phone = cmd.Phone
	d.Email = cmd.Email
	d.LicenseNumber = cmd.LicenseNumber

	if err := s.repo.Update(ctx, d); err != nil {
		s.log.Error("failed to update doctor", zap.Uint("doctor_id", id), zap.Error(err))
		return nil, err
	}
	return d, nil
}

// Delete removes the doctor together with its appointments,
// prescriptions, and the eye tests and billings hanging off those
// appointments.
func (s *DoctorService) Delete(ctx context.Context, id uint) error {
	if err := s.deleter.DeleteDoctor(ctx, id); err != nil {
		return err
	}
	s.metrics.CascadeDeletesTotal.WithLabelValues("doctor").Inc()
	s.log.Info("doctor deleted", zap.Uint("doctor_id", id))
	return nil
}

func (s *DoctorService) checkUnique(ctx context.Context, cmd *doctor.Command, excludeID *uint) error {
	taken, err := s.repo.ExistsByEmail(ctx, cmd.Email, excludeID)
	if err != nil {
		return fmt.Errorf("checking email uniqueness: %w", err)
	}
	if taken {
		return doctor.ErrEmailTaken
	}

	taken, err = s.repo.ExistsByLicenseNumber(ctx, cmd.LicenseNumber, excludeID)
	if err != nil {
		return fmt.Errorf("checking license uniqueness: %w", err)
	}
	if taken {
		return doctor.ErrLicenseNumberTaken
	}
	return nil
}
