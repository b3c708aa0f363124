package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"eyeflow-api/internal/domain/doctor"
	"eyeflow-api/internal/domain/patient"
	"eyeflow-api/internal/domain/prescription"
)

type PrescriptionService struct {
	repo        prescription.Repository
	patientRepo patient.Repository
	doctorRepo  doctor.Repository
	log         *zap.Logger
}

func NewPrescriptionService(
	repo prescription.Repository,
	patientRepo patient.Repository,
	doctorRepo doctor.Repository,
	log *zap.Logger,
) *PrescriptionService {
	return &PrescriptionService{
		repo:        repo,
		patientRepo: patientRepo,
		doctorRepo:  doctorRepo,
		log:         log,
	}
}

func (s *PrescriptionService) Issue(ctx context.Context, cmd *prescription.Command) (*prescription.Prescription, error) {
	if err := s.checkRefs(ctx, cmd.PatientID, cmd.DoctorID); err != nil {
		return nil, err
	}

	p := &prescription.Prescription{
		PatientID:         cmd.PatientID,
		DoctorID:          cmd.DoctorID,
		PrescriptionDate:  cmd.PrescriptionDate,
		SphereLeft:        cmd.SphereLeft,
		CylinderLeft:      cmd.CylinderLeft,
		AxisLeft:          cmd.AxisLeft,
		SphereRight:       cmd.SphereRight,
		CylinderRight:     cmd.CylinderRight,
		AxisRight:         cmd.AxisRight,
		PupillaryDistance: cmd.PupillaryDistance,
		DurationMonths:    cmd.DurationMonths,
		Notes:             cmd.Notes,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.log.Error("failed to create prescription", zap.Error(err))
		return nil, fmt.Errorf("creating prescription: %w", err)
	}

	s.log.Info("prescription issued",
		zap.Uint("prescription_id", p.ID),
		zap.Uint("patient_id", p.PatientID),
	)
	return p, nil
}

func (s *PrescriptionService) Get(ctx context.Context, id uint) (*prescription.Prescription, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PrescriptionService) List(ctx context.Context) ([]*prescription.Prescription, error) {
	return s.repo.List(ctx)
}

func (s *PrescriptionService) Update(ctx context.Context, id uint, cmd *prescription.Command) (*prescription.Prescription, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkRefs(ctx, cmd.PatientID, cmd.DoctorID); err != nil {
		return nil, err
	}

	p.PatientID = cmd.PatientID
	p.DoctorID = cmd.DoctorID
	p.PrescriptionDate = cmd.PrescriptionDate
	p.SphereLeft = cmd.SphereLeft
	p.CylinderLeft = cmd.CylinderLeft
	p.AxisLeft = cmd.AxisLeft
	p.SphereRight = cmd.SphereRight
	p.CylinderRight = cmd.CylinderRight
	p.AxisRight = cmd.AxisRight
	p.PupillaryDistance = cmd.PupillaryDistance
	p.DurationMonths = cmd.DurationMonths
	p.Notes = cmd.Notes

	if err := s.repo.Update(ctx, p); err != nil {
		s.log.Error("failed to update prescription", zap.Uint("prescription_id", id), zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (s *PrescriptionService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("prescription deleted", zap.Uint("prescription_id", id))
	return nil
}

func (s *PrescriptionService) checkRefs(ctx context.Context, patientID, doctorID uint) error {
	if _, err := s.patientRepo.GetByID(ctx, patientID); err != nil {
		return err
	}
	if _, err := s.doctorRepo.GetByID(ctx, doctorID); err != nil {
		return err
	}
	return nil
}
