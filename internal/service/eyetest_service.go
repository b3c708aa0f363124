package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"eyeflow-api/internal/domain/appointment"
	"eyeflow-api/internal/domain/eyetest"
	"eyeflow-api/internal/domain/patient"
)

type EyeTestService struct {
	repo            eyetest.Repository
	appointmentRepo appointment.Repository
	patientRepo     patient.Repository
	log             *zap.Logger
}

func NewEyeTestService(
	repo eyetest.Repository,
	appointmentRepo appointment.Repository,
	patientRepo patient.Repository,
	log *zap.Logger,
) *EyeTestService {
	return &EyeTestService{
		repo:            repo,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		log:             log,
	}
}

func (s *EyeTestService) Record(ctx context.Context, cmd *eyetest.Command) (*eyetest.EyeTestResult, error) {
	if err := s.checkRefs(ctx, cmd.AppointmentID, cmd.PatientID); err != nil {
		return nil, err
	}

	r := &eyetest.EyeTestResult{
		AppointmentID:            cmd.AppointmentID,
		PatientID:                cmd.PatientID,
		TestDate:                 cmd.TestDate,
		VisualAcuityLeft:         cmd.VisualAcuityLeft,
		VisualAcuityRight:        cmd.VisualAcuityRight,
		IntraocularPressureLeft:  cmd.IntraocularPressureLeft,
		IntraocularPressureRight: cmd.IntraocularPressureRight,
		FundusExamination:        cmd.FundusExamination,
		OtherFindings:            cmd.OtherFindings,
	}

	if err := s.repo.Create(ctx, r); err != nil {
		s.log.Error("failed to create eye test result", zap.Error(err))
		return nil, fmt.Errorf("creating eye test result: %w", err)
	}

	s.log.Info("eye test result recorded", zap.Uint("result_id", r.ID))
	return r, nil
}

func (s *EyeTestService) Get(ctx context.Context, id uint) (*eyetest.EyeTestResult, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EyeTestService) List(ctx context.Context) ([]*eyetest.EyeTestResult, error) {
	return s.repo.List(ctx)
}

func (s *EyeTestService) Update(ctx context.Context, id uint, cmd *eyetest.Command) (*eyetest.EyeTestResult, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkRefs(ctx, cmd.AppointmentID, cmd.PatientID); err != nil {
		return nil, err
	}

	r.AppointmentID = cmd.AppointmentID
	r.PatientID = cmd.PatientID
	r.TestDate = cmd.TestDate
	r.VisualAcuityLeft = cmd.VisualAcuityLeft
	r.VisualAcuityRight = cmd.VisualAcuityRight
	r.IntraocularPressureLeft = cmd.IntraocularPressureLeft
	r.IntraocularPressureRight = cmd.IntraocularPressureRight
	r.FundusExamination = cmd.FundusExamination
	r.OtherFindings = cmd.OtherFindings

	if err := s.repo.Update(ctx, r); err != nil {
		s.log.Error("failed to update eye test result", zap.Uint("result_id", id), zap.Error(err))
		return nil, err
	}
	return r, nil
}

// Delete removes a single result; nothing references eye tests, so no
// cascade is involved.
func (s *EyeTestService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("eye test result deleted", zap.Uint("result_id", id))
	return nil
}

func (s *EyeTestService) checkRefs(ctx context.Context, appointmentID, patientID uint) error {
	if _, err := s.appointmentRepo.GetByID(ctx, appointmentID); err != nil {
		return err
	}
	if _, err := s.patientRepo.GetByID(ctx, patientID); err != nil {
		return err
	}
	return nil
}
