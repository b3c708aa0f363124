package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"eyeflow-api/internal/domain/appointment"
	"eyeflow-api/internal/domain/billing"
	"eyeflow-api/internal/domain/patient"
)

type BillingService struct {
	repo            billing.Repository
	patientRepo     patient.Repository
	appointmentRepo appointment.Repository
	log             *zap.Logger
}

func NewBillingService(
	repo billing.Repository,
	patientRepo patient.Repository,
	appointmentRepo appointment.Repository,
	log *zap.Logger,
) *BillingService {
	return &BillingService{
		repo:            repo,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		log:             log,
	}
}

func (s *BillingService) Create(ctx context.Context, cmd *billing.Command) (*billing.Billing, error) {
	if err := s.checkRefs(ctx, cmd.PatientID, cmd.AppointmentID); err != nil {
		return nil, err
	}

	b := &billing.Billing{
		PatientID:     cmd.PatientID,
		AppointmentID: cmd.AppointmentID,
		Amount:        cmd.Amount,
		Status:        cmd.Status,
		PaymentDate:   cmd.PaymentDate,
		PaymentMethod: cmd.PaymentMethod,
		Notes:         cmd.Notes,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		s.log.Error("failed to create billing record", zap.Error(err))
		return nil, fmt.Errorf("creating billing record: %w", err)
	}

	s.log.Info("billing record created",
		zap.Uint("billing_id", b.ID),
		zap.Float64("amount", b.Amount),
	)
	return b, nil
}

func (s *BillingService) Get(ctx context.Context, id uint) (*billing.Billing, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *BillingService) List(ctx context.Context) ([]*billing.Billing, error) {
	return s.repo.List(ctx)
}

func (s *BillingService) Update(ctx context.Context, id uint, cmd *billing.Command) (*billing.Billing, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkRefs(ctx, cmd.PatientID, cmd.AppointmentID); err != nil {
		return nil, err
	}

	b.PatientID = cmd.PatientID
	b.AppointmentID = cmd.AppointmentID
	b.Amount = cmd.Amount
	b.Status = cmd.Status
	b.PaymentDate = cmd.PaymentDate
	b.PaymentMethod = cmd.PaymentMethod
	b.Notes = cmd.Notes

	if err := s.repo.Update(ctx, b); err != nil {
		s.log.Error("failed to update billing record", zap.Uint("billing_id", id), zap.Error(err))
		return nil, err
	}
	return b, nil
}

func (s *BillingService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("billing record deleted", zap.Uint("billing_id", id))
	return nil
}

func (s *BillingService) checkRefs(ctx context.Context, patientID uint, appointmentID *uint) error {
	if _, err := s.patientRepo.GetByID(ctx, patientID); err != nil {
		return err
	}
	if appointmentID != nil {
		if _, err := s.appointmentRepo.GetByID(ctx, *appointmentID); err != nil {
			return err
		}
	}
	return nil
}
