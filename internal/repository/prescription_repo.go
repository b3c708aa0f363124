package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"eyeflow-api/internal/domain/prescription"
)

type PrescriptionRepository struct {
	db *gorm.DB
}

func NewPrescriptionRepository(db *gorm.DB) *PrescriptionRepository {
	return &PrescriptionRepository{db: db}
}

func (r *PrescriptionRepository) Create(ctx context.Context, p *prescription.Prescription) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PrescriptionRepository) GetByID(ctx context.Context, id uint) (*prescription.Prescription, error) {
	var p prescription.Prescription
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, prescription.ErrPrescriptionNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PrescriptionRepository) Update(ctx context.Context, p *prescription.Prescription) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PrescriptionRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&prescription.Prescription{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return prescription.ErrPrescriptionNotFound
	}
	return nil
}

func (r *PrescriptionRepository) List(ctx context.Context) ([]*prescription.Prescription, error) {
	var ps []*prescription.Prescription
	if err := r.db.WithContext(ctx).Order("id").Find(&ps).Error; err != nil {
		return nil, err
	}
	return ps, nil
}

func (r *PrescriptionRepository) CountByPatient(ctx context.Context, patientID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&prescription.Prescription{}).
		Where("patient_id = ?", patientID).
		Count(&count).Error
	return count, err
}

func (r *PrescriptionRepository) CountByDoctor(ctx context.Context, doctorID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&prescription.Prescription{}).
		Where("doctor_id = ?", doctorID).
		Count(&count).Error
	return count, err
}
