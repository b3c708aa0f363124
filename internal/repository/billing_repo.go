package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"eyeflow-api/internal/domain/billing"
)

type BillingRepository struct {
	db *gorm.DB
}

func NewBillingRepository(db *gorm.DB) *BillingRepository {
	return &BillingRepository{db: db}
}

func (r *BillingRepository) Create(ctx context.Context, b *billing.Billing) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BillingRepository) GetByID(ctx context.Context, id uint) (*billing.Billing, error) {
	var b billing.Billing
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, billing.ErrBillingNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *BillingRepository) Update(ctx context.Context, b *billing.Billing) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BillingRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&billing.Billing{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return billing.ErrBillingNotFound
	}
	return nil
}

func (r *BillingRepository) List(ctx context.Context) ([]*billing.Billing, error) {
	var bs []*billing.Billing
	if err := r.db.WithContext(ctx).Order("id").Find(&bs).Error; err != nil {
		return nil, err
	}
	return bs, nil
}

func (r *BillingRepository) ListByCreatedRange(ctx context.Context, start, end *time.Time) ([]*billing.Billing, error) {
	q := r.db.WithContext(ctx).Model(&billing.Billing{})
	if start != nil {
		q = q.Where("created_at >= ?", *start)
	}
	if end != nil {
		q = q.Where("created_at <= ?", *end)
	}
	var bs []*billing.Billing
	if err := q.Order("id").Find(&bs).Error; err != nil {
		return nil, err
	}
	return bs, nil
}

func (r *BillingRepository) ListRecent(ctx context.Context, limit int) ([]*billing.Billing, error) {
	var bs []*billing.Billing
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&bs).Error
	if err != nil {
		return nil, err
	}
	return bs, nil
}

func (r *BillingRepository) CountByPatient(ctx context.Context, patientID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&billing.Billing{}).
		Where("patient_id = ?", patientID).
		Count(&count).Error
	return count, err
}

func (r *BillingRepository) SumPaid(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&billing.Billing{}).
		Where("status = ?", billing.StatusPaid).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}
