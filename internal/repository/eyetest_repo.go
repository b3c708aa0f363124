package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"eyeflow-api/internal/domain/eyetest"
)

type EyeTestRepository struct {
	db *gorm.DB
}

func NewEyeTestRepository(db *gorm.DB) *EyeTestRepository {
	return &EyeTestRepository{db: db}
}

func (r *EyeTestRepository) Create(ctx context.Context, t *eyetest.EyeTestResult) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *EyeTestRepository) GetByID(ctx context.Context, id uint) (*eyetest.EyeTestResult, error) {
	var t eyetest.EyeTestResult
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, eyetest.ErrResultNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *EyeTestRepository) Update(ctx context.Context, t *eyetest.EyeTestResult) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *EyeTestRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&eyetest.EyeTestResult{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return eyetest.ErrResultNotFound
	}
	return nil
}

func (r *EyeTestRepository) List(ctx context.Context) ([]*eyetest.EyeTestResult, error) {
	var ts []*eyetest.EyeTestResult
	if err := r.db.WithContext(ctx).Order("id").Find(&ts).Error; err != nil {
		return nil, err
	}
	return ts, nil
}
