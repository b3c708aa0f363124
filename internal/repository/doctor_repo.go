package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"eyeflow-api/internal/domain/doctor"
)

type DoctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) *DoctorRepository {
	return &DoctorRepository{db: db}
}

// mapUniqueViolation picks the field-specific error for a duplicate
// key failure; doctors carry two unique columns.
func mapUniqueViolation(err error) error {
	if violatedColumn(err, "license_number") {
		return doctor.ErrLicenseNumberTaken
	}
	return doctor.ErrEmailTaken
}

func (r *DoctorRepository) Create(ctx context.Context, d *doctor.Doctor) error {
	if err := r.db.WithContext(ctx).Create(d).Error; err != nil {
		if isUniqueViolation(err) {
			return mapUniqueViolation(err)
		}
		return err
	}
	return nil
}

func (r *DoctorRepository) GetByID(ctx context.Context, id uint) (*doctor.Doctor, error) {
	var d doctor.Doctor
	if err := r.db.WithContext(ctx).First(&d, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, doctor.ErrDoctorNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *DoctorRepository) Update(ctx context.Context, d *doctor.Doctor) error {
	if err := r.db.WithContext(ctx).Save(d).Error; err != nil {
		if isUniqueViolation(err) {
			return mapUniqueViolation(err)
		}
		return err
	}
	return nil
}

func (r *DoctorRepository) List(ctx context.Context) ([]*doctor.Doctor, error) {
	var ds []*doctor.Doctor
	if err := r.db.WithContext(ctx).Order("id").Find(&ds).Error; err != nil {
		return nil, err
	}
	return ds, nil
}

func (r *DoctorRepository) ExistsByEmail(ctx context.Context, email string, excludeID *uint) (bool, error) {
	return r.exists(ctx, "email", email, excludeID)
}

func (r *DoctorRepository) ExistsByLicenseNumber(ctx context.Context, licenseNumber string, excludeID *uint) (bool, error) {
	return r.exists(ctx, "license_number", licenseNumber, excludeID)
}

func (r *DoctorRepository) exists(ctx context.Context, column, value string, excludeID *uint) (bool, error) {
	q := r.db.WithContext(ctx).Model(&doctor.Doctor{}).Where(column+" = ?", value)
	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *DoctorRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&doctor.Doctor{}).Count(&count).Error
	return count, err
}
