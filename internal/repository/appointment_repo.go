package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"eyeflow-api/internal/domain/appointment"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

func (r *AppointmentRepository) Create(ctx context.Context, a *appointment.Appointment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id uint) (*appointment.Appointment, error) {
	var a appointment.Appointment
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appointment.ErrAppointmentNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *AppointmentRepository) Update(ctx context.Context, a *appointment.Appointment) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *AppointmentRepository) List(ctx context.Context) ([]*appointment.Appointment, error) {
	var as []*appointment.Appointment
	if err := r.db.WithContext(ctx).Order("id").Find(&as).Error; err != nil {
		return nil, err
	}
	return as, nil
}

func (r *AppointmentRepository) ListByDateRange(ctx context.Context, start, end *time.Time) ([]*appointment.Appointment, error) {
	q := r.db.WithContext(ctx).Model(&appointment.Appointment{})
	if start != nil {
		q = q.Where("appointment_date >= ?", *start)
	}
	if end != nil {
		q = q.Where("appointment_date <= ?", *end)
	}
	var as []*appointment.Appointment
	if err := q.Order("id").Find(&as).Error; err != nil {
		return nil, err
	}
	return as, nil
}

func (r *AppointmentRepository) ListRecent(ctx context.Context, limit int) ([]*appointment.Appointment, error) {
	var as []*appointment.Appointment
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&as).Error
	if err != nil {
		return nil, err
	}
	return as, nil
}

func (r *AppointmentRepository) CountByPatient(ctx context.Context, patientID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&appointment.Appointment{}).
		Where("patient_id = ?", patientID).
		Count(&count).Error
	return count, err
}

func (r *AppointmentRepository) CountByDoctor(ctx context.Context, doctorID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&appointment.Appointment{}).
		Where("doctor_id = ?", doctorID).
		Count(&count).Error
	return count, err
}

func (r *AppointmentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&appointment.Appointment{}).Count(&count).Error
	return count, err
}
