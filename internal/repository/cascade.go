package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"eyeflow-api/internal/domain/appointment"
	"eyeflow-api/internal/domain/billing"
	"eyeflow-api/internal/domain/doctor"
	"eyeflow-api/internal/domain/eyetest"
	"eyeflow-api/internal/domain/patient"
	"eyeflow-api/internal/domain/prescription"
)

// dependent declares one child collection to clear before the parent
// row goes away. When via is set, the children are keyed through an
// intermediate table: rows whose fk is in (select id from via where
// viaFK = parent id).
type dependent struct {
	model any
	fk    string
	via   any
	viaFK string
}

// cascade is the declared ownership graph for one parent entity: the
// ordered dependent collections, then the parent row itself.
type cascade struct {
	parent     any
	notFound   error
	dependents []dependent
}

func patientCascade() cascade {
	return cascade{
		parent:   &patient.Patient{},
		notFound: patient.ErrPatientNotFound,
		dependents: []dependent{
			{model: &prescription.Prescription{}, fk: "patient_id"},
			{model: &billing.Billing{}, fk: "appointment_id", via: &appointment.Appointment{}, viaFK: "patient_id"},
			{model: &eyetest.EyeTestResult{}, fk: "appointment_id", via: &appointment.Appointment{}, viaFK: "patient_id"},
			{model: &appointment.Appointment{}, fk: "patient_id"},
		},
	}
}

func doctorCascade() cascade {
	return cascade{
		parent:   &doctor.Doctor{},
		notFound: doctor.ErrDoctorNotFound,
		dependents: []dependent{
			{model: &prescription.Prescription{}, fk: "doctor_id"},
			{model: &billing.Billing{}, fk: "appointment_id", via: &appointment.Appointment{}, viaFK: "doctor_id"},
			{model: &eyetest.EyeTestResult{}, fk: "appointment_id", via: &appointment.Appointment{}, viaFK: "doctor_id"},
			{model: &appointment.Appointment{}, fk: "doctor_id"},
		},
	}
}

func appointmentCascade() cascade {
	return cascade{
		parent:   &appointment.Appointment{},
		notFound: appointment.ErrAppointmentNotFound,
		dependents: []dependent{
			{model: &billing.Billing{}, fk: "appointment_id"},
			{model: &eyetest.EyeTestResult{}, fk: "appointment_id"},
		},
	}
}

// CascadeDeleter removes a parent row together with its dependent
// closure inside a single transaction. Either every row in the walk
// is deleted or none are.
type CascadeDeleter struct {
	db *gorm.DB
}

func NewCascadeDeleter(db *gorm.DB) *CascadeDeleter {
	return &CascadeDeleter{db: db}
}

func (d *CascadeDeleter) DeletePatient(ctx context.Context, id uint) error {
	return d.run(ctx, patientCascade(), id)
}

func (d *CascadeDeleter) DeleteDoctor(ctx context.Context, id uint) error {
	return d.run(ctx, doctorCascade(), id)
}

func (d *CascadeDeleter) DeleteAppointment(ctx context.Context, id uint) error {
	return d.run(ctx, appointmentCascade(), id)
}

func (d *CascadeDeleter) run(ctx context.Context, c cascade, id uint) error {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, dep := range c.dependents {
			q := tx
			if dep.via != nil {
				sub := tx.Model(dep.via).Select("id").Where(dep.viaFK+" = ?", id)
				q = q.Where(dep.fk+" IN (?)", sub)
			} else {
				q = q.Where(dep.fk+" = ?", id)
			}
			if err := q.Delete(dep.model).Error; err != nil {
				return err
			}
		}

		res := tx.Delete(c.parent, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return c.notFound
		}
		return nil
	})
	if err == nil {
		return nil
	}
	if errors.Is(err, c.notFound) {
		return err
	}
	if isForeignKeyViolation(err) {
		return ErrDependentRecords
	}
	return err
}
