package appointment

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, a *Appointment) error

	// GetByID returns ErrAppointmentNotFound if the id does not resolve.
	GetByID(ctx context.Context, id uint) (*Appointment, error)

	Update(ctx context.Context, a *Appointment) error

	List(ctx context.Context) ([]*Appointment, error)

	// ListByDateRange filters on appointment_date, inclusive on both
	// bounds; a nil bound is open-ended.
	ListByDateRange(ctx context.Context, start, end *time.Time) ([]*Appointment, error)

	ListRecent(ctx context.Context, limit int) ([]*Appointment, error)

	CountByPatient(ctx context.Context, patientID uint) (int64, error)

	CountByDoctor(ctx context.Context, doctorID uint) (int64, error)

	Count(ctx context.Context) (int64, error)
}
