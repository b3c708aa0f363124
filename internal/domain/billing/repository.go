package billing

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, b *Billing) error

	// GetByID returns ErrBillingNotFound if the id does not resolve.
	GetByID(ctx context.Context, id uint) (*Billing, error)

	Update(ctx context.Context, b *Billing) error

	Delete(ctx context.Context, id uint) error

	List(ctx context.Context) ([]*Billing, error)

	// ListByCreatedRange filters on created_at, inclusive on both
	// bounds; a nil bound is open-ended.
	ListByCreatedRange(ctx context.Context, start, end *time.Time) ([]*Billing, error)

	ListRecent(ctx context.Context, limit int) ([]*Billing, error)

	CountByPatient(ctx context.Context, patientID uint) (int64, error)

	// SumPaid returns the sum of amounts across billings with status "paid".
	SumPaid(ctx context.Context) (float64, error)
}
