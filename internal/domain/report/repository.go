package report

import "context"

type Repository interface {
	Create(ctx context.Context, r *Report) error

	// GetByID returns ErrReportNotFound if the id does not resolve.
	GetByID(ctx context.Context, id uint) (*Report, error)

	// List returns all reports, newest first.
	List(ctx context.Context) ([]*Report, error)

	Delete(ctx context.Context, id uint) error
}
