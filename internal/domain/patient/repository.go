package patient

import "context"

type Repository interface {
	// Create persists a new patient. Returns ErrEmailTaken on duplicate email.
	Create(ctx context.Context, p *Patient) error

	// GetByID retrieves a patient by primary key. Returns ErrPatientNotFound if not found.
	GetByID(ctx context.Context, id uint) (*Patient, error)

	// Update replaces the full record. Returns ErrPatientNotFound or ErrEmailTaken.
	Update(ctx context.Context, p *Patient) error

	// List returns all patients.
	List(ctx context.Context) ([]*Patient, error)

	// ListRecent returns the most recently created patients, newest first.
	ListRecent(ctx context.Context, limit int) ([]*Patient, error)

	// ExistsByEmail checks for uniqueness without fetching the full record.
	ExistsByEmail(ctx context.Context, email string, excludeID *uint) (bool, error)

	Count(ctx context.Context) (int64, error)
}
