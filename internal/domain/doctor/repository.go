package doctor

import "context"

type Repository interface {
	// Create persists a new doctor. Returns ErrEmailTaken or
	// ErrLicenseNumberTaken on a uniqueness collision.
	Create(ctx context.Context, d *Doctor) error

	// GetByID retrieves a doctor by primary key. Returns ErrDoctorNotFound if not found.
	GetByID(ctx context.Context, id uint) (*Doctor, error)

	// Update replaces the full record.
	Update(ctx context.Context, d *Doctor) error

	List(ctx context.Context) ([]*Doctor, error)

	ExistsByEmail(ctx context.Context, email string, excludeID *uint) (bool, error)

	ExistsByLicenseNumber(ctx context.Context, licenseNumber string, excludeID *uint) (bool, error)

	Count(ctx context.Context) (int64, error)
}
