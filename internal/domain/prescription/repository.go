package prescription

import "context"

type Repository interface {
	Create(ctx context.Context, p *Prescription) error

	// GetByID returns ErrPrescriptionNotFound if the id does not resolve.
	GetByID(ctx context.Context, id uint) (*Prescription, error)

	Update(ctx context.Context, p *Prescription) error

	Delete(ctx context.Context, id uint) error

	List(ctx context.Context) ([]*Prescription, error)

	CountByPatient(ctx context.Context, patientID uint) (int64, error)

	CountByDoctor(ctx context.Context, doctorID uint) (int64, error)
}
