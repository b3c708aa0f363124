package eyetest

import "context"

type Repository interface {
	Create(ctx context.Context, r *EyeTestResult) error

	// GetByID returns ErrResultNotFound if the id does not resolve.
	GetByID(ctx context.Context, id uint) (*EyeTestResult, error)

	Update(ctx context.Context, r *EyeTestResult) error

	Delete(ctx context.Context, id uint) error

	List(ctx context.Context) ([]*EyeTestResult, error)
}
