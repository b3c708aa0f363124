package doctor

import "errors"

var (
	ErrDoctorNotFound     = errors.New("doctor not found")
	ErrEmailTaken         = errors.New("a doctor with this email already exists")
	ErrLicenseNumberTaken = errors.New("a doctor with this license number already exists")
)
