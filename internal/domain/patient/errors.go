package patient

import "errors"

var (
	ErrPatientNotFound = errors.New("patient not found")
	ErrEmailTaken      = errors.New("a patient with this email already exists")
)
