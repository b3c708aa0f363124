package eyetest

import "errors"

var ErrResultNotFound = errors.New("eye test result not found")
