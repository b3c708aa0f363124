package billing

import "errors"

var ErrBillingNotFound = errors.New("billing record not found")
