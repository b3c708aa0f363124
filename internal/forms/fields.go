package forms

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	// DateLayout is the wire format for date fields.
	DateLayout = "2006-01-02"
	// TimeLayout is the wire format for time-of-day fields.
	TimeLayout = "15:04"
)

var validate = validator.New()

func requireString(errs Errors, field, value string, min, max int) string {
	v := strings.TrimSpace(value)
	if len(v) < min {
		errs[field] = "this field is required"
		return v
	}
	if len(v) > max {
		errs[field] = fmt.Sprintf("must be at most %d characters", max)
	}
	return v
}

func optionalString(errs Errors, field, value string, max int) string {
	v := strings.TrimSpace(value)
	if len(v) > max {
		errs[field] = fmt.Sprintf("must be at most %d characters", max)
	}
	return v
}

func requireEmail(errs Errors, field, value string, max int) string {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		errs[field] = "this field is required"
		return v
	}
	if len(v) > max {
		errs[field] = fmt.Sprintf("must be at most %d characters", max)
		return v
	}
	if err := validate.Var(v, "email"); err != nil {
		errs[field] = "must be a valid email address"
	}
	return v
}

func requireDate(errs Errors, field, value string) time.Time {
	v := strings.TrimSpace(value)
	if v == "" {
		errs[field] = "this field is required"
		return time.Time{}
	}
	d, err := time.ParseInLocation(DateLayout, v, time.UTC)
	if err != nil {
		errs[field] = "must be a date in YYYY-MM-DD format"
		return time.Time{}
	}
	return d
}

func optionalDate(errs Errors, field, value string) *time.Time {
	v := strings.TrimSpace(value)
	if v == "" {
		return nil
	}
	d, err := time.ParseInLocation(DateLayout, v, time.UTC)
	if err != nil {
		errs[field] = "must be a date in YYYY-MM-DD format"
		return nil
	}
	return &d
}

func requireTimeOfDay(errs Errors, field, value string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		errs[field] = "this field is required"
		return ""
	}
	t, err := time.Parse(TimeLayout, v)
	if err != nil {
		errs[field] = "must be a time in HH:MM format"
		return ""
	}
	return t.Format(TimeLayout)
}

func requireRef(errs Errors, field string, id uint) uint {
	if id == 0 {
		errs[field] = "this field is required"
	}
	return id
}

func rangeFloat(errs Errors, field string, v *float64, min, max float64) {
	if v == nil {
		return
	}
	if *v < min || *v > max {
		errs[field] = fmt.Sprintf("must be between %g and %g", min, max)
	}
}

func minFloat(errs Errors, field string, v *float64, min float64) {
	if v != nil && *v < min {
		errs[field] = fmt.Sprintf("must be at least %g", min)
	}
}

func rangeInt(errs Errors, field string, v *int, min, max int) {
	if v == nil {
		return
	}
	if *v < min || *v > max {
		errs[field] = fmt.Sprintf("must be between %d and %d", min, max)
	}
}
