package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDependentRecords signals a delete blocked by rows still
// referencing the target.
var ErrDependentRecords = errors.New("cannot delete: dependent records exist")

// isUniqueViolation recognizes duplicate-key failures from postgres
// and from the sqlite driver used in tests.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

// violatedColumn reports whether the violation message names the
// given column, so uniqueness failures can be mapped to a
// field-specific error.
func violatedColumn(err error, column string) bool {
	return strings.Contains(strings.ToLower(err.Error()), column)
}
