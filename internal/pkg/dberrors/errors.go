package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn" // Import pgconn for PgError
)

// PostgreSQL SQLSTATE codes
const (
	UniqueViolationCode = "23505"
)

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique violation error
// for a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	name, ok := UniqueViolationConstraint(err)
	return ok && name == constraintName
}

// UniqueViolationConstraint returns the name of the violated unique constraint, if err is one
func UniqueViolationConstraint(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == UniqueViolationCode {
		return pgErr.ConstraintName, true
	}
	return "", false
}
