package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsDuplicateConstraintError(t *testing.T) {
	dup := &pgconn.PgError{Code: UniqueViolationCode, ConstraintName: "faculty_email_key"}

	tests := []struct {
		name       string
		err        error
		constraint string
		want       bool
	}{
		{"matching constraint", dup, "faculty_email_key", true},
		{"wrapped", fmt.Errorf("insert: %w", dup), "faculty_email_key", true},
		{"other constraint", dup, "faculty_employee_id_key", false},
		{"other code", &pgconn.PgError{Code: "23503", ConstraintName: "faculty_email_key"}, "faculty_email_key", false},
		{"plain error", errors.New("boom"), "faculty_email_key", false},
		{"nil", nil, "faculty_email_key", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDuplicateConstraintError(tt.err, tt.constraint); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
