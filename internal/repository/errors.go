package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when a row does not exist.
var ErrNotFound = errors.New("record not found")

// UniqueViolationError reports a unique-index conflict together with the
// domain field that collided. Callers never inspect driver errors; this
// is the storage layer's typed conflict signal.
type UniqueViolationError struct {
	Field string
}

func (e *UniqueViolationError) Error() string {
	return fmt.Sprintf("%s already exists", e.Field)
}

// IsUniqueViolation extracts the conflicting field, if any.
func IsUniqueViolation(err error) (string, bool) {
	var uv *UniqueViolationError
	if errors.As(err, &uv) {
		return uv.Field, true
	}
	return "", false
}

const uniqueViolationCode = "23505"

// constraintFields maps Postgres constraint names onto domain field names.
var constraintFields = map[string]string{
	"members_student_id_key":   "studentId",
	"members_email_key":        "email",
	"members_national_id_key":  "nationalId",
	"assets_code_key":          "code",
	"assets_serial_number_key": "serialNumber",
}

// translate normalizes driver errors into the repository taxonomy.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		field, ok := constraintFields[pgErr.ConstraintName]
		if !ok {
			field = pgErr.ConstraintName
		}
		return &UniqueViolationError{Field: field}
	}
	return err
}
