package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestTranslateNoRows(t *testing.T) {
	err := translate(fmt.Errorf("query: %w", pgx.ErrNoRows))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestTranslateUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "members_email_key"}
	err := translate(fmt.Errorf("insert: %w", pgErr))

	field, ok := IsUniqueViolation(err)
	require.True(t, ok)
	require.Equal(t, "email", field)
}

func TestTranslateUnknownConstraintFallsBackToName(t *testing.T) {
	pgErr := &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "posts_slug_key"}
	err := translate(pgErr)

	field, ok := IsUniqueViolation(err)
	require.True(t, ok)
	require.Equal(t, "posts_slug_key", field)
}

func TestTranslatePassesThroughOtherErrors(t *testing.T) {
	require.NoError(t, translate(nil))

	boom := errors.New("connection reset")
	require.Equal(t, boom, translate(boom))

	otherPg := &pgconn.PgError{Code: "40001"}
	_, ok := IsUniqueViolation(translate(otherPg))
	require.False(t, ok)
}
