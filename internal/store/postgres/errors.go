package postgres

import (
	"errors"

	"github.com/NomadCrew/feedback-api/internal/store"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// classifyPgError maps integrity-violation SQLSTATEs to *store.ConstraintError.
// It returns nil for any other error.
func classifyPgError(err error) *store.ConstraintError {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}

	var kind store.ConstraintKind
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		kind = store.UniqueViolation
	case pgerrcode.NotNullViolation:
		kind = store.NotNullViolation
	case pgerrcode.CheckViolation:
		kind = store.CheckViolation
	case pgerrcode.ForeignKeyViolation:
		kind = store.ForeignKeyViolation
	default:
		return nil
	}

	table := pgErr.TableName
	if table == "" {
		table = feedbacksTable
	}

	return &store.ConstraintError{
		Kind:       kind,
		Table:      table,
		Constraint: pgErr.ConstraintName,
		Err:        err,
	}
}
