package store

import (
	"errors"
	"fmt"
)

// Error Handling Guidelines:
// - Stores: return ErrNotFound or *ConstraintError, wrap everything else with fmt.Errorf("context: %w", err)
// - Services: translate store errors into apperrors.*
// - Handlers: attach apperrors with c.Error and let middleware render them

// ErrNotFound indicates that no row matched the requested id.
var ErrNotFound = errors.New("resource not found")

// ConstraintKind classifies integrity violations reported by the database.
type ConstraintKind int

const (
	UniqueViolation ConstraintKind = iota + 1
	NotNullViolation
	CheckViolation
	ForeignKeyViolation
)

func (k ConstraintKind) String() string {
	switch k {
	case UniqueViolation:
		return "unique_violation"
	case NotNullViolation:
		return "not_null_violation"
	case CheckViolation:
		return "check_violation"
	case ForeignKeyViolation:
		return "foreign_key_violation"
	default:
		return "unknown_violation"
	}
}

// ConstraintError is returned when a write breaks a table constraint.
// Callers switch on Kind instead of inspecting driver messages.
type ConstraintError struct {
	Kind       ConstraintKind
	Table      string
	Constraint string
	Err        error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s on %s (%s): %v", e.Kind, e.Table, e.Constraint, e.Err)
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

// IsUniqueViolation reports whether err carries a unique constraint failure.
func IsUniqueViolation(err error) bool {
	var constraintErr *ConstraintError
	return errors.As(err, &constraintErr) && constraintErr.Kind == UniqueViolation
}
