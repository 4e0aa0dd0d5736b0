// Package apperrors defines the error kinds the repositories report and the
// translation from storage errors onto them. Controllers match with errors.Is
// and map each kind to an HTTP status.
package apperrors

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrValidation marks malformed or out-of-range input.
	ErrValidation = errors.New("validation failed")
	// ErrUniqueness marks a unique-constraint collision on insert or update.
	ErrUniqueness = errors.New("uniqueness constraint violated")
	// ErrNotFound marks a reference to a nonexistent record.
	ErrNotFound = errors.New("record not found")
	// ErrDependencyConflict marks a deletion blocked by dependent records.
	ErrDependencyConflict = errors.New("dependent records exist")
)

// Validationf wraps ErrValidation with a message naming the violated rule.
func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NotFoundf wraps ErrNotFound with the missing resource's description.
func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// Uniquenessf wraps ErrUniqueness with a message naming the colliding fields.
func Uniquenessf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrUniqueness, fmt.Sprintf(format, args...))
}

// DependencyConflictf wraps ErrDependencyConflict with the blocking dependency.
func DependencyConflictf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrDependencyConflict, fmt.Sprintf(format, args...))
}

// FromDB translates gorm errors into application error kinds. Requires the
// connection to be opened with TranslateError so driver-specific constraint
// failures arrive as gorm sentinel errors. Unrecognized errors pass through.
func FromDB(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrUniqueness, err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", ErrDependencyConflict, err)
	}
	return err
}
