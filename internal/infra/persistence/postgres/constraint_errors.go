package postgres

import (
	"strings"

	domainerrors "churchadmin/internal/domain/errors"
	"churchadmin/internal/domain/repository"
	"churchadmin/internal/errors"

	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// SQLSTATE 23505 unique_violation, for errors that bypass GORM's translator
	return strings.Contains(err.Error(), "23505")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return strings.Contains(err.Error(), "23503")
}

func isNotNullConstraintViolation(err error) bool {
	// Check error message for PostgreSQL-specific not null constraint violation patterns
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	return strings.Contains(err.Error(), "23514")
}

// translateWriteError converts a failed insert or update into a domain error.
// The result still matches repository.ErrDuplicate for unique violations.
func translateWriteError(err error, kind, action string) error {
	switch {
	case isUniqueConstraintViolation(err):
		dup := domainerrors.ErrConflict.WithDetails(kind)
		if kind == "user" {
			dup = domainerrors.ErrDuplicateUsername
		}

		return errors.Join(dup, repository.ErrDuplicate)
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WrapMessage("invalid " + kind + " reference")
	case isNotNullConstraintViolation(err), isCheckConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WrapMessage("missing or invalid " + kind + " information")
	default:
		return domainerrors.NewDatabaseExecuteError(err, "failed to "+action+" "+kind)
	}
}
