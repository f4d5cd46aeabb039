package errors

import (
	"net/http"

	"churchadmin/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches errors by business code so that WithDetails copies still match
// the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Los datos ingresados no son válidos",
		"",
	)

	ErrIncompleteCredentials = NewBaseError(
		http.StatusBadRequest,
		"INCOMPLETE_CREDENTIALS",
		"Usuario, contraseña y correo deben completarse juntos",
		"",
	)

	ErrDuplicateName = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_NAME",
		"Ya existe un registro con ese nombre",
		"",
	)

	ErrDuplicateUsername = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_USERNAME",
		"El nombre de usuario ya está en uso",
		"",
	)

	ErrSubmissionInFlight = NewBaseError(
		http.StatusConflict,
		"SUBMISSION_IN_FLIGHT",
		"La operación anterior todavía está en curso",
		"",
	)

	ErrProvisioningFailed = NewBaseError(
		http.StatusInternalServerError,
		"PROVISIONING_FAILED",
		"No se pudo crear el registro con su cuenta de acceso",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"No se pudo crear el usuario",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Error al procesar la contraseña",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Error interno del sistema",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"No se encontró el registro",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Conflicto con un registro existente",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Error al ejecutar la operación en la base de datos"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// MessageOf returns the user-facing message carried by err, falling back to
// the generic internal message. Details are appended for client errors.
func MessageOf(err error) string {
	appErr, ok := errors.AsType[AppError](err)
	if !ok {
		return ErrInternalError.Message()
	}
	// Only predefined errors carry details meant for users.
	if base, isBase := appErr.(*BaseError); isBase && base.details != "" && base.httpCode < http.StatusInternalServerError {
		return base.message + ": " + base.details
	}

	return appErr.Message()
}

// ProvisioningError reports a create-with-account flow that failed at Step
// after the earlier steps were compensated. Compensation holds any error
// raised while undoing those steps.
type ProvisioningError struct {
	Step         string
	Cause        error
	Compensation error
}

// Error implements the error interface
func (e *ProvisioningError) Error() string {
	msg := e.Step + " failed: " + e.Cause.Error()
	if e.Compensation != nil {
		msg += " (rollback: " + e.Compensation.Error() + ")"
	}

	return msg
}

// Unwrap exposes the cause and the compensation error.
func (e *ProvisioningError) Unwrap() []error {
	if e.Compensation == nil {
		return []error{e.Cause}
	}

	return []error{e.Cause, e.Compensation}
}

// Is matches ErrProvisioningFailed.
func (e *ProvisioningError) Is(target error) bool {
	return target == ErrProvisioningFailed
}

// HTTPCode keeps client-side causes (conflicts, validation) as client errors.
func (e *ProvisioningError) HTTPCode() int {
	if appErr, ok := errors.AsType[AppError](e.Cause); ok && appErr.HTTPCode() < http.StatusInternalServerError {
		return appErr.HTTPCode()
	}

	return ErrProvisioningFailed.HTTPCode()
}

// ErrorCode returns the business error code
func (e *ProvisioningError) ErrorCode() string {
	return ErrProvisioningFailed.ErrorCode()
}

// Message combines the generic provisioning message with the cause's message.
func (e *ProvisioningError) Message() string {
	return ErrProvisioningFailed.Message() + ": " + MessageOf(e.Cause)
}

// Details returns detailed error information
func (e *ProvisioningError) Details() string {
	return e.Error()
}
