package errors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesByCode(t *testing.T) {
	withDetails := ErrNotFound.WithDetails("district dist-1")

	assert.ErrorIs(t, withDetails, ErrNotFound)
	assert.ErrorIs(t, errors.Wrap(withDetails, "load"), ErrNotFound)
	assert.NotErrorIs(t, withDetails, ErrConflict)
	assert.Equal(t, "No se encontró el registro: district dist-1", withDetails.Error())
}

func TestMessageOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"client error with details", ErrDuplicateName.WithDetails("Centro"), "Ya existe un registro con ese nombre: Centro"},
		{"server error hides details", ErrPasswordHashFailed.WithDetails("bcrypt: cost"), ErrPasswordHashFailed.Message()},
		{"wrapped", errors.Wrap(ErrValidationFailed, "save"), ErrValidationFailed.Message()},
		{"plain error", errors.New("boom"), ErrInternalError.Message()},
		{"database error", NewDatabaseExecuteError(errors.New("timeout"), "insert"), "Error al ejecutar la operación en la base de datos"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MessageOf(tt.err))
		})
	}
}

func TestProvisioningError(t *testing.T) {
	cause := ErrDuplicateUsername.WithDetails("pnorte")
	undo := errors.New("delete refused")

	err := &ProvisioningError{Step: "create user", Cause: cause, Compensation: undo}

	assert.Equal(t, "create user failed: El nombre de usuario ya está en uso: pnorte (rollback: delete refused)", err.Error())
	assert.ErrorIs(t, err, ErrProvisioningFailed)
	assert.ErrorIs(t, err, ErrDuplicateUsername)
	assert.ErrorIs(t, err, undo)
	assert.Equal(t, http.StatusConflict, err.HTTPCode())
	assert.Equal(t, "PROVISIONING_FAILED", err.ErrorCode())
	assert.Equal(t, "No se pudo crear el registro con su cuenta de acceso: El nombre de usuario ya está en uso: pnorte", MessageOf(err))

	internal := &ProvisioningError{Step: "link PASTOR", Cause: errors.New("connection reset")}
	assert.Equal(t, http.StatusInternalServerError, internal.HTTPCode())
	assert.Equal(t, "No se pudo crear el registro con su cuenta de acceso: Error interno del sistema", internal.Message())
}
