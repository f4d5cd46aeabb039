package impl

import (
	"strings"

	"churchadmin/internal/domain/entity"
	domainerrors "churchadmin/internal/domain/errors"
	"churchadmin/internal/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateInput checks struct tags and reports the failing fields.
func validateInput(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	validationErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	fields := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, fe.Field()+" ("+fe.Tag()+")")
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(fields, ", "))
}

// validateNewCredentials enforces the all-or-nothing rule for a create form.
// It reports whether a login must be provisioned.
func validateNewCredentials(creds entity.Credentials) (bool, error) {
	if creds.IsEmpty() {
		return false, nil
	}
	if !creds.IsComplete() {
		return false, domainerrors.ErrIncompleteCredentials.WithDetails(missingCredentialFields(creds, true))
	}

	return true, validateEmail(creds.Email)
}

// validateEditCredentials checks the credential block of an edit form. The
// password may be blank when an account already exists.
func validateEditCredentials(creds entity.Credentials, hasAccount bool) error {
	if creds.IsEmpty() {
		return nil
	}
	if !hasAccount {
		if !creds.IsComplete() {
			return domainerrors.ErrIncompleteCredentials.WithDetails(missingCredentialFields(creds, true))
		}

		return validateEmail(creds.Email)
	}
	if creds.Username == "" || creds.Email == "" {
		return domainerrors.ErrIncompleteCredentials.WithDetails(missingCredentialFields(creds, false))
	}

	return validateEmail(creds.Email)
}

func validateEmail(email string) error {
	if err := validate.Var(email, "email"); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("email (email)")
	}

	return nil
}

func missingCredentialFields(creds entity.Credentials, passwordRequired bool) string {
	var missing []string
	if creds.Username == "" {
		missing = append(missing, "username")
	}
	if passwordRequired && creds.Password == "" {
		missing = append(missing, "password")
	}
	if creds.Email == "" {
		missing = append(missing, "email")
	}

	return "faltan: " + strings.Join(missing, ", ")
}
