// Package handler contains the HTTP handlers of the API.
package handler

import (
	"net/http"

	"churchadmin/internal/delivery/api/response"
	domainerrors "churchadmin/internal/domain/errors"
	"churchadmin/internal/domain/service"
	"churchadmin/internal/errors"
	"churchadmin/internal/usecase"

	"github.com/labstack/echo/v4"
)

// outcome reports the result of a mutation as exactly one toast.
type outcome struct {
	notifier service.Notifier
}

func (o outcome) success(message string) {
	o.notifier.Show(message, service.ToastSuccess)
}

// failure shows a warning for input problems and an error otherwise, then
// hands err back for the error middleware.
func (o outcome) failure(err error) error {
	kind := service.ToastError
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		switch appErr.HTTPCode() {
		case http.StatusBadRequest, http.StatusConflict:
			kind = service.ToastWarning
		}
	}
	o.notifier.Show(domainerrors.MessageOf(err), kind)

	return err
}

// bindBody decodes the JSON body only, so path and query values never leak
// into the input.
func bindBody(c echo.Context, dst any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, dst); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("cuerpo de la solicitud inválido")
	}

	return nil
}

// bindQuery decodes and validates query parameters.
func bindQuery(c echo.Context, dst any) error {
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, dst); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("parámetros de consulta inválidos")
	}

	return c.Validate(dst)
}

// HealthCheck reports that the process is serving.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// GoalCatalog returns the goal metrics, periods and defaults.
func GoalCatalog(c echo.Context) error {
	return response.Success(c, http.StatusOK, usecase.NewGoalCatalog())
}
