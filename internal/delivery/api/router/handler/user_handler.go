package handler

import (
	"log/slog"
	"net/http"

	"churchadmin/internal/delivery/api/response"
	"churchadmin/internal/domain/service"
	"churchadmin/internal/errors"
	"churchadmin/internal/usecase"

	"github.com/labstack/echo/v4"
)

// UserHandler serves /users.
type UserHandler struct {
	uc     usecase.UserUsecase
	out    outcome
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, notifier service.Notifier, logger *slog.Logger) *UserHandler {
	return &UserHandler{uc: uc, out: outcome{notifier: notifier}, logger: logger}
}

func (h *UserHandler) List(c echo.Context) error {
	users, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, users)
}

func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user)
}

func (h *UserHandler) Update(c echo.Context) error {
	var input usecase.UserInput
	if err := bindBody(c, &input); err != nil {
		return h.out.failure(err)
	}
	input.ID = c.Param("id")

	user, err := h.uc.Update(c.Request().Context(), &input)
	if err != nil {
		return h.out.failure(err)
	}
	h.out.success("Usuario actualizado correctamente")

	return response.Success(c, http.StatusOK, user)
}

func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return h.out.failure(err)
	}
	h.out.success("Usuario eliminado")

	return response.NoContent(c)
}

// CredentialQR returns the login QR code as a PNG.
func (h *UserHandler) CredentialQR(c echo.Context) error {
	png, err := h.uc.CredentialQR(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
