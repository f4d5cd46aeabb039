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

// UnionHandler serves /unions.
type UnionHandler struct {
	uc     usecase.UnionUsecase
	out    outcome
	logger *slog.Logger
}

// NewUnionHandler is the constructor for UnionHandler, injected by Fx.
func NewUnionHandler(uc usecase.UnionUsecase, notifier service.Notifier, logger *slog.Logger) *UnionHandler {
	return &UnionHandler{uc: uc, out: outcome{notifier: notifier}, logger: logger}
}

func (h *UnionHandler) List(c echo.Context) error {
	unions, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, unions)
}

func (h *UnionHandler) Get(c echo.Context) error {
	union, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, union)
}

func (h *UnionHandler) Create(c echo.Context) error {
	var input usecase.UnionInput
	if err := bindBody(c, &input); err != nil {
		return h.out.failure(err)
	}
	input.ID = ""

	union, err := h.uc.Save(c.Request().Context(), &input)
	if err != nil {
		return h.out.failure(err)
	}
	h.out.success("Unión creada correctamente")

	return response.Success(c, http.StatusCreated, union)
}

func (h *UnionHandler) Update(c echo.Context) error {
	var input usecase.UnionInput
	if err := bindBody(c, &input); err != nil {
		return h.out.failure(err)
	}
	input.ID = c.Param("id")

	union, err := h.uc.Save(c.Request().Context(), &input)
	if err != nil {
		return h.out.failure(err)
	}
	h.out.success("Unión actualizada correctamente")

	return response.Success(c, http.StatusOK, union)
}

func (h *UnionHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return h.out.failure(err)
	}
	h.out.success("Unión eliminada")

	return response.NoContent(c)
}
