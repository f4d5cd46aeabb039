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

type churchQuery struct {
	DistrictID string `query:"districtId" validate:"required"`
}

// ChurchHandler serves /churches.
type ChurchHandler struct {
	uc     usecase.ChurchUsecase
	out    outcome
	logger *slog.Logger
}

// NewChurchHandler is the constructor for ChurchHandler, injected by Fx.
func NewChurchHandler(uc usecase.ChurchUsecase, notifier service.Notifier, logger *slog.Logger) *ChurchHandler {
	return &ChurchHandler{uc: uc, out: outcome{notifier: notifier}, logger: logger}
}

func (h *ChurchHandler) List(c echo.Context) error {
	var query churchQuery
	if err := bindQuery(c, &query); err != nil {
		return err
	}

	rows, err := h.uc.List(c.Request().Context(), query.DistrictID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, rows)
}

// NewForm returns the defaults of an empty editor.
func (h *ChurchHandler) NewForm(c echo.Context) error {
	var query churchQuery
	if err := bindQuery(c, &query); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, h.uc.NewForm(query.DistrictID))
}

// Form returns the editor for an existing record with its login.
func (h *ChurchHandler) Form(c echo.Context) error {
	form, err := h.uc.Form(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, form)
}

func (h *ChurchHandler) Create(c echo.Context) error {
	var input usecase.ChurchInput
	if err := bindBody(c, &input); err != nil {
		return h.out.failure(err)
	}
	input.ID = ""

	church, err := h.uc.Save(c.Request().Context(), &input)
	if err != nil {
		return h.out.failure(err)
	}
	h.out.success("Iglesia creada correctamente")

	return response.Success(c, http.StatusCreated, church)
}

func (h *ChurchHandler) Update(c echo.Context) error {
	var input usecase.ChurchInput
	if err := bindBody(c, &input); err != nil {
		return h.out.failure(err)
	}
	input.ID = c.Param("id")

	church, err := h.uc.Save(c.Request().Context(), &input)
	if err != nil {
		return h.out.failure(err)
	}
	h.out.success("Iglesia actualizada correctamente")

	return response.Success(c, http.StatusOK, church)
}

func (h *ChurchHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return h.out.failure(err)
	}
	h.out.success("Iglesia eliminada")

	return response.NoContent(c)
}
