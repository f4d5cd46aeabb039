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

type districtQuery struct {
	ZoneID string `query:"zoneId" validate:"required"`
}

// DistrictHandler serves /districts.
type DistrictHandler struct {
	uc     usecase.DistrictUsecase
	out    outcome
	logger *slog.Logger
}

// NewDistrictHandler is the constructor for DistrictHandler, injected by Fx.
func NewDistrictHandler(uc usecase.DistrictUsecase, notifier service.Notifier, logger *slog.Logger) *DistrictHandler {
	return &DistrictHandler{uc: uc, out: outcome{notifier: notifier}, logger: logger}
}

func (h *DistrictHandler) List(c echo.Context) error {
	var query districtQuery
	if err := bindQuery(c, &query); err != nil {
		return err
	}

	rows, err := h.uc.List(c.Request().Context(), query.ZoneID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, rows)
}

// NewForm returns the defaults of an empty editor.
func (h *DistrictHandler) NewForm(c echo.Context) error {
	var query districtQuery
	if err := bindQuery(c, &query); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, h.uc.NewForm(query.ZoneID))
}

// Form returns the editor for an existing record with its login.
func (h *DistrictHandler) Form(c echo.Context) error {
	form, err := h.uc.Form(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, form)
}

func (h *DistrictHandler) Create(c echo.Context) error {
	var input usecase.DistrictInput
	if err := bindBody(c, &input); err != nil {
		return h.out.failure(err)
	}
	input.ID = ""

	district, err := h.uc.Save(c.Request().Context(), &input)
	if err != nil {
		return h.out.failure(err)
	}
	h.out.success("Distrito creado correctamente")

	return response.Success(c, http.StatusCreated, district)
}

func (h *DistrictHandler) Update(c echo.Context) error {
	var input usecase.DistrictInput
	if err := bindBody(c, &input); err != nil {
		return h.out.failure(err)
	}
	input.ID = c.Param("id")

	district, err := h.uc.Save(c.Request().Context(), &input)
	if err != nil {
		return h.out.failure(err)
	}
	h.out.success("Distrito actualizado correctamente")

	return response.Success(c, http.StatusOK, district)
}

func (h *DistrictHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return h.out.failure(err)
	}
	h.out.success("Distrito eliminado")

	return response.NoContent(c)
}
