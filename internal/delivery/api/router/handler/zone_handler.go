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

type zoneQuery struct {
	AssociationID string `query:"associationId" validate:"required"`
}

// ZoneHandler serves /zones.
type ZoneHandler struct {
	uc     usecase.ZoneUsecase
	out    outcome
	logger *slog.Logger
}

// NewZoneHandler is the constructor for ZoneHandler, injected by Fx.
func NewZoneHandler(uc usecase.ZoneUsecase, notifier service.Notifier, logger *slog.Logger) *ZoneHandler {
	return &ZoneHandler{uc: uc, out: outcome{notifier: notifier}, logger: logger}
}

func (h *ZoneHandler) List(c echo.Context) error {
	var query zoneQuery
	if err := bindQuery(c, &query); err != nil {
		return err
	}

	rows, err := h.uc.List(c.Request().Context(), query.AssociationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, rows)
}

func (h *ZoneHandler) Get(c echo.Context) error {
	zone, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, zone)
}

func (h *ZoneHandler) Create(c echo.Context) error {
	var input usecase.ZoneInput
	if err := bindBody(c, &input); err != nil {
		return h.out.failure(err)
	}
	input.ID = ""

	zone, err := h.uc.Save(c.Request().Context(), &input)
	if err != nil {
		return h.out.failure(err)
	}
	h.out.success("Zona creada correctamente")

	return response.Success(c, http.StatusCreated, zone)
}

func (h *ZoneHandler) Update(c echo.Context) error {
	var input usecase.ZoneInput
	if err := bindBody(c, &input); err != nil {
		return h.out.failure(err)
	}
	input.ID = c.Param("id")

	zone, err := h.uc.Save(c.Request().Context(), &input)
	if err != nil {
		return h.out.failure(err)
	}
	h.out.success("Zona actualizada correctamente")

	return response.Success(c, http.StatusOK, zone)
}

func (h *ZoneHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return h.out.failure(err)
	}
	h.out.success("Zona eliminada")

	return response.NoContent(c)
}
