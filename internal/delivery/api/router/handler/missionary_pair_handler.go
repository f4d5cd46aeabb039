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

type missionaryPairQuery struct {
	GPID string `query:"gpId" validate:"required"`
}

// MissionaryPairHandler serves /missionary-pairs.
type MissionaryPairHandler struct {
	uc     usecase.MissionaryPairUsecase
	out    outcome
	logger *slog.Logger
}

// NewMissionaryPairHandler is the constructor for MissionaryPairHandler, injected by Fx.
func NewMissionaryPairHandler(uc usecase.MissionaryPairUsecase, notifier service.Notifier, logger *slog.Logger) *MissionaryPairHandler {
	return &MissionaryPairHandler{uc: uc, out: outcome{notifier: notifier}, logger: logger}
}

func (h *MissionaryPairHandler) List(c echo.Context) error {
	var query missionaryPairQuery
	if err := bindQuery(c, &query); err != nil {
		return err
	}

	rows, err := h.uc.List(c.Request().Context(), query.GPID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, rows)
}

func (h *MissionaryPairHandler) Create(c echo.Context) error {
	var input usecase.MissionaryPairInput
	if err := bindBody(c, &input); err != nil {
		return h.out.failure(err)
	}
	input.ID = ""

	pair, err := h.uc.Save(c.Request().Context(), &input)
	if err != nil {
		return h.out.failure(err)
	}
	h.out.success("Pareja misionera creada correctamente")

	return response.Success(c, http.StatusCreated, pair)
}

func (h *MissionaryPairHandler) Update(c echo.Context) error {
	var input usecase.MissionaryPairInput
	if err := bindBody(c, &input); err != nil {
		return h.out.failure(err)
	}
	input.ID = c.Param("id")

	pair, err := h.uc.Save(c.Request().Context(), &input)
	if err != nil {
		return h.out.failure(err)
	}
	h.out.success("Pareja misionera actualizada correctamente")

	return response.Success(c, http.StatusOK, pair)
}

func (h *MissionaryPairHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return h.out.failure(err)
	}
	h.out.success("Pareja misionera eliminada")

	return response.NoContent(c)
}
