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

type weeklyReportQuery struct {
	GPID string `query:"gpId" validate:"required"`
}

type draftQuery struct {
	GPID string `query:"gpId" validate:"required"`
	Date string `query:"date" validate:"required,datetime=2006-01-02"`
}

// WeeklyReportHandler serves /weekly-reports.
type WeeklyReportHandler struct {
	uc     usecase.WeeklyReportUsecase
	out    outcome
	logger *slog.Logger
}

// NewWeeklyReportHandler is the constructor for WeeklyReportHandler, injected by Fx.
func NewWeeklyReportHandler(uc usecase.WeeklyReportUsecase, notifier service.Notifier, logger *slog.Logger) *WeeklyReportHandler {
	return &WeeklyReportHandler{uc: uc, out: outcome{notifier: notifier}, logger: logger}
}

func (h *WeeklyReportHandler) List(c echo.Context) error {
	var query weeklyReportQuery
	if err := bindQuery(c, &query); err != nil {
		return err
	}

	reports, err := h.uc.List(c.Request().Context(), query.GPID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, reports)
}

func (h *WeeklyReportHandler) Get(c echo.Context) error {
	report, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, report)
}

// Draft returns an unsaved report pre-filled for the group.
func (h *WeeklyReportHandler) Draft(c echo.Context) error {
	var query draftQuery
	if err := bindQuery(c, &query); err != nil {
		return err
	}

	report, err := h.uc.Draft(c.Request().Context(), query.GPID, query.Date)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, report)
}

func (h *WeeklyReportHandler) Create(c echo.Context) error {
	var input usecase.WeeklyReportInput
	if err := bindBody(c, &input); err != nil {
		return h.out.failure(err)
	}
	input.ID = ""

	report, err := h.uc.Save(c.Request().Context(), &input)
	if err != nil {
		return h.out.failure(err)
	}
	h.out.success("Reporte semanal guardado")

	return response.Success(c, http.StatusCreated, report)
}

func (h *WeeklyReportHandler) Update(c echo.Context) error {
	var input usecase.WeeklyReportInput
	if err := bindBody(c, &input); err != nil {
		return h.out.failure(err)
	}
	input.ID = c.Param("id")

	report, err := h.uc.Save(c.Request().Context(), &input)
	if err != nil {
		return h.out.failure(err)
	}
	h.out.success("Reporte semanal actualizado")

	return response.Success(c, http.StatusOK, report)
}

// UpdateAttendance edits one member's row of a saved report.
func (h *WeeklyReportHandler) UpdateAttendance(c echo.Context) error {
	var input usecase.AttendanceInput
	if err := bindBody(c, &input); err != nil {
		return h.out.failure(err)
	}

	report, err := h.uc.UpdateAttendance(c.Request().Context(), c.Param("id"), c.Param("memberId"), &input)
	if err != nil {
		return h.out.failure(err)
	}
	h.out.success("Asistencia actualizada")

	return response.Success(c, http.StatusOK, report)
}

func (h *WeeklyReportHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return h.out.failure(err)
	}
	h.out.success("Reporte semanal eliminado")

	return response.NoContent(c)
}
