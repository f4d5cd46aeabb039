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

type memberQuery struct {
	GPID string `query:"gpId" validate:"required"`
}

// MemberHandler serves /members.
type MemberHandler struct {
	uc     usecase.MemberUsecase
	out    outcome
	logger *slog.Logger
}

// NewMemberHandler is the constructor for MemberHandler, injected by Fx.
func NewMemberHandler(uc usecase.MemberUsecase, notifier service.Notifier, logger *slog.Logger) *MemberHandler {
	return &MemberHandler{uc: uc, out: outcome{notifier: notifier}, logger: logger}
}

func (h *MemberHandler) List(c echo.Context) error {
	var query memberQuery
	if err := bindQuery(c, &query); err != nil {
		return err
	}

	rows, err := h.uc.List(c.Request().Context(), query.GPID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, rows)
}

func (h *MemberHandler) Get(c echo.Context) error {
	member, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, member)
}

func (h *MemberHandler) Create(c echo.Context) error {
	var input usecase.MemberInput
	if err := bindBody(c, &input); err != nil {
		return h.out.failure(err)
	}
	input.ID = ""

	member, err := h.uc.Save(c.Request().Context(), &input)
	if err != nil {
		return h.out.failure(err)
	}
	h.out.success("Miembro creado correctamente")

	return response.Success(c, http.StatusCreated, member)
}

func (h *MemberHandler) Update(c echo.Context) error {
	var input usecase.MemberInput
	if err := bindBody(c, &input); err != nil {
		return h.out.failure(err)
	}
	input.ID = c.Param("id")

	member, err := h.uc.Save(c.Request().Context(), &input)
	if err != nil {
		return h.out.failure(err)
	}
	h.out.success("Miembro actualizado correctamente")

	return response.Success(c, http.StatusOK, member)
}

func (h *MemberHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return h.out.failure(err)
	}
	h.out.success("Miembro eliminado")

	return response.NoContent(c)
}
