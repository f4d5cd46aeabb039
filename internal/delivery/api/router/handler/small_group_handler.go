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

type smallGroupQuery struct {
	ChurchID string `query:"churchId" validate:"required"`
}

// SmallGroupHandler serves /small-groups.
type SmallGroupHandler struct {
	uc     usecase.SmallGroupUsecase
	out    outcome
	logger *slog.Logger
}

// NewSmallGroupHandler is the constructor for SmallGroupHandler, injected by Fx.
func NewSmallGroupHandler(uc usecase.SmallGroupUsecase, notifier service.Notifier, logger *slog.Logger) *SmallGroupHandler {
	return &SmallGroupHandler{uc: uc, out: outcome{notifier: notifier}, logger: logger}
}

func (h *SmallGroupHandler) List(c echo.Context) error {
	var query smallGroupQuery
	if err := bindQuery(c, &query); err != nil {
		return err
	}

	rows, err := h.uc.List(c.Request().Context(), query.ChurchID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, rows)
}

// NewForm returns the defaults of an empty editor.
func (h *SmallGroupHandler) NewForm(c echo.Context) error {
	var query smallGroupQuery
	if err := bindQuery(c, &query); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, h.uc.NewForm(query.ChurchID))
}

// Form returns the editor for an existing record with its login.
func (h *SmallGroupHandler) Form(c echo.Context) error {
	form, err := h.uc.Form(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, form)
}

func (h *SmallGroupHandler) Create(c echo.Context) error {
	var input usecase.SmallGroupInput
	if err := bindBody(c, &input); err != nil {
		return h.out.failure(err)
	}
	input.ID = ""

	group, err := h.uc.Save(c.Request().Context(), &input)
	if err != nil {
		return h.out.failure(err)
	}
	h.out.success("Grupo pequeño creado correctamente")

	return response.Success(c, http.StatusCreated, group)
}

func (h *SmallGroupHandler) Update(c echo.Context) error {
	var input usecase.SmallGroupInput
	if err := bindBody(c, &input); err != nil {
		return h.out.failure(err)
	}
	input.ID = c.Param("id")

	group, err := h.uc.Save(c.Request().Context(), &input)
	if err != nil {
		return h.out.failure(err)
	}
	h.out.success("Grupo pequeño actualizado correctamente")

	return response.Success(c, http.StatusOK, group)
}

func (h *SmallGroupHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return h.out.failure(err)
	}
	h.out.success("Grupo pequeño eliminado")

	return response.NoContent(c)
}

// CreateFromPersonnel creates a group whose leader login comes from a
// personnel candidate.
func (h *SmallGroupHandler) CreateFromPersonnel(c echo.Context) error {
	var input usecase.FromPersonnelInput
	if err := bindBody(c, &input); err != nil {
		return h.out.failure(err)
	}

	group, err := h.uc.CreateFromPersonnel(c.Request().Context(), &input)
	if err != nil {
		return h.out.failure(err)
	}
	h.out.success("Grupo pequeño creado con su líder")

	return response.Success(c, http.StatusCreated, group)
}
