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

type associationQuery struct {
	UnionID string `query:"unionId" validate:"required"`
}

// AssociationHandler serves /associations.
type AssociationHandler struct {
	uc     usecase.AssociationUsecase
	out    outcome
	logger *slog.Logger
}

// NewAssociationHandler is the constructor for AssociationHandler, injected by Fx.
func NewAssociationHandler(uc usecase.AssociationUsecase, notifier service.Notifier, logger *slog.Logger) *AssociationHandler {
	return &AssociationHandler{uc: uc, out: outcome{notifier: notifier}, logger: logger}
}

func (h *AssociationHandler) List(c echo.Context) error {
	var query associationQuery
	if err := bindQuery(c, &query); err != nil {
		return err
	}

	rows, err := h.uc.List(c.Request().Context(), query.UnionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, rows)
}

// NewForm returns the defaults of an empty editor.
func (h *AssociationHandler) NewForm(c echo.Context) error {
	var query associationQuery
	if err := bindQuery(c, &query); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, h.uc.NewForm(query.UnionID))
}

// Form returns the editor for an existing record with its login.
func (h *AssociationHandler) Form(c echo.Context) error {
	form, err := h.uc.Form(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, form)
}

func (h *AssociationHandler) Create(c echo.Context) error {
	var input usecase.AssociationInput
	if err := bindBody(c, &input); err != nil {
		return h.out.failure(err)
	}
	input.ID = ""

	association, err := h.uc.Save(c.Request().Context(), &input)
	if err != nil {
		return h.out.failure(err)
	}
	h.out.success("Asociación creada correctamente")

	return response.Success(c, http.StatusCreated, association)
}

func (h *AssociationHandler) Update(c echo.Context) error {
	var input usecase.AssociationInput
	if err := bindBody(c, &input); err != nil {
		return h.out.failure(err)
	}
	input.ID = c.Param("id")

	association, err := h.uc.Save(c.Request().Context(), &input)
	if err != nil {
		return h.out.failure(err)
	}
	h.out.success("Asociación actualizada correctamente")

	return response.Success(c, http.StatusOK, association)
}

func (h *AssociationHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return h.out.failure(err)
	}
	h.out.success("Asociación eliminada")

	return response.NoContent(c)
}
