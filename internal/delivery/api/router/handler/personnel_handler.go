package handler

import (
	"net/http"

	"churchadmin/internal/delivery/api/response"
	"churchadmin/internal/errors"
	"churchadmin/internal/usecase"

	"github.com/labstack/echo/v4"
)

type personnelQuery struct {
	ChurchID string `query:"churchId"`
}

// PersonnelHandler serves /personnel.
type PersonnelHandler struct {
	uc usecase.PersonnelUsecase
}

// NewPersonnelHandler is the constructor for PersonnelHandler, injected by Fx.
func NewPersonnelHandler(uc usecase.PersonnelUsecase) *PersonnelHandler {
	return &PersonnelHandler{uc: uc}
}

// List returns the leader candidates and the source they were read from.
func (h *PersonnelHandler) List(c echo.Context) error {
	var query personnelQuery
	if err := bindQuery(c, &query); err != nil {
		return err
	}

	listing, err := h.uc.List(c.Request().Context(), query.ChurchID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listing)
}
