package impl

import (
	"context"

	"churchadmin/internal/domain/service"
	"churchadmin/internal/errors"
	"churchadmin/internal/usecase"
)

type personnelService struct {
	source service.PersonnelSource
}

// NewPersonnelService is the constructor for personnelService.
func NewPersonnelService(params ServiceParams) usecase.PersonnelUsecase {
	return &personnelService{source: params.Personnel}
}

// List returns the leader candidates of a church and the name of the source
// they came from.
func (srv *personnelService) List(ctx context.Context, churchID string) (*usecase.PersonnelListing, error) {
	if srv.source == nil {
		return nil, errors.New("personnel source is not configured")
	}

	personnel, err := srv.source.ListPersonnel(ctx, churchID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list personnel from %s", srv.source.Name())
	}

	return &usecase.PersonnelListing{Source: srv.source.Name(), Personnel: personnel}, nil
}
