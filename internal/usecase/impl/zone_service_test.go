package impl

import (
	"context"
	"testing"

	domainerrors "churchadmin/internal/domain/errors"
	"churchadmin/internal/domain/service"
	"churchadmin/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZoneService_SaveAndDelete(t *testing.T) {
	fx := createServiceFixtures(t)
	fx.seedHierarchy(t)
	srv := NewZoneService(fx.params())
	ctx := context.Background()

	created, err := srv.Save(ctx, &usecase.ZoneInput{Name: " Zona 2 ", AssociationID: "asoc-1"})
	require.NoError(t, err)
	assert.Equal(t, "Zona 2", created.Name)

	renamed, err := srv.Save(ctx, &usecase.ZoneInput{ID: created.ID, Name: "Zona Dos", AssociationID: "asoc-1"})
	require.NoError(t, err)
	assert.Equal(t, created.CreatedAt, renamed.CreatedAt)

	zones, err := srv.List(ctx, "asoc-1")
	require.NoError(t, err)
	require.Len(t, zones, 2)
	assert.Equal(t, "Zona Dos", zones[1].Name)

	require.NoError(t, srv.Delete(ctx, created.ID))
	_, err = srv.Get(ctx, created.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	assert.True(t, fx.publisher.has(service.EventDeleted, kindZone))
	assert.ErrorIs(t, srv.Delete(ctx, created.ID), domainerrors.ErrNotFound)
}

func TestZoneService_Save_Rejections(t *testing.T) {
	fx := createServiceFixtures(t)
	fx.seedHierarchy(t)
	srv := NewZoneService(fx.params())
	ctx := context.Background()

	_, err := srv.Save(ctx, &usecase.ZoneInput{Name: "Zona 2", AssociationID: "asoc-x"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = srv.Save(ctx, &usecase.ZoneInput{AssociationID: "asoc-1"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = srv.Save(ctx, &usecase.ZoneInput{ID: "zona-x", Name: "Zona 2", AssociationID: "asoc-1"})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
