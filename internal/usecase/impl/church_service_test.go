package impl

import (
	"context"
	"testing"

	"churchadmin/internal/domain/entity"
	domainerrors "churchadmin/internal/domain/errors"
	"churchadmin/internal/domain/repository"
	"churchadmin/internal/domain/service"
	"churchadmin/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestChurchService(t *testing.T) (usecase.ChurchUsecase, serviceFixtures) {
	t.Helper()
	fx := createServiceFixtures(t)
	fx.seedHierarchy(t)

	return NewChurchService(fx.params()), fx
}

func directorCreds(username, password string) entity.Credentials {
	return entity.Credentials{
		Username: username,
		Password: password,
		Email:    username + "@iglesia.org",
		Name:     "Director " + username,
	}
}

func TestChurchService_Save_CreateWithDirector(t *testing.T) {
	srv, fx := createTestChurchService(t)
	ctx := context.Background()

	church, err := srv.Save(ctx, &usecase.ChurchInput{
		Name:        " Iglesia Norte ",
		DistrictID:  "dist-1",
		Address:     " Calle 5 ",
		Credentials: directorCreds("dnorte", "old"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Iglesia Norte", church.Name)
	assert.Equal(t, "Calle 5", church.Address)
	assert.Contains(t, church.ID, entity.PrefixChurch+"-")

	director, err := fx.repos.Users.FindByRelatedEntityAndRole(ctx, church.ID, entity.RoleDirectorMP)
	require.NoError(t, err)
	assert.Equal(t, "dnorte", director.Username)
	assert.Equal(t, "hashed:old", director.PasswordHash)

	fx.auth.AssertCalled(t, "CreateAuthUser", mock.Anything, "dnorte@iglesia.org", "old", mock.MatchedBy(func(m service.AuthAccountMetadata) bool {
		return m.Role == "DIRECTOR_MP" && m.RelatedEntityID == church.ID
	}))
	assert.True(t, fx.publisher.has(service.EventCreated, kindChurch))
}

func TestChurchService_Save_EditKeepsPasswordWhenBlank(t *testing.T) {
	srv, fx := createTestChurchService(t)
	ctx := context.Background()

	created, err := srv.Save(ctx, &usecase.ChurchInput{Name: "Iglesia Norte", DistrictID: "dist-1", Credentials: directorCreds("dnorte", "old")})
	require.NoError(t, err)
	before, err := fx.repos.Users.FindByRelatedEntityAndRole(ctx, created.ID, entity.RoleDirectorMP)
	require.NoError(t, err)

	_, err = srv.Save(ctx, &usecase.ChurchInput{
		ID:          created.ID,
		Name:        "Iglesia Norte",
		DistrictID:  "dist-1",
		Address:     "Calle 9",
		Credentials: directorCreds("dnorte", ""),
	})
	require.NoError(t, err)

	after, err := fx.repos.Users.FindByID(ctx, before.ID)
	require.NoError(t, err)
	assert.Equal(t, "hashed:old", after.PasswordHash)
	assert.Equal(t, before.ID, after.ID)

	stored, err := fx.repos.Churches.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Calle 9", stored.Address)
	assert.Equal(t, created.CreatedAt, stored.CreatedAt)
	assert.Equal(t, 1, userCount(t, fx.repos))
}

func TestChurchService_Save_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		input    *usecase.ChurchInput
		expected error
	}{
		{
			name:     "unknown district",
			input:    &usecase.ChurchInput{Name: "Iglesia Este", DistrictID: "dist-x"},
			expected: domainerrors.ErrValidationFailed,
		},
		{
			name:     "missing district",
			input:    &usecase.ChurchInput{Name: "Iglesia Este"},
			expected: domainerrors.ErrValidationFailed,
		},
		{
			name:     "blank director username",
			input:    &usecase.ChurchInput{Name: "Iglesia Este", DistrictID: "dist-1", Credentials: directorCreds(" ", "clave")},
			expected: domainerrors.ErrIncompleteCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, fx := createTestChurchService(t)
			ctx := context.Background()

			_, err := srv.Save(ctx, tt.input)
			assert.ErrorIs(t, err, tt.expected)

			churches, listErr := fx.repos.Churches.ListByDistrict(ctx, "dist-1")
			require.NoError(t, listErr)
			assert.Len(t, churches, 1)
			assert.Equal(t, 0, userCount(t, fx.repos))
		})
	}
}

func TestChurchService_List(t *testing.T) {
	srv, _ := createTestChurchService(t)
	ctx := context.Background()

	created, err := srv.Save(ctx, &usecase.ChurchInput{Name: "Iglesia Norte", DistrictID: "dist-1", Credentials: directorCreds("dnorte", "old")})
	require.NoError(t, err)

	rows, err := srv.List(ctx, "dist-1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "igl-1", rows[0].ID)
	assert.Equal(t, "Distrito Centro", rows[0].DistrictName)
	assert.Empty(t, rows[0].Director.UserID)
	assert.Equal(t, created.ID, rows[1].ID)
	assert.Equal(t, "dnorte", rows[1].Director.Username)
}

func TestChurchService_Delete(t *testing.T) {
	srv, fx := createTestChurchService(t)
	ctx := context.Background()

	created, err := srv.Save(ctx, &usecase.ChurchInput{Name: "Iglesia Norte", DistrictID: "dist-1", Credentials: directorCreds("dnorte", "old")})
	require.NoError(t, err)
	director, err := fx.repos.Users.FindByRelatedEntityAndRole(ctx, created.ID, entity.RoleDirectorMP)
	require.NoError(t, err)

	require.NoError(t, srv.Delete(ctx, created.ID))

	_, err = fx.repos.Churches.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = fx.repos.Users.FindByID(ctx, director.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.True(t, fx.publisher.has(service.EventDeleted, kindChurch))
	assert.True(t, fx.publisher.has(service.EventDeleted, kindUser))

	assert.ErrorIs(t, srv.Delete(ctx, created.ID), domainerrors.ErrNotFound)
}
