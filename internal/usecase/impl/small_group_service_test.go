package impl

import (
	"context"
	"testing"

	"churchadmin/internal/domain/entity"
	domainerrors "churchadmin/internal/domain/errors"
	"churchadmin/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestSmallGroupService(t *testing.T) (usecase.SmallGroupUsecase, serviceFixtures) {
	t.Helper()
	fx := createServiceFixtures(t)
	fx.seedHierarchy(t)

	return NewSmallGroupService(fx.params()), fx
}

func TestSmallGroupService_Save_CreateWithLeader(t *testing.T) {
	srv, fx := createTestSmallGroupService(t)
	ctx := context.Background()

	group, err := srv.Save(ctx, &usecase.SmallGroupInput{
		Name:        "Luz del Mundo",
		ChurchID:    "igl-1",
		MeetingDay:  "Viernes",
		Credentials: pastorCreds("lider.luz"),
	})
	require.NoError(t, err)
	require.NotEmpty(t, group.LeaderID)

	leader, err := fx.repos.Users.FindByID(ctx, group.LeaderID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleLeaderGP, leader.Role)
	assert.Equal(t, group.ID, leader.RelatedEntityID)
}

func TestSmallGroupService_List_CountsMembers(t *testing.T) {
	srv, fx := createTestSmallGroupService(t)
	ctx := context.Background()

	group, err := srv.Save(ctx, &usecase.SmallGroupInput{Name: "Luz", ChurchID: "igl-1"})
	require.NoError(t, err)
	for _, id := range []string{"miem-1", "miem-2"} {
		require.NoError(t, fx.repos.Members.Create(ctx, &entity.Member{ID: id, GPID: group.ID, ChurchID: "igl-1"}))
	}

	rows, err := srv.List(ctx, "igl-1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].MemberCount)
	assert.Empty(t, rows[0].Leader.UserID)
}

func TestSmallGroupService_CreateFromPersonnel(t *testing.T) {
	srv, fx := createTestSmallGroupService(t)
	ctx := context.Background()
	fx.personnel.On("ListPersonnel", mock.Anything, "igl-1").Return([]entity.Personnel{
		{ID: "p-1", Name: "Ana Ruiz", Email: "ana@iglesia.org", ChurchID: "igl-1"},
		{ID: "p-2", Name: "Sin Correo", ChurchID: "igl-1"},
	}, nil)

	group, err := srv.CreateFromPersonnel(ctx, &usecase.FromPersonnelInput{
		ChurchID:    "igl-1",
		PersonnelID: "p-1",
		Name:        "Esperanza",
		Username:    "ana.ruiz",
		Password:    "clave",
	})
	require.NoError(t, err)

	leader, err := fx.repos.Users.FindByID(ctx, group.LeaderID)
	require.NoError(t, err)
	assert.Equal(t, "ana@iglesia.org", leader.Email)
	assert.Equal(t, "Ana Ruiz", leader.Name)
	assert.Equal(t, "hashed:clave", leader.PasswordHash)
	assert.Equal(t, entity.DefaultGoals(), group.Goals)

	_, err = srv.CreateFromPersonnel(ctx, &usecase.FromPersonnelInput{
		ChurchID: "igl-1", PersonnelID: "p-2", Name: "Fe", Username: "sin.correo", Password: "clave",
	})
	assert.ErrorIs(t, err, domainerrors.ErrIncompleteCredentials)

	_, err = srv.CreateFromPersonnel(ctx, &usecase.FromPersonnelInput{
		ChurchID: "igl-1", PersonnelID: "p-9", Name: "Gozo", Username: "nadie", Password: "clave",
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	fx.personnel.AssertExpectations(t)
}

func TestSmallGroupService_CreateFromPersonnel_SourceFailure(t *testing.T) {
	srv, fx := createTestSmallGroupService(t)
	fx.personnel.On("ListPersonnel", mock.Anything, "igl-1").Return(nil, errors.New("bucket unavailable"))

	_, err := srv.CreateFromPersonnel(context.Background(), &usecase.FromPersonnelInput{
		ChurchID: "igl-1", PersonnelID: "p-1", Name: "Esperanza", Username: "ana", Password: "clave",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bucket unavailable")
	groups, listErr := fx.repos.SmallGroups.ListByChurch(context.Background(), "igl-1")
	require.NoError(t, listErr)
	assert.Empty(t, groups)
}

func TestSmallGroupService_CreateFromPersonnel_NoSource(t *testing.T) {
	fx := createServiceFixtures(t)
	params := fx.params()
	params.Personnel = nil
	srv := NewSmallGroupService(params)

	_, err := srv.CreateFromPersonnel(context.Background(), &usecase.FromPersonnelInput{
		ChurchID: "igl-1", PersonnelID: "p-1", Name: "Esperanza", Username: "ana", Password: "clave",
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
