package impl

import (
	"context"
	"testing"

	"churchadmin/internal/domain/entity"
	domainerrors "churchadmin/internal/domain/errors"
	"churchadmin/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createGroupFixtures(t *testing.T) serviceFixtures {
	t.Helper()
	fx := createServiceFixtures(t)
	fx.seedHierarchy(t)
	require.NoError(t, fx.repos.SmallGroups.Create(context.Background(), &entity.SmallGroup{ID: "gp-1", Name: "Luz", ChurchID: "igl-1"}))

	return fx
}

func TestMemberService_Save(t *testing.T) {
	fx := createGroupFixtures(t)
	srv := NewMemberService(fx.params())
	ctx := context.Background()

	member, err := srv.Save(ctx, &usecase.MemberInput{FirstName: " Ana ", LastName: "Ruiz", GPID: "gp-1", Role: "OTRO"})
	require.NoError(t, err)
	assert.Equal(t, "Ana", member.FirstName)
	assert.Equal(t, "igl-1", member.ChurchID)
	assert.Equal(t, entity.MemberRoleMember, member.Role)

	_, err = srv.Save(ctx, &usecase.MemberInput{FirstName: "Ana", LastName: "Ruiz", GPID: "gp-x"})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = srv.Save(ctx, &usecase.MemberInput{FirstName: "Ana", LastName: "Ruiz", GPID: "gp-1", Email: "ana"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	members, err := srv.List(ctx, "gp-1")
	require.NoError(t, err)
	assert.Len(t, members, 1)
}

func TestMissionaryPairService_Save(t *testing.T) {
	fx := createGroupFixtures(t)
	members := NewMemberService(fx.params())
	srv := NewMissionaryPairService(fx.params())
	ctx := context.Background()

	ana, err := members.Save(ctx, &usecase.MemberInput{FirstName: "Ana", LastName: "Ruiz", GPID: "gp-1"})
	require.NoError(t, err)
	luis, err := members.Save(ctx, &usecase.MemberInput{FirstName: "Luis", LastName: "Vera", GPID: "gp-1"})
	require.NoError(t, err)

	pair, err := srv.Save(ctx, &usecase.MissionaryPairInput{Member1ID: ana.ID, Member2ID: luis.ID, GPID: "gp-1"})
	require.NoError(t, err)

	rows, err := srv.List(ctx, "gp-1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, pair.ID, rows[0].ID)
	assert.Equal(t, "Ana Ruiz", rows[0].Member1Name)
	assert.Equal(t, "Luis Vera", rows[0].Member2Name)

	_, err = srv.Save(ctx, &usecase.MissionaryPairInput{Member1ID: ana.ID, Member2ID: ana.ID, GPID: "gp-1"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = srv.Save(ctx, &usecase.MissionaryPairInput{Member1ID: ana.ID, Member2ID: "miem-ajeno", GPID: "gp-1"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	require.NoError(t, srv.Delete(ctx, pair.ID))
	assert.ErrorIs(t, srv.Delete(ctx, pair.ID), domainerrors.ErrNotFound)
}
