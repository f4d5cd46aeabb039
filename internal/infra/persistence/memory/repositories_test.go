package memory

import (
	"context"
	"testing"

	"churchadmin/internal/domain/entity"
	"churchadmin/internal/domain/repository"
	"churchadmin/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_ListKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewZoneRepository()

	for _, id := range []string{"z3", "z1", "z2"} {
		require.NoError(t, repo.Create(ctx, &entity.Zone{ID: id, AssociationID: "a1"}))
	}
	require.NoError(t, repo.Update(ctx, &entity.Zone{ID: "z3", Name: "renamed", AssociationID: "a1"}))

	zones, err := repo.ListByAssociation(ctx, "a1")
	require.NoError(t, err)
	require.Len(t, zones, 3)
	assert.Equal(t, []string{"z3", "z1", "z2"}, []string{zones[0].ID, zones[1].ID, zones[2].ID})
	assert.Equal(t, "renamed", zones[0].Name)
}

func TestTable_CopiesOnReadAndWrite(t *testing.T) {
	ctx := context.Background()
	repo := NewDistrictRepository()

	district := &entity.District{ID: "d1", Name: "Norte", Goals: entity.DefaultGoals()}
	require.NoError(t, repo.Create(ctx, district))
	district.Name = "changed after create"
	district.Goals[entity.MetricBaptisms] = entity.Goal{Target: 50, Period: entity.PeriodAnnual}

	stored, err := repo.FindByID(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, "Norte", stored.Name)
	assert.Equal(t, 0, stored.Goals[entity.MetricBaptisms].Target)

	stored.Goals[entity.MetricFriends] = entity.Goal{Target: 9, Period: entity.PeriodWeekly}
	again, err := repo.FindByID(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, 0, again.Goals[entity.MetricFriends].Target)
}

func TestTable_Errors(t *testing.T) {
	ctx := context.Background()
	repo := NewUnionRepository()

	require.NoError(t, repo.Create(ctx, &entity.Union{ID: "u1"}))
	assert.True(t, errors.Is(repo.Create(ctx, &entity.Union{ID: "u1"}), repository.ErrDuplicate))
	assert.True(t, errors.Is(repo.Update(ctx, &entity.Union{ID: "missing"}), repository.ErrNotFound))
	assert.True(t, errors.Is(repo.Delete(ctx, "missing"), repository.ErrNotFound))

	_, err := repo.FindByID(ctx, "missing")
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestUserRepository_AssignsIDAndKeepsUsernamesUnique(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	user := &entity.User{ID: "caller-chosen", Username: "Pastor.Norte", Role: entity.RolePastor, RelatedEntityID: "d1"}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotEqual(t, "caller-chosen", user.ID)
	assert.NotEmpty(t, user.ID)

	err := repo.Create(ctx, &entity.User{Username: "pastor.norte"})
	assert.True(t, errors.Is(err, repository.ErrDuplicate))

	found, err := repo.FindByUsername(ctx, "PASTOR.NORTE")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	linked, err := repo.FindByRelatedEntityAndRole(ctx, "d1", entity.RolePastor)
	require.NoError(t, err)
	assert.Equal(t, user.ID, linked.ID)

	_, err = repo.FindByRelatedEntityAndRole(ctx, "d1", entity.RoleLeaderGP)
	assert.True(t, errors.Is(err, repository.ErrNotFound))

	other := &entity.User{Username: "otro"}
	require.NoError(t, repo.Create(ctx, other))
	other.Username = "PASTOR.norte"
	assert.True(t, errors.Is(repo.Update(ctx, other), repository.ErrDuplicate))
}
