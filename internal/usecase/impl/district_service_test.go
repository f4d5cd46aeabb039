package impl

import (
	"context"
	"testing"

	"churchadmin/internal/domain/entity"
	domainerrors "churchadmin/internal/domain/errors"
	"churchadmin/internal/domain/repository"
	"churchadmin/internal/domain/service"
	"churchadmin/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestDistrictService(t *testing.T) (usecase.DistrictUsecase, serviceFixtures) {
	t.Helper()
	fx := createServiceFixtures(t)
	fx.seedHierarchy(t)

	return NewDistrictService(fx.params()), fx
}

func TestDistrictService_Save_CreateWithPastor(t *testing.T) {
	srv, fx := createTestDistrictService(t)
	ctx := context.Background()

	district, err := srv.Save(ctx, &usecase.DistrictInput{
		Name:        "  Distrito Norte ",
		ZoneID:      "zona-1",
		Goals:       map[entity.GoalMetric]entity.GoalInput{entity.MetricBaptisms: {Target: -3, Period: entity.PeriodAnnual}},
		Credentials: pastorCreds("pnorte"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Distrito Norte", district.Name)
	assert.Contains(t, district.ID, entity.PrefixDistrict+"-")
	assert.Equal(t, 0, district.Goals[entity.MetricBaptisms].Target)
	require.NotEmpty(t, district.PastorID)

	pastor, err := fx.repos.Users.FindByRelatedEntityAndRole(ctx, district.ID, entity.RolePastor)
	require.NoError(t, err)
	assert.Equal(t, district.PastorID, pastor.ID)
	assert.Equal(t, "hashed:secreto", pastor.PasswordHash)
	assert.True(t, pastor.IsActive)

	stored, err := fx.repos.Districts.FindByID(ctx, district.ID)
	require.NoError(t, err)
	assert.Equal(t, pastor.ID, stored.PastorID)

	fx.auth.AssertCalled(t, "CreateAuthUser", mock.Anything, "pnorte@iglesia.org", "secreto", mock.MatchedBy(func(m service.AuthAccountMetadata) bool {
		return m.UserID == pastor.ID && m.Role == "PASTOR" && m.RelatedEntityID == district.ID
	}))
	assert.True(t, fx.publisher.has(service.EventCreated, kindDistrict))
	assert.True(t, fx.publisher.has(service.EventCreated, kindUser))
}

func TestDistrictService_Save_CreateWithoutCredentials(t *testing.T) {
	srv, fx := createTestDistrictService(t)

	district, err := srv.Save(context.Background(), &usecase.DistrictInput{Name: "Distrito Sur", ZoneID: "zona-1"})
	require.NoError(t, err)

	assert.Empty(t, district.PastorID)
	assert.Equal(t, entity.DefaultGoals(), district.Goals)
	assert.Equal(t, 0, userCount(t, fx.repos))
	fx.auth.AssertNotCalled(t, "CreateAuthUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDistrictService_Save_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		input    *usecase.DistrictInput
		expected error
	}{
		{
			name:     "missing name",
			input:    &usecase.DistrictInput{ZoneID: "zona-1"},
			expected: domainerrors.ErrValidationFailed,
		},
		{
			name:     "duplicate name ignoring case",
			input:    &usecase.DistrictInput{Name: " distrito CENTRO", ZoneID: "zona-1"},
			expected: domainerrors.ErrDuplicateName,
		},
		{
			name:     "unknown zone",
			input:    &usecase.DistrictInput{Name: "Distrito Este", ZoneID: "zona-x"},
			expected: domainerrors.ErrValidationFailed,
		},
		{
			name:     "partial credentials",
			input:    &usecase.DistrictInput{Name: "Distrito Este", ZoneID: "zona-1", Credentials: entity.Credentials{Username: "peste"}},
			expected: domainerrors.ErrIncompleteCredentials,
		},
		{
			name: "blank username",
			input: &usecase.DistrictInput{Name: "Distrito Este", ZoneID: "zona-1", Credentials: entity.Credentials{
				Username: "   ", Password: "p", Email: "p@iglesia.org",
			}},
			expected: domainerrors.ErrIncompleteCredentials,
		},
		{
			name: "malformed email",
			input: &usecase.DistrictInput{Name: "Distrito Este", ZoneID: "zona-1", Credentials: entity.Credentials{
				Username: "peste", Password: "x", Email: "no-es-correo",
			}},
			expected: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, fx := createTestDistrictService(t)
			ctx := context.Background()

			_, err := srv.Save(ctx, tt.input)
			assert.ErrorIs(t, err, tt.expected)

			districts, listErr := fx.repos.Districts.ListByZone(ctx, "zona-1")
			require.NoError(t, listErr)
			assert.Len(t, districts, 1)
			assert.Equal(t, 0, userCount(t, fx.repos))
		})
	}
}

func TestDistrictService_Save_DuplicateUsername(t *testing.T) {
	srv, fx := createTestDistrictService(t)
	ctx := context.Background()
	require.NoError(t, fx.repos.Users.Create(ctx, &entity.User{Username: "pnorte", Role: entity.RoleDirectorMP, RelatedEntityID: "igl-1"}))

	_, err := srv.Save(ctx, &usecase.DistrictInput{Name: "Distrito Norte", ZoneID: "zona-1", Credentials: pastorCreds("PNorte")})

	assert.ErrorIs(t, err, domainerrors.ErrDuplicateUsername)
	appErr, ok := errors.Cause(err).(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.HTTPCode())
	assert.Equal(t, 1, userCount(t, fx.repos))
}

func TestDistrictService_Save_StoreDuplicateIsUsernameConflict(t *testing.T) {
	fx := createServiceFixtures(t)
	fx.seedHierarchy(t)
	fx.repos.Users = &failingUsers{UserRepository: fx.repos.Users, createErr: repository.ErrDuplicate}
	srv := NewDistrictService(fx.params())
	ctx := context.Background()

	_, err := srv.Save(ctx, &usecase.DistrictInput{Name: "Distrito Norte", ZoneID: "zona-1", Credentials: pastorCreds("pnorte")})

	assert.ErrorIs(t, err, domainerrors.ErrDuplicateUsername)
	var provErr *domainerrors.ProvisioningError
	require.True(t, errors.As(err, &provErr))
	assert.Equal(t, "create user", provErr.Step)
	assert.Equal(t, 409, provErr.HTTPCode())

	districts, err := fx.repos.Districts.ListByZone(ctx, "zona-1")
	require.NoError(t, err)
	assert.Len(t, districts, 1)
}

func TestDistrictService_Save_UserCreateFailureRemovesDistrict(t *testing.T) {
	fx := createServiceFixtures(t)
	fx.seedHierarchy(t)
	fx.repos.Users = &failingUsers{UserRepository: fx.repos.Users, createErr: errors.New("disk full")}
	srv := NewDistrictService(fx.params())
	ctx := context.Background()

	_, err := srv.Save(ctx, &usecase.DistrictInput{Name: "Distrito Norte", ZoneID: "zona-1", Credentials: pastorCreds("pnorte")})
	require.Error(t, err)

	var provErr *domainerrors.ProvisioningError
	require.True(t, errors.As(err, &provErr))
	assert.Equal(t, "create user", provErr.Step)
	assert.NoError(t, provErr.Compensation)
	assert.Equal(t, 500, provErr.HTTPCode())

	districts, err := fx.repos.Districts.ListByZone(ctx, "zona-1")
	require.NoError(t, err)
	assert.Len(t, districts, 1)
	assert.False(t, fx.publisher.has(service.EventCreated, kindDistrict))
	fx.auth.AssertNotCalled(t, "CreateAuthUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDistrictService_Save_LinkFailureRemovesUserAndDistrict(t *testing.T) {
	fx := createServiceFixtures(t)
	fx.seedHierarchy(t)
	fx.repos.Districts = &failingDistricts{DistrictRepository: fx.repos.Districts, updateErr: errors.New("connection reset")}
	srv := NewDistrictService(fx.params())
	ctx := context.Background()

	_, err := srv.Save(ctx, &usecase.DistrictInput{Name: "Distrito Norte", ZoneID: "zona-1", Credentials: pastorCreds("pnorte")})
	require.Error(t, err)

	var provErr *domainerrors.ProvisioningError
	require.True(t, errors.As(err, &provErr))
	assert.Equal(t, "link PASTOR", provErr.Step)
	assert.Contains(t, err.Error(), "connection reset")

	districts, err := fx.repos.Districts.ListByZone(ctx, "zona-1")
	require.NoError(t, err)
	assert.Len(t, districts, 1)
	assert.Equal(t, 0, userCount(t, fx.repos))
}

func TestDistrictService_Save_RollbackFailureIsReported(t *testing.T) {
	fx := createServiceFixtures(t)
	fx.seedHierarchy(t)
	fx.repos.Users = &failingUsers{UserRepository: fx.repos.Users, deleteErr: errors.New("permission denied")}
	fx.repos.Districts = &failingDistricts{DistrictRepository: fx.repos.Districts, updateErr: errors.New("connection reset")}
	srv := NewDistrictService(fx.params())

	_, err := srv.Save(context.Background(), &usecase.DistrictInput{Name: "Distrito Norte", ZoneID: "zona-1", Credentials: pastorCreds("pnorte")})

	var provErr *domainerrors.ProvisioningError
	require.True(t, errors.As(err, &provErr))
	require.Error(t, provErr.Compensation)
	assert.Contains(t, err.Error(), "rollback: undo create user: permission denied")
}

func TestDistrictService_Save_EditKeepsPasswordWhenBlank(t *testing.T) {
	srv, fx := createTestDistrictService(t)
	ctx := context.Background()

	created, err := srv.Save(ctx, &usecase.DistrictInput{Name: "Distrito Norte", ZoneID: "zona-1", Credentials: pastorCreds("pnorte")})
	require.NoError(t, err)

	updated, err := srv.Save(ctx, &usecase.DistrictInput{
		ID:     created.ID,
		Name:   "Distrito Norte Alto",
		ZoneID: "zona-1",
		Credentials: entity.Credentials{
			Username: "pnorte.alto",
			Email:    "alto@iglesia.org",
			Name:     "Pastor Alto",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, created.PastorID, updated.PastorID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	pastor, err := fx.repos.Users.FindByID(ctx, created.PastorID)
	require.NoError(t, err)
	assert.Equal(t, "pnorte.alto", pastor.Username)
	assert.Equal(t, "alto@iglesia.org", pastor.Email)
	assert.Equal(t, "hashed:secreto", pastor.PasswordHash)
	assert.True(t, fx.publisher.has(service.EventUpdated, kindUser))
}

func TestDistrictService_Save_EditChangesPassword(t *testing.T) {
	srv, fx := createTestDistrictService(t)
	ctx := context.Background()

	created, err := srv.Save(ctx, &usecase.DistrictInput{Name: "Distrito Norte", ZoneID: "zona-1", Credentials: pastorCreds("pnorte")})
	require.NoError(t, err)

	creds := pastorCreds("pnorte")
	creds.Password = "nueva"
	_, err = srv.Save(ctx, &usecase.DistrictInput{ID: created.ID, Name: "Distrito Norte", ZoneID: "zona-1", Credentials: creds})
	require.NoError(t, err)

	pastor, err := fx.repos.Users.FindByID(ctx, created.PastorID)
	require.NoError(t, err)
	assert.Equal(t, "hashed:nueva", pastor.PasswordHash)
}

func TestDistrictService_Save_EditAttachesFirstAccount(t *testing.T) {
	srv, fx := createTestDistrictService(t)
	ctx := context.Background()

	updated, err := srv.Save(ctx, &usecase.DistrictInput{ID: "dist-1", Name: "Distrito Centro", ZoneID: "zona-1", Credentials: pastorCreds("pcentro")})
	require.NoError(t, err)
	require.NotEmpty(t, updated.PastorID)

	pastor, err := fx.repos.Users.FindByRelatedEntityAndRole(ctx, "dist-1", entity.RolePastor)
	require.NoError(t, err)
	assert.Equal(t, updated.PastorID, pastor.ID)
}

func TestDistrictService_Save_EditWithoutAccountRejectsPartialCredentials(t *testing.T) {
	srv, fx := createTestDistrictService(t)

	_, err := srv.Save(context.Background(), &usecase.DistrictInput{
		ID: "dist-1", Name: "Distrito Centro", ZoneID: "zona-1",
		Credentials: entity.Credentials{Username: "pcentro", Email: "pcentro@iglesia.org"},
	})

	assert.ErrorIs(t, err, domainerrors.ErrIncompleteCredentials)
	assert.Equal(t, 0, userCount(t, fx.repos))
}

func TestDistrictService_Save_EditUnknownDistrict(t *testing.T) {
	srv, _ := createTestDistrictService(t)

	_, err := srv.Save(context.Background(), &usecase.DistrictInput{ID: "dist-x", Name: "Nuevo", ZoneID: "zona-1"})

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestDistrictService_Save_RejectsConcurrentSubmission(t *testing.T) {
	fx := createServiceFixtures(t)
	fx.seedHierarchy(t)
	srv := NewDistrictService(fx.params()).(*districtService)

	release, err := srv.guard.acquire(createKey(kindDistrict, "zona-1", "Distrito Norte"))
	require.NoError(t, err)

	_, err = srv.Save(context.Background(), &usecase.DistrictInput{Name: "distrito norte", ZoneID: "zona-1"})
	assert.ErrorIs(t, err, domainerrors.ErrSubmissionInFlight)

	release()
	_, err = srv.Save(context.Background(), &usecase.DistrictInput{Name: "distrito norte", ZoneID: "zona-1"})
	assert.NoError(t, err)
}

func TestDistrictService_ListAndForm(t *testing.T) {
	srv, _ := createTestDistrictService(t)
	ctx := context.Background()

	created, err := srv.Save(ctx, &usecase.DistrictInput{Name: "Distrito Norte", ZoneID: "zona-1", Credentials: pastorCreds("pnorte")})
	require.NoError(t, err)

	rows, err := srv.List(ctx, "zona-1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "dist-1", rows[0].ID)
	assert.Equal(t, "Zona 1", rows[0].ZoneName)
	assert.Empty(t, rows[0].Pastor.UserID)
	assert.Equal(t, created.ID, rows[1].ID)
	assert.Equal(t, "pnorte", rows[1].Pastor.Username)

	form, err := srv.Form(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.PastorID, form.Account.UserID)
	assert.Len(t, form.Entity.Goals, len(entity.GoalMetrics))

	_, err = srv.Form(ctx, "dist-x")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	blank := srv.NewForm("zona-1")
	assert.Equal(t, "zona-1", blank.Entity.ZoneID)
	assert.Equal(t, entity.DefaultGoals(), blank.Entity.Goals)
}

func TestDistrictService_Delete(t *testing.T) {
	srv, fx := createTestDistrictService(t)
	ctx := context.Background()

	created, err := srv.Save(ctx, &usecase.DistrictInput{Name: "Distrito Norte", ZoneID: "zona-1", Credentials: pastorCreds("pnorte")})
	require.NoError(t, err)

	require.NoError(t, srv.Delete(ctx, created.ID))

	_, err = fx.repos.Districts.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = fx.repos.Users.FindByID(ctx, created.PastorID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.True(t, fx.publisher.has(service.EventDeleted, kindUser))

	assert.ErrorIs(t, srv.Delete(ctx, created.ID), domainerrors.ErrNotFound)
}

func TestDistrictService_PublishFailureDoesNotFailSave(t *testing.T) {
	fx := createServiceFixtures(t)
	fx.seedHierarchy(t)
	fx.publisher.err = errors.New("broker down")
	srv := NewDistrictService(fx.params())

	_, err := srv.Save(context.Background(), &usecase.DistrictInput{Name: "Distrito Norte", ZoneID: "zona-1"})

	assert.NoError(t, err)
	assert.True(t, fx.publisher.has(service.EventCreated, kindDistrict))
}
