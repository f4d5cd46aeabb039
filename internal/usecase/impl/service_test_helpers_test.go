package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"churchadmin/internal/domain/entity"
	"churchadmin/internal/domain/repository"
	"churchadmin/internal/domain/service"
	"churchadmin/internal/infra/persistence/memory"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeHasher prefixes the password so tests can assert which password a hash came from.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", errors.New("empty password")
	}

	return "hashed:" + password, nil
}

func (fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

// recordingPublisher keeps every published event.
type recordingPublisher struct {
	mu     sync.Mutex
	events []service.DomainEvent
	err    error
}

func (p *recordingPublisher) PublishDomainEvent(_ context.Context, event *service.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, *event)

	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

// has reports whether an event of eventType was published for kind.
func (p *recordingPublisher) has(eventType, kind string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, e := range p.events {
		if e.Type == eventType && e.EntityType == kind {
			return true
		}
	}

	return false
}

type mockAuthProvider struct{ mock.Mock }

func (m *mockAuthProvider) CreateAuthUser(ctx context.Context, email, password string, metadata service.AuthAccountMetadata) error {
	return m.Called(ctx, email, password, metadata).Error(0)
}

type mockPersonnelSource struct{ mock.Mock }

func (m *mockPersonnelSource) Name() string { return "mock" }

func (m *mockPersonnelSource) ListPersonnel(ctx context.Context, churchID string) ([]entity.Personnel, error) {
	args := m.Called(ctx, churchID)
	if v := args.Get(0); v != nil {
		return v.([]entity.Personnel), args.Error(1)
	}

	return nil, args.Error(1)
}

type mockQRCodeService struct{ mock.Mock }

func (m *mockQRCodeService) GenerateCredentialQR(username string) ([]byte, error) {
	args := m.Called(username)
	if v := args.Get(0); v != nil {
		return v.([]byte), args.Error(1)
	}

	return nil, args.Error(1)
}

// failingUsers fails Create, Update or Delete on demand and delegates everything else.
type failingUsers struct {
	repository.UserRepository
	createErr error
	updateErr error
	deleteErr error
}

func (r *failingUsers) Update(ctx context.Context, user *entity.User) error {
	if r.updateErr != nil {
		return r.updateErr
	}

	return r.UserRepository.Update(ctx, user)
}

func (r *failingUsers) Create(ctx context.Context, user *entity.User) error {
	if r.createErr != nil {
		return r.createErr
	}

	return r.UserRepository.Create(ctx, user)
}

func (r *failingUsers) Delete(ctx context.Context, id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}

	return r.UserRepository.Delete(ctx, id)
}

// failingDistricts fails Update once a pastor is being linked.
type failingDistricts struct {
	repository.DistrictRepository
	updateErr error
}

func (r *failingDistricts) Update(ctx context.Context, district *entity.District) error {
	if r.updateErr != nil {
		return r.updateErr
	}

	return r.DistrictRepository.Update(ctx, district)
}

// serviceFixtures holds the shared dependencies of use case tests.
type serviceFixtures struct {
	repos     *repository.Repositories
	auth      *mockAuthProvider
	publisher *recordingPublisher
	personnel *mockPersonnelSource
	qrcode    *mockQRCodeService
}

func createServiceFixtures(t *testing.T) serviceFixtures {
	t.Helper()

	auth := &mockAuthProvider{}
	auth.On("CreateAuthUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	return serviceFixtures{
		repos:     memory.NewRepositories(),
		auth:      auth,
		publisher: &recordingPublisher{},
		personnel: &mockPersonnelSource{},
		qrcode:    &mockQRCodeService{},
	}
}

func (f serviceFixtures) params() ServiceParams {
	return ServiceParams{
		Repos:        f.repos,
		Hasher:       fakeHasher{},
		AuthProvider: f.auth,
		Publisher:    f.publisher,
		Personnel:    f.personnel,
		QRCode:       f.qrcode,
		Logger:       newDiscardLogger(),
	}
}

// seedHierarchy stores one union, association, zone, district and church and
// returns their ids in that order.
func (f serviceFixtures) seedHierarchy(t *testing.T) (unionID, associationID, zoneID, districtID, churchID string) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, f.repos.Unions.Create(ctx, &entity.Union{ID: "union-1", Name: "Unión Norte"}))
	require.NoError(t, f.repos.Associations.Create(ctx, &entity.Association{ID: "asoc-1", Name: "Asociación Central", UnionID: "union-1"}))
	require.NoError(t, f.repos.Zones.Create(ctx, &entity.Zone{ID: "zona-1", Name: "Zona 1", AssociationID: "asoc-1"}))
	require.NoError(t, f.repos.Districts.Create(ctx, &entity.District{ID: "dist-1", Name: "Distrito Centro", ZoneID: "zona-1", Goals: entity.DefaultGoals()}))
	require.NoError(t, f.repos.Churches.Create(ctx, &entity.Church{ID: "igl-1", Name: "Iglesia Central", DistrictID: "dist-1"}))

	return "union-1", "asoc-1", "zona-1", "dist-1", "igl-1"
}

func userCount(t *testing.T, repos *repository.Repositories) int {
	t.Helper()
	users, err := repos.Users.List(context.Background())
	require.NoError(t, err)

	return len(users)
}

func pastorCreds(username string) entity.Credentials {
	return entity.Credentials{
		Username: username,
		Password: "secreto",
		Email:    strings.ToLower(username) + "@iglesia.org",
		Name:     "Pastor " + username,
	}
}
