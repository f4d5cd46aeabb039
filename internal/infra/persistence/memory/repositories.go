package memory

import (
	"context"
	"maps"
	"slices"
	"strings"

	"churchadmin/internal/domain/entity"
	"churchadmin/internal/domain/repository"

	"github.com/google/uuid"
)

// NewRepositories returns an empty in-memory store for every entity.
func NewRepositories() *repository.Repositories {
	return &repository.Repositories{
		Unions:          NewUnionRepository(),
		Associations:    NewAssociationRepository(),
		Zones:           NewZoneRepository(),
		Districts:       NewDistrictRepository(),
		Churches:        NewChurchRepository(),
		SmallGroups:     NewSmallGroupRepository(),
		Members:         NewMemberRepository(),
		MissionaryPairs: NewMissionaryPairRepository(),
		WeeklyReports:   NewWeeklyReportRepository(),
		Users:           NewUserRepository(),
	}
}

func shallow[T any](v *T) *T {
	c := *v

	return &c
}

func cloneGoals(g entity.Goals) entity.Goals {
	if g == nil {
		return nil
	}

	return maps.Clone(g)
}

// --- unions ---

type unionRepository struct{ t *table[entity.Union] }

// NewUnionRepository returns an empty in-memory union store.
func NewUnionRepository() repository.UnionRepository {
	return &unionRepository{t: newTable(func(u *entity.Union) string { return u.ID }, shallow[entity.Union])}
}

func (r *unionRepository) List(_ context.Context) ([]*entity.Union, error) {
	return r.t.list(nil), nil
}

func (r *unionRepository) FindByID(_ context.Context, id string) (*entity.Union, error) {
	return r.t.find(id)
}

func (r *unionRepository) Create(_ context.Context, union *entity.Union) error {
	return r.t.create(union)
}

func (r *unionRepository) Update(_ context.Context, union *entity.Union) error {
	return r.t.update(union)
}

func (r *unionRepository) Delete(_ context.Context, id string) error {
	return r.t.delete(id)
}

// --- associations ---

type associationRepository struct{ t *table[entity.Association] }

// NewAssociationRepository returns an empty in-memory association store.
func NewAssociationRepository() repository.AssociationRepository {
	return &associationRepository{t: newTable(func(a *entity.Association) string { return a.ID }, shallow[entity.Association])}
}

func (r *associationRepository) List(_ context.Context) ([]*entity.Association, error) {
	return r.t.list(nil), nil
}

func (r *associationRepository) ListByUnion(_ context.Context, unionID string) ([]*entity.Association, error) {
	return r.t.list(func(a *entity.Association) bool { return a.UnionID == unionID }), nil
}

func (r *associationRepository) FindByID(_ context.Context, id string) (*entity.Association, error) {
	return r.t.find(id)
}

func (r *associationRepository) Create(_ context.Context, association *entity.Association) error {
	return r.t.create(association)
}

func (r *associationRepository) Update(_ context.Context, association *entity.Association) error {
	return r.t.update(association)
}

func (r *associationRepository) Delete(_ context.Context, id string) error {
	return r.t.delete(id)
}

// --- zones ---

type zoneRepository struct{ t *table[entity.Zone] }

// NewZoneRepository returns an empty in-memory zone store.
func NewZoneRepository() repository.ZoneRepository {
	return &zoneRepository{t: newTable(func(z *entity.Zone) string { return z.ID }, shallow[entity.Zone])}
}

func (r *zoneRepository) List(_ context.Context) ([]*entity.Zone, error) {
	return r.t.list(nil), nil
}

func (r *zoneRepository) ListByAssociation(_ context.Context, associationID string) ([]*entity.Zone, error) {
	return r.t.list(func(z *entity.Zone) bool { return z.AssociationID == associationID }), nil
}

func (r *zoneRepository) FindByID(_ context.Context, id string) (*entity.Zone, error) {
	return r.t.find(id)
}

func (r *zoneRepository) Create(_ context.Context, zone *entity.Zone) error {
	return r.t.create(zone)
}

func (r *zoneRepository) Update(_ context.Context, zone *entity.Zone) error {
	return r.t.update(zone)
}

func (r *zoneRepository) Delete(_ context.Context, id string) error {
	return r.t.delete(id)
}

// --- districts ---

type districtRepository struct{ t *table[entity.District] }

// NewDistrictRepository returns an empty in-memory district store.
func NewDistrictRepository() repository.DistrictRepository {
	return &districtRepository{t: newTable(
		func(d *entity.District) string { return d.ID },
		func(d *entity.District) *entity.District {
			c := *d
			c.Goals = cloneGoals(d.Goals)

			return &c
		},
	)}
}

func (r *districtRepository) List(_ context.Context) ([]*entity.District, error) {
	return r.t.list(nil), nil
}

func (r *districtRepository) ListByZone(_ context.Context, zoneID string) ([]*entity.District, error) {
	return r.t.list(func(d *entity.District) bool { return d.ZoneID == zoneID }), nil
}

func (r *districtRepository) FindByID(_ context.Context, id string) (*entity.District, error) {
	return r.t.find(id)
}

func (r *districtRepository) Create(_ context.Context, district *entity.District) error {
	return r.t.create(district)
}

func (r *districtRepository) Update(_ context.Context, district *entity.District) error {
	return r.t.update(district)
}

func (r *districtRepository) Delete(_ context.Context, id string) error {
	return r.t.delete(id)
}

// --- churches ---

type churchRepository struct{ t *table[entity.Church] }

// NewChurchRepository returns an empty in-memory church store.
func NewChurchRepository() repository.ChurchRepository {
	return &churchRepository{t: newTable(func(c *entity.Church) string { return c.ID }, shallow[entity.Church])}
}

func (r *churchRepository) List(_ context.Context) ([]*entity.Church, error) {
	return r.t.list(nil), nil
}

func (r *churchRepository) ListByDistrict(_ context.Context, districtID string) ([]*entity.Church, error) {
	return r.t.list(func(c *entity.Church) bool { return c.DistrictID == districtID }), nil
}

func (r *churchRepository) FindByID(_ context.Context, id string) (*entity.Church, error) {
	return r.t.find(id)
}

func (r *churchRepository) Create(_ context.Context, church *entity.Church) error {
	return r.t.create(church)
}

func (r *churchRepository) Update(_ context.Context, church *entity.Church) error {
	return r.t.update(church)
}

func (r *churchRepository) Delete(_ context.Context, id string) error {
	return r.t.delete(id)
}

// --- small groups ---

type smallGroupRepository struct{ t *table[entity.SmallGroup] }

// NewSmallGroupRepository returns an empty in-memory small group store.
func NewSmallGroupRepository() repository.SmallGroupRepository {
	return &smallGroupRepository{t: newTable(
		func(g *entity.SmallGroup) string { return g.ID },
		func(g *entity.SmallGroup) *entity.SmallGroup {
			c := *g
			c.Goals = cloneGoals(g.Goals)

			return &c
		},
	)}
}

func (r *smallGroupRepository) List(_ context.Context) ([]*entity.SmallGroup, error) {
	return r.t.list(nil), nil
}

func (r *smallGroupRepository) ListByChurch(_ context.Context, churchID string) ([]*entity.SmallGroup, error) {
	return r.t.list(func(g *entity.SmallGroup) bool { return g.ChurchID == churchID }), nil
}

func (r *smallGroupRepository) FindByID(_ context.Context, id string) (*entity.SmallGroup, error) {
	return r.t.find(id)
}

func (r *smallGroupRepository) Create(_ context.Context, group *entity.SmallGroup) error {
	return r.t.create(group)
}

func (r *smallGroupRepository) Update(_ context.Context, group *entity.SmallGroup) error {
	return r.t.update(group)
}

func (r *smallGroupRepository) Delete(_ context.Context, id string) error {
	return r.t.delete(id)
}

// --- members ---

type memberRepository struct{ t *table[entity.Member] }

// NewMemberRepository returns an empty in-memory member store.
func NewMemberRepository() repository.MemberRepository {
	return &memberRepository{t: newTable(func(m *entity.Member) string { return m.ID }, shallow[entity.Member])}
}

func (r *memberRepository) List(_ context.Context) ([]*entity.Member, error) {
	return r.t.list(nil), nil
}

func (r *memberRepository) ListByGroup(_ context.Context, gpID string) ([]*entity.Member, error) {
	return r.t.list(func(m *entity.Member) bool { return m.GPID == gpID }), nil
}

func (r *memberRepository) ListByChurch(_ context.Context, churchID string) ([]*entity.Member, error) {
	return r.t.list(func(m *entity.Member) bool { return m.ChurchID == churchID }), nil
}

func (r *memberRepository) FindByID(_ context.Context, id string) (*entity.Member, error) {
	return r.t.find(id)
}

func (r *memberRepository) Create(_ context.Context, member *entity.Member) error {
	return r.t.create(member)
}

func (r *memberRepository) Update(_ context.Context, member *entity.Member) error {
	return r.t.update(member)
}

func (r *memberRepository) Delete(_ context.Context, id string) error {
	return r.t.delete(id)
}

// --- missionary pairs ---

type missionaryPairRepository struct{ t *table[entity.MissionaryPair] }

// NewMissionaryPairRepository returns an empty in-memory missionary pair store.
func NewMissionaryPairRepository() repository.MissionaryPairRepository {
	return &missionaryPairRepository{t: newTable(func(p *entity.MissionaryPair) string { return p.ID }, shallow[entity.MissionaryPair])}
}

func (r *missionaryPairRepository) ListByGroup(_ context.Context, gpID string) ([]*entity.MissionaryPair, error) {
	return r.t.list(func(p *entity.MissionaryPair) bool { return p.GPID == gpID }), nil
}

func (r *missionaryPairRepository) FindByID(_ context.Context, id string) (*entity.MissionaryPair, error) {
	return r.t.find(id)
}

func (r *missionaryPairRepository) Create(_ context.Context, pair *entity.MissionaryPair) error {
	return r.t.create(pair)
}

func (r *missionaryPairRepository) Update(_ context.Context, pair *entity.MissionaryPair) error {
	return r.t.update(pair)
}

func (r *missionaryPairRepository) Delete(_ context.Context, id string) error {
	return r.t.delete(id)
}

// --- weekly reports ---

type weeklyReportRepository struct{ t *table[entity.WeeklyReport] }

// NewWeeklyReportRepository returns an empty in-memory weekly report store.
func NewWeeklyReportRepository() repository.WeeklyReportRepository {
	return &weeklyReportRepository{t: newTable(
		func(w *entity.WeeklyReport) string { return w.ID },
		func(w *entity.WeeklyReport) *entity.WeeklyReport {
			c := *w
			c.Attendance = slices.Clone(w.Attendance)
			c.MissionaryPairsStats = slices.Clone(w.MissionaryPairsStats)

			return &c
		},
	)}
}

func (r *weeklyReportRepository) ListByGroup(_ context.Context, gpID string) ([]*entity.WeeklyReport, error) {
	return r.t.list(func(w *entity.WeeklyReport) bool { return w.GPID == gpID }), nil
}

func (r *weeklyReportRepository) FindByID(_ context.Context, id string) (*entity.WeeklyReport, error) {
	return r.t.find(id)
}

func (r *weeklyReportRepository) Create(_ context.Context, report *entity.WeeklyReport) error {
	return r.t.create(report)
}

func (r *weeklyReportRepository) Update(_ context.Context, report *entity.WeeklyReport) error {
	return r.t.update(report)
}

func (r *weeklyReportRepository) Delete(_ context.Context, id string) error {
	return r.t.delete(id)
}

// --- users ---

type userRepository struct{ t *table[entity.User] }

// NewUserRepository returns an empty in-memory user store. Usernames are
// unique regardless of case.
func NewUserRepository() repository.UserRepository {
	return &userRepository{t: newTable(func(u *entity.User) string { return u.ID }, shallow[entity.User])}
}

func sameUsername(existing, candidate *entity.User) bool {
	return strings.EqualFold(existing.Username, candidate.Username)
}

func (r *userRepository) List(_ context.Context) ([]*entity.User, error) {
	return r.t.list(nil), nil
}

func (r *userRepository) FindByID(_ context.Context, id string) (*entity.User, error) {
	return r.t.find(id)
}

func (r *userRepository) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	return r.t.first(func(u *entity.User) bool { return strings.EqualFold(u.Username, username) })
}

func (r *userRepository) FindByRelatedEntityAndRole(_ context.Context, relatedEntityID string, role entity.Role) (*entity.User, error) {
	return r.t.first(func(u *entity.User) bool { return u.RelatedEntityID == relatedEntityID && u.Role == role })
}

// Create assigns a fresh ID; any ID set by the caller is replaced.
func (r *userRepository) Create(_ context.Context, user *entity.User) error {
	candidate := *user
	candidate.ID = uuid.NewString()
	if err := r.t.createUnique(&candidate, sameUsername); err != nil {
		return err
	}
	user.ID = candidate.ID

	return nil
}

func (r *userRepository) Update(_ context.Context, user *entity.User) error {
	return r.t.updateUnique(user, sameUsername)
}

func (r *userRepository) Delete(_ context.Context, id string) error {
	return r.t.delete(id)
}
