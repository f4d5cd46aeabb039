// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"churchadmin/internal/domain/entity"
	"churchadmin/internal/domain/repository"
	"churchadmin/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// NewRepositories builds every repository over one connection pool.
func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		Unions:          NewUnionRepository(db),
		Associations:    NewAssociationRepository(db),
		Zones:           NewZoneRepository(db),
		Districts:       NewDistrictRepository(db),
		Churches:        NewChurchRepository(db),
		SmallGroups:     NewSmallGroupRepository(db),
		Members:         NewMemberRepository(db),
		MissionaryPairs: NewMissionaryPairRepository(db),
		WeeklyReports:   NewWeeklyReportRepository(db),
		Users:           NewUserRepository(db),
	}
}

// --- unions ---

type unionRepository struct {
	crud[model.UnionModel, entity.Union]
}

// NewUnionRepository is the constructor for unionRepository.
func NewUnionRepository(db *gorm.DB) repository.UnionRepository {
	return &unionRepository{crud[model.UnionModel, entity.Union]{
		db: db, kind: "union",
		idOf:    func(u *entity.Union) string { return u.ID },
		toModel: fromUnionDomain, toEntity: toUnionDomain,
	}}
}

func (repo *unionRepository) List(ctx context.Context) ([]*entity.Union, error) {
	return repo.list(ctx, "")
}

func (repo *unionRepository) FindByID(ctx context.Context, id string) (*entity.Union, error) {
	return repo.find(ctx, id)
}

func (repo *unionRepository) Create(ctx context.Context, union *entity.Union) error {
	_, err := repo.create(ctx, union)

	return err
}

func (repo *unionRepository) Update(ctx context.Context, union *entity.Union) error {
	return repo.update(ctx, union)
}

func (repo *unionRepository) Delete(ctx context.Context, id string) error {
	return repo.delete(ctx, id)
}

// --- associations ---

type associationRepository struct {
	crud[model.AssociationModel, entity.Association]
}

// NewAssociationRepository is the constructor for associationRepository.
func NewAssociationRepository(db *gorm.DB) repository.AssociationRepository {
	return &associationRepository{crud[model.AssociationModel, entity.Association]{
		db: db, kind: "association",
		idOf:    func(a *entity.Association) string { return a.ID },
		toModel: fromAssociationDomain, toEntity: toAssociationDomain,
	}}
}

func (repo *associationRepository) List(ctx context.Context) ([]*entity.Association, error) {
	return repo.list(ctx, "")
}

func (repo *associationRepository) ListByUnion(ctx context.Context, unionID string) ([]*entity.Association, error) {
	return repo.list(ctx, "union_id = ?", unionID)
}

func (repo *associationRepository) FindByID(ctx context.Context, id string) (*entity.Association, error) {
	return repo.find(ctx, id)
}

func (repo *associationRepository) Create(ctx context.Context, association *entity.Association) error {
	_, err := repo.create(ctx, association)

	return err
}

func (repo *associationRepository) Update(ctx context.Context, association *entity.Association) error {
	return repo.update(ctx, association)
}

func (repo *associationRepository) Delete(ctx context.Context, id string) error {
	return repo.delete(ctx, id)
}

// --- zones ---

type zoneRepository struct {
	crud[model.ZoneModel, entity.Zone]
}

// NewZoneRepository is the constructor for zoneRepository.
func NewZoneRepository(db *gorm.DB) repository.ZoneRepository {
	return &zoneRepository{crud[model.ZoneModel, entity.Zone]{
		db: db, kind: "zone",
		idOf:    func(z *entity.Zone) string { return z.ID },
		toModel: fromZoneDomain, toEntity: toZoneDomain,
	}}
}

func (repo *zoneRepository) List(ctx context.Context) ([]*entity.Zone, error) {
	return repo.list(ctx, "")
}

func (repo *zoneRepository) ListByAssociation(ctx context.Context, associationID string) ([]*entity.Zone, error) {
	return repo.list(ctx, "association_id = ?", associationID)
}

func (repo *zoneRepository) FindByID(ctx context.Context, id string) (*entity.Zone, error) {
	return repo.find(ctx, id)
}

func (repo *zoneRepository) Create(ctx context.Context, zone *entity.Zone) error {
	_, err := repo.create(ctx, zone)

	return err
}

func (repo *zoneRepository) Update(ctx context.Context, zone *entity.Zone) error {
	return repo.update(ctx, zone)
}

func (repo *zoneRepository) Delete(ctx context.Context, id string) error {
	return repo.delete(ctx, id)
}

// --- districts ---

type districtRepository struct {
	crud[model.DistrictModel, entity.District]
}

// NewDistrictRepository is the constructor for districtRepository.
func NewDistrictRepository(db *gorm.DB) repository.DistrictRepository {
	return &districtRepository{crud[model.DistrictModel, entity.District]{
		db: db, kind: "district",
		idOf:    func(d *entity.District) string { return d.ID },
		toModel: fromDistrictDomain, toEntity: toDistrictDomain,
	}}
}

func (repo *districtRepository) List(ctx context.Context) ([]*entity.District, error) {
	return repo.list(ctx, "")
}

func (repo *districtRepository) ListByZone(ctx context.Context, zoneID string) ([]*entity.District, error) {
	return repo.list(ctx, "zone_id = ?", zoneID)
}

func (repo *districtRepository) FindByID(ctx context.Context, id string) (*entity.District, error) {
	return repo.find(ctx, id)
}

func (repo *districtRepository) Create(ctx context.Context, district *entity.District) error {
	_, err := repo.create(ctx, district)

	return err
}

func (repo *districtRepository) Update(ctx context.Context, district *entity.District) error {
	return repo.update(ctx, district)
}

func (repo *districtRepository) Delete(ctx context.Context, id string) error {
	return repo.delete(ctx, id)
}

// --- churches ---

type churchRepository struct {
	crud[model.ChurchModel, entity.Church]
}

// NewChurchRepository is the constructor for churchRepository.
func NewChurchRepository(db *gorm.DB) repository.ChurchRepository {
	return &churchRepository{crud[model.ChurchModel, entity.Church]{
		db: db, kind: "church",
		idOf:    func(c *entity.Church) string { return c.ID },
		toModel: fromChurchDomain, toEntity: toChurchDomain,
	}}
}

func (repo *churchRepository) List(ctx context.Context) ([]*entity.Church, error) {
	return repo.list(ctx, "")
}

func (repo *churchRepository) ListByDistrict(ctx context.Context, districtID string) ([]*entity.Church, error) {
	return repo.list(ctx, "district_id = ?", districtID)
}

func (repo *churchRepository) FindByID(ctx context.Context, id string) (*entity.Church, error) {
	return repo.find(ctx, id)
}

func (repo *churchRepository) Create(ctx context.Context, church *entity.Church) error {
	_, err := repo.create(ctx, church)

	return err
}

func (repo *churchRepository) Update(ctx context.Context, church *entity.Church) error {
	return repo.update(ctx, church)
}

func (repo *churchRepository) Delete(ctx context.Context, id string) error {
	return repo.delete(ctx, id)
}

// --- small groups ---

type smallGroupRepository struct {
	crud[model.SmallGroupModel, entity.SmallGroup]
}

// NewSmallGroupRepository is the constructor for smallGroupRepository.
func NewSmallGroupRepository(db *gorm.DB) repository.SmallGroupRepository {
	return &smallGroupRepository{crud[model.SmallGroupModel, entity.SmallGroup]{
		db: db, kind: "small group",
		idOf:    func(g *entity.SmallGroup) string { return g.ID },
		toModel: fromSmallGroupDomain, toEntity: toSmallGroupDomain,
	}}
}

func (repo *smallGroupRepository) List(ctx context.Context) ([]*entity.SmallGroup, error) {
	return repo.list(ctx, "")
}

func (repo *smallGroupRepository) ListByChurch(ctx context.Context, churchID string) ([]*entity.SmallGroup, error) {
	return repo.list(ctx, "church_id = ?", churchID)
}

func (repo *smallGroupRepository) FindByID(ctx context.Context, id string) (*entity.SmallGroup, error) {
	return repo.find(ctx, id)
}

func (repo *smallGroupRepository) Create(ctx context.Context, group *entity.SmallGroup) error {
	_, err := repo.create(ctx, group)

	return err
}

func (repo *smallGroupRepository) Update(ctx context.Context, group *entity.SmallGroup) error {
	return repo.update(ctx, group)
}

func (repo *smallGroupRepository) Delete(ctx context.Context, id string) error {
	return repo.delete(ctx, id)
}

// --- members ---

type memberRepository struct {
	crud[model.MemberModel, entity.Member]
}

// NewMemberRepository is the constructor for memberRepository.
func NewMemberRepository(db *gorm.DB) repository.MemberRepository {
	return &memberRepository{crud[model.MemberModel, entity.Member]{
		db: db, kind: "member",
		idOf:    func(m *entity.Member) string { return m.ID },
		toModel: fromMemberDomain, toEntity: toMemberDomain,
	}}
}

func (repo *memberRepository) List(ctx context.Context) ([]*entity.Member, error) {
	return repo.list(ctx, "")
}

func (repo *memberRepository) ListByGroup(ctx context.Context, gpID string) ([]*entity.Member, error) {
	return repo.list(ctx, "gp_id = ?", gpID)
}

func (repo *memberRepository) ListByChurch(ctx context.Context, churchID string) ([]*entity.Member, error) {
	return repo.list(ctx, "church_id = ?", churchID)
}

func (repo *memberRepository) FindByID(ctx context.Context, id string) (*entity.Member, error) {
	return repo.find(ctx, id)
}

func (repo *memberRepository) Create(ctx context.Context, member *entity.Member) error {
	_, err := repo.create(ctx, member)

	return err
}

func (repo *memberRepository) Update(ctx context.Context, member *entity.Member) error {
	return repo.update(ctx, member)
}

func (repo *memberRepository) Delete(ctx context.Context, id string) error {
	return repo.delete(ctx, id)
}

// --- missionary pairs ---

type missionaryPairRepository struct {
	crud[model.MissionaryPairModel, entity.MissionaryPair]
}

// NewMissionaryPairRepository is the constructor for missionaryPairRepository.
func NewMissionaryPairRepository(db *gorm.DB) repository.MissionaryPairRepository {
	return &missionaryPairRepository{crud[model.MissionaryPairModel, entity.MissionaryPair]{
		db: db, kind: "missionary pair",
		idOf:    func(p *entity.MissionaryPair) string { return p.ID },
		toModel: fromMissionaryPairDomain, toEntity: toMissionaryPairDomain,
	}}
}

func (repo *missionaryPairRepository) ListByGroup(ctx context.Context, gpID string) ([]*entity.MissionaryPair, error) {
	return repo.list(ctx, "gp_id = ?", gpID)
}

func (repo *missionaryPairRepository) FindByID(ctx context.Context, id string) (*entity.MissionaryPair, error) {
	return repo.find(ctx, id)
}

func (repo *missionaryPairRepository) Create(ctx context.Context, pair *entity.MissionaryPair) error {
	_, err := repo.create(ctx, pair)

	return err
}

func (repo *missionaryPairRepository) Update(ctx context.Context, pair *entity.MissionaryPair) error {
	return repo.update(ctx, pair)
}

func (repo *missionaryPairRepository) Delete(ctx context.Context, id string) error {
	return repo.delete(ctx, id)
}

// --- weekly reports ---

type weeklyReportRepository struct {
	crud[model.WeeklyReportModel, entity.WeeklyReport]
}

// NewWeeklyReportRepository is the constructor for weeklyReportRepository.
func NewWeeklyReportRepository(db *gorm.DB) repository.WeeklyReportRepository {
	return &weeklyReportRepository{crud[model.WeeklyReportModel, entity.WeeklyReport]{
		db: db, kind: "weekly report",
		idOf:    func(r *entity.WeeklyReport) string { return r.ID },
		toModel: fromWeeklyReportDomain, toEntity: toWeeklyReportDomain,
	}}
}

func (repo *weeklyReportRepository) ListByGroup(ctx context.Context, gpID string) ([]*entity.WeeklyReport, error) {
	return repo.list(ctx, "gp_id = ?", gpID)
}

func (repo *weeklyReportRepository) FindByID(ctx context.Context, id string) (*entity.WeeklyReport, error) {
	return repo.find(ctx, id)
}

func (repo *weeklyReportRepository) Create(ctx context.Context, report *entity.WeeklyReport) error {
	_, err := repo.create(ctx, report)

	return err
}

func (repo *weeklyReportRepository) Update(ctx context.Context, report *entity.WeeklyReport) error {
	return repo.update(ctx, report)
}

func (repo *weeklyReportRepository) Delete(ctx context.Context, id string) error {
	return repo.delete(ctx, id)
}
