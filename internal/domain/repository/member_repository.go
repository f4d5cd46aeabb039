package repository

import (
	"context"

	"churchadmin/internal/domain/entity"
)

// MemberRepository persists small group members.
type MemberRepository interface {
	List(ctx context.Context) ([]*entity.Member, error)
	ListByGroup(ctx context.Context, gpID string) ([]*entity.Member, error)
	ListByChurch(ctx context.Context, churchID string) ([]*entity.Member, error)
	FindByID(ctx context.Context, id string) (*entity.Member, error)
	Create(ctx context.Context, member *entity.Member) error
	Update(ctx context.Context, member *entity.Member) error
	Delete(ctx context.Context, id string) error
}

// MissionaryPairRepository persists missionary pairs.
type MissionaryPairRepository interface {
	ListByGroup(ctx context.Context, gpID string) ([]*entity.MissionaryPair, error)
	FindByID(ctx context.Context, id string) (*entity.MissionaryPair, error)
	Create(ctx context.Context, pair *entity.MissionaryPair) error
	Update(ctx context.Context, pair *entity.MissionaryPair) error
	Delete(ctx context.Context, id string) error
}

// WeeklyReportRepository persists weekly reports.
type WeeklyReportRepository interface {
	ListByGroup(ctx context.Context, gpID string) ([]*entity.WeeklyReport, error)
	FindByID(ctx context.Context, id string) (*entity.WeeklyReport, error)
	Create(ctx context.Context, report *entity.WeeklyReport) error
	Update(ctx context.Context, report *entity.WeeklyReport) error
	Delete(ctx context.Context, id string) error
}
