package usecase

import (
	"context"

	"churchadmin/internal/domain/entity"
)

// MemberInput defines the editable fields of a member.
type MemberInput struct {
	ID         string            `json:"id"`
	FirstName  string            `json:"firstName" validate:"required"`
	LastName   string            `json:"lastName" validate:"required"`
	Cedula     string            `json:"cedula"`
	Phone      string            `json:"phone"`
	Email      string            `json:"email" validate:"omitempty,email"`
	GPID       string            `json:"gpId" validate:"required"`
	Role       entity.MemberRole `json:"role"`
	IsBaptized bool              `json:"isBaptized"`
	Gender     string            `json:"gender"`
	Address    string            `json:"address"`
	BirthDate  string            `json:"birthDate"`
}

// MissionaryPairInput defines the editable fields of a missionary pair.
type MissionaryPairInput struct {
	ID        string `json:"id"`
	Member1ID string `json:"member1Id" validate:"required"`
	Member2ID string `json:"member2Id" validate:"required,nefield=Member1ID"`
	GPID      string `json:"gpId" validate:"required"`
}

// WeeklyReportInput defines the editable fields of a weekly report. Summary
// totals other than baptisms are recomputed and any submitted value is ignored.
type WeeklyReportInput struct {
	ID                   string                   `json:"id"`
	GPID                 string                   `json:"gpId" validate:"required"`
	Date                 string                   `json:"date" validate:"required,datetime=2006-01-02"`
	Attendance           []entity.AttendanceEntry `json:"attendance" validate:"dive"`
	MissionaryPairsStats []entity.PairStats       `json:"missionaryPairsStats"`
	Baptisms             entity.FlexibleInt       `json:"baptisms"`
}

// AttendanceInput edits one attendance row of a report.
type AttendanceInput struct {
	Present      bool               `json:"present"`
	Participated bool               `json:"participated"`
	StudiesGiven entity.FlexibleInt `json:"studiesGiven"`
	Guests       entity.FlexibleInt `json:"guests"`
}

// MissionaryPairRow is one line of the missionary pair list.
type MissionaryPairRow struct {
	*entity.MissionaryPair
	Member1Name string `json:"member1Name"`
	Member2Name string `json:"member2Name"`
}

// MemberUsecase manages small group members.
type MemberUsecase interface {
	List(ctx context.Context, gpID string) ([]*entity.Member, error)
	Get(ctx context.Context, id string) (*entity.Member, error)
	Save(ctx context.Context, input *MemberInput) (*entity.Member, error)
	Delete(ctx context.Context, id string) error
}

// MissionaryPairUsecase manages missionary pairs.
type MissionaryPairUsecase interface {
	List(ctx context.Context, gpID string) ([]*MissionaryPairRow, error)
	Save(ctx context.Context, input *MissionaryPairInput) (*entity.MissionaryPair, error)
	Delete(ctx context.Context, id string) error
}

// WeeklyReportUsecase manages weekly meeting reports.
type WeeklyReportUsecase interface {
	List(ctx context.Context, gpID string) ([]*entity.WeeklyReport, error)
	Get(ctx context.Context, id string) (*entity.WeeklyReport, error)
	// Draft returns an unsaved report with one attendance row per member and
	// one stats row per missionary pair of the group.
	Draft(ctx context.Context, gpID, date string) (*entity.WeeklyReport, error)
	Save(ctx context.Context, input *WeeklyReportInput) (*entity.WeeklyReport, error)
	// UpdateAttendance replaces one member's row and recomputes the summary.
	UpdateAttendance(ctx context.Context, reportID, memberID string, input *AttendanceInput) (*entity.WeeklyReport, error)
	Delete(ctx context.Context, id string) error
}
