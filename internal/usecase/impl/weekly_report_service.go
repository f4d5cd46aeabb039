package impl

import (
	"context"
	"log/slog"

	"churchadmin/internal/domain/entity"
	domainerrors "churchadmin/internal/domain/errors"
	"churchadmin/internal/domain/service"
	"churchadmin/internal/errors"
	"churchadmin/internal/usecase"
)

type weeklyReportService struct {
	base
}

// NewWeeklyReportService is the constructor for weeklyReportService.
func NewWeeklyReportService(params ServiceParams) usecase.WeeklyReportUsecase {
	return &weeklyReportService{base: newBase(params)}
}

// List returns the reports of a group.
func (srv *weeklyReportService) List(ctx context.Context, gpID string) ([]*entity.WeeklyReport, error) {
	reports, err := srv.repos.WeeklyReports.ListByGroup(ctx, gpID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list weekly reports")
	}

	return reports, nil
}

// Get returns one report.
func (srv *weeklyReportService) Get(ctx context.Context, id string) (*entity.WeeklyReport, error) {
	report, err := srv.repos.WeeklyReports.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, kindWeeklyReport, id)
	}

	return report, nil
}

// Draft builds an unsaved report for the group's current members and pairs.
func (srv *weeklyReportService) Draft(ctx context.Context, gpID, date string) (*entity.WeeklyReport, error) {
	var (
		members []*entity.Member
		pairs   []*entity.MissionaryPair
	)
	err := loadAll(ctx,
		func(ctx context.Context) error {
			return requireParent(ctx, srv.repos.SmallGroups.FindByID, kindSmallGroup, gpID)
		},
		func(ctx context.Context) error {
			var err error
			members, err = srv.repos.Members.ListByGroup(ctx, gpID)

			return errors.Wrap(err, "failed to list members")
		},
		func(ctx context.Context) error {
			var err error
			pairs, err = srv.repos.MissionaryPairs.ListByGroup(ctx, gpID)

			return errors.Wrap(err, "failed to list missionary pairs")
		},
	)
	if err != nil {
		return nil, err
	}

	report := &entity.WeeklyReport{
		GPID:                 gpID,
		Date:                 date,
		Attendance:           make([]entity.AttendanceEntry, len(members)),
		MissionaryPairsStats: make([]entity.PairStats, len(pairs)),
	}
	for i, m := range members {
		report.Attendance[i] = entity.AttendanceEntry{MemberID: m.ID}
	}
	for i, p := range pairs {
		report.MissionaryPairsStats[i] = entity.PairStats{PairID: p.ID}
	}
	report.Recompute()

	return report, nil
}

// Save creates or replaces a report. The summary is recomputed from the
// attendance rows; baptisms is kept as entered.
func (srv *weeklyReportService) Save(ctx context.Context, input *usecase.WeeklyReportInput) (*entity.WeeklyReport, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var saved *entity.WeeklyReport
	err := srv.settle(submissionKey(kindWeeklyReport, input.ID, input.GPID, input.Date), func() error {
		if err := requireParent(ctx, srv.repos.SmallGroups.FindByID, kindSmallGroup, input.GPID); err != nil {
			return err
		}

		now := srv.now()
		report := &entity.WeeklyReport{
			ID:                   input.ID,
			GPID:                 input.GPID,
			Date:                 input.Date,
			Attendance:           dedupeAttendance(input.Attendance),
			MissionaryPairsStats: input.MissionaryPairsStats,
			Summary:              entity.ReportSummary{Baptisms: int(input.Baptisms)},
			UpdatedAt:            now,
		}
		report.Recompute()

		if input.ID == "" {
			report.ID = entity.NewID(entity.PrefixWeeklyReport)
			report.CreatedAt = now
			if err := srv.repos.WeeklyReports.Create(ctx, report); err != nil {
				return errors.Wrap(err, "failed to create weekly report")
			}
			srv.publish(ctx, service.EventCreated, kindWeeklyReport, report.ID)
		} else {
			current, err := srv.repos.WeeklyReports.FindByID(ctx, input.ID)
			if err != nil {
				return notFound(err, kindWeeklyReport, input.ID)
			}
			report.CreatedAt = current.CreatedAt
			if err := srv.repos.WeeklyReports.Update(ctx, report); err != nil {
				return errors.Wrap(err, "failed to update weekly report")
			}
			srv.publish(ctx, service.EventUpdated, kindWeeklyReport, report.ID)
		}
		saved = report

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Weekly report saved",
		slog.String("id", saved.ID),
		slog.Int("totalAttendance", saved.Summary.TotalAttendance))

	return saved, nil
}

// UpdateAttendance replaces one member's row, appending it when the member
// joined after the report was drafted.
func (srv *weeklyReportService) UpdateAttendance(ctx context.Context, reportID, memberID string, input *usecase.AttendanceInput) (*entity.WeeklyReport, error) {
	if memberID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("memberId (required)")
	}

	var saved *entity.WeeklyReport
	err := srv.settle(updateKey(kindWeeklyReport, reportID), func() error {
		report, err := srv.repos.WeeklyReports.FindByID(ctx, reportID)
		if err != nil {
			return notFound(err, kindWeeklyReport, reportID)
		}

		row := entity.AttendanceEntry{
			MemberID:     memberID,
			Present:      input.Present,
			Participated: input.Participated,
			StudiesGiven: input.StudiesGiven.NonNegative(),
			Guests:       input.Guests.NonNegative(),
		}

		replaced := false
		for i := range report.Attendance {
			if report.Attendance[i].MemberID == memberID {
				report.Attendance[i] = row
				replaced = true

				break
			}
		}
		if !replaced {
			report.Attendance = append(report.Attendance, row)
		}

		report.Recompute()
		report.UpdatedAt = srv.now()
		if err := srv.repos.WeeklyReports.Update(ctx, report); err != nil {
			return errors.Wrap(err, "failed to update weekly report")
		}
		srv.publish(ctx, service.EventUpdated, kindWeeklyReport, report.ID)
		saved = report

		return nil
	})
	if err != nil {
		return nil, err
	}

	return saved, nil
}

// Delete removes a report.
func (srv *weeklyReportService) Delete(ctx context.Context, id string) error {
	if err := srv.repos.WeeklyReports.Delete(ctx, id); err != nil {
		return notFound(err, kindWeeklyReport, id)
	}
	srv.publish(ctx, service.EventDeleted, kindWeeklyReport, id)

	return nil
}

// dedupeAttendance keeps the last row submitted for each member, in first-seen order.
func dedupeAttendance(rows []entity.AttendanceEntry) []entity.AttendanceEntry {
	out := make([]entity.AttendanceEntry, 0, len(rows))
	index := make(map[string]int, len(rows))
	for _, row := range rows {
		if i, seen := index[row.MemberID]; seen {
			out[i] = row

			continue
		}
		index[row.MemberID] = len(out)
		out = append(out, row)
	}

	return out
}
