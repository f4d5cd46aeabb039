package entity

import "time"

// AttendanceEntry records one member at one weekly meeting.
type AttendanceEntry struct {
	MemberID     string `json:"memberId"`
	Present      bool   `json:"present"`
	Participated bool   `json:"participated"`
	StudiesGiven int    `json:"studiesGiven"`
	Guests       int    `json:"guests"`
}

// PairStats records the studies a missionary pair gave during the week.
type PairStats struct {
	PairID       string `json:"pairId"`
	StudiesGiven int    `json:"studiesGiven"`
}

// ReportSummary totals a weekly report. Every field except Baptisms is
// derived from the attendance rows.
type ReportSummary struct {
	TotalAttendance int `json:"totalAttendance"`
	TotalStudies    int `json:"totalStudies"`
	TotalGuests     int `json:"totalGuests"`
	Baptisms        int `json:"baptisms"`
}

// WeeklyReport is a small group's weekly meeting report.
type WeeklyReport struct {
	ID                   string            `json:"id"`
	GPID                 string            `json:"gpId"`
	Date                 string            `json:"date"`
	Attendance           []AttendanceEntry `json:"attendance"`
	MissionaryPairsStats []PairStats       `json:"missionaryPairsStats"`
	Summary              ReportSummary     `json:"summary"`
	CreatedAt            time.Time         `json:"createdAt"`
	UpdatedAt            time.Time         `json:"updatedAt"`
}

// Recompute rebuilds the derived summary fields from the attendance rows.
// Baptisms is kept as entered, clamped at zero. Negative per-row counts are
// clamped before summing.
func (r *WeeklyReport) Recompute() {
	var attendance, studies, guests int
	for i := range r.Attendance {
		row := &r.Attendance[i]
		row.StudiesGiven = max(row.StudiesGiven, 0)
		row.Guests = max(row.Guests, 0)
		if row.Present {
			attendance++
		}
		studies += row.StudiesGiven
		guests += row.Guests
	}
	for i := range r.MissionaryPairsStats {
		r.MissionaryPairsStats[i].StudiesGiven = max(r.MissionaryPairsStats[i].StudiesGiven, 0)
	}

	r.Summary.TotalAttendance = attendance
	r.Summary.TotalStudies = studies
	r.Summary.TotalGuests = guests
	r.Summary.Baptisms = max(r.Summary.Baptisms, 0)
}
