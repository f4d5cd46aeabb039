package model

import (
	"time"

	"churchadmin/internal/domain/entity"

	"gorm.io/datatypes"
)

// MemberModel mirrors the 'members' table.
type MemberModel struct {
	ID         string `gorm:"type:varchar(64);primaryKey"`
	FirstName  string `gorm:"type:varchar(100);not null"`
	LastName   string `gorm:"type:varchar(100);not null"`
	Cedula     string `gorm:"type:varchar(30)"`
	Phone      string `gorm:"type:varchar(30)"`
	Email      string `gorm:"type:varchar(255)"`
	GPID       string `gorm:"column:gp_id;type:varchar(64);not null;index"`
	Role       string `gorm:"type:varchar(20);not null"`
	ChurchID   string `gorm:"type:varchar(64);index"`
	IsBaptized bool   `gorm:"not null;default:false"`
	Gender     string `gorm:"type:varchar(20)"`
	Address    string `gorm:"type:text"`
	BirthDate  string `gorm:"type:varchar(10)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (MemberModel) TableName() string {
	return "members"
}

// MissionaryPairModel mirrors the 'missionary_pairs' table.
type MissionaryPairModel struct {
	ID        string `gorm:"type:varchar(64);primaryKey"`
	Member1ID string `gorm:"column:member1_id;type:varchar(64);not null"`
	Member2ID string `gorm:"column:member2_id;type:varchar(64);not null"`
	GPID      string `gorm:"column:gp_id;type:varchar(64);not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (MissionaryPairModel) TableName() string {
	return "missionary_pairs"
}

// WeeklyReportModel mirrors the 'weekly_reports' table.
type WeeklyReportModel struct {
	ID                   string                                      `gorm:"type:varchar(64);primaryKey"`
	GPID                 string                                      `gorm:"column:gp_id;type:varchar(64);not null;index"`
	Date                 string                                      `gorm:"type:varchar(10);not null"`
	Attendance           datatypes.JSONSlice[entity.AttendanceEntry] `gorm:"type:jsonb;not null"`
	MissionaryPairsStats datatypes.JSONSlice[entity.PairStats]       `gorm:"type:jsonb;not null"`
	Summary              datatypes.JSONType[entity.ReportSummary]    `gorm:"type:jsonb;not null"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (WeeklyReportModel) TableName() string {
	return "weekly_reports"
}
