// Package model holds the GORM persistence models. Structured fields are
// stored as JSONB through gorm.io/datatypes.
package model

import (
	"time"

	"churchadmin/internal/domain/entity"

	"gorm.io/datatypes"
)

// UnionModel mirrors the 'unions' table.
type UnionModel struct {
	ID        string `gorm:"type:varchar(64);primaryKey"`
	Name      string `gorm:"type:varchar(150);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UnionModel) TableName() string {
	return "unions"
}

// AssociationModel mirrors the 'associations' table.
type AssociationModel struct {
	ID              string                                       `gorm:"type:varchar(64);primaryKey"`
	Name            string                                       `gorm:"type:varchar(150);not null"`
	UnionID         string                                       `gorm:"type:varchar(64);not null;index"`
	DepartmentHead  string                                       `gorm:"type:varchar(150)"`
	MembershipCount int                                          `gorm:"not null;default:0"`
	Config          datatypes.JSONType[entity.AssociationConfig] `gorm:"type:jsonb;not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (AssociationModel) TableName() string {
	return "associations"
}

// ZoneModel mirrors the 'zones' table.
type ZoneModel struct {
	ID            string `gorm:"type:varchar(64);primaryKey"`
	Name          string `gorm:"type:varchar(150);not null"`
	AssociationID string `gorm:"type:varchar(64);not null;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ZoneModel) TableName() string {
	return "zones"
}

// DistrictModel mirrors the 'districts' table. PastorID references users.id.
type DistrictModel struct {
	ID        string                           `gorm:"type:varchar(64);primaryKey"`
	Name      string                           `gorm:"type:varchar(150);not null"`
	ZoneID    string                           `gorm:"type:varchar(64);not null;index"`
	PastorID  string                           `gorm:"type:varchar(64)"`
	Goals     datatypes.JSONType[entity.Goals] `gorm:"type:jsonb;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DistrictModel) TableName() string {
	return "districts"
}

// ChurchModel mirrors the 'churches' table.
type ChurchModel struct {
	ID         string `gorm:"type:varchar(64);primaryKey"`
	Name       string `gorm:"type:varchar(150);not null"`
	DistrictID string `gorm:"type:varchar(64);not null;index"`
	Address    string `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ChurchModel) TableName() string {
	return "churches"
}

// SmallGroupModel mirrors the 'small_groups' table. LeaderID references users.id.
type SmallGroupModel struct {
	ID          string                           `gorm:"type:varchar(64);primaryKey"`
	Name        string                           `gorm:"type:varchar(150);not null"`
	Motto       string                           `gorm:"type:varchar(255)"`
	Verse       string                           `gorm:"type:varchar(255)"`
	MeetingDay  string                           `gorm:"type:varchar(20)"`
	MeetingTime string                           `gorm:"type:varchar(10)"`
	ChurchID    string                           `gorm:"type:varchar(64);not null;index"`
	LeaderID    string                           `gorm:"type:varchar(64)"`
	Goals       datatypes.JSONType[entity.Goals] `gorm:"type:jsonb;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (SmallGroupModel) TableName() string {
	return "small_groups"
}
