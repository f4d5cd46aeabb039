package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates the ID, which is
// what makes user IDs backend-minted.
type UserModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username        string    `gorm:"type:varchar(100);not null;index:idx_users_username_lower,unique,expression:lower(username)"`
	PasswordHash    string    `gorm:"type:varchar(255);not null"`
	Email           string    `gorm:"type:varchar(255);not null"`
	Name            string    `gorm:"type:varchar(150)"`
	Role            string    `gorm:"type:varchar(20);not null;index:idx_users_related_role,priority:2"`
	RelatedEntityID string    `gorm:"type:varchar(64);index:idx_users_related_role,priority:1"`
	IsActive        bool      `gorm:"not null;default:true"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// All returns every model, in dependency order, for schema migration.
func All() []any {
	return []any{
		&UnionModel{},
		&AssociationModel{},
		&ZoneModel{},
		&DistrictModel{},
		&ChurchModel{},
		&SmallGroupModel{},
		&MemberModel{},
		&MissionaryPairModel{},
		&WeeklyReportModel{},
		&UserModel{},
	}
}
