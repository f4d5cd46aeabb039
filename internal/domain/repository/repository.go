// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import "churchadmin/internal/errors"

// Domain-specific errors shared by every repository.
var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique field would be duplicated.
	ErrDuplicate = errors.New("record already exists")
)

// Repositories bundles every repository so that a storage driver can be
// provided as one unit.
type Repositories struct {
	Unions          UnionRepository
	Associations    AssociationRepository
	Zones           ZoneRepository
	Districts       DistrictRepository
	Churches        ChurchRepository
	SmallGroups     SmallGroupRepository
	Members         MemberRepository
	MissionaryPairs MissionaryPairRepository
	WeeklyReports   WeeklyReportRepository
	Users           UserRepository
}
