package service

import (
	"context"

	"churchadmin/internal/domain/entity"
)

// PersonnelSource supplies leader candidates for a church. Implementations
// may read from the backend or from a persisted key-value slot.
type PersonnelSource interface {
	// Name identifies the source in logs and responses.
	Name() string

	// ListPersonnel returns candidates for churchID. An empty churchID returns all candidates.
	ListPersonnel(ctx context.Context, churchID string) ([]entity.Personnel, error)
}
