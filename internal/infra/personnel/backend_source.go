package personnel

import (
	"context"
	"strings"

	"churchadmin/internal/domain/entity"
	"churchadmin/internal/domain/repository"
	"churchadmin/internal/domain/service"
	"churchadmin/internal/errors"
)

const backendSourceName = "backend"

type backendSource struct {
	members repository.MemberRepository
}

// NewBackendSource offers the church members that have an email address,
// since a leader login needs one.
func NewBackendSource(members repository.MemberRepository) service.PersonnelSource {
	return &backendSource{members: members}
}

func (s *backendSource) Name() string {
	return backendSourceName
}

func (s *backendSource) ListPersonnel(ctx context.Context, churchID string) ([]entity.Personnel, error) {
	var (
		members []*entity.Member
		err     error
	)
	if churchID == "" {
		members, err = s.members.List(ctx)
	} else {
		members, err = s.members.ListByChurch(ctx, churchID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to list members")
	}

	out := make([]entity.Personnel, 0, len(members))
	for _, m := range members {
		if strings.TrimSpace(m.Email) == "" {
			continue
		}
		out = append(out, entity.Personnel{
			ID:       m.ID,
			Name:     m.FullName(),
			Email:    m.Email,
			Phone:    m.Phone,
			ChurchID: m.ChurchID,
		})
	}

	return out, nil
}
