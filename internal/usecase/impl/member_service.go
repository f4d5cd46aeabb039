package impl

import (
	"context"
	"strings"

	"churchadmin/internal/domain/entity"
	"churchadmin/internal/domain/service"
	"churchadmin/internal/errors"
	"churchadmin/internal/usecase"
)

type memberService struct {
	base
}

// NewMemberService is the constructor for memberService.
func NewMemberService(params ServiceParams) usecase.MemberUsecase {
	return &memberService{base: newBase(params)}
}

// List returns the members of a small group.
func (srv *memberService) List(ctx context.Context, gpID string) ([]*entity.Member, error) {
	members, err := srv.repos.Members.ListByGroup(ctx, gpID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list members")
	}

	return members, nil
}

// Get returns one member.
func (srv *memberService) Get(ctx context.Context, id string) (*entity.Member, error) {
	member, err := srv.repos.Members.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, kindMember, id)
	}

	return member, nil
}

// Save creates or replaces a member. The church is taken from the group.
func (srv *memberService) Save(ctx context.Context, input *usecase.MemberInput) (*entity.Member, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	name := input.FirstName + " " + input.LastName
	var saved *entity.Member
	err := srv.settle(submissionKey(kindMember, input.ID, input.GPID, name), func() error {
		group, err := srv.repos.SmallGroups.FindByID(ctx, input.GPID)
		if err != nil {
			return notFound(err, kindSmallGroup, input.GPID)
		}

		role := input.Role
		if !role.IsValid() {
			role = entity.MemberRoleMember
		}

		now := srv.now()
		member := &entity.Member{
			ID:         input.ID,
			FirstName:  strings.TrimSpace(input.FirstName),
			LastName:   strings.TrimSpace(input.LastName),
			Cedula:     strings.TrimSpace(input.Cedula),
			Phone:      strings.TrimSpace(input.Phone),
			Email:      strings.TrimSpace(input.Email),
			GPID:       group.ID,
			Role:       role,
			ChurchID:   group.ChurchID,
			IsBaptized: input.IsBaptized,
			Gender:     input.Gender,
			Address:    strings.TrimSpace(input.Address),
			BirthDate:  input.BirthDate,
			UpdatedAt:  now,
		}

		if input.ID == "" {
			member.ID = entity.NewID(entity.PrefixMember)
			member.CreatedAt = now
			if err := srv.repos.Members.Create(ctx, member); err != nil {
				return errors.Wrap(err, "failed to create member")
			}
			srv.publish(ctx, service.EventCreated, kindMember, member.ID)
		} else {
			current, err := srv.repos.Members.FindByID(ctx, input.ID)
			if err != nil {
				return notFound(err, kindMember, input.ID)
			}
			member.CreatedAt = current.CreatedAt
			if err := srv.repos.Members.Update(ctx, member); err != nil {
				return errors.Wrap(err, "failed to update member")
			}
			srv.publish(ctx, service.EventUpdated, kindMember, member.ID)
		}
		saved = member

		return nil
	})
	if err != nil {
		return nil, err
	}

	return saved, nil
}

// Delete removes a member.
func (srv *memberService) Delete(ctx context.Context, id string) error {
	if err := srv.repos.Members.Delete(ctx, id); err != nil {
		return notFound(err, kindMember, id)
	}
	srv.publish(ctx, service.EventDeleted, kindMember, id)

	return nil
}
