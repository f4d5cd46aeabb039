package postgres

import (
	"churchadmin/internal/domain/entity"
	"churchadmin/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

func fromUnionDomain(u *entity.Union) *model.UnionModel {
	return &model.UnionModel{ID: u.ID, Name: u.Name, CreatedAt: u.CreatedAt, UpdatedAt: u.UpdatedAt}
}

func toUnionDomain(m *model.UnionModel) *entity.Union {
	return &entity.Union{ID: m.ID, Name: m.Name, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
}

func fromAssociationDomain(a *entity.Association) *model.AssociationModel {
	return &model.AssociationModel{
		ID:              a.ID,
		Name:            a.Name,
		UnionID:         a.UnionID,
		DepartmentHead:  a.DepartmentHead,
		MembershipCount: a.MembershipCount,
		Config:          datatypes.NewJSONType(a.Config),
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func toAssociationDomain(m *model.AssociationModel) *entity.Association {
	return &entity.Association{
		ID:              m.ID,
		Name:            m.Name,
		UnionID:         m.UnionID,
		DepartmentHead:  m.DepartmentHead,
		MembershipCount: m.MembershipCount,
		Config:          m.Config.Data(),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func fromZoneDomain(z *entity.Zone) *model.ZoneModel {
	return &model.ZoneModel{ID: z.ID, Name: z.Name, AssociationID: z.AssociationID, CreatedAt: z.CreatedAt, UpdatedAt: z.UpdatedAt}
}

func toZoneDomain(m *model.ZoneModel) *entity.Zone {
	return &entity.Zone{ID: m.ID, Name: m.Name, AssociationID: m.AssociationID, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
}

func fromDistrictDomain(d *entity.District) *model.DistrictModel {
	return &model.DistrictModel{
		ID:        d.ID,
		Name:      d.Name,
		ZoneID:    d.ZoneID,
		PastorID:  d.PastorID,
		Goals:     datatypes.NewJSONType(d.Goals.Normalize()),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func toDistrictDomain(m *model.DistrictModel) *entity.District {
	return &entity.District{
		ID:        m.ID,
		Name:      m.Name,
		ZoneID:    m.ZoneID,
		PastorID:  m.PastorID,
		Goals:     m.Goals.Data().Normalize(),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func fromChurchDomain(c *entity.Church) *model.ChurchModel {
	return &model.ChurchModel{
		ID:         c.ID,
		Name:       c.Name,
		DistrictID: c.DistrictID,
		Address:    c.Address,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func toChurchDomain(m *model.ChurchModel) *entity.Church {
	return &entity.Church{
		ID:         m.ID,
		Name:       m.Name,
		DistrictID: m.DistrictID,
		Address:    m.Address,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func fromSmallGroupDomain(g *entity.SmallGroup) *model.SmallGroupModel {
	return &model.SmallGroupModel{
		ID:          g.ID,
		Name:        g.Name,
		Motto:       g.Motto,
		Verse:       g.Verse,
		MeetingDay:  g.MeetingDay,
		MeetingTime: g.MeetingTime,
		ChurchID:    g.ChurchID,
		LeaderID:    g.LeaderID,
		Goals:       datatypes.NewJSONType(g.Goals.Normalize()),
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

func toSmallGroupDomain(m *model.SmallGroupModel) *entity.SmallGroup {
	return &entity.SmallGroup{
		ID:          m.ID,
		Name:        m.Name,
		Motto:       m.Motto,
		Verse:       m.Verse,
		MeetingDay:  m.MeetingDay,
		MeetingTime: m.MeetingTime,
		ChurchID:    m.ChurchID,
		LeaderID:    m.LeaderID,
		Goals:       m.Goals.Data().Normalize(),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromMemberDomain(m *entity.Member) *model.MemberModel {
	return &model.MemberModel{
		ID:         m.ID,
		FirstName:  m.FirstName,
		LastName:   m.LastName,
		Cedula:     m.Cedula,
		Phone:      m.Phone,
		Email:      m.Email,
		GPID:       m.GPID,
		Role:       string(m.Role),
		ChurchID:   m.ChurchID,
		IsBaptized: m.IsBaptized,
		Gender:     m.Gender,
		Address:    m.Address,
		BirthDate:  m.BirthDate,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func toMemberDomain(m *model.MemberModel) *entity.Member {
	return &entity.Member{
		ID:         m.ID,
		FirstName:  m.FirstName,
		LastName:   m.LastName,
		Cedula:     m.Cedula,
		Phone:      m.Phone,
		Email:      m.Email,
		GPID:       m.GPID,
		Role:       entity.MemberRole(m.Role),
		ChurchID:   m.ChurchID,
		IsBaptized: m.IsBaptized,
		Gender:     m.Gender,
		Address:    m.Address,
		BirthDate:  m.BirthDate,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func fromMissionaryPairDomain(p *entity.MissionaryPair) *model.MissionaryPairModel {
	return &model.MissionaryPairModel{
		ID:        p.ID,
		Member1ID: p.Member1ID,
		Member2ID: p.Member2ID,
		GPID:      p.GPID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toMissionaryPairDomain(m *model.MissionaryPairModel) *entity.MissionaryPair {
	return &entity.MissionaryPair{
		ID:        m.ID,
		Member1ID: m.Member1ID,
		Member2ID: m.Member2ID,
		GPID:      m.GPID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func fromWeeklyReportDomain(r *entity.WeeklyReport) *model.WeeklyReportModel {
	attendance := r.Attendance
	if attendance == nil {
		attendance = []entity.AttendanceEntry{}
	}
	stats := r.MissionaryPairsStats
	if stats == nil {
		stats = []entity.PairStats{}
	}

	return &model.WeeklyReportModel{
		ID:                   r.ID,
		GPID:                 r.GPID,
		Date:                 r.Date,
		Attendance:           datatypes.NewJSONSlice(attendance),
		MissionaryPairsStats: datatypes.NewJSONSlice(stats),
		Summary:              datatypes.NewJSONType(r.Summary),
		CreatedAt:            r.CreatedAt,
		UpdatedAt:            r.UpdatedAt,
	}
}

func toWeeklyReportDomain(m *model.WeeklyReportModel) *entity.WeeklyReport {
	return &entity.WeeklyReport{
		ID:                   m.ID,
		GPID:                 m.GPID,
		Date:                 m.Date,
		Attendance:           []entity.AttendanceEntry(m.Attendance),
		MissionaryPairsStats: []entity.PairStats(m.MissionaryPairsStats),
		Summary:              m.Summary.Data(),
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

func fromUserDomain(u *entity.User) *model.UserModel {
	m := &model.UserModel{
		Username:        u.Username,
		PasswordHash:    u.PasswordHash,
		Email:           u.Email,
		Name:            u.Name,
		Role:            u.Role.String(),
		RelatedEntityID: u.RelatedEntityID,
		IsActive:        u.IsActive,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
	if id, err := uuid.Parse(u.ID); err == nil {
		m.ID = id
	}

	return m
}

func toUserDomain(m *model.UserModel) *entity.User {
	return &entity.User{
		ID:              m.ID.String(),
		Username:        m.Username,
		PasswordHash:    m.PasswordHash,
		Email:           m.Email,
		Name:            m.Name,
		Role:            entity.Role(m.Role),
		RelatedEntityID: m.RelatedEntityID,
		IsActive:        m.IsActive,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
