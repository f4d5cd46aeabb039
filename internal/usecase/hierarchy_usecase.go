package usecase

import (
	"context"

	"churchadmin/internal/domain/entity"
)

// --- Input DTOs ---

// UnionInput defines the editable fields of a union.
type UnionInput struct {
	ID   string `json:"id"`
	Name string `json:"name" validate:"required"`
}

// AssociationInput defines the editable fields of an association and the
// optional departmental login.
type AssociationInput struct {
	ID                string             `json:"id"`
	Name              string             `json:"name" validate:"required"`
	UnionID           string             `json:"unionId" validate:"required"`
	DepartmentHead    string             `json:"departmentHead"`
	MembershipCount   entity.FlexibleInt `json:"membershipCount"`
	AnnualBaptismGoal entity.FlexibleInt `json:"annualBaptismGoal"`
	Credentials       entity.Credentials `json:"credentials"`
}

// ZoneInput defines the editable fields of a zone.
type ZoneInput struct {
	ID            string `json:"id"`
	Name          string `json:"name" validate:"required"`
	AssociationID string `json:"associationId" validate:"required"`
}

// DistrictInput defines the editable fields of a district and the optional
// pastor login.
type DistrictInput struct {
	ID          string                                 `json:"id"`
	Name        string                                 `json:"name" validate:"required"`
	ZoneID      string                                 `json:"zoneId" validate:"required"`
	Goals       map[entity.GoalMetric]entity.GoalInput `json:"goals"`
	Credentials entity.Credentials                     `json:"credentials"`
}

// ChurchInput defines the editable fields of a church and the optional
// Director MP login.
type ChurchInput struct {
	ID          string             `json:"id"`
	Name        string             `json:"name" validate:"required"`
	DistrictID  string             `json:"districtId" validate:"required"`
	Address     string             `json:"address"`
	Credentials entity.Credentials `json:"credentials"`
}

// SmallGroupInput defines the editable fields of a small group and the
// optional leader login.
type SmallGroupInput struct {
	ID          string                                 `json:"id"`
	Name        string                                 `json:"name" validate:"required"`
	Motto       string                                 `json:"motto"`
	Verse       string                                 `json:"verse"`
	MeetingDay  string                                 `json:"meetingDay"`
	MeetingTime string                                 `json:"meetingTime"`
	ChurchID    string                                 `json:"churchId" validate:"required"`
	Goals       map[entity.GoalMetric]entity.GoalInput `json:"goals"`
	Credentials entity.Credentials                     `json:"credentials"`
}

// FromPersonnelInput creates a small group led by a personnel candidate.
type FromPersonnelInput struct {
	ChurchID    string `json:"churchId" validate:"required"`
	PersonnelID string `json:"personnelId" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Motto       string `json:"motto"`
	Verse       string `json:"verse"`
	MeetingDay  string `json:"meetingDay"`
	MeetingTime string `json:"meetingTime"`
	Username    string `json:"username" validate:"required"`
	Password    string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// AssociationRow is one line of the association list.
type AssociationRow struct {
	*entity.Association
	Departmental entity.LinkedAccount `json:"departmental"`
}

// DistrictRow is one line of the district list.
type DistrictRow struct {
	*entity.District
	ZoneName string               `json:"zoneName"`
	Pastor   entity.LinkedAccount `json:"pastor"`
}

// ChurchRow is one line of the church list.
type ChurchRow struct {
	*entity.Church
	DistrictName string               `json:"districtName"`
	Director     entity.LinkedAccount `json:"director"`
}

// SmallGroupRow is one line of the small group list.
type SmallGroupRow struct {
	*entity.SmallGroup
	Leader      entity.LinkedAccount `json:"leader"`
	MemberCount int                  `json:"memberCount"`
}

// UnionUsecase manages unions.
type UnionUsecase interface {
	List(ctx context.Context) ([]*entity.Union, error)
	Get(ctx context.Context, id string) (*entity.Union, error)
	// Save creates the union when input.ID is empty and replaces it otherwise.
	Save(ctx context.Context, input *UnionInput) (*entity.Union, error)
	Delete(ctx context.Context, id string) error
}

// AssociationUsecase manages associations and their departmental logins.
type AssociationUsecase interface {
	List(ctx context.Context, unionID string) ([]*AssociationRow, error)
	NewForm(unionID string) *EntityForm[*entity.Association]
	Form(ctx context.Context, id string) (*EntityForm[*entity.Association], error)
	Save(ctx context.Context, input *AssociationInput) (*entity.Association, error)
	Delete(ctx context.Context, id string) error
}

// ZoneUsecase manages zones.
type ZoneUsecase interface {
	List(ctx context.Context, associationID string) ([]*entity.Zone, error)
	Get(ctx context.Context, id string) (*entity.Zone, error)
	Save(ctx context.Context, input *ZoneInput) (*entity.Zone, error)
	Delete(ctx context.Context, id string) error
}

// DistrictUsecase manages districts and their pastor logins.
type DistrictUsecase interface {
	List(ctx context.Context, zoneID string) ([]*DistrictRow, error)
	NewForm(zoneID string) *EntityForm[*entity.District]
	Form(ctx context.Context, id string) (*EntityForm[*entity.District], error)
	Save(ctx context.Context, input *DistrictInput) (*entity.District, error)
	Delete(ctx context.Context, id string) error
}

// ChurchUsecase manages churches and their Director MP logins.
type ChurchUsecase interface {
	List(ctx context.Context, districtID string) ([]*ChurchRow, error)
	NewForm(districtID string) *EntityForm[*entity.Church]
	Form(ctx context.Context, id string) (*EntityForm[*entity.Church], error)
	Save(ctx context.Context, input *ChurchInput) (*entity.Church, error)
	Delete(ctx context.Context, id string) error
}

// SmallGroupUsecase manages small groups and their leader logins.
type SmallGroupUsecase interface {
	List(ctx context.Context, churchID string) ([]*SmallGroupRow, error)
	NewForm(churchID string) *EntityForm[*entity.SmallGroup]
	Form(ctx context.Context, id string) (*EntityForm[*entity.SmallGroup], error)
	Save(ctx context.Context, input *SmallGroupInput) (*entity.SmallGroup, error)
	// CreateFromPersonnel creates a group whose leader login is built from a
	// personnel candidate's name and email.
	CreateFromPersonnel(ctx context.Context, input *FromPersonnelInput) (*entity.SmallGroup, error)
	Delete(ctx context.Context, id string) error
}
