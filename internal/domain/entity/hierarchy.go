package entity

import "time"

// Union is the top of the organizational hierarchy.
type Union struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AssociationConfig holds association-level settings. The login secret lives
// on the linked User only.
type AssociationConfig struct {
	Username          string `json:"username"`
	AnnualBaptismGoal int    `json:"annualBaptismGoal"`
}

// Association belongs to a Union and is managed by its departmental head.
type Association struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	UnionID         string            `json:"unionId"`
	DepartmentHead  string            `json:"departmentHead"`
	MembershipCount int               `json:"membershipCount"`
	Config          AssociationConfig `json:"config"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

// Zone groups districts inside an Association.
type Zone struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	AssociationID string    `json:"associationId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// District belongs to a Zone and is managed by a pastor. PastorID is the
// backend-minted ID of the pastor's User.
type District struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ZoneID    string    `json:"zoneId"`
	PastorID  string    `json:"pastorId"`
	Goals     Goals     `json:"goals"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Church belongs to a District and is managed by its Director MP.
type Church struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	DistrictID string    `json:"districtId"`
	Address    string    `json:"address"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// SmallGroup (GP, grupo pequeño) is the leaf unit owning members. LeaderID is
// the backend-minted ID of the leader's User.
type SmallGroup struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Motto       string    `json:"motto"`
	Verse       string    `json:"verse"`
	MeetingDay  string    `json:"meetingDay"`
	MeetingTime string    `json:"meetingTime"`
	ChurchID    string    `json:"churchId"`
	LeaderID    string    `json:"leaderId"`
	Goals       Goals     `json:"goals"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
