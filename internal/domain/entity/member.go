package entity

import "time"

// Member is a person attending a small group.
type Member struct {
	ID         string     `json:"id"`
	FirstName  string     `json:"firstName"`
	LastName   string     `json:"lastName"`
	Cedula     string     `json:"cedula"`
	Phone      string     `json:"phone"`
	Email      string     `json:"email"`
	GPID       string     `json:"gpId"`
	Role       MemberRole `json:"role"`
	ChurchID   string     `json:"churchId"`
	IsBaptized bool       `json:"isBaptized"`
	Gender     string     `json:"gender"`
	Address    string     `json:"address"`
	BirthDate  string     `json:"birthDate"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// FullName joins first and last name.
func (m *Member) FullName() string {
	switch {
	case m.FirstName == "":
		return m.LastName
	case m.LastName == "":
		return m.FirstName
	default:
		return m.FirstName + " " + m.LastName
	}
}

// MissionaryPair is two members of the same group doing outreach together.
type MissionaryPair struct {
	ID        string    `json:"id"`
	Member1ID string    `json:"member1Id"`
	Member2ID string    `json:"member2Id"`
	GPID      string    `json:"gpId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Personnel is a leader candidate offered when a director creates a group.
type Personnel struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	ChurchID string `json:"churchId"`
}
