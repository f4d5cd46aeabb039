// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"
)

// User is a login account. A managerial entity owns at most one User per
// role, linked through RelatedEntityID. The ID is assigned by the user
// repository, never by the caller.
type User struct {
	ID              string    `json:"id"`              // Backend-minted identifier.
	Username        string    `json:"username"`        // Unique login name.
	PasswordHash    string    `json:"-"`               // bcrypt hash; never serialised.
	Email           string    `json:"email"`           // Contact and auth-provider login email.
	Name            string    `json:"name"`            // Display name.
	Role            Role      `json:"role"`            // Managerial role.
	RelatedEntityID string    `json:"relatedEntityId"` // The entity this login manages.
	IsActive        bool      `json:"isActive"`        // Disabled accounts keep their record.
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Credentials is the optional login block submitted with a managerial entity.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Name     string `json:"name"`
}

// Normalize trims the username, email and name. The password is kept as typed.
func (c Credentials) Normalize() Credentials {
	c.Username = strings.TrimSpace(c.Username)
	c.Email = strings.TrimSpace(c.Email)
	c.Name = strings.TrimSpace(c.Name)

	return c
}

// IsEmpty reports whether no credential field was filled in. Call it on
// normalized credentials so blank input counts as missing.
func (c Credentials) IsEmpty() bool {
	return c.Username == "" && c.Password == "" && c.Email == ""
}

// IsComplete reports whether username, password and email are all present.
func (c Credentials) IsComplete() bool {
	return c.Username != "" && c.Password != "" && c.Email != ""
}

// LinkedAccount is the public view of a User shown next to its entity.
type LinkedAccount struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
}

// AccountOf builds the public view of u. A nil user yields an empty view.
func AccountOf(u *User) LinkedAccount {
	if u == nil {
		return LinkedAccount{}
	}

	return LinkedAccount{UserID: u.ID, Username: u.Username, Email: u.Email, Name: u.Name}
}
