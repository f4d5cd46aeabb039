// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role is the managerial role a login account holds. Each role is bound to
// one level of the organizational hierarchy through User.RelatedEntityID.
type Role string

const (
	// RoleAdmin is a global administrator with no related entity.
	RoleAdmin Role = "ADMIN"
	// RoleUnion manages a Union.
	RoleUnion Role = "UNION"
	// RoleAssociation is the departmental head of an Association.
	RoleAssociation Role = "ASOCIACION"
	// RolePastor manages a District.
	RolePastor Role = "PASTOR"
	// RoleDirectorMP is the church-level "Director MP".
	RoleDirectorMP Role = "DIRECTOR_MP"
	// RoleLeaderGP leads a small group.
	RoleLeaderGP Role = "LIDER_GP"
)

var allRoles = []Role{RoleAdmin, RoleUnion, RoleAssociation, RolePastor, RoleDirectorMP, RoleLeaderGP}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	return slices.Contains(allRoles, r)
}

// MemberRole is the role a member plays inside a small group.
type MemberRole string

const (
	MemberRoleLeader    MemberRole = "LIDER"
	MemberRoleSecretary MemberRole = "SECRETARIO"
	MemberRoleHost      MemberRole = "ANFITRION"
	MemberRoleMember    MemberRole = "MIEMBRO"
)

// IsValid checks if the MemberRole is a valid value.
func (r MemberRole) IsValid() bool {
	switch r {
	case MemberRoleLeader, MemberRoleSecretary, MemberRoleHost, MemberRoleMember:
		return true
	default:
		return false
	}
}
