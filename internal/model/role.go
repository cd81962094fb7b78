package model

import "fmt"

// Role is an account's rank. Lower ranks are more privileged.
type Role int

const (
	RoleAdmin Role = iota
	RoleDirector
	RoleManager
	RoleUser
)

// AllRoles lists every rank from most to least privileged.
var AllRoles = []Role{RoleAdmin, RoleDirector, RoleManager, RoleUser}

func (r Role) Valid() bool { return r >= RoleAdmin && r <= RoleUser }

// AtLeast reports whether r is as privileged as other or more.
func (r Role) AtLeast(other Role) bool { return r <= other }

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleDirector:
		return "director"
	case RoleManager:
		return "manager"
	case RoleUser:
		return "user"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

// RoleSet is the set of ranks allowed to invoke an operation.
type RoleSet map[Role]struct{}

func NewRoleSet(roles ...Role) RoleSet {
	s := make(RoleSet, len(roles))
	for _, r := range roles {
		s[r] = struct{}{}
	}
	return s
}

func (s RoleSet) Contains(r Role) bool {
	_, ok := s[r]
	return ok
}
