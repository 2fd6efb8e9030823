package domain

import (
	"fmt"
	"strings"
)

// Role is the closed set of attendance-console roles. Exactly one is active per session.
type Role string

const (
	// RoleAdmin operates face enrollment and camera settings.
	RoleAdmin Role = "admin"
	// RoleAdministrator oversees attendance (HR).
	RoleAdministrator Role = "administrator"
	// RoleUser is an employee using self-service pages.
	RoleUser Role = "user"
)

var allRoles = []Role{RoleAdmin, RoleAdministrator, RoleUser}

// Roles returns every known role in a stable order.
func Roles() []Role {
	out := make([]Role, len(allRoles))
	copy(out, allRoles)
	return out
}

// Valid reports whether r is one of the closed enumeration values.
func (r Role) Valid() bool {
	for _, known := range allRoles {
		if r == known {
			return true
		}
	}
	return false
}

// ParseRole converts s into a Role, rejecting anything outside the enumeration.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
	return r, nil
}

// RoleSet is an unordered set of roles, used as a route's allowed-role list.
type RoleSet map[Role]struct{}

func NewRoleSet(roles ...Role) RoleSet {
	set := make(RoleSet, len(roles))
	for _, r := range roles {
		set[r] = struct{}{}
	}
	return set
}

// Contains reports whether r is in the set. The zero role is never contained.
func (s RoleSet) Contains(r Role) bool {
	if r == "" {
		return false
	}
	_, ok := s[r]
	return ok
}

// Slice returns the members in enumeration order.
func (s RoleSet) Slice() []Role {
	out := make([]Role, 0, len(s))
	for _, r := range allRoles {
		if _, ok := s[r]; ok {
			out = append(out, r)
		}
	}
	return out
}
