package domain

import (
	"errors"
	"strings"
)

// ErrUnknownRole is returned when a role string is outside the closed set
var ErrUnknownRole = errors.New("domain: unknown role")

// Role is the closed set of account roles
type Role string

const (
	RoleUser  Role = "usuario"
	RoleOwner Role = "dueño"
	RoleAdmin Role = "administrador"
)

// ParseRole accepts both persisted values and their English aliases
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(RoleUser), "user":
		return RoleUser, nil
	case string(RoleOwner), "dueno", "owner":
		return RoleOwner, nil
	case string(RoleAdmin), "admin":
		return RoleAdmin, nil
	default:
		return "", ErrUnknownRole
	}
}

// RegistrationRole maps a self-service role request to user or owner.
// Admin can never be requested this way; anything unknown becomes user.
func RegistrationRole(requested string) Role {
	role, err := ParseRole(requested)
	if err != nil || role == RoleAdmin {
		return RoleUser
	}
	return role
}

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleOwner, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}
