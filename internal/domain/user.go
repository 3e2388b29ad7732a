package domain

import "time"

// User represents a registered account
type User struct {
	ID           int64
	Name         string
	Email        string
	Age          int
	PasswordHash string
	Address      *string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity returns the session identity of the user
func (u *User) Identity() Identity {
	return Identity{UserID: u.ID, Role: u.Role, Name: u.Name}
}

// Identity is the authenticated principal attached to a request
type Identity struct {
	UserID    int64
	Role      Role
	Name      string
	SessionID string
}

// Anonymous is the identity of a visitor without a session
var Anonymous = Identity{}

// IsAnonymous returns true if there is no authenticated user
func (i Identity) IsAnonymous() bool {
	return i.UserID == 0
}

// IsAdmin returns true for administrators
func (i Identity) IsAdmin() bool {
	return !i.IsAnonymous() && i.Role == RoleAdmin
}

// IsOwner returns true for facility owners
func (i Identity) IsOwner() bool {
	return !i.IsAnonymous() && i.Role == RoleOwner
}

// HasRole returns true if the identity holds one of the given roles
func (i Identity) HasRole(roles ...Role) bool {
	if i.IsAnonymous() {
		return false
	}
	for _, r := range roles {
		if i.Role == r {
			return true
		}
	}
	return false
}
