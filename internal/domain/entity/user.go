package entity

import "time"

// User is the authenticated identity held by the session
type User struct {
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Roles    RoleSet `json:"roles"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Roles.Has(RoleAdmin)
}

func (u *User) IsDentist() bool {
	return u != nil && u.Roles.Has(RoleDentist)
}

func (u *User) IsPatient() bool {
	return u != nil && u.Roles.Has(RolePatient)
}

// Session pairs the bearer token with the user it was issued to.
// ExpiresAt is informational only; it is never used to reject a session.
type Session struct {
	Token     string     `json:"token"`
	User      User       `json:"user"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}
