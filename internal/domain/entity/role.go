package entity

// Role names as issued by the backend
const (
	RoleAdmin   = "ADMIN"
	RoleDentist = "DENTIST"
	RolePatient = "PATIENT"
)

// RoleSet is the set of roles a user holds. A user may hold several.
type RoleSet []string

// Has reports whether role is present in the set.
func (rs RoleSet) Has(role string) bool {
	for _, r := range rs {
		if r == role {
			return true
		}
	}
	return false
}

// HasAny reports whether any of roles is present in the set.
func (rs RoleSet) HasAny(roles ...string) bool {
	for _, role := range roles {
		if rs.Has(role) {
			return true
		}
	}
	return false
}
