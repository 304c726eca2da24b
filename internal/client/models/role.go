package models

// Role is the server-assigned authorization role cached alongside the token.
// It gates which commands the CLI offers; the server re-checks every request,
// so the cached value is never trusted for security decisions.
type Role string

const (
	RoleUser       Role = "user"
	RoleAnalyst    Role = "analyst"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// ParseRole maps a stored or server-provided string to a Role, defaulting
// to RoleUser for unknown or empty values.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleAnalyst, RoleAdmin, RoleSuperAdmin:
		return Role(s)
	default:
		return RoleUser
	}
}
