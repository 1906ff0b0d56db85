package domain

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleHR       Role = "hr"
	RoleDirector Role = "director"
)

type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	DisplayName  string `json:"displayName"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`
}

// HasPermission reports whether the role is a member of the required set.
// There is no role hierarchy: admin is not implied, every resource lists its
// permitted roles explicitly.
func HasPermission(role Role, requiredRoles []Role) bool {
	for _, required := range requiredRoles {
		if role == required {
			return true
		}
	}
	return false
}
