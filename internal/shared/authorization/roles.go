package authorization

type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleAgent    UserRole = "agent"
	RoleEmployee UserRole = "employee"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

// IsStaff reports whether the role has unrestricted visibility over tickets,
// logs, comments, and system metrics.
func (r UserRole) IsStaff() bool {
	return r == RoleAdmin || r == RoleAgent
}

func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleAgent || r == RoleEmployee
}

func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleEmployee
}
