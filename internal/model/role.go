package model

// Role is the closed set of organizational roles. Handlers and usecases
// switch on these constants; raw strings from tokens go through ParseRole.
type Role string

const (
	RoleCEO      Role = "CEO"
	RoleDirector Role = "DIRECTOR"
	RoleEmployee Role = "EMPLOYEE"
	RoleAdmin    Role = "ADMIN"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleCEO, RoleDirector, RoleEmployee, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

func (r Role) Valid() bool {
	_, ok := ParseRole(string(r))
	return ok
}

// Claims is the verified identity attached to every authenticated request.
type Claims struct {
	UserID     uint
	Email      string
	Role       Role
	Department string
}
