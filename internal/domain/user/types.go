package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role is resolved by the external identity provider; this service only
// consumes it from token claims.
type Role string

const (
	RoleUser     Role = "user"
	RoleBusiness Role = "business"
	RoleAdmin    Role = "admin"
)

func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleBusiness, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsPrivileged reports whether the role may act on requests it does not own.
func (r Role) IsPrivileged() bool {
	return r == RoleAdmin
}
