package user

import "errors"

// Role is the coarse access level carried in the JWT "role" claim.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
	RoleHRAdmin  Role = "hr_admin"
)

var (
	ErrManagerAccessRequired = errors.New("manager access required")
)

// CanDecideLeave reports whether the role may approve or reject leave
// requests. The organizational authority check is separate.
func CanDecideLeave(r Role) bool {
	return r == RoleManager || r == RoleHRAdmin
}
