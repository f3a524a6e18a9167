package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStaff   RoleType = "STAFF"
	RoleStudent RoleType = "STUDENT"
)

// IsValid reports whether the role is one of the known roles.
func (r RoleType) IsValid() bool {
	return r == RoleStaff || r == RoleStudent
}
