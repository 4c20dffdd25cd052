// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role identifies which account population a record belongs to.
// The role value stored on an account always matches the table it lives in;
// it is set by the server at creation time and is never client-writable.
type Role string

const (
	// RoleStudent indicates a student account.
	RoleStudent Role = "student"
	// RoleFaculty indicates a faculty account.
	RoleFaculty Role = "faculty"
	// RoleTPO indicates a training-and-placement-officer account.
	RoleTPO Role = "tpo"
	// RoleAdmin indicates an administrator account.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role. It doubles as the
// singular key under which a sanitized account is returned in API responses.
func (r Role) String() string {
	return string(r)
}

// PathName returns the URL path segment for the role's route group.
func (r Role) PathName() string {
	switch r {
	case RoleStudent:
		return "students"
	case RoleFaculty:
		return "faculty"
	case RoleTPO:
		return "tpo"
	case RoleAdmin:
		return "admin"
	default:
		return string(r)
	}
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	return slices.Contains(AllRoles(), r)
}

// AllRoles returns every role in probe order. The order is observable: the
// role-agnostic login and the cross-table email existence scan both walk the
// tables in exactly this sequence.
func AllRoles() []Role {
	return []Role{RoleStudent, RoleFaculty, RoleTPO, RoleAdmin}
}
