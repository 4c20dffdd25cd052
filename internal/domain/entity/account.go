// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultAccessLevel is assigned to admin accounts created without an
// explicit access level, and backfilled onto legacy rows by migration.
const DefaultAccessLevel = "Full"

// Account is a stored identity in one role-specific table. Every role shares
// the same superset of fields; which of them are actually carried depends on
// the role (see ApplyRoleFieldRules).
type Account struct {
	ID    uuid.UUID // Unique identifier for the account row.
	Role  Role      // Server-owned; always matches the table the account lives in.
	Email string    // Login identifier, globally unique across all role tables (application-enforced).

	// Password holds the stored credential: a bcrypt hash for current rows,
	// or raw plaintext for legacy rows that predate hashing.
	Password string

	// Shared profile fields.
	Name   string
	Phone  string
	Year   string
	Course string
	CGPA   string
	Skills string

	// Staff profile fields (optional for students).
	EmployeeID     string
	Department     string
	Designation    string
	Specialization string
	Experience     string

	// AccessLevel is meaningful only for admin accounts.
	AccessLevel string

	// Pending password-reset state. Only the SHA-256 digest of the reset
	// token is stored, never the raw value. Both fields are set and cleared
	// together.
	ResetPasswordToken  string
	ResetPasswordExpire *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ApplyRoleFieldRules enforces the role-conditional field exclusions before
// persisting: TPO accounts never carry experience, admin accounts never carry
// department and always carry an access level, and access level is cleared
// for every other role. Callers run this on every write path.
func (a *Account) ApplyRoleFieldRules() {
	switch a.Role {
	case RoleTPO:
		a.Experience = ""
	case RoleAdmin:
		a.Department = ""
		if a.AccessLevel == "" {
			a.AccessLevel = DefaultAccessLevel
		}
	}

	if a.Role != RoleAdmin {
		a.AccessLevel = ""
	}
}

// SetResetToken records a pending password reset: the digest of the issued
// token and the instant it stops being redeemable.
func (a *Account) SetResetToken(digest string, expire time.Time) {
	a.ResetPasswordToken = digest
	a.ResetPasswordExpire = &expire
}

// ClearResetToken removes any pending password-reset state. Used on
// successful redemption and as the compensating rollback when the reset mail
// cannot be delivered.
func (a *Account) ClearResetToken() {
	a.ResetPasswordToken = ""
	a.ResetPasswordExpire = nil
}

// HasPendingReset reports whether a reset token pair is currently stored.
func (a *Account) HasPendingReset() bool {
	return a.ResetPasswordToken != "" && a.ResetPasswordExpire != nil
}
