package entity

import "time"

// Activity names an auditable account event.
type Activity string

const (
	// ActivitySignup is recorded when an account is registered.
	ActivitySignup Activity = "signup"
	// ActivityLogin is recorded on every successful login.
	ActivityLogin Activity = "login"
	// ActivityProfileUpdate is recorded on profile updates and completed
	// password resets.
	ActivityProfileUpdate Activity = "profile_update"
)

// String returns the string representation of the Activity.
func (a Activity) String() string {
	return string(a)
}

// ActivityRecord is an append-only audit entry. Records are immutable once
// written; failing to write one never fails the operation that produced it.
type ActivityRecord struct {
	Email     string
	Role      Role
	Activity  Activity
	CreatedAt time.Time
}
