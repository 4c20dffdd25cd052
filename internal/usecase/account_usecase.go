// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"placement/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data accepted when creating an account. The role
// never comes from here; it is fixed by the route. Unknown or role-excluded
// fields are silently dropped by the role field rules.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`

	Phone  string `json:"phone"`
	Year   string `json:"year"`
	Course string `json:"course"`
	CGPA   string `json:"cgpa"`
	Skills string `json:"skills"`

	EmployeeID     string `json:"employeeId"`
	Department     string `json:"department"`
	Designation    string `json:"designation"`
	Specialization string `json:"specialization"`
	Experience     string `json:"experience"`
	AccessLevel    string `json:"accessLevel"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateInput defines a partial account update. Email identifies the account
// and is never changed. Pointer fields distinguish "absent" from "set to
// empty"; only present fields are applied. Role and AccessLevel are accepted
// on the wire but always discarded.
type UpdateInput struct {
	Email string `json:"email"`

	Password *string `json:"password"`

	Name   *string `json:"name"`
	Phone  *string `json:"phone"`
	Year   *string `json:"year"`
	Course *string `json:"course"`
	CGPA   *string `json:"cgpa"`
	Skills *string `json:"skills"`

	EmployeeID     *string `json:"employeeId"`
	Department     *string `json:"department"`
	Designation    *string `json:"designation"`
	Specialization *string `json:"specialization"`
	Experience     *string `json:"experience"`

	// Discarded on every update. Clients cannot move an account between
	// roles or grant themselves access levels.
	Role        *string `json:"role"`
	AccessLevel *string `json:"accessLevel"`
}

// --- Output DTOs ---

// AccountView is the safe external projection of an account. It never
// carries the stored credential or the reset-token pair.
type AccountView struct {
	ID    string `json:"id"`
	Role  string `json:"role"`
	Email string `json:"email"`

	Name   string `json:"name,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Year   string `json:"year,omitempty"`
	Course string `json:"course,omitempty"`
	CGPA   string `json:"cgpa,omitempty"`
	Skills string `json:"skills,omitempty"`

	EmployeeID     string `json:"employeeId,omitempty"`
	Department     string `json:"department,omitempty"`
	Designation    string `json:"designation,omitempty"`
	Specialization string `json:"specialization,omitempty"`
	Experience     string `json:"experience,omitempty"`
	AccessLevel    string `json:"accessLevel,omitempty"`
}

// NewAccountView builds the safe projection of an account.
func NewAccountView(account *entity.Account) *AccountView {
	if account == nil {
		return nil
	}

	return &AccountView{
		ID:             account.ID.String(),
		Role:           account.Role.String(),
		Email:          account.Email,
		Name:           account.Name,
		Phone:          account.Phone,
		Year:           account.Year,
		Course:         account.Course,
		CGPA:           account.CGPA,
		Skills:         account.Skills,
		EmployeeID:     account.EmployeeID,
		Department:     account.Department,
		Designation:    account.Designation,
		Specialization: account.Specialization,
		Experience:     account.Experience,
		AccessLevel:    account.AccessLevel,
	}
}

// ForgotPasswordOutput carries the result of a reset request. ResetToken is
// populated only when Disclosed is true, which happens outside production or
// when no mail transport is configured.
type ForgotPasswordOutput struct {
	Message    string
	ResetToken string
	Disclosed  bool
}

// AccountUsecase defines the credential and profile operations offered per
// role, plus the role-agnostic login probe. This is the contract the
// delivery layer depends on.
type AccountUsecase interface {
	// Register creates an account in the role's table after the
	// cross-table email uniqueness check.
	Register(ctx context.Context, role entity.Role, input *RegisterInput) (*AccountView, error)

	// Login verifies credentials against the role's table.
	Login(ctx context.Context, role entity.Role, input *LoginInput) (*AccountView, error)

	// LoginAny probes every role table in order and authenticates against
	// the first one holding the email.
	LoginAny(ctx context.Context, input *LoginInput) (entity.Role, *AccountView, error)

	// Update applies a partial profile update to the account identified by
	// input.Email.
	Update(ctx context.Context, role entity.Role, input *UpdateInput) (*AccountView, error)

	// ForgotPassword issues a reset token for the account and mails the
	// reset link.
	ForgotPassword(ctx context.Context, role entity.Role, email string) (*ForgotPasswordOutput, error)

	// ResetPassword redeems a raw reset token and installs the new password.
	ResetPassword(ctx context.Context, role entity.Role, token string, newPassword string) error
}
