// Package repository defines the persistence ports consumed by the use cases.
// Concrete implementations live under internal/infra/persistence.
package repository

import (
	"context"
	"time"

	"placement/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrAccountNotFound is returned when no account matches the lookup. Use
// cases translate it into the operation-appropriate domain error (401 on
// login, 404 on update, 400 on reset redemption).
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository persists accounts of a single role. Instances are
// obtained from an AccountStore and are bound to that role's table.
type AccountRepository interface {
	// Create inserts a new account. The implementation assigns the ID and
	// timestamps back onto the entity.
	Create(ctx context.Context, account *entity.Account) error

	// FindByEmail retrieves the account with the given email, or
	// ErrAccountNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindByResetDigest retrieves the account whose stored reset-token digest
	// matches AND whose expiry is after now, or ErrAccountNotFound. Callers
	// cannot distinguish an expired pair from an unknown token.
	FindByResetDigest(ctx context.Context, digest string, now time.Time) (*entity.Account, error)

	// Save writes the full current state of a previously loaded account.
	Save(ctx context.Context, account *entity.Account) error
}

// AccountStore is the entry point to the per-role account tables.
type AccountStore interface {
	// ForRole returns the repository bound to the role's table.
	ForRole(role entity.Role) AccountRepository

	// EmailExists reports whether any role table contains the email. The
	// scan walks the tables in entity.AllRoles order and stops at the first
	// hit. It is a plain read with no lock or transaction, so two concurrent
	// registrations for the same email can both pass it.
	EmailExists(ctx context.Context, email string) (bool, error)
}
