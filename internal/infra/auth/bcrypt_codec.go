// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"placement/config"
	"placement/internal/domain/service"
)

// bcryptPrefix marks a stored credential as a bcrypt hash ($2a$, $2b$, ...).
const bcryptPrefix = "$2"

// bcryptCodec is a concrete implementation of the PasswordCodec interface
// using bcrypt, with a plaintext fallback for rows that predate hashing.
type bcryptCodec struct {
	cost int
}

// NewBcryptCodec is the constructor for bcryptCodec.
// It returns the implementation as a service.PasswordCodec interface.
func NewBcryptCodec(cfg *config.Config) service.PasswordCodec {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	return &bcryptCodec{cost: cost}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (c *bcryptCodec) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), c.cost)
	return string(bytes), err
}

// Verify compares a plaintext password with the stored credential.
//
// Credentials carrying the bcrypt marker are checked with a bcrypt compare.
// Anything else is treated as a legacy plaintext row and compared byte for
// byte in constant time. The fallback is a migration shim carried over from
// the source system, not a bug: dropping it would lock out every account
// whose password was stored before hashing was introduced.
func (c *bcryptCodec) Verify(password, stored string) bool {
	if strings.HasPrefix(stored, bcryptPrefix) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}

	if stored == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
}
