// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordCodec defines the interface for credential hashing and verification.
// This abstracts the underlying hashing algorithm (bcrypt), keeping the domain pure.
type PasswordCodec interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Verify compares a plaintext password with a stored credential.
	// Implementations must support both hashed credentials and the legacy
	// plaintext rows that predate hashing.
	Verify(password, stored string) bool
}
