package service

// ResetTokenIssuer mints opaque password-reset tokens. Only the digest is
// ever persisted; the raw value travels to the user exactly once.
type ResetTokenIssuer interface {
	// Generate returns a fresh random token and its one-way digest.
	Generate() (raw string, digest string, err error)

	// Digest recomputes the one-way digest of a raw token, for redemption
	// lookups.
	Digest(raw string) string
}
