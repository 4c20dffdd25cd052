package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"

	"placement/internal/domain/service"

	"github.com/pkg/errors"
)

// resetTokenBytes is the entropy of a raw reset token; the hex encoding the
// user receives is twice this length.
const resetTokenBytes = 20

// resetTokenIssuer mints random reset tokens and digests them with SHA-256.
// Only the digest is stored, so a leaked accounts table does not yield
// redeemable tokens.
type resetTokenIssuer struct{}

// NewResetTokenIssuer is the constructor for resetTokenIssuer.
func NewResetTokenIssuer() service.ResetTokenIssuer {
	return &resetTokenIssuer{}
}

// Generate returns a fresh random token and its one-way digest.
func (i *resetTokenIssuer) Generate() (string, string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", errors.Wrap(err, "failed to generate reset token")
	}

	raw := hex.EncodeToString(buf)

	return raw, i.Digest(raw), nil
}

// Digest recomputes the SHA-256 hex digest of a raw token.
func (i *resetTokenIssuer) Digest(raw string) string {
	sum := sha256.Sum256([]byte(raw))

	return hex.EncodeToString(sum[:])
}
