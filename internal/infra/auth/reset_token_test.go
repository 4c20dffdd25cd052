package auth

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetTokenIssuer_Generate(t *testing.T) {
	issuer := NewResetTokenIssuer()

	raw, digest, err := issuer.Generate()
	require.NoError(t, err)

	assert.Len(t, raw, resetTokenBytes*2)
	_, err = hex.DecodeString(raw)
	assert.NoError(t, err)

	// The digest is derived from the raw token and never equals it.
	assert.Equal(t, issuer.Digest(raw), digest)
	assert.NotEqual(t, raw, digest)
	assert.Len(t, digest, 64)
}

func TestResetTokenIssuer_Generate_UniqueTokens(t *testing.T) {
	issuer := NewResetTokenIssuer()

	first, _, err := issuer.Generate()
	require.NoError(t, err)
	second, _, err := issuer.Generate()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestResetTokenIssuer_Digest_Deterministic(t *testing.T) {
	issuer := NewResetTokenIssuer()

	assert.Equal(t, issuer.Digest("token-a"), issuer.Digest("token-a"))
	assert.NotEqual(t, issuer.Digest("token-a"), issuer.Digest("token-b"))
}
