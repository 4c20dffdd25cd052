package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountStore_EmailExists_EmptyEmailNeverCollides(t *testing.T) {
	// The guard must answer before any table is consulted; a nil handle
	// panics if the scan runs.
	store := NewAccountStore(nil)

	exists, err := store.EmailExists(context.Background(), "")

	require.NoError(t, err)
	assert.False(t, exists)
}
