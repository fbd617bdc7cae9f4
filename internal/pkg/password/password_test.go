//go:build unit

package password_test

import (
	"strings"
	"testing"

	"parkspot/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher(t *testing.T) {
	h := password.NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	require.NoError(t, h.Compare(hash, "password123"))
	require.ErrorIs(t, h.Compare(hash, "wrong-password"), password.ErrComparisonFailed)

	_, err = h.Hash("")
	require.ErrorIs(t, err, password.ErrInvalidPassword)

	_, err = h.Hash(strings.Repeat("a", 73))
	require.ErrorIs(t, err, password.ErrPasswordTooLong)
}
