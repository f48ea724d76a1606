package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("Passw0rd!")
	require.NoError(t, err)
	assert.NotEqual(t, "Passw0rd!", hash)

	assert.True(t, CompareHashAndPassword(hash, "Passw0rd!"))
	assert.False(t, CompareHashAndPassword(hash, "passw0rd!"))
	assert.False(t, CompareHashAndPassword("not-a-hash", "Passw0rd!"))

	other, err := HashPassword("Passw0rd!")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other, "hashes must be salted")
}

func TestHashPassword_TooLong(t *testing.T) {
	_, err := HashPassword("A!" + string(make([]byte, MaxPasswordBytes)))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}
