package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pw")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-pw", hash)

	assert.True(t, CompareHashAndPassword(hash, "s3cret-pw"))
	assert.False(t, CompareHashAndPassword(hash, "wrong"))
	assert.False(t, CompareHashAndPassword("", "s3cret-pw"))
}

func TestBcryptHasher(t *testing.T) {
	h := BcryptHasher{}
	hash, err := h.Hash("pw123456")
	require.NoError(t, err)
	assert.True(t, h.Verify(hash, "pw123456"))
	assert.False(t, h.Verify(hash, "pw654321"))
}
