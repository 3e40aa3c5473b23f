package service_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msomdec/postboard/internal/service"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	hasher := service.NewBcryptHasher(4)

	for _, secret := range []string{"pw123", "correct horse battery staple", "üñíçødé"} {
		digest, err := hasher.Hash(secret)
		require.NoError(t, err)

		assert.NotEqual(t, secret, digest)
		assert.True(t, hasher.Verify(secret, digest), "secret %q should verify", secret)
		assert.False(t, hasher.Verify(secret+"x", digest))
	}
}

func TestBcryptHasher_SaltedDigests(t *testing.T) {
	hasher := service.NewBcryptHasher(4)

	first, err := hasher.Hash("pw123")
	require.NoError(t, err)
	second, err := hasher.Hash("pw123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "digests should embed a random salt")
	assert.True(t, hasher.Verify("pw123", first))
	assert.True(t, hasher.Verify("pw123", second))
}

func TestBcryptHasher_MutatedDigest(t *testing.T) {
	hasher := service.NewBcryptHasher(4)

	digest, err := hasher.Hash("pw123")
	require.NoError(t, err)

	// Flip one character of the checksum (the last 31 characters).
	i := len(digest) - 5
	replacement := byte('a')
	if digest[i] == 'a' {
		replacement = 'b'
	}
	mutated := digest[:i] + string(replacement) + digest[i+1:]

	assert.False(t, hasher.Verify("pw123", mutated))
	assert.False(t, hasher.Verify("pw123", ""))
	assert.False(t, hasher.Verify("pw123", "not-a-bcrypt-digest"))
	assert.False(t, hasher.Verify("pw123", strings.Repeat("$", 60)))
}

func TestBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	hasher := service.NewBcryptHasher(1)

	digest, err := hasher.Hash("pw123")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(digest, "$2a$10$"), "expected default cost, got %s", digest[:7])
}
