package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("correct horse battery staple")
	require.NoError(t, err)

	// The stored hash never equals the plaintext
	assert.NotEqual(t, "correct horse battery staple", hash)

	// Round trip verifies
	assert.True(t, Verify("correct horse battery staple", hash))

	// Wrong password fails
	assert.False(t, Verify("wrong password", hash))
}

func TestHashIsSalted(t *testing.T) {
	h1, err := Hash("samepassword")
	require.NoError(t, err)
	h2, err := Hash("samepassword")
	require.NoError(t, err)

	// bcrypt salts, so two hashes of the same input differ
	assert.NotEqual(t, h1, h2)

	assert.True(t, Verify("samepassword", h1))
	assert.True(t, Verify("samepassword", h2))
}

func TestVerifyMalformedHash(t *testing.T) {
	assert.False(t, Verify("anything", "not-a-bcrypt-hash"))
	assert.False(t, Verify("anything", ""))
}

func TestValidatePassword(t *testing.T) {
	assert.False(t, ValidatePassword("short"))
	assert.False(t, ValidatePassword(""))
	assert.True(t, ValidatePassword("longenough"))
	assert.True(t, ValidatePassword("exactly8"))
}
