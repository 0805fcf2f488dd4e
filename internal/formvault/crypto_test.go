package formvault

import (
	"crypto/rand"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey(t *testing.T) string {
	t.Helper()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return base64.StdEncoding.EncodeToString(key)
}

func TestCipherRoundTrip(t *testing.T) {
	c, err := NewCipher(testKey(t))
	require.NoError(t, err)

	sealed, err := c.Encrypt("123-45-6789")
	require.NoError(t, err)
	assert.NotEqual(t, "123-45-6789", sealed)

	plain, err := c.Decrypt(sealed)
	require.NoError(t, err)
	assert.Equal(t, "123-45-6789", plain)
}

func TestCipherNonDeterministicNonce(t *testing.T) {
	c, err := NewCipher(testKey(t))
	require.NoError(t, err)

	a, err := c.Encrypt("123-45-6789")
	require.NoError(t, err)
	b, err := c.Encrypt("123-45-6789")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestCipherWrongKeyFails(t *testing.T) {
	c1, err := NewCipher(testKey(t))
	require.NoError(t, err)
	c2, err := NewCipher(testKey(t))
	require.NoError(t, err)

	sealed, err := c1.Encrypt("123-45-6789")
	require.NoError(t, err)

	_, err = c2.Decrypt(sealed)
	assert.Error(t, err)
}

func TestNewCipherRejectsBadKey(t *testing.T) {
	_, err := NewCipher("not base64!!!")
	assert.Error(t, err)

	short := base64.StdEncoding.EncodeToString([]byte("too short"))
	_, err = NewCipher(short)
	assert.Error(t, err)
}

func TestEphemeralCipherRoundTrip(t *testing.T) {
	c, err := NewEphemeralCipher()
	require.NoError(t, err)

	sealed, err := c.Encrypt("987-65-4321")
	require.NoError(t, err)
	plain, err := c.Decrypt(sealed)
	require.NoError(t, err)
	assert.Equal(t, "987-65-4321", plain)
}
