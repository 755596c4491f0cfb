package cryptox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	material := []byte("keyfile material")
	salt := []byte("0123456789abcdef")

	a := DeriveKey(material, salt)
	b := DeriveKey(material, salt)

	require.Len(t, a, 32)
	assert.Equal(t, a, b)

	c := DeriveKey(material, []byte("another salt----"))
	assert.NotEqual(t, a, c)
}

func TestSealOpen_RoundTrip(t *testing.T) {
	key := DeriveKey([]byte("material"), []byte("salt"))
	plaintext := []byte("super-secret-api-key")

	ciphertext, nonce, err := Seal(plaintext, key)
	require.NoError(t, err)
	require.Len(t, nonce, 12)
	require.NotEqual(t, plaintext, ciphertext)

	got, err := Open(ciphertext, nonce, key)
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)
}

func TestOpen_WrongKeyFails(t *testing.T) {
	key := DeriveKey([]byte("material"), []byte("salt"))
	ciphertext, nonce, err := Seal([]byte("payload"), key)
	require.NoError(t, err)

	other := DeriveKey([]byte("other"), []byte("salt"))
	_, err = Open(ciphertext, nonce, other)
	require.Error(t, err)
}

func TestSeal_BadKeyLength(t *testing.T) {
	_, _, err := Seal([]byte("payload"), []byte("short"))
	require.Error(t, err)
}

func TestOpen_TamperedCiphertext(t *testing.T) {
	key := DeriveKey([]byte("material"), []byte("salt"))
	ciphertext, nonce, err := Seal([]byte("payload"), key)
	require.NoError(t, err)

	ciphertext[0] ^= 0xff
	_, err = Open(ciphertext, nonce, key)
	require.Error(t, err)
}
