package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cheap parameters keep the tests fast; the scheme is the same.
var testArgonParams = argonParams{time: 1, memory: 1024, threads: 1, keyLen: 32}

func newTestEncryptor(t *testing.T, passphrase string) *aesEncryptor {
	t.Helper()
	e, err := newEncryptor(passphrase, nil, testArgonParams)
	require.NoError(t, err)
	return e
}

func TestEncryptor_RoundTrip(t *testing.T) {
	e := newTestEncryptor(t, "correct horse")
	plain := []byte(`{"title":"bank","login":"me"}`)

	blob, err := e.Encrypt(plain)
	require.NoError(t, err)
	assert.False(t, bytes.Contains(blob, plain))

	got, err := e.Decrypt(blob)
	require.NoError(t, err)
	assert.Equal(t, plain, got)
}

func TestEncryptor_FreshNonce(t *testing.T) {
	e := newTestEncryptor(t, "correct horse")

	a, err := e.Encrypt([]byte("same"))
	require.NoError(t, err)
	b, err := e.Encrypt([]byte("same"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestEncryptor_SameKeyAcrossInstances(t *testing.T) {
	a := newTestEncryptor(t, "shared")
	b := newTestEncryptor(t, "shared")
	assert.Equal(t, a.Signature(), b.Signature())

	blob, err := a.Encrypt([]byte("payload"))
	require.NoError(t, err)
	got, err := b.Decrypt(blob)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got)
}

func TestEncryptor_WrongKey(t *testing.T) {
	a := newTestEncryptor(t, "one")
	b := newTestEncryptor(t, "two")
	assert.NotEqual(t, a.Signature(), b.Signature())

	blob, err := a.Encrypt([]byte("payload"))
	require.NoError(t, err)
	_, err = b.Decrypt(blob)
	assert.ErrorIs(t, err, ErrDecryption)
}

func TestEncryptor_ShortBlob(t *testing.T) {
	e := newTestEncryptor(t, "k")
	_, err := e.Decrypt([]byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrDecryption)
}

func TestNewEncryptor_EmptyPassphrase(t *testing.T) {
	_, err := NewEncryptor("", nil)
	assert.ErrorIs(t, err, ErrEmptyPassphrase)
}

func TestNewEncryptorFromKey(t *testing.T) {
	_, err := NewEncryptorFromKey([]byte("short"))
	require.Error(t, err)

	e, err := NewEncryptorFromKey(bytes.Repeat([]byte{7}, 32))
	require.NoError(t, err)
	assert.Len(t, e.Signature(), 64)
}
