package aes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	plaintext := []byte("the stealth spending key lives here")
	passphrase := []byte("a strong passphrase")

	ct, err := Encrypt(plaintext, passphrase)
	require.NoError(t, err)

	got, err := Decrypt(ct, passphrase)
	require.NoError(t, err)
	require.Equal(t, plaintext, got)
}

func TestDecryptFailsWithWrongPassphrase(t *testing.T) {
	ct, err := Encrypt([]byte("secret"), []byte("right"))
	require.NoError(t, err)

	_, err = Decrypt(ct, []byte("wrong"))
	require.Error(t, err)
}

func TestEncryptIsNondeterministic(t *testing.T) {
	plaintext := []byte("same plaintext twice")
	passphrase := []byte("same passphrase")

	ct1, err := Encrypt(plaintext, passphrase)
	require.NoError(t, err)
	ct2, err := Encrypt(plaintext, passphrase)
	require.NoError(t, err)

	require.NotEqual(t, ct1, ct2)
}

func TestDecryptRejectsShortCiphertext(t *testing.T) {
	_, err := Decrypt("YQ==", []byte("passphrase"))
	require.ErrorIs(t, err, ErrShortCiphertext)
}
