package account

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deepakA18/stealth-address-solana/payment"
)

func TestSinglePaymentRoundTrip(t *testing.T) {
	alice, err := Generate(rand.Reader)
	require.NoError(t, err)

	pay, err := payment.New(rand.Reader, alice.MetaAddress())
	require.NoError(t, err)

	ok, err := alice.CheckViewTag(pay.EphemeralPubkey, pay.ViewTag)
	require.NoError(t, err)
	require.True(t, ok)

	expected, err := alice.ComputeExpectedAddress(pay.EphemeralPubkey)
	require.NoError(t, err)
	require.Equal(t, pay.StealthAddress, expected)

	kp, err := alice.DeriveStealthKeypair(pay.EphemeralPubkey)
	require.NoError(t, err)
	require.Equal(t, pay.StealthAddress, kp.PublicKey)
}

func TestSealOpenRoundTrip(t *testing.T) {
	alice, err := Generate(rand.Reader)
	require.NoError(t, err)

	passphrase := []byte("correct horse battery staple")
	bundle, err := alice.Seal(passphrase)
	require.NoError(t, err)

	reopened, err := Open(bundle, passphrase)
	require.NoError(t, err)
	require.Equal(t, alice.MetaAddress(), reopened.MetaAddress())

	pay, err := payment.New(rand.Reader, reopened.MetaAddress())
	require.NoError(t, err)
	kp, err := reopened.DeriveStealthKeypair(pay.EphemeralPubkey)
	require.NoError(t, err)
	require.Equal(t, pay.StealthAddress, kp.PublicKey)
}

func TestOpenRejectsWrongPassphrase(t *testing.T) {
	alice, err := Generate(rand.Reader)
	require.NoError(t, err)

	bundle, err := alice.Seal([]byte("right passphrase"))
	require.NoError(t, err)

	_, err = Open(bundle, []byte("wrong passphrase"))
	require.ErrorIs(t, err, ErrWrongPassphrase)
}

func TestOpenRejectsTamperedBundle(t *testing.T) {
	alice, err := Generate(rand.Reader)
	require.NoError(t, err)

	passphrase := []byte("correct horse battery staple")
	bundle, err := alice.Seal(passphrase)
	require.NoError(t, err)

	tampered := *bundle
	tampered.Ciphertext = tampered.Ciphertext[:len(tampered.Ciphertext)-2] + "AA"

	_, err = Open(&tampered, passphrase)
	require.ErrorIs(t, err, ErrWrongPassphrase)
}
