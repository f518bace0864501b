package payment

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deepakA18/stealth-address-solana/crypto/announcement"
	"github.com/deepakA18/stealth-address-solana/crypto/stealth"
)

func TestNewProducesValidStealthAddress(t *testing.T) {
	acct, err := stealth.Generate(rand.Reader)
	require.NoError(t, err)

	p, err := New(rand.Reader, acct.MetaAddress)
	require.NoError(t, err)

	expected, err := stealth.ComputeExpectedAddress(acct.ViewingPrivkey, acct.MetaAddress.SpendingPubkey, p.EphemeralPubkey)
	require.NoError(t, err)
	require.Equal(t, p.StealthAddress, expected)
}

func TestAnnouncementRoundTrip(t *testing.T) {
	acct, err := stealth.Generate(rand.Reader)
	require.NoError(t, err)

	p, err := New(rand.Reader, acct.MetaAddress)
	require.NoError(t, err)

	a := p.Announcement()
	require.Equal(t, announcement.CurrentVersion, a.Version)
	require.Equal(t, p.EphemeralPubkey, a.EphemeralPubkey)
	require.Equal(t, p.ViewTag, a.ViewTag)
	require.Equal(t, p.StealthAddress, a.StealthAddress)
}

func TestNewNeverRepeatsEphemeralKey(t *testing.T) {
	acct, err := stealth.Generate(rand.Reader)
	require.NoError(t, err)

	p1, err := New(rand.Reader, acct.MetaAddress)
	require.NoError(t, err)
	p2, err := New(rand.Reader, acct.MetaAddress)
	require.NoError(t, err)

	require.NotEqual(t, p1.EphemeralPubkey, p2.EphemeralPubkey)
	require.NotEqual(t, p1.StealthAddress, p2.StealthAddress)
}
