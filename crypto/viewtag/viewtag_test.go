package viewtag

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deepakA18/stealth-address-solana/crypto/stealth"
)

// View-tag soundness: a tag computed for this recipient's own
// (viewingPriv, ephemeralPub) pair always checks out. The false-positive
// rate over unrelated pairs is checked by TestCheckFalsePositiveRate.
func TestCheckSoundness(t *testing.T) {
	acct, err := stealth.Generate(rand.Reader)
	require.NoError(t, err)

	_, ephemeral, tag, err := stealth.ComputeStealthAddress(rand.Reader, acct.MetaAddress)
	require.NoError(t, err)

	ok, err := Check(acct.ViewingPrivkey, ephemeral, tag)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestCheckFalsePositiveRate(t *testing.T) {
	acct, err := stealth.Generate(rand.Reader)
	require.NoError(t, err)

	const n = 10000
	falsePositives := 0
	for i := 0; i < n; i++ {
		other, err := stealth.Generate(rand.Reader)
		require.NoError(t, err)
		_, ephemeral, tag, err := stealth.ComputeStealthAddress(rand.Reader, other.MetaAddress)
		require.NoError(t, err)

		ok, err := Check(acct.ViewingPrivkey, ephemeral, tag)
		require.NoError(t, err)
		if ok {
			falsePositives++
		}
	}

	// Expected count is n/256 ~= 39 with sigma = sqrt(n * 1/256 * 255/256)
	// ~= 6.2; the bound is the upper edge of a ~3 sigma band, with sigma
	// rounded up to 7.
	require.Less(t, falsePositives, n/256+3*7)
}
