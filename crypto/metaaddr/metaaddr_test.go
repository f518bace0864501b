package metaaddr

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	var m MetaAddress
	_, err := rand.Read(m.ViewingPubkey[:])
	require.NoError(t, err)
	_, err = rand.Read(m.SpendingPubkey[:])
	require.NoError(t, err)

	s := m.String()
	decoded, err := Decode(s)
	require.NoError(t, err)
	require.Equal(t, m, decoded)
}

func TestDecodeRejectsMalformedStrings(t *testing.T) {
	cases := []string{
		"invalid",
		"st:sol:",
		"st:eth:ABC",
	}
	for _, c := range cases {
		_, err := Decode(c)
		require.ErrorIs(t, err, ErrInvalidEncoding, "input %q", c)
	}
}

func TestDecodeRejectsWrongLength(t *testing.T) {
	_, err := Decode(Prefix + "2NEpo7TZRRrLZSi2U")
	require.ErrorIs(t, err, ErrInvalidEncoding)
}
