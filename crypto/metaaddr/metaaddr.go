// Package metaaddr implements the canonical textual encoding of a
// stealth meta-address: the public (viewingPubkey, spendingPubkey)
// pair a recipient publishes once and reuses for every incoming
// payment.
package metaaddr

import (
	"errors"
	"strings"

	"github.com/mr-tron/base58"
)

// Prefix is the literal meta-address string prefix.
const Prefix = "st:sol:"

// ErrInvalidEncoding is returned for any meta-address string that is
// missing the prefix, not valid Base58, or does not decode to exactly
// 64 bytes.
var ErrInvalidEncoding = errors.New("metaaddr: invalid encoding")

// MetaAddress is the public 64-byte (viewingPubkey, spendingPubkey)
// pair. Decoding does not verify that either half is a valid
// non-identity Ed25519 point; that check is the caller's
// responsibility once the keys are put to cryptographic use.
type MetaAddress struct {
	ViewingPubkey  [32]byte
	SpendingPubkey [32]byte
}

// String returns the canonical "st:sol:<base58>" encoding.
func (m MetaAddress) String() string {
	var buf [64]byte
	copy(buf[:32], m.ViewingPubkey[:])
	copy(buf[32:], m.SpendingPubkey[:])
	return Prefix + base58.Encode(buf[:])
}

// Decode parses a meta-address string. It rejects a missing prefix,
// a non-Base58 body, and a decoded length other than 64 bytes.
func Decode(s string) (MetaAddress, error) {
	if !strings.HasPrefix(s, Prefix) {
		return MetaAddress{}, ErrInvalidEncoding
	}
	body := s[len(Prefix):]
	if body == "" {
		return MetaAddress{}, ErrInvalidEncoding
	}
	raw, err := base58.Decode(body)
	if err != nil {
		return MetaAddress{}, ErrInvalidEncoding
	}
	if len(raw) != 64 {
		return MetaAddress{}, ErrInvalidEncoding
	}
	var m MetaAddress
	copy(m.ViewingPubkey[:], raw[:32])
	copy(m.SpendingPubkey[:], raw[32:])
	return m, nil
}
