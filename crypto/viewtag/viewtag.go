// Package viewtag implements the constant-cost view-tag pre-filter
// that lets a scanner discard most announcements without doing a full
// stealth-address derivation: spec.md estimates a ~256x reduction in
// scan cost.
package viewtag

import (
	"crypto/sha256"

	"github.com/deepakA18/stealth-address-solana/crypto/bridge"
)

// Check performs the shared-secret computation (viewing private key,
// ephemeral public key) and reports whether its view tag matches. A
// true result is necessary but not sufficient: the caller MUST follow
// it with a full address recomputation and equality check before
// treating the announcement as a real payment (spec.md 4.3).
//
// The expected false-positive rate for a non-matching announcement is
// 1/256.
func Check(viewingPriv [32]byte, ephemeralPub [32]byte, wantTag byte) (bool, error) {
	gotTag, err := Compute(viewingPriv, ephemeralPub)
	if err != nil {
		return false, err
	}
	return gotTag == wantTag, nil
}

// Compute derives the view tag for (viewingPriv, ephemeralPub) without
// comparing it to a claimed value, for callers that want the raw byte.
func Compute(viewingPriv [32]byte, ephemeralPub [32]byte) (byte, error) {
	vX := bridge.SeedToX25519Scalar(viewingPriv)
	defer bridge.Zero(vX[:])
	eX, err := bridge.EdwardsPubkeyToX25519(ephemeralPub)
	if err != nil {
		return 0, err
	}
	ss, err := bridge.X25519(vX, eX)
	if err != nil {
		return 0, err
	}
	defer bridge.Zero(ss[:])
	tweak := sha256.Sum256(ss[:])
	defer bridge.Zero(tweak[:])
	return tweak[0], nil
}
