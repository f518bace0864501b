// Package stealth implements the EIP-5564-style additive-tweak
// derivation at the heart of the stealth-address scheme: generating
// recipient key bundles, computing a one-time stealth address for a
// payment, and deriving the scalar-form spending key that recovers it.
package stealth

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"io"

	"filippo.io/edwards25519"

	"github.com/deepakA18/stealth-address-solana/crypto/bridge"
	"github.com/deepakA18/stealth-address-solana/crypto/metaaddr"
)

// ErrInvalidPoint is returned when a public key supplied by a caller
// (an ephemeral key, or either half of a meta-address) does not
// decompress to a valid, non-identity, non-small-order Ed25519 point.
var ErrInvalidPoint = bridge.ErrInvalidPoint

// ErrRngFailure is returned when the injected RNG refuses to deliver
// bytes. It is fatal and always propagated unchanged.
var ErrRngFailure = errors.New("stealth: rng failure")

// Keys is the recipient's private stealth-key bundle: two independent
// 32-byte seeds and the meta-address they derive.
type Keys struct {
	ViewingPrivkey  [32]byte
	SpendingPrivkey [32]byte
	MetaAddress     metaaddr.MetaAddress
}

// Keypair is a derived scalar-form stealth signing key: the scalar
// itself (not a seed - spec.md 3 explains why no seed can produce it)
// plus its Ed25519 public key.
type Keypair struct {
	Scalar    *edwards25519.Scalar
	PublicKey [32]byte
}

// edPublicKey computes the canonical Ed25519 public key for seed:
// clamp(SHA-512(seed)[0:32]) * B.
func edPublicKey(seed [32]byte) [32]byte {
	s := bridge.ClampedScalarFromSeed(seed)
	p := bridge.BasepointScalarMult(s)
	return bridge.CompressPoint(p)
}

// PublicKeyFromSeed exposes edPublicKey for callers (such as a
// persisted-bundle loader) that must reconstruct a meta-address from a
// seed without going through Generate.
func PublicKeyFromSeed(seed [32]byte) [32]byte {
	return edPublicKey(seed)
}

// Generate draws two independent 32-byte seeds from r and computes
// their meta-address. Pass crypto/rand.Reader in production; a
// deterministic reader may be injected for tests (spec.md 6).
func Generate(r io.Reader) (*Keys, error) {
	if r == nil {
		r = rand.Reader
	}
	var viewing, spending [32]byte
	if _, err := io.ReadFull(r, viewing[:]); err != nil {
		return nil, ErrRngFailure
	}
	if _, err := io.ReadFull(r, spending[:]); err != nil {
		return nil, ErrRngFailure
	}
	return &Keys{
		ViewingPrivkey:  viewing,
		SpendingPrivkey: spending,
		MetaAddress: metaaddr.MetaAddress{
			ViewingPubkey:  edPublicKey(viewing),
			SpendingPubkey: edPublicKey(spending),
		},
	}, nil
}

// sharedSecret runs the X25519 ECDH step shared by the sender and
// receiver sides: (ourSeed, theirPub) -> 32-byte secret. Both call
// sites feed it the same two logical keys (the ephemeral and viewing
// key pair), computed from whichever side holds the private half.
func sharedSecret(ourSeed [32]byte, theirPub [32]byte) ([32]byte, error) {
	ourX := bridge.SeedToX25519Scalar(ourSeed)
	defer bridge.Zero(ourX[:])
	theirX, err := bridge.EdwardsPubkeyToX25519(theirPub)
	if err != nil {
		return [32]byte{}, err
	}
	return bridge.X25519(ourX, theirX)
}

func tweakAndViewTag(ss [32]byte) (*edwards25519.Scalar, byte) {
	tweak := sha256.Sum256(ss[:])
	defer bridge.Zero(tweak[:])
	t := bridge.ScalarFromBigEndianHash(tweak)
	return t, tweak[0]
}

// ComputeStealthAddress is the sender-side operation (spec.md 4.2):
// generate a fresh ephemeral keypair, ECDH it against the recipient's
// viewing key, derive the tweak and view tag, and add the tweak to the
// recipient's spending public key. The ephemeral private key is used
// only within this call and is never returned or retained.
func ComputeStealthAddress(r io.Reader, meta metaaddr.MetaAddress) (stealthAddress [32]byte, ephemeralPub [32]byte, viewTag byte, err error) {
	if r == nil {
		r = rand.Reader
	}
	var ephemeralSeed [32]byte
	if _, err = io.ReadFull(r, ephemeralSeed[:]); err != nil {
		return [32]byte{}, [32]byte{}, 0, ErrRngFailure
	}
	defer bridge.Zero(ephemeralSeed[:])

	ephemeralPub = edPublicKey(ephemeralSeed)

	ss, err := sharedSecret(ephemeralSeed, meta.ViewingPubkey)
	if err != nil {
		return [32]byte{}, [32]byte{}, 0, err
	}
	defer bridge.Zero(ss[:])

	t, vt := tweakAndViewTag(ss)

	spendPoint, err := bridge.DecompressPoint(meta.SpendingPubkey[:])
	if err != nil {
		return [32]byte{}, [32]byte{}, 0, err
	}
	tweakPoint := bridge.BasepointScalarMult(t)
	stealthPoint := bridge.AddPoints(spendPoint, tweakPoint)

	return bridge.CompressPoint(stealthPoint), ephemeralPub, vt, nil
}

// ComputeExpectedAddress is the receiver-side half of derive that only
// needs the viewing private key and the spending *public* key: it
// recomputes the stealth address without producing a signing scalar.
// Scanner uses this for the mandatory address-equality check that must
// follow every view-tag match (spec.md 4.3, 9).
func ComputeExpectedAddress(viewingPriv [32]byte, spendingPub [32]byte, ephemeralPub [32]byte) ([32]byte, error) {
	ss, err := sharedSecret(viewingPriv, ephemeralPub)
	if err != nil {
		return [32]byte{}, err
	}
	defer bridge.Zero(ss[:])

	t, _ := tweakAndViewTag(ss)

	spendPoint, err := bridge.DecompressPoint(spendingPub[:])
	if err != nil {
		return [32]byte{}, err
	}
	tweakPoint := bridge.BasepointScalarMult(t)
	stealthPoint := bridge.AddPoints(spendPoint, tweakPoint)
	return bridge.CompressPoint(stealthPoint), nil
}

// DeriveStealthKeypair is the full receiver-side operation (spec.md
// 4.2): it recomputes the shared secret from the viewing private key
// and the announced ephemeral public key, then adds the tweak scalar
// to the clamped spending scalar to recover the one-time signing key.
//
// For any (meta, ephemeral) produced by ComputeStealthAddress from the
// same meta-address, the returned PublicKey equals the sender-computed
// stealth address byte for byte.
func DeriveStealthKeypair(viewingPriv [32]byte, spendingPriv [32]byte, ephemeralPub [32]byte) (*Keypair, error) {
	ss, err := sharedSecret(viewingPriv, ephemeralPub)
	if err != nil {
		return nil, err
	}
	defer bridge.Zero(ss[:])

	t, _ := tweakAndViewTag(ss)

	sSpend := bridge.ClampedScalarFromSeed(spendingPriv)
	sStealth := new(edwards25519.Scalar).Add(sSpend, t)

	pub := bridge.BasepointScalarMult(sStealth)
	return &Keypair{Scalar: sStealth, PublicKey: bridge.CompressPoint(pub)}, nil
}

// Sign produces a 64-byte Ed25519 signature over message using the
// scalar-form key kp, verifiable under the ordinary Ed25519 rule keyed
// by kp.PublicKey (spec.md 4.2, 8 property 4). The nonce is the
// deterministic scheme spec.md recommends: r = SHA-512(prefix||M) mod
// L, prefix = SHA-512(le_bytes(s))[32:64]. This never depends on a
// seed, since s_stealth has none.
func Sign(kp *Keypair, message []byte) [64]byte {
	sBytes := kp.Scalar.Bytes()
	defer bridge.Zero(sBytes)
	seedHash := sha512.Sum512(sBytes)
	prefix := seedHash[32:64]
	defer bridge.Zero(seedHash[:])

	rInput := make([]byte, 0, len(prefix)+len(message))
	rInput = append(rInput, prefix...)
	rInput = append(rInput, message...)
	defer bridge.Zero(rInput)
	rHash := sha512.Sum512(rInput)
	defer bridge.Zero(rHash[:])
	rScalar, err := new(edwards25519.Scalar).SetUniformBytes(rHash[:])
	if err != nil {
		panic(err)
	}

	R := bridge.BasepointScalarMult(rScalar)
	Rb := bridge.CompressPoint(R)

	kInput := make([]byte, 0, 32+32+len(message))
	kInput = append(kInput, Rb[:]...)
	kInput = append(kInput, kp.PublicKey[:]...)
	kInput = append(kInput, message...)
	kHash := sha512.Sum512(kInput)
	kScalar, err := new(edwards25519.Scalar).SetUniformBytes(kHash[:])
	if err != nil {
		panic(err)
	}

	S := new(edwards25519.Scalar).MultiplyAdd(kScalar, kp.Scalar, rScalar)

	var sig [64]byte
	copy(sig[:32], Rb[:])
	copy(sig[32:], S.Bytes())
	return sig
}

// Verify checks sig over message against pub using the standard
// Ed25519 verification rule. It exists so callers never need to reach
// for crypto/ed25519 directly when validating a stealth signature.
func Verify(pub [32]byte, message []byte, sig [64]byte) bool {
	return ed25519.Verify(ed25519.PublicKey(pub[:]), message, sig[:])
}
