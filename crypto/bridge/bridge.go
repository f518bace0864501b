// Package bridge implements the Ed25519<->X25519 conversions and scalar
// arithmetic that the stealth-address derivation is built on. It wraps
// filippo.io/edwards25519 for point and scalar operations mod the
// Ed25519 group order L, and golang.org/x/crypto/curve25519 for the
// actual X25519 Diffie-Hellman step.
package bridge

import (
	"bytes"
	"crypto/sha512"
	"errors"

	"filippo.io/edwards25519"
	"golang.org/x/crypto/curve25519"
)

// ErrInvalidPoint is returned whenever 32 bytes fail to decompress to a
// valid, non-identity, non-small-order Ed25519 point.
var ErrInvalidPoint = errors.New("bridge: invalid point encoding")

// DecompressPoint parses 32 bytes as a compressed Ed25519 point and
// rejects non-canonical encodings, the identity, and any point in the
// small (cofactor-8) subgroup. Every other canonically encoded point is
// accepted, including points with a small-order component outside the
// prime-order subgroup. This is the validation applied to every public
// point input (meta-address keys, ephemeral keys).
func DecompressPoint(b []byte) (*edwards25519.Point, error) {
	if len(b) != 32 {
		return nil, ErrInvalidPoint
	}
	p, err := new(edwards25519.Point).SetBytes(b)
	if err != nil {
		return nil, ErrInvalidPoint
	}
	// SetBytes also accepts non-canonical encodings; only the canonical
	// re-encoding of the decoded point is allowed through.
	if !bytes.Equal(p.Bytes(), b) {
		return nil, ErrInvalidPoint
	}
	if p.Equal(edwards25519.NewIdentityPoint()) == 1 {
		return nil, ErrInvalidPoint
	}
	if isSmallOrder(p) {
		return nil, ErrInvalidPoint
	}
	return p, nil
}

// isSmallOrder reports whether p has order dividing the curve's cofactor
// (8): multiplying by 8 collapses it to the identity.
func isSmallOrder(p *edwards25519.Point) bool {
	eight := scalarFromSmallInt(8)
	r := new(edwards25519.Point).ScalarMult(eight, p)
	return r.Equal(edwards25519.NewIdentityPoint()) == 1
}

func scalarFromSmallInt(v byte) *edwards25519.Scalar {
	var le [32]byte
	le[0] = v
	s, err := new(edwards25519.Scalar).SetCanonicalBytes(le[:])
	if err != nil {
		// v is always far smaller than L, this cannot fail.
		panic(err)
	}
	return s
}

// CompressPoint returns the canonical 32-byte encoding of p.
func CompressPoint(p *edwards25519.Point) [32]byte {
	var out [32]byte
	copy(out[:], p.Bytes())
	return out
}

// BasepointScalarMult returns s*B, where B is the Ed25519 basepoint.
func BasepointScalarMult(s *edwards25519.Scalar) *edwards25519.Point {
	return new(edwards25519.Point).ScalarBaseMult(s)
}

// AddPoints returns a+b.
func AddPoints(a, b *edwards25519.Point) *edwards25519.Point {
	return new(edwards25519.Point).Add(a, b)
}

// ClampedScalarFromSeed hashes seed with SHA-512, takes the low 32 bytes
// and applies RFC 8032 clamping, then reduces modulo L. This is the
// spending/viewing scalar derivation used both for standard Ed25519
// public-key generation and for the stealth tweak's s_spend term; it is
// intentionally little-endian throughout.
func ClampedScalarFromSeed(seed [32]byte) *edwards25519.Scalar {
	h := sha512.Sum512(seed[:])
	defer Zero(h[:])
	s, err := new(edwards25519.Scalar).SetBytesWithClamping(h[:32])
	if err != nil {
		// SetBytesWithClamping only fails on wrong input length.
		panic(err)
	}
	return s
}

// SeedToX25519Scalar derives the raw (unreduced) clamped X25519 private
// scalar from an Ed25519 seed, matching the clamping applied when the
// corresponding Ed25519 public key was produced. This ensures sender-
// and receiver-computed ECDH outputs agree (spec.md 4.1).
func SeedToX25519Scalar(seed [32]byte) [32]byte {
	h := sha512.Sum512(seed[:])
	defer Zero(h[:])
	var out [32]byte
	copy(out[:], h[:32])
	out[0] &= 248
	out[31] &= 127
	out[31] |= 64
	return out
}

// ScalarFromBigEndianHash reduces a 32-byte big-endian hash output modulo
// L, producing the tweak scalar. The tweak is computed big-endian per the
// EIP-5564-style convention; Ed25519 scalars are otherwise little-endian,
// so the conversion centralizes the one place the two conventions meet.
func ScalarFromBigEndianHash(h [32]byte) *edwards25519.Scalar {
	var le [32]byte
	for i := 0; i < 32; i++ {
		le[i] = h[31-i]
	}
	var wide [64]byte
	copy(wide[:32], le[:])
	s, err := new(edwards25519.Scalar).SetUniformBytes(wide[:])
	if err != nil {
		// SetUniformBytes only fails on wrong input length (64 here, fixed).
		panic(err)
	}
	return s
}

// X25519 performs the Curve25519 Diffie-Hellman scalar multiplication.
func X25519(scalar, point [32]byte) ([32]byte, error) {
	out, err := curve25519.X25519(scalar[:], point[:])
	var result [32]byte
	if err != nil {
		return result, err
	}
	copy(result[:], out)
	return result, nil
}

// EdwardsPubkeyToX25519 converts an Ed25519 public key to its X25519
// (Montgomery u-coordinate) form via the curve's birational map. The
// input is validated through DecompressPoint first, so identity and
// small-order keys are rejected before the point is re-encoded.
func EdwardsPubkeyToX25519(pub [32]byte) ([32]byte, error) {
	p, err := DecompressPoint(pub[:])
	if err != nil {
		return [32]byte{}, err
	}
	var out [32]byte
	copy(out[:], p.BytesMontgomery())
	return out, nil
}

// Zero overwrites b with zeroes. It is used on the secret byte buffers
// (ephemeral seeds, X25519 scalars, shared secrets, tweaks, hash outputs)
// once they are no longer needed, per spec.md 5's secret-hygiene
// requirement. It cannot reach values held in an edwards25519.Scalar or
// in a Go string; those are left for the garbage collector.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
