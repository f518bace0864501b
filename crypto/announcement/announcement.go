// Package announcement implements the canonical wire encoding of a
// stealth-payment announcement: the public record that lets a
// recipient discover a payment without revealing the sender-recipient
// link to anyone else.
package announcement

import (
	"encoding/json"
	"errors"

	"github.com/mr-tron/base58"
)

// CurrentVersion is the version this package writes. Decode accepts
// any version >= CurrentVersion that still carries the four named
// fields; callers MAY reject a higher version semantically.
const CurrentVersion = 1

// Tag is the required "t" discriminant for a stealth announcement.
const Tag = "STEALTH"

// ErrInvalidAnnouncement is a soft failure: the payload is not a
// stealth announcement (malformed JSON, wrong tag, bad Base58, or an
// out-of-range view tag). Callers scanning a mixed-memo stream should
// treat it as "skip this one", not as fatal.
var ErrInvalidAnnouncement = errors.New("announcement: not a stealth announcement")

// Announcement is the decoded, structured form of the wire record.
type Announcement struct {
	Version         int
	EphemeralPubkey [32]byte
	ViewTag         byte
	StealthAddress  [32]byte
}

type wire struct {
	V  int    `json:"v"`
	T  string `json:"t"`
	E  string `json:"e"`
	VT int    `json:"vt"`
	S  string `json:"s"`
}

// Encode serializes a to its canonical JSON wire form.
func Encode(a Announcement) ([]byte, error) {
	w := wire{
		V:  CurrentVersion,
		T:  Tag,
		E:  base58.Encode(a.EphemeralPubkey[:]),
		VT: int(a.ViewTag),
		S:  base58.Encode(a.StealthAddress[:]),
	}
	return json.Marshal(w)
}

// Decode parses a memo payload. Any structural problem is reported as
// ErrInvalidAnnouncement, never a different error type, so a scanner
// can uniformly treat decode failures as "not for me" rather than
// aborting the scan.
func Decode(raw []byte) (Announcement, error) {
	var w wire
	if err := json.Unmarshal(raw, &w); err != nil {
		return Announcement{}, ErrInvalidAnnouncement
	}
	if w.T != Tag {
		return Announcement{}, ErrInvalidAnnouncement
	}
	if w.V < CurrentVersion {
		return Announcement{}, ErrInvalidAnnouncement
	}
	if w.VT < 0 || w.VT > 255 {
		return Announcement{}, ErrInvalidAnnouncement
	}
	e, err := base58.Decode(w.E)
	if err != nil || len(e) != 32 {
		return Announcement{}, ErrInvalidAnnouncement
	}
	s, err := base58.Decode(w.S)
	if err != nil || len(s) != 32 {
		return Announcement{}, ErrInvalidAnnouncement
	}
	out := Announcement{Version: w.V, ViewTag: byte(w.VT)}
	copy(out.EphemeralPubkey[:], e)
	copy(out.StealthAddress[:], s)
	return out, nil
}
