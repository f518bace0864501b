// Package payment is the sender-facing façade: given a recipient's
// meta-address, it eagerly computes the one-time stealth address for a
// single payment and packages the result as a publishable
// announcement.
package payment

import (
	"crypto/rand"
	"io"

	"github.com/deepakA18/stealth-address-solana/crypto/announcement"
	"github.com/deepakA18/stealth-address-solana/crypto/metaaddr"
	"github.com/deepakA18/stealth-address-solana/crypto/stealth"
)

// Payment holds the sender-side outputs of a single stealth-address
// computation: the destination to actually pay, and the two public
// values that must be announced so the recipient can find it.
type Payment struct {
	StealthAddress  [32]byte
	EphemeralPubkey [32]byte
	ViewTag         byte
}

// New computes a fresh Payment for meta. Pass crypto/rand.Reader in
// production; a deterministic reader may be injected in tests. Each
// call draws its own ephemeral key, so two calls against the same meta
// address never collide or reveal a link to each other.
func New(r io.Reader, meta metaaddr.MetaAddress) (*Payment, error) {
	if r == nil {
		r = rand.Reader
	}
	addr, ephemeral, tag, err := stealth.ComputeStealthAddress(r, meta)
	if err != nil {
		return nil, err
	}
	return &Payment{StealthAddress: addr, EphemeralPubkey: ephemeral, ViewTag: tag}, nil
}

// Announcement returns the public record a sender publishes so the
// recipient (and nobody else) can later discover this payment.
func (p *Payment) Announcement() announcement.Announcement {
	return announcement.Announcement{
		Version:         announcement.CurrentVersion,
		EphemeralPubkey: p.EphemeralPubkey,
		ViewTag:         p.ViewTag,
		StealthAddress:  p.StealthAddress,
	}
}
