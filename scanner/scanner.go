// Package scanner drives the receiver-side discovery loop: feed it a
// stream of announcements and a recipient's key operations (view-tag
// check, address recomputation, key derivation), and it reports the
// ones that are genuinely addressed to that recipient.
package scanner

import (
	"context"

	"github.com/deepakA18/stealth-address-solana/crypto/announcement"
	"github.com/deepakA18/stealth-address-solana/crypto/stealth"
)

// DiscoveredPayment is a confirmed incoming payment: the view tag
// matched, the full stealth-address recomputation matched too, and the
// one-time signing key for it has been derived and is ready to spend.
type DiscoveredPayment struct {
	Announcement announcement.Announcement
	Keypair      *stealth.Keypair
	Balance      uint64
	BalanceErr   error
}

// BalanceFunc looks up the on-chain balance of a discovered stealth
// address. It is injected rather than implemented here because
// balance lookup requires a chain connection this module never opens.
type BalanceFunc func(ctx context.Context, stealthAddress [32]byte) (uint64, error)

// ComputeExpected recomputes the full stealth address a recipient
// would own for a given ephemeral key. Scan takes this as a function
// value (normally account.(*Account).ComputeExpectedAddress) instead
// of the raw key material, so callers never have to hand their
// spending private key to this package.
type ComputeExpected func(ephemeralPub [32]byte) ([32]byte, error)

// CheckViewTag is the fast pre-filter (normally
// account.(*Account).CheckViewTag). Scan takes it as a function value
// for the same reason as ComputeExpected: the viewing private key
// never needs to leave the account package.
type CheckViewTag func(ephemeralPub [32]byte, viewTag byte) (bool, error)

// DeriveKeypair recovers the one-time signing key for a confirmed
// payment (normally account.(*Account).DeriveStealthKeypair). Like
// ComputeExpected it takes only the ephemeral key, so the spending
// private key also never needs to leave the account package.
type DeriveKeypair func(ephemeralPub [32]byte) (*stealth.Keypair, error)

// Scan reads announcements from in, and for each one: checks its view
// tag via checkViewTag, recomputes the full stealth address via
// computeExpected, and on a match derives the spending key via
// deriveKeypair. Every match is verified and keyed this way before
// being reported (the equality check is never skipped). Results are
// delivered on the returned channel, which is closed when in is closed
// or ctx is canceled.
func Scan(
	ctx context.Context,
	checkViewTag CheckViewTag,
	computeExpected ComputeExpected,
	deriveKeypair DeriveKeypair,
	balance BalanceFunc,
	in <-chan announcement.Announcement,
) <-chan DiscoveredPayment {
	out := make(chan DiscoveredPayment)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case a, ok := <-in:
				if !ok {
					return
				}
				match, err := checkViewTag(a.EphemeralPubkey, a.ViewTag)
				if err != nil || !match {
					continue
				}
				expected, err := computeExpected(a.EphemeralPubkey)
				if err != nil || expected != a.StealthAddress {
					continue
				}
				kp, err := deriveKeypair(a.EphemeralPubkey)
				if err != nil {
					continue
				}

				dp := DiscoveredPayment{Announcement: a, Keypair: kp}
				if balance != nil {
					dp.Balance, dp.BalanceErr = balance(ctx, a.StealthAddress)
				}
				select {
				case <-ctx.Done():
					return
				case out <- dp:
				}
			}
		}
	}()
	return out
}
