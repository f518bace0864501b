// Package account is the recipient-facing façade over the stealth
// crypto core: it owns a viewing/spending key pair, publishes a
// meta-address, answers view-tag and full-address questions about
// incoming announcements, and can persist itself as an authenticated
// bundle.
package account

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"

	stealthaes "github.com/deepakA18/stealth-address-solana/crypto/aes"
	"github.com/deepakA18/stealth-address-solana/crypto/bridge"
	"github.com/deepakA18/stealth-address-solana/crypto/metaaddr"
	"github.com/deepakA18/stealth-address-solana/crypto/stealth"
	"github.com/deepakA18/stealth-address-solana/crypto/viewtag"
)

// ErrWrongPassphrase is returned by Open when the bundle cannot be
// authenticated under the supplied passphrase.
var ErrWrongPassphrase = errors.New("account: wrong passphrase or corrupt bundle")

// Account is a recipient's private stealth-key bundle plus the
// operations a scanner or wallet needs against it.
type Account struct {
	keys *stealth.Keys
}

// Generate creates a fresh Account. Pass crypto/rand.Reader in
// production; a deterministic reader may be injected in tests.
func Generate(r io.Reader) (*Account, error) {
	if r == nil {
		r = rand.Reader
	}
	keys, err := stealth.Generate(r)
	if err != nil {
		return nil, err
	}
	return &Account{keys: keys}, nil
}

// MetaAddress returns the account's public (viewingPubkey,
// spendingPubkey) pair.
func (a *Account) MetaAddress() metaaddr.MetaAddress {
	return a.keys.MetaAddress
}

// String returns the canonical "st:sol:<base58>" encoding of the
// account's meta-address.
func (a *Account) String() string {
	return a.keys.MetaAddress.String()
}

// CheckViewTag is the scanner's fast pre-filter: it reports whether
// ephemeralPub's view tag matches the claimed viewTag. A true result
// is not proof of ownership; it must always be followed by
// ComputeExpectedAddress before a payment is treated as real.
func (a *Account) CheckViewTag(ephemeralPub [32]byte, viewTag byte) (bool, error) {
	return viewtag.Check(a.keys.ViewingPrivkey, ephemeralPub, viewTag)
}

// ComputeExpectedAddress recomputes the stealth address this account
// would own for ephemeralPub, without deriving a signing key.
func (a *Account) ComputeExpectedAddress(ephemeralPub [32]byte) ([32]byte, error) {
	return stealth.ComputeExpectedAddress(a.keys.ViewingPrivkey, a.keys.MetaAddress.SpendingPubkey, ephemeralPub)
}

// DeriveStealthKeypair recovers the one-time signing key for a payment
// announced under ephemeralPub.
func (a *Account) DeriveStealthKeypair(ephemeralPub [32]byte) (*stealth.Keypair, error) {
	return stealth.DeriveStealthKeypair(a.keys.ViewingPrivkey, a.keys.SpendingPrivkey, ephemeralPub)
}

// SealedBundle is the persisted, passphrase-encrypted form of an
// Account. Ciphertext carries salt || nonce || AES-256-GCM sealed JSON
// of the two private seeds, so a wrong passphrase or any tampering is
// detected at Open time rather than silently producing wrong keys.
type SealedBundle struct {
	Ciphertext string `json:"ciphertext"`
}

type plainSeeds struct {
	ViewingPrivkey  string `json:"viewing_privkey"`
	SpendingPrivkey string `json:"spending_privkey"`
}

// Seal encrypts the account's two private seeds under passphrase.
func (a *Account) Seal(passphrase []byte) (*SealedBundle, error) {
	plain := plainSeeds{
		ViewingPrivkey:  base64.StdEncoding.EncodeToString(a.keys.ViewingPrivkey[:]),
		SpendingPrivkey: base64.StdEncoding.EncodeToString(a.keys.SpendingPrivkey[:]),
	}
	raw, err := json.Marshal(plain)
	if err != nil {
		return nil, err
	}
	defer bridge.Zero(raw)

	ct, err := stealthaes.Encrypt(raw, passphrase)
	if err != nil {
		return nil, err
	}
	return &SealedBundle{Ciphertext: ct}, nil
}

// Open decrypts a SealedBundle under passphrase and reconstructs the
// Account, including its derived meta-address.
func Open(bundle *SealedBundle, passphrase []byte) (*Account, error) {
	raw, err := stealthaes.Decrypt(bundle.Ciphertext, passphrase)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	defer bridge.Zero(raw)

	var plain plainSeeds
	if err := json.Unmarshal(raw, &plain); err != nil {
		return nil, ErrWrongPassphrase
	}
	viewing, err := decodeSeed(plain.ViewingPrivkey)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	spending, err := decodeSeed(plain.SpendingPrivkey)
	if err != nil {
		return nil, ErrWrongPassphrase
	}

	keys := &stealth.Keys{ViewingPrivkey: viewing, SpendingPrivkey: spending}
	keys.MetaAddress = metaaddr.MetaAddress{
		ViewingPubkey:  stealth.PublicKeyFromSeed(viewing),
		SpendingPubkey: stealth.PublicKeyFromSeed(spending),
	}
	return &Account{keys: keys}, nil
}

func decodeSeed(b64 string) ([32]byte, error) {
	var out [32]byte
	raw, err := base64.StdEncoding.DecodeString(b64)
	defer bridge.Zero(raw)
	if err != nil || len(raw) != 32 {
		return out, errors.New("account: malformed seed")
	}
	copy(out[:], raw)
	return out, nil
}
