// Package aes implements the authenticated-encryption wrapper used to
// persist a stealth account bundle at rest. It derives a 256-bit key
// from a caller-supplied passphrase with HKDF-SHA256 and seals the
// plaintext with AES-256-GCM, so a tampered or truncated bundle fails
// to open instead of decrypting to garbage.
package aes

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"
)

// ErrShortCiphertext is returned when a ciphertext is too short to
// contain a salt and nonce, so it cannot be a value this package wrote.
var ErrShortCiphertext = errors.New("aes: ciphertext too short")

const saltSize = 16

func deriveKey(passphrase, salt []byte) ([]byte, error) {
	key := make([]byte, 32)
	kdf := hkdf.New(sha256.New, passphrase, salt, []byte("stealth-address-solana/crypto/aes"))
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, err
	}
	return key, nil
}

// Encrypt seals plaintext under a key derived from passphrase and
// returns a base64-URL string carrying salt || nonce || ciphertext.
// A fresh salt and nonce are drawn for every call, so sealing the same
// plaintext twice never produces the same output.
func Encrypt(plaintext, passphrase []byte) (string, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", err
	}
	key, err := deriveKey(passphrase, salt)
	if err != nil {
		return "", err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	sealed := gcm.Seal(nil, nonce, plaintext, nil)

	out := make([]byte, 0, saltSize+len(nonce)+len(sealed))
	out = append(out, salt...)
	out = append(out, nonce...)
	out = append(out, sealed...)
	return base64.URLEncoding.EncodeToString(out), nil
}

// Decrypt reverses Encrypt. Any tampering with the salt, nonce, or
// ciphertext, or a wrong passphrase, causes GCM tag verification to
// fail and Decrypt to return an error rather than garbage plaintext.
func Decrypt(ciphertext string, passphrase []byte) ([]byte, error) {
	raw, err := base64.URLEncoding.DecodeString(ciphertext)
	if err != nil {
		return nil, err
	}

	if len(raw) < saltSize {
		return nil, ErrShortCiphertext
	}
	salt, rest := raw[:saltSize], raw[saltSize:]

	key, err := deriveKey(passphrase, salt)
	if err != nil {
		return nil, err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	if len(rest) < gcm.NonceSize() {
		return nil, ErrShortCiphertext
	}
	nonce, sealed := rest[:gcm.NonceSize()], rest[gcm.NonceSize():]

	return gcm.Open(nil, nonce, sealed, nil)
}
