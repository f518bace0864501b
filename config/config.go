// Package config loads the ambient settings used by the stealthctl
// demo and by callers that want an env-driven deployment story instead
// of wiring every value by hand. None of it is required by the
// cryptographic core packages.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds the optional environment-driven settings.
type Config struct {
	// AccountPath names the file for a sealed account bundle. When it is
	// set, stealthctl seals the account and reports this path and the
	// bundle size; nothing in this module reads or writes the file.
	AccountPath string
	// Passphrase seals/opens the account bundle via account.Seal/Open.
	Passphrase string
	// IPFSAPIAddr is the multiaddr of an IPFS daemon's API, used by
	// store/ipfs when configured. Empty means "use store/memory instead".
	IPFSAPIAddr string
}

const (
	envAccountPath = "STEALTH_ACCOUNT_PATH"
	envPassphrase  = "STEALTH_PASSPHRASE"
	envIPFSAddr    = "STEALTH_IPFS_API_ADDR"
)

// Load reads the .env file in the nearest directory at or above the
// working directory that contains a go.mod (if that .env exists; no
// other directory is searched for one) and returns the resulting
// Config. A missing
// .env file is not an error: every field simply falls back to its
// environment-variable value, or the empty string.
func Load() (Config, error) {
	if root := goModRoot(); root != "" {
		envPath := filepath.Join(root, ".env")
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return Config{}, err
			}
		}
	}
	return Config{
		AccountPath: os.Getenv(envAccountPath),
		Passphrase:  os.Getenv(envPassphrase),
		IPFSAPIAddr: os.Getenv(envIPFSAddr),
	}, nil
}

func goModRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
