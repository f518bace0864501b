// Package ipfs adapts store.AnnouncementStore onto an IPFS daemon's
// HTTP API, the way the teacher's utils.GetIPFSClient/IPFSUpload
// reached IPFS for outgoing mail. Each Put adds one announcement blob
// and records its CID; List replays every CID added so far.
package ipfs

import (
	"bytes"
	"context"
	"io"

	shell "github.com/ipfs/go-ipfs-api"

	"github.com/deepakA18/stealth-address-solana/crypto/announcement"
)

// shellAPI is the subset of *shell.Shell this package calls, pulled
// out so tests can substitute an in-memory fake instead of dialing a
// real daemon.
type shellAPI interface {
	Add(r io.Reader, options ...func(*shell.RequestBuilder) error) (string, error)
	Cat(path string) (io.ReadCloser, error)
}

// Store is an AnnouncementStore backed by IPFS. It is safe only for a
// single process's lifetime: the CID index is kept in memory and is
// not itself persisted to IPFS.
type Store struct {
	sh   shellAPI
	cids []string
}

// New dials addr (an IPFS daemon API address, e.g. "localhost:5001").
func New(addr string) *Store {
	return &Store{sh: shell.NewShell(addr)}
}

// NewWithShell builds a Store over an already-constructed shell
// client, or a test fake implementing shellAPI.
func NewWithShell(sh shellAPI) *Store {
	return &Store{sh: sh}
}

// Put encodes a and adds it to IPFS, recording the resulting CID.
func (s *Store) Put(ctx context.Context, a announcement.Announcement) error {
	raw, err := announcement.Encode(a)
	if err != nil {
		return err
	}
	cid, err := s.sh.Add(bytes.NewReader(raw))
	if err != nil {
		return err
	}
	s.cids = append(s.cids, cid)
	return nil
}

// List fetches and decodes every announcement added so far, in Put
// order. A blob that fails to decode is skipped rather than failing
// the whole scan, matching announcement.Decode's soft-failure contract.
func (s *Store) List(ctx context.Context) (<-chan announcement.Announcement, error) {
	cids := make([]string, len(s.cids))
	copy(cids, s.cids)

	out := make(chan announcement.Announcement, len(cids))
	go func() {
		defer close(out)
		for _, cid := range cids {
			select {
			case <-ctx.Done():
				return
			default:
			}
			rc, err := s.sh.Cat(cid)
			if err != nil {
				continue
			}
			raw, err := io.ReadAll(rc)
			rc.Close()
			if err != nil {
				continue
			}
			a, err := announcement.Decode(raw)
			if err != nil {
				continue
			}
			select {
			case <-ctx.Done():
				return
			case out <- a:
			}
		}
	}()
	return out, nil
}
