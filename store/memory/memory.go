// Package memory is an in-process AnnouncementStore, useful for tests
// and for callers that don't yet have a chain indexer or IPFS backend
// wired up.
package memory

import (
	"context"
	"sync"

	"github.com/deepakA18/stealth-address-solana/crypto/announcement"
)

// Store is a thread-safe, append-only list of announcements.
type Store struct {
	mu   sync.Mutex
	data []announcement.Announcement
}

// New returns an empty Store.
func New() *Store {
	return &Store{}
}

// Put appends a to the store. It never blocks on ctx; the parameter
// exists to satisfy store.AnnouncementStore.
func (s *Store) Put(ctx context.Context, a announcement.Announcement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append(s.data, a)
	return nil
}

// List returns a snapshot of every announcement Put so far, delivered
// over a buffered channel that is closed once drained.
func (s *Store) List(ctx context.Context) (<-chan announcement.Announcement, error) {
	s.mu.Lock()
	snapshot := make([]announcement.Announcement, len(s.data))
	copy(snapshot, s.data)
	s.mu.Unlock()

	out := make(chan announcement.Announcement, len(snapshot))
	go func() {
		defer close(out)
		for _, a := range snapshot {
			select {
			case <-ctx.Done():
				return
			case out <- a:
			}
		}
	}()
	return out, nil
}
