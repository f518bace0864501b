// Package store defines the persistence boundary for stealth-payment
// announcements. The crypto core never depends on any particular
// backend; it only needs something that can hold and later replay a
// stream of announcement.Announcement values.
package store

import (
	"context"

	"github.com/deepakA18/stealth-address-solana/crypto/announcement"
)

// AnnouncementStore persists and replays announcements. List returns a
// channel that is closed once every currently stored announcement has
// been sent, or immediately if ctx is canceled.
type AnnouncementStore interface {
	Put(ctx context.Context, a announcement.Announcement) error
	List(ctx context.Context) (<-chan announcement.Announcement, error)
}
