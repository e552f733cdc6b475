package repo

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// NewRequestID returns a ULID for t. IDs minted in the same millisecond keep
// increasing, so lexical order follows creation order.
func NewRequestID(t time.Time) string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}

// NewID returns a random UUID string (songs, idempotency records).
func NewID() string { return uuid.NewString() }
