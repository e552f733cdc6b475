// Package repo implements the data persistence layer for songs, requests and
// idempotency records.
//
// Two implementations share one contract (Store):
//
//   - GormStore: GORM over SQLite (glebarez, pure Go) or PostgreSQL (pgx).
//   - MemoryStore: process-local maps guarded by a mutex, for tests and
//     single-instance demos.
//
// Error semantics:
//   - Missing rows surface as ErrNotFound (alias of gorm.ErrRecordNotFound).
//   - Unique violations (free-request slot, idempotency key) surface as
//     ErrDuplicate regardless of the driver.
//   - Any other storage failure is propagated unchanged.
package repo

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/tbourn/go-songrequest-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound so callers can match either.
var ErrNotFound = gorm.ErrRecordNotFound

// ErrDuplicate is returned when an insert violates a unique constraint.
var ErrDuplicate = errors.New("duplicate")

// Store is the storage boundary used by the service layer.
type Store interface {
	CreateSong(ctx context.Context, s *domain.Song) error
	GetSong(ctx context.Context, id string) (*domain.Song, error)
	// ListSongs returns the catalog ordered by title.
	ListSongs(ctx context.Context) ([]domain.Song, error)
	// SearchSongs matches q case-insensitively against title or artist.
	// An empty query yields an empty slice.
	SearchSongs(ctx context.Context, q string) ([]domain.Song, error)
	DeleteSong(ctx context.Context, id string) error
	CountSongs(ctx context.Context) (int64, error)

	// CreateRequest assigns ID and CreatedAt when empty. A second free
	// request for the same user_social yields ErrDuplicate.
	CreateRequest(ctx context.Context, r *domain.Request) error
	GetRequest(ctx context.Context, id string) (*domain.Request, error)
	ListRequests(ctx context.Context, f domain.RequestFilter) ([]domain.Request, error)
	CountRequestsBySocial(ctx context.Context, social string) (int64, error)
	UpdateRequest(ctx context.Context, id string, c domain.RequestChanges) error
	IncrementLikes(ctx context.Context, id string) error
	DeleteRequest(ctx context.Context, id string) error
	Stats(ctx context.Context) (domain.Stats, error)

	GetIdempotency(ctx context.Context, scope, key string, now time.Time) (*domain.Idempotency, error)
	CreateIdempotency(ctx context.Context, rec *domain.Idempotency) error

	// Transaction runs fn against a transactional view of the store. A
	// non-nil error from fn rolls every write back.
	Transaction(ctx context.Context, fn func(tx Store) error) error
}

// isDuplicate reports whether err is a unique-constraint violation for any
// of the supported drivers.
func isDuplicate(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, ErrDuplicate) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	// glebarez/sqlite often returns plain-text errors for UNIQUE violations.
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "unique constraint failed") ||
		strings.Contains(low, "constraint failed: unique")
}
