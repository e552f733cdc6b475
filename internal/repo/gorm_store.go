package repo

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-songrequest-backend/internal/domain"
)

// GormStore implements Store on top of the repository functions.
//
// SQLite allows a single writer at a time; transactions on a SQLite handle
// are therefore serialized in-process so that the eligibility check and the
// insert never interleave.
type GormStore struct {
	DB   *gorm.DB
	txMu *sync.Mutex
}

var _ Store = (*GormStore)(nil)

// NewGormStore wraps db.
func NewGormStore(db *gorm.DB) *GormStore {
	s := &GormStore{DB: db}
	if db.Dialector != nil && db.Dialector.Name() == "sqlite" {
		s.txMu = &sync.Mutex{}
	}
	return s
}

func (s *GormStore) CreateSong(ctx context.Context, song *domain.Song) error {
	return CreateSong(ctx, s.DB, song)
}

func (s *GormStore) GetSong(ctx context.Context, id string) (*domain.Song, error) {
	return GetSong(ctx, s.DB, id)
}

func (s *GormStore) ListSongs(ctx context.Context) ([]domain.Song, error) {
	return ListSongs(ctx, s.DB)
}

func (s *GormStore) SearchSongs(ctx context.Context, q string) ([]domain.Song, error) {
	return SearchSongs(ctx, s.DB, q)
}

func (s *GormStore) DeleteSong(ctx context.Context, id string) error {
	return DeleteSong(ctx, s.DB, id)
}

func (s *GormStore) CountSongs(ctx context.Context) (int64, error) {
	return CountSongs(ctx, s.DB)
}

func (s *GormStore) CreateRequest(ctx context.Context, r *domain.Request) error {
	return CreateRequest(ctx, s.DB, r)
}

func (s *GormStore) GetRequest(ctx context.Context, id string) (*domain.Request, error) {
	return GetRequest(ctx, s.DB, id)
}

func (s *GormStore) ListRequests(ctx context.Context, f domain.RequestFilter) ([]domain.Request, error) {
	return ListRequests(ctx, s.DB, f)
}

func (s *GormStore) CountRequestsBySocial(ctx context.Context, social string) (int64, error) {
	return CountRequestsBySocial(ctx, s.DB, social)
}

func (s *GormStore) UpdateRequest(ctx context.Context, id string, c domain.RequestChanges) error {
	return UpdateRequest(ctx, s.DB, id, c)
}

func (s *GormStore) IncrementLikes(ctx context.Context, id string) error {
	return IncrementLikes(ctx, s.DB, id)
}

func (s *GormStore) DeleteRequest(ctx context.Context, id string) error {
	return DeleteRequest(ctx, s.DB, id)
}

func (s *GormStore) Stats(ctx context.Context) (domain.Stats, error) {
	return RequestStats(ctx, s.DB)
}

func (s *GormStore) GetIdempotency(ctx context.Context, scope, key string, now time.Time) (*domain.Idempotency, error) {
	return GetIdempotency(ctx, s.DB, scope, key, now)
}

func (s *GormStore) CreateIdempotency(ctx context.Context, rec *domain.Idempotency) error {
	return CreateIdempotency(ctx, s.DB, rec)
}

// Transaction runs fn inside a database transaction. The Store passed to fn
// is bound to the transaction and must not escape it.
func (s *GormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	if s.txMu != nil {
		s.txMu.Lock()
		defer s.txMu.Unlock()
	}
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{DB: tx})
	})
}
