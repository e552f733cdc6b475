package repo

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	mapset "github.com/deckarep/golang-set"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/tbourn/go-songrequest-backend/internal/domain"
)

// MemoryStore is an in-process Store. All operations are serialized by a
// single mutex; Transaction works on a copy that replaces the live state only
// when fn succeeds.
type MemoryStore struct {
	mu    *sync.Mutex
	state *memState
}

var _ Store = (*MemoryStore)(nil)

type memState struct {
	songs     map[string]domain.Song
	songOrder []string
	reqs      map[string]domain.Request
	reqOrder  []string
	idem      map[string]domain.Idempotency
}

func newMemState() *memState {
	return &memState{
		songs: map[string]domain.Song{},
		reqs:  map[string]domain.Request{},
		idem:  map[string]domain.Idempotency{},
	}
}

func (st *memState) clone() *memState {
	return &memState{
		songs:     lo.Assign(st.songs),
		songOrder: append([]string(nil), st.songOrder...),
		reqs:      lo.Assign(st.reqs),
		reqOrder:  append([]string(nil), st.reqOrder...),
		idem:      lo.Assign(st.idem),
	}
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{mu: &sync.Mutex{}, state: newMemState()}
}

// lock is a no-op on the view handed to Transaction, which already holds it.
func (m *MemoryStore) lock() func() {
	if m.mu == nil {
		return func() {}
	}
	m.mu.Lock()
	return m.mu.Unlock
}

func (m *MemoryStore) CreateSong(_ context.Context, s *domain.Song) error {
	defer m.lock()()
	if s.ID == "" {
		s.ID = NewID()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	if _, ok := m.state.songs[s.ID]; ok {
		return ErrDuplicate
	}
	m.state.songs[s.ID] = *s
	m.state.songOrder = append(m.state.songOrder, s.ID)
	return nil
}

func (m *MemoryStore) GetSong(_ context.Context, id string) (*domain.Song, error) {
	defer m.lock()()
	s, ok := m.state.songs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (m *MemoryStore) ListSongs(_ context.Context) ([]domain.Song, error) {
	defer m.lock()()
	out := m.songsInOrder()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (m *MemoryStore) SearchSongs(_ context.Context, q string) ([]domain.Song, error) {
	defer m.lock()()
	q = strings.TrimSpace(q)
	if q == "" {
		return []domain.Song{}, nil
	}
	fold := cases.Fold()
	needle := fold.String(q)
	out := lo.Filter(m.songsInOrder(), func(s domain.Song, _ int) bool {
		return strings.Contains(fold.String(s.Title), needle) ||
			strings.Contains(fold.String(s.Artist), needle)
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (m *MemoryStore) DeleteSong(_ context.Context, id string) error {
	defer m.lock()()
	if _, ok := m.state.songs[id]; !ok {
		return ErrNotFound
	}
	delete(m.state.songs, id)
	m.state.songOrder = lo.Without(m.state.songOrder, id)
	return nil
}

func (m *MemoryStore) CountSongs(_ context.Context) (int64, error) {
	defer m.lock()()
	return int64(len(m.state.songs)), nil
}

func (m *MemoryStore) CreateRequest(_ context.Context, r *domain.Request) error {
	defer m.lock()()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	if r.ID == "" {
		r.ID = NewRequestID(r.CreatedAt)
	}
	if _, ok := m.state.reqs[r.ID]; ok {
		return ErrDuplicate
	}
	if r.IsFree {
		for _, other := range m.state.reqs {
			if other.IsFree && other.UserSocial == r.UserSocial {
				return ErrDuplicate
			}
		}
	}
	stored := *r
	stored.SongTitle = nil
	m.state.reqs[r.ID] = stored
	m.state.reqOrder = append(m.state.reqOrder, r.ID)
	return nil
}

func (m *MemoryStore) GetRequest(_ context.Context, id string) (*domain.Request, error) {
	defer m.lock()()
	r, ok := m.state.reqs[id]
	if !ok {
		return nil, ErrNotFound
	}
	r = m.withSongTitle(r)
	return &r, nil
}

func (m *MemoryStore) ListRequests(_ context.Context, f domain.RequestFilter) ([]domain.Request, error) {
	defer m.lock()()
	out := []domain.Request{}
	for _, id := range m.state.reqOrder {
		r := m.state.reqs[id]
		if len(f.Statuses) > 0 && !lo.Contains(f.Statuses, r.Status) {
			continue
		}
		if f.PaymentStatus != "" && r.PaymentStatus != f.PaymentStatus {
			continue
		}
		out = append(out, m.withSongTitle(r))
	}
	return out, nil
}

func (m *MemoryStore) CountRequestsBySocial(_ context.Context, social string) (int64, error) {
	defer m.lock()()
	n := lo.CountBy(lo.Values(m.state.reqs), func(r domain.Request) bool {
		return r.UserSocial == social
	})
	return int64(n), nil
}

func (m *MemoryStore) UpdateRequest(_ context.Context, id string, c domain.RequestChanges) error {
	defer m.lock()()
	r, ok := m.state.reqs[id]
	if !ok {
		return ErrNotFound
	}
	if c.Status != nil {
		r.Status = *c.Status
	}
	if c.Likes != nil {
		r.Likes = *c.Likes
	}
	if c.PaymentStatus != nil {
		r.PaymentStatus = *c.PaymentStatus
	}
	m.state.reqs[id] = r
	return nil
}

func (m *MemoryStore) IncrementLikes(_ context.Context, id string) error {
	defer m.lock()()
	r, ok := m.state.reqs[id]
	if !ok {
		return ErrNotFound
	}
	r.Likes++
	m.state.reqs[id] = r
	return nil
}

func (m *MemoryStore) DeleteRequest(_ context.Context, id string) error {
	defer m.lock()()
	if _, ok := m.state.reqs[id]; !ok {
		return ErrNotFound
	}
	delete(m.state.reqs, id)
	m.state.reqOrder = lo.Without(m.state.reqOrder, id)
	return nil
}

func (m *MemoryStore) Stats(_ context.Context) (domain.Stats, error) {
	defer m.lock()()
	reqs := lo.Values(m.state.reqs)

	users := mapset.NewThreadUnsafeSet()
	for _, r := range reqs {
		users.Add(r.UserSocial)
	}
	revenue := lo.Reduce(reqs, func(acc decimal.Decimal, r domain.Request, _ int) decimal.Decimal {
		if r.PaymentStatus != domain.PaymentCompleted {
			return acc
		}
		return acc.Add(decimal.NewFromFloat(r.PricePaid))
	}, decimal.Zero)

	free := lo.CountBy(reqs, func(r domain.Request) bool { return r.IsFree })
	return domain.Stats{
		TotalRequests:     int64(len(reqs)),
		PendingRequests:   int64(lo.CountBy(reqs, func(r domain.Request) bool { return r.Status == domain.StatusPending })),
		CompletedRequests: int64(lo.CountBy(reqs, func(r domain.Request) bool { return r.Status == domain.StatusCompleted })),
		NewFollowers:      lo.SumBy(reqs, func(r domain.Request) int64 { return int64(r.Priority) }),
		ActiveUsers:       int64(users.Cardinality()),
		TotalRevenue:      revenue.Round(2).InexactFloat64(),
		PaidRequests:      int64(len(reqs) - free),
		FreeRequests:      int64(free),
	}, nil
}

func idemKey(scope, key string) string { return scope + "\x00" + key }

func (m *MemoryStore) GetIdempotency(_ context.Context, scope, key string, now time.Time) (*domain.Idempotency, error) {
	defer m.lock()()
	rec, ok := m.state.idem[idemKey(scope, key)]
	if !ok || strings.TrimSpace(key) == "" || !rec.ExpiresAt.After(now) {
		return nil, ErrNotFound
	}
	return &rec, nil
}

func (m *MemoryStore) CreateIdempotency(_ context.Context, rec *domain.Idempotency) error {
	defer m.lock()()
	if rec.ID == "" {
		rec.ID = NewID()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	k := idemKey(rec.Scope, rec.Key)
	if prev, ok := m.state.idem[k]; ok && prev.ExpiresAt.After(rec.CreatedAt) {
		return ErrDuplicate
	}
	m.state.idem[k] = *rec
	return nil
}

// Transaction holds the store lock for the duration of fn. Writes made
// through tx are discarded when fn returns an error.
func (m *MemoryStore) Transaction(_ context.Context, fn func(tx Store) error) error {
	defer m.lock()()
	work := m.state.clone()
	if err := fn(&MemoryStore{state: work}); err != nil {
		return err
	}
	m.state = work
	return nil
}

func (m *MemoryStore) songsInOrder() []domain.Song {
	out := make([]domain.Song, 0, len(m.state.songOrder))
	for _, id := range m.state.songOrder {
		out = append(out, m.state.songs[id])
	}
	return out
}

func (m *MemoryStore) withSongTitle(r domain.Request) domain.Request {
	if s, ok := m.state.songs[r.SongID]; ok {
		title := s.Title
		r.SongTitle = &title
	} else {
		r.SongTitle = nil
	}
	return r
}
