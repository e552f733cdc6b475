// Package services – RequestService
//
// This file implements RequestService, which owns the lifecycle of song
// requests: submission (validation, priority, free-slot eligibility and
// pricing), the ordered queue listing, partial updates, likes and deletion.
//
// Eligibility is decided inside a storage transaction together with the
// insert. The persistent store also enforces one free request per identity
// with a unique index; a submission that loses that race is charged the song
// price and inserted as a paid request.
//
// Observability: public methods are OpenTelemetry-instrumented and creation
// outcomes are counted in Prometheus.
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tbourn/go-songrequest-backend/internal/domain"
	"github.com/tbourn/go-songrequest-backend/internal/queue"
	"github.com/tbourn/go-songrequest-backend/internal/repo"
)

// errKeyTaken marks a transaction aborted because another submission already
// recorded the same idempotency key.
var errKeyTaken = errors.New("idempotency key taken")

// CreateRequestInput is a song request submission.
type CreateRequestInput struct {
	SongID          string
	UserName        string
	UserSocial      string
	Message         string
	SocialPlatforms *domain.SocialPlatforms
}

// FreeCheck answers whether an identity still has its free request.
type FreeCheck struct {
	HasFreeRequest bool  `json:"has_free_request"`
	TotalRequests  int64 `json:"total_requests"`
}

// RequestService coordinates request persistence and queue ordering.
type RequestService struct {
	Store repo.Store

	// IdempotencyTTL bounds how long a submission key is replayable.
	IdempotencyTTL time.Duration

	// Now is the clock; defaults to time.Now in UTC.
	Now func() time.Time
}

// NewRequestService constructs a RequestService with a 24h key TTL.
func NewRequestService(store repo.Store) *RequestService {
	return &RequestService{
		Store:          store,
		IdempotencyTTL: 24 * time.Hour,
		Now:            func() time.Time { return time.Now().UTC() },
	}
}

func (s *RequestService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

func tracer() trace.Tracer { return otel.Tracer("services/RequestService") }

// Create validates and persists a submission with status pending.
func (s *RequestService) Create(ctx context.Context, in CreateRequestInput) (*domain.Request, error) {
	r, _, err := s.CreateIdempotent(ctx, "", "", in)
	return r, err
}

// CreateIdempotent is Create with an optional client key. When key was
// already used in scope within the TTL, the originally created request is
// returned with replayed=true and nothing is written.
func (s *RequestService) CreateIdempotent(ctx context.Context, scope, key string, in CreateRequestInput) (req *domain.Request, replayed bool, err error) {
	ctx, span := tracer().Start(ctx, "Create",
		trace.WithAttributes(
			attribute.String("song.id", in.SongID),
			attribute.Bool("idempotent", key != ""),
		),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if key != "" {
		if prev, err := s.replay(ctx, scope, key); err != nil || prev != nil {
			return prev, prev != nil, err
		}
	}

	in.SongID = strings.TrimSpace(in.SongID)
	in.UserName = strings.TrimSpace(in.UserName)
	in.UserSocial = domain.NormalizeSocial(in.UserSocial)
	switch {
	case in.SongID == "":
		return nil, false, missing("song_id")
	case in.UserName == "":
		return nil, false, missing("user_name")
	case in.UserSocial == "":
		return nil, false, missing("user_social")
	case in.SocialPlatforms == nil:
		return nil, false, missing("social_platforms")
	}

	song, err := s.Store.GetSong(ctx, in.SongID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, false, ErrSongNotFound
		}
		return nil, false, err
	}

	priority, err := ComputePriority(*in.SocialPlatforms)
	if err != nil {
		return nil, false, err
	}

	now := s.now()
	r := &domain.Request{
		SongID:          song.ID,
		UserName:        in.UserName,
		UserSocial:      in.UserSocial,
		Message:         strings.TrimSpace(in.Message),
		SocialPlatforms: *in.SocialPlatforms,
		Status:          domain.StatusPending,
		Priority:        priority,
		CreatedAt:       now,
	}
	var idem *domain.Idempotency
	if key != "" {
		idem = &domain.Idempotency{
			Scope:     scope,
			Key:       key,
			Status:    201,
			CreatedAt: now,
			ExpiresAt: now.Add(s.IdempotencyTTL),
		}
	}

	err = s.insert(ctx, r, *song, idem, false)
	if errors.Is(err, repo.ErrDuplicate) && r.IsFree {
		freeConflicts.Inc()
		zerolog.Ctx(ctx).Info().
			Str("user_social", r.UserSocial).
			Msg("free slot taken concurrently; charging request")
		err = s.insert(ctx, r, *song, idem, true)
	}
	if errors.Is(err, errKeyTaken) {
		prev, rerr := s.replay(ctx, scope, key)
		if rerr != nil {
			return nil, false, rerr
		}
		if prev != nil {
			return prev, true, nil
		}
		return nil, false, repo.ErrDuplicate
	}
	if err != nil {
		return nil, false, err
	}

	title := song.Title
	r.SongTitle = &title
	requestsCreated.WithLabelValues(kindOf(r.IsFree)).Inc()
	span.SetAttributes(
		attribute.String("request.id", r.ID),
		attribute.Bool("request.free", r.IsFree),
	)
	return r, false, nil
}

// insert prices r and writes it (plus the idempotency record, if any) in one
// transaction. forcePaid skips the eligibility lookup.
func (s *RequestService) insert(ctx context.Context, r *domain.Request, song domain.Song, idem *domain.Idempotency, forcePaid bool) error {
	return s.Store.Transaction(ctx, func(tx repo.Store) error {
		first := false
		if !forcePaid {
			n, err := tx.CountRequestsBySocial(ctx, r.UserSocial)
			if err != nil {
				return err
			}
			first = n == 0
		}
		applyPricing(r, ComputePricing(first, song))

		if err := tx.CreateRequest(ctx, r); err != nil {
			return err
		}
		if idem != nil {
			idem.ID = ""
			idem.ResourceID = r.ID
			if err := tx.CreateIdempotency(ctx, idem); err != nil {
				if errors.Is(err, repo.ErrDuplicate) {
					return errKeyTaken
				}
				return err
			}
		}
		return nil
	})
}

// replay returns the request recorded for (scope, key), or nil when the key
// is unused or expired.
func (s *RequestService) replay(ctx context.Context, scope, key string) (*domain.Request, error) {
	rec, err := s.Store.GetIdempotency(ctx, scope, key, s.now())
	if errors.Is(err, repo.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	r, err := s.Store.GetRequest(ctx, rec.ResourceID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrRequestNotFound
	}
	return r, err
}

// ParseStatuses splits a comma-separated status filter. Blank input means
// no filter; any unknown value yields ErrInvalidStatus.
func ParseStatuses(csv string) ([]domain.RequestStatus, error) {
	var out []domain.RequestStatus
	for _, part := range strings.Split(csv, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		st := domain.RequestStatus(part)
		if !st.Valid() {
			return nil, ErrInvalidStatus
		}
		out = append(out, st)
	}
	return out, nil
}

// List returns the payment-completed requests, optionally restricted to
// statuses, in play order.
func (s *RequestService) List(ctx context.Context, statuses []domain.RequestStatus) ([]domain.Request, error) {
	ctx, span := tracer().Start(ctx, "List",
		trace.WithAttributes(attribute.Int("filter.statuses", len(statuses))),
	)
	defer span.End()

	for _, st := range statuses {
		if !st.Valid() {
			return nil, ErrInvalidStatus
		}
	}
	items, err := s.Store.ListRequests(ctx, domain.RequestFilter{
		Statuses:      statuses,
		PaymentStatus: domain.PaymentCompleted,
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	queue.Sort(items)
	return items, nil
}

// Update applies a partial update. Every present field is validated before
// anything is written; the write is a single statement.
func (s *RequestService) Update(ctx context.Context, id string, c domain.RequestChanges) (*domain.Request, error) {
	ctx, span := tracer().Start(ctx, "Update",
		trace.WithAttributes(attribute.String("request.id", id)),
	)
	defer span.End()

	if c.Empty() {
		return nil, missing("status, likes or payment_status")
	}
	if c.Status != nil && !c.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	if c.PaymentStatus != nil && !c.PaymentStatus.Valid() {
		return nil, ErrInvalidPaymentStatus
	}
	if c.Likes != nil && *c.Likes < 0 {
		return nil, ErrInvalidLikes
	}

	if err := s.Store.UpdateRequest(ctx, id, c); err != nil {
		span.RecordError(err)
		return nil, notFoundAs(err, ErrRequestNotFound)
	}
	return s.get(ctx, id)
}

// UpdateStatus moves a request to status. Any legal status may follow any
// other.
func (s *RequestService) UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) (*domain.Request, error) {
	return s.Update(ctx, id, domain.RequestChanges{Status: &status})
}

// UpdatePaymentStatus records an externally confirmed payment outcome.
func (s *RequestService) UpdatePaymentStatus(ctx context.Context, id string, status domain.PaymentStatus) (*domain.Request, error) {
	return s.Update(ctx, id, domain.RequestChanges{PaymentStatus: &status})
}

// IncrementLike adds one like. Repeated calls keep adding.
func (s *RequestService) IncrementLike(ctx context.Context, id string) (*domain.Request, error) {
	ctx, span := tracer().Start(ctx, "IncrementLike",
		trace.WithAttributes(attribute.String("request.id", id)),
	)
	defer span.End()

	if err := s.Store.IncrementLikes(ctx, id); err != nil {
		return nil, notFoundAs(err, ErrRequestNotFound)
	}
	return s.get(ctx, id)
}

// Delete removes a request permanently.
func (s *RequestService) Delete(ctx context.Context, id string) error {
	ctx, span := tracer().Start(ctx, "Delete",
		trace.WithAttributes(attribute.String("request.id", id)),
	)
	defer span.End()

	return notFoundAs(s.Store.DeleteRequest(ctx, id), ErrRequestNotFound)
}

// CheckFree reports whether social has not submitted any request yet.
func (s *RequestService) CheckFree(ctx context.Context, social string) (FreeCheck, error) {
	social = domain.NormalizeSocial(social)
	if social == "" {
		return FreeCheck{}, missing("user_social")
	}
	n, err := s.Store.CountRequestsBySocial(ctx, social)
	if err != nil {
		return FreeCheck{}, err
	}
	return FreeCheck{HasFreeRequest: n == 0, TotalRequests: n}, nil
}

func (s *RequestService) get(ctx context.Context, id string) (*domain.Request, error) {
	r, err := s.Store.GetRequest(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrRequestNotFound)
	}
	return r, nil
}

// notFoundAs maps repo.ErrNotFound to target and passes other errors through.
func notFoundAs(err, target error) error {
	if errors.Is(err, repo.ErrNotFound) {
		return target
	}
	return err
}
