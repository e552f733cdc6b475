// Package handlers exposes the song-request API over Gin.
//
// Handlers are transport-thin: they decode input, call the services and
// translate results (and service errors) into HTTP responses.
package handlers

import (
	"context"

	"github.com/tbourn/go-songrequest-backend/internal/domain"
	"github.com/tbourn/go-songrequest-backend/internal/services"
)

//
// Service contracts (context-aware)
//

// RequestService defines the request lifecycle consumed by HTTP handlers.
//
// Implementations must be safe for concurrent use and honor ctx.
type RequestService interface {
	// CreateIdempotent submits a request; a key already used in scope
	// returns the recorded request with replayed=true.
	CreateIdempotent(ctx context.Context, scope, key string, in services.CreateRequestInput) (*domain.Request, bool, error)
	// List returns the payment-completed queue in play order.
	List(ctx context.Context, statuses []domain.RequestStatus) ([]domain.Request, error)
	// Update applies a partial update after validating every field.
	Update(ctx context.Context, id string, changes domain.RequestChanges) (*domain.Request, error)
	IncrementLike(ctx context.Context, id string) (*domain.Request, error)
	Delete(ctx context.Context, id string) error
	// CheckFree reports whether a social identity still has its free request.
	CheckFree(ctx context.Context, social string) (services.FreeCheck, error)
}

// SongService defines catalog operations.
type SongService interface {
	List(ctx context.Context) ([]domain.Song, error)
	Search(ctx context.Context, q string) ([]domain.Song, error)
	Create(ctx context.Context, in services.CreateSongInput) (*domain.Song, error)
	Delete(ctx context.Context, id string) error
}

// StatsService computes the dashboard summary.
type StatsService interface {
	Summary(ctx context.Context) (domain.Stats, error)
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints for requests, songs and statistics.
type Handlers struct {
	reqSvc   RequestService
	songSvc  SongService
	statsSvc StatsService
}

// New constructs a Handlers bound to the given services.
func New(reqSvc RequestService, songSvc SongService, statsSvc StatsService) *Handlers {
	return &Handlers{reqSvc: reqSvc, songSvc: songSvc, statsSvc: statsSvc}
}
