// Package services – SongService
//
// This file implements SongService, the catalog side of the API: listing,
// searching, creating and deleting songs, plus first-boot seeding.
package services

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tbourn/go-songrequest-backend/internal/domain"
	"github.com/tbourn/go-songrequest-backend/internal/repo"
)

// CreateSongInput is a new catalog entry. An empty Relevance means medium.
type CreateSongInput struct {
	Title     string
	Artist    string
	Genre     string
	Relevance domain.Relevance
}

// SongService provides catalog operations.
type SongService struct {
	Store repo.Store
}

// NewSongService constructs a SongService.
func NewSongService(store repo.Store) *SongService {
	return &SongService{Store: store}
}

// List returns the catalog ordered by title.
func (s *SongService) List(ctx context.Context) ([]domain.Song, error) {
	return s.Store.ListSongs(ctx)
}

// Search matches q against title or artist, ignoring case.
func (s *SongService) Search(ctx context.Context, q string) ([]domain.Song, error) {
	ctx, span := otel.Tracer("services/SongService").Start(ctx, "Search",
		trace.WithAttributes(attribute.Int("query.len", len(q))),
	)
	defer span.End()
	return s.Store.SearchSongs(ctx, q)
}

// Get fetches one song.
func (s *SongService) Get(ctx context.Context, id string) (*domain.Song, error) {
	song, err := s.Store.GetSong(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrSongNotFound)
	}
	return song, nil
}

// Create validates and stores a song.
func (s *SongService) Create(ctx context.Context, in CreateSongInput) (*domain.Song, error) {
	song, err := newSong(in)
	if err != nil {
		return nil, err
	}
	if err := s.Store.CreateSong(ctx, song); err != nil {
		return nil, err
	}
	return song, nil
}

// Delete removes a song. Requests for it stay in the queue without a title.
func (s *SongService) Delete(ctx context.Context, id string) error {
	return notFoundAs(s.Store.DeleteSong(ctx, id), ErrSongNotFound)
}

// Seed inserts songs when the catalog is empty and reports how many were
// added. Invalid entries abort the whole seed.
func (s *SongService) Seed(ctx context.Context, songs []CreateSongInput) (int, error) {
	added := 0
	err := s.Store.Transaction(ctx, func(tx repo.Store) error {
		n, err := tx.CountSongs(ctx)
		if err != nil || n > 0 {
			return err
		}
		for _, in := range songs {
			song, err := newSong(in)
			if err != nil {
				return err
			}
			if err := tx.CreateSong(ctx, song); err != nil {
				return err
			}
			added++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return added, nil
}

func newSong(in CreateSongInput) (*domain.Song, error) {
	song := &domain.Song{
		Title:     strings.TrimSpace(in.Title),
		Artist:    strings.TrimSpace(in.Artist),
		Genre:     strings.TrimSpace(in.Genre),
		Relevance: domain.Relevance(strings.ToLower(strings.TrimSpace(string(in.Relevance)))),
	}
	switch {
	case song.Title == "":
		return nil, missing("title")
	case song.Artist == "":
		return nil, missing("artist")
	case song.Genre == "":
		return nil, missing("genre")
	}
	if song.Relevance == "" {
		song.Relevance = domain.RelevanceMedium
	}
	if !song.Relevance.Valid() {
		return nil, ErrInvalidRelevance
	}
	return song, nil
}
