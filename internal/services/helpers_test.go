package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/tbourn/go-songrequest-backend/internal/domain"
	"github.com/tbourn/go-songrequest-backend/internal/repo"
)

// eachStore runs fn against a file-backed SQLite GormStore and a MemoryStore.
func eachStore(t *testing.T, fn func(t *testing.T, st repo.Store)) {
	t.Helper()
	t.Run("sqlite", func(t *testing.T) {
		db, err := repo.OpenSQLite(filepath.Join(t.TempDir(), "songs.db"))
		if err != nil {
			t.Fatalf("OpenSQLite: %v", err)
		}
		t.Cleanup(func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		})
		if err := repo.AutoMigrate(db); err != nil {
			t.Fatalf("AutoMigrate: %v", err)
		}
		fn(t, repo.NewGormStore(db))
	})
	t.Run("memory", func(t *testing.T) {
		fn(t, repo.NewMemoryStore())
	})
}

func mustSong(t *testing.T, st repo.Store, title string, tier domain.Relevance) *domain.Song {
	t.Helper()
	s := &domain.Song{Title: title, Artist: "Artist " + title, Genre: "rock", Relevance: tier}
	if err := st.CreateSong(context.Background(), s); err != nil {
		t.Fatalf("CreateSong: %v", err)
	}
	return s
}

func follows(instagram, tiktok, youtube bool) *domain.SocialPlatforms {
	return &domain.SocialPlatforms{Instagram: instagram, TikTok: tiktok, YouTube: youtube}
}

func input(songID, social string) CreateRequestInput {
	return CreateRequestInput{
		SongID:          songID,
		UserName:        "Ana",
		UserSocial:      social,
		Message:         "  happy birthday  ",
		SocialPlatforms: follows(true, true, false),
	}
}
