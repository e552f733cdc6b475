// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Song model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions. They carry no business rules: validation
// and defaulting happen in services.SongService.
package repo

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-songrequest-backend/internal/domain"
)

// likeEscaper escapes LIKE wildcards so user input matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// CreateSong inserts s, assigning a UUID and UTC CreatedAt when missing.
func CreateSong(ctx context.Context, db *gorm.DB, s *domain.Song) error {
	if s.ID == "" {
		s.ID = NewID()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	return db.WithContext(ctx).Create(s).Error
}

// GetSong fetches a song by ID or returns ErrNotFound.
func GetSong(ctx context.Context, db *gorm.DB, id string) (*domain.Song, error) {
	var s domain.Song
	if err := db.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// ListSongs returns the whole catalog ordered by title.
func ListSongs(ctx context.Context, db *gorm.DB) ([]domain.Song, error) {
	out := []domain.Song{}
	err := db.WithContext(ctx).Order("title ASC").Find(&out).Error
	return out, err
}

// SearchSongs returns songs whose title or artist contains q, ignoring case.
func SearchSongs(ctx context.Context, db *gorm.DB, q string) ([]domain.Song, error) {
	out := []domain.Song{}
	q = strings.TrimSpace(q)
	if q == "" {
		return out, nil
	}
	pattern := "%" + likeEscaper.Replace(strings.ToLower(q)) + "%"
	err := db.WithContext(ctx).
		Where(`LOWER(title) LIKE ? ESCAPE '\' OR LOWER(artist) LIKE ? ESCAPE '\'`, pattern, pattern).
		Order("title ASC").
		Find(&out).Error
	return out, err
}

// DeleteSong removes a song. Requests pointing to it are left in place.
func DeleteSong(ctx context.Context, db *gorm.DB, id string) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Song{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountSongs returns the catalog size.
func CountSongs(ctx context.Context, db *gorm.DB) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(&domain.Song{}).Count(&n).Error
	return n, err
}
