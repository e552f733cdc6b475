// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Request
// model.
//
// Reads join the songs table to project the song title; a request whose song
// was deleted comes back with a nil SongTitle.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-songrequest-backend/internal/domain"
)

// withSongTitle selects request columns plus the joined song title.
func withSongTitle(db *gorm.DB) *gorm.DB {
	return db.Model(&domain.Request{}).
		Select("requests.*, songs.title AS song_title").
		Joins("LEFT JOIN songs ON songs.id = requests.song_id")
}

// CreateRequest inserts r, assigning a ULID and UTC CreatedAt when missing.
// A unique violation is reported as ErrDuplicate.
func CreateRequest(ctx context.Context, db *gorm.DB, r *domain.Request) error {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	if r.ID == "" {
		r.ID = NewRequestID(r.CreatedAt)
	}
	if err := db.WithContext(ctx).Create(r).Error; err != nil {
		if isDuplicate(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// GetRequest fetches a request by ID or returns ErrNotFound.
func GetRequest(ctx context.Context, db *gorm.DB, id string) (*domain.Request, error) {
	var r domain.Request
	err := withSongTitle(db.WithContext(ctx)).
		Where("requests.id = ?", id).
		Take(&r).Error
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// ListRequests returns requests matching f in creation order. Final ordering
// is applied by the queue package.
func ListRequests(ctx context.Context, db *gorm.DB, f domain.RequestFilter) ([]domain.Request, error) {
	q := withSongTitle(db.WithContext(ctx))
	if len(f.Statuses) > 0 {
		statuses := make([]string, len(f.Statuses))
		for i, s := range f.Statuses {
			statuses[i] = string(s)
		}
		q = q.Where("requests.status IN ?", statuses)
	}
	if f.PaymentStatus != "" {
		q = q.Where("requests.payment_status = ?", string(f.PaymentStatus))
	}
	out := []domain.Request{}
	err := q.Order("requests.created_at ASC, requests.id ASC").Find(&out).Error
	return out, err
}

// CountRequestsBySocial counts every request (any status) for a user_social.
func CountRequestsBySocial(ctx context.Context, db *gorm.DB, social string) (int64, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.Request{}).
		Where("user_social = ?", social).
		Count(&n).Error
	return n, err
}

// UpdateRequest applies the non-nil fields of c in one statement. It returns
// ErrNotFound when no row matches id.
func UpdateRequest(ctx context.Context, db *gorm.DB, id string, c domain.RequestChanges) error {
	updates := map[string]any{}
	if c.Status != nil {
		updates["status"] = string(*c.Status)
	}
	if c.Likes != nil {
		updates["likes"] = *c.Likes
	}
	if c.PaymentStatus != nil {
		updates["payment_status"] = string(*c.PaymentStatus)
	}
	if len(updates) == 0 {
		_, err := GetRequest(ctx, db, id)
		return err
	}

	res := db.WithContext(ctx).
		Model(&domain.Request{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementLikes performs likes = likes + 1 as a single-row update.
func IncrementLikes(ctx context.Context, db *gorm.DB, id string) error {
	res := db.WithContext(ctx).
		Model(&domain.Request{}).
		Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + ?", 1))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteRequest removes a request or returns ErrNotFound.
func DeleteRequest(ctx context.Context, db *gorm.DB, id string) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Request{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
