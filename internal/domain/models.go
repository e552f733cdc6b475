// Package domain defines the persistence models for the song catalog and the
// request queue. These types are mapped with GORM and shared by the
// repository, service and HTTP layers.
package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// Song is an entry of the performer's repertoire. Its request price is not
// stored: it is derived from Relevance on every read (see Price).
//
// Fields:
//   - ID: UUID primary key (char(36)).
//   - Title / Artist / Genre: catalog metadata; title and artist are searchable.
//   - Relevance: demand tier (low, medium, high) that drives the price.
//   - CreatedAt: insertion time (UTC).
type Song struct {
	ID        string    `json:"id"         gorm:"type:char(36);primaryKey"`
	Title     string    `json:"title"      gorm:"type:varchar(200);not null;index:idx_songs_title"`
	Artist    string    `json:"artist"     gorm:"type:varchar(200);not null"`
	Genre     string    `json:"genre"      gorm:"type:varchar(100);not null"`
	Relevance Relevance `json:"relevance"  gorm:"type:varchar(20);not null"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name for Song.
func (Song) TableName() string { return "songs" }

// Price returns the request price for the song's relevance tier.
func (s Song) Price() float64 {
	return PriceFor(s.Relevance).InexactFloat64()
}

// MarshalJSON adds the derived price to the serialized song.
func (s Song) MarshalJSON() ([]byte, error) {
	type alias Song
	return json.Marshal(struct {
		alias
		Price float64 `json:"price"`
	}{alias(s), s.Price()})
}

// Request is a song request submitted by an attendee.
//
// Fields:
//   - ID: ULID primary key; lexical order follows creation time.
//   - SongID: requested song. No FK constraint: deleting a song orphans its
//     requests and SongTitle becomes nil.
//   - SongTitle: read-only projection of songs.title, serialized as "song".
//   - UserSocial: normalized social handle; key for free-request eligibility.
//   - SocialPlatforms: declared follows, persisted as JSON text.
//   - Priority: number of recognized platforms followed, fixed at creation.
//   - IsFree / PricePaid / PaymentStatus: pricing decided at creation.
type Request struct {
	ID              string          `json:"id"               gorm:"type:char(26);primaryKey"`
	SongID          string          `json:"song_id"          gorm:"type:char(36);not null;index:idx_requests_song"`
	SongTitle       *string         `json:"song"             gorm:"column:song_title;->;-:migration"`
	UserName        string          `json:"user_name"        gorm:"type:varchar(200);not null"`
	UserSocial      string          `json:"user_social"      gorm:"type:varchar(200);not null;index:idx_requests_social"`
	Message         string          `json:"message"          gorm:"type:text"`
	SocialPlatforms SocialPlatforms `json:"social_platforms" gorm:"type:text;not null"`
	Status          RequestStatus   `json:"status"           gorm:"type:varchar(20);not null;index:idx_requests_status"`
	Priority        int             `json:"priority"         gorm:"not null"`
	Likes           int             `json:"likes"            gorm:"not null"`
	IsFree          bool            `json:"is_free"          gorm:"not null"`
	PricePaid       float64         `json:"price_paid"       gorm:"not null"`
	PaymentStatus   PaymentStatus   `json:"payment_status"   gorm:"type:varchar(20);not null;index:idx_requests_payment"`
	CreatedAt       time.Time       `json:"created_at"`
}

// TableName returns the database table name for Request.
func (Request) TableName() string { return "requests" }

// NormalizeSocial trims a social handle and ensures the leading "@", so that
// "alice", " @alice" and "@alice" share one free-request slot.
// An empty or blank handle stays empty.
func NormalizeSocial(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || s == "@" {
		return ""
	}
	if !strings.HasPrefix(s, "@") {
		s = "@" + s
	}
	return s
}

// RequestFilter narrows a request listing. Zero values mean "no filter".
type RequestFilter struct {
	Statuses      []RequestStatus
	PaymentStatus PaymentStatus
}

// RequestChanges is a partial update of a request; nil fields are untouched.
type RequestChanges struct {
	Status        *RequestStatus
	Likes         *int
	PaymentStatus *PaymentStatus
}

// Empty reports whether the change set carries no field.
func (c RequestChanges) Empty() bool {
	return c.Status == nil && c.Likes == nil && c.PaymentStatus == nil
}

// Stats is the on-demand summary of the request table.
type Stats struct {
	TotalRequests     int64   `json:"total_requests"`
	PendingRequests   int64   `json:"pending_requests"`
	CompletedRequests int64   `json:"completed_requests"`
	NewFollowers      int64   `json:"new_followers"`
	ActiveUsers       int64   `json:"active_users"`
	TotalRevenue      float64 `json:"total_revenue"`
	PaidRequests      int64   `json:"paid_requests"`
	FreeRequests      int64   `json:"free_requests"`
}
