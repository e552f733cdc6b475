// Package queue defines the play order of song requests.
//
// The order is a total order over requests with this key precedence:
//
//  1. status rank: pending, queue, playing, completed, anything else last
//  2. paid requests before free ones
//  3. higher price_paid first
//  4. higher priority first
//  5. older created_at first
//  6. id ascending
//
// The comparator is pure; it never touches storage.
package queue

import (
	"sort"
	"strings"

	"github.com/tbourn/go-songrequest-backend/internal/domain"
)

var statusRanks = map[domain.RequestStatus]int{
	domain.StatusPending:   0,
	domain.StatusQueue:     1,
	domain.StatusPlaying:   2,
	domain.StatusCompleted: 3,
}

// StatusRank maps a status to its position in the queue; unknown values
// sort after completed.
func StatusRank(s domain.RequestStatus) int {
	if r, ok := statusRanks[s]; ok {
		return r
	}
	return len(statusRanks)
}

// Compare returns a negative number when a plays before b, a positive number
// when b plays before a and 0 only for requests with identical keys.
func Compare(a, b domain.Request) int {
	if d := StatusRank(a.Status) - StatusRank(b.Status); d != 0 {
		return d
	}
	if a.IsFree != b.IsFree {
		if a.IsFree {
			return 1
		}
		return -1
	}
	if a.PricePaid != b.PricePaid {
		if a.PricePaid > b.PricePaid {
			return -1
		}
		return 1
	}
	if d := b.Priority - a.Priority; d != 0 {
		return d
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		if a.CreatedAt.Before(b.CreatedAt) {
			return -1
		}
		return 1
	}
	return strings.Compare(a.ID, b.ID)
}

// Less reports whether a plays before b.
func Less(a, b domain.Request) bool { return Compare(a, b) < 0 }

// Sort orders reqs in place.
func Sort(reqs []domain.Request) {
	sort.SliceStable(reqs, func(i, j int) bool { return Less(reqs[i], reqs[j]) })
}
