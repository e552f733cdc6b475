package repo

import (
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
)

func TestNewRequestID_MonotonicWithinMillisecond(t *testing.T) {
	at := time.Date(2025, 5, 1, 20, 0, 0, 0, time.UTC)
	prev := ""
	for i := 0; i < 100; i++ {
		id := NewRequestID(at)
		if len(id) != 26 {
			t.Fatalf("len(%q) = %d; want 26", id, len(id))
		}
		if id <= prev {
			t.Fatalf("ids not increasing: %q after %q", id, prev)
		}
		prev = id
	}
	parsed, err := ulid.Parse(prev)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := ulid.Time(parsed.Time()); !got.Equal(at) {
		t.Fatalf("timestamp = %v; want %v", got, at)
	}
}

func TestNewID_IsUUID(t *testing.T) {
	a, b := NewID(), NewID()
	if len(a) != 36 || a == b {
		t.Fatalf("unexpected ids %q %q", a, b)
	}
}
