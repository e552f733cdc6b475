package repo

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-songrequest-backend/internal/domain"
)

func TestOpenSQLite_ErrorOnBadPath(t *testing.T) {
	base := t.TempDir()
	bad := filepath.Join(base, "does-not-exist", "app.db")

	db, err := OpenSQLite(bad)
	if err == nil || db != nil {
		t.Fatalf("expected error opening %q, got db=%v err=%v", bad, db, err)
	}

	lower := strings.ToLower(err.Error())
	if !(os.IsNotExist(err) ||
		strings.Contains(lower, "unable to open database file") ||
		strings.Contains(lower, "no such file or directory") ||
		strings.Contains(lower, "out of memory")) {
		t.Fatalf("unexpected error opening %q: %v", bad, err)
	}
}

func TestOpenSQLite_SetsPragmas_Pool_AndAutoMigrate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.db")

	db, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db.DB(): %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	var journalMode string
	if err := db.Raw("PRAGMA journal_mode;").Row().Scan(&journalMode); err != nil {
		t.Fatalf("PRAGMA journal_mode: %v", err)
	}
	if strings.ToLower(journalMode) != "wal" {
		t.Fatalf("expected journal_mode=wal, got %q", journalMode)
	}
	var busyMS, fkOn int
	if err := db.Raw("PRAGMA busy_timeout;").Row().Scan(&busyMS); err != nil {
		t.Fatalf("PRAGMA busy_timeout: %v", err)
	}
	if busyMS != 5000 {
		t.Fatalf("expected busy_timeout=5000, got %d", busyMS)
	}
	if err := db.Raw("PRAGMA foreign_keys;").Row().Scan(&fkOn); err != nil {
		t.Fatalf("PRAGMA foreign_keys: %v", err)
	}
	if fkOn != 1 {
		t.Fatalf("expected foreign_keys=1, got %d", fkOn)
	}
	if stats := sqlDB.Stats(); stats.MaxOpenConnections != 10 {
		t.Fatalf("expected MaxOpenConnections=10, got %d", stats.MaxOpenConnections)
	}

	if err := AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}
	// Running it twice must be harmless.
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate (again): %v", err)
	}
	m := db.Migrator()
	for _, tbl := range []any{&domain.Song{}, &domain.Request{}, &domain.Idempotency{}} {
		if !m.HasTable(tbl) {
			t.Fatalf("expected table for %T to exist", tbl)
		}
	}
	if !m.HasIndex(&domain.Request{}, "ux_requests_free_social") {
		t.Fatalf("expected free-slot index")
	}
}

func TestWithPragmas(t *testing.T) {
	if got := withPragmas("app.db"); !strings.HasPrefix(got, "app.db?_pragma=busy_timeout(5000)") {
		t.Fatalf("withPragmas(app.db) = %q", got)
	}
	if got := withPragmas("file:x?mode=memory"); !strings.HasPrefix(got, "file:x?mode=memory&_pragma=") {
		t.Fatalf("withPragmas with query = %q", got)
	}
}

func TestAutoMigrate_FreeSlotIndex_RejectsSecondFree(t *testing.T) {
	db := newTestDB(t, true)
	now := time.Now().UTC()
	mk := func(id string, free bool) *domain.Request {
		return &domain.Request{
			ID: id, SongID: "s1", UserName: "Ana", UserSocial: "@ana",
			Status: domain.StatusPending, Priority: 1, IsFree: free,
			PaymentStatus: domain.PaymentCompleted, CreatedAt: now,
		}
	}
	if err := db.Create(mk("r1", true)).Error; err != nil {
		t.Fatalf("first free: %v", err)
	}
	// Paid rows for the same identity are not constrained.
	if err := db.Create(mk("r2", false)).Error; err != nil {
		t.Fatalf("paid: %v", err)
	}
	if err := db.Create(mk("r3", false)).Error; err != nil {
		t.Fatalf("paid (2): %v", err)
	}
	err := db.Create(mk("r4", true)).Error
	if err == nil {
		t.Fatalf("expected unique violation for second free request")
	}
	if !isDuplicate(err) {
		t.Fatalf("isDuplicate(%v) = false", err)
	}
}

func TestIsDuplicate(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("boom"), false},
		{gorm.ErrDuplicatedKey, true},
		{ErrDuplicate, true},
		{errors.New("UNIQUE constraint failed: requests.user_social"), true},
		{errors.New("constraint failed: UNIQUE constraint failed (2067)"), true},
	}
	for _, c := range cases {
		if got := isDuplicate(c.err); got != c.want {
			t.Fatalf("isDuplicate(%v) = %v; want %v", c.err, got, c.want)
		}
	}
}

// Compile-time guard to ensure signature stability.
var _ func(string) (*gorm.DB, error) = OpenSQLite
