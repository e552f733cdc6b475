package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tbourn/go-songrequest-backend/internal/config"
	"github.com/tbourn/go-songrequest-backend/internal/repo"
)

const repertoire = `# Repertoire

| Song | Artist | Genre | Tier |
|------|--------|-------|------|
| Imagine | John Lennon | pop | high |
| Creep | Radiohead | rock | low |
`

func writeCatalog(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "songs.md")
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return p
}

func TestOpenStore_Memory(t *testing.T) {
	st, closeFn, err := OpenStore(config.Config{DBDriver: config.DriverMemory})
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	defer closeFn()
	if _, ok := st.(*repo.MemoryStore); !ok {
		t.Fatalf("store = %T; want *repo.MemoryStore", st)
	}
}

func TestOpenStore_SQLite_MigratesAndSeeds(t *testing.T) {
	cfg := config.Config{DBDriver: config.DriverSQLite, DBPath: filepath.Join(t.TempDir(), "songs.db")}
	st, closeFn, err := OpenStore(cfg)
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	defer closeFn()

	ctx := context.Background()
	path := writeCatalog(t, repertoire)
	n, err := SeedCatalog(ctx, st, path)
	if err != nil || n != 2 {
		t.Fatalf("SeedCatalog = %d, %v; want 2", n, err)
	}
	// A populated catalog is left alone.
	if n, err := SeedCatalog(ctx, st, path); err != nil || n != 0 {
		t.Fatalf("second SeedCatalog = %d, %v; want 0", n, err)
	}
	songs, err := st.ListSongs(ctx)
	if err != nil || len(songs) != 2 {
		t.Fatalf("ListSongs = %d, %v", len(songs), err)
	}
}

func TestOpenStore_SQLite_BadPath(t *testing.T) {
	cfg := config.Config{DBDriver: config.DriverSQLite, DBPath: filepath.Join(t.TempDir(), "missing", "x.db")}
	if _, _, err := OpenStore(cfg); err == nil || !strings.Contains(err.Error(), "open sqlite") {
		t.Fatalf("OpenStore err = %v", err)
	}
}

func TestSeedCatalog_Errors(t *testing.T) {
	ctx := context.Background()
	st := repo.NewMemoryStore()

	if n, err := SeedCatalog(ctx, st, ""); n != 0 || err != nil {
		t.Fatalf("empty path = %d, %v", n, err)
	}
	if _, err := SeedCatalog(ctx, st, filepath.Join(t.TempDir(), "nope.md")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file err = %v", err)
	}
	bad := writeCatalog(t, "| Song | Artist | Genre | Tier |\n|---|---|---|---|\n| X | Y | Z | legendary |\n")
	if _, err := SeedCatalog(ctx, st, bad); err == nil || !strings.Contains(err.Error(), "seed catalog") {
		t.Fatalf("invalid tier err = %v", err)
	}
	if c, _ := st.CountSongs(ctx); c != 0 {
		t.Fatalf("failed seed left %d songs", c)
	}
}

func TestRun_Commands(t *testing.T) {
	t.Setenv("DB_DRIVER", "memory")

	if err := Run(context.Background(), []string{"dance"}); err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Fatalf("unknown command err = %v", err)
	}
	if err := Run(context.Background(), []string{"seed"}); err == nil {
		t.Fatalf("seed without path should fail")
	}
	if err := Run(context.Background(), []string{"seed", writeCatalog(t, repertoire)}); err != nil {
		t.Fatalf("seed: %v", err)
	}
}

func TestRun_BadConfig(t *testing.T) {
	t.Setenv("RATE_RPS", "not-a-number")
	if err := Run(context.Background(), nil); err == nil || !strings.Contains(err.Error(), "load config") {
		t.Fatalf("Run err = %v", err)
	}
}
