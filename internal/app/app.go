// Package app bootstraps the song request service: configuration, logging,
// tracing, storage, catalog seeding and the HTTP server lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/tbourn/go-songrequest-backend/internal/catalog"
	"github.com/tbourn/go-songrequest-backend/internal/config"
	httpapi "github.com/tbourn/go-songrequest-backend/internal/http"
	"github.com/tbourn/go-songrequest-backend/internal/observability"
	"github.com/tbourn/go-songrequest-backend/internal/repo"
	"github.com/tbourn/go-songrequest-backend/internal/services"
	"github.com/tbourn/go-songrequest-backend/internal/sysutil"
)

// ShutdownTimeout controls how long to wait for in-flight requests on exit.
var ShutdownTimeout = 10 * time.Second

// Version is stamped at build time with -ldflags "-X ...app.Version=...".
var Version string

// Run dispatches a command: "serve" (the default) or "seed <path>".
func Run(ctx context.Context, args []string) error {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	sysutil.SetupLogger(os.Stdout, cfg.LogPretty, cfg.OTEL.ServiceName)
	sysutil.SetLogLevel(cfg.LogLevel)

	cmd := "serve"
	if len(args) > 0 {
		cmd = args[0]
	}
	switch cmd {
	case "serve":
		return serve(ctx, cfg)
	case "seed":
		if len(args) < 2 {
			return errors.New("seed: expected a catalog path")
		}
		cfg.SeedPath = args[1]
		return seedOnly(ctx, cfg)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func serve(ctx context.Context, cfg config.Config) error {
	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, observability.BuildInfo{
		Version:     sysutil.FirstNonEmpty(Version, os.Getenv("APP_VERSION"), "dev"),
		StoreDriver: cfg.DBDriver,
	})
	if err != nil {
		return fmt.Errorf("setup otel: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownOTel(sctx); err != nil {
			log.Warn().Err(err).Msg("otel shutdown")
		}
	}()

	store, closeStore, err := OpenStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	if _, err := SeedCatalog(ctx, store, cfg.SeedPath); err != nil {
		return err
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	httpapi.RegisterRoutes(r, store, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	log.Info().
		Str("port", cfg.Port).
		Str("driver", cfg.DBDriver).
		Str("base_path", cfg.APIBasePath).
		Msg("starting http server")

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- srv.ListenAndServe()
	}()

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case <-sigCtx.Done():
		log.Info().Msg("shutting down http server")
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func seedOnly(ctx context.Context, cfg config.Config) error {
	store, closeStore, err := OpenStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()
	_, err = SeedCatalog(ctx, store, cfg.SeedPath)
	return err
}

// OpenStore opens, migrates and instruments the configured backend. The
// returned func releases it.
func OpenStore(cfg config.Config) (repo.Store, func(), error) {
	var open func(string) (*gorm.DB, error)
	var dsn string
	switch cfg.DBDriver {
	case config.DriverMemory:
		return repo.NewMemoryStore(), func() {}, nil
	case config.DriverPostgres:
		open, dsn = repo.OpenPostgres, cfg.DatabaseURL
	default:
		open, dsn = repo.OpenSQLite, cfg.DBPath
	}

	db, err := open(dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", cfg.DBDriver, err)
	}
	closeDB := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if err := repo.AutoMigrate(db); err != nil {
		closeDB()
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}
	if err := repo.Instrument(db); err != nil {
		closeDB()
		return nil, nil, fmt.Errorf("instrument: %w", err)
	}
	return repo.NewGormStore(db), closeDB, nil
}

// SeedCatalog loads the Markdown repertoire at path into an empty catalog.
// An empty path is a no-op.
func SeedCatalog(ctx context.Context, store repo.Store, path string) (int, error) {
	if path == "" {
		return 0, nil
	}
	songs, err := catalog.LoadMarkdown(path)
	if err != nil {
		return 0, fmt.Errorf("load catalog: %w", err)
	}
	n, err := services.NewSongService(store).Seed(ctx, songs)
	if err != nil {
		return 0, fmt.Errorf("seed catalog: %w", err)
	}
	zerolog.Ctx(ctx).Info().Str("path", path).Int("parsed", len(songs)).Int("inserted", n).Msg("catalog seeded")
	return n, nil
}
