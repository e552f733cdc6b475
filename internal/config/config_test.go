package config

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestMustLoad_PanicsOnInvalidConfig(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustLoad should panic on invalid config")
		}
	}()
	_ = MustLoad()
}

func TestMustLoad_ReadsProcessEnv(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("DB_DRIVER", "memory")
	cfg := MustLoad()
	if cfg.Port != "9999" || cfg.DBDriver != DriverMemory {
		t.Fatalf("process env not applied: %+v", cfg)
	}
}

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Port != "8080" || cfg.ReadTimeout != 15*time.Second || cfg.MaxHeaderBytes != 1<<20 || cfg.GinMode != "release" {
		t.Fatalf("server defaults: %+v", cfg)
	}
	if cfg.LogLevel != "info" || cfg.SwaggerEnabled || !cfg.GzipEnabled || cfg.APIBasePath != "/api" {
		t.Fatalf("logging/docs defaults: %+v", cfg)
	}
	if cfg.DBDriver != DriverSQLite || cfg.DBPath != "songs.db" || cfg.SeedPath != "" {
		t.Fatalf("storage defaults: %+v", cfg)
	}
	if cfg.RateRPS != 5 || cfg.RateBurst != 10 || cfg.CORS.AllowedOrigins != nil {
		t.Fatalf("protection defaults: %+v", cfg)
	}
	if cfg.Security.HSTSMaxAge != 180*24*time.Hour || cfg.IdempotencyTTL != 24*time.Hour {
		t.Fatalf("durations: %+v", cfg)
	}
	if cfg.OTEL.Enabled || !cfg.OTEL.Insecure || cfg.OTEL.ServiceName != "go-songrequest-backend" || cfg.OTEL.SampleRatio != 1 {
		t.Fatalf("otel defaults: %+v", cfg.OTEL)
	}
}

func TestLoadFrom_OverridesAndNormalization(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"PORT":                        "8088",
		"READ_TIMEOUT":                "2s",
		"GIN_MODE":                    "weird",
		"LOG_LEVEL":                   "WARNING",
		"LOG_PRETTY":                  "true",
		"SWAGGER_ENABLED":             "1",
		"GZIP_ENABLED":                "false",
		"API_BASE_PATH":               "api/v1/",
		"DB_DRIVER":                   " Postgres ",
		"DATABASE_URL":                "postgres://u:p@db/songs",
		"SEED_PATH":                   "data/repertoire.md",
		"RATE_RPS":                    "2.5",
		"RATE_BURST":                  "3",
		"CORS_ALLOWED_ORIGINS":        " https://a.com , , http://b ",
		"ENABLE_HSTS":                 "TRUE",
		"HSTS_MAX_AGE":                "24h",
		"IDEMPOTENCY_TTL":             "48h",
		"OTEL_ENABLED":                "true",
		"OTEL_EXPORTER_OTLP_ENDPOINT": "otel:4317",
		"OTEL_EXPORTER_OTLP_INSECURE": "false",
		"OTEL_TRACES_SAMPLER_ARG":     "0.25",
	})
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Port != "8088" || cfg.ReadTimeout != 2*time.Second || cfg.GinMode != "release" {
		t.Fatalf("server: %+v", cfg)
	}
	if cfg.LogLevel != "warn" || !cfg.LogPretty || !cfg.SwaggerEnabled || cfg.GzipEnabled || cfg.APIBasePath != "/api/v1" {
		t.Fatalf("logging/docs: %+v", cfg)
	}
	if cfg.DBDriver != DriverPostgres || cfg.DatabaseURL == "" || cfg.SeedPath != "data/repertoire.md" {
		t.Fatalf("storage: %+v", cfg)
	}
	if cfg.RateRPS != 2.5 || cfg.RateBurst != 3 {
		t.Fatalf("rate: %+v", cfg)
	}
	if want := []string{"https://a.com", "http://b"}; !reflect.DeepEqual(cfg.CORS.AllowedOrigins, want) {
		t.Fatalf("origins = %#v; want %#v", cfg.CORS.AllowedOrigins, want)
	}
	if !cfg.Security.EnableHSTS || cfg.Security.HSTSMaxAge != 24*time.Hour || cfg.IdempotencyTTL != 48*time.Hour {
		t.Fatalf("security/idempotency: %+v", cfg)
	}
	if !cfg.OTEL.Enabled || cfg.OTEL.Insecure || cfg.OTEL.Endpoint != "otel:4317" || cfg.OTEL.SampleRatio != 0.25 {
		t.Fatalf("otel: %+v", cfg.OTEL)
	}
}

func TestLoadFrom_ParseErrors(t *testing.T) {
	for k, v := range map[string]string{
		"RATE_RPS":        "fast",
		"RATE_BURST":      "many",
		"READ_TIMEOUT":    "soon",
		"LOG_PRETTY":      "maybe",
		"IDEMPOTENCY_TTL": "1 day",
	} {
		if _, err := LoadFrom(map[string]string{k: v}); err == nil {
			t.Fatalf("%s=%q should fail to parse", k, v)
		}
	}
}

func TestLoadFrom_ValidationErrors(t *testing.T) {
	cases := []struct {
		env  map[string]string
		want string
	}{
		{map[string]string{"LOG_LEVEL": "verbose"}, "LOG_LEVEL"},
		{map[string]string{"PORT": " "}, "PORT"},
		{map[string]string{"WRITE_TIMEOUT": "0s"}, "timeouts"},
		{map[string]string{"MAX_HEADER_BYTES": "0"}, "MAX_HEADER_BYTES"},
		{map[string]string{"DB_DRIVER": "mysql"}, "DB_DRIVER"},
		{map[string]string{"DB_PATH": " "}, "DB_PATH"},
		{map[string]string{"DB_DRIVER": "postgres"}, "DATABASE_URL"},
		{map[string]string{"RATE_RPS": "-1"}, "RATE_RPS"},
		{map[string]string{"RATE_BURST": "0"}, "RATE_BURST"},
		{map[string]string{"HSTS_MAX_AGE": "-1h"}, "HSTS_MAX_AGE"},
		{map[string]string{"IDEMPOTENCY_TTL": "0s"}, "IDEMPOTENCY_TTL"},
		{map[string]string{"OTEL_TRACES_SAMPLER_ARG": "1.5"}, "OTEL_TRACES_SAMPLER_ARG"},
	}
	for _, tc := range cases {
		_, err := LoadFrom(tc.env)
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("LoadFrom(%v) err = %v; want mention of %s", tc.env, err, tc.want)
		}
	}

	// The memory driver needs neither a path nor a URL.
	if _, err := LoadFrom(map[string]string{"DB_DRIVER": "memory", "DB_PATH": " "}); err != nil {
		t.Fatalf("memory driver: %v", err)
	}
}

func TestNormalizeBasePathAndCompact(t *testing.T) {
	for in, want := range map[string]string{
		"":         "/",
		"/":        "/",
		"api":      "/api",
		"/api/v1/": "/api/v1",
		"//":       "/",
	} {
		if got := normalizeBasePath(in); got != want {
			t.Fatalf("normalizeBasePath(%q) = %q; want %q", in, got, want)
		}
	}
	if got := compact([]string{" ", ""}); got != nil {
		t.Fatalf("compact of blanks = %#v; want nil", got)
	}
}
