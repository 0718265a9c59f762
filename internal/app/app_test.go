package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/riskibarqy/sleeper-league/internal/config"
	"github.com/riskibarqy/sleeper-league/internal/platform/logging"
)

func memoryConfig() config.Config {
	return config.Config{
		AppEnv:             config.EnvDev,
		HTTPAddr:           ":0",
		CacheEnabled:       true,
		CacheTTL:           time.Minute,
		CORSAllowedOrigins: []string{"*"},
		InternalJobToken:   "job-secret",
		Season: config.SeasonRules{
			PlayoffStartWeek: 15,
			MaxWeek:          18,
		},
	}
}

func TestBuild_MemoryBackend(t *testing.T) {
	t.Parallel()

	container, err := Build(context.Background(), memoryConfig(), logging.NewNop())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	t.Cleanup(func() { _ = container.Close() })

	if container.Sync == nil || container.Tournament == nil || container.WeeklyWinners == nil || container.JobRunner == nil {
		t.Fatalf("expected job services to be wired: %+v", container)
	}

	leagues, err := container.Leagues.ListLeagues(context.Background())
	if err != nil {
		t.Fatalf("list leagues: %v", err)
	}
	if len(leagues) != 0 {
		t.Fatalf("expected an empty store, got %d leagues", len(leagues))
	}
}

func TestNewHTTPServer_ServesHealthz(t *testing.T) {
	t.Parallel()

	cfg := memoryConfig()
	container, err := Build(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	srv, err := NewHTTPServer(cfg, container, logging.NewNop())
	if err != nil {
		t.Fatalf("new http server: %v", err)
	}

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestNewHTTPServer_Validation(t *testing.T) {
	t.Parallel()

	if _, err := NewHTTPServer(memoryConfig(), nil, nil); err == nil {
		t.Fatalf("expected error for a nil container")
	}

	cfg := memoryConfig()
	container, err := Build(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	cfg.HTTPAddr = ""
	if _, err := NewHTTPServer(cfg, container, nil); err == nil {
		t.Fatalf("expected error for an empty addr")
	}
}
