package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/draft-ratings/internal/config"
	"github.com/riskibarqy/draft-ratings/internal/platform/logging"
)

func memoryConfig() config.Config {
	return config.Config{
		AppEnv:             config.EnvDev,
		ServiceName:        "draft-ratings-api",
		HTTPAddr:           ":0",
		StoreDriver:        config.StoreDriverMemory,
		LeagueStartDate:    time.Date(2024, time.October, 22, 0, 0, 0, 0, time.UTC),
		DefaultSeason:      2025,
		CORSAllowedOrigins: []string{"*"},
		MaxBodyBytes:       1 << 20,
		MetricsEnabled:     true,
	}
}

func TestNew_MemoryStore(t *testing.T) {
	a, err := New(context.Background(), memoryConfig(), logging.NewNop())
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	t.Cleanup(func() {
		if err := a.Close(); err != nil {
			t.Fatalf("close app: %v", err)
		}
	})

	rec := httptest.NewRecorder()
	a.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Rim Runners") {
		t.Fatalf("expected seeded teams on dashboard")
	}

	rec = httptest.NewRecorder()
	a.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected metrics endpoint, got %d", rec.Code)
	}
}

func TestNew_MetricsDisabled(t *testing.T) {
	cfg := memoryConfig()
	cfg.MetricsEnabled = false

	a, err := New(context.Background(), cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("new app: %v", err)
	}

	rec := httptest.NewRecorder()
	a.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 without metrics, got %d", rec.Code)
	}
}

func TestNew_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{name: "unknown driver", mutate: func(c *config.Config) { c.StoreDriver = "sqlite" }},
		{name: "empty addr", mutate: func(c *config.Config) { c.HTTPAddr = "" }},
		{name: "no default season", mutate: func(c *config.Config) { c.DefaultSeason = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := memoryConfig()
			tt.mutate(&cfg)
			if _, err := New(context.Background(), cfg, logging.NewNop()); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
