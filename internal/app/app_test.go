package app

import (
	"context"
	stdhttp "net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	dbpkg "github.com/yungbote/foodmap-backend/internal/data/db"
	"github.com/yungbote/foodmap-backend/internal/platform/logger"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, name := range []string{"PORT", "DB_DRIVER", "KAFKA_BROKERS", "KAFKA_TOPIC", "CORS_ALLOWED_ORIGINS", "DB_SLOW_QUERY_MS", "SHUTDOWN_TIMEOUT_SECONDS"} {
		t.Setenv(name, "")
	}
	cfg := LoadConfig(logger.Nop())
	if cfg.Addr() != ":8080" {
		t.Fatalf("unexpected addr %q", cfg.Addr())
	}
	if cfg.DB.Driver != dbpkg.DriverPostgres {
		t.Fatalf("unexpected driver %q", cfg.DB.Driver)
	}
	if cfg.DB.SlowThreshold != 500*time.Millisecond {
		t.Fatalf("unexpected slow threshold %v", cfg.DB.SlowThreshold)
	}
	if cfg.ShutdownTimeout != 15*time.Second {
		t.Fatalf("unexpected shutdown timeout %v", cfg.ShutdownTimeout)
	}
	if len(cfg.KafkaBrokers) != 0 || cfg.KafkaTopic != "food-resources" {
		t.Fatalf("unexpected kafka config %v %q", cfg.KafkaBrokers, cfg.KafkaTopic)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", ":9090")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("DB_SLOW_QUERY_MS", "250")
	t.Setenv("OTEL_SAMPLER_RATIO", "0.25")

	cfg := LoadConfig(logger.Nop())
	if cfg.Addr() != ":9090" {
		t.Fatalf("unexpected addr %q", cfg.Addr())
	}
	if cfg.DB.Driver != dbpkg.DriverSQLite {
		t.Fatalf("unexpected driver %q", cfg.DB.Driver)
	}
	if strings.Join(cfg.KafkaBrokers, "|") != "k1:9092|k2:9092" {
		t.Fatalf("unexpected brokers %v", cfg.KafkaBrokers)
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Fatalf("unexpected origins %v", cfg.CORSOrigins)
	}
	if cfg.DB.SlowThreshold != 250*time.Millisecond {
		t.Fatalf("unexpected slow threshold %v", cfg.DB.SlowThreshold)
	}
	if cfg.Otel.SampleRatio != 0.25 {
		t.Fatalf("unexpected sample ratio %v", cfg.Otel.SampleRatio)
	}
}

func TestNewWithConfigServesSQLite(t *testing.T) {
	cfg := Config{
		Port:            "0",
		ShutdownTimeout: time.Second,
		DB: dbpkg.Config{
			Driver:     dbpkg.DriverSQLite,
			SQLitePath: filepath.Join(t.TempDir(), "foodmap.db"),
		},
		KafkaTopic: "food-resources",
	}
	a, err := NewWithConfig(context.Background(), logger.Nop(), cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	defer a.Close()

	body := `{"name":"Pantry","streetAddress":"1 Main St","city":"Austin","state":"TX","zipcode":78701}`
	req := httptest.NewRequest(stdhttp.MethodPost, "/food-resources", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	a.Server.Engine.ServeHTTP(rec, req)
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	a.Server.Engine.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, "/healthcheck", nil))
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("healthcheck: expected 200, got %d", rec.Code)
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	cfg := Config{
		Port:            "0",
		ShutdownTimeout: time.Second,
		DB: dbpkg.Config{
			Driver:     dbpkg.DriverSQLite,
			SQLitePath: filepath.Join(t.TempDir(), "foodmap.db"),
		},
	}
	a, err := NewWithConfig(context.Background(), logger.Nop(), cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	defer a.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Run did not stop after cancel")
	}
}
