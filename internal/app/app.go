package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	dbpkg "github.com/yungbote/foodmap-backend/internal/data/db"
	"github.com/yungbote/foodmap-backend/internal/http"
	"github.com/yungbote/foodmap-backend/internal/observability"
	"github.com/yungbote/foodmap-backend/internal/platform/envutil"
	"github.com/yungbote/foodmap-backend/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	DB       *dbpkg.Service
	Cfg      Config
	Repos    Repos
	Services Services
	Metrics  *observability.Metrics
	Server   *http.Server

	otelShutdown func(context.Context) error
}

// LoadDotEnv reads .env into the process environment. A missing file is not an error.
func LoadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

func NewLogger() (*logger.Logger, error) {
	log, err := logger.New(envutil.String("LOG_MODE", "development", nil))
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return log, nil
}

// New wires the full application: store, repos, aggregate, services and HTTP server.
func New(ctx context.Context) (*App, error) {
	if err := LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}
	log, err := NewLogger()
	if err != nil {
		return nil, err
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)

	a, err := NewWithConfig(ctx, log, cfg)
	if err != nil {
		log.Sync()
		return nil, err
	}
	return a, nil
}

func NewWithConfig(ctx context.Context, log *logger.Logger, cfg Config) (*App, error) {
	otelShutdown := observability.InitOTel(ctx, log, cfg.Otel)
	metrics := observability.Init(cfg.MetricsEnabled, log)

	dbService, err := dbpkg.NewService(cfg.DB, log)
	if err != nil {
		_ = otelShutdown(ctx)
		return nil, fmt.Errorf("init database: %w", err)
	}
	if err := dbpkg.Prepare(dbService.DB()); err != nil {
		_ = dbService.Close()
		_ = otelShutdown(ctx)
		return nil, fmt.Errorf("database migrate: %w", err)
	}

	reposet := wireRepos(dbService.DB(), log)
	serviceset, err := wireServices(dbService.DB(), log, cfg, reposet, metrics)
	if err != nil {
		_ = dbService.Close()
		_ = otelShutdown(ctx)
		return nil, err
	}
	handlerset := wireHandlers(log, dbService, serviceset, metrics)
	server := wireServer(log, cfg, handlerset, metrics)

	return &App{
		Log:          log,
		DB:           dbService,
		Cfg:          cfg,
		Repos:        reposet,
		Services:     serviceset,
		Metrics:      metrics,
		Server:       server,
		otelShutdown: otelShutdown,
	}, nil
}

// Run serves HTTP until ctx is cancelled or SIGINT/SIGTERM arrives, then shuts down
// within ShutdownTimeout.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	a.Metrics.StartServer(gctx, a.Log, a.Cfg.MetricsAddr)
	a.Metrics.StartDBCollector(gctx, a.Log, a.DB.DB(), a.Cfg.DBStatsEvery)

	g.Go(func() error {
		a.Log.Info("Server listening", "addr", a.Server.Addr())
		return a.Server.Run()
	})
	g.Go(func() error {
		<-gctx.Done()
		a.Log.Info("Shutting down", "timeout", a.Cfg.ShutdownTimeout.String())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Cfg.ShutdownTimeout)
		defer cancel()
		if err := a.Server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if err := a.Services.Close(); err != nil {
		a.Log.Warn("Kafka publisher close failed", "error", err)
	}
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			a.Log.Warn("Database close failed", "error", err)
		}
	}
	if a.otelShutdown != nil {
		if err := a.otelShutdown(context.Background()); err != nil {
			a.Log.Warn("OTel shutdown failed", "error", err)
		}
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
