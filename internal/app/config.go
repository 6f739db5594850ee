package app

import (
	"strconv"
	"strings"
	"time"

	dbpkg "github.com/yungbote/foodmap-backend/internal/data/db"
	"github.com/yungbote/foodmap-backend/internal/observability"
	"github.com/yungbote/foodmap-backend/internal/platform/envutil"
	"github.com/yungbote/foodmap-backend/internal/platform/logger"
)

const serviceName = "foodmap-backend"

type Config struct {
	Port            string
	ShutdownTimeout time.Duration
	CORSOrigins     []string

	DB dbpkg.Config

	MetricsEnabled bool
	MetricsAddr    string
	DBStatsEvery   time.Duration

	Otel observability.OtelConfig

	KafkaBrokers []string
	KafkaTopic   string
}

func LoadConfig(log *logger.Logger) Config {
	return Config{
		Port:            envutil.String("PORT", "8080", log),
		ShutdownTimeout: envutil.Duration("SHUTDOWN_TIMEOUT_SECONDS", 15*time.Second, log),
		CORSOrigins:     envutil.List("CORS_ALLOWED_ORIGINS", nil, log),

		DB: dbpkg.Config{
			Driver:           envutil.String("DB_DRIVER", dbpkg.DriverPostgres, log),
			PostgresHost:     envutil.String("POSTGRES_HOST", "localhost", log),
			PostgresPort:     envutil.String("POSTGRES_PORT", "5432", log),
			PostgresUser:     envutil.String("POSTGRES_USER", "postgres", log),
			PostgresPassword: envutil.String("POSTGRES_PASSWORD", "", log),
			PostgresName:     envutil.String("POSTGRES_NAME", "foodmap", log),
			PostgresSSLMode:  envutil.String("POSTGRES_SSLMODE", "disable", log),
			SQLitePath:       envutil.String("SQLITE_PATH", "foodmap.db", log),
			MaxOpenConns:     envutil.Int("DB_MAX_OPEN_CONNS", 20, log),
			MaxIdleConns:     envutil.Int("DB_MAX_IDLE_CONNS", 10, log),
			SlowThreshold:    time.Duration(envutil.Int("DB_SLOW_QUERY_MS", 500, log)) * time.Millisecond,
		},

		MetricsEnabled: envutil.Bool("METRICS_ENABLED", false, log),
		MetricsAddr:    envutil.String("METRICS_ADDR", "", log),
		DBStatsEvery:   envutil.Duration("DB_STATS_INTERVAL_SECONDS", 15*time.Second, log),

		Otel: observability.OtelConfig{
			Enabled:     envutil.Bool("OTEL_ENABLED", false, log),
			ServiceName: envutil.String("OTEL_SERVICE_NAME", serviceName, log),
			Environment: envutil.String("OTEL_ENVIRONMENT", "development", log),
			Version:     envutil.String("OTEL_SERVICE_VERSION", "", log),
			Endpoint:    envutil.String("OTEL_EXPORTER_OTLP_ENDPOINT", "", log),
			Headers:     envutil.String("OTEL_EXPORTER_OTLP_HEADERS", "", log),
			Insecure:    envutil.Bool("OTEL_EXPORTER_OTLP_INSECURE", false, log),
			SampleRatio: parseRatio(envutil.String("OTEL_SAMPLER_RATIO", "1", log)),
		},

		KafkaBrokers: envutil.List("KAFKA_BROKERS", nil, log),
		KafkaTopic:   envutil.String("KAFKA_TOPIC", "food-resources", log),
	}
}

func (c Config) Addr() string {
	port := strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
	return ":" + port
}

func parseRatio(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 1
	}
	return v
}
