package observability

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/foodmap-backend/internal/platform/logger"
)

type Metrics struct {
	apiRequests *CounterVec
	apiLatency  *HistogramVec
	apiInflight *Gauge
	apiErrors   *CounterVec

	aggregateOps       *CounterVec
	aggregateLatency   *HistogramVec
	aggregateConflicts *CounterVec
	aggregateRetries   *CounterVec

	changeEvents *CounterVec
	dbStats      *GaugeVec
}

var (
	initOnce sync.Once
	instance *Metrics
)

// Init builds the process-wide metrics once. It returns nil when disabled so callers can
// pass the result straight through; every method is nil-safe.
func Init(enabled bool, log *logger.Logger) *Metrics {
	if !enabled {
		return nil
	}
	initOnce.Do(func() {
		instance = New()
		if log != nil {
			log.Info("Metrics enabled")
		}
	})
	return instance
}

func Current() *Metrics {
	return instance
}

func New() *Metrics {
	return &Metrics{
		apiRequests: NewCounterVec("foodmap_api_requests_total", "API requests by method/route/status.", []string{"method", "route", "status"}),
		apiLatency: NewHistogramVec(
			"foodmap_api_request_duration_seconds",
			"API request latency in seconds by method/route/status.",
			[]string{"method", "route", "status"},
			[]float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		),
		apiInflight: NewGauge("foodmap_api_inflight_requests", "In-flight API requests."),
		apiErrors:   NewCounterVec("foodmap_api_errors_total", "API responses by error code.", []string{"code"}),

		aggregateOps: NewCounterVec("foodmap_aggregate_operations_total", "Aggregate operations by op/status.", []string{"op", "status"}),
		aggregateLatency: NewHistogramVec(
			"foodmap_aggregate_operation_duration_seconds",
			"Aggregate operation latency in seconds by op.",
			[]string{"op"},
			nil,
		),
		aggregateConflicts: NewCounterVec("foodmap_aggregate_conflicts_total", "Aggregate operations that hit a uniqueness conflict.", []string{"op"}),
		aggregateRetries:   NewCounterVec("foodmap_aggregate_retryable_total", "Aggregate operations that failed with a retryable store error.", []string{"op"}),

		changeEvents: NewCounterVec("foodmap_change_events_total", "Published change events by action/result.", []string{"action", "result"}),
		dbStats:      NewGaugeVec("foodmap_db_pool", "database/sql pool stats.", []string{"stat"}),
	}
}

func (m *Metrics) StartServer(ctx context.Context, log *logger.Logger, addr string) {
	if m == nil {
		return
	}
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           http.HandlerFunc(m.WriteHTTP),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		_ = srv.Shutdown(shutdownCtx)
		cancel()
	}()
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if log != nil {
				log.Error("metrics server failed", "error", err, "addr", addr)
			}
		}
	}()
}

func (m *Metrics) WriteHTTP(w http.ResponseWriter, r *http.Request) {
	if m == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	_ = m.WritePrometheus(w)
}

func (m *Metrics) WritePrometheus(w io.Writer) error {
	if m == nil {
		return nil
	}
	writers := []interface{ WritePrometheus(io.Writer) error }{
		m.apiRequests, m.apiLatency, m.apiInflight, m.apiErrors,
		m.aggregateOps, m.aggregateLatency, m.aggregateConflicts, m.aggregateRetries,
		m.changeEvents, m.dbStats,
	}
	for _, mw := range writers {
		if err := mw.WritePrometheus(w); err != nil {
			return err
		}
	}
	return nil
}

func (m *Metrics) ObserveAPI(method, route, status string, dur time.Duration) {
	if m == nil {
		return
	}
	if method == "" {
		method = "UNKNOWN"
	}
	if route == "" {
		route = "unknown"
	}
	if status == "" {
		status = "0"
	}
	m.apiRequests.Inc(method, route, status)
	m.apiLatency.Observe(dur.Seconds(), method, route, status)
}

func (m *Metrics) APIRequestCount(method, route, status string) float64 {
	if m == nil {
		return 0
	}
	return m.apiRequests.Value(method, route, status)
}

func (m *Metrics) APIErrorCount(code string) float64 {
	if m == nil {
		return 0
	}
	return m.apiErrors.Value(code)
}

func (m *Metrics) ApiInflightInc() {
	if m == nil {
		return
	}
	m.apiInflight.Inc()
}

func (m *Metrics) ApiInflightDec() {
	if m == nil {
		return
	}
	m.apiInflight.Dec()
}

func (m *Metrics) IncAPIError(code string) {
	if m == nil {
		return
	}
	m.apiErrors.Inc(code)
}

func (m *Metrics) ObserveAggregateOperation(op, status string, dur time.Duration) {
	if m == nil {
		return
	}
	m.aggregateOps.Inc(op, status)
	m.aggregateLatency.Observe(dur.Seconds(), op)
}

func (m *Metrics) IncAggregateConflict(op string) {
	if m == nil {
		return
	}
	m.aggregateConflicts.Inc(op)
}

func (m *Metrics) IncAggregateRetry(op string) {
	if m == nil {
		return
	}
	m.aggregateRetries.Inc(op)
}

// IncChangeEvent counts a publish attempt; result is "published" or "failed".
func (m *Metrics) IncChangeEvent(action, result string) {
	if m == nil {
		return
	}
	m.changeEvents.Inc(action, result)
}

func (m *Metrics) ChangeEventCount(action, result string) float64 {
	if m == nil {
		return 0
	}
	return m.changeEvents.Value(action, result)
}

// StartDBCollector samples connection pool stats every interval until ctx is done.
func (m *Metrics) StartDBCollector(ctx context.Context, log *logger.Logger, db *gorm.DB, interval time.Duration) {
	if m == nil || db == nil {
		return
	}
	if interval <= 0 {
		interval = 10 * time.Second
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.collectDBStats(log, db)
			}
		}
	}()
}

func (m *Metrics) collectDBStats(log *logger.Logger, db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		if log != nil {
			log.Warn("metrics: db stats unavailable", "error", err)
		}
		return
	}
	stats := sqlDB.Stats()
	m.dbStats.Set(float64(stats.OpenConnections), "open_connections")
	m.dbStats.Set(float64(stats.InUse), "in_use")
	m.dbStats.Set(float64(stats.Idle), "idle")
	m.dbStats.Set(float64(stats.WaitCount), "wait_count")
	m.dbStats.Set(stats.WaitDuration.Seconds(), "wait_duration_seconds")
	m.dbStats.Set(float64(stats.MaxOpenConnections), "max_open_connections")
}
