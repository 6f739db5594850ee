package aggregates

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"gorm.io/gorm"

	domainagg "github.com/yungbote/foodmap-backend/internal/domain/aggregates"
	"github.com/yungbote/foodmap-backend/internal/platform/dbctx"
	"github.com/yungbote/foodmap-backend/internal/platform/logger"
)

const tracerName = "github.com/yungbote/foodmap-backend/internal/data/aggregates"

type BaseDeps struct {
	DB     *gorm.DB
	Log    *logger.Logger
	Runner TxRunner
	Hooks  Hooks
}

func (d BaseDeps) withDefaults() BaseDeps {
	if d.Runner == nil {
		d.Runner = NewGormTxRunner(d.DB)
	}
	if d.Hooks == nil {
		d.Hooks = noopHooks{}
	}
	if d.Log == nil {
		d.Log = logger.Nop()
	}
	return d
}

// executeWrite runs fn in one transaction, maps the error and reports hooks and a span.
func executeWrite(ctx context.Context, deps BaseDeps, op string, fn func(dbc dbctx.Context) error) error {
	return execute(ctx, deps, op, "write", fn)
}

// executeRead gives multi-query reads a single consistent transaction.
func executeRead(ctx context.Context, deps BaseDeps, op string, fn func(dbc dbctx.Context) error) error {
	return execute(ctx, deps, op, "read", fn)
}

func execute(ctx context.Context, deps BaseDeps, op, kind string, fn func(dbc dbctx.Context) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()
	deps = deps.withDefaults()
	op = strings.TrimSpace(op)
	if op == "" {
		op = "aggregate." + kind
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, op)
	defer span.End()
	span.SetAttributes(attribute.String("aggregate.kind", kind))

	err := deps.Runner.InTx(ctx, fn)
	mapped := MapError(op, err)

	status := "success"
	if mapped != nil {
		status = aggregateErrorStatus(mapped)
		if domainagg.IsCode(mapped, domainagg.CodeConflict) {
			deps.Hooks.IncConflict(op)
		}
		if domainagg.IsCode(mapped, domainagg.CodeRetryable) {
			deps.Hooks.IncRetry(op)
		}
		if domainagg.IsPersistenceFailure(mapped) {
			span.RecordError(mapped)
			span.SetStatus(codes.Error, status)
			deps.Log.Warn("Aggregate operation failed", "op", op, "status", status, "error", mapped)
		}
	}
	span.SetAttributes(attribute.String("aggregate.status", status))
	deps.Hooks.ObserveOperation(op, status, time.Since(start))
	return mapped
}

func aggregateErrorStatus(err error) string {
	if err == nil {
		return "success"
	}
	code := strings.TrimSpace(string(domainagg.CodeOf(err)))
	if code == "" {
		code = strings.TrimSpace(string(domainagg.CodeOf(MapError("aggregate.status", err))))
	}
	if code == "" {
		return "failure"
	}
	return code
}
