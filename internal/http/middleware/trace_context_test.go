package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/foodmap-backend/internal/observability"
	"github.com/yungbote/foodmap-backend/internal/platform/ctxutil"
	"github.com/yungbote/foodmap-backend/internal/platform/logger"
)

func TestAttachTraceContextEchoesCallerIDs(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var seen *ctxutil.TraceData
	r := gin.New()
	r.Use(AttachTraceContext())
	r.GET("/x", func(c *gin.Context) {
		seen = ctxutil.GetTraceData(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(headerRequestID, "req-1")
	req.Header.Set(headerTraceID, "trace-1")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if seen == nil || seen.RequestID != "req-1" || seen.TraceID != "trace-1" {
		t.Fatalf("unexpected trace data %+v", seen)
	}
	if rec.Header().Get(headerRequestID) != "req-1" || rec.Header().Get(headerTraceID) != "trace-1" {
		t.Fatalf("ids not echoed: %v", rec.Header())
	}
}

func TestAttachTraceContextGeneratesIDs(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AttachTraceContext())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	if rec.Header().Get(headerRequestID) == "" || rec.Header().Get(headerTraceID) == "" {
		t.Fatalf("expected generated ids, got %v", rec.Header())
	}
}

func TestMetricsAndRequestLoggerRecordRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := observability.New()
	r := gin.New()
	r.Use(AttachTraceContext(), RequestLogger(logger.Nop()), Metrics(m))
	r.GET("/food-resources/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/food-resources/9", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	if got := m.APIRequestCount(http.MethodGet, "/food-resources/:id", "404"); got != 1 {
		t.Fatalf("expected one recorded request, got %v", got)
	}
}
