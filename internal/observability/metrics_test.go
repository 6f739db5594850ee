package observability

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestMetricsNilSafe(t *testing.T) {
	var m *Metrics
	m.ObserveAPI("GET", "/food-resources", "200", time.Millisecond)
	m.ObserveAggregateOperation("op", "success", time.Millisecond)
	m.IncAggregateConflict("op")
	m.IncChangeEvent("created", "published")
	if err := m.WritePrometheus(&bytes.Buffer{}); err != nil {
		t.Fatalf("nil WritePrometheus: %v", err)
	}
	if Init(false, nil) != nil {
		t.Fatalf("disabled Init must return nil")
	}
}

func TestMetricsExposition(t *testing.T) {
	m := New()
	m.ObserveAPI("GET", "/food-resources/:id", "404", 20*time.Millisecond)
	m.ObserveAggregateOperation("Directory.FoodResource.Insert", "success", 3*time.Millisecond)
	m.ObserveAggregateOperation("Directory.FoodResource.Insert", "conflict", 3*time.Millisecond)
	m.IncAggregateConflict("Directory.FoodResource.Insert")

	if got := m.aggregateOps.Value("Directory.FoodResource.Insert", "success"); got != 1 {
		t.Fatalf("aggregate ops: want=1 got=%v", got)
	}
	if got := m.aggregateLatency.Count("Directory.FoodResource.Insert"); got != 2 {
		t.Fatalf("aggregate latency count: want=2 got=%d", got)
	}

	var buf bytes.Buffer
	if err := m.WritePrometheus(&buf); err != nil {
		t.Fatalf("WritePrometheus: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		`foodmap_api_requests_total{method="GET",route="/food-resources/:id",status="404"} 1`,
		`foodmap_aggregate_conflicts_total{op="Directory.FoodResource.Insert"} 1`,
		`foodmap_aggregate_operation_duration_seconds_count{op="Directory.FoodResource.Insert"} 2`,
		`# TYPE foodmap_db_pool gauge`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in exposition:\n%s", want, out)
		}
	}
}

func TestHistogramBucketsAreCumulative(t *testing.T) {
	h := NewHistogramVec("h", "help", []string{"op"}, []float64{0.1, 1})
	h.Observe(0.05, "x")
	h.Observe(0.5, "x")
	h.Observe(5, "x")
	var buf bytes.Buffer
	if err := h.WritePrometheus(&buf); err != nil {
		t.Fatalf("WritePrometheus: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		`h_bucket{op="x",le="0.1"} 1`,
		`h_bucket{op="x",le="1"} 2`,
		`h_bucket{op="x",le="+Inf"} 3`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestLabelStringEscapes(t *testing.T) {
	got := labelString([]string{"a", "b"}, []string{`x"y`})
	if got != `{a="x\"y",b="unknown"}` {
		t.Fatalf("unexpected labels: %s", got)
	}
}

func TestOtelHelpers(t *testing.T) {
	if clampRatio(0) != 0.1 || clampRatio(2) != 1 || clampRatio(0.5) != 0.5 {
		t.Fatalf("unexpected clampRatio results")
	}
	h := parseHeaders("authorization=Bearer x, bad, k=")
	if len(h) != 1 || h["authorization"] != "Bearer x" {
		t.Fatalf("unexpected headers: %v", h)
	}
	if parseHeaders("  ") != nil {
		t.Fatalf("expected nil headers")
	}
}
