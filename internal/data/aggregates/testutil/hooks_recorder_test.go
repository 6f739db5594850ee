package testutil

import (
	"testing"
	"time"
)

func TestHooksRecorderCapturesSignals(t *testing.T) {
	h := &HooksRecorder{}
	h.ObserveOperation("Directory.FoodResource.Insert", "success", 10*time.Millisecond)
	h.IncConflict("Directory.FoodResource.Insert")
	h.IncRetry("Directory.FoodResource.Insert")

	if len(h.Operations) != 1 {
		t.Fatalf("expected 1 op event, got %d", len(h.Operations))
	}
	if h.Operations[0].Name != "Directory.FoodResource.Insert" || h.Operations[0].Status != "success" {
		t.Fatalf("unexpected op event: %+v", h.Operations[0])
	}
	if len(h.Conflicts) != 1 || h.Conflicts[0] != "Directory.FoodResource.Insert" {
		t.Fatalf("unexpected conflicts: %+v", h.Conflicts)
	}
	if len(h.Retries) != 1 || h.Retries[0] != "Directory.FoodResource.Insert" {
		t.Fatalf("unexpected retries: %+v", h.Retries)
	}
	if got := h.Statuses("Directory.FoodResource.Insert"); len(got) != 1 || got[0] != "success" {
		t.Fatalf("unexpected statuses: %v", got)
	}
}
