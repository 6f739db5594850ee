package aggregates

import (
	"testing"

	domainagg "github.com/yungbote/foodmap-backend/internal/domain/aggregates"
)

func TestRequireAffected(t *testing.T) {
	if err := requireAffected(1, "food resource", 3); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	err := requireAffected(0, "food resource", 3)
	if err == nil {
		t.Fatalf("expected not found error")
	}
	if !domainagg.IsCode(MapError("op", err), domainagg.CodeNotFound) {
		t.Fatalf("expected not_found after mapping, got %v", err)
	}
}
