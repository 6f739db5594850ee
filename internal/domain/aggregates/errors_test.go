package aggregates

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorCodeHelpers(t *testing.T) {
	base := errors.New("boom")
	err := Wrap(CodeConflict, "food_resource.insert", base)
	if !IsCode(err, CodeConflict) {
		t.Fatalf("expected conflict code")
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped cause")
	}
	if CodeOf(fmt.Errorf("outer: %w", err)) != CodeConflict {
		t.Fatalf("expected code through fmt wrapping")
	}
	if Wrap(CodeConflict, "x", nil) != nil {
		t.Fatalf("Wrap(nil) must be nil")
	}
}

func TestIsPersistenceFailure(t *testing.T) {
	cases := map[ErrorCode]bool{
		CodeNotFound:           false,
		CodeValidation:         false,
		CodeConflict:           true,
		CodePreconditionFailed: true,
		CodeRetryable:          true,
		CodePersistence:        true,
	}
	for code, want := range cases {
		if got := IsPersistenceFailure(NewError(code, "op", "msg", nil)); got != want {
			t.Fatalf("code=%s want=%v got=%v", code, want, got)
		}
	}
	if !IsPersistenceFailure(errors.New("raw")) {
		t.Fatalf("uncoded errors count as persistence failures")
	}
	if IsPersistenceFailure(nil) {
		t.Fatalf("nil is not a failure")
	}
}
