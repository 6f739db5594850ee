package logger

import "testing"

func TestSanitizeKVsRedactsSecrets(t *testing.T) {
	out := sanitizeKVs([]interface{}{
		"postgres_password", "hunter2",
		"db_dsn", "postgres://u:p@h/db",
		"name", "Westside Pantry",
	})
	if len(out) != 6 {
		t.Fatalf("unexpected kv length: %d", len(out))
	}
	if out[1] != "[REDACTED]" || out[3] != "[REDACTED]" {
		t.Fatalf("expected secrets to be redacted, got %v", out)
	}
	if out[5] != "Westside Pantry" {
		t.Fatalf("expected plain value passthrough, got %v", out[5])
	}
}

func TestSanitizeKVsNestedMap(t *testing.T) {
	out := sanitizeKVs([]interface{}{"cfg", map[string]interface{}{"Token": "abc", "topic": "food-resources"}})
	m, ok := out[1].(map[string]interface{})
	if !ok {
		t.Fatalf("expected map value, got %T", out[1])
	}
	if m["Token"] != "[REDACTED]" || m["topic"] != "food-resources" {
		t.Fatalf("unexpected sanitized map: %v", m)
	}
}

func TestSanitizeKVsOddLength(t *testing.T) {
	out := sanitizeKVs([]interface{}{"k", "v", "dangling"})
	if len(out) != 3 || out[2] != "dangling" {
		t.Fatalf("unexpected output: %v", out)
	}
}
