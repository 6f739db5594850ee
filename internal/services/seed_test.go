package services

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	domainagg "github.com/yungbote/foodmap-backend/internal/domain/aggregates"
	"github.com/yungbote/foodmap-backend/internal/platform/logger"
)

func TestLoadSeedEmbeddedSample(t *testing.T) {
	file, err := LoadSeed("")
	if err != nil {
		t.Fatalf("LoadSeed: %v", err)
	}
	if len(file.FoodResources) != 3 {
		t.Fatalf("expected 3 sample resources, got %d", len(file.FoodResources))
	}
	for i, in := range file.FoodResources {
		if _, err := in.Normalize(); err != nil {
			t.Fatalf("sample %d does not normalize: %v", i, err)
		}
	}
	first := file.FoodResources[0]
	if first.Latitude == nil || *first.Latitude != 30.2649 {
		t.Fatalf("unexpected latitude %v", first.Latitude)
	}
	if len(first.BusinessHours) != 3 || first.BusinessHours[0].Day.Name != "Monday" {
		t.Fatalf("unexpected hours %+v", first.BusinessHours)
	}
}

func TestParseSeedRejectsUnknownFields(t *testing.T) {
	_, err := ParseSeed([]byte("foodResources:\n  - name: X\n    zip: 12345\n"))
	if err == nil {
		t.Fatalf("expected unknown field error")
	}
}

func TestParseSeedEmptyDocument(t *testing.T) {
	file, err := ParseSeed(nil)
	if err != nil {
		t.Fatalf("ParseSeed: %v", err)
	}
	if len(file.FoodResources) != 0 {
		t.Fatalf("expected no resources")
	}
}

func TestLoadSeedFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	doc := "foodResources:\n  - name: Pantry\n    streetAddress: 1 Main St\n    city: Austin\n    state: tx\n    zipcode: 78701\n    tags:\n      - name: Halal\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	file, err := LoadSeed(path)
	if err != nil {
		t.Fatalf("LoadSeed: %v", err)
	}
	if len(file.FoodResources) != 1 || file.FoodResources[0].Tags[0].Name != "Halal" {
		t.Fatalf("unexpected seed %+v", file)
	}
	if _, err := LoadSeed(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestSeederStopsAtFirstFailure(t *testing.T) {
	log, _ := logger.New("test")
	agg := newFakeFoodResourceAggregate()
	svc := NewFoodResourceService(log, agg, nil)
	seeder := NewSeeder(log, svc)

	file, err := LoadSeed("")
	if err != nil {
		t.Fatalf("LoadSeed: %v", err)
	}
	created, err := seeder.Run(context.Background(), file)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(created) != 3 || created[2].ID != 3 {
		t.Fatalf("unexpected created %+v", created)
	}

	agg.insertErr = domainagg.NewError(domainagg.CodeConflict, "fake.Insert", "conflict", nil)
	created, err = seeder.Run(context.Background(), file)
	if err == nil || !strings.Contains(err.Error(), "foodResources[0]") {
		t.Fatalf("expected indexed error, got %v", err)
	}
	if !domainagg.IsCode(err, domainagg.CodeConflict) {
		t.Fatalf("expected wrapped conflict code, got %v", err)
	}
	if len(created) != 0 {
		t.Fatalf("expected nothing created, got %d", len(created))
	}
}
