package services

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/foodmap-backend/internal/domain/directory"
	"github.com/yungbote/foodmap-backend/internal/platform/logger"
)

//go:embed seeddata/food_resources.yaml
var defaultSeedYAML []byte

type SeedFile struct {
	FoodResources []directory.FoodResourceInput `yaml:"foodResources"`
}

// ParseSeed decodes a seed document. Unknown keys are rejected so typos in field names
// do not silently drop data.
func ParseSeed(data []byte) (SeedFile, error) {
	var out SeedFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&out); err != nil {
		if errors.Is(err, io.EOF) {
			return SeedFile{}, nil
		}
		return SeedFile{}, fmt.Errorf("parse seed: %w", err)
	}
	return out, nil
}

// LoadSeed reads path, or the embedded sample when path is blank.
func LoadSeed(path string) (SeedFile, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return ParseSeed(defaultSeedYAML)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return SeedFile{}, fmt.Errorf("read seed %s: %w", path, err)
	}
	return ParseSeed(data)
}

type Seeder struct {
	log *logger.Logger
	svc FoodResourceService
}

func NewSeeder(baseLog *logger.Logger, svc FoodResourceService) *Seeder {
	return &Seeder{log: baseLog.With("service", "Seeder"), svc: svc}
}

// Run inserts every document in order and stops at the first failure. The views created
// before the failure are returned with the error.
func (s *Seeder) Run(ctx context.Context, file SeedFile) ([]directory.FoodResourceView, error) {
	created := make([]directory.FoodResourceView, 0, len(file.FoodResources))
	for i, in := range file.FoodResources {
		view, err := s.svc.Create(ctx, in)
		if err != nil {
			return created, fmt.Errorf("seed foodResources[%d] (%s): %w", i, in.Name, err)
		}
		created = append(created, view)
	}
	s.log.Info("Seed complete", "created", len(created))
	return created, nil
}
