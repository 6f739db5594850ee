package db

import (
	"fmt"

	types "github.com/yungbote/foodmap-backend/internal/domain"
	"github.com/yungbote/foodmap-backend/internal/domain/directory"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AutoMigrateAll creates the five directory tables. Reference tables go first so
// foreign keys can be declared.
func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&types.Day{},
		&types.Tag{},
		&types.FoodResource{},
		&types.ResourceTag{},
		&types.BusinessHours{},
	)
}

// SeedDays upserts the seven canonical days. Safe to run on every boot.
func SeedDays(db *gorm.DB) error {
	days := directory.CanonicalDays()
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name"}),
	}).Create(&days).Error; err != nil {
		return fmt.Errorf("seed days: %w", err)
	}
	return nil
}

// Prepare migrates and seeds reference data.
func Prepare(db *gorm.DB) error {
	if err := AutoMigrateAll(db); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return SeedDays(db)
}
