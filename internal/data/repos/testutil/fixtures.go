package testutil

import (
	"context"
	"testing"

	types "github.com/yungbote/foodmap-backend/internal/domain"
	"gorm.io/gorm"
)

func SeedFoodResource(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.FoodResource {
	tb.Helper()
	fr := &types.FoodResource{
		Name:          name,
		StreetAddress: "1 Test Way",
		City:          "Springfield",
		State:         "IL",
		Zipcode:       62701,
	}
	if err := tx.WithContext(ctx).Create(fr).Error; err != nil {
		tb.Fatalf("seed food resource: %v", err)
	}
	return fr
}

func SeedTag(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Tag {
	tb.Helper()
	t := &types.Tag{Name: name}
	if err := tx.WithContext(ctx).Create(t).Error; err != nil {
		tb.Fatalf("seed tag: %v", err)
	}
	return t
}

func CountRows(tb testing.TB, ctx context.Context, tx *gorm.DB, model interface{}, where string, args ...interface{}) int64 {
	tb.Helper()
	var n int64
	q := tx.WithContext(ctx).Model(model)
	if where != "" {
		q = q.Where(where, args...)
	}
	if err := q.Count(&n).Error; err != nil {
		tb.Fatalf("count rows: %v", err)
	}
	return n
}

func PtrString(v string) *string { return &v }

func PtrFloat(v float64) *float64 { return &v }
