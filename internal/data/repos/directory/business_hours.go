package directory

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/foodmap-backend/internal/domain"
	"github.com/yungbote/foodmap-backend/internal/domain/directory"
	"github.com/yungbote/foodmap-backend/internal/platform/dbctx"
	"github.com/yungbote/foodmap-backend/internal/platform/logger"
)

type BusinessHoursRepo interface {
	Create(dbc dbctx.Context, rows []*types.BusinessHours) ([]*types.BusinessHours, error)
	// Upsert writes open/close times keyed by (food_resource_id, day_id), creating missing rows.
	Upsert(dbc dbctx.Context, rows []*types.BusinessHours) error
	// ListDetailsByFoodResourceIDs joins day names in one query, ordered by resource then day id.
	ListDetailsByFoodResourceIDs(dbc dbctx.Context, ids []uint) ([]directory.BusinessHoursDetail, error)
	DeleteByFoodResourceIDs(dbc dbctx.Context, ids []uint) (int64, error)
}

type businessHoursRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewBusinessHoursRepo(db *gorm.DB, log *logger.Logger) BusinessHoursRepo {
	return &businessHoursRepo{db: db, log: log.With("repo", "BusinessHoursRepo")}
}

func (r *businessHoursRepo) Create(dbc dbctx.Context, rows []*types.BusinessHours) ([]*types.BusinessHours, error) {
	if len(rows) == 0 {
		return []*types.BusinessHours{}, nil
	}
	if err := dbc.DB(r.db).Omit(clause.Associations).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *businessHoursRepo) Upsert(dbc dbctx.Context, rows []*types.BusinessHours) error {
	if len(rows) == 0 {
		return nil
	}
	return dbc.DB(r.db).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "food_resource_id"}, {Name: "day_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"open_time", "close_time"}),
		}).
		Create(&rows).Error
}

func (r *businessHoursRepo) ListDetailsByFoodResourceIDs(dbc dbctx.Context, ids []uint) ([]directory.BusinessHoursDetail, error) {
	out := []directory.BusinessHoursDetail{}
	if len(ids) == 0 {
		return out, nil
	}
	if err := dbc.DB(r.db).
		Table("business_hours AS bh").
		Select("bh.food_resource_id AS food_resource_id, bh.day_id AS day_id, d.name AS day_name, bh.open_time AS open_time, bh.close_time AS close_time").
		Joins("JOIN day AS d ON d.id = bh.day_id").
		Where("bh.food_resource_id IN ?", ids).
		Order("bh.food_resource_id ASC, bh.day_id ASC").
		Scan(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *businessHoursRepo) DeleteByFoodResourceIDs(dbc dbctx.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := dbc.DB(r.db).Where("food_resource_id IN ?", ids).Delete(&types.BusinessHours{})
	return res.RowsAffected, res.Error
}
