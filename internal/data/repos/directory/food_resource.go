package directory

import (
	"time"

	"gorm.io/gorm"

	types "github.com/yungbote/foodmap-backend/internal/domain"
	"github.com/yungbote/foodmap-backend/internal/platform/dbctx"
	"github.com/yungbote/foodmap-backend/internal/platform/logger"
)

type FoodResourceRepo interface {
	Create(dbc dbctx.Context, rows []*types.FoodResource) ([]*types.FoodResource, error)
	GetByIDs(dbc dbctx.Context, ids []uint) ([]*types.FoodResource, error)
	GetByID(dbc dbctx.Context, id uint) (*types.FoodResource, error)
	ListAll(dbc dbctx.Context) ([]*types.FoodResource, error)
	// UpdateScalars overwrites every scalar column of row.ID, nil optionals included.
	UpdateScalars(dbc dbctx.Context, row *types.FoodResource) (int64, error)
	DeleteByIDs(dbc dbctx.Context, ids []uint) (int64, error)
}

type foodResourceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFoodResourceRepo(db *gorm.DB, log *logger.Logger) FoodResourceRepo {
	return &foodResourceRepo{db: db, log: log.With("repo", "FoodResourceRepo")}
}

func (r *foodResourceRepo) Create(dbc dbctx.Context, rows []*types.FoodResource) ([]*types.FoodResource, error) {
	if len(rows) == 0 {
		return []*types.FoodResource{}, nil
	}
	if err := dbc.DB(r.db).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *foodResourceRepo) GetByIDs(dbc dbctx.Context, ids []uint) ([]*types.FoodResource, error) {
	out := []*types.FoodResource{}
	if len(ids) == 0 {
		return out, nil
	}
	if err := dbc.DB(r.db).
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *foodResourceRepo) GetByID(dbc dbctx.Context, id uint) (*types.FoodResource, error) {
	if id == 0 {
		return nil, nil
	}
	rows, err := r.GetByIDs(dbc, []uint{id})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *foodResourceRepo) ListAll(dbc dbctx.Context) ([]*types.FoodResource, error) {
	out := []*types.FoodResource{}
	if err := dbc.DB(r.db).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *foodResourceRepo) UpdateScalars(dbc dbctx.Context, row *types.FoodResource) (int64, error) {
	if row == nil || row.ID == 0 {
		return 0, nil
	}
	now := time.Now().UTC()
	updates := map[string]interface{}{
		"name":           row.Name,
		"area":           row.Area,
		"street_address": row.StreetAddress,
		"city":           row.City,
		"state":          row.State,
		"zipcode":        row.Zipcode,
		"country":        row.Country,
		"latitude":       row.Latitude,
		"longitude":      row.Longitude,
		"phone":          row.Phone,
		"website":        row.Website,
		"description":    row.Description,
		"updated_at":     now,
	}
	res := dbc.DB(r.db).
		Model(&types.FoodResource{}).
		Where("id = ?", row.ID).
		Updates(updates)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected > 0 {
		row.UpdatedAt = now
	}
	return res.RowsAffected, nil
}

func (r *foodResourceRepo) DeleteByIDs(dbc dbctx.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := dbc.DB(r.db).Where("id IN ?", ids).Delete(&types.FoodResource{})
	return res.RowsAffected, res.Error
}
