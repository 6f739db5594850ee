package directory

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/foodmap-backend/internal/domain"
	"github.com/yungbote/foodmap-backend/internal/domain/directory"
	"github.com/yungbote/foodmap-backend/internal/platform/dbctx"
	"github.com/yungbote/foodmap-backend/internal/platform/logger"
)

type ResourceTagRepo interface {
	CreateIgnoreDuplicates(dbc dbctx.Context, rows []*types.ResourceTag) (int, error)
	// ListDetailsByFoodResourceIDs joins tag names in one query, ordered by resource then tag name.
	ListDetailsByFoodResourceIDs(dbc dbctx.Context, ids []uint) ([]directory.ResourceTagDetail, error)
	DeleteByFoodResourceIDs(dbc dbctx.Context, ids []uint) (int64, error)
}

type resourceTagRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewResourceTagRepo(db *gorm.DB, log *logger.Logger) ResourceTagRepo {
	return &resourceTagRepo{db: db, log: log.With("repo", "ResourceTagRepo")}
}

func (r *resourceTagRepo) CreateIgnoreDuplicates(dbc dbctx.Context, rows []*types.ResourceTag) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	res := dbc.DB(r.db).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "food_resource_id"}, {Name: "tag_id"}},
			DoNothing: true,
		}).
		Create(&rows)
	if res.Error != nil {
		return 0, res.Error
	}
	return int(res.RowsAffected), nil
}

func (r *resourceTagRepo) ListDetailsByFoodResourceIDs(dbc dbctx.Context, ids []uint) ([]directory.ResourceTagDetail, error) {
	out := []directory.ResourceTagDetail{}
	if len(ids) == 0 {
		return out, nil
	}
	if err := dbc.DB(r.db).
		Table("resource_tag AS rt").
		Select("rt.food_resource_id AS food_resource_id, rt.tag_id AS tag_id, t.name AS tag_name").
		Joins("JOIN tag AS t ON t.id = rt.tag_id").
		Where("rt.food_resource_id IN ?", ids).
		Order("rt.food_resource_id ASC, t.name ASC").
		Scan(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *resourceTagRepo) DeleteByFoodResourceIDs(dbc dbctx.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := dbc.DB(r.db).Where("food_resource_id IN ?", ids).Delete(&types.ResourceTag{})
	return res.RowsAffected, res.Error
}
