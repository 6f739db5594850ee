package directory

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/foodmap-backend/internal/domain"
	"github.com/yungbote/foodmap-backend/internal/platform/dbctx"
	"github.com/yungbote/foodmap-backend/internal/platform/logger"
)

type TagRepo interface {
	// GetByNames matches names exactly, case-sensitively.
	GetByNames(dbc dbctx.Context, names []string) ([]*types.Tag, error)
	// CreateIgnoreDuplicates inserts names that do not exist yet and returns how many were new.
	CreateIgnoreDuplicates(dbc dbctx.Context, names []string) (int, error)
	ListAll(dbc dbctx.Context) ([]*types.Tag, error)
}

type tagRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTagRepo(db *gorm.DB, log *logger.Logger) TagRepo {
	return &tagRepo{db: db, log: log.With("repo", "TagRepo")}
}

func (r *tagRepo) GetByNames(dbc dbctx.Context, names []string) ([]*types.Tag, error) {
	out := []*types.Tag{}
	if len(names) == 0 {
		return out, nil
	}
	if err := dbc.DB(r.db).
		Where("name IN ?", names).
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *tagRepo) CreateIgnoreDuplicates(dbc dbctx.Context, names []string) (int, error) {
	if len(names) == 0 {
		return 0, nil
	}
	rows := make([]*types.Tag, 0, len(names))
	for _, n := range names {
		rows = append(rows, &types.Tag{Name: n})
	}
	res := dbc.DB(r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(&rows)
	if res.Error != nil {
		return 0, res.Error
	}
	return int(res.RowsAffected), nil
}

func (r *tagRepo) ListAll(dbc dbctx.Context) ([]*types.Tag, error) {
	out := []*types.Tag{}
	if err := dbc.DB(r.db).Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
