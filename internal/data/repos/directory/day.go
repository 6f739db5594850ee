package directory

import (
	"gorm.io/gorm"

	types "github.com/yungbote/foodmap-backend/internal/domain"
	"github.com/yungbote/foodmap-backend/internal/platform/dbctx"
	"github.com/yungbote/foodmap-backend/internal/platform/logger"
)

// DayRepo is read-only; rows are seeded at migration time.
type DayRepo interface {
	ListAll(dbc dbctx.Context) ([]*types.Day, error)
}

type dayRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDayRepo(db *gorm.DB, log *logger.Logger) DayRepo {
	return &dayRepo{db: db, log: log.With("repo", "DayRepo")}
}

func (r *dayRepo) ListAll(dbc dbctx.Context) ([]*types.Day, error) {
	out := []*types.Day{}
	if err := dbc.DB(r.db).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
