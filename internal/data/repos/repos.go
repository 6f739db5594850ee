package repos

import (
	"github.com/yungbote/foodmap-backend/internal/data/repos/directory"
	"github.com/yungbote/foodmap-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type FoodResourceRepo = directory.FoodResourceRepo
type TagRepo = directory.TagRepo
type DayRepo = directory.DayRepo
type ResourceTagRepo = directory.ResourceTagRepo
type BusinessHoursRepo = directory.BusinessHoursRepo

func NewFoodResourceRepo(db *gorm.DB, baseLog *logger.Logger) FoodResourceRepo {
	return directory.NewFoodResourceRepo(db, baseLog)
}
func NewTagRepo(db *gorm.DB, baseLog *logger.Logger) TagRepo {
	return directory.NewTagRepo(db, baseLog)
}
func NewDayRepo(db *gorm.DB, baseLog *logger.Logger) DayRepo {
	return directory.NewDayRepo(db, baseLog)
}
func NewResourceTagRepo(db *gorm.DB, baseLog *logger.Logger) ResourceTagRepo {
	return directory.NewResourceTagRepo(db, baseLog)
}
func NewBusinessHoursRepo(db *gorm.DB, baseLog *logger.Logger) BusinessHoursRepo {
	return directory.NewBusinessHoursRepo(db, baseLog)
}
