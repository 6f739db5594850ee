package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/foodmap-backend/internal/data/repos"
	"github.com/yungbote/foodmap-backend/internal/platform/logger"
)

type Repos struct {
	FoodResource  repos.FoodResourceRepo
	Tag           repos.TagRepo
	Day           repos.DayRepo
	ResourceTag   repos.ResourceTagRepo
	BusinessHours repos.BusinessHoursRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		FoodResource:  repos.NewFoodResourceRepo(db, log),
		Tag:           repos.NewTagRepo(db, log),
		Day:           repos.NewDayRepo(db, log),
		ResourceTag:   repos.NewResourceTagRepo(db, log),
		BusinessHours: repos.NewBusinessHoursRepo(db, log),
	}
}
