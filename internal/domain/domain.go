package domain

import "github.com/yungbote/foodmap-backend/internal/domain/directory"

type FoodResource = directory.FoodResource
type Tag = directory.Tag
type Day = directory.Day
type ResourceTag = directory.ResourceTag
type BusinessHours = directory.BusinessHours

type FoodResourceInput = directory.FoodResourceInput
type FoodResourceView = directory.FoodResourceView
type BusinessHoursView = directory.BusinessHoursView
