package directory

// BusinessHours holds one day's opening window for a FoodResource.
// Both times nil means closed or unspecified.
type BusinessHours struct {
	FoodResourceID uint          `gorm:"primaryKey;autoIncrement:false" json:"foodResourceId"`
	FoodResource   *FoodResource `gorm:"constraint:OnDelete:CASCADE;foreignKey:FoodResourceID;references:ID" json:"-"`

	DayID uint `gorm:"primaryKey;autoIncrement:false;index:idx_business_hours_day" json:"dayId"`
	Day   *Day `gorm:"constraint:OnDelete:RESTRICT;foreignKey:DayID;references:ID" json:"-"`

	OpenTime  *string `gorm:"column:open_time;type:varchar(10)" json:"openTime"`
	CloseTime *string `gorm:"column:close_time;type:varchar(10)" json:"closeTime"`
}

func (BusinessHours) TableName() string { return "business_hours" }

const MaxTimeLength = 10

// BusinessHoursDetail is a BusinessHours row joined to its day name.
type BusinessHoursDetail struct {
	FoodResourceID uint
	DayID          uint
	DayName        string
	OpenTime       *string
	CloseTime      *string
}
