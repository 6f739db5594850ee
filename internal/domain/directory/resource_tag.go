package directory

// ResourceTag links a FoodResource to a shared Tag.
type ResourceTag struct {
	FoodResourceID uint          `gorm:"primaryKey;autoIncrement:false" json:"foodResourceId"`
	FoodResource   *FoodResource `gorm:"constraint:OnDelete:CASCADE;foreignKey:FoodResourceID;references:ID" json:"-"`

	TagID uint `gorm:"primaryKey;autoIncrement:false;index:idx_resource_tag_tag" json:"tagId"`
	Tag   *Tag `gorm:"constraint:OnDelete:RESTRICT;foreignKey:TagID;references:ID" json:"-"`
}

func (ResourceTag) TableName() string { return "resource_tag" }

// ResourceTagDetail is a ResourceTag joined to its tag name.
type ResourceTagDetail struct {
	FoodResourceID uint
	TagID          uint
	TagName        string
}
