package directory

// Tag is a shared category label. Names are unique and compared case-sensitively.
type Tag struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"column:name;type:varchar(100);not null;uniqueIndex:idx_tag_name" json:"name"`
}

func (Tag) TableName() string { return "tag" }

const MaxTagNameLength = 100
