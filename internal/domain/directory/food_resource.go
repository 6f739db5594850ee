package directory

import "time"

// FoodResource is a single food bank, pantry or meal site.
type FoodResource struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	Name          string  `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Area          *string `gorm:"column:area;type:varchar(100)" json:"area,omitempty"`
	StreetAddress string  `gorm:"column:street_address;type:varchar(255);not null" json:"streetAddress"`
	City          string  `gorm:"column:city;type:varchar(100);not null" json:"city"`
	State         string  `gorm:"column:state;type:char(2);not null" json:"state"`
	Zipcode       int     `gorm:"column:zipcode;not null" json:"zipcode"`
	Country       *string `gorm:"column:country;type:varchar(100)" json:"country,omitempty"`

	Latitude  *float64 `gorm:"column:latitude;type:decimal(9,6)" json:"latitude,omitempty"`
	Longitude *float64 `gorm:"column:longitude;type:decimal(9,6)" json:"longitude,omitempty"`

	Phone       *string `gorm:"column:phone;type:varchar(20)" json:"phone,omitempty"`
	Website     *string `gorm:"column:website;type:varchar(255)" json:"website,omitempty"`
	Description *string `gorm:"column:description;type:text" json:"description,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (FoodResource) TableName() string { return "food_resource" }
