package directory

import "strings"

// Day is seeded reference data. Ids are fixed so business hours can reference them stably.
type Day struct {
	ID   uint   `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name string `gorm:"column:name;type:varchar(10);not null;uniqueIndex:idx_day_name" json:"name"`
}

func (Day) TableName() string { return "day" }

// Weekdays lists the canonical day names in canonical order.
var Weekdays = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// CanonicalDays returns the seven Day rows, Sunday=1 through Saturday=7.
func CanonicalDays() []Day {
	out := make([]Day, 0, len(Weekdays))
	for i, name := range Weekdays {
		out = append(out, Day{ID: uint(i + 1), Name: name})
	}
	return out
}

// CanonicalDayName matches name case-insensitively against the weekday names.
func CanonicalDayName(name string) (string, bool) {
	name = strings.TrimSpace(name)
	for _, d := range Weekdays {
		if strings.EqualFold(d, name) {
			return d, true
		}
	}
	return "", false
}

// DayOrder is the zero-based canonical position of a day name, or len(Weekdays) when unknown.
func DayOrder(name string) int {
	for i, d := range Weekdays {
		if d == name {
			return i
		}
	}
	return len(Weekdays)
}
