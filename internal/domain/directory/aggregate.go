package directory

// Aggregate is a FoodResource with its linked tags and all of its business hours rows.
type Aggregate struct {
	Resource FoodResource
	Tags     []Tag
	Hours    []BusinessHoursDetail
}
