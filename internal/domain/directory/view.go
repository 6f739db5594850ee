package directory

import "sort"

// FoodResourceView is the external representation of an Aggregate.
type FoodResourceView struct {
	ID            uint     `json:"id"`
	Name          string   `json:"name"`
	Area          *string  `json:"area"`
	StreetAddress string   `json:"streetAddress"`
	City          string   `json:"city"`
	State         string   `json:"state"`
	Zipcode       int      `json:"zipcode"`
	Country       *string  `json:"country"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	Phone         *string  `json:"phone"`
	Website       *string  `json:"website"`
	Description   *string  `json:"description"`

	Tags          []string            `json:"tags"`
	BusinessHours []BusinessHoursView `json:"businessHours"`
}

type BusinessHoursView struct {
	Day       string  `json:"day"`
	OpenTime  *string `json:"openTime"`
	CloseTime *string `json:"closeTime"`
}

// ToView flattens an aggregate. Tags are sorted by name and hours follow canonical day order.
func ToView(agg Aggregate) FoodResourceView {
	fr := agg.Resource
	v := FoodResourceView{
		ID:            fr.ID,
		Name:          fr.Name,
		Area:          fr.Area,
		StreetAddress: fr.StreetAddress,
		City:          fr.City,
		State:         fr.State,
		Zipcode:       fr.Zipcode,
		Country:       fr.Country,
		Latitude:      fr.Latitude,
		Longitude:     fr.Longitude,
		Phone:         fr.Phone,
		Website:       fr.Website,
		Description:   fr.Description,
		Tags:          make([]string, 0, len(agg.Tags)),
		BusinessHours: make([]BusinessHoursView, 0, len(agg.Hours)),
	}
	for _, t := range agg.Tags {
		v.Tags = append(v.Tags, t.Name)
	}
	sort.Strings(v.Tags)

	hours := append([]BusinessHoursDetail(nil), agg.Hours...)
	sort.SliceStable(hours, func(i, j int) bool {
		oi, oj := DayOrder(hours[i].DayName), DayOrder(hours[j].DayName)
		if oi != oj {
			return oi < oj
		}
		return hours[i].DayID < hours[j].DayID
	})
	for _, h := range hours {
		v.BusinessHours = append(v.BusinessHours, BusinessHoursView{
			Day:       h.DayName,
			OpenTime:  h.OpenTime,
			CloseTime: h.CloseTime,
		})
	}
	return v
}

// ToViews maps in order.
func ToViews(aggs []Aggregate) []FoodResourceView {
	out := make([]FoodResourceView, 0, len(aggs))
	for _, a := range aggs {
		out = append(out, ToView(a))
	}
	return out
}

// Input converts a view back to an input carrying the same logical content.
// Days with no times are omitted since insert fills them in.
func (v FoodResourceView) Input() FoodResourceInput {
	in := FoodResourceInput{
		Name:          v.Name,
		Area:          v.Area,
		StreetAddress: v.StreetAddress,
		City:          v.City,
		State:         v.State,
		Zipcode:       v.Zipcode,
		Country:       v.Country,
		Latitude:      v.Latitude,
		Longitude:     v.Longitude,
		Phone:         v.Phone,
		Website:       v.Website,
		Description:   v.Description,
	}
	for _, t := range v.Tags {
		in.Tags = append(in.Tags, TagInput{Name: t})
	}
	for _, h := range v.BusinessHours {
		if h.OpenTime == nil && h.CloseTime == nil {
			continue
		}
		in.BusinessHours = append(in.BusinessHours, BusinessHoursInput{
			Day:       DayRef{Name: h.Day},
			OpenTime:  h.OpenTime,
			CloseTime: h.CloseTime,
		})
	}
	return in
}
