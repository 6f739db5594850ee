package directory

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// FoodResourceInput is the caller-supplied shape for creating or replacing a FoodResource.
type FoodResourceInput struct {
	Name          string   `json:"name" yaml:"name"`
	Area          *string  `json:"area,omitempty" yaml:"area,omitempty"`
	StreetAddress string   `json:"streetAddress" yaml:"streetAddress"`
	City          string   `json:"city" yaml:"city"`
	State         string   `json:"state" yaml:"state"`
	Zipcode       int      `json:"zipcode" yaml:"zipcode"`
	Country       *string  `json:"country,omitempty" yaml:"country,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty" yaml:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty" yaml:"longitude,omitempty"`
	Phone         *string  `json:"phone,omitempty" yaml:"phone,omitempty"`
	Website       *string  `json:"website,omitempty" yaml:"website,omitempty"`
	Description   *string  `json:"description,omitempty" yaml:"description,omitempty"`

	Tags          []TagInput           `json:"tags" yaml:"tags"`
	BusinessHours []BusinessHoursInput `json:"businessHours" yaml:"businessHours"`
}

type TagInput struct {
	Name string `json:"name" yaml:"name"`
}

type DayRef struct {
	Name string `json:"name" yaml:"name"`
}

type BusinessHoursInput struct {
	Day       DayRef  `json:"day" yaml:"day"`
	OpenTime  *string `json:"openTime,omitempty" yaml:"openTime,omitempty"`
	CloseTime *string `json:"closeTime,omitempty" yaml:"closeTime,omitempty"`
}

// Problem is a single rejected field.
type Problem struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError reports every field that failed normalization.
type ValidationError struct {
	Problems []Problem
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Problems) == 0 {
		return "invalid food resource"
	}
	parts := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		parts = append(parts, p.Field+": "+p.Reason)
	}
	return "invalid food resource: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, format string, args ...any) {
	e.Problems = append(e.Problems, Problem{Field: field, Reason: fmt.Sprintf(format, args...)})
}

// Normalize trims and validates the input. The returned copy has deduplicated tags,
// canonical day names with one entry per day, an upper-case state, nil for blank
// optional fields and coordinates rounded to six fractional digits.
func (in FoodResourceInput) Normalize() (FoodResourceInput, error) {
	verr := &ValidationError{}
	out := FoodResourceInput{
		Name:          strings.TrimSpace(in.Name),
		StreetAddress: strings.TrimSpace(in.StreetAddress),
		City:          strings.TrimSpace(in.City),
		State:         strings.ToUpper(strings.TrimSpace(in.State)),
		Zipcode:       in.Zipcode,
	}

	requireText(verr, "name", out.Name, 255)
	requireText(verr, "streetAddress", out.StreetAddress, 255)
	requireText(verr, "city", out.City, 100)
	if !isStateCode(out.State) {
		verr.add("state", "must be a two-letter code")
	}
	if out.Zipcode < 1 || out.Zipcode > 99999 {
		verr.add("zipcode", "must be between 1 and 99999")
	}

	out.Area = optionalText(verr, "area", in.Area, 100)
	out.Country = optionalText(verr, "country", in.Country, 100)
	out.Phone = optionalText(verr, "phone", in.Phone, 20)
	out.Website = optionalText(verr, "website", in.Website, 255)
	out.Description = optionalText(verr, "description", in.Description, 0)
	out.Latitude = coordinate(verr, "latitude", in.Latitude, 90)
	out.Longitude = coordinate(verr, "longitude", in.Longitude, 180)

	seenTags := map[string]bool{}
	for i, t := range in.Tags {
		name := strings.TrimSpace(t.Name)
		field := fmt.Sprintf("tags[%d].name", i)
		if name == "" {
			verr.add(field, "must not be blank")
			continue
		}
		if utf8.RuneCountInString(name) > MaxTagNameLength {
			verr.add(field, "must be at most %d characters", MaxTagNameLength)
			continue
		}
		if seenTags[name] {
			continue
		}
		seenTags[name] = true
		out.Tags = append(out.Tags, TagInput{Name: name})
	}

	seenDays := map[string]bool{}
	for i, h := range in.BusinessHours {
		day, ok := CanonicalDayName(h.Day.Name)
		if !ok {
			verr.add(fmt.Sprintf("businessHours[%d].day.name", i), "unknown day %q", h.Day.Name)
			continue
		}
		open := optionalText(verr, fmt.Sprintf("businessHours[%d].openTime", i), h.OpenTime, MaxTimeLength)
		closing := optionalText(verr, fmt.Sprintf("businessHours[%d].closeTime", i), h.CloseTime, MaxTimeLength)
		if seenDays[day] {
			continue
		}
		seenDays[day] = true
		out.BusinessHours = append(out.BusinessHours, BusinessHoursInput{
			Day:       DayRef{Name: day},
			OpenTime:  open,
			CloseTime: closing,
		})
	}

	if len(verr.Problems) > 0 {
		return FoodResourceInput{}, verr
	}
	return out, nil
}

// TagNames returns tag names in input order.
func (in FoodResourceInput) TagNames() []string {
	out := make([]string, 0, len(in.Tags))
	for _, t := range in.Tags {
		out = append(out, t.Name)
	}
	return out
}

// HoursFor returns the first entry whose day name equals day, or nil times.
func (in FoodResourceInput) HoursFor(day string) (open, closing *string) {
	for _, h := range in.BusinessHours {
		if h.Day.Name == day {
			return h.OpenTime, h.CloseTime
		}
	}
	return nil, nil
}

// Apply copies the scalar fields onto fr, leaving identity and timestamps alone.
func (in FoodResourceInput) Apply(fr *FoodResource) {
	fr.Name = in.Name
	fr.Area = in.Area
	fr.StreetAddress = in.StreetAddress
	fr.City = in.City
	fr.State = in.State
	fr.Zipcode = in.Zipcode
	fr.Country = in.Country
	fr.Latitude = in.Latitude
	fr.Longitude = in.Longitude
	fr.Phone = in.Phone
	fr.Website = in.Website
	fr.Description = in.Description
}

func requireText(verr *ValidationError, field, v string, max int) {
	if v == "" {
		verr.add(field, "is required")
		return
	}
	if utf8.RuneCountInString(v) > max {
		verr.add(field, "must be at most %d characters", max)
	}
}

func optionalText(verr *ValidationError, field string, v *string, max int) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return nil
	}
	if max > 0 && utf8.RuneCountInString(s) > max {
		verr.add(field, "must be at most %d characters", max)
		return nil
	}
	return &s
}

func coordinate(verr *ValidationError, field string, v *float64, limit float64) *float64 {
	if v == nil {
		return nil
	}
	if math.IsNaN(*v) || *v < -limit || *v > limit {
		verr.add(field, "must be between %g and %g", -limit, limit)
		return nil
	}
	r := math.Round(*v*1e6) / 1e6
	return &r
}

func isStateCode(s string) bool {
	if len(s) != 2 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
