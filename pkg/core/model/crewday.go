package model

import "time"

// MealBreak is a crew meal taken between scenes
type MealBreak struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// CrewDay is the working timeline of one shoot day
type CrewDay struct {
	Day   int         `json:"day"`
	Date  time.Time   `json:"date"`
	Call  time.Time   `json:"call"`
	Wrap  time.Time   `json:"wrap"`
	Meals []MealBreak `json:"meals"`
}

// Length returns the time from call to wrap
func (d CrewDay) Length() time.Duration {
	return d.Wrap.Sub(d.Call)
}
