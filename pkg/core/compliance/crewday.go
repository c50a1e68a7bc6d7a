package compliance

import (
	"time"

	"github.com/varunisrani/thinkaiback-sub000/pkg/core/model"
)

// Calendar maps a shoot day index (starting at 1) to its calendar date
type Calendar interface {
	Date(day int) time.Time
}

// DailyCalendar shoots every calendar day from Start
type DailyCalendar struct {
	Start time.Time
}

func (c DailyCalendar) Date(day int) time.Time {
	return c.Start.AddDate(0, 0, day-1)
}

// BuildCrewDays lays out the timeline of every shoot day.
//
// Crew call is at the configured call time on the day's date. Scenes run back to
// back in slot order, each taking its estimated total hours. Once the meal target
// has elapsed since call or the last meal, a meal is taken at the next scene
// boundary. Scenes are never split, so a long scene can push the gap past the
// allowed meal interval.
func BuildCrewDays(assignment model.ShootDayAssignment, hours map[string]float64, calendar Calendar, opts Options) []model.CrewDay {
	callOffset := opts.callOffset()
	days := make([]model.CrewDay, 0, assignment.TotalDays())

	for day := 1; day <= assignment.TotalDays(); day++ {
		date := calendar.Date(day)
		midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
		call := midnight.Add(callOffset)

		crewDay := model.CrewDay{
			Day:   day,
			Date:  midnight,
			Call:  call,
			Meals: []model.MealBreak{},
		}

		cursor := call
		lastBreak := call
		for _, sceneNumber := range assignment.ScenesOn(day) {
			if cursor.After(call) && cursor.Sub(lastBreak) >= opts.MealTarget {
				meal := model.MealBreak{Start: cursor, End: cursor.Add(opts.MealDuration)}
				crewDay.Meals = append(crewDay.Meals, meal)
				cursor = meal.End
				lastBreak = meal.End
			}
			cursor = cursor.Add(sceneDuration(hours[sceneNumber]))
		}
		crewDay.Wrap = cursor

		days = append(days, crewDay)
	}

	return days
}

// sceneDuration converts estimated hours to a duration rounded to the minute
func sceneDuration(hours float64) time.Duration {
	return time.Duration(hours * float64(time.Hour)).Round(time.Minute)
}
