package schedule

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/varunisrani/thinkaiback-sub000/pkg/core/model"
)

const dateLayout = "2006-01-02"

// CalendarOptions describes which calendar dates are shoot days
type CalendarOptions struct {
	// Start is the first possible shoot date
	Start time.Time `yaml:"start"`

	// RRule selects shoot dates from Start, e.g. "FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR"
	RRule string `yaml:"rrule"`

	// SkipDates are removed from the recurrence (holidays, dark days)
	SkipDates []time.Time `yaml:"skipDates,omitempty"`
}

func DefaultCalendarOptions() CalendarOptions {
	return CalendarOptions{RRule: "FREQ=DAILY"}
}

func (c CalendarOptions) Validate() error {
	if c.Start.IsZero() {
		return &model.ConfigurationError{Field: "calendar.start", Reason: "is required"}
	}
	if _, err := rrule.StrToRRule(c.RRule); err != nil {
		return &model.ConfigurationError{Field: "calendar.rrule", Reason: err.Error()}
	}
	return nil
}

// Calendar is a fixed list of shoot dates, day 1 first
type Calendar struct {
	dates []time.Time
}

// NewCalendar expands the recurrence into the first n shoot dates. All dates are
// normalised to midnight UTC so skip dates match occurrences exactly.
func NewCalendar(opts CalendarOptions, n int) (*Calendar, error) {
	rule, err := rrule.StrToRRule(opts.RRule)
	if err != nil {
		return nil, &model.ConfigurationError{Field: "calendar.rrule", Reason: err.Error()}
	}
	rule.DTStart(midnightUTC(opts.Start))

	set := &rrule.Set{}
	set.RRule(rule)
	for _, skip := range opts.SkipDates {
		set.ExDate(midnightUTC(skip))
	}

	dates := make([]time.Time, 0, n)
	next := set.Iterator()
	for len(dates) < n {
		date, ok := next()
		if !ok {
			return nil, &model.ConfigurationError{
				Field:  "calendar.rrule",
				Reason: fmt.Sprintf("yields %d shoot dates, schedule needs %d", len(dates), n),
			}
		}
		dates = append(dates, date)
	}

	return &Calendar{dates: dates}, nil
}

// Date returns the date of a shoot day. Days past the expanded range continue
// daily from the last known date.
func (c *Calendar) Date(day int) time.Time {
	if len(c.dates) == 0 {
		return time.Time{}
	}
	if day < 1 {
		return c.dates[0]
	}
	if day > len(c.dates) {
		return c.dates[len(c.dates)-1].AddDate(0, 0, day-len(c.dates))
	}
	return c.dates[day-1]
}

// Dates returns a copy of the expanded shoot dates
func (c *Calendar) Dates() []time.Time {
	return append([]time.Time(nil), c.dates...)
}

func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return t, nil
}
