package compliance

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varunisrani/thinkaiback-sub000/pkg/core/doop"
	"github.com/varunisrani/thinkaiback-sub000/pkg/core/model"
)

var monday = time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

func at(day time.Time, clock string) time.Time {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		panic(err)
	}
	return day.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute)
}

// schedule builds an assignment from per-day scene lists
func schedule(t *testing.T, days ...[]string) model.ShootDayAssignment {
	t.Helper()
	var entries []model.AssignmentEntry
	for i, scenes := range days {
		for slot, sceneNumber := range scenes {
			entries = append(entries, model.AssignmentEntry{SceneNumber: sceneNumber, Day: i + 1, Slot: slot + 1})
		}
	}
	assignment, err := model.NewShootDayAssignment(entries)
	require.NoError(t, err)
	return assignment
}

func TestCheckConsecutiveDays_Boundary(t *testing.T) {
	tests := []struct {
		name     string
		length   int
		expected []model.Severity
	}{
		{"five days is fine", 5, nil},
		{"six days is a warning", 6, []model.Severity{model.SeverityWarning}},
		{"seven days is a violation", 7, []model.Severity{model.SeverityViolation}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := model.PersonScheduleRecord{
				PersonID:          "anna",
				ConsecutiveBlocks: []model.ConsecutiveBlock{{Start: 2, End: tt.length + 1, Length: tt.length}},
			}

			violations := CheckConsecutiveDays([]model.PersonScheduleRecord{record}, DefaultOptions())

			var severities []model.Severity
			for _, v := range violations {
				assert.Equal(t, model.ViolationExcessiveConsecutiveDays, v.Kind)
				assert.Equal(t, "anna", v.Subject)
				assert.Equal(t, 2, v.Day)
				severities = append(severities, v.Severity)
			}
			assert.Equal(t, tt.expected, severities)
		})
	}
}

func TestCheck_SevenDayRunFromDOOP(t *testing.T) {
	days := make([][]string, 7)
	sceneNumbers := make([]string, 7)
	for i := range days {
		sceneNumbers[i] = fmt.Sprint(i + 1)
		days[i] = []string{sceneNumbers[i]}
	}
	assignment := schedule(t, days...)
	record := doop.Generate("anna", sceneNumbers, assignment, assignment.TotalDays())

	violations := Check([]model.PersonScheduleRecord{record}, nil, DefaultOptions())

	require.Len(t, violations, 1)
	assert.Equal(t, model.SeverityViolation, violations[0].Severity)
	assert.Equal(t, "7 consecutive work days (days 1-7), limit 6", violations[0].Detail)
}

func TestBuildCrewDays_MealAtSceneBoundary(t *testing.T) {
	assignment := schedule(t, []string{"1", "2", "3", "4"})
	hours := map[string]float64{"1": 2, "2": 2, "3": 2, "4": 1}

	crewDays := BuildCrewDays(assignment, hours, DailyCalendar{Start: monday}, DefaultOptions())

	require.Len(t, crewDays, 1)
	day := crewDays[0]
	assert.Equal(t, 1, day.Day)
	assert.Equal(t, monday, day.Date)
	assert.Equal(t, at(monday, "06:00"), day.Call)
	assert.Equal(t, []model.MealBreak{{Start: at(monday, "12:00"), End: at(monday, "12:30")}}, day.Meals)
	assert.Equal(t, at(monday, "13:30"), day.Wrap)
	assert.Equal(t, 7*time.Hour+30*time.Minute, day.Length())

	// Exactly six hours to the meal is allowed
	assert.Empty(t, CheckMealBreaks(crewDays, DefaultOptions()))
}

func TestBuildCrewDays_CallTimeAndDates(t *testing.T) {
	assignment := schedule(t, []string{"1"}, []string{"2"})
	opts := DefaultOptions()
	opts.CallTime = "07:15"

	crewDays := BuildCrewDays(assignment, map[string]float64{"1": 1, "2": 1}, DailyCalendar{Start: monday.Add(13 * time.Hour)}, opts)

	require.Len(t, crewDays, 2)
	assert.Equal(t, at(monday, "07:15"), crewDays[0].Call)
	assert.Equal(t, at(monday.AddDate(0, 0, 1), "07:15"), crewDays[1].Call)
	assert.Empty(t, crewDays[0].Meals)
}

func TestCheckMealBreaks_LongSceneIsNotSplit(t *testing.T) {
	assignment := schedule(t, []string{"1"})

	crewDays := BuildCrewDays(assignment, map[string]float64{"1": 7}, DailyCalendar{Start: monday}, DefaultOptions())
	violations := CheckMealBreaks(crewDays, DefaultOptions())

	require.Len(t, violations, 1)
	assert.Equal(t, model.ViolationMissingMealBreak, violations[0].Kind)
	assert.Equal(t, CrewSubject, violations[0].Subject)
	assert.Equal(t, 1, violations[0].Day)
	assert.Equal(t, model.SeverityViolation, violations[0].Severity)
}

func TestCheckTurnaround(t *testing.T) {
	assignment := schedule(t, []string{"1", "2", "3"}, []string{"4"})
	hours := map[string]float64{"1": 5, "2": 5, "3": 5, "4": 1}

	crewDays := BuildCrewDays(assignment, hours, DailyCalendar{Start: monday}, DefaultOptions())
	require.Len(t, crewDays, 2)
	assert.Equal(t, at(monday, "22:00"), crewDays[0].Wrap)
	assert.Len(t, crewDays[0].Meals, 2)

	violations := CheckTurnaround(crewDays, DefaultOptions())
	require.Len(t, violations, 1)
	assert.Equal(t, model.ViolationInsufficientTurnaround, violations[0].Kind)
	assert.Equal(t, 2, violations[0].Day)
	assert.Equal(t, "8h0m0s rest between day 1 wrap and day 2 call, minimum 10h0m0s", violations[0].Detail)
}

type skipCalendar struct{}

func (skipCalendar) Date(day int) time.Time {
	return monday.AddDate(0, 0, (day-1)*2)
}

func TestCheckTurnaround_CalendarGap(t *testing.T) {
	assignment := schedule(t, []string{"1", "2", "3"}, []string{"4"})
	hours := map[string]float64{"1": 5, "2": 5, "3": 5, "4": 1}

	crewDays := BuildCrewDays(assignment, hours, skipCalendar{}, DefaultOptions())

	assert.Empty(t, CheckTurnaround(crewDays, DefaultOptions()))
}

func TestCheck_OrdersFindings(t *testing.T) {
	assignment := schedule(t, []string{"1"}, []string{"2"})
	crewDays := BuildCrewDays(assignment, map[string]float64{"1": 16, "2": 1}, DailyCalendar{Start: monday}, DefaultOptions())

	records := []model.PersonScheduleRecord{
		{PersonID: "ben", ConsecutiveBlocks: []model.ConsecutiveBlock{{Start: 1, End: 7, Length: 7}}},
		{PersonID: "anna", ConsecutiveBlocks: []model.ConsecutiveBlock{{Start: 1, End: 6, Length: 6}}},
	}

	violations := Check(records, crewDays, DefaultOptions())

	var got []string
	for _, v := range violations {
		got = append(got, fmt.Sprintf("%d %s %s", v.Day, v.Kind, v.Subject))
	}
	assert.Equal(t, []string{
		"1 excessive_consecutive_days anna",
		"1 excessive_consecutive_days ben",
		"1 missing_meal_break crew",
		"2 insufficient_turnaround crew",
	}, got)
}

func TestCheck_CleanPlan(t *testing.T) {
	violations := Check(nil, nil, DefaultOptions())
	assert.NotNil(t, violations)
	assert.Empty(t, violations)
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Options)
		field  string
	}{
		{"zero consecutive days", func(o *Options) { o.MaxConsecutiveDays = 0 }, "compliance.maxConsecutiveDays"},
		{"negative turnaround", func(o *Options) { o.MinTurnaround = -time.Hour }, "compliance.minTurnaround"},
		{"meal target beyond interval", func(o *Options) { o.MealTarget = 7 * time.Hour }, "compliance.mealTarget"},
		{"bad call time", func(o *Options) { o.CallTime = "6am" }, "compliance.callTime"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.modify(&opts)

			var cfgErr *model.ConfigurationError
			require.True(t, errors.As(opts.Validate(), &cfgErr))
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}

	assert.NoError(t, DefaultOptions().Validate())
}
