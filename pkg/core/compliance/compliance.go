package compliance

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/varunisrani/thinkaiback-sub000/pkg/core/model"
)

// CrewSubject is the subject of violations that apply to the whole unit
const CrewSubject = "crew"

// Options holds the labor rules and the crew day layout constants
type Options struct {
	// MaxConsecutiveDays is the longest run of work days allowed; a run of exactly
	// this length is a warning, anything longer a violation
	MaxConsecutiveDays int `yaml:"maxConsecutiveDays"`

	// MinTurnaround is the minimum rest between wrap and the next day's call
	MinTurnaround time.Duration `yaml:"minTurnaround"`

	// MaxMealInterval is the longest allowed stretch without a meal break
	MaxMealInterval time.Duration `yaml:"maxMealInterval"`

	// MealTarget is when a meal is scheduled after call or the previous meal
	MealTarget time.Duration `yaml:"mealTarget"`

	MealDuration time.Duration `yaml:"mealDuration"`

	// CallTime is the crew call as HH:MM
	CallTime string `yaml:"callTime"`
}

func DefaultOptions() Options {
	return Options{
		MaxConsecutiveDays: 6,
		MinTurnaround:      10 * time.Hour,
		MaxMealInterval:    6 * time.Hour,
		MealTarget:         5 * time.Hour,
		MealDuration:       30 * time.Minute,
		CallTime:           "06:00",
	}
}

func (o Options) Validate() error {
	if o.MaxConsecutiveDays < 1 {
		return &model.ConfigurationError{Field: "compliance.maxConsecutiveDays", Reason: "must be at least 1"}
	}
	if o.MinTurnaround < 0 {
		return &model.ConfigurationError{Field: "compliance.minTurnaround", Reason: "must not be negative"}
	}
	if o.MaxMealInterval <= 0 {
		return &model.ConfigurationError{Field: "compliance.maxMealInterval", Reason: "must be positive"}
	}
	if o.MealTarget <= 0 || o.MealTarget > o.MaxMealInterval {
		return &model.ConfigurationError{Field: "compliance.mealTarget", Reason: "must be positive and no longer than maxMealInterval"}
	}
	if o.MealDuration < 0 {
		return &model.ConfigurationError{Field: "compliance.mealDuration", Reason: "must not be negative"}
	}
	if _, err := time.Parse("15:04", o.CallTime); err != nil {
		return &model.ConfigurationError{Field: "compliance.callTime", Reason: fmt.Sprintf("%q is not HH:MM", o.CallTime)}
	}
	return nil
}

func (o Options) callOffset() time.Duration {
	t, err := time.Parse("15:04", o.CallTime)
	if err != nil {
		return 0
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute
}

// Check runs every rule and returns the findings ordered by day, kind and subject.
// Findings are data: Check never fails and an empty result means a clean plan.
func Check(records []model.PersonScheduleRecord, crewDays []model.CrewDay, opts Options) []model.ComplianceViolation {
	violations := []model.ComplianceViolation{}
	violations = append(violations, CheckConsecutiveDays(records, opts)...)
	violations = append(violations, CheckTurnaround(crewDays, opts)...)
	violations = append(violations, CheckMealBreaks(crewDays, opts)...)

	slices.SortStableFunc(violations, func(a, b model.ComplianceViolation) int {
		return cmp.Or(
			cmp.Compare(a.Day, b.Day),
			cmp.Compare(a.Kind, b.Kind),
			cmp.Compare(a.Subject, b.Subject),
		)
	})
	return violations
}

// CheckConsecutiveDays flags long runs of work days per person
func CheckConsecutiveDays(records []model.PersonScheduleRecord, opts Options) []model.ComplianceViolation {
	var violations []model.ComplianceViolation
	for _, record := range records {
		for _, block := range record.ConsecutiveBlocks {
			if block.Length < opts.MaxConsecutiveDays {
				continue
			}
			severity := model.SeverityWarning
			if block.Length > opts.MaxConsecutiveDays {
				severity = model.SeverityViolation
			}
			violations = append(violations, model.ComplianceViolation{
				Kind:     model.ViolationExcessiveConsecutiveDays,
				Subject:  record.PersonID,
				Day:      block.Start,
				Severity: severity,
				Detail:   fmt.Sprintf("%d consecutive work days (days %d-%d), limit %d", block.Length, block.Start, block.End, opts.MaxConsecutiveDays),
			})
		}
	}
	return violations
}

// CheckTurnaround flags short rest between consecutive shoot days
func CheckTurnaround(crewDays []model.CrewDay, opts Options) []model.ComplianceViolation {
	var violations []model.ComplianceViolation
	for i := 1; i < len(crewDays); i++ {
		prev, next := crewDays[i-1], crewDays[i]
		rest := next.Call.Sub(prev.Wrap)
		if rest >= opts.MinTurnaround {
			continue
		}
		violations = append(violations, model.ComplianceViolation{
			Kind:     model.ViolationInsufficientTurnaround,
			Subject:  CrewSubject,
			Day:      next.Day,
			Severity: model.SeverityViolation,
			Detail:   fmt.Sprintf("%s rest between day %d wrap and day %d call, minimum %s", rest, prev.Day, next.Day, opts.MinTurnaround),
		})
	}
	return violations
}

// CheckMealBreaks flags any stretch from call, between meals or to wrap that runs
// longer than the allowed meal interval
func CheckMealBreaks(crewDays []model.CrewDay, opts Options) []model.ComplianceViolation {
	var violations []model.ComplianceViolation
	for _, crewDay := range crewDays {
		from := crewDay.Call
		stops := make([]model.MealBreak, 0, len(crewDay.Meals)+1)
		stops = append(stops, crewDay.Meals...)
		stops = append(stops, model.MealBreak{Start: crewDay.Wrap, End: crewDay.Wrap})

		for _, stop := range stops {
			if gap := stop.Start.Sub(from); gap > opts.MaxMealInterval {
				violations = append(violations, model.ComplianceViolation{
					Kind:     model.ViolationMissingMealBreak,
					Subject:  CrewSubject,
					Day:      crewDay.Day,
					Severity: model.SeverityViolation,
					Detail:   fmt.Sprintf("%s without a meal from %s, maximum %s", gap, from.Format("15:04"), opts.MaxMealInterval),
				})
			}
			from = stop.End
		}
	}
	return violations
}
