package departments

import (
	"context"
	"math"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/varunisrani/thinkaiback-sub000/pkg/core/model"
)

// SceneClass buckets a scene by complexity for crew scaling
type SceneClass string

const (
	ClassSimple   SceneClass = "simple"
	ClassModerate SceneClass = "moderate"
	ClassComplex  SceneClass = "complex"
)

// DefaultBaseCrew returns the crew a department needs on a simple scene
func DefaultBaseCrew() map[string]int {
	return map[string]int{
		Camera:         4,
		Sound:          2,
		Lighting:       5,
		Art:            4,
		Wardrobe:       2,
		SpecialEffects: 2,
	}
}

// Options controls crew sizing
type Options struct {
	// BaseCrew overrides the default base crew per department
	BaseCrew map[string]int `yaml:"baseCrew"`

	// Scenes with a complexity total at or above these are moderate or complex
	ModerateThreshold float64 `yaml:"moderateThreshold"`
	ComplexThreshold  float64 `yaml:"complexThreshold"`

	// Crew multipliers per scene class
	SimpleMultiplier   float64 `yaml:"simpleMultiplier"`
	ModerateMultiplier float64 `yaml:"moderateMultiplier"`
	ComplexMultiplier  float64 `yaml:"complexMultiplier"`

	// MaxExtraCrew caps the extra crew added for specialized needs
	MaxExtraCrew int `yaml:"maxExtraCrew"`
}

func DefaultOptions() Options {
	return Options{
		BaseCrew:           DefaultBaseCrew(),
		ModerateThreshold:  1.5,
		ComplexThreshold:   2.0,
		SimpleMultiplier:   1.0,
		ModerateMultiplier: 1.3,
		ComplexMultiplier:  1.8,
		MaxExtraCrew:       3,
	}
}

func (o Options) Validate() error {
	for dept, crew := range o.BaseCrew {
		if crew < 0 {
			return &model.ConfigurationError{Field: "departments.baseCrew." + dept, Reason: "must not be negative"}
		}
	}
	if o.ModerateThreshold <= 0 || o.ComplexThreshold < o.ModerateThreshold {
		return &model.ConfigurationError{Field: "departments.complexThreshold", Reason: "thresholds must be positive and ascending"}
	}
	if o.SimpleMultiplier <= 0 || o.ModerateMultiplier <= 0 || o.ComplexMultiplier <= 0 {
		return &model.ConfigurationError{Field: "departments.multipliers", Reason: "must be positive"}
	}
	if o.MaxExtraCrew < 0 {
		return &model.ConfigurationError{Field: "departments.maxExtraCrew", Reason: "must not be negative"}
	}
	return nil
}

// Classify returns the scene class for a complexity total
func (o Options) Classify(complexityTotal float64) SceneClass {
	switch {
	case complexityTotal >= o.ComplexThreshold:
		return ClassComplex
	case complexityTotal >= o.ModerateThreshold:
		return ClassModerate
	}
	return ClassSimple
}

func (o Options) multiplier(class SceneClass) float64 {
	switch class {
	case ClassComplex:
		return o.ComplexMultiplier
	case ClassModerate:
		return o.ModerateMultiplier
	}
	return o.SimpleMultiplier
}

func (o Options) baseCrew(dept string) int {
	if crew, ok := o.BaseCrew[dept]; ok {
		return crew
	}
	return DefaultBaseCrew()[dept]
}

// Allocator aggregates department requirements over a set of scenes
type Allocator struct {
	rules   []Rule
	opts    Options
	workers int
}

// NewAllocator validates the options. A nil rules slice uses DefaultRules.
func NewAllocator(rules []Rule, opts Options, workers int) (*Allocator, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if rules == nil {
		rules = DefaultRules()
	}
	return &Allocator{rules: rules, opts: opts, workers: max(workers, 1)}, nil
}

// Allocate builds one requirement per rule, concurrently per department, in rule
// order. Involvement entries follow the order of the estimates.
func (a *Allocator) Allocate(ctx context.Context, estimates []model.SceneEstimate) ([]model.DepartmentRequirement, error) {
	requirements := make([]model.DepartmentRequirement, len(a.rules))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)

	for i, rule := range a.rules {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			requirements[i] = a.Requirement(rule, estimates)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return requirements, nil
}

// Requirement aggregates one department over the given scenes.
//
//	crew_size = round(base_crew × mean class multiplier) + min(special needs, max extra)
//
// A department involved in no scene gets zero hours and zero crew.
func (a *Allocator) Requirement(rule Rule, estimates []model.SceneEstimate) model.DepartmentRequirement {
	req := model.DepartmentRequirement{
		Department:   rule.Name(),
		Involvement:  make([]model.SceneInvolvement, 0, len(estimates)),
		Equipment:    []string{},
		SpecialNeeds: []string{},
	}

	involved := 0
	multiplierSum := 0.0
	for _, estimate := range estimates {
		c := rule.Classify(estimate.Scene)
		level := c.Level
		if level == "" {
			level = model.InvolvementNone
		}
		req.Involvement = append(req.Involvement, model.SceneInvolvement{
			SceneNumber: estimate.Scene.SceneNumber,
			Level:       level,
		})
		if level == model.InvolvementNone {
			continue
		}

		involved++
		multiplierSum += a.opts.multiplier(a.opts.Classify(estimate.Complexity.Total))
		req.EstimatedHours += estimate.Eighths.TotalHours
		req.Equipment = append(req.Equipment, c.Equipment...)
		req.SpecialNeeds = append(req.SpecialNeeds, c.SpecialNeeds...)
	}

	slices.Sort(req.Equipment)
	req.Equipment = slices.Compact(req.Equipment)
	slices.Sort(req.SpecialNeeds)
	req.SpecialNeeds = slices.Compact(req.SpecialNeeds)
	req.EstimatedHours = math.Round(req.EstimatedHours*1e4) / 1e4

	if involved > 0 {
		meanMultiplier := multiplierSum / float64(involved)
		extra := min(len(req.SpecialNeeds), a.opts.MaxExtraCrew)
		req.CrewSize = int(math.Round(float64(a.opts.baseCrew(rule.Name()))*meanMultiplier)) + extra
	}

	return req
}
