package schedule

import (
	"github.com/varunisrani/thinkaiback-sub000/pkg/core/compliance"
	"github.com/varunisrani/thinkaiback-sub000/pkg/core/departments"
	"github.com/varunisrani/thinkaiback-sub000/pkg/core/eighths"
	"github.com/varunisrani/thinkaiback-sub000/pkg/core/locations"
	"github.com/varunisrani/thinkaiback-sub000/pkg/core/model"
)

// Options holds every engine constant. Identical options and input always produce
// an identical plan.
type Options struct {
	Complexity  eighths.ComplexityWeights       `yaml:"complexity" json:"complexity"`
	Timing      eighths.TimingConstants         `yaml:"timing" json:"timing"`
	Locations   locations.Options               `yaml:"locations" json:"locations"`
	TravelCost  locations.CategoricalTravelCost `yaml:"travelCost" json:"travel_cost"`
	Routes      []locations.Route               `yaml:"routes,omitempty" json:"routes,omitempty"`
	Departments departments.Options             `yaml:"departments" json:"departments"`
	Compliance  compliance.Options              `yaml:"compliance" json:"compliance"`
	Calendar    CalendarOptions                 `yaml:"calendar" json:"calendar"`

	// MaxScenesPerDay caps how many scenes are put on a single shoot day
	MaxScenesPerDay int `yaml:"maxScenesPerDay" json:"max_scenes_per_day"`

	// Workers bounds the concurrent fan-out of scoring and aggregation. It does
	// not affect the result.
	Workers int `yaml:"workers" json:"-"`
}

// DefaultOptions returns the standard constants. Calendar.Start has no default
// and must be set.
func DefaultOptions() Options {
	return Options{
		Complexity:      eighths.DefaultComplexityWeights(),
		Timing:          eighths.DefaultTimingConstants(),
		Locations:       locations.DefaultOptions(),
		TravelCost:      locations.DefaultTravelCost(),
		Departments:     departments.DefaultOptions(),
		Compliance:      compliance.DefaultOptions(),
		Calendar:        DefaultCalendarOptions(),
		MaxScenesPerDay: 4,
		Workers:         4,
	}
}

// Validate returns the first invalid constant as a ConfigurationError
func (o Options) Validate() error {
	validators := []interface{ Validate() error }{
		o.Complexity,
		o.Timing,
		o.Locations,
		o.TravelCost,
		o.Departments,
		o.Compliance,
		o.Calendar,
	}
	for _, v := range validators {
		if err := v.Validate(); err != nil {
			return err
		}
	}

	if o.MaxScenesPerDay < 1 {
		return &model.ConfigurationError{Field: "maxScenesPerDay", Reason: "must be at least 1"}
	}
	for _, route := range o.Routes {
		if route.Cost < 0 {
			return &model.ConfigurationError{Field: "routes", Reason: "cost from " + route.From + " to " + route.To + " must not be negative"}
		}
	}
	return nil
}

// travelCost returns the route table when one is configured, else the categorical table
func (o Options) travelCost() (locations.TravelCost, error) {
	if len(o.Routes) == 0 {
		return o.TravelCost, nil
	}
	return locations.NewMatrixTravelCost(o.Routes, o.TravelCost)
}

func (o Options) rules() []departments.Rule {
	return []departments.Rule{
		departments.CameraRule{},
		departments.SoundRule{DialogueThreshold: o.Complexity.DialogueThreshold},
		departments.LightingRule{},
		departments.ArtRule{},
		departments.WardrobeRule{},
		departments.SpecialEffectsRule{},
	}
}
