package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/varunisrani/thinkaiback-sub000/pkg/core/compliance"
	"github.com/varunisrani/thinkaiback-sub000/pkg/core/departments"
	"github.com/varunisrani/thinkaiback-sub000/pkg/core/doop"
	"github.com/varunisrani/thinkaiback-sub000/pkg/core/eighths"
	"github.com/varunisrani/thinkaiback-sub000/pkg/core/locations"
	"github.com/varunisrani/thinkaiback-sub000/pkg/core/model"
)

// planNamespace scopes plan ids
var planNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/varunisrani/thinkaiback-sub000/plans"))

// Plan bundles every output of one scheduling run
type Plan struct {
	// ID is derived from the input and options, so re-planning the same
	// production with the same options yields the same id
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title,omitempty"`

	Estimates   []model.SceneEstimate         `json:"estimates"`
	Clusters    []model.LocationCluster       `json:"clusters"`
	RouteCost   float64                       `json:"route_cost"`
	Assignment  model.ShootDayAssignment      `json:"assignment"`
	DOOP        []model.PersonScheduleRecord  `json:"doop"`
	Departments []model.DepartmentRequirement `json:"departments"`
	CrewDays    []model.CrewDay               `json:"crew_days"`
	Violations  []model.ComplianceViolation   `json:"violations"`
	Stripboard  []StripboardDay               `json:"stripboard"`
}

// TotalDays returns the number of shoot days in the plan
func (p *Plan) TotalDays() int {
	return p.Assignment.TotalDays()
}

// HasViolations reports whether any finding has violation severity
func (p *Plan) HasViolations() bool {
	for _, v := range p.Violations {
		if v.Severity == model.SeverityViolation {
			return true
		}
	}
	return false
}

// Assemble runs the whole pipeline: ingest, estimate, cluster, assign days, then
// derive DOOP, department needs, crew days, compliance and the stripboard from the
// assignment.
//
// Input problems come back as joined *model.InputError values and invalid options
// as *model.ConfigurationError. If ctx is cancelled before the assignment is final
// Assemble returns ctx.Err() and nothing else.
func Assemble(ctx context.Context, production model.Production, opts Options) (*Plan, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	production, err := model.Ingest(production)
	if err != nil {
		return nil, err
	}

	estimator, err := eighths.NewEstimator(opts.Complexity, opts.Timing, opts.Workers)
	if err != nil {
		return nil, err
	}
	estimates, err := estimator.EstimateAll(ctx, production.Scenes)
	if err != nil {
		return nil, err
	}

	cost, err := opts.travelCost()
	if err != nil {
		return nil, err
	}
	route := locations.Optimize(estimates, cost, opts.Locations)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	assignment, err := AssignDays(route.Clusters, estimates, opts.MaxScenesPerDay)
	if err != nil {
		return nil, fmt.Errorf("failed to assign shoot days: %w", err)
	}

	records, err := doop.GenerateAll(ctx, production.Scenes, production.People, assignment, opts.Workers)
	if err != nil {
		return nil, err
	}

	allocator, err := departments.NewAllocator(opts.rules(), opts.Departments, opts.Workers)
	if err != nil {
		return nil, err
	}
	requirements, err := allocator.Allocate(ctx, estimates)
	if err != nil {
		return nil, err
	}

	calendar, err := NewCalendar(opts.Calendar, assignment.TotalDays())
	if err != nil {
		return nil, err
	}

	hours := make(map[string]float64, len(estimates))
	for _, estimate := range estimates {
		hours[estimate.Scene.SceneNumber] = estimate.Eighths.TotalHours
	}
	crewDays := compliance.BuildCrewDays(assignment, hours, calendar, opts.Compliance)

	id, err := PlanID(production, opts)
	if err != nil {
		return nil, err
	}

	return &Plan{
		ID:          id,
		Title:       production.Title,
		Estimates:   estimates,
		Clusters:    route.Clusters,
		RouteCost:   route.RouteCost,
		Assignment:  assignment,
		DOOP:        records,
		Departments: requirements,
		CrewDays:    crewDays,
		Violations:  compliance.Check(records, crewDays, opts.Compliance),
		Stripboard:  BuildStripboard(assignment, estimates, requirements, calendar),
	}, nil
}

// PlanID derives a deterministic id from the production and options
func PlanID(production model.Production, opts Options) (uuid.UUID, error) {
	data, err := json.Marshal(struct {
		Production model.Production `json:"production"`
		Options    Options          `json:"options"`
	}{production, opts})
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to encode plan input: %w", err)
	}
	return uuid.NewSHA1(planNamespace, data), nil
}

func roundHours(h float64) float64 {
	return math.Round(h*1e4) / 1e4
}
