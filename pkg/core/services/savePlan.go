package services

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/varunisrani/thinkaiback-sub000/pkg/core/schedule"
	"github.com/varunisrani/thinkaiback-sub000/pkg/db"
)

// SavePlanStore defines the database operations needed for saving a plan
type SavePlanStore interface {
	InsertPlan(ctx context.Context, rows db.PlanRows) error
}

// ListPlansStore defines the database operations needed for listing plans
type ListPlansStore interface {
	GetPlans(ctx context.Context) ([]db.Plan, error)
}

// ShowPlanStore defines the database operations needed for reading one plan back
type ShowPlanStore interface {
	GetStrips(ctx context.Context, planID string) ([]db.Strip, error)
	GetViolations(ctx context.Context, planID string) ([]db.Violation, error)
}

// PlanDetail is a stored plan's strips and findings
type PlanDetail struct {
	PlanID     string
	Strips     []db.Strip
	Violations []db.Violation
}

// SavePlan emits a finished plan as rows. Saving the same plan twice replaces it.
func SavePlan(ctx context.Context, store SavePlanStore, logger *zap.Logger, plan *schedule.Plan) (*db.PlanRows, error) {
	if plan.TotalDays() == 0 {
		return nil, fmt.Errorf("plan %s has no shoot days to save", plan.ID)
	}

	rows, err := planRows(plan)
	if err != nil {
		return nil, err
	}

	logger.Debug("Saving plan",
		zap.String("plan_id", rows.Plan.ID),
		zap.Int("strips", len(rows.Strips)),
		zap.Int("person_days", len(rows.PersonDays)),
		zap.Int("violations", len(rows.Violations)))

	if err := store.InsertPlan(ctx, *rows); err != nil {
		return nil, fmt.Errorf("failed to insert plan: %w", err)
	}

	logger.Info("Plan saved", zap.String("plan_id", rows.Plan.ID))
	return rows, nil
}

// ListPlans returns every stored plan header
func ListPlans(ctx context.Context, store ListPlansStore, logger *zap.Logger) ([]db.Plan, error) {
	plans, err := store.GetPlans(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch plans: %w", err)
	}

	logger.Debug("Fetched plans", zap.Int("count", len(plans)))
	return plans, nil
}

// ShowPlan reads back a stored plan's strips and findings
func ShowPlan(ctx context.Context, store ShowPlanStore, logger *zap.Logger, planID string) (*PlanDetail, error) {
	strips, err := store.GetStrips(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch strips: %w", err)
	}
	if len(strips) == 0 {
		return nil, fmt.Errorf("plan %s not found", planID)
	}

	violations, err := store.GetViolations(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch violations: %w", err)
	}

	logger.Debug("Fetched plan",
		zap.String("plan_id", planID),
		zap.Int("strips", len(strips)),
		zap.Int("violations", len(violations)))

	return &PlanDetail{PlanID: planID, Strips: strips, Violations: violations}, nil
}

// planRows flattens a plan into database rows
func planRows(plan *schedule.Plan) (*db.PlanRows, error) {
	document, err := json.Marshal(plan)
	if err != nil {
		return nil, fmt.Errorf("failed to encode plan: %w", err)
	}

	id := plan.ID.String()
	rows := &db.PlanRows{
		Plan: db.Plan{
			ID:            id,
			Title:         plan.Title,
			TotalDays:     plan.TotalDays(),
			SceneCount:    len(plan.Estimates),
			RouteCost:     plan.RouteCost,
			HasViolations: plan.HasViolations(),
			Document:      document,
		},
	}
	if len(plan.Stripboard) > 0 {
		rows.Plan.CalendarStart = plan.Stripboard[0].Date
	}

	for _, day := range plan.Stripboard {
		for i, strip := range day.Strips {
			rows.Strips = append(rows.Strips, db.Strip{
				PlanID:      id,
				Day:         day.Day,
				Position:    i + 1,
				ShootDate:   day.Date,
				SceneNumber: strip.SceneNumber,
				Location:    strip.Location.Name,
				TimeOfDay:   string(strip.TimeOfDay),
				Color:       string(strip.Color),
				Eighths:     strip.Eighths,
				Hours:       strip.Hours,
			})
		}
	}

	for _, record := range plan.DOOP {
		for i, code := range record.DayCodes {
			if code == "" {
				continue
			}
			rows.PersonDays = append(rows.PersonDays, db.PersonDay{
				PlanID:   id,
				PersonID: record.PersonID,
				Day:      i + 1,
				Code:     code,
			})
		}
	}

	for _, v := range plan.Violations {
		rows.Violations = append(rows.Violations, db.Violation{
			PlanID:   id,
			Day:      v.Day,
			Kind:     string(v.Kind),
			Subject:  v.Subject,
			Severity: string(v.Severity),
			Detail:   v.Detail,
		})
	}

	return rows, nil
}
