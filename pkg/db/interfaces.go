package db

import "context"

// PlanStore defines the interface for plan database operations
type PlanStore interface {
	// InsertPlan stores a plan and its rows. A plan with the same id is replaced.
	InsertPlan(ctx context.Context, rows PlanRows) error
	GetPlans(ctx context.Context) ([]Plan, error)
	GetStrips(ctx context.Context, planID string) ([]Strip, error)
	GetViolations(ctx context.Context, planID string) ([]Violation, error)
}
