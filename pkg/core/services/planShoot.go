package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/varunisrani/thinkaiback-sub000/pkg/core/model"
	"github.com/varunisrani/thinkaiback-sub000/pkg/core/schedule"
)

// PlanShoot assembles a shooting plan and logs a summary of it
func PlanShoot(ctx context.Context, production *model.Production, opts schedule.Options, logger *zap.Logger) (*schedule.Plan, error) {
	logger.Debug("Assembling plan",
		zap.Int("scenes", len(production.Scenes)),
		zap.Int("people", len(production.People)),
		zap.Int("workers", opts.Workers))

	plan, err := schedule.Assemble(ctx, *production, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble plan: %w", err)
	}

	warnings, violations := countFindings(plan.Violations)
	logger.Info("Plan assembled",
		zap.String("plan_id", plan.ID.String()),
		zap.Int("shoot_days", plan.TotalDays()),
		zap.Int("locations", len(plan.Clusters)),
		zap.Float64("route_cost", plan.RouteCost),
		zap.Int("warnings", warnings),
		zap.Int("violations", violations))

	for _, v := range plan.Violations {
		if v.Severity == model.SeverityViolation {
			logger.Warn("Compliance violation",
				zap.String("kind", string(v.Kind)),
				zap.String("subject", v.Subject),
				zap.Int("day", v.Day),
				zap.String("detail", v.Detail))
		}
	}

	return plan, nil
}

func countFindings(findings []model.ComplianceViolation) (warnings, violations int) {
	for _, f := range findings {
		switch f.Severity {
		case model.SeverityWarning:
			warnings++
		case model.SeverityViolation:
			violations++
		}
	}
	return warnings, violations
}
