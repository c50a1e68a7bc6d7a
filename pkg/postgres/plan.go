package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/varunisrani/thinkaiback-sub000/pkg/db"
)

var _ db.PlanStore = (*DB)(nil)

// InsertPlan writes a plan and all of its rows in one transaction. Plan ids are
// derived from their input, so an existing plan with the same id is replaced.
func (d *DB) InsertPlan(ctx context.Context, rows db.PlanRows) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	p := rows.Plan
	if _, err := tx.Exec(ctx, `DELETE FROM plan WHERE id = $1`, p.ID); err != nil {
		return fmt.Errorf("failed to replace plan %s: %w", p.ID, err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO plan (id, title, total_days, scene_count, route_cost, has_violations, calendar_start, document)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, p.ID, p.Title, p.TotalDays, p.SceneCount, p.RouteCost, p.HasViolations, p.CalendarStart, p.Document)
	if err != nil {
		return fmt.Errorf("failed to insert plan: %w", err)
	}

	batch := &pgx.Batch{}
	for _, s := range rows.Strips {
		batch.Queue(`
			INSERT INTO strip (plan_id, day, position, shoot_date, scene_number, location, time_of_day, color, eighths, hours)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		`, p.ID, s.Day, s.Position, s.ShootDate, s.SceneNumber, s.Location, s.TimeOfDay, s.Color, s.Eighths, s.Hours)
	}
	for _, pd := range rows.PersonDays {
		batch.Queue(`
			INSERT INTO person_day (plan_id, person_id, day, code)
			VALUES ($1, $2, $3, $4)
		`, p.ID, pd.PersonID, pd.Day, pd.Code)
	}
	for _, v := range rows.Violations {
		batch.Queue(`
			INSERT INTO violation (plan_id, day, kind, subject, severity, detail)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, p.ID, v.Day, v.Kind, v.Subject, v.Severity, v.Detail)
	}

	if batch.Len() > 0 {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("failed to insert plan rows: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetPlans retrieves every stored plan header, newest first. Documents are not loaded.
func (d *DB) GetPlans(ctx context.Context) ([]db.Plan, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id::text, title, total_days, scene_count, route_cost, has_violations, calendar_start, created_at
		FROM plan
		ORDER BY created_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query plans: %w", err)
	}

	plans, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (db.Plan, error) {
		var p db.Plan
		err := row.Scan(&p.ID, &p.Title, &p.TotalDays, &p.SceneCount, &p.RouteCost, &p.HasViolations, &p.CalendarStart, &p.CreatedAt)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan plans: %w", err)
	}

	return plans, nil
}

// GetStrips retrieves a plan's strips in shooting order
func (d *DB) GetStrips(ctx context.Context, planID string) ([]db.Strip, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT plan_id::text, day, position, shoot_date, scene_number, location, time_of_day, color, eighths, hours
		FROM strip
		WHERE plan_id = $1
		ORDER BY day, position
	`, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to query strips: %w", err)
	}

	strips, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (db.Strip, error) {
		var s db.Strip
		err := row.Scan(&s.PlanID, &s.Day, &s.Position, &s.ShootDate, &s.SceneNumber, &s.Location, &s.TimeOfDay, &s.Color, &s.Eighths, &s.Hours)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan strips: %w", err)
	}

	return strips, nil
}

// GetViolations retrieves a plan's compliance findings in the order they were found
func (d *DB) GetViolations(ctx context.Context, planID string) ([]db.Violation, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT plan_id::text, day, kind, subject, severity, detail
		FROM violation
		WHERE plan_id = $1
		ORDER BY id
	`, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to query violations: %w", err)
	}

	violations, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (db.Violation, error) {
		var v db.Violation
		err := row.Scan(&v.PlanID, &v.Day, &v.Kind, &v.Subject, &v.Severity, &v.Detail)
		return v, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan violations: %w", err)
	}

	return violations, nil
}
