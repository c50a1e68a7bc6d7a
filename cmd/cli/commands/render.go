package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/varunisrani/thinkaiback-sub000/pkg/core/eighths"
	"github.com/varunisrani/thinkaiback-sub000/pkg/core/model"
	"github.com/varunisrani/thinkaiback-sub000/pkg/core/schedule"
	"github.com/varunisrani/thinkaiback-sub000/pkg/core/services"
	"github.com/varunisrani/thinkaiback-sub000/pkg/db"
)

const (
	dateFormat = "Mon Jan 02 2006"
	timeFormat = "15:04"
)

func printPlanSummary(w io.Writer, plan *schedule.Plan) {
	fmt.Fprintf(w, "\n%s\n\n", orDefault(plan.Title, "Untitled production"))
	fmt.Fprintf(w, "Plan ID:     %s\n", plan.ID)
	fmt.Fprintf(w, "Scenes:      %d\n", len(plan.Estimates))
	fmt.Fprintf(w, "Locations:   %d\n", len(plan.Clusters))
	fmt.Fprintf(w, "Shoot Days:  %d\n", plan.TotalDays())
	fmt.Fprintf(w, "Route Cost:  %.2f\n", plan.RouteCost)
	if n := len(plan.Stripboard); n > 0 {
		fmt.Fprintf(w, "Dates:       %s - %s\n", plan.Stripboard[0].Date.Format(dateFormat), plan.Stripboard[n-1].Date.Format(dateFormat))
	}
	fmt.Fprintln(w)
}

func printStripboard(w io.Writer, board []schedule.StripboardDay) {
	for _, day := range board {
		fmt.Fprintf(w, "Day %d - %s (crew %d, %.2fh)\n", day.Day, day.Date.Format(dateFormat), day.CrewSize, day.TotalHours)
		for _, strip := range day.Strips {
			fmt.Fprintf(w, "  %-6s %-8s %-24s %-6s %-7s %6.2fh  %s\n",
				strip.SceneNumber,
				strip.Color,
				fmt.Sprintf("%s. %s", strip.Location.Type, strip.Location.Name),
				strip.TimeOfDay,
				strip.Eighths,
				strip.Hours,
				strings.Join(strip.Cast, ", "),
			)
		}
		fmt.Fprintf(w, "  Cast call: %s\n\n", orDefault(strings.Join(day.CastCall, ", "), "-"))
	}
}

func printFindings(w io.Writer, findings []model.ComplianceViolation) {
	if len(findings) == 0 {
		fmt.Fprintln(w, "No compliance findings.")
		return
	}

	fmt.Fprintf(w, "Compliance findings (%d):\n", len(findings))
	for _, f := range findings {
		fmt.Fprintf(w, "  Day %-3d %-10s %-28s %-10s %s\n", f.Day, f.Severity, f.Kind, f.Subject, f.Detail)
	}
	fmt.Fprintln(w)
}

func printEstimates(w io.Writer, estimates []model.SceneEstimate) {
	fmt.Fprintf(w, "%-6s %-24s %-6s %10s %6s %7s %7s\n", "Scene", "Set", "Time", "Complexity", "Pages", "Eighths", "Hours")
	total := 0.0
	hours := 0.0
	for _, e := range estimates {
		fmt.Fprintf(w, "%-6s %-24s %-6s %10.2f %6.2f %7s %7.2f\n",
			e.Scene.SceneNumber,
			e.Scene.LocationKey().String(),
			e.Scene.TimeOfDay,
			e.Complexity.Total,
			e.Eighths.PageCount,
			eighths.FormatEighths(e.Eighths.AdjustedEighths),
			e.Eighths.TotalHours,
		)
		total += e.Eighths.AdjustedEighths
		hours += e.Eighths.TotalHours
	}
	fmt.Fprintf(w, "\nTotal: %s pages, %.2f hours\n", eighths.FormatEighths(total), hours)
}

func printDOOP(w io.Writer, records []model.PersonScheduleRecord, totalDays int) {
	fmt.Fprintf(w, "%-16s", "Person")
	for day := 1; day <= totalDays; day++ {
		fmt.Fprintf(w, "%-5d", day)
	}
	fmt.Fprintf(w, "%5s %5s %5s %7s\n", "Work", "Hold", "Trvl", "Eff%")

	for _, r := range records {
		fmt.Fprintf(w, "%-16s", r.PersonID)
		for _, code := range r.DayCodes {
			fmt.Fprintf(w, "%-5s", orDefault(code, "."))
		}
		fmt.Fprintf(w, "%5d %5d %5d %7.1f\n", len(r.WorkDays), len(r.HoldDays), len(r.TravelDays), r.Efficiency)
	}
}

func printClusters(w io.Writer, clusters []model.LocationCluster, routeCost float64) {
	for i, c := range clusters {
		fmt.Fprintf(w, "%2d. %-24s %2d scenes  %2d days  complexity %.2f  [%s]\n",
			i+1,
			c.Key.String(),
			c.SceneCount(),
			c.EstimatedDays,
			c.ComplexityScore,
			strings.Join(c.SceneNumbers, ", "),
		)
	}
	fmt.Fprintf(w, "\nRoute cost: %.2f\n", routeCost)
}

func printDepartments(w io.Writer, requirements []model.DepartmentRequirement) {
	for _, req := range requirements {
		involved := 0
		for _, inv := range req.Involvement {
			if inv.Level != model.InvolvementNone {
				involved++
			}
		}

		fmt.Fprintf(w, "%-16s crew %-3d %7.2fh  %d/%d scenes\n", req.Department, req.CrewSize, req.EstimatedHours, involved, len(req.Involvement))
		if len(req.Equipment) > 0 {
			fmt.Fprintf(w, "  Equipment: %s\n", strings.Join(req.Equipment, ", "))
		}
		if len(req.SpecialNeeds) > 0 {
			fmt.Fprintf(w, "  Needs:     %s\n", strings.Join(req.SpecialNeeds, ", "))
		}
	}
}

func printCrewDays(w io.Writer, days []model.CrewDay) {
	for _, d := range days {
		meals := make([]string, 0, len(d.Meals))
		for _, m := range d.Meals {
			meals = append(meals, m.Start.Format(timeFormat)+"-"+m.End.Format(timeFormat))
		}
		fmt.Fprintf(w, "Day %-3d %s  call %s  wrap %s  (%s)  meals: %s\n",
			d.Day,
			d.Date.Format(dateFormat),
			d.Call.Format(timeFormat),
			d.Wrap.Format(timeFormat),
			d.Length(),
			orDefault(strings.Join(meals, ", "), "none"),
		)
	}
	fmt.Fprintln(w)
}

func printStoredPlans(w io.Writer, plans []db.Plan) {
	if len(plans) == 0 {
		fmt.Fprintln(w, "No saved plans.")
		return
	}

	for _, p := range plans {
		flag := ""
		if p.HasViolations {
			flag = "  [violations]"
		}
		fmt.Fprintf(w, "%s  %-24s %3d days %4d scenes  starts %s  saved %s%s\n",
			p.ID,
			orDefault(p.Title, "-"),
			p.TotalDays,
			p.SceneCount,
			p.CalendarStart.Format("2006-01-02"),
			p.CreatedAt.Format("2006-01-02 15:04"),
			flag,
		)
	}
}

func printPlanDetail(w io.Writer, detail *services.PlanDetail) {
	fmt.Fprintf(w, "\nPlan %s\n\n", detail.PlanID)

	day := 0
	for _, s := range detail.Strips {
		if s.Day != day {
			day = s.Day
			fmt.Fprintf(w, "Day %d - %s\n", s.Day, s.ShootDate.Format(dateFormat))
		}
		fmt.Fprintf(w, "  %-6s %-8s %-20s %-6s %-7s %6.2fh\n", s.SceneNumber, s.Color, s.Location, s.TimeOfDay, s.Eighths, s.Hours)
	}

	fmt.Fprintln(w)
	if len(detail.Violations) == 0 {
		fmt.Fprintln(w, "No compliance findings.")
		return
	}
	for _, v := range detail.Violations {
		fmt.Fprintf(w, "  Day %-3d %-10s %-28s %s\n", v.Day, v.Severity, v.Kind, v.Detail)
	}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
