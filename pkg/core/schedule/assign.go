package schedule

import (
	"cmp"
	"slices"

	"github.com/varunisrani/thinkaiback-sub000/pkg/core/model"
)

// AssignDays lays the ordered clusters onto sequential shoot days.
//
// Each cluster takes its estimated days, but never more days than it has scenes
// and never so few that a day holds more than maxScenesPerDay scenes. Within a
// cluster scenes are sorted by complexity (simplest first, ties by scene number)
// and split as evenly as possible, earlier days taking the extra scenes. Days
// never mix clusters.
func AssignDays(clusters []model.LocationCluster, estimates []model.SceneEstimate, maxScenesPerDay int) (model.ShootDayAssignment, error) {
	complexity := make(map[string]float64, len(estimates))
	for _, estimate := range estimates {
		complexity[estimate.Scene.SceneNumber] = estimate.Complexity.Total
	}
	maxScenesPerDay = max(maxScenesPerDay, 1)

	var entries []model.AssignmentEntry
	day := 1
	for _, cluster := range clusters {
		n := cluster.SceneCount()
		if n == 0 {
			continue
		}

		scenes := slices.Clone(cluster.SceneNumbers)
		slices.SortFunc(scenes, func(a, b string) int {
			return cmp.Or(
				cmp.Compare(complexity[a], complexity[b]),
				model.CompareSceneNumbers(a, b),
			)
		})

		days := min(max(cluster.EstimatedDays, 1), n)
		days = max(days, (n+maxScenesPerDay-1)/maxScenesPerDay)

		perDay, extra := n/days, n%days
		next := 0
		for d := 0; d < days; d++ {
			count := perDay
			if d < extra {
				count++
			}
			for slot := 1; slot <= count; slot++ {
				entries = append(entries, model.AssignmentEntry{
					SceneNumber: scenes[next],
					Day:         day + d,
					Slot:        slot,
				})
				next++
			}
		}
		day += days
	}

	return model.NewShootDayAssignment(entries)
}
