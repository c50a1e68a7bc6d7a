package doop

import (
	"context"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/varunisrani/thinkaiback-sub000/pkg/core/model"
)

// MaxConsecutiveDays is the longest block of work days allowed without a violation.
// A block of exactly this length is reported as a warning.
const MaxConsecutiveDays = 6

// Generate builds the Day-Out-of-Days report for one person.
//
// totalShootDays is the length of the whole schedule; it bounds the travel day
// after the person's last work day. A person with no scheduled scenes gets an
// empty report rather than an error.
func Generate(personID string, sceneNumbers []string, assignment model.ShootDayAssignment, totalShootDays int) model.PersonScheduleRecord {
	record := model.PersonScheduleRecord{
		PersonID:          personID,
		WorkDays:          []int{},
		TravelDays:        []int{},
		HoldDays:          []int{},
		ConsecutiveBlocks: []model.ConsecutiveBlock{},
		DayCodes:          make([]string, max(totalShootDays, 0)),
	}

	for _, sceneNumber := range sceneNumbers {
		if day, ok := assignment.Day(sceneNumber); ok {
			record.WorkDays = append(record.WorkDays, day)
		}
	}
	slices.Sort(record.WorkDays)
	record.WorkDays = slices.Compact(record.WorkDays)

	if len(record.WorkDays) == 0 {
		return record
	}

	first := record.WorkDays[0]
	last := record.WorkDays[len(record.WorkDays)-1]

	// Travel in the day before the first work day and out the day after the last
	if first > 1 {
		record.TravelDays = append(record.TravelDays, first-1)
	}
	if last < totalShootDays {
		record.TravelDays = append(record.TravelDays, last+1)
	}

	// Every non-work day between first and last is a hold day
	worked := make(map[int]bool, len(record.WorkDays))
	for _, day := range record.WorkDays {
		worked[day] = true
	}
	for day := first + 1; day < last; day++ {
		if !worked[day] {
			record.HoldDays = append(record.HoldDays, day)
		}
	}

	record.ConsecutiveBlocks = consecutiveBlocks(record.WorkDays)

	for i := 1; i < len(record.WorkDays); i++ {
		record.LongestBreak = max(record.LongestBreak, record.WorkDays[i]-record.WorkDays[i-1]-1)
	}

	record.Efficiency = float64(len(record.WorkDays)) / float64(last-first+1) * 100

	fillDayCodes(&record, first, last)

	return record
}

// consecutiveBlocks splits sorted unique days into maximal runs
func consecutiveBlocks(days []int) []model.ConsecutiveBlock {
	blocks := []model.ConsecutiveBlock{}
	start := days[0]
	for i := 1; i <= len(days); i++ {
		if i < len(days) && days[i] == days[i-1]+1 {
			continue
		}
		end := days[i-1]
		blocks = append(blocks, model.ConsecutiveBlock{Start: start, End: end, Length: end - start + 1})
		if i < len(days) {
			start = days[i]
		}
	}
	return blocks
}

func fillDayCodes(record *model.PersonScheduleRecord, first, last int) {
	set := func(day int, code string) {
		if day >= 1 && day <= len(record.DayCodes) {
			record.DayCodes[day-1] = code
		}
	}

	for _, day := range record.TravelDays {
		set(day, model.DayCodeTravel)
	}
	for _, day := range record.HoldDays {
		set(day, model.DayCodeHold)
	}
	for _, day := range record.WorkDays {
		set(day, model.DayCodeWork)
	}

	if first == last {
		set(first, model.DayCodeStartWorkFinish)
		return
	}
	set(first, model.DayCodeStartWork)
	set(last, model.DayCodeWorkFinish)
}

// SceneIndex maps every person to the scenes they appear in, combining scene cast
// lists with directory associations. People are returned sorted by id.
func SceneIndex(scenes []model.SceneRecord, people []model.Person) ([]string, map[string][]string) {
	index := make(map[string][]string)
	for _, scene := range scenes {
		for _, personID := range scene.Cast {
			index[personID] = append(index[personID], scene.SceneNumber)
		}
	}
	for _, person := range people {
		if _, ok := index[person.ID]; !ok {
			index[person.ID] = nil
		}
		index[person.ID] = append(index[person.ID], person.SceneNumbers...)
	}

	ids := make([]string, 0, len(index))
	for id, sceneNumbers := range index {
		slices.SortFunc(sceneNumbers, model.CompareSceneNumbers)
		index[id] = slices.Compact(sceneNumbers)
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids, index
}

// GenerateAll builds reports for every person concurrently. Each worker writes
// only its own slot; the result is ordered by person id.
func GenerateAll(ctx context.Context, scenes []model.SceneRecord, people []model.Person, assignment model.ShootDayAssignment, workers int) ([]model.PersonScheduleRecord, error) {
	ids, index := SceneIndex(scenes, people)
	totalDays := assignment.TotalDays()
	records := make([]model.PersonScheduleRecord, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))

	for i, id := range ids {
		sceneNumbers := index[id]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			records[i] = Generate(id, sceneNumbers, assignment, totalDays)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}
