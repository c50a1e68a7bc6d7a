package doop

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varunisrani/thinkaiback-sub000/pkg/core/model"
)

// assignmentForDays builds a schedule of totalDays days with one scene per day,
// scene "dN" shot on day N
func assignmentForDays(t *testing.T, totalDays int) model.ShootDayAssignment {
	t.Helper()
	entries := make([]model.AssignmentEntry, totalDays)
	for day := 1; day <= totalDays; day++ {
		entries[day-1] = model.AssignmentEntry{SceneNumber: fmt.Sprintf("d%d", day), Day: day, Slot: 1}
	}
	assignment, err := model.NewShootDayAssignment(entries)
	require.NoError(t, err)
	return assignment
}

func scenesOn(days ...int) []string {
	scenes := make([]string, len(days))
	for i, day := range days {
		scenes[i] = fmt.Sprintf("d%d", day)
	}
	return scenes
}

func TestGenerate_Scenario(t *testing.T) {
	assignment := assignmentForDays(t, 10)

	record := Generate("anna", scenesOn(2, 3, 4, 8, 9), assignment, 10)

	assert.Equal(t, "anna", record.PersonID)
	assert.Equal(t, []int{2, 3, 4, 8, 9}, record.WorkDays)
	assert.Equal(t, []int{1, 10}, record.TravelDays)
	assert.Equal(t, []int{5, 6, 7}, record.HoldDays)
	assert.Equal(t, []model.ConsecutiveBlock{
		{Start: 2, End: 4, Length: 3},
		{Start: 8, End: 9, Length: 2},
	}, record.ConsecutiveBlocks)
	assert.Equal(t, 3, record.LongestBreak)
	assert.InDelta(t, 62.5, record.Efficiency, 1e-9)
	assert.Equal(t, []string{"T", "SW", "W", "W", "H", "H", "H", "W", "WF", "T"}, record.DayCodes)
}

func TestGenerate_NoScenes(t *testing.T) {
	assignment := assignmentForDays(t, 5)

	record := Generate("extra", nil, assignment, 5)

	assert.Empty(t, record.WorkDays)
	assert.Empty(t, record.TravelDays)
	assert.Empty(t, record.HoldDays)
	assert.Empty(t, record.ConsecutiveBlocks)
	assert.Equal(t, 0, record.LongestBreak)
	assert.Equal(t, 0.0, record.Efficiency)
	assert.Len(t, record.DayCodes, 5)
}

func TestGenerate_UnknownScenesIgnored(t *testing.T) {
	assignment := assignmentForDays(t, 3)

	record := Generate("anna", []string{"nope"}, assignment, 3)
	assert.Empty(t, record.WorkDays)
}

func TestGenerate_SingleDay(t *testing.T) {
	assignment := assignmentForDays(t, 3)

	record := Generate("anna", scenesOn(1), assignment, 3)

	assert.Equal(t, []int{1}, record.WorkDays)
	assert.Equal(t, []int{2}, record.TravelDays, "no travel-in before day 1")
	assert.Equal(t, 100.0, record.Efficiency)
	assert.Equal(t, []string{"SWF", "T", ""}, record.DayCodes)
}

func TestGenerate_WholeSchedule_NoTravel(t *testing.T) {
	assignment := assignmentForDays(t, 4)

	record := Generate("lead", scenesOn(1, 2, 3, 4), assignment, 4)

	assert.Empty(t, record.TravelDays)
	assert.Empty(t, record.HoldDays)
	assert.Equal(t, []model.ConsecutiveBlock{{Start: 1, End: 4, Length: 4}}, record.ConsecutiveBlocks)
	assert.Equal(t, 0, record.LongestBreak)
}

func TestGenerate_DuplicateDaysCollapse(t *testing.T) {
	entries := []model.AssignmentEntry{
		{SceneNumber: "1", Day: 1, Slot: 1},
		{SceneNumber: "2", Day: 1, Slot: 2},
		{SceneNumber: "3", Day: 2, Slot: 1},
	}
	assignment, err := model.NewShootDayAssignment(entries)
	require.NoError(t, err)

	record := Generate("anna", []string{"1", "2"}, assignment, 2)
	assert.Equal(t, []int{1}, record.WorkDays)
}

func TestGenerate_Invariants(t *testing.T) {
	assignment := assignmentForDays(t, 20)
	patterns := [][]int{
		{1},
		{20},
		{1, 20},
		{3, 4, 5, 6, 7, 8, 9},
		{2, 5, 6, 11, 12, 13, 19},
		{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20},
	}

	for _, days := range patterns {
		t.Run(fmt.Sprint(days), func(t *testing.T) {
			record := Generate("p", scenesOn(days...), assignment, 20)

			work := make(map[int]bool)
			for _, day := range record.WorkDays {
				work[day] = true
			}
			for _, day := range record.TravelDays {
				assert.False(t, work[day], "travel day %d is also a work day", day)
			}
			for _, day := range record.HoldDays {
				assert.False(t, work[day], "hold day %d is also a work day", day)
			}

			blockTotal := 0
			for _, block := range record.ConsecutiveBlocks {
				blockTotal += block.Length
			}
			assert.Equal(t, len(record.WorkDays), blockTotal)

			assert.GreaterOrEqual(t, record.Efficiency, 0.0)
			assert.LessOrEqual(t, record.Efficiency, 100.0)
		})
	}
}

func TestSceneIndex(t *testing.T) {
	scenes := []model.SceneRecord{
		{SceneNumber: "1", Cast: []string{"anna", "ben"}},
		{SceneNumber: "10", Cast: []string{"anna"}},
		{SceneNumber: "2", Cast: []string{"ben"}},
	}
	people := []model.Person{
		{ID: "anna", SceneNumbers: []string{"1"}},
		{ID: "gaffer", SceneNumbers: []string{"2", "10"}},
		{ID: "standby"},
	}

	ids, index := SceneIndex(scenes, people)

	assert.Equal(t, []string{"anna", "ben", "gaffer", "standby"}, ids)
	assert.Equal(t, []string{"1", "10"}, index["anna"])
	assert.Equal(t, []string{"1", "2"}, index["ben"])
	assert.Equal(t, []string{"2", "10"}, index["gaffer"])
	assert.Empty(t, index["standby"])
}

func TestGenerateAll(t *testing.T) {
	assignment := assignmentForDays(t, 4)
	scenes := []model.SceneRecord{
		{SceneNumber: "d1", Cast: []string{"anna"}},
		{SceneNumber: "d2", Cast: []string{"ben"}},
		{SceneNumber: "d3", Cast: []string{"anna"}},
		{SceneNumber: "d4"},
	}

	records, err := GenerateAll(context.Background(), scenes, []model.Person{{ID: "idle"}}, assignment, 3)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "anna", records[0].PersonID)
	assert.Equal(t, []int{1, 3}, records[0].WorkDays)
	assert.Equal(t, []int{2}, records[0].HoldDays)
	assert.Equal(t, []int{4}, records[0].TravelDays)

	assert.Equal(t, "ben", records[1].PersonID)
	assert.Equal(t, []int{1, 3}, records[1].TravelDays)

	assert.Equal(t, "idle", records[2].PersonID)
	assert.Empty(t, records[2].WorkDays)
}
