package model

import (
	"encoding/json"
	"fmt"
	"slices"
)

// AssignmentEntry places one scene on a shoot day. Slot is the scene's
// position within the day, starting at 1.
type AssignmentEntry struct {
	SceneNumber string `json:"scene_number"`
	Day         int    `json:"day"`
	Slot        int    `json:"slot"`
}

// ShootDayAssignment maps each scene to a shoot day. It is the one authoritative
// artifact of a plan; DOOP, department and compliance views are recomputed from it.
// Values are built once through NewShootDayAssignment and never edited in place.
type ShootDayAssignment struct {
	entries []AssignmentEntry
	byScene map[string]int
}

// NewShootDayAssignment builds an assignment from entries. Days must be positive and
// sequential (no day may be skipped) and each scene may appear once.
func NewShootDayAssignment(entries []AssignmentEntry) (ShootDayAssignment, error) {
	sorted := slices.Clone(entries)
	slices.SortFunc(sorted, func(a, b AssignmentEntry) int {
		if a.Day != b.Day {
			return a.Day - b.Day
		}
		if a.Slot != b.Slot {
			return a.Slot - b.Slot
		}
		return CompareSceneNumbers(a.SceneNumber, b.SceneNumber)
	})

	byScene := make(map[string]int, len(sorted))
	prevDay := 0
	for i, entry := range sorted {
		if entry.Day < 1 {
			return ShootDayAssignment{}, fmt.Errorf("scene %q assigned to non-positive day %d", entry.SceneNumber, entry.Day)
		}
		if entry.Day > prevDay+1 {
			return ShootDayAssignment{}, fmt.Errorf("shoot days must be sequential: day %d follows day %d", entry.Day, prevDay)
		}
		if _, dup := byScene[entry.SceneNumber]; dup {
			return ShootDayAssignment{}, fmt.Errorf("scene %q assigned more than once", entry.SceneNumber)
		}
		byScene[entry.SceneNumber] = i
		prevDay = entry.Day
	}

	return ShootDayAssignment{entries: sorted, byScene: byScene}, nil
}

// Day returns the shoot day of a scene
func (a ShootDayAssignment) Day(sceneNumber string) (int, bool) {
	i, ok := a.byScene[sceneNumber]
	if !ok {
		return 0, false
	}
	return a.entries[i].Day, true
}

// TotalDays returns the number of shoot days in the schedule
func (a ShootDayAssignment) TotalDays() int {
	if len(a.entries) == 0 {
		return 0
	}
	return a.entries[len(a.entries)-1].Day
}

// ScenesOn returns the scenes shot on a day in slot order
func (a ShootDayAssignment) ScenesOn(day int) []string {
	var scenes []string
	for _, entry := range a.entries {
		if entry.Day == day {
			scenes = append(scenes, entry.SceneNumber)
		}
	}
	return scenes
}

// Entries returns a copy of all entries ordered by day then slot
func (a ShootDayAssignment) Entries() []AssignmentEntry {
	return slices.Clone(a.entries)
}

// Len returns the number of assigned scenes
func (a ShootDayAssignment) Len() int {
	return len(a.entries)
}

func (a ShootDayAssignment) MarshalJSON() ([]byte, error) {
	entries := a.entries
	if entries == nil {
		entries = []AssignmentEntry{}
	}
	return json.Marshal(entries)
}
