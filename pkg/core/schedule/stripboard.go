package schedule

import (
	"slices"
	"time"

	"github.com/varunisrani/thinkaiback-sub000/pkg/core/eighths"
	"github.com/varunisrani/thinkaiback-sub000/pkg/core/model"
)

// StripColor is the stripboard color of a scene
type StripColor string

const (
	ColorWhite  StripColor = "white"
	ColorYellow StripColor = "yellow"
	ColorBlue   StripColor = "blue"
	ColorGreen  StripColor = "green"
	ColorPink   StripColor = "pink"
	ColorOrange StripColor = "orange"
)

// ColorFor returns the strip color for a location type and time of day
func ColorFor(locType model.LocationType, tod model.TimeOfDay) StripColor {
	exterior := locType == model.LocationExterior
	switch tod {
	case model.TimeNight:
		if exterior {
			return ColorGreen
		}
		return ColorBlue
	case model.TimeDusk, model.TimeDawn:
		if exterior {
			return ColorOrange
		}
		return ColorPink
	}
	if exterior {
		return ColorYellow
	}
	return ColorWhite
}

// Strip is one scene on the board
type Strip struct {
	SceneNumber string          `json:"scene_number"`
	Location    model.Location  `json:"location"`
	TimeOfDay   model.TimeOfDay `json:"time_of_day"`
	Color       StripColor      `json:"color"`
	Eighths     string          `json:"eighths"`
	Hours       float64         `json:"hours"`
	Cast        []string        `json:"cast"`
}

// StripboardDay is one shoot day on the board
type StripboardDay struct {
	Day        int       `json:"day"`
	Date       time.Time `json:"date"`
	Strips     []Strip   `json:"strips"`
	CastCall   []string  `json:"cast_call"`
	CrewSize   int       `json:"crew_size"`
	TotalHours float64   `json:"total_hours"`
}

// BuildStripboard renders the assignment day by day. A day's crew size is the
// sum of the crew of every department involved in any of its scenes.
func BuildStripboard(assignment model.ShootDayAssignment, estimates []model.SceneEstimate, requirements []model.DepartmentRequirement, calendar *Calendar) []StripboardDay {
	byScene := make(map[string]model.SceneEstimate, len(estimates))
	for _, estimate := range estimates {
		byScene[estimate.Scene.SceneNumber] = estimate
	}

	board := make([]StripboardDay, 0, assignment.TotalDays())
	for day := 1; day <= assignment.TotalDays(); day++ {
		sceneNumbers := assignment.ScenesOn(day)
		boardDay := StripboardDay{
			Day:      day,
			Date:     calendar.Date(day),
			Strips:   make([]Strip, 0, len(sceneNumbers)),
			CastCall: []string{},
		}

		hours := 0.0
		for _, sceneNumber := range sceneNumbers {
			estimate := byScene[sceneNumber]
			scene := estimate.Scene
			boardDay.Strips = append(boardDay.Strips, Strip{
				SceneNumber: sceneNumber,
				Location:    scene.Location,
				TimeOfDay:   scene.TimeOfDay,
				Color:       ColorFor(scene.Location.Type, scene.TimeOfDay),
				Eighths:     eighths.FormatEighths(estimate.Eighths.AdjustedEighths),
				Hours:       estimate.Eighths.TotalHours,
				Cast:        append([]string{}, scene.Cast...),
			})
			boardDay.CastCall = append(boardDay.CastCall, scene.Cast...)
			hours += estimate.Eighths.TotalHours
		}
		slices.Sort(boardDay.CastCall)
		boardDay.CastCall = slices.Compact(boardDay.CastCall)
		boardDay.TotalHours = roundHours(hours)

		for _, req := range requirements {
			if slices.ContainsFunc(sceneNumbers, req.IsInvolved) {
				boardDay.CrewSize += req.CrewSize
			}
		}

		board = append(board, boardDay)
	}

	return board
}
