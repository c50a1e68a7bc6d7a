package eighths

import (
	"math"
	"strconv"
	"strings"

	"github.com/varunisrani/thinkaiback-sub000/pkg/core/model"
)

// TimingConstants converts script length into pages, eighths and hours
type TimingConstants struct {
	WordsPerPage   float64 `yaml:"wordsPerPage"`
	MinPageCount   float64 `yaml:"minPageCount"`
	EighthsPerPage float64 `yaml:"eighthsPerPage"`

	// HoursPerEighth is shoot time per adjusted eighth
	HoursPerEighth float64 `yaml:"hoursPerEighth"`

	// SetupRatio and WrapRatio are fractions of the shoot time
	SetupRatio float64 `yaml:"setupRatio"`
	WrapRatio  float64 `yaml:"wrapRatio"`
}

// DefaultTimingConstants returns 250 words a page, 8 eighths a page and
// 0.15 shoot hours an eighth with 30% setup and 20% wrap on top.
func DefaultTimingConstants() TimingConstants {
	return TimingConstants{
		WordsPerPage:   250,
		MinPageCount:   0.125,
		EighthsPerPage: 8,
		HoursPerEighth: 0.15,
		SetupRatio:     0.3,
		WrapRatio:      0.2,
	}
}

func (c TimingConstants) Validate() error {
	switch {
	case c.WordsPerPage <= 0:
		return &model.ConfigurationError{Field: "timing.wordsPerPage", Reason: "must be positive"}
	case c.MinPageCount <= 0:
		return &model.ConfigurationError{Field: "timing.minPageCount", Reason: "must be positive"}
	case c.EighthsPerPage <= 0:
		return &model.ConfigurationError{Field: "timing.eighthsPerPage", Reason: "must be positive"}
	case c.HoursPerEighth <= 0:
		return &model.ConfigurationError{Field: "timing.hoursPerEighth", Reason: "must be positive"}
	case c.SetupRatio < 0, c.WrapRatio < 0:
		return &model.ConfigurationError{Field: "timing", Reason: "setup and wrap ratios must not be negative"}
	}
	return nil
}

// CalculateEighths estimates the length and time of a scene.
//
// An explicit eighths override wins over the description. Otherwise the page count
// is the description's word count over WordsPerPage, floored at MinPageCount so an
// empty description still costs an eighth. Long scenes are not capped.
func CalculateEighths(scene model.SceneRecord, complexity model.ComplexityResult, c TimingConstants) model.SceneEighths {
	result := model.SceneEighths{SceneNumber: scene.SceneNumber}

	var pageCount float64
	if scene.Eighths != nil {
		pageCount = *scene.Eighths / c.EighthsPerPage
	} else {
		result.WordCount = len(strings.Fields(scene.Description))
		pageCount = float64(result.WordCount) / c.WordsPerPage
	}
	pageCount = max(pageCount, c.MinPageCount)

	baseEighths := pageCount * c.EighthsPerPage
	adjustedEighths := baseEighths * complexity.Total
	shootHours := adjustedEighths * c.HoursPerEighth
	setupHours := shootHours * c.SetupRatio
	wrapHours := shootHours * c.WrapRatio

	result.PageCount = roundTo(pageCount, 4)
	result.BaseEighths = roundTo(baseEighths, 4)
	result.AdjustedEighths = roundTo(adjustedEighths, 4)
	result.ShootHours = roundTo(shootHours, 4)
	result.SetupHours = roundTo(setupHours, 4)
	result.WrapHours = roundTo(wrapHours, 4)
	result.TotalHours = roundTo(shootHours+setupHours+wrapHours, 4)

	return result
}

// FormatEighths renders eighths the way a stripboard does: "2 3/8", "5/8", "1"
func FormatEighths(eighths float64) string {
	total := int(math.Round(eighths))
	if total <= 0 {
		return "0"
	}
	pages, rest := total/8, total%8
	switch {
	case pages == 0:
		return strconv.Itoa(rest) + "/8"
	case rest == 0:
		return strconv.Itoa(pages)
	}
	return strconv.Itoa(pages) + " " + strconv.Itoa(rest) + "/8"
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
