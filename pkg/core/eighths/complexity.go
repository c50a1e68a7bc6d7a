package eighths

import (
	"github.com/varunisrani/thinkaiback-sub000/pkg/core/model"
)

// ComplexityWeights holds every constant used by the complexity scorer
type ComplexityWeights struct {
	// Base is the starting multiplier for every scene
	Base float64 `yaml:"base"`

	// PerTechnicalCue is added once per distinct technical cue
	PerTechnicalCue float64 `yaml:"perTechnicalCue"`

	// Exterior is added for EXT locations
	Exterior float64 `yaml:"exterior"`

	// Night is added for NIGHT scenes, DuskDawn for DUSK or DAWN scenes
	Night    float64 `yaml:"night"`
	DuskDawn float64 `yaml:"duskDawn"`

	// PerExtraCastMember is added for each cast member above CastThreshold
	CastThreshold      int     `yaml:"castThreshold"`
	PerExtraCastMember float64 `yaml:"perExtraCastMember"`

	// HeavyDialogue is added when the dialogue count exceeds DialogueThreshold
	DialogueThreshold int     `yaml:"dialogueThreshold"`
	HeavyDialogue     float64 `yaml:"heavyDialogue"`

	// Max caps the total multiplier
	Max float64 `yaml:"max"`
}

// DefaultComplexityWeights returns the standard scoring table
func DefaultComplexityWeights() ComplexityWeights {
	return ComplexityWeights{
		Base:               1.0,
		PerTechnicalCue:    0.1,
		Exterior:           0.2,
		Night:              0.3,
		DuskDawn:           0.2,
		CastThreshold:      3,
		PerExtraCastMember: 0.1,
		DialogueThreshold:  10,
		HeavyDialogue:      0.1,
		Max:                3.0,
	}
}

// Validate checks the weights can only produce totals within [1.0, Max]
func (w ComplexityWeights) Validate() error {
	switch {
	case w.Base < 1.0:
		return &model.ConfigurationError{Field: "complexity.base", Reason: "must be at least 1.0"}
	case w.Max < w.Base:
		return &model.ConfigurationError{Field: "complexity.max", Reason: "must not be below the base multiplier"}
	case w.PerTechnicalCue < 0, w.Exterior < 0, w.Night < 0, w.DuskDawn < 0, w.PerExtraCastMember < 0, w.HeavyDialogue < 0:
		return &model.ConfigurationError{Field: "complexity", Reason: "factor weights must not be negative"}
	case w.CastThreshold < 0, w.DialogueThreshold < 0:
		return &model.ConfigurationError{Field: "complexity", Reason: "thresholds must not be negative"}
	}
	return nil
}

// ScoreComplexity computes the complexity multiplier for a scene.
//
//	total = base
//	      + perTechnicalCue × cues
//	      + exterior                      (EXT)
//	      + night | duskDawn              (NIGHT | DUSK, DAWN)
//	      + perExtraCastMember × max(0, cast − castThreshold)
//	      + heavyDialogue                 (dialogue > dialogueThreshold)
//
// capped at Max. Each term is kept in the result so the score can be audited.
func ScoreComplexity(scene model.SceneRecord, w ComplexityWeights) model.ComplexityResult {
	result := model.ComplexityResult{
		SceneNumber: scene.SceneNumber,
		Base:        w.Base,
		Technical:   w.PerTechnicalCue * float64(len(scene.TechnicalCues)),
	}

	if scene.Location.Type == model.LocationExterior {
		result.Exterior = w.Exterior
	}

	switch scene.TimeOfDay {
	case model.TimeNight:
		result.TimeOfDay = w.Night
	case model.TimeDusk, model.TimeDawn:
		result.TimeOfDay = w.DuskDawn
	}

	if extra := len(scene.Cast) - w.CastThreshold; extra > 0 {
		result.Cast = w.PerExtraCastMember * float64(extra)
	}

	if scene.DialogueCount > w.DialogueThreshold {
		result.Dialogue = w.HeavyDialogue
	}

	total := result.Base + result.Technical + result.Exterior + result.TimeOfDay + result.Cast + result.Dialogue
	result.Total = roundTo(min(total, w.Max), 4)

	return result
}
