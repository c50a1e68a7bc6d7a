package departments

import (
	"strings"

	"github.com/varunisrani/thinkaiback-sub000/pkg/core/model"
)

// Department names
const (
	Camera         = "camera"
	Sound          = "sound"
	Lighting       = "lighting"
	Art            = "art"
	Wardrobe       = "wardrobe"
	SpecialEffects = "special_effects"
)

// Classification is a rule's verdict for a single scene
type Classification struct {
	Level        model.Involvement
	Equipment    []string
	SpecialNeeds []string
}

// Rule decides how heavily one department is involved in a scene.
//
// Rules read only the structured scene fields (technical cues, props, wardrobe
// notes, special requirements, location type and time of day), so the same scene
// always classifies the same way.
type Rule interface {
	// Name returns the department this rule classifies for
	Name() string

	// Classify returns the involvement level plus any equipment and special needs
	// the scene implies for this department
	Classify(scene model.SceneRecord) Classification
}

// DefaultRules returns the rule for every department, in reporting order
func DefaultRules() []Rule {
	return []Rule{
		CameraRule{},
		SoundRule{},
		LightingRule{},
		ArtRule{},
		WardrobeRule{},
		SpecialEffectsRule{},
	}
}

// keyword maps a term found in scene notes to what it implies
type keyword struct {
	term        string
	equipment   string
	specialNeed string
	heavy       bool
}

// matchKeywords returns the table entries whose term appears in any of the texts,
// in table order. Matching is case-insensitive and anchored at the start of a word,
// so "explosions" matches "explosion" but "campfire" does not match "fire".
func matchKeywords(table []keyword, texts ...[]string) []keyword {
	var matched []keyword
	for _, kw := range table {
		if containsTerm(kw.term, texts...) {
			matched = append(matched, kw)
		}
	}
	return matched
}

func containsTerm(term string, texts ...[]string) bool {
	for _, group := range texts {
		for _, text := range group {
			lower := strings.ToLower(text)
			for offset := 0; ; {
				idx := strings.Index(lower[offset:], term)
				if idx < 0 {
					break
				}
				pos := offset + idx
				if pos == 0 || !isLetter(lower[pos-1]) {
					return true
				}
				offset = pos + 1
			}
		}
	}
	return false
}

func isLetter(b byte) bool {
	return b >= 'a' && b <= 'z'
}

// raise returns the higher of two involvement levels
func raise(current, candidate model.Involvement) model.Involvement {
	if candidate.Rank() > current.Rank() {
		return candidate
	}
	return current
}

// collect folds matched keywords into a classification
func collect(c *Classification, matched []keyword) {
	for _, kw := range matched {
		if kw.equipment != "" {
			c.Equipment = append(c.Equipment, kw.equipment)
		}
		if kw.specialNeed != "" {
			c.SpecialNeeds = append(c.SpecialNeeds, kw.specialNeed)
		}
		if kw.heavy {
			c.Level = raise(c.Level, model.InvolvementHeavy)
		}
	}
}
