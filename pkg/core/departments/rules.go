package departments

import (
	"strings"

	"github.com/varunisrani/thinkaiback-sub000/pkg/core/model"
)

var cameraKeywords = []keyword{
	{term: "crane", equipment: "crane", specialNeed: "crane operator"},
	{term: "dolly", equipment: "dolly and track"},
	{term: "steadicam", equipment: "steadicam", specialNeed: "steadicam operator"},
	{term: "drone", equipment: "drone", specialNeed: "drone pilot"},
	{term: "handheld", equipment: "handheld rig"},
	{term: "tracking", equipment: "tracking vehicle"},
	{term: "slow motion", equipment: "high-speed camera"},
	{term: "underwater", equipment: "underwater housing", specialNeed: "underwater camera operator", heavy: true},
}

// CameraRule covers the camera department.
//
// Involvement:
//   - Basic on every scene
//   - Moderate when one camera cue is present (crane, dolly, steadicam, drone, ...)
//   - Heavy with two or more cues, or any cue that needs a specialist rig
type CameraRule struct{}

func (CameraRule) Name() string {
	return Camera
}

func (CameraRule) Classify(scene model.SceneRecord) Classification {
	c := Classification{Level: model.InvolvementBasic}

	matched := matchKeywords(cameraKeywords, scene.TechnicalCues, scene.SpecialRequirements)
	switch {
	case len(matched) >= 2:
		c.Level = model.InvolvementHeavy
	case len(matched) == 1:
		c.Level = model.InvolvementModerate
	}
	collect(&c, matched)

	return c
}

var soundKeywords = []keyword{
	{term: "playback", equipment: "playback system"},
	{term: "music", equipment: "playback system"},
	{term: "wild track", equipment: "field recorder"},
	{term: "rain", equipment: "rain covers"},
	{term: "wind", equipment: "wind protection"},
	{term: "singing", equipment: "playback system", specialNeed: "music playback operator", heavy: true},
}

// SoundRule covers the sound department.
//
// Involvement:
//   - Basic on every scene
//   - Moderate with heavy dialogue (more than 10 lines) or one sound cue
//   - Heavy with heavy dialogue plus a sound cue, or a cue needing a specialist
//
// Heavy dialogue scenes also need radio mics for the cast.
type SoundRule struct {
	// DialogueThreshold is the line count above which dialogue is heavy (default 10)
	DialogueThreshold int
}

func (SoundRule) Name() string {
	return Sound
}

func (r SoundRule) Classify(scene model.SceneRecord) Classification {
	threshold := r.DialogueThreshold
	if threshold <= 0 {
		threshold = 10
	}

	c := Classification{Level: model.InvolvementBasic, Equipment: []string{"boom"}}

	heavyDialogue := scene.DialogueCount > threshold
	if heavyDialogue {
		c.Equipment = append(c.Equipment, "radio mics")
	}

	matched := matchKeywords(soundKeywords, scene.TechnicalCues, scene.SpecialRequirements)
	switch {
	case heavyDialogue && len(matched) > 0:
		c.Level = model.InvolvementHeavy
	case heavyDialogue || len(matched) > 0:
		c.Level = model.InvolvementModerate
	}
	collect(&c, matched)

	return c
}

var lightingKeywords = []keyword{
	{term: "lightning", equipment: "lightning strike unit"},
	{term: "practical", equipment: "practical lamps"},
	{term: "silhouette", equipment: "backlight package"},
	{term: "strobe", equipment: "strobe lights"},
}

// LightingRule covers the lighting department.
//
// Involvement:
//   - Basic on every scene
//   - Moderate for interior night scenes and for dusk or dawn
//   - Heavy for exterior night scenes, which need a generator
//
// Lighting cues add equipment and raise basic scenes to moderate.
type LightingRule struct{}

func (LightingRule) Name() string {
	return Lighting
}

func (LightingRule) Classify(scene model.SceneRecord) Classification {
	c := Classification{Level: model.InvolvementBasic}

	exterior := scene.Location.Type == model.LocationExterior
	switch scene.TimeOfDay {
	case model.TimeNight:
		if exterior {
			c.Level = model.InvolvementHeavy
			c.Equipment = append(c.Equipment, "HMI package", "generator")
			c.SpecialNeeds = append(c.SpecialNeeds, "generator operator")
		} else {
			c.Level = model.InvolvementModerate
			c.Equipment = append(c.Equipment, "tungsten package")
		}
	case model.TimeDusk, model.TimeDawn:
		c.Level = model.InvolvementModerate
		c.Equipment = append(c.Equipment, "bounce and diffusion")
	}

	matched := matchKeywords(lightingKeywords, scene.TechnicalCues, scene.SpecialRequirements)
	if len(matched) > 0 {
		c.Level = raise(c.Level, model.InvolvementModerate)
	}
	collect(&c, matched)

	return c
}

var artKeywords = []keyword{
	{term: "set dressing", equipment: "set dressing"},
	{term: "signage", equipment: "graphics and signage"},
	{term: "build", equipment: "set construction", specialNeed: "construction crew", heavy: true},
	{term: "construction", equipment: "set construction", specialNeed: "construction crew", heavy: true},
	{term: "vehicle", equipment: "picture vehicles", specialNeed: "picture vehicle coordinator"},
	{term: "animal", specialNeed: "animal wrangler"},
}

// ArtRule covers the art department (props and set dressing).
//
// Involvement:
//   - None without props or art cues
//   - Basic for one or two props, moderate for three to five, heavy above that
//   - Art cues raise the scene to at least moderate; builds are always heavy
type ArtRule struct{}

func (ArtRule) Name() string {
	return Art
}

func (ArtRule) Classify(scene model.SceneRecord) Classification {
	c := Classification{Level: model.InvolvementNone}

	switch props := len(scene.Props); {
	case props > 5:
		c.Level = model.InvolvementHeavy
	case props >= 3:
		c.Level = model.InvolvementModerate
	case props >= 1:
		c.Level = model.InvolvementBasic
	}
	for _, prop := range scene.Props {
		c.Equipment = append(c.Equipment, "prop: "+strings.ToLower(prop))
	}

	matched := matchKeywords(artKeywords, scene.TechnicalCues, scene.SpecialRequirements)
	if len(matched) > 0 {
		c.Level = raise(c.Level, model.InvolvementModerate)
	}
	collect(&c, matched)

	return c
}

var wardrobeKeywords = []keyword{
	{term: "period", equipment: "period costumes", specialNeed: "period costume specialist", heavy: true},
	{term: "costume change", equipment: "quick-change tent"},
	{term: "blood", equipment: "costume doubles"},
	{term: "wet", equipment: "costume doubles"},
	{term: "uniform", equipment: "uniforms"},
}

// WardrobeRule covers wardrobe.
//
// Involvement:
//   - None when the scene has no cast
//   - Basic with cast, moderate with wardrobe notes or more than five cast members
//   - Heavy for period costumes
type WardrobeRule struct{}

func (WardrobeRule) Name() string {
	return Wardrobe
}

func (WardrobeRule) Classify(scene model.SceneRecord) Classification {
	if len(scene.Cast) == 0 {
		return Classification{Level: model.InvolvementNone}
	}

	c := Classification{Level: model.InvolvementBasic, Equipment: []string{"costume rack"}}
	if len(scene.WardrobeNotes) > 0 || len(scene.Cast) > 5 {
		c.Level = model.InvolvementModerate
	}

	collect(&c, matchKeywords(wardrobeKeywords, scene.WardrobeNotes, scene.SpecialRequirements))

	return c
}

var specialEffectsKeywords = []keyword{
	{term: "explosion", equipment: "pyrotechnics", specialNeed: "licensed pyrotechnician", heavy: true},
	{term: "pyro", equipment: "pyrotechnics", specialNeed: "licensed pyrotechnician", heavy: true},
	{term: "squib", equipment: "squibs", specialNeed: "licensed pyrotechnician", heavy: true},
	{term: "fire", equipment: "fire bars", specialNeed: "fire safety officer"},
	{term: "stunt", specialNeed: "stunt coordinator"},
	{term: "rain", equipment: "rain tower"},
	{term: "smoke", equipment: "smoke machine"},
	{term: "wind", equipment: "wind machine"},
	{term: "snow", equipment: "snow machine"},
	{term: "blood", equipment: "blood rig"},
	{term: "breakaway", equipment: "breakaway props"},
}

// SpecialEffectsRule covers practical effects.
//
// Involvement:
//   - None without an effects cue
//   - Moderate for one cue, heavy for two or more
//   - Explosives are always heavy and need a licensed pyrotechnician
type SpecialEffectsRule struct{}

func (SpecialEffectsRule) Name() string {
	return SpecialEffects
}

func (SpecialEffectsRule) Classify(scene model.SceneRecord) Classification {
	c := Classification{Level: model.InvolvementNone}

	matched := matchKeywords(specialEffectsKeywords, scene.TechnicalCues, scene.SpecialRequirements)
	switch {
	case len(matched) >= 2:
		c.Level = model.InvolvementHeavy
	case len(matched) == 1:
		c.Level = model.InvolvementModerate
	}
	collect(&c, matched)

	return c
}
