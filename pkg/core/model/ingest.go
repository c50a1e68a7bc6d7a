package model

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Ingest validates a production and returns a frozen copy of it.
//
// Scenes are sorted by scene number; cue, cast and note lists are trimmed,
// de-duplicated and sorted so that later stages see sets rather than lists.
// Every problem found is reported, joined into a single error of *InputError values.
func Ingest(production Production) (Production, error) {
	var errs []error

	seen := make(map[string]bool, len(production.Scenes))
	scenes := make([]SceneRecord, 0, len(production.Scenes))
	for i, scene := range production.Scenes {
		scene.SceneNumber = strings.TrimSpace(scene.SceneNumber)
		scene.Location.Name = strings.TrimSpace(scene.Location.Name)
		scene.Location.Type = LocationType(strings.ToUpper(strings.TrimSpace(string(scene.Location.Type))))
		scene.TimeOfDay = TimeOfDay(strings.ToUpper(strings.TrimSpace(string(scene.TimeOfDay))))

		if err := validateScene(i, scene); err != nil {
			errs = append(errs, err)
			continue
		}

		if seen[scene.SceneNumber] {
			errs = append(errs, &InputError{SceneNumber: scene.SceneNumber, Field: "SceneNumber", Reason: "duplicate scene number"})
			continue
		}
		seen[scene.SceneNumber] = true

		scene.TechnicalCues = normalizeSet(scene.TechnicalCues)
		scene.Cast = normalizeSet(scene.Cast)
		scene.Props = normalizeSet(scene.Props)
		scene.WardrobeNotes = normalizeSet(scene.WardrobeNotes)
		scene.SpecialRequirements = normalizeSet(scene.SpecialRequirements)
		if scene.Eighths != nil {
			eighths := *scene.Eighths
			scene.Eighths = &eighths
		}
		scenes = append(scenes, scene)
	}

	peopleSeen := make(map[string]bool, len(production.People))
	people := make([]Person, 0, len(production.People))
	for _, person := range production.People {
		person.ID = strings.TrimSpace(person.ID)
		if err := validate.Struct(person); err != nil {
			errs = append(errs, &InputError{Field: "People", Reason: fmt.Sprintf("person %q: %v", person.ID, err)})
			continue
		}
		if peopleSeen[person.ID] {
			errs = append(errs, &InputError{Field: "People", Reason: fmt.Sprintf("duplicate person id %q", person.ID)})
			continue
		}
		peopleSeen[person.ID] = true

		person.SceneNumbers = normalizeSet(person.SceneNumbers)
		for _, sceneNumber := range person.SceneNumbers {
			if !seen[sceneNumber] {
				errs = append(errs, &InputError{
					SceneNumber: sceneNumber,
					Field:       "People",
					Reason:      fmt.Sprintf("person %q references unknown scene", person.ID),
				})
			}
		}
		people = append(people, person)
	}

	if len(errs) > 0 {
		return Production{}, errors.Join(errs...)
	}

	slices.SortFunc(scenes, func(a, b SceneRecord) int {
		return CompareSceneNumbers(a.SceneNumber, b.SceneNumber)
	})
	slices.SortFunc(people, func(a, b Person) int {
		return strings.Compare(a.ID, b.ID)
	})

	return Production{
		Title:  production.Title,
		Scenes: scenes,
		People: people,
	}, nil
}

// validateScene runs struct validation and converts failures into InputErrors
func validateScene(index int, scene SceneRecord) error {
	err := validate.Struct(scene)
	if err == nil {
		return nil
	}

	sceneNumber := scene.SceneNumber
	if sceneNumber == "" {
		sceneNumber = fmt.Sprintf("#%d", index+1)
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return &InputError{SceneNumber: sceneNumber, Field: "SceneRecord", Reason: err.Error()}
	}

	errs := make([]error, 0, len(validationErrs))
	for _, fe := range validationErrs {
		errs = append(errs, &InputError{
			SceneNumber: sceneNumber,
			Field:       strings.TrimPrefix(fe.Namespace(), "SceneRecord."),
			Reason:      describeFieldError(fe),
		})
	}
	return errors.Join(errs...)
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s], got %q", fe.Param(), fmt.Sprint(fe.Value()))
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	}
	return fmt.Sprintf("failed %q validation", fe.Tag())
}

// normalizeSet trims, de-duplicates and sorts a list of strings
func normalizeSet(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	slices.Sort(out)
	return slices.Compact(out)
}
