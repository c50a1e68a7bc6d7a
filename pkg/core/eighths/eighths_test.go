package eighths

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varunisrani/thinkaiback-sub000/pkg/core/model"
)

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func TestScoreComplexity_Scenario(t *testing.T) {
	scene := model.SceneRecord{
		SceneNumber:   "1",
		Location:      model.Location{Name: "OFFICE", Type: model.LocationInterior},
		TimeOfDay:     model.TimeDay,
		Description:   words(500),
		TechnicalCues: []string{"dolly", "crane"},
		Cast:          []string{"anna", "ben"},
		DialogueCount: 5,
	}

	complexity := ScoreComplexity(scene, DefaultComplexityWeights())
	assert.InDelta(t, 1.2, complexity.Total, 1e-9)
	assert.InDelta(t, 0.2, complexity.Technical, 1e-9)
	assert.Equal(t, 0.0, complexity.Exterior)
	assert.Equal(t, 0.0, complexity.TimeOfDay)
	assert.Equal(t, 0.0, complexity.Cast)
	assert.Equal(t, 0.0, complexity.Dialogue)

	result := CalculateEighths(scene, complexity, DefaultTimingConstants())
	assert.Equal(t, 500, result.WordCount)
	assert.InDelta(t, 2.0, result.PageCount, 1e-9)
	assert.InDelta(t, 16.0, result.BaseEighths, 1e-9)
	assert.InDelta(t, 19.2, result.AdjustedEighths, 1e-9)
	assert.InDelta(t, 2.88, result.ShootHours, 1e-9)
	assert.InDelta(t, 0.864, result.SetupHours, 1e-9)
	assert.InDelta(t, 0.576, result.WrapHours, 1e-9)
	assert.InDelta(t, 4.32, result.TotalHours, 1e-9)
}

func TestScoreComplexity_Factors(t *testing.T) {
	tests := []struct {
		name     string
		scene    model.SceneRecord
		expected float64
	}{
		{
			name:     "plain interior day",
			scene:    model.SceneRecord{Location: model.Location{Type: model.LocationInterior}, TimeOfDay: model.TimeDay},
			expected: 1.0,
		},
		{
			name:     "exterior night",
			scene:    model.SceneRecord{Location: model.Location{Type: model.LocationExterior}, TimeOfDay: model.TimeNight},
			expected: 1.5,
		},
		{
			name:     "dusk",
			scene:    model.SceneRecord{Location: model.Location{Type: model.LocationInterior}, TimeOfDay: model.TimeDusk},
			expected: 1.2,
		},
		{
			name:     "dawn",
			scene:    model.SceneRecord{Location: model.Location{Type: model.LocationInterior}, TimeOfDay: model.TimeDawn},
			expected: 1.2,
		},
		{
			name: "large cast",
			scene: model.SceneRecord{
				Location:  model.Location{Type: model.LocationInterior},
				TimeOfDay: model.TimeDay,
				Cast:      []string{"a", "b", "c", "d", "e"},
			},
			expected: 1.2,
		},
		{
			name: "dialogue at threshold",
			scene: model.SceneRecord{
				Location:      model.Location{Type: model.LocationInterior},
				TimeOfDay:     model.TimeDay,
				DialogueCount: 10,
			},
			expected: 1.0,
		},
		{
			name: "dialogue above threshold",
			scene: model.SceneRecord{
				Location:      model.Location{Type: model.LocationInterior},
				TimeOfDay:     model.TimeDay,
				DialogueCount: 11,
			},
			expected: 1.1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ScoreComplexity(tt.scene, DefaultComplexityWeights())
			assert.InDelta(t, tt.expected, result.Total, 1e-9)
		})
	}
}

func TestScoreComplexity_CappedAtMax(t *testing.T) {
	cues := make([]string, 40)
	for i := range cues {
		cues[i] = fmt.Sprintf("cue-%d", i)
	}
	scene := model.SceneRecord{
		Location:      model.Location{Type: model.LocationExterior},
		TimeOfDay:     model.TimeNight,
		TechnicalCues: cues,
		DialogueCount: 50,
	}

	result := ScoreComplexity(scene, DefaultComplexityWeights())
	assert.Equal(t, 3.0, result.Total)
	assert.InDelta(t, 4.0, result.Technical, 1e-9, "uncapped factors are still reported")
}

func TestCalculateEighths_EmptyDescriptionFloors(t *testing.T) {
	scene := model.SceneRecord{SceneNumber: "9"}
	complexity := model.ComplexityResult{Total: 1.0}

	result := CalculateEighths(scene, complexity, DefaultTimingConstants())
	assert.Equal(t, 0, result.WordCount)
	assert.Equal(t, 0.125, result.PageCount)
	assert.Equal(t, 1.0, result.BaseEighths)
}

func TestCalculateEighths_Override(t *testing.T) {
	override := 12.0
	scene := model.SceneRecord{SceneNumber: "3", Description: words(1000), Eighths: &override}

	result := CalculateEighths(scene, model.ComplexityResult{Total: 1.5}, DefaultTimingConstants())
	assert.Equal(t, 0, result.WordCount, "override skips word counting")
	assert.InDelta(t, 1.5, result.PageCount, 1e-9)
	assert.InDelta(t, 12.0, result.BaseEighths, 1e-9)
	assert.InDelta(t, 18.0, result.AdjustedEighths, 1e-9)
}

func TestCalculateEighths_NoCapForLongScenes(t *testing.T) {
	scene := model.SceneRecord{Description: words(5000)}

	result := CalculateEighths(scene, model.ComplexityResult{Total: 1.0}, DefaultTimingConstants())
	assert.InDelta(t, 20.0, result.PageCount, 1e-9)
	assert.InDelta(t, 160.0, result.BaseEighths, 1e-9)
}

func TestCalculateEighths_Invariants(t *testing.T) {
	weights := DefaultComplexityWeights()
	timing := DefaultTimingConstants()

	for n := 0; n < 60; n++ {
		scene := model.SceneRecord{
			SceneNumber:   fmt.Sprint(n),
			Location:      model.Location{Type: []model.LocationType{model.LocationInterior, model.LocationExterior}[n%2]},
			TimeOfDay:     []model.TimeOfDay{model.TimeDay, model.TimeNight, model.TimeDusk, model.TimeDawn}[n%4],
			Description:   words(n * 37),
			TechnicalCues: make([]string, n%25),
			Cast:          make([]string, n%9),
			DialogueCount: n % 17,
		}
		complexity := ScoreComplexity(scene, weights)
		result := CalculateEighths(scene, complexity, timing)

		assert.LessOrEqual(t, complexity.Total, 3.0)
		assert.GreaterOrEqual(t, complexity.Total, 1.0)
		assert.GreaterOrEqual(t, result.PageCount, 0.125)
		assert.GreaterOrEqual(t, result.AdjustedEighths, result.BaseEighths)
	}
}

func TestFormatEighths(t *testing.T) {
	tests := []struct {
		eighths  float64
		expected string
	}{
		{0, "0"},
		{1, "1/8"},
		{5, "5/8"},
		{8, "1"},
		{19.2, "2 3/8"},
		{16, "2"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatEighths(tt.eighths))
		})
	}
}

func TestNewEstimator_RejectsInvalidConstants(t *testing.T) {
	weights := DefaultComplexityWeights()
	weights.Base = 0.5
	_, err := NewEstimator(weights, DefaultTimingConstants(), 1)
	var cfgErr *model.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "complexity.base", cfgErr.Field)

	timing := DefaultTimingConstants()
	timing.WordsPerPage = 0
	_, err = NewEstimator(DefaultComplexityWeights(), timing, 1)
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "timing.wordsPerPage", cfgErr.Field)
}

func TestEstimator_EstimateAll_KeepsOrder(t *testing.T) {
	estimator, err := NewEstimator(DefaultComplexityWeights(), DefaultTimingConstants(), 4)
	require.NoError(t, err)

	scenes := make([]model.SceneRecord, 25)
	for i := range scenes {
		scenes[i] = model.SceneRecord{
			SceneNumber: fmt.Sprint(i + 1),
			Location:    model.Location{Name: "HOUSE", Type: model.LocationInterior},
			TimeOfDay:   model.TimeDay,
			Description: words(i * 10),
		}
	}

	estimates, err := estimator.EstimateAll(context.Background(), scenes)
	require.NoError(t, err)
	require.Len(t, estimates, len(scenes))
	for i, estimate := range estimates {
		assert.Equal(t, scenes[i].SceneNumber, estimate.Scene.SceneNumber)
		assert.Equal(t, scenes[i].SceneNumber, estimate.Eighths.SceneNumber)
		assert.Equal(t, i*10, estimate.Eighths.WordCount)
	}
}

func TestEstimator_EstimateAll_Cancelled(t *testing.T) {
	estimator, err := NewEstimator(DefaultComplexityWeights(), DefaultTimingConstants(), 2)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = estimator.EstimateAll(ctx, []model.SceneRecord{{SceneNumber: "1"}})
	assert.ErrorIs(t, err, context.Canceled)
}
