package eighths

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/varunisrani/thinkaiback-sub000/pkg/core/model"
)

// Estimator scores and times scenes with a fixed set of constants
type Estimator struct {
	weights ComplexityWeights
	timing  TimingConstants
	workers int
}

// NewEstimator validates the constants and returns an Estimator.
// workers bounds the number of scenes scored concurrently (minimum 1).
func NewEstimator(weights ComplexityWeights, timing TimingConstants, workers int) (*Estimator, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	if err := timing.Validate(); err != nil {
		return nil, err
	}
	return &Estimator{
		weights: weights,
		timing:  timing,
		workers: max(workers, 1),
	}, nil
}

// Estimate scores a single scene
func (e *Estimator) Estimate(scene model.SceneRecord) model.SceneEstimate {
	complexity := ScoreComplexity(scene, e.weights)
	return model.SceneEstimate{
		Scene:      scene,
		Complexity: complexity,
		Eighths:    CalculateEighths(scene, complexity, e.timing),
	}
}

// EstimateAll scores every scene concurrently. Each worker writes only its own
// slot, so the result keeps the order of the input scenes.
func (e *Estimator) EstimateAll(ctx context.Context, scenes []model.SceneRecord) ([]model.SceneEstimate, error) {
	estimates := make([]model.SceneEstimate, len(scenes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for i, scene := range scenes {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			estimates[i] = e.Estimate(scene)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return estimates, nil
}
