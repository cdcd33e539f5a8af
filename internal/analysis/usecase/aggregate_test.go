package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"detection-srv/internal/analysis"
	"detection-srv/internal/model"
	"detection-srv/pkg/detector"
	"detection-srv/pkg/log"
)

func batchOf(n int) []detector.Tensor {
	tensors := make([]detector.Tensor, n)
	for i := range tensors {
		tensors[i] = detector.Tensor{Shape: []int{1, 2, 2, 3}, Data: make([]float32, 12)}
	}
	return tensors
}

func TestNormalizeOutput(t *testing.T) {
	t.Run("single in-range value used directly", func(t *testing.T) {
		p, err := normalizeOutput([]float64{0.42})
		require.NoError(t, err)
		assert.InDelta(t, 0.42, p, 1e-9)
	})

	t.Run("single out-of-range value is squashed", func(t *testing.T) {
		p, err := normalizeOutput([]float64{2.0})
		require.NoError(t, err)
		assert.InDelta(t, 0.8808, p, 1e-3)
	})

	t.Run("negative logit is squashed below half", func(t *testing.T) {
		p, err := normalizeOutput([]float64{-2.0})
		require.NoError(t, err)
		assert.InDelta(t, 0.1192, p, 1e-3)
	})

	t.Run("vector goes through softmax with fake class first", func(t *testing.T) {
		p, err := normalizeOutput([]float64{2.0, 1.0})
		require.NoError(t, err)
		want := math.Exp(2.0) / (math.Exp(2.0) + math.Exp(1.0))
		assert.InDelta(t, want, p, 1e-9)
	})

	t.Run("softmax is stable for large scores", func(t *testing.T) {
		p, err := normalizeOutput([]float64{1000, 999})
		require.NoError(t, err)
		assert.False(t, math.IsNaN(p))
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
	})

	t.Run("empty output is an error", func(t *testing.T) {
		_, err := normalizeOutput(nil)
		require.Error(t, err)
	})
}

func TestAggregate(t *testing.T) {
	t.Run("multi-frame mean lands on the fake side", func(t *testing.T) {
		det := &fakeDetector{outputs: [][]float64{{0.2}, {0.4}, {0.9}}}
		uc := implUseCase{l: log.NewNop(), detector: det}

		verdict, hints, err := uc.aggregate(context.Background(), batchOf(3), model.MediaTypeVideo)
		require.NoError(t, err)
		assert.InDelta(t, 0.5, verdict.FakeProbability, 1e-9)
		assert.Equal(t, model.LabelFake, verdict.Label)
		assert.InDelta(t, 1.0, verdict.FakeProbability+verdict.RealProbability, 1e-6)
		assert.Len(t, hints, 2)
	})

	t.Run("confidence is the larger probability", func(t *testing.T) {
		det := &fakeDetector{outputs: [][]float64{{0.1}}}
		uc := implUseCase{l: log.NewNop(), detector: det}

		verdict, _, err := uc.aggregate(context.Background(), batchOf(1), model.MediaTypeImage)
		require.NoError(t, err)
		assert.Equal(t, model.LabelReal, verdict.Label)
		assert.InDelta(t, 0.9, verdict.Confidence, 1e-9)
	})

	t.Run("detector failure is fatal", func(t *testing.T) {
		det := &fakeDetector{err: errDetectorDown}
		uc := implUseCase{l: log.NewNop(), detector: det}

		_, _, err := uc.aggregate(context.Background(), batchOf(1), model.MediaTypeImage)
		require.Error(t, err)
		assert.True(t, errors.Is(err, analysis.ErrInference))
	})
}

func TestArtifactHints(t *testing.T) {
	t.Run("high probability hints synthetic", func(t *testing.T) {
		hints := artifactHints(0.9, model.MediaTypeImage)
		require.Len(t, hints, 1)
		assert.Equal(t, hintStrongSynthetic, hints[0])
	})

	t.Run("low probability hints authentic", func(t *testing.T) {
		hints := artifactHints(0.1, model.MediaTypeImage)
		require.Len(t, hints, 1)
		assert.Equal(t, hintAuthentic, hints[0])
	})

	t.Run("middle band hints uncertainty", func(t *testing.T) {
		hints := artifactHints(0.5, model.MediaTypeImage)
		require.Len(t, hints, 1)
		assert.Equal(t, hintMixed, hints[0])
	})

	t.Run("video always carries the motion caveat", func(t *testing.T) {
		for _, p := range []float64{0.05, 0.5, 0.95} {
			hints := artifactHints(p, model.MediaTypeVideo)
			require.Len(t, hints, 2)
			assert.Equal(t, hintVideoMotion, hints[1])
		}
	})
}
