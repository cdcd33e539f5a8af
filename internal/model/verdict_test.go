package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewVerdict(t *testing.T) {
	t.Run("probabilities always sum to one", func(t *testing.T) {
		for _, p := range []float64{-0.5, 0, 0.25, 0.5, 0.75, 1, 1.5} {
			v := NewVerdict(p)
			assert.InDelta(t, 1.0, v.FakeProbability+v.RealProbability, 1e-6)
			assert.GreaterOrEqual(t, v.FakeProbability, 0.0)
			assert.LessOrEqual(t, v.FakeProbability, 1.0)
		}
	})

	t.Run("label flips exactly at one half", func(t *testing.T) {
		assert.Equal(t, LabelFake, NewVerdict(0.5).Label)
		assert.Equal(t, LabelReal, NewVerdict(math.Nextafter(0.5, 0)).Label)
	})

	t.Run("confidence is the larger probability", func(t *testing.T) {
		assert.InDelta(t, 0.8, NewVerdict(0.8).Confidence, 1e-9)
		assert.InDelta(t, 0.8, NewVerdict(0.2).Confidence, 1e-9)
	})

	t.Run("out-of-range input is clamped", func(t *testing.T) {
		assert.Equal(t, 1.0, NewVerdict(7).FakeProbability)
		assert.Equal(t, 0.0, NewVerdict(-7).FakeProbability)
	})
}
