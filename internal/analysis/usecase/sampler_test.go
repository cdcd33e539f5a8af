package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"detection-srv/internal/analysis"
	"detection-srv/pkg/log"
)

func TestSampleVideo(t *testing.T) {
	t.Run("evenly spaced indices from a declared frame count", func(t *testing.T) {
		v := &fakeVision{totalFrames: 32, frameCount: 32}
		uc := implUseCase{l: log.NewNop(), vision: v}

		tensors, err := uc.sampleVideo(context.Background(), "http://src")
		require.NoError(t, err)
		assert.Len(t, tensors, analysis.MaxVideoFrames)
		assert.Equal(t, []int{0, 4, 8, 12, 16, 20, 24, 28}, v.frameIndices)
	})

	t.Run("unknown total samples sequentially up to the cap", func(t *testing.T) {
		v := &fakeVision{totalFrames: 0, frameCount: 100}
		uc := implUseCase{l: log.NewNop(), vision: v}

		tensors, err := uc.sampleVideo(context.Background(), "http://src")
		require.NoError(t, err)
		assert.Len(t, tensors, analysis.MaxVideoFrames)
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, v.frameIndices)
	})

	t.Run("probe failure degrades to sequential sampling", func(t *testing.T) {
		v := &fakeVision{probeErr: errors.New("probe timeout"), frameCount: 3}
		uc := implUseCase{l: log.NewNop(), vision: v}

		tensors, err := uc.sampleVideo(context.Background(), "http://src")
		require.NoError(t, err)
		assert.Len(t, tensors, 3)
	})

	t.Run("short video yields fewer frames in order", func(t *testing.T) {
		v := &fakeVision{totalFrames: 5, frameCount: 5}
		uc := implUseCase{l: log.NewNop(), vision: v}

		tensors, err := uc.sampleVideo(context.Background(), "http://src")
		require.NoError(t, err)
		assert.Len(t, tensors, 5)
		assert.Equal(t, []int{0, 1, 2, 3, 4}, v.frameIndices)
	})

	t.Run("zero decodable frames is terminal", func(t *testing.T) {
		v := &fakeVision{totalFrames: 0, frameCount: 0}
		uc := implUseCase{l: log.NewNop(), vision: v}

		_, err := uc.sampleVideo(context.Background(), "http://src")
		assert.True(t, errors.Is(err, analysis.ErrEmptyVideo))
	})
}

func TestSampleIndices(t *testing.T) {
	t.Run("small batches keep every frame", func(t *testing.T) {
		assert.Equal(t, []int{0, 1, 2}, sampleIndices(3, 8))
	})

	t.Run("large batches are strided", func(t *testing.T) {
		assert.Equal(t, []int{0, 2, 4, 6, 8, 10, 12, 14}, sampleIndices(16, 8))
	})

	t.Run("empty input yields no indices", func(t *testing.T) {
		assert.Empty(t, sampleIndices(0, 8))
	})
}
