package usecase

import (
	"context"
	"errors"

	"detection-srv/internal/analysis"
	"detection-srv/pkg/detector"
	"detection-srv/pkg/vision"
)

// sampleVideo collects up to MaxVideoFrames evenly spaced frame tensors from
// the video at sourceURL. When the container does not declare a frame count
// the sampler reads sequentially and lets the end of stream stop it. Frame
// order is preserved.
func (uc implUseCase) sampleVideo(ctx context.Context, sourceURL string) ([]detector.Tensor, error) {
	total, err := uc.vision.ProbeVideo(ctx, sourceURL)
	if err != nil {
		uc.l.Warnf(ctx, "analysis.sampleVideo: probe failed, sampling sequentially: %v", err)
		total = 0
	}

	step := 1
	if total > 0 {
		step = total / analysis.MaxVideoFrames
		if step < 1 {
			step = 1
		}
	}

	tensors := make([]detector.Tensor, 0, analysis.MaxVideoFrames)
	for i := 0; len(tensors) < analysis.MaxVideoFrames; i++ {
		index := i * step
		if total > 0 && index >= total {
			break
		}

		t, err := uc.vision.FrameTensor(ctx, sourceURL, index)
		if err != nil {
			if !errors.Is(err, vision.ErrFrameUnavailable) {
				uc.l.Warnf(ctx, "analysis.sampleVideo: frame %d read failed: %v", index, err)
			}
			break
		}
		tensors = append(tensors, t)
	}

	if len(tensors) == 0 {
		return nil, analysis.ErrEmptyVideo
	}
	return tensors, nil
}

// sampleIndices returns the evenly spaced positions used to bound a frame
// batch at max entries, preserving order.
func sampleIndices(total, max int) []int {
	if total <= max {
		out := make([]int, total)
		for i := range out {
			out[i] = i
		}
		return out
	}

	step := total / max
	if step < 1 {
		step = 1
	}
	out := make([]int, 0, max)
	for i := 0; len(out) < max; i++ {
		index := i * step
		if index >= total {
			break
		}
		out = append(out, index)
	}
	return out
}
