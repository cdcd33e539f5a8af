package usecase

import (
	"context"
	"fmt"
	"math"

	"detection-srv/internal/analysis"
	"detection-srv/internal/model"
	"detection-srv/pkg/detector"
)

// The detector's output convention is not pinned down by the model server:
// depending on the exported head it returns one probability, one logit, or a
// per-class score vector. Single out-of-range values are treated as logits;
// vectors go through a softmax with the fake class at index 0.
const fakeClassIndex = 0

// Artifact-hint probability bands.
const (
	strongSyntheticBand = 0.85
	authenticBand       = 0.15
)

const (
	hintStrongSynthetic = "Strong generation artifacts detected; the content is very likely synthetic."
	hintAuthentic       = "Signal characteristics are consistent with authentic camera capture."
	hintMixed           = "Artifact signals are mixed or weak; the verdict carries meaningful uncertainty."
	hintVideoMotion     = "Per-frame analysis does not fully capture temporal motion consistency; subtle video manipulation may go undetected."
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func logistic(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// normalizeOutput converts one raw detector output vector into a fake
// probability in [0, 1].
func normalizeOutput(raw []float64) (float64, error) {
	switch {
	case len(raw) == 0:
		return 0, fmt.Errorf("empty detector output")
	case len(raw) == 1:
		v := raw[0]
		if v < 0 || v > 1 {
			v = logistic(v)
		}
		return clamp01(v), nil
	default:
		max := raw[0]
		for _, v := range raw[1:] {
			if v > max {
				max = v
			}
		}
		var sum float64
		exps := make([]float64, len(raw))
		for i, v := range raw {
			exps[i] = math.Exp(v - max)
			sum += exps[i]
		}
		return clamp01(exps[fakeClassIndex] / sum), nil
	}
}

// aggregate runs the detector over every tensor and combines the per-frame
// fake probabilities into one verdict. Detector failure is fatal for the
// request; there is no fallback verdict.
func (uc implUseCase) aggregate(ctx context.Context, tensors []detector.Tensor, mediaType model.MediaType) (model.Verdict, []string, error) {
	probs := make([]float64, 0, len(tensors))
	for i, t := range tensors {
		raw, err := uc.detector.Predict(ctx, t)
		if err != nil {
			return model.Verdict{}, nil, fmt.Errorf("%w: frame %d: %v", analysis.ErrInference, i, err)
		}
		p, err := normalizeOutput(raw)
		if err != nil {
			return model.Verdict{}, nil, fmt.Errorf("%w: frame %d: %v", analysis.ErrInference, i, err)
		}
		probs = append(probs, p)
	}

	var sum float64
	for _, p := range probs {
		sum += p
	}
	mean := clamp01(sum / float64(len(probs)))

	verdict := model.NewVerdict(mean)
	return verdict, artifactHints(verdict.FakeProbability, mediaType), nil
}

// artifactHints classifies the final probability into one of three fixed
// qualitative bands. Video always carries the motion caveat on top.
func artifactHints(fakeProbability float64, mediaType model.MediaType) []string {
	var hints []string
	switch {
	case fakeProbability >= strongSyntheticBand:
		hints = append(hints, hintStrongSynthetic)
	case fakeProbability <= authenticBand:
		hints = append(hints, hintAuthentic)
	default:
		hints = append(hints, hintMixed)
	}
	if mediaType == model.MediaTypeVideo {
		hints = append(hints, hintVideoMotion)
	}
	return hints
}
