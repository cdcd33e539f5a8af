package model

// Verdict labels.
const (
	LabelFake = "fake"
	LabelReal = "real"
)

// Verdict is the fake/real classification for one analysis request.
// Invariants: FakeProbability+RealProbability == 1 (within rounding),
// Label == "fake" iff FakeProbability >= 0.5, Confidence is derived from the
// probabilities and never estimated independently.
type Verdict struct {
	Label           string
	FakeProbability float64
	RealProbability float64
	Confidence      float64
}

// NewVerdict builds a Verdict from a fake probability, clamping it into
// [0, 1] first.
func NewVerdict(fakeProbability float64) Verdict {
	p := fakeProbability
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}

	label := LabelReal
	confidence := 1 - p
	if p >= 0.5 {
		label = LabelFake
		confidence = p
	}
	return Verdict{
		Label:           label,
		FakeProbability: p,
		RealProbability: 1 - p,
		Confidence:      confidence,
	}
}
