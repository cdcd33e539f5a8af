package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"sync"

	"detection-srv/internal/analysis"
	"detection-srv/internal/model"
	"detection-srv/internal/reasoning"
	"detection-srv/pkg/detector"
	"detection-srv/pkg/vision"
)

// fakeDetector returns scripted outputs in call order.
type fakeDetector struct {
	mu      sync.Mutex
	outputs [][]float64
	err     error
	calls   int
}

func (d *fakeDetector) Predict(_ context.Context, _ detector.Tensor) ([]float64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.err != nil {
		return nil, d.err
	}
	if d.calls >= len(d.outputs) {
		return nil, fmt.Errorf("unexpected predict call %d", d.calls)
	}
	out := d.outputs[d.calls]
	d.calls++
	return out, nil
}

func (d *fakeDetector) callCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.calls
}

// fakeVision serves a fixed number of decodable frames.
type fakeVision struct {
	totalFrames  int
	probeErr     error
	frameCount   int
	frameIndices []int
	decodeErr    error
}

func (v *fakeVision) PreprocessImage(_ context.Context, raw []byte) (detector.Tensor, error) {
	if v.decodeErr != nil {
		return detector.Tensor{}, v.decodeErr
	}
	return detector.Tensor{Shape: []int{1, 2, 2, 3}, Data: make([]float32, 12)}, nil
}

func (v *fakeVision) ProbeVideo(_ context.Context, _ string) (int, error) {
	if v.probeErr != nil {
		return 0, v.probeErr
	}
	return v.totalFrames, nil
}

func (v *fakeVision) FrameTensor(_ context.Context, _ string, index int) (detector.Tensor, error) {
	if index >= v.frameCount {
		return detector.Tensor{}, vision.ErrFrameUnavailable
	}
	v.frameIndices = append(v.frameIndices, index)
	return detector.Tensor{Shape: []int{1, 2, 2, 3}, Data: make([]float32, 12)}, nil
}

var _ vision.IVision = &fakeVision{}

// fakeRepository hashes saved uploads in memory.
type fakeRepository struct {
	saved   []model.MediaAsset
	deleted []string
	saveErr error
}

func (r *fakeRepository) SaveMedia(_ context.Context, input analysis.SaveMediaInput) (model.MediaAsset, error) {
	if r.saveErr != nil {
		return model.MediaAsset{}, r.saveErr
	}
	digest := sha256.New()
	n, err := io.Copy(digest, input.Reader)
	if err != nil {
		return model.MediaAsset{}, err
	}
	asset := model.MediaAsset{
		ObjectName:  fmt.Sprintf("uploads/object-%d%s", len(r.saved), input.Extension),
		Extension:   input.Extension,
		MediaType:   input.MediaType,
		SizeBytes:   n,
		ContentHash: hex.EncodeToString(digest.Sum(nil)),
	}
	r.saved = append(r.saved, asset)
	return asset, nil
}

func (r *fakeRepository) PresignedGetURL(_ context.Context, objectName string) (string, error) {
	return "http://storage.local/" + objectName, nil
}

func (r *fakeRepository) DeleteMedia(_ context.Context, objectName string) error {
	r.deleted = append(r.deleted, objectName)
	return nil
}

// fakeCache is an in-memory analysis.Cache.
type fakeCache struct {
	entries map[string]analysis.Output
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]analysis.Output{}}
}

func (c *fakeCache) GetOutput(_ context.Context, key string) (analysis.Output, error) {
	out, ok := c.entries[key]
	if !ok {
		return analysis.Output{}, analysis.ErrCacheMiss
	}
	return out, nil
}

func (c *fakeCache) SetOutput(_ context.Context, key string, out analysis.Output) error {
	c.entries[key] = out
	return nil
}

// fakeReasoning tags every explanation as fallback without any I/O.
type fakeReasoning struct {
	inputs []reasoning.ExplainInput
}

func (r *fakeReasoning) Explain(_ context.Context, input reasoning.ExplainInput) model.ReasoningResult {
	r.inputs = append(r.inputs, input)
	return model.ReasoningResult{
		FinalVerdict: input.Verdict.Label,
		RiskLevel:    model.RiskLevelMedium,
		ScoreSummary: "stubbed",
		Source:       model.ReasoningSourceFallback,
	}
}

// fakeAudit collects emitted events.
type fakeAudit struct {
	mu     sync.Mutex
	events []model.AuditEvent
	err    error
}

func (a *fakeAudit) Log(_ context.Context, event model.AuditEvent) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.err != nil {
		return a.err
	}
	a.events = append(a.events, event)
	return nil
}

func (a *fakeAudit) Close() error { return nil }

var errDetectorDown = errors.New("model server unreachable")
