package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"detection-srv/internal/analysis"
	"detection-srv/internal/model"
	"detection-srv/internal/stats"
	statsUsecase "detection-srv/internal/stats/usecase"
	threatUsecase "detection-srv/internal/threat/usecase"
	"detection-srv/pkg/log"
)

type pipelineFixture struct {
	uc    analysis.UseCase
	det   *fakeDetector
	vis   *fakeVision
	repo  *fakeRepository
	cache *fakeCache
	audit *fakeAudit
	stats stats.UseCase
}

func newPipelineFixture(det *fakeDetector, vis *fakeVision) *pipelineFixture {
	repo := &fakeRepository{}
	cache := newFakeCache()
	auditSink := &fakeAudit{}
	statsUC := statsUsecase.New(log.NewNop())

	uc := New(
		log.NewNop(),
		Config{
			MaxFileBytes:    1 << 20,
			ImageExtensions: []string{".jpg", ".png"},
			VideoExtensions: []string{".mp4", ".webm"},
		},
		repo,
		cache,
		vis,
		det,
		threatUsecase.New(log.NewNop()),
		&fakeReasoning{},
		statsUC,
		auditSink,
	)

	return &pipelineFixture{
		uc:    uc,
		det:   det,
		vis:   vis,
		repo:  repo,
		cache: cache,
		audit: auditSink,
		stats: statsUC,
	}
}

func TestAnalyzeMedia(t *testing.T) {
	t.Run("image upload produces a full result", func(t *testing.T) {
		f := newPipelineFixture(&fakeDetector{outputs: [][]float64{{0.9}}}, &fakeVision{})

		out, err := f.uc.AnalyzeMedia(context.Background(), analysis.AnalyzeMediaInput{
			Filename: "selfie.jpg",
			Size:     4,
			Reader:   bytes.NewReader([]byte("data")),
			Context:  "kyc",
		})
		require.NoError(t, err)

		assert.Equal(t, model.LabelFake, out.Verdict.Label)
		assert.Equal(t, model.MediaTypeImage, out.Asset.MediaType)
		assert.NotEmpty(t, out.Asset.ContentHash)
		assert.NotEmpty(t, out.ArtifactHints)
		assert.NotEmpty(t, out.Threats)
		assert.Equal(t, model.ReasoningSourceFallback, out.Reasoning.Source)
		assert.Equal(t, "kyc", out.Context)

		require.Len(t, f.audit.events, 1)
		assert.Equal(t, out.Asset.ContentHash, f.audit.events[0].FileHash)
		assert.Equal(t, "kyc", f.audit.events[0].Context)
		assert.Contains(t, f.audit.events[0].AttackVectors, "kyc_bypass")

		snap := f.stats.Snapshot()
		assert.Equal(t, int64(1), snap.Total)
		assert.Equal(t, int64(1), snap.FakeCount)

		// Uploads are temp storage, removed once the pipeline is done.
		require.Len(t, f.repo.saved, 1)
		assert.Equal(t, []string{f.repo.saved[0].ObjectName}, f.repo.deleted)
	})

	t.Run("video upload samples frames through storage", func(t *testing.T) {
		det := &fakeDetector{outputs: [][]float64{{0.2}, {0.4}, {0.9}}}
		f := newPipelineFixture(det, &fakeVision{totalFrames: 3, frameCount: 3})

		out, err := f.uc.AnalyzeMedia(context.Background(), analysis.AnalyzeMediaInput{
			Filename: "clip.mp4",
			Size:     9,
			Reader:   bytes.NewReader([]byte("videodata")),
		})
		require.NoError(t, err)

		assert.InDelta(t, 0.5, out.Verdict.FakeProbability, 1e-9)
		assert.Equal(t, model.LabelFake, out.Verdict.Label)
		assert.Equal(t, 3, det.callCount())
		assert.Contains(t, out.ArtifactHints, hintVideoMotion)
	})

	t.Run("unknown extension is rejected", func(t *testing.T) {
		f := newPipelineFixture(&fakeDetector{}, &fakeVision{})

		_, err := f.uc.AnalyzeMedia(context.Background(), analysis.AnalyzeMediaInput{
			Filename: "notes.txt",
			Size:     4,
			Reader:   bytes.NewReader([]byte("data")),
		})
		assert.True(t, errors.Is(err, analysis.ErrUnsupportedMedia))
		assert.Zero(t, f.det.callCount())
	})

	t.Run("oversized upload is rejected before any detector call", func(t *testing.T) {
		f := newPipelineFixture(&fakeDetector{}, &fakeVision{})

		_, err := f.uc.AnalyzeMedia(context.Background(), analysis.AnalyzeMediaInput{
			Filename: "huge.jpg",
			Size:     2 << 20,
			Reader:   bytes.NewReader(make([]byte, 16)),
		})
		assert.True(t, errors.Is(err, analysis.ErrPayloadTooLarge))
		assert.Zero(t, f.det.callCount())
		assert.Empty(t, f.repo.saved)
	})

	t.Run("empty video is terminal", func(t *testing.T) {
		f := newPipelineFixture(&fakeDetector{}, &fakeVision{totalFrames: 0, frameCount: 0})

		_, err := f.uc.AnalyzeMedia(context.Background(), analysis.AnalyzeMediaInput{
			Filename: "broken.mp4",
			Size:     4,
			Reader:   bytes.NewReader([]byte("data")),
		})
		assert.True(t, errors.Is(err, analysis.ErrEmptyVideo))
		assert.Zero(t, f.det.callCount())
	})

	t.Run("repeat upload is served from the cache", func(t *testing.T) {
		det := &fakeDetector{outputs: [][]float64{{0.9}}}
		f := newPipelineFixture(det, &fakeVision{})

		input := func() analysis.AnalyzeMediaInput {
			return analysis.AnalyzeMediaInput{
				Filename: "selfie.jpg",
				Size:     4,
				Reader:   bytes.NewReader([]byte("data")),
				Context:  "kyc",
			}
		}

		first, err := f.uc.AnalyzeMedia(context.Background(), input())
		require.NoError(t, err)
		second, err := f.uc.AnalyzeMedia(context.Background(), input())
		require.NoError(t, err)

		assert.Equal(t, 1, det.callCount())
		assert.Equal(t, first.Verdict, second.Verdict)

		// Counters and the audit trail still see the cached analysis.
		assert.Equal(t, int64(2), f.stats.Snapshot().Total)
		assert.Len(t, f.audit.events, 2)
	})
}

func TestAnalyzeFrames(t *testing.T) {
	t.Run("frame batch is analyzed as video", func(t *testing.T) {
		det := &fakeDetector{outputs: [][]float64{{0.2}, {0.4}, {0.9}}}
		f := newPipelineFixture(det, &fakeVision{})

		out, err := f.uc.AnalyzeFrames(context.Background(), analysis.AnalyzeFramesInput{
			Frames: [][]byte{[]byte("f0"), []byte("f1"), []byte("f2")},
		})
		require.NoError(t, err)

		assert.Equal(t, model.MediaTypeVideo, out.Asset.MediaType)
		assert.InDelta(t, 0.5, out.Verdict.FakeProbability, 1e-9)
		assert.NotEmpty(t, out.Asset.ContentHash)
		assert.Equal(t, 3, det.callCount())
	})

	t.Run("batch larger than the cap is strided", func(t *testing.T) {
		outputs := make([][]float64, analysis.MaxVideoFrames)
		for i := range outputs {
			outputs[i] = []float64{0.5}
		}
		det := &fakeDetector{outputs: outputs}
		f := newPipelineFixture(det, &fakeVision{})

		frames := make([][]byte, 20)
		for i := range frames {
			frames[i] = []byte{byte(i)}
		}
		_, err := f.uc.AnalyzeFrames(context.Background(), analysis.AnalyzeFramesInput{Frames: frames})
		require.NoError(t, err)
		assert.Equal(t, analysis.MaxVideoFrames, det.callCount())
	})

	t.Run("empty batch is rejected", func(t *testing.T) {
		f := newPipelineFixture(&fakeDetector{}, &fakeVision{})

		_, err := f.uc.AnalyzeFrames(context.Background(), analysis.AnalyzeFramesInput{})
		assert.True(t, errors.Is(err, analysis.ErrEmptyVideo))
	})

	t.Run("undecodable frames are skipped until none remain", func(t *testing.T) {
		f := newPipelineFixture(&fakeDetector{}, &fakeVision{decodeErr: errDetectorDown})

		_, err := f.uc.AnalyzeFrames(context.Background(), analysis.AnalyzeFramesInput{
			Frames: [][]byte{[]byte("f0")},
		})
		assert.True(t, errors.Is(err, analysis.ErrEmptyVideo))
	})
}
