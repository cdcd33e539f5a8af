package usecase

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"time"

	"detection-srv/internal/analysis"
	"detection-srv/internal/model"
	"detection-srv/internal/reasoning"
	"detection-srv/pkg/detector"
)

// AnalyzeMedia runs validate, persist, sample, aggregate, map, explain,
// record, log over one uploaded file. Validation happens before any byte is
// read or any detector call is made.
func (uc *implUseCase) AnalyzeMedia(ctx context.Context, input analysis.AnalyzeMediaInput) (analysis.Output, error) {
	ext, mediaType, err := uc.validate(input.Filename, input.Size)
	if err != nil {
		return analysis.Output{}, err
	}

	var (
		asset   model.MediaAsset
		tensors []detector.Tensor
	)

	switch mediaType {
	case model.MediaTypeImage:
		raw, err := io.ReadAll(io.LimitReader(input.Reader, uc.maxFileBytes+1))
		if err != nil {
			return analysis.Output{}, fmt.Errorf("read upload: %w", err)
		}
		if int64(len(raw)) > uc.maxFileBytes {
			return analysis.Output{}, fmt.Errorf("%w: got more than %d bytes", analysis.ErrPayloadTooLarge, uc.maxFileBytes)
		}

		asset, err = uc.repo.SaveMedia(ctx, analysis.SaveMediaInput{
			Reader:    bytes.NewReader(raw),
			Size:      int64(len(raw)),
			Extension: ext,
			MediaType: mediaType,
		})
		if err != nil {
			return analysis.Output{}, err
		}
		defer uc.cleanupAsset(ctx, asset)

		if out, ok := uc.cachedOutput(ctx, asset.ContentHash, input.Context); ok {
			return uc.finish(ctx, out, input.Context), nil
		}

		t, err := uc.vision.PreprocessImage(ctx, raw)
		if err != nil {
			return analysis.Output{}, fmt.Errorf("%w: %v", analysis.ErrUndecodableMedia, err)
		}
		tensors = []detector.Tensor{t}

	case model.MediaTypeVideo:
		asset, err = uc.repo.SaveMedia(ctx, analysis.SaveMediaInput{
			Reader:    input.Reader,
			Size:      input.Size,
			Extension: ext,
			MediaType: mediaType,
		})
		if err != nil {
			return analysis.Output{}, err
		}
		defer uc.cleanupAsset(ctx, asset)

		if out, ok := uc.cachedOutput(ctx, asset.ContentHash, input.Context); ok {
			return uc.finish(ctx, out, input.Context), nil
		}

		sourceURL, err := uc.repo.PresignedGetURL(ctx, asset.ObjectName)
		if err != nil {
			return analysis.Output{}, err
		}
		tensors, err = uc.sampleVideo(ctx, sourceURL)
		if err != nil {
			return analysis.Output{}, err
		}
	}

	verdict, hints, err := uc.aggregate(ctx, tensors, mediaType)
	if err != nil {
		return analysis.Output{}, err
	}

	out := uc.finish(ctx, analysis.Output{
		Asset:         asset,
		Verdict:       verdict,
		ArtifactHints: hints,
	}, input.Context)
	uc.storeOutput(ctx, asset.ContentHash, input.Context, out)
	return out, nil
}

// AnalyzeFrames runs the pipeline over a captured frame batch. The batch is
// bounded the same way video sampling is; frames that fail to decode are
// skipped, and a batch with zero usable frames is rejected.
func (uc *implUseCase) AnalyzeFrames(ctx context.Context, input analysis.AnalyzeFramesInput) (analysis.Output, error) {
	if len(input.Frames) == 0 {
		return analysis.Output{}, analysis.ErrEmptyVideo
	}

	digest := sha256.New()
	var totalBytes int64
	for _, frame := range input.Frames {
		digest.Write(frame)
		totalBytes += int64(len(frame))
	}
	if totalBytes > uc.maxFileBytes {
		return analysis.Output{}, fmt.Errorf("%w: got %d bytes, limit %d", analysis.ErrPayloadTooLarge, totalBytes, uc.maxFileBytes)
	}

	asset := model.MediaAsset{
		MediaType:   model.MediaTypeVideo,
		SizeBytes:   totalBytes,
		ContentHash: hex.EncodeToString(digest.Sum(nil)),
	}

	if out, ok := uc.cachedOutput(ctx, asset.ContentHash, input.Context); ok {
		return uc.finish(ctx, out, input.Context), nil
	}

	tensors := make([]detector.Tensor, 0, analysis.MaxVideoFrames)
	for _, index := range sampleIndices(len(input.Frames), analysis.MaxVideoFrames) {
		t, err := uc.vision.PreprocessImage(ctx, input.Frames[index])
		if err != nil {
			uc.l.Warnf(ctx, "analysis.AnalyzeFrames: frame %d skipped: %v", index, err)
			continue
		}
		tensors = append(tensors, t)
	}
	if len(tensors) == 0 {
		return analysis.Output{}, analysis.ErrEmptyVideo
	}

	verdict, hints, err := uc.aggregate(ctx, tensors, model.MediaTypeVideo)
	if err != nil {
		return analysis.Output{}, err
	}

	out := uc.finish(ctx, analysis.Output{
		Asset:         asset,
		Verdict:       verdict,
		ArtifactHints: hints,
	}, input.Context)
	uc.storeOutput(ctx, asset.ContentHash, input.Context, out)
	return out, nil
}

// finish completes an analysis: threat mapping, reasoning, stats and audit.
// It is also the path for cache hits, so counters and the audit trail see
// every analysis. A partial Output (no threats or reasoning yet) gets them
// filled in; a cached one keeps what it has.
func (uc *implUseCase) finish(ctx context.Context, out analysis.Output, analysisContext string) analysis.Output {
	out.Context = analysisContext
	if out.Threats == nil {
		out.Threats = uc.threatUC.Map(out.Verdict.Label, analysisContext)
	}
	if out.Reasoning.Source == "" {
		out.Reasoning = uc.reasoningUC.Explain(ctx, reasoning.ExplainInput{
			Verdict:       out.Verdict,
			MediaType:     out.Asset.MediaType,
			Threats:       out.Threats,
			ArtifactHints: out.ArtifactHints,
			Context:       analysisContext,
		})
	}

	uc.statsUC.Record(out.Verdict.Label)

	vectors := make([]string, 0, len(out.Threats))
	for _, t := range out.Threats {
		vectors = append(vectors, t.ID)
	}
	event := model.AuditEvent{
		Timestamp:     time.Now().UTC(),
		FileHash:      out.Asset.ContentHash,
		Label:         out.Verdict.Label,
		Confidence:    out.Verdict.Confidence,
		Context:       analysisContext,
		AttackVectors: vectors,
	}
	if err := uc.auditUC.Log(ctx, event); err != nil {
		uc.l.Errorf(ctx, "analysis.finish: audit log failed: %v", err)
	}

	return out
}

func (uc *implUseCase) cachedOutput(ctx context.Context, contentHash, analysisContext string) (analysis.Output, bool) {
	if uc.cache == nil {
		return analysis.Output{}, false
	}
	out, err := uc.cache.GetOutput(ctx, cacheKey(contentHash, analysisContext))
	if err != nil {
		if !errors.Is(err, analysis.ErrCacheMiss) {
			uc.l.Warnf(ctx, "analysis.cachedOutput: cache read failed: %v", err)
		}
		return analysis.Output{}, false
	}
	return out, true
}

func (uc *implUseCase) storeOutput(ctx context.Context, contentHash, analysisContext string, out analysis.Output) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.SetOutput(ctx, cacheKey(contentHash, analysisContext), out); err != nil {
		uc.l.Warnf(ctx, "analysis.storeOutput: cache write failed: %v", err)
	}
}

func cacheKey(contentHash, analysisContext string) string {
	return fmt.Sprintf("analysis:output:%s:%s", contentHash, analysisContext)
}

func (uc *implUseCase) cleanupAsset(ctx context.Context, asset model.MediaAsset) {
	if asset.ObjectName == "" {
		return
	}
	if err := uc.repo.DeleteMedia(ctx, asset.ObjectName); err != nil {
		uc.l.Warnf(ctx, "analysis.cleanupAsset: delete %s failed: %v", asset.ObjectName, err)
	}
}
