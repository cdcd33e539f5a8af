package analysis

import (
	"io"

	"detection-srv/internal/model"
)

// MaxVideoFrames caps how many frames are sampled from one video to bound
// inference cost.
const MaxVideoFrames = 8

// AnalyzeMediaInput is one uploaded file plus its deployment context tag.
// Size must reflect the full upload so the ceiling is enforced before any
// byte is read.
type AnalyzeMediaInput struct {
	Filename string
	Size     int64
	Reader   io.Reader
	Context  string
}

// AnalyzeFramesInput is a browser-captured frame batch, already base64
// decoded by the transport layer.
type AnalyzeFramesInput struct {
	Frames  [][]byte
	Context string
}

// Output is the complete result of one analysis. Context echoes the submitted
// deployment context tag.
type Output struct {
	Asset         model.MediaAsset      `json:"asset"`
	Verdict       model.Verdict         `json:"verdict"`
	ArtifactHints []string              `json:"artifact_hints"`
	Threats       []model.ThreatEntry   `json:"threats"`
	Reasoning     model.ReasoningResult `json:"reasoning"`
	Context       string                `json:"context"`
}

// SaveMediaInput is what the storage repository needs to persist one upload.
type SaveMediaInput struct {
	Reader    io.Reader
	Size      int64
	Extension string
	MediaType model.MediaType
}
