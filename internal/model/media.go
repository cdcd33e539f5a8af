package model

// MediaType classifies an upload by its extension. Content sniffing is never
// used; the extension partition in the config is the single source of truth.
type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

// MediaAsset describes one persisted upload. Immutable after ingest; owned
// exclusively by the request that created it.
type MediaAsset struct {
	ObjectName  string
	Extension   string
	MediaType   MediaType
	SizeBytes   int64
	ContentHash string
}
