package analysis

import (
	"errors"
)

var (
	// ErrUnsupportedMedia means the file extension is outside the allow-list.
	ErrUnsupportedMedia = errors.New("unsupported media type")
	// ErrPayloadTooLarge means the upload exceeds the configured byte ceiling.
	ErrPayloadTooLarge = errors.New("payload exceeds size limit")
	// ErrUndecodableMedia means the bytes could not be decoded into frames.
	ErrUndecodableMedia = errors.New("media could not be decoded")
	// ErrEmptyVideo means no frame of the video could be decoded. Terminal
	// for the request; no verdict is produced from zero evidence.
	ErrEmptyVideo = errors.New("no decodable frames in video")
	// ErrInference means the detector capability itself failed. Fatal, never
	// recovered by a fallback verdict.
	ErrInference = errors.New("detector inference failed")
	// ErrCacheMiss means no verdict is cached for the content hash.
	ErrCacheMiss = errors.New("verdict not cached")
)
