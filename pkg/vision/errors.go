package vision

import "errors"

// ErrFrameUnavailable means the requested frame index is past the end of the
// stream or could not be decoded. The frame sampler treats it as end of input.
var ErrFrameUnavailable = errors.New("vision: frame unavailable")

// ErrUndecodable means the media bytes could not be decoded at all.
var ErrUndecodable = errors.New("vision: media could not be decoded")
