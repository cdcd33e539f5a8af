package http

import (
	"errors"

	"detection-srv/internal/analysis"
	pkgErrors "detection-srv/pkg/errors"
)

var (
	errFileRequired     = pkgErrors.NewHTTPError(400, "A media file is required")
	errFramesRequired   = pkgErrors.NewHTTPError(400, "At least one base64-encoded frame is required")
	errFrameEncoding    = pkgErrors.NewHTTPError(400, "Frames must be base64-encoded")
	errUnsupportedMedia = pkgErrors.NewHTTPError(415, "Unsupported media type")
	errPayloadTooLarge  = pkgErrors.NewHTTPError(413, "Uploaded media exceeds the size limit")
	errUndecodableMedia = pkgErrors.NewHTTPError(400, "Media could not be decoded")
	errEmptyVideo       = pkgErrors.NewHTTPError(400, "No decodable frames in video")
	errInference        = pkgErrors.NewHTTPError(500, "Detection model inference failed")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, analysis.ErrUnsupportedMedia):
		return errUnsupportedMedia
	case errors.Is(err, analysis.ErrPayloadTooLarge):
		return errPayloadTooLarge
	case errors.Is(err, analysis.ErrUndecodableMedia):
		return errUndecodableMedia
	case errors.Is(err, analysis.ErrEmptyVideo):
		return errEmptyVideo
	case errors.Is(err, analysis.ErrInference):
		return errInference
	default:
		return err
	}
}
