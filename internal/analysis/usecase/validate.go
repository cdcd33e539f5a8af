package usecase

import (
	"fmt"
	"path/filepath"
	"strings"

	"detection-srv/internal/analysis"
	"detection-srv/internal/model"
)

// validate checks the extension allow-list and the byte ceiling. Media type
// comes from the extension alone, never from content sniffing.
func (uc implUseCase) validate(filename string, size int64) (string, model.MediaType, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	mediaType, ok := uc.mediaTypes[ext]
	if !ok {
		return "", "", fmt.Errorf("%w: %q", analysis.ErrUnsupportedMedia, ext)
	}

	if size > uc.maxFileBytes {
		return "", "", fmt.Errorf("%w: got %d bytes, limit %d", analysis.ErrPayloadTooLarge, size, uc.maxFileBytes)
	}

	return ext, mediaType, nil
}
