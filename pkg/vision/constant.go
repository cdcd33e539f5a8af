package vision

import "time"

// DefaultTimeout bounds a single sidecar call. Video frame extraction can be
// slow on large files, hence the generous bound.
const DefaultTimeout = 60 * time.Second
