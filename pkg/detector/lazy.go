package detector

import (
	"context"
	"fmt"
	"sync"
)

// Lazy wraps a detector so initialization happens exactly once, on first use.
// Concurrent first callers block on the same guard instead of triggering
// duplicate loads; after a successful init the wrapped detector is treated as
// an immutable singleton. A failed init is permanent for the process; the
// detector is never retried.
type Lazy struct {
	once    sync.Once
	init    func(ctx context.Context) (IDetector, error)
	inner   IDetector
	initErr error
}

// NewLazy builds a Lazy around an init function.
func NewLazy(init func(ctx context.Context) (IDetector, error)) *Lazy {
	return &Lazy{init: init}
}

// NewLazyHTTP builds a Lazy whose init creates the model-server client and
// verifies the model is loaded.
func NewLazyHTTP(cfg DetectorConfig) *Lazy {
	return NewLazy(func(ctx context.Context) (IDetector, error) {
		d, err := NewDetector(cfg)
		if err != nil {
			return nil, err
		}
		if err := d.(*detectorImpl).checkLoaded(ctx); err != nil {
			return nil, err
		}
		return d, nil
	})
}

// Predict initializes the detector if needed, then delegates.
func (l *Lazy) Predict(ctx context.Context, batch Tensor) ([]float64, error) {
	l.once.Do(func() {
		l.inner, l.initErr = l.init(ctx)
	})
	if l.initErr != nil {
		return nil, fmt.Errorf("detector initialization failed: %w", l.initErr)
	}
	return l.inner.Predict(ctx, batch)
}
