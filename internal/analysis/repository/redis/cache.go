package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"detection-srv/internal/analysis"
	pkgredis "detection-srv/pkg/redis"
)

func (r implCacheRepository) GetOutput(ctx context.Context, key string) (analysis.Output, error) {
	data, err := r.redis.Get(ctx, key)
	if err != nil {
		if pkgredis.IsNotFound(err) {
			return analysis.Output{}, analysis.ErrCacheMiss
		}
		return analysis.Output{}, err
	}

	var out analysis.Output
	if err := json.Unmarshal([]byte(data), &out); err != nil {
		r.l.Errorf(ctx, "analysis.repository.redis.GetOutput: Failed to unmarshal cached output: %v", err)
		return analysis.Output{}, fmt.Errorf("%w: corrupt cache entry", analysis.ErrCacheMiss)
	}
	return out, nil
}

func (r implCacheRepository) SetOutput(ctx context.Context, key string, out analysis.Output) error {
	data, err := json.Marshal(out)
	if err != nil {
		return err
	}
	if err := r.redis.Set(ctx, key, data, r.ttl); err != nil {
		r.l.Errorf(ctx, "analysis.repository.redis.SetOutput: Failed to save to cache: %v", err)
		return err
	}
	return nil
}
