package redis

import (
	"time"

	"detection-srv/internal/analysis"
	"detection-srv/pkg/log"
	pkgredis "detection-srv/pkg/redis"
)

type implCacheRepository struct {
	l     log.Logger
	redis pkgredis.IRedis
	ttl   time.Duration
}

var _ analysis.Cache = &implCacheRepository{}

func New(l log.Logger, redis pkgredis.IRedis, ttl time.Duration) analysis.Cache {
	return &implCacheRepository{
		l:     l,
		redis: redis,
		ttl:   ttl,
	}
}
