package redis

import (
	"moderation-srv/internal/trust/repository"
	"moderation-srv/pkg/log"
	pkgRedis "moderation-srv/pkg/redis"
)

type implRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

func New(redis pkgRedis.IRedis, l log.Logger) repository.CacheRepository {
	return &implRepository{
		redis: redis,
		l:     l,
	}
}
