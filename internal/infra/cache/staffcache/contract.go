package staffcache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-SalonConsole/internal/domain"
)

// RedisClient подмножество команд redis, используемых кешем
// Реализуется *redis.Client
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RosterSource источник состава сотрудников (репозиторий)
type RosterSource interface {
	GetRoster(ctx context.Context, companyID int64) ([]*domain.StaffMember, error)
}

// CacheMetrics счетчик обращений к кешу
type CacheMetrics interface {
	ObserveCache(cache, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
