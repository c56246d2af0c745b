package staffcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-SalonConsole/internal/domain"
)

const (
	cacheName     = "staff_roster"
	defaultPrefix = "console:roster"
	defaultTTL    = 5 * time.Minute
)

// Cache read-through кеш состава сотрудников компании
// Ошибки redis не прерывают запрос: данные берутся из источника
type Cache struct {
	rdb     RedisClient
	source  RosterSource
	ttl     time.Duration
	prefix  string
	metrics CacheMetrics
	log     Logger
}

// New создает кеш поверх источника
func New(rdb RedisClient, source RosterSource, ttl time.Duration, prefix string, metrics CacheMetrics, log Logger) *Cache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &Cache{
		rdb:     rdb,
		source:  source,
		ttl:     ttl,
		prefix:  prefix,
		metrics: metrics,
		log:     log,
	}
}

// GetRoster возвращает состав сотрудников компании из кеша или источника
func (c *Cache) GetRoster(ctx context.Context, companyID int64) ([]*domain.StaffMember, error) {
	key := c.key(companyID)

	data, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var roster []*domain.StaffMember
		if err := json.Unmarshal(data, &roster); err == nil {
			c.observe("hit")
			return roster, nil
		}
		c.log.Warn("staffcache: corrupted entry %s, reloading", key)
	case errors.Is(err, redis.Nil):
		c.observe("miss")
	default:
		c.observe("error")
		c.log.Warn("staffcache: get %s: %v", key, err)
	}

	roster, err := c.source.GetRoster(ctx, companyID)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, roster)

	return roster, nil
}

// Invalidate удаляет состав компании из кеша
func (c *Cache) Invalidate(ctx context.Context, companyID int64) error {
	if err := c.rdb.Del(ctx, c.key(companyID)).Err(); err != nil {
		return fmt.Errorf("%w: company_id=%d: %v", ErrInvalidate, companyID, err)
	}
	return nil
}

func (c *Cache) store(ctx context.Context, key string, roster []*domain.StaffMember) {
	data, err := json.Marshal(roster)
	if err != nil {
		c.log.Error("staffcache: marshal roster %s: %v", key, err)
		return
	}
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.Warn("staffcache: set %s: %v", key, err)
	}
}

func (c *Cache) key(companyID int64) string {
	return fmt.Sprintf("%s:%d", c.prefix, companyID)
}

func (c *Cache) observe(result string) {
	if c.metrics != nil {
		c.metrics.ObserveCache(cacheName, result)
	}
}
