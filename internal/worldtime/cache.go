package worldtime

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-redis/redis/v8"
	"github.com/limbo/timetrack/pkg/cleanup"
	"github.com/limbo/timetrack/pkg/entity"
	"github.com/limbo/timetrack/pkg/metrics"
)

const cacheKey = "timetrack:world-time"

var ErrCacheMiss = errors.New("cache miss")

type Cache interface {
	// Returns ErrCacheMiss when key is absent
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

type Source interface {
	Now(ctx context.Context) (*entity.WorldTime, error)
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// ConnectRedis opens a client, checks it with PING and registers its closing as a cleanup job.
func ConnectRedis(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, errors.New("pinging redis error: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing redis client",
		F:    client.Close,
	})
	return client, nil
}

type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (rc *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := rc.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}
	return data, nil
}

func (rc *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return rc.client.Set(ctx, key, value, ttl).Err()
}

// datetimeLayout matches the upstream datetime field, offset always numeric.
const datetimeLayout = "2006-01-02T15:04:05.000000-07:00"

// cachedTime is the cache entry. The zone fields are served as stored while the
// datetime is moved forward by the time passed since FetchedAt.
type cachedTime struct {
	Timezone  string    `json:"timezone"`
	UTCOffset string    `json:"utc_offset"`
	Datetime  string    `json:"datetime"`
	FetchedAt time.Time `json:"fetched_at"`
}

// CachedClient keeps the upstream zone answer in cache for up to ttl and
// rebuilds the current datetime from it on every hit.
// Cache failures are logged and fall through to the source.
type CachedClient struct {
	source Source
	cache  Cache
	ttl    time.Duration
	now    func() time.Time
}

func NewCachedClient(source Source, cache Cache, ttl time.Duration) *CachedClient {
	return &CachedClient{
		source: source,
		cache:  cache,
		ttl:    ttl,
		now:    time.Now,
	}
}

// WithClock replaces the clock used to age cached entries.
func (cc *CachedClient) WithClock(now func() time.Time) *CachedClient {
	cc.now = now
	return cc
}

func (cc *CachedClient) Now(ctx context.Context) (*entity.WorldTime, error) {
	data, err := cc.cache.Get(ctx, cacheKey)
	switch {
	case err == nil:
		var wt *entity.WorldTime
		if wt, err = cc.fromCache(data); err == nil {
			metrics.WorldTimeCacheLookups.WithLabelValues("hit").Inc()
			return wt, nil
		}
		slog.Warn("corrupted world time cache entry", slog.String("error", err.Error()))
	case !errors.Is(err, ErrCacheMiss):
		slog.Warn("world time cache read error", slog.String("error", err.Error()))
	}
	metrics.WorldTimeCacheLookups.WithLabelValues("miss").Inc()

	fetchedAt := cc.now()
	wt, err := cc.source.Now(ctx)
	if err != nil {
		return nil, err
	}
	entry := cachedTime{
		Timezone:  wt.Timezone,
		UTCOffset: wt.UTCOffset,
		Datetime:  wt.Datetime,
		FetchedAt: fetchedAt,
	}
	if data, err = sonic.Marshal(&entry); err == nil {
		err = cc.cache.Set(ctx, cacheKey, data, cc.ttl)
	}
	if err != nil {
		slog.Warn("world time cache write error", slog.String("error", err.Error()))
	}
	return wt, nil
}

func (cc *CachedClient) fromCache(data []byte) (*entity.WorldTime, error) {
	var entry cachedTime
	if err := sonic.Unmarshal(data, &entry); err != nil {
		return nil, err
	}
	upstream, err := time.Parse(time.RFC3339Nano, entry.Datetime)
	if err != nil {
		return nil, errors.New("parsing cached datetime error: " + err.Error())
	}
	elapsed := cc.now().Sub(entry.FetchedAt)
	if elapsed < 0 {
		elapsed = 0
	}
	return &entity.WorldTime{
		Timezone:  entry.Timezone,
		Datetime:  upstream.Add(elapsed).Format(datetimeLayout),
		UTCOffset: entry.UTCOffset,
	}, nil
}
