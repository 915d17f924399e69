package cache

import (
	"context"
	"fmt"
	"time"

	"pickleball-api/core/config"
	"pickleball-api/core/constants"
	"pickleball-api/core/logger"

	"github.com/redis/go-redis/v9"
)

// ICache is the caching contract used by the booking availability snapshot
type ICache interface {
	GetOccupiedSlots(ctx context.Context, date, courtID string) ([]string, bool, error)
	SetOccupiedSlots(ctx context.Context, date, courtID string, slots []string) error
	AddOccupiedSlots(ctx context.Context, date, courtID string, slots []string) error
	RemoveOccupiedSlots(ctx context.Context, date, courtID string, slots []string) error
	DeleteAvailabilityKeys(ctx context.Context, beforeDate string) (int, error)
}

type Cache struct {
	client *redis.Client
}

var instance *Cache

func GetCache() ICache {
	return instance
}

func InitCache(cfg config.RedisConfig) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Failed to connect to redis", "error", err, "addr", cfg.Addr)
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	instance = &Cache{client: client}
	logger.Info("Redis cache initialized", "addr", cfg.Addr, "db", cfg.DB)
	return instance, nil
}

func availabilityKey(date, courtID string) string {
	return constants.RedisKeyAvailability + date + ":" + courtID
}

// GetOccupiedSlots returns the cached occupied slot labels for (date, court).
// The second return reports whether a snapshot exists at all, so an empty but
// present set is distinguishable from a cache miss.
func (c *Cache) GetOccupiedSlots(ctx context.Context, date, courtID string) ([]string, bool, error) {
	key := availabilityKey(date, courtID)
	exists, err := c.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, false, err
	}
	if exists == 0 {
		return nil, false, nil
	}
	members, err := c.client.SMembers(ctx, key).Result()
	if err != nil {
		return nil, false, err
	}
	slots := make([]string, 0, len(members))
	for _, m := range members {
		if m == "_" {
			continue
		}
		slots = append(slots, m)
	}
	return slots, true, nil
}

func (c *Cache) SetOccupiedSlots(ctx context.Context, date, courtID string, slots []string) error {
	key := availabilityKey(date, courtID)
	pipe := c.client.TxPipeline()
	pipe.Del(ctx, key)
	// keep the key present even when nothing is occupied
	members := make([]any, 0, len(slots)+1)
	members = append(members, "_")
	for _, s := range slots {
		members = append(members, s)
	}
	pipe.SAdd(ctx, key, members...)
	pipe.Expire(ctx, key, time.Duration(constants.AvailabilityCacheTTL)*time.Second)
	_, err := pipe.Exec(ctx)
	return err
}

// addOccupiedScript adds members only when the snapshot key still exists and
// refreshes its TTL. Creating the key here would leave a partial set that
// GetOccupiedSlots later serves as a full snapshot.
var addOccupiedScript = redis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 0 then
	return 0
end
for i = 2, #ARGV do
	redis.call("SADD", KEYS[1], ARGV[i])
end
redis.call("EXPIRE", KEYS[1], ARGV[1])
return 1
`)

func (c *Cache) AddOccupiedSlots(ctx context.Context, date, courtID string, slots []string) error {
	if len(slots) == 0 {
		return nil
	}
	key := availabilityKey(date, courtID)
	args := make([]any, 0, len(slots)+1)
	args = append(args, constants.AvailabilityCacheTTL)
	for _, s := range slots {
		args = append(args, s)
	}
	return addOccupiedScript.Run(ctx, c.client, []string{key}, args...).Err()
}

func (c *Cache) RemoveOccupiedSlots(ctx context.Context, date, courtID string, slots []string) error {
	if len(slots) == 0 {
		return nil
	}
	key := availabilityKey(date, courtID)
	members := make([]any, len(slots))
	for i, s := range slots {
		members[i] = s
	}
	return c.client.SRem(ctx, key, members...).Err()
}

// DeleteAvailabilityKeys removes availability snapshots for dates strictly
// before beforeDate (YYYY-MM-DD). Key dates sort lexicographically.
func (c *Cache) DeleteAvailabilityKeys(ctx context.Context, beforeDate string) (int, error) {
	var deleted int
	iter := c.client.Scan(ctx, 0, constants.RedisKeyAvailability+"*", 200).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		// availability:{date}:{court_id}
		rest := key[len(constants.RedisKeyAvailability):]
		if len(rest) < 10 {
			continue
		}
		if rest[:10] < beforeDate {
			if err := c.client.Del(ctx, key).Err(); err != nil {
				return deleted, err
			}
			deleted++
		}
	}
	if err := iter.Err(); err != nil {
		return deleted, err
	}
	return deleted, nil
}

// Client exposes the underlying redis client for the task queue setup
func (c *Cache) Client() *redis.Client {
	return c.client
}
