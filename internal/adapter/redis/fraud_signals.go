package redisadapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// FraudSignalStore implements port.FraudSignalStore on Redis. Click volume
// is tracked with per-IP hourly bucket counters; rapid repeats with a
// per-(ad, IP) timestamp key. Keys expire on their own, so the store never
// needs sweeping.
type FraudSignalStore struct {
	client *redis.Client
}

// NewFraudSignalStore returns a new store backed by the given client.
func NewFraudSignalStore(client *redis.Client) *FraudSignalStore {
	return &FraudSignalStore{client: client}
}

// Two fixed hourly buckets approximate the trailing hour: the current
// bucket plus the previous one covers every interaction of the last 60
// minutes, over-counting by at most the age of the previous bucket.
func clickBucketKeys(ip string, now time.Time) (cur, prev string) {
	bucket := now.Unix() / 3600
	return fmt.Sprintf("fraud:clicks:%s:%d", ip, bucket),
		fmt.Sprintf("fraud:clicks:%s:%d", ip, bucket-1)
}

func lastSeenKey(adID int64, ip string) string {
	return fmt.Sprintf("fraud:seen:%d:%s", adID, ip)
}

// ClicksLastHour returns the click count observed from ip over the trailing
// hour.
func (s *FraudSignalStore) ClicksLastHour(ctx context.Context, ip string) (int64, error) {
	cur, prev := clickBucketKeys(ip, time.Now())
	vals, err := s.client.MGet(ctx, cur, prev).Result()
	if err != nil {
		return 0, err
	}
	var total int64
	for _, v := range vals {
		if str, ok := v.(string); ok {
			var n int64
			if _, err := fmt.Sscan(str, &n); err == nil {
				total += n
			}
		}
	}
	return total, nil
}

// SinceLastInteraction returns how long ago the same (ad, ip) pair last
// interacted.
func (s *FraudSignalStore) SinceLastInteraction(ctx context.Context, adID int64, ip string) (time.Duration, bool, error) {
	val, err := s.client.Get(ctx, lastSeenKey(adID, ip)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	var unixNano int64
	if _, err = fmt.Sscan(val, &unixNano); err != nil {
		return 0, false, nil
	}
	return time.Since(time.Unix(0, unixNano)), true, nil
}

// Observe registers an interaction from ip against adID.
func (s *FraudSignalStore) Observe(ctx context.Context, adID int64, ip string, click bool) error {
	now := time.Now()
	pipe := s.client.Pipeline()
	if click {
		cur, _ := clickBucketKeys(ip, now)
		pipe.Incr(ctx, cur)
		pipe.Expire(ctx, cur, 2*time.Hour)
	}
	pipe.Set(ctx, lastSeenKey(adID, ip), fmt.Sprint(now.UnixNano()), time.Minute)
	_, err := pipe.Exec(ctx)
	return err
}
