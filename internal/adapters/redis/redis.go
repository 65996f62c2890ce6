// Package redis provides the cross-replica coordination adapters: an
// INCR-backed audit-number allocator and redislock-backed record locks.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	goredis "github.com/redis/go-redis/v9"

	"corengine/internal/ports"
)

const keyPrefix = "cor"

// Connect opens a client and pings it.
func Connect(ctx context.Context, addr, password string) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{Addr: addr, Password: password, DB: 0, PoolSize: 20})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return rdb, nil
}

// SequenceSeeder reports the highest audit sequence already persisted, so
// a counter created after a cache flush never hands out a used number.
type SequenceSeeder interface {
	MaxAuditSequence(ctx context.Context, orgID string, year int) (int, error)
}

// SequenceAllocator allocates audit-number sequences with INCR on one key
// per (organization, year).
type SequenceAllocator struct {
	rdb  goredis.Cmdable
	seed SequenceSeeder
}

var _ ports.SequenceAllocator = (*SequenceAllocator)(nil)

func NewSequenceAllocator(rdb goredis.Cmdable, seed SequenceSeeder) *SequenceAllocator {
	return &SequenceAllocator{rdb: rdb, seed: seed}
}

func sequenceKey(orgID string, year int) string {
	return fmt.Sprintf("%s:auditseq:%s:%d", keyPrefix, orgID, year)
}

func (a *SequenceAllocator) NextAuditSequence(ctx context.Context, orgID string, year int) (int, error) {
	key := sequenceKey(orgID, year)
	exists, err := a.rdb.Exists(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if exists == 0 {
		highest, err := a.seed.MaxAuditSequence(ctx, orgID, year)
		if err != nil {
			return 0, fmt.Errorf("seed audit sequence: %w", err)
		}
		// SETNX: concurrent seeders agree on one starting value.
		if err := a.rdb.SetNX(ctx, key, highest, 0).Err(); err != nil {
			return 0, err
		}
	}
	n, err := a.rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// Locker hands out redislock locks. Obtain retries with capped exponential
// backoff and gives up once the lock TTL has passed.
type Locker struct {
	client *redislock.Client
	ttl    time.Duration
}

var _ ports.Locker = (*Locker)(nil)

const (
	lockMinBackoff = 16 * time.Millisecond
	lockMaxBackoff = 512 * time.Millisecond
)

func NewLocker(rdb redislock.RedisClient, ttl time.Duration) *Locker {
	return &Locker{client: redislock.New(rdb), ttl: ttl}
}

func (l *Locker) Obtain(ctx context.Context, key string) (ports.Lock, error) {
	wait, cancel := context.WithTimeout(ctx, l.ttl)
	defer cancel()
	opts := &redislock.Options{
		RetryStrategy: redislock.ExponentialBackoff(lockMinBackoff, lockMaxBackoff),
	}
	lock, err := l.client.Obtain(wait, keyPrefix+":lock:"+key, l.ttl, opts)
	switch {
	case err == nil:
		return lock, nil
	case errors.Is(err, redislock.ErrNotObtained), wait.Err() != nil && ctx.Err() == nil:
		return nil, fmt.Errorf("lock %s is held elsewhere: %w", key, redislock.ErrNotObtained)
	default:
		return nil, err
	}
}
