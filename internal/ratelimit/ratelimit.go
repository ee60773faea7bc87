package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

const keyPrefix = "ratelimit:" // ratelimit:{scope}:{key}:{window}

// Limiter decides whether the caller identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// Redis is a fixed-window limiter shared by every API instance.
type Redis struct {
	client *redis.Client
	scope  string
	limit  int64
	window time.Duration
	now    func() time.Time
}

func NewRedis(client *redis.Client, scope string, limit int, window time.Duration) *Redis {
	return &Redis{
		client: client,
		scope:  scope,
		limit:  int64(limit),
		window: window,
		now:    time.Now,
	}
}

func (r *Redis) key(caller string) string {
	slot := r.now().UnixNano() / int64(r.window)
	return fmt.Sprintf("%s%s:%s:%d", keyPrefix, r.scope, caller, slot)
}

func (r *Redis) Allow(ctx context.Context, caller string) (bool, error) {
	k := r.key(caller)

	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.Expire(ctx, k, r.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit %s: %w", r.scope, err)
	}
	return incr.Val() <= r.limit, nil
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Local is an in-process token bucket per caller, used when Redis is not
// configured.
type Local struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	every    rate.Limit
	burst    int
	idle     time.Duration
	now      func() time.Time
}

// maxVisitors bounds the map before idle callers are pruned.
const maxVisitors = 10000

func NewLocal(limit int, window time.Duration) *Local {
	if limit < 1 {
		limit = 1
	}
	return &Local{
		visitors: make(map[string]*visitor),
		every:    rate.Every(window / time.Duration(limit)),
		burst:    limit,
		idle:     window,
		now:      time.Now,
	}
}

func (l *Local) Allow(_ context.Context, caller string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	v, ok := l.visitors[caller]
	if !ok {
		if len(l.visitors) >= maxVisitors {
			l.prune(now)
		}
		v = &visitor{limiter: rate.NewLimiter(l.every, l.burst)}
		l.visitors[caller] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1), nil
}

func (l *Local) prune(now time.Time) {
	for k, v := range l.visitors {
		if now.Sub(v.lastSeen) > l.idle {
			delete(l.visitors, k)
		}
	}
}
