// Package ratelimit provides keyed token-bucket limiters. Each identity (a
// chat user, a group chat, a client IP) gets an independent bucket, and idle
// buckets are swept in the background until Close is called.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultSweepInterval = 5 * time.Minute
	defaultIdleTTL       = time.Hour
)

// entry holds a limiter and the last time its identity was seen.
type entry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
	mu         sync.Mutex
}

// Limiter enforces a rate per identity.
type Limiter struct {
	limiters sync.Map // map[string]*entry
	limit    rate.Limit
	burst    int
	idleTTL  time.Duration
	now      func() time.Time

	cancel    context.CancelFunc
	done      chan struct{}
	closeOnce sync.Once
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) {
		l.now = now
	}
}

// WithIdleTTL sets how long an identity may stay unseen before its bucket is
// dropped.
func WithIdleTTL(ttl time.Duration) Option {
	return func(l *Limiter) {
		l.idleTTL = ttl
	}
}

// New creates a Limiter allowing limit events per second with the given burst
// and starts its sweeper.
func New(limit rate.Limit, burst int, opts ...Option) *Limiter {
	return newLimiter(limit, burst, defaultSweepInterval, opts...)
}

// NewCooldown creates a Limiter that admits one event per identity every
// interval. A rejected attempt does not extend the wait.
func NewCooldown(interval time.Duration, opts ...Option) *Limiter {
	return New(rate.Every(interval), 1, opts...)
}

func newLimiter(limit rate.Limit, burst int, sweepInterval time.Duration, opts ...Option) *Limiter {
	ctx, cancel := context.WithCancel(context.Background())
	l := &Limiter{
		limit:   limit,
		burst:   burst,
		idleTTL: defaultIdleTTL,
		now:     time.Now,
		cancel:  cancel,
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}

	go l.sweep(ctx, sweepInterval)

	return l
}

// TryAcquire reports whether identity may proceed now, consuming a token when
// it may.
func (l *Limiter) TryAcquire(identity string) bool {
	now := l.now()
	return l.get(identity, now).AllowN(now, 1)
}

// RetryAfter returns how long identity must wait for its next token. Zero
// means a token is available.
func (l *Limiter) RetryAfter(identity string) time.Duration {
	now := l.now()
	reservation := l.get(identity, now).ReserveN(now, 1)
	if !reservation.OK() {
		return 0
	}
	delay := reservation.DelayFrom(now)
	reservation.CancelAt(now)
	return delay
}

// size returns the number of tracked identities.
func (l *Limiter) size() int {
	count := 0
	l.limiters.Range(func(_, _ any) bool {
		count++
		return true
	})
	return count
}

// Close stops the sweeper and waits for it to exit. It is safe to call more
// than once.
func (l *Limiter) Close() {
	l.closeOnce.Do(func() {
		l.cancel()
		<-l.done
	})
}

func (l *Limiter) get(identity string, now time.Time) *rate.Limiter {
	if val, ok := l.limiters.Load(identity); ok {
		e := val.(*entry)
		e.mu.Lock()
		e.lastAccess = now
		e.mu.Unlock()
		return e.limiter
	}

	e := &entry{
		limiter:    rate.NewLimiter(l.limit, l.burst),
		lastAccess: now,
	}
	actual, _ := l.limiters.LoadOrStore(identity, e)
	return actual.(*entry).limiter
}

// sweep removes idle identities until ctx is cancelled.
func (l *Limiter) sweep(ctx context.Context, interval time.Duration) {
	defer close(l.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.removeIdle()
		}
	}
}

func (l *Limiter) removeIdle() {
	threshold := l.now().Add(-l.idleTTL)
	l.limiters.Range(func(key, value any) bool {
		e := value.(*entry)
		e.mu.Lock()
		idle := e.lastAccess.Before(threshold)
		e.mu.Unlock()

		if idle {
			l.limiters.Delete(key)
		}
		return true
	})
}
