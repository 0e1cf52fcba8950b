// Package queryclient implements the process-wide stale-while-revalidate
// cache behind every read the admin panel performs: per-key entries with
// freshness and retention windows, singleflight deduplication of concurrent
// fetches, one automatic retry, prefix invalidation after mutations, and
// per-key generations so late responses cannot overwrite newer data.
package queryclient

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/storefront-labs/admin-console/internal/core/domain/query"
	"github.com/storefront-labs/admin-console/internal/core/ports"
)

type entry struct {
	key string
	// fn is the fetch function bound to this key. The key uniquely determines
	// it, so the latest registration is authoritative.
	fn query.FetchFunc

	value     any
	hasValue  bool
	err       error // last failed (re)fetch; kept alongside any stale value
	fetchedAt time.Time
	invalid   bool

	// nextGen counts issued fetches, appliedGen the newest applied
	// completion. A completion whose generation is not newer than appliedGen
	// is discarded. invalidGen records the newest generation issued before the
	// last invalidation; completions at or below it read the backend before
	// the mutation and must not clear the invalid mark.
	nextGen    uint64
	appliedGen uint64
	invalidGen uint64
	inflight   int

	observers    int
	lastObserved time.Time
}

// Client owns the cache entries. Construct one per process and share it.
type Client struct {
	mu      sync.Mutex
	entries map[string]*entry
	policy  query.Policy
	group   singleflight.Group
	logger  *logrus.Logger

	now    func() time.Time
	stop   chan struct{}
	closed bool // guarded by mu; set once Close begins
	wg     sync.WaitGroup
	once   sync.Once
}

func NewClient(policy query.Policy, logger *logrus.Logger) *Client {
	c := &Client{
		entries: make(map[string]*entry),
		policy:  policy,
		logger:  logger,
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	if policy.ReapInterval > 0 {
		c.wg.Add(1)
		go c.reapLoop()
	}
	return c
}

// Close stops the background reaper and waits for in-flight background
// refetches to settle. No new refetches are spawned once it begins.
func (c *Client) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	c.once.Do(func() { close(c.stop) })
	c.wg.Wait()
}

// Fetch implements ports.QueryCache. Fresh entries are served directly; stale
// entries are served immediately while a background refetch runs; misses block
// on a deduplicated fetch.
func (c *Client) Fetch(ctx context.Context, key string, fn query.FetchFunc) (any, query.Status, error) {
	now := c.now()

	c.mu.Lock()
	c.evictIfExpiredLocked(key, now)
	e, ok := c.entries[key]
	if !ok {
		e = &entry{key: key}
		c.entries[key] = e
	}
	e.fn = fn
	e.lastObserved = now

	if e.hasValue && !e.invalid && now.Sub(e.fetchedAt) < c.policy.FreshFor {
		value := e.value
		c.mu.Unlock()
		cacheHits.Inc()
		return value, query.StatusFresh, nil
	}

	if e.hasValue {
		value, staleErr := e.value, e.err
		c.startRefetchLocked(e)
		c.mu.Unlock()
		cacheStale.Inc()
		return value, query.StatusStale, staleErr
	}

	// Miss: block on a shared flight.
	gen := c.issueLocked(e)
	c.mu.Unlock()
	cacheMisses.Inc()

	value, err := c.runFlight(ctx, key, fn)
	c.apply(key, gen, value, err)
	if err != nil {
		return nil, query.StatusLoading, err
	}
	return value, query.StatusFresh, nil
}

// Subscribe implements ports.QueryCache. The retention window for the key
// counts from the moment its last observer releases.
func (c *Client) Subscribe(key string) func() {
	c.mu.Lock()
	e, ok := c.entries[key]
	if !ok {
		e = &entry{key: key}
		c.entries[key] = e
	}
	e.observers++
	e.lastObserved = c.now()
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			e.observers--
			e.lastObserved = c.now()
			c.mu.Unlock()
		})
	}
}

// Invalidate implements ports.QueryCache. Matching entries are marked stale;
// the ones somebody is observing refetch immediately.
func (c *Client) Invalidate(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, e := range c.entries {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		e.invalid = true
		e.invalidGen = e.nextGen
		if e.observers > 0 && e.fn != nil {
			c.startRefetchLocked(e)
		}
	}
	c.logger.WithField("prefix", prefix).Debug("invalidated cache entries")
}

func (c *Client) issueLocked(e *entry) uint64 {
	e.nextGen++
	e.inflight++
	return e.nextGen
}

// startRefetchLocked spawns a background refetch for e unless one is already
// in flight. Caller holds c.mu.
func (c *Client) startRefetchLocked(e *entry) {
	if c.closed || e.inflight > 0 || e.fn == nil {
		return
	}
	gen := c.issueLocked(e)
	key, fn := e.key, e.fn
	cacheRefetches.Inc()

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		// Observers that triggered the refetch may be gone before it lands;
		// the original panel never cancelled in-flight requests either.
		value, err := c.runFlight(context.Background(), key, fn)
		c.apply(key, gen, value, err)
	}()
}

// runFlight executes the fetch with retries, deduplicated per key: concurrent
// callers for the same key share one network call.
func (c *Client) runFlight(ctx context.Context, key string, fn query.FetchFunc) (any, error) {
	value, err, _ := c.group.Do(key, func() (any, error) {
		var lastErr error
		for attempt := 0; attempt <= c.policy.RetryCount; attempt++ {
			if attempt > 0 {
				cacheRetries.Inc()
			}
			v, err := fn(ctx)
			if err == nil {
				return v, nil
			}
			lastErr = err
		}
		return nil, lastErr
	})
	return value, err
}

// apply records a completed fetch. Completions older than the newest applied
// generation are discarded so the cache converges on the latest request.
func (c *Client) apply(key string, gen uint64, value any, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		// Evicted while the request was in flight; drop the response.
		return
	}
	e.inflight--
	if gen <= e.appliedGen {
		cacheDiscards.Inc()
		c.logger.WithField("key", key).Debug("discarded out-of-generation response")
		return
	}
	e.appliedGen = gen

	if err != nil {
		e.err = err
		c.logger.WithError(err).WithField("key", key).Warn("fetch failed after retries")
		return
	}
	e.value = value
	e.hasValue = true
	e.err = nil
	e.fetchedAt = c.now()
	// A completion issued before the last invalidation carries pre-mutation
	// data: keep the entry stale so the next access revalidates, and refetch
	// right away if somebody is watching.
	if gen > e.invalidGen {
		e.invalid = false
	} else if e.observers > 0 && e.fn != nil {
		c.startRefetchLocked(e)
	}
}

func (c *Client) evictIfExpiredLocked(key string, now time.Time) {
	e, ok := c.entries[key]
	if !ok {
		return
	}
	if e.observers == 0 && e.inflight == 0 && now.Sub(e.lastObserved) > c.policy.RetainFor {
		delete(c.entries, key)
		cacheEvictions.Inc()
	}
}

func (c *Client) reapLoop() {
	defer c.wg.Done()
	ticker := time.NewTicker(c.policy.ReapInterval)
	defer ticker.Stop()
	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.reap()
		}
	}
}

func (c *Client) reap() {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		c.evictIfExpiredLocked(key, now)
	}
}

// Len reports the number of live cache entries.
func (c *Client) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

var _ ports.QueryCache = (*Client)(nil)
