package cache

import (
	"container/list"
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// DefaultTTL applies when Set is called with a non-positive TTL
const DefaultTTL = 30 * time.Minute

// MemoryCache is a size-bounded in-memory cache that evicts the least
// recently used entry first
type MemoryCache struct {
	mu       sync.Mutex
	items    map[string]*list.Element
	order    *list.List // front is most recently used
	maxBytes int64
	size     int64
	stats    Stats
	now      func() time.Time

	stopCh chan struct{}
	wg     sync.WaitGroup
}

type entry struct {
	key    string
	value  []byte
	expiry time.Time
}

func (e *entry) size() int64 {
	return int64(len(e.key) + len(e.value))
}

// NewMemoryCache creates a cache holding at most maxSizeMB megabytes.
// A non-positive size means unbounded.
func NewMemoryCache(maxSizeMB int64) *MemoryCache {
	mc := newMemoryCache(maxSizeMB*1024*1024, time.Now)

	mc.wg.Add(1)
	go mc.sweep(time.Minute)

	return mc
}

func newMemoryCache(maxBytes int64, now func() time.Time) *MemoryCache {
	return &MemoryCache{
		items:    make(map[string]*list.Element),
		order:    list.New(),
		maxBytes: maxBytes,
		now:      now,
		stopCh:   make(chan struct{}),
	}
}

// Get retrieves a value and marks it recently used
func (mc *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	el, ok := mc.items[key]
	if !ok {
		mc.stats.Misses++
		return nil, false
	}
	e := el.Value.(*entry)
	if mc.now().After(e.expiry) {
		mc.remove(el)
		mc.stats.Misses++
		return nil, false
	}

	mc.order.MoveToFront(el)
	mc.stats.Hits++
	return e.value, true
}

// Set stores a value. Values larger than the whole cache are dropped.
func (mc *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	e := &entry{key: key, value: value, expiry: mc.now().Add(ttl)}

	mc.mu.Lock()
	defer mc.mu.Unlock()

	if el, ok := mc.items[key]; ok {
		mc.remove(el)
	}
	if mc.maxBytes > 0 && e.size() > mc.maxBytes {
		log.WithFields(log.Fields{"key": key, "bytes": e.size()}).Debug("Value exceeds cache size, not cached")
		return nil
	}

	for mc.maxBytes > 0 && mc.size+e.size() > mc.maxBytes {
		oldest := mc.order.Back()
		if oldest == nil {
			break
		}
		mc.remove(oldest)
		mc.stats.Evictions++
	}

	mc.items[key] = mc.order.PushFront(e)
	mc.size += e.size()
	mc.stats.Sets++
	return nil
}

// Delete removes a value from the cache
func (mc *MemoryCache) Delete(ctx context.Context, key string) error {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	if el, ok := mc.items[key]; ok {
		mc.remove(el)
	}
	return nil
}

// Clear removes all values from the cache
func (mc *MemoryCache) Clear(ctx context.Context) error {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.items = make(map[string]*list.Element)
	mc.order.Init()
	mc.size = 0
	return nil
}

// Stats returns cache statistics
func (mc *MemoryCache) Stats() Stats {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	s := mc.stats
	s.Entries = len(mc.items)
	s.Bytes = mc.size
	s.MaxBytes = mc.maxBytes
	return s
}

// Stop ends the background sweep
func (mc *MemoryCache) Stop() {
	close(mc.stopCh)
	mc.wg.Wait()
}

func (mc *MemoryCache) remove(el *list.Element) {
	e := mc.order.Remove(el).(*entry)
	delete(mc.items, e.key)
	mc.size -= e.size()
}

func (mc *MemoryCache) sweep(every time.Duration) {
	defer mc.wg.Done()
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			mc.removeExpired()
		case <-mc.stopCh:
			return
		}
	}
}

func (mc *MemoryCache) removeExpired() {
	now := mc.now()
	mc.mu.Lock()
	defer mc.mu.Unlock()
	for el := mc.order.Back(); el != nil; {
		prev := el.Prev()
		if now.After(el.Value.(*entry).expiry) {
			mc.remove(el)
			mc.stats.Evictions++
		}
		el = prev
	}
}
