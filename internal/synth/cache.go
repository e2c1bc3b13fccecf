package synth

import (
	"math"
	"sync"
)

// DefaultCacheLimit is the soft limit on cached buffers. The default pitch
// band spans a little over a thousand integer frequencies.
const DefaultCacheLimit = 2048

// cacheKey identifies a buffer: a tone rounded to the nearest Hz or a
// silence rounded to the nearest millisecond.
type cacheKey struct {
	silence bool
	value   int64
}

type cacheEntry struct {
	buf   *Buffer
	atime int64
}

// Cache memoizes synthesized buffers so that repeated requests for the same
// pitch or pause return the same *Buffer. Channels compare buffers by
// identity, so a cache hit never restarts playback.
//
// When the cache grows past its soft limit, the least recently used quarter
// is evicted. Cache is safe for concurrent use.
type Cache struct {
	mu        sync.Mutex
	rate      int
	entries   map[cacheKey]*cacheEntry
	softLimit int
	tick      int64
}

// NewCache returns a cache producing buffers at rate. A softLimit of 0 means
// unlimited.
func NewCache(rate, softLimit int) *Cache {
	return &Cache{
		rate:      validRate(rate),
		entries:   make(map[cacheKey]*cacheEntry),
		softLimit: softLimit,
	}
}

// Rate returns the sample rate of the cached buffers.
func (c *Cache) Rate() int { return c.rate }

// Tone returns the one-cycle tone for freq rounded to the nearest Hz.
// Frequencies below 1 Hz share the 1 Hz buffer.
func (c *Cache) Tone(freq float64) (*Buffer, error) {
	if math.IsNaN(freq) || math.IsInf(freq, 0) || freq <= 0 {
		return Tone(freq, c.rate)
	}
	key := cacheKey{value: max(1, int64(math.Round(freq)))}
	return c.getOrCreate(key, func() (*Buffer, error) {
		return Tone(float64(key.value), c.rate)
	})
}

// Silence returns a silent buffer for seconds rounded to the nearest
// millisecond.
func (c *Cache) Silence(seconds float64) (*Buffer, error) {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds <= 0 {
		return Silence(seconds, c.rate)
	}
	key := cacheKey{silence: true, value: max(1, int64(math.Round(seconds*1000)))}
	return c.getOrCreate(key, func() (*Buffer, error) {
		return Silence(float64(key.value)/1000, c.rate)
	})
}

// Len returns the number of cached buffers.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache) getOrCreate(key cacheKey, create func() (*Buffer, error)) (*Buffer, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tick++
	if e, ok := c.entries[key]; ok {
		e.atime = c.tick
		return e.buf, nil
	}

	buf, err := create()
	if err != nil {
		return nil, err
	}
	c.entries[key] = &cacheEntry{buf: buf, atime: c.tick}
	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		c.evictOldest()
	}
	return buf, nil
}

// evictOldest drops entries until a quarter of the soft limit is free.
// Caller must hold c.mu.
func (c *Cache) evictOldest() {
	target := max(1, c.softLimit*3/4)
	toEvict := len(c.entries) - target
	if toEvict <= 0 {
		return
	}

	type aged struct {
		key   cacheKey
		atime int64
	}
	all := make([]aged, 0, len(c.entries))
	for k, e := range c.entries {
		all = append(all, aged{key: k, atime: e.atime})
	}
	for i := 0; i < toEvict && i < len(all); i++ {
		oldest := i
		for j := i + 1; j < len(all); j++ {
			if all[j].atime < all[oldest].atime {
				oldest = j
			}
		}
		all[i], all[oldest] = all[oldest], all[i]
		delete(c.entries, all[i].key)
	}
}
