package fft

import (
	"sync"

	m "github.com/cwbudde/algo-fourier/internal/math"
)

// stageTwiddles holds the immutable per-stage twiddle tables shared by all
// plans of one (size, precision) pair, plus a reference count for explicit
// lifetime management.
type stageTwiddles[T Complex] struct {
	forward []T
	inverse []T
}

type cacheEntry[T Complex] struct {
	tables *stageTwiddles[T]
	refs   int
}

// twiddleCache shares stage twiddle tables between plans of the same size.
// Entries are evicted once the last plan holding them is closed, so the
// cache's contents always correspond to live plans.
type twiddleCache[T Complex] struct {
	mu      sync.Mutex
	entries map[int]*cacheEntry[T]
}

func (c *twiddleCache[T]) acquire(n int, counts [m.NumRadices]int) *stageTwiddles[T] {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.entries == nil {
		c.entries = make(map[int]*cacheEntry[T])
	}

	if entry, ok := c.entries[n]; ok {
		entry.refs++
		return entry.tables
	}

	forward, inverse := computeStageTwiddles[T](n, counts)
	entry := &cacheEntry[T]{
		tables: &stageTwiddles[T]{forward: forward, inverse: inverse},
		refs:   1,
	}
	c.entries[n] = entry

	return entry.tables
}

func (c *twiddleCache[T]) release(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[n]
	if !ok {
		return
	}

	entry.refs--
	if entry.refs <= 0 {
		delete(c.entries, n)
	}
}

func (c *twiddleCache[T]) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

var (
	twiddleCache64  twiddleCache[complex64]
	twiddleCache128 twiddleCache[complex128]
)

func acquireStageTwiddles[T Complex](n int, counts [m.NumRadices]int) *stageTwiddles[T] {
	var zero T

	switch any(zero).(type) {
	case complex64:
		return any(twiddleCache64.acquire(n, counts)).(*stageTwiddles[T])
	case complex128:
		return any(twiddleCache128.acquire(n, counts)).(*stageTwiddles[T])
	default:
		panic("unsupported complex type")
	}
}

func releaseStageTwiddles[T Complex](n int) {
	var zero T

	switch any(zero).(type) {
	case complex64:
		twiddleCache64.release(n)
	case complex128:
		twiddleCache128.release(n)
	}
}

// CachedTwiddleSizes reports the number of live shared twiddle tables for
// the given precision. Exposed for tests.
func CachedTwiddleSizes[T Complex]() int {
	var zero T

	switch any(zero).(type) {
	case complex64:
		return twiddleCache64.len()
	case complex128:
		return twiddleCache128.len()
	default:
		return 0
	}
}
