package petsprite

import (
	"log"
	"sync/atomic"
)

// Stats is a snapshot of resolver and cache counters.
type Stats struct {
	Hits         uint64 // resolutions served from the cache
	Misses       uint64 // resolutions that found no cached entry
	Compositions uint64 // times the compositor actually ran
	Failures     uint64 // resolutions rejected with an error
	Evictions    uint64 // entries removed by janitor sweeps
	Size         int    // current visual cache size
	Capacity     int    // visual cache soft capacity
}

// HitRatio returns Hits / (Hits + Misses), or 0 before any lookups.
func (s Stats) HitRatio() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// counters are updated from any goroutine without holding the cache lock.
type counters struct {
	hits         atomic.Uint64
	misses       atomic.Uint64
	compositions atomic.Uint64
	failures     atomic.Uint64
}

// debugLog prints s on one line.
func (s Stats) debugLog(logger *log.Logger) {
	logger.Printf("cache: size %d/%d | hits %d | misses %d | composed %d | failed %d | evicted %d | ratio %.2f",
		s.Size, s.Capacity, s.Hits, s.Misses, s.Compositions, s.Failures, s.Evictions, s.HitRatio())
}
