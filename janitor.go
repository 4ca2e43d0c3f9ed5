package petsprite

import (
	"context"
	"log"
	"sync"
	"time"
)

// DefaultCleanupInterval is how often a Janitor trims its caches by default.
const DefaultCleanupInterval = 300 * time.Second

// Trimmer is anything a Janitor can bring back under capacity. *Cache
// satisfies it.
type Trimmer interface {
	Trim() int
}

// Janitor periodically trims a set of caches down to their capacities,
// discarding the least recently accessed entries. It is the only part of the
// package that runs on its own goroutine.
type Janitor struct {
	interval time.Duration
	targets  []Trimmer
	logger   *log.Logger
	debug    bool

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewJanitor creates a janitor for targets. A non-positive interval uses
// DefaultCleanupInterval. The janitor does nothing until Start.
func NewJanitor(interval time.Duration, logger *log.Logger, targets ...Trimmer) *Janitor {
	if interval <= 0 {
		interval = DefaultCleanupInterval
	}
	if logger == nil {
		logger = newDefaultLogger()
	}
	return &Janitor{
		interval: interval,
		targets:  targets,
		logger:   logger,
	}
}

// Interval returns the sweep period.
func (j *Janitor) Interval() time.Duration {
	return j.interval
}

// Sweep trims every target once and returns the total number of evicted
// entries. It may be called directly regardless of whether the janitor is
// running.
func (j *Janitor) Sweep() int {
	total := 0
	for _, t := range j.targets {
		total += t.Trim()
	}
	if j.debug && total > 0 {
		j.logger.Printf("janitor evicted %d entries", total)
	}
	return total
}

// Start begins sweeping every interval until ctx is done or Stop is called.
// Calling Start on a running janitor is a no-op.
func (j *Janitor) Start(ctx context.Context) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	j.cancel = cancel
	j.done = done

	go func() {
		defer close(done)
		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				j.Sweep()
			}
		}
	}()
}

// Stop halts the sweep loop and waits for it to exit. Safe to call more than
// once and on a janitor that never started.
func (j *Janitor) Stop() {
	j.mu.Lock()
	cancel, done := j.cancel, j.done
	j.cancel, j.done = nil, nil
	j.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Running reports whether the sweep loop is active.
func (j *Janitor) Running() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.cancel != nil
}
