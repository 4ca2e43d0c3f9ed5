package petsprite

import (
	"fmt"
	"log"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Resolver turns VisualStates into ComposedAssets, memoizing results in a
// Cache under the state's canonical key.
type Resolver struct {
	registry   *Registry
	cache      *Cache[*ComposedAsset]
	compositor Compositor
	logger     *log.Logger
	dedupe     bool
	group      singleflight.Group
	stats      counters

	// unknown holds item ids already reported as missing a layer.
	unknown sync.Map
}

// NewResolver creates a resolver over registry that stores results in cache.
// A nil compositor uses CanvasCompositor.
func NewResolver(registry *Registry, cache *Cache[*ComposedAsset], compositor Compositor, logger *log.Logger) *Resolver {
	if compositor == nil {
		compositor = CanvasCompositor{}
	}
	if logger == nil {
		logger = newDefaultLogger()
	}
	return &Resolver{
		registry:   registry,
		cache:      cache,
		compositor: compositor,
		logger:     logger,
		dedupe:     true,
	}
}

// Resolve returns the composed asset for v.
//
// A cached result is returned as is. Otherwise the base sprite for v.Stage
// and the layers of each equipped item are composed, muted for dead
// creatures, scaled by the stage scale and cached. An invalid stage is the
// only error; unknown item ids are skipped.
func (r *Resolver) Resolve(v VisualState) (*ComposedAsset, error) {
	if !v.Stage.Valid() {
		r.stats.failures.Add(1)
		msg := fmt.Sprintf("resolve stage %d", int(v.Stage))
		r.logger.Printf("error: %s: %v", msg, ErrStageOutOfRange)
		return nil, fmt.Errorf("petsprite: %s: %w", msg, ErrStageOutOfRange)
	}

	key := BuildKey(v)
	if a, ok := r.cache.Get(key); ok {
		r.stats.hits.Add(1)
		return a, nil
	}
	r.stats.misses.Add(1)

	if !r.dedupe {
		return r.composeAndStore(key, v)
	}
	res, err, _ := r.group.Do(key, func() (any, error) {
		// Another caller may have stored the key between our miss and now.
		if a, ok := r.cache.Peek(key); ok {
			return a, nil
		}
		return r.composeAndStore(key, v)
	})
	if err != nil {
		return nil, err
	}
	return res.(*ComposedAsset), nil
}

func (r *Resolver) composeAndStore(key string, v VisualState) (*ComposedAsset, error) {
	a, err := r.compose(key, v)
	if err != nil {
		r.stats.failures.Add(1)
		return nil, err
	}
	r.cache.Put(key, a)
	return a, nil
}

func (r *Resolver) compose(key string, v VisualState) (*ComposedAsset, error) {
	base, err := r.registry.BaseAsset(v.Stage)
	if err != nil {
		return nil, err
	}

	var layers []ItemLayer
	if !v.Stage.HidesCosmetics() {
		for slot, id := range v.slotIDs() {
			if id == "" {
				continue
			}
			l, ok := r.registry.ItemLayer(id)
			if !ok {
				if _, seen := r.unknown.LoadOrStore(id, struct{}{}); !seen {
					r.logger.Printf("warning: no layer for item %q in %s slot", id, ItemSlot(slot))
				}
				continue
			}
			layers = append(layers, l)
		}
		sortLayers(layers)
	}

	var treatment *ColorMatrix
	if v.Stage == StageDead {
		m := DeadTreatment()
		treatment = &m
	}

	scale := r.registry.StageScale(v.Stage)
	r.stats.compositions.Add(1)
	return &ComposedAsset{
		key:       key,
		image:     r.compositor.Compose(base, layers, treatment),
		base:      base,
		layers:    layers,
		size:      base.Size().Scaled(scale),
		scale:     scale,
		stage:     v.Stage,
		items:     v.equippedIDs(),
		treatment: treatment,
	}, nil
}

// Stats returns a snapshot of the resolver counters and its cache.
func (r *Resolver) Stats() Stats {
	return Stats{
		Hits:         r.stats.hits.Load(),
		Misses:       r.stats.misses.Load(),
		Compositions: r.stats.compositions.Load(),
		Failures:     r.stats.failures.Load(),
		Evictions:    r.cache.Evictions(),
		Size:         r.cache.Size(),
		Capacity:     r.cache.Capacity(),
	}
}
