package petsprite

import (
	"context"
	"log"
	"time"
)

// Manager owns the visual and environment caches, the resolver and the
// janitor. Construct one per process (or per test) and pass it to whatever
// renders creatures. Start launches background cleanup; Close stops it.
type Manager struct {
	cfg          Config
	registry     *Registry
	environments *EnvironmentTable
	visuals      *Cache[*ComposedAsset]
	envCache     *Cache[Asset]
	resolver     *Resolver
	janitor      *Janitor
	logger       *log.Logger
}

// Option configures a Manager.
type Option func(*managerOptions)

type managerOptions struct {
	logger     *log.Logger
	compositor Compositor
	now        func() time.Time
}

// WithLogger routes all warnings and debug output to l.
func WithLogger(l *log.Logger) Option {
	return func(o *managerOptions) { o.logger = l }
}

// WithCompositor replaces the default CanvasCompositor.
func WithCompositor(c Compositor) Option {
	return func(o *managerOptions) { o.compositor = c }
}

// WithClock replaces time.Now for cache recency tracking.
func WithClock(now func() time.Time) Option {
	return func(o *managerOptions) { o.now = now }
}

// NewManager wires the caches, resolver and janitor around the static
// tables. An invalid cfg is logged and replaced field by field with defaults.
func NewManager(cfg Config, reg *Registry, envs *EnvironmentTable, opts ...Option) *Manager {
	o := managerOptions{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = newDefaultLogger()
	}
	if cfg.MaxCacheSize <= 0 {
		o.logger.Printf("warning: max cache size %d, using %d", cfg.MaxCacheSize, DefaultMaxCacheSize)
		cfg.MaxCacheSize = DefaultMaxCacheSize
	}
	if cfg.CleanupInterval <= 0 {
		o.logger.Printf("warning: cleanup interval %v, using %v", cfg.CleanupInterval, DefaultCleanupInterval)
		cfg.CleanupInterval = DefaultCleanupInterval
	}
	if reg == nil {
		reg = NewRegistry(nil, nil, nil, o.logger)
	}
	if envs == nil {
		envs = NewEnvironmentTable(nil, Asset{}, o.logger)
	}

	m := &Manager{
		cfg:          cfg,
		registry:     reg,
		environments: envs,
		visuals:      NewCache[*ComposedAsset](cfg.MaxCacheSize, WithCacheClock(o.now)),
		envCache:     NewCache[Asset](cfg.MaxCacheSize, WithCacheClock(o.now)),
		logger:       o.logger,
	}
	m.resolver = NewResolver(reg, m.visuals, o.compositor, o.logger)
	m.resolver.dedupe = cfg.DedupeInFlight
	m.janitor = NewJanitor(cfg.CleanupInterval, o.logger, m.visuals, m.envCache)
	m.janitor.debug = cfg.Debug
	return m
}

// Start launches the periodic janitor. It stops when ctx is done or Close is
// called.
func (m *Manager) Start(ctx context.Context) {
	m.janitor.Start(ctx)
}

// Close stops the janitor and drops all cached assets.
func (m *Manager) Close() {
	m.janitor.Stop()
	if m.cfg.Debug {
		m.Stats().debugLog(m.logger)
	}
	m.ClearCache()
}

// ResolveVisualAsset resolves the composed sprite for a creature. stage is
// the raw life-stage index; values outside 0..6 return an error wrapping
// ErrStageOutOfRange and the caller should skip its visual update.
func (m *Manager) ResolveVisualAsset(stage int, hatID, faceID, costumeID string) (*ComposedAsset, error) {
	return m.Resolve(VisualState{
		Stage:     LifeStage(stage),
		HatID:     hatID,
		FaceID:    faceID,
		CostumeID: costumeID,
	})
}

// Resolve is ResolveVisualAsset for an already assembled VisualState.
func (m *Manager) Resolve(v VisualState) (*ComposedAsset, error) {
	return m.resolver.Resolve(v)
}

// ResolveEnvironmentAsset returns the background for a biome and time of
// day. Unconfigured pairs resolve to the table's default; the warning is
// logged once per pair while it stays cached.
func (m *Manager) ResolveEnvironmentAsset(b Biome, p TimePhase) Asset {
	key := EnvironmentKey{b, p}.String()
	if a, ok := m.envCache.Get(key); ok {
		return a
	}
	a := m.environments.Asset(b, p)
	m.envCache.Put(key, a)
	return a
}

// Sweep runs one janitor pass immediately and returns the eviction count.
func (m *Manager) Sweep() int {
	n := m.janitor.Sweep()
	if m.cfg.Debug {
		m.Stats().debugLog(m.logger)
	}
	return n
}

// ClearCache drops every cached visual and environment asset.
func (m *Manager) ClearCache() {
	m.visuals.Clear()
	m.envCache.Clear()
}

// Stats returns the visual cache counters.
func (m *Manager) Stats() Stats {
	return m.resolver.Stats()
}

// Config returns the effective configuration.
func (m *Manager) Config() Config {
	return m.cfg
}

// Registry returns the static stage and item tables.
func (m *Manager) Registry() *Registry {
	return m.registry
}
