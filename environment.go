package petsprite

import (
	"fmt"
	"log"
)

// Biome is the habitat drawn behind a creature.
type Biome uint8

const (
	BiomeMeadow Biome = iota
	BiomeForest
	BiomeDesert
	BiomeBeach
	BiomeSnow
)

var biomeNames = [...]string{"meadow", "forest", "desert", "beach", "snow"}

func (b Biome) String() string {
	if int(b) < len(biomeNames) {
		return biomeNames[b]
	}
	return fmt.Sprintf("Biome(%d)", b)
}

// ParseBiome returns the biome with the given lowercase name.
func ParseBiome(name string) (Biome, error) {
	for i, n := range biomeNames {
		if n == name {
			return Biome(i), nil
		}
	}
	return 0, fmt.Errorf("petsprite: unknown biome %q", name)
}

// TimePhase is the time of day used to pick environment art.
type TimePhase uint8

const (
	PhaseDawn TimePhase = iota
	PhaseDay
	PhaseDusk
	PhaseNight
)

var timePhaseNames = [...]string{"dawn", "day", "dusk", "night"}

func (p TimePhase) String() string {
	if int(p) < len(timePhaseNames) {
		return timePhaseNames[p]
	}
	return fmt.Sprintf("TimePhase(%d)", p)
}

// ParseTimePhase returns the phase with the given lowercase name.
func ParseTimePhase(name string) (TimePhase, error) {
	for i, n := range timePhaseNames {
		if n == name {
			return TimePhase(i), nil
		}
	}
	return 0, fmt.Errorf("petsprite: unknown time phase %q", name)
}

// EnvironmentKey identifies one cell of the biome × phase table.
type EnvironmentKey struct {
	Biome Biome
	Phase TimePhase
}

func (k EnvironmentKey) String() string {
	return "env|" + k.Biome.String() + "|" + k.Phase.String()
}

// EnvironmentTable maps (biome, phase) to background art. Read-only after
// construction.
type EnvironmentTable struct {
	entries  map[EnvironmentKey]Asset
	fallback Asset
	logger   *log.Logger
}

// NewEnvironmentTable copies entries and records the fallback used for
// unconfigured pairs.
func NewEnvironmentTable(entries map[EnvironmentKey]Asset, fallback Asset, logger *log.Logger) *EnvironmentTable {
	if logger == nil {
		logger = newDefaultLogger()
	}
	t := &EnvironmentTable{
		entries:  make(map[EnvironmentKey]Asset, len(entries)),
		fallback: fallback,
		logger:   logger,
	}
	for k, v := range entries {
		t.entries[k] = v
	}
	if fallback.IsZero() {
		logger.Printf("warning: environment table has no default asset")
	}
	return t
}

// Lookup returns the configured asset for the pair without falling back.
func (t *EnvironmentTable) Lookup(b Biome, p TimePhase) (Asset, bool) {
	a, ok := t.entries[EnvironmentKey{b, p}]
	return a, ok
}

// Asset returns the configured asset for the pair, or the default asset with
// a logged warning. It never fails.
func (t *EnvironmentTable) Asset(b Biome, p TimePhase) Asset {
	if a, ok := t.entries[EnvironmentKey{b, p}]; ok {
		return a
	}
	t.logger.Printf("warning: no environment asset for %s/%s, using default %q", b, p, t.fallback.Name)
	return t.fallback
}

// Len returns the number of configured pairs.
func (t *EnvironmentTable) Len() int {
	return len(t.entries)
}
