package petsprite

import (
	"encoding/json"
	"fmt"
	"log"
)

// Manifest is the static art configuration: which atlas region each life
// stage, item and (biome, phase) pair uses.
//
//	{
//	  "stages": ["egg", "larva1", ...],
//	  "scales": [0.3, 0.4, ...],
//	  "items": [{"id": "hat_01", "slot": "hat", "region": "hat_01.png",
//	             "offset": {"x": 4, "y": -6}, "scale": {"x": 1, "y": 1}, "order": 2}],
//	  "environments": [{"biome": "forest", "phase": "night", "region": "forest_night.png"}],
//	  "defaultEnvironment": "meadow_day.png"
//	}
type Manifest struct {
	Stages             []string              `json:"stages"`
	Scales             []float64             `json:"scales"`
	Items              []ManifestItem        `json:"items"`
	Environments       []ManifestEnvironment `json:"environments"`
	DefaultEnvironment string                `json:"defaultEnvironment"`
}

// ManifestItem configures one cosmetic layer.
type ManifestItem struct {
	ID     string       `json:"id"`
	Slot   string       `json:"slot"`
	Region string       `json:"region"`
	Offset manifestVec2 `json:"offset"`
	Scale  manifestVec2 `json:"scale"`
	Order  int          `json:"order"`
}

// ManifestEnvironment configures one biome × phase background.
type ManifestEnvironment struct {
	Biome  string `json:"biome"`
	Phase  string `json:"phase"`
	Region string `json:"region"`
}

type manifestVec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ParseManifest decodes manifest JSON. Only malformed JSON is an error.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("petsprite: parse manifest: %w", err)
	}
	return &m, nil
}

// LoadManifest parses manifest JSON and resolves its region names against
// atlas. See Manifest.Build.
func LoadManifest(data []byte, atlas *Atlas, logger *log.Logger) (*Registry, *EnvironmentTable, error) {
	m, err := ParseManifest(data)
	if err != nil {
		return nil, nil, err
	}
	reg, envs := m.Build(atlas, logger)
	return reg, envs, nil
}

// Build resolves the manifest against atlas. Missing regions become magenta
// placeholders, unknown slots default to hat and unknown biome or phase
// names drop the entry; each case is logged as a warning. Undersized stage
// tables are accepted and reported by NewRegistry.
func (m *Manifest) Build(atlas *Atlas, logger *log.Logger) (*Registry, *EnvironmentTable) {
	if logger == nil {
		logger = newDefaultLogger()
	}
	lookup := func(what, name string) Asset {
		a, ok := atlas.Asset(name)
		if !ok {
			logger.Printf("warning: %s region %q not in atlas, using placeholder", what, name)
		}
		return a
	}

	bases := make([]Asset, len(m.Stages))
	for i, name := range m.Stages {
		bases[i] = lookup(fmt.Sprintf("stage %d", i), name)
	}

	items := make([]ItemLayer, 0, len(m.Items))
	for _, it := range m.Items {
		slot, err := ParseItemSlot(it.Slot)
		if err != nil {
			logger.Printf("warning: item %q: %v, defaulting to %s", it.ID, err, SlotHat)
			slot = SlotHat
		}
		items = append(items, ItemLayer{
			ItemID:    it.ID,
			Slot:      slot,
			Source:    lookup("item "+it.ID, it.Region),
			Offset:    Vec2{it.Offset.X, it.Offset.Y},
			Scale:     Vec2{it.Scale.X, it.Scale.Y},
			DrawOrder: it.Order,
		})
	}

	entries := make(map[EnvironmentKey]Asset, len(m.Environments))
	for _, e := range m.Environments {
		b, err := ParseBiome(e.Biome)
		if err != nil {
			logger.Printf("warning: environment %q ignored: %v", e.Region, err)
			continue
		}
		p, err := ParseTimePhase(e.Phase)
		if err != nil {
			logger.Printf("warning: environment %q ignored: %v", e.Region, err)
			continue
		}
		entries[EnvironmentKey{b, p}] = lookup("environment "+b.String()+"/"+p.String(), e.Region)
	}

	var fallback Asset
	if m.DefaultEnvironment != "" {
		fallback = lookup("default environment", m.DefaultEnvironment)
	}

	return NewRegistry(bases, m.Scales, items, logger), NewEnvironmentTable(entries, fallback, logger)
}
