package petsprite

import (
	"errors"
	"fmt"
	"log"
	"os"
)

// ErrStageOutOfRange is returned when a life stage has no entry in the base
// asset table. It is a configuration error, not a content gap.
var ErrStageOutOfRange = errors.New("life stage out of range")

// Registry holds the static per-stage and per-item tables. It is immutable
// after NewRegistry and safe for concurrent reads without locking.
type Registry struct {
	bases  []Asset
	scales [numLifeStages]float64
	items  map[string]ItemLayer
	logger *log.Logger
}

// NewRegistry builds a registry from a life-stage indexed base asset list, a
// life-stage indexed scale list and the item layer table.
//
// Tables that are not exactly one entry per stage are logged but accepted.
// Missing scales default to 1. Stages beyond the end of bases fail at lookup.
func NewRegistry(bases []Asset, scales []float64, items []ItemLayer, logger *log.Logger) *Registry {
	if logger == nil {
		logger = newDefaultLogger()
	}
	r := &Registry{
		bases:  append([]Asset(nil), bases...),
		items:  make(map[string]ItemLayer, len(items)),
		logger: logger,
	}
	if len(bases) != numLifeStages {
		logger.Printf("warning: base asset table has %d entries, want %d", len(bases), numLifeStages)
	}
	if len(scales) != numLifeStages {
		logger.Printf("warning: stage scale table has %d entries, want %d", len(scales), numLifeStages)
	}
	for i := range r.scales {
		r.scales[i] = 1
		if i < len(scales) {
			r.scales[i] = scales[i]
		}
	}
	for _, it := range items {
		if it.ItemID == "" {
			logger.Printf("warning: item layer with empty id ignored")
			continue
		}
		if _, dup := r.items[it.ItemID]; dup {
			logger.Printf("warning: duplicate item layer %q, later entry wins", it.ItemID)
		}
		r.items[it.ItemID] = it
	}
	return r
}

// BaseAsset returns the base sprite for stage. An invalid stage, or one past
// the end of the configured table, logs and returns the empty Asset with an
// error wrapping ErrStageOutOfRange.
func (r *Registry) BaseAsset(stage LifeStage) (Asset, error) {
	if !stage.Valid() || int(stage) >= len(r.bases) {
		msg := fmt.Sprintf("base asset for stage %d (table has %d)", int(stage), len(r.bases))
		r.logger.Printf("error: %s: %v", msg, ErrStageOutOfRange)
		return Asset{}, fmt.Errorf("petsprite: %s: %w", msg, ErrStageOutOfRange)
	}
	return r.bases[stage], nil
}

// StageScale returns the display scale for stage, or 1 for invalid stages.
func (r *Registry) StageScale(stage LifeStage) float64 {
	if !stage.Valid() {
		return 1
	}
	return r.scales[stage]
}

// ItemLayer returns the layer configured for id. Unknown ids report false
// and simply contribute nothing to a composition.
func (r *Registry) ItemLayer(id string) (ItemLayer, bool) {
	l, ok := r.items[id]
	return l, ok
}

// ItemCount returns the number of configured item layers.
func (r *Registry) ItemCount() int {
	return len(r.items)
}

func newDefaultLogger() *log.Logger {
	return log.New(os.Stderr, "petsprite: ", log.LstdFlags)
}
