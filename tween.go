package petsprite

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// GrowthTween eases the on-screen size of a creature from one composed asset
// to the next, e.g. when a larva molts into its next stage. It only drives
// presentation; cached assets are never modified.
//
// There is no global animation manager: call Update every frame.
type GrowthTween struct {
	w, h *gween.Tween
	size Vec2
	Done bool
}

// NewGrowthTween creates a tween from from.Size() to to.Size(). A nil from
// starts at zero size.
func NewGrowthTween(from, to *ComposedAsset, duration float32, fn ease.TweenFunc) *GrowthTween {
	var start Vec2
	if from != nil {
		start = from.Size()
	}
	end := to.Size()
	return &GrowthTween{
		w:    gween.New(float32(start.X), float32(end.X), duration, fn),
		h:    gween.New(float32(start.Y), float32(end.Y), duration, fn),
		size: start,
	}
}

// Update advances the tween by dt seconds and returns the current size.
func (g *GrowthTween) Update(dt float32) Vec2 {
	if g.Done {
		return g.size
	}
	w, wDone := g.w.Update(dt)
	h, hDone := g.h.Update(dt)
	g.size = Vec2{float64(w), float64(h)}
	g.Done = wDone && hDone
	return g.size
}

// Size returns the size computed by the last Update.
func (g *GrowthTween) Size() Vec2 {
	return g.size
}
