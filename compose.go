package petsprite

import (
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// Compositor turns a base sprite and its item layers into one image. Layers
// arrive already sorted in draw order. treatment is nil unless the result
// must be color-transformed (dead stage). Implementations must be
// deterministic: the same inputs always produce the same pixels.
type Compositor interface {
	Compose(base Asset, layers []ItemLayer, treatment *ColorMatrix) *ebiten.Image
}

// CanvasCompositor draws layers onto an offscreen canvas the size of the
// base sprite's authored bounds.
type CanvasCompositor struct{}

// Compose implements Compositor.
func (CanvasCompositor) Compose(base Asset, layers []ItemLayer, treatment *ColorMatrix) *ebiten.Image {
	w := max(int(base.Region.OriginalW), 1)
	h := max(int(base.Region.OriginalH), 1)
	canvas := ebiten.NewImage(w, h)

	drawAsset(canvas, base, Vec2{}, Vec2{1, 1})
	for _, l := range layers {
		drawAsset(canvas, l.Source, l.Offset, l.Scale)
	}

	if treatment == nil {
		return canvas
	}
	muted := ebiten.NewImage(w, h)
	drawWithMatrix(muted, canvas, *treatment)
	canvas.Deallocate()
	return muted
}

// drawAsset draws a at offset with the given scale, honoring trim offsets
// and rotated packing.
func drawAsset(dst *ebiten.Image, a Asset, offset, scale Vec2) {
	src := a.Image()
	if src == nil {
		return
	}
	sx, sy := scale.X, scale.Y
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	var op ebiten.DrawImageOptions
	if a.Region.Rotated {
		op.GeoM.Rotate(-math.Pi / 2)
		op.GeoM.Translate(0, float64(a.Region.Width))
	}
	op.GeoM.Translate(float64(a.Region.OffsetX), float64(a.Region.OffsetY))
	op.GeoM.Scale(sx, sy)
	op.GeoM.Translate(offset.X, offset.Y)
	op.Filter = ebiten.FilterNearest
	dst.DrawImage(src, &op)
}

// sortLayers orders layers by DrawOrder, then ItemID, so equal draw orders
// still composite deterministically.
func sortLayers(layers []ItemLayer) {
	sort.SliceStable(layers, func(i, j int) bool {
		if layers[i].DrawOrder != layers[j].DrawOrder {
			return layers[i].DrawOrder < layers[j].DrawOrder
		}
		return layers[i].ItemID < layers[j].ItemID
	})
}
