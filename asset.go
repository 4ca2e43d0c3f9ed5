package petsprite

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// Asset is a single named sprite: an atlas region bound to its page. The
// zero value is the empty sentinel returned alongside lookup errors.
type Asset struct {
	Name   string
	Region TextureRegion
	Page   *ebiten.Image
}

// IsZero reports whether a is the empty sentinel.
func (a Asset) IsZero() bool {
	return a.Page == nil && a.Name == ""
}

// Size returns the untrimmed authored size of the sprite.
func (a Asset) Size() Vec2 {
	return Vec2{float64(a.Region.OriginalW), float64(a.Region.OriginalH)}
}

// Image returns the sprite's pixels as a sub-image of its page, or nil for
// the empty sentinel.
func (a Asset) Image() *ebiten.Image {
	if a.Page == nil {
		return nil
	}
	if a.Region.Page == magentaPlaceholderPage {
		return a.Page
	}
	return subImage(a.Page, a.Region)
}

// ItemLayer describes how one cosmetic item is drawn over a base sprite.
type ItemLayer struct {
	ItemID    string
	Slot      ItemSlot
	Source    Asset
	Offset    Vec2 // relative to the base sprite's top-left corner
	Scale     Vec2 // zero components mean 1
	DrawOrder int  // lower draws first
}

// ComposedAsset is the cached result of resolving a VisualState. It is
// immutable: every field is unexported and slice accessors return copies.
// The image is shared by all holders and must be treated as read-only; use
// DrawTo to render it.
type ComposedAsset struct {
	key       string
	image     *ebiten.Image
	base      Asset
	layers    []ItemLayer
	size      Vec2
	scale     float64
	stage     LifeStage
	items     []string
	treatment *ColorMatrix
}

// Key returns the canonical key the asset is cached under.
func (c *ComposedAsset) Key() string { return c.key }

// Image returns the composed pixels. Callers must not draw onto it.
func (c *ComposedAsset) Image() *ebiten.Image { return c.image }

// Base returns the life-stage base sprite the composition started from.
func (c *ComposedAsset) Base() Asset { return c.base }

// Layers returns a copy of the item layers in draw order.
func (c *ComposedAsset) Layers() []ItemLayer { return slices.Clone(c.layers) }

// Size returns the display size: the base sprite size times AppliedScale.
func (c *ComposedAsset) Size() Vec2 { return c.size }

// AppliedScale returns the life-stage scale factor baked into Size.
func (c *ComposedAsset) AppliedScale() float64 { return c.scale }

// Stage returns the life stage the asset was composed for.
func (c *ComposedAsset) Stage() LifeStage { return c.stage }

// EquippedItemIDs returns a copy of the sorted item ids that are part of the
// cache key. Items with no configured layer are still listed.
func (c *ComposedAsset) EquippedItemIDs() []string { return slices.Clone(c.items) }

// Muted reports whether the dead-stage color treatment was applied.
func (c *ComposedAsset) Muted() bool { return c.treatment != nil }

// Treatment returns the color matrix applied to the composition, if any.
func (c *ComposedAsset) Treatment() (ColorMatrix, bool) {
	if c.treatment == nil {
		return ColorMatrix{}, false
	}
	return *c.treatment, true
}

// DrawTo draws the composition onto dst scaled to Size. op may be nil; its
// GeoM is applied after the size scaling.
func (c *ComposedAsset) DrawTo(dst *ebiten.Image, op *ebiten.DrawImageOptions) {
	if c.image == nil {
		return
	}
	var local ebiten.DrawImageOptions
	if op != nil {
		local = *op
	}
	b := c.image.Bounds()
	var geo ebiten.GeoM
	if b.Dx() > 0 && b.Dy() > 0 {
		geo.Scale(c.size.X/float64(b.Dx()), c.size.Y/float64(b.Dy()))
	}
	geo.Concat(local.GeoM)
	local.GeoM = geo
	dst.DrawImage(c.image, &local)
}
