package petsprite

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// TextureRegion describes a sprite's sub-rectangle within an atlas page.
type TextureRegion struct {
	Page      uint16 // atlas page index
	X, Y      uint16 // top-left corner within the page
	Width     uint16 // packed width (may differ from OriginalW if trimmed)
	Height    uint16 // packed height (may differ from OriginalH if trimmed)
	OriginalW uint16 // untrimmed width as authored
	OriginalH uint16 // untrimmed height as authored
	OffsetX   int16  // horizontal trim offset
	OffsetY   int16  // vertical trim offset
	Rotated   bool   // stored 90 degrees clockwise in the page
}

// Atlas holds the page images of a TexturePacker export and its named regions.
// It is read-only after LoadAtlas returns.
type Atlas struct {
	Pages   []*ebiten.Image
	regions map[string]TextureRegion
}

// Has reports whether the atlas defines a region with the given name.
func (a *Atlas) Has(name string) bool {
	_, ok := a.regions[name]
	return ok
}

// Len returns the number of named regions.
func (a *Atlas) Len() int {
	return len(a.regions)
}

// Asset returns the named region bound to its page image. The second result
// is false when the name is unknown or its page was not supplied; the
// returned asset is then the magenta placeholder.
func (a *Atlas) Asset(name string) (Asset, bool) {
	r, ok := a.regions[name]
	if !ok {
		return placeholderAsset(name), false
	}
	idx := int(r.Page)
	if idx >= len(a.Pages) || a.Pages[idx] == nil {
		return placeholderAsset(name), false
	}
	return Asset{Name: name, Region: r, Page: a.Pages[idx]}, true
}

var (
	magentaOnce  sync.Once
	magentaImage *ebiten.Image
)

func ensureMagentaImage() *ebiten.Image {
	magentaOnce.Do(func() {
		magentaImage = ebiten.NewImage(1, 1)
		magentaImage.Fill(color.RGBA{R: 255, G: 0, B: 255, A: 255})
	})
	return magentaImage
}

// magentaPlaceholderPage never collides with a real page index.
const magentaPlaceholderPage = 0xFFFF

// placeholderAsset stands in for art that is referenced but missing.
func placeholderAsset(name string) Asset {
	return Asset{
		Name: name,
		Region: TextureRegion{
			Page:      magentaPlaceholderPage,
			Width:     1,
			Height:    1,
			OriginalW: 1,
			OriginalH: 1,
		},
		Page: ensureMagentaImage(),
	}
}

// LoadAtlas parses TexturePacker JSON and associates the given page images.
// Both the hash format (a single "frames" object) and the array format (a
// "textures" list with per-page frames) are accepted.
func LoadAtlas(jsonData []byte, pages []*ebiten.Image) (*Atlas, error) {
	var probe struct {
		Frames   json.RawMessage `json:"frames"`
		Textures json.RawMessage `json:"textures"`
	}
	if err := json.Unmarshal(jsonData, &probe); err != nil {
		return nil, fmt.Errorf("petsprite: parse atlas: %w", err)
	}

	atlas := &Atlas{
		Pages:   pages,
		regions: make(map[string]TextureRegion),
	}

	switch {
	case probe.Textures != nil:
		var textures []jsonTexturePage
		if err := json.Unmarshal(probe.Textures, &textures); err != nil {
			return nil, fmt.Errorf("petsprite: parse atlas textures: %w", err)
		}
		for i, tex := range textures {
			atlas.addFrames(tex.Frames, uint16(i))
		}
	case probe.Frames != nil:
		var frames map[string]jsonFrame
		if err := json.Unmarshal(probe.Frames, &frames); err != nil {
			return nil, fmt.Errorf("petsprite: parse atlas frames: %w", err)
		}
		atlas.addFrames(frames, 0)
	default:
		return nil, fmt.Errorf("petsprite: atlas has neither \"frames\" nor \"textures\"")
	}
	return atlas, nil
}

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonSize struct {
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Frame            jsonRect `json:"frame"`
	Rotated          bool     `json:"rotated"`
	SpriteSourceSize jsonRect `json:"spriteSourceSize"`
	SourceSize       jsonSize `json:"sourceSize"`
}

type jsonTexturePage struct {
	Image  string               `json:"image"`
	Frames map[string]jsonFrame `json:"frames"`
}

func (a *Atlas) addFrames(frames map[string]jsonFrame, page uint16) {
	for name, f := range frames {
		a.regions[name] = TextureRegion{
			Page:      page,
			X:         uint16(f.Frame.X),
			Y:         uint16(f.Frame.Y),
			Width:     uint16(f.Frame.W),
			Height:    uint16(f.Frame.H),
			OriginalW: uint16(f.SourceSize.W),
			OriginalH: uint16(f.SourceSize.H),
			OffsetX:   int16(f.SpriteSourceSize.X),
			OffsetY:   int16(f.SpriteSourceSize.Y),
			Rotated:   f.Rotated,
		}
	}
}

// subImage cuts r out of page. Rotated regions are returned as stored.
func subImage(page *ebiten.Image, r TextureRegion) *ebiten.Image {
	w, h := int(r.Width), int(r.Height)
	if r.Rotated {
		w, h = h, w
	}
	rect := image.Rect(int(r.X), int(r.Y), int(r.X)+w, int(r.Y)+h)
	return page.SubImage(rect).(*ebiten.Image)
}
