package petsprite

import (
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- Test JSON fixtures ---

const hashAtlasJSON = `{
  "frames": {
    "adult.png": {
      "frame": {"x": 0, "y": 0, "w": 64, "h": 64},
      "rotated": false,
      "trimmed": false,
      "spriteSourceSize": {"x": 0, "y": 0, "w": 64, "h": 64},
      "sourceSize": {"w": 64, "h": 64}
    },
    "hat_01.png": {
      "frame": {"x": 64, "y": 0, "w": 30, "h": 14},
      "rotated": false,
      "trimmed": true,
      "spriteSourceSize": {"x": 1, "y": 2, "w": 30, "h": 14},
      "sourceSize": {"w": 32, "h": 16}
    },
    "cos_03.png": {
      "frame": {"x": 96, "y": 0, "w": 48, "h": 32},
      "rotated": true,
      "trimmed": false,
      "spriteSourceSize": {"x": 0, "y": 0, "w": 48, "h": 32},
      "sourceSize": {"w": 32, "h": 48}
    }
  },
  "meta": {"image": "pet.png", "size": {"w": 256, "h": 128}}
}`

const arrayAtlasJSON = `{
  "textures": [
    {"image": "pet-0.png", "frames": {
      "egg.png": {"frame": {"x": 0, "y": 0, "w": 16, "h": 16}, "sourceSize": {"w": 16, "h": 16}}
    }},
    {"image": "pet-1.png", "frames": {
      "forest_night.png": {"frame": {"x": 8, "y": 4, "w": 64, "h": 32}, "sourceSize": {"w": 64, "h": 32}}
    }}
  ]
}`

func TestLoadAtlasHashFormat(t *testing.T) {
	page := ebiten.NewImage(256, 128)
	atlas, err := LoadAtlas([]byte(hashAtlasJSON), []*ebiten.Image{page})
	if err != nil {
		t.Fatalf("LoadAtlas: %v", err)
	}
	if atlas.Len() != 3 {
		t.Errorf("Len = %d, want 3", atlas.Len())
	}

	hat, ok := atlas.Asset("hat_01.png")
	if !ok {
		t.Fatal("hat_01.png missing")
	}
	r := hat.Region
	if r.X != 64 || r.Width != 30 || r.Height != 14 || r.OffsetX != 1 || r.OffsetY != 2 {
		t.Errorf("hat region = %+v", r)
	}
	if hat.Size() != (Vec2{32, 16}) {
		t.Errorf("hat Size = %v, want {32 16}", hat.Size())
	}
	if hat.Page != page {
		t.Error("hat should reference page 0")
	}
}

func TestLoadAtlasRotatedSubImage(t *testing.T) {
	page := ebiten.NewImage(256, 128)
	atlas, err := LoadAtlas([]byte(hashAtlasJSON), []*ebiten.Image{page})
	if err != nil {
		t.Fatal(err)
	}
	cos, _ := atlas.Asset("cos_03.png")
	if !cos.Region.Rotated {
		t.Fatal("cos_03.png should be rotated")
	}
	b := cos.Image().Bounds()
	if b.Dx() != 32 || b.Dy() != 48 {
		t.Errorf("rotated sub-image = %dx%d, want 32x48", b.Dx(), b.Dy())
	}
}

func TestLoadAtlasArrayFormat(t *testing.T) {
	p0 := ebiten.NewImage(16, 16)
	p1 := ebiten.NewImage(128, 64)
	atlas, err := LoadAtlas([]byte(arrayAtlasJSON), []*ebiten.Image{p0, p1})
	if err != nil {
		t.Fatalf("LoadAtlas: %v", err)
	}
	env, ok := atlas.Asset("forest_night.png")
	if !ok {
		t.Fatal("forest_night.png missing")
	}
	if env.Region.Page != 1 || env.Page != p1 {
		t.Errorf("forest_night page = %d, want 1", env.Region.Page)
	}
}

func TestAtlasMissingRegionIsPlaceholder(t *testing.T) {
	atlas, err := LoadAtlas([]byte(hashAtlasJSON), []*ebiten.Image{ebiten.NewImage(256, 128)})
	if err != nil {
		t.Fatal(err)
	}
	a, ok := atlas.Asset("dragon.png")
	if ok {
		t.Error("dragon.png should be reported missing")
	}
	if a.Region.Page != magentaPlaceholderPage || a.Size() != (Vec2{1, 1}) {
		t.Errorf("placeholder = %+v", a.Region)
	}
	if a.Name != "dragon.png" || a.Image() == nil {
		t.Error("placeholder should keep the name and have an image")
	}
}

func TestAtlasMissingPageIsPlaceholder(t *testing.T) {
	atlas, err := LoadAtlas([]byte(arrayAtlasJSON), []*ebiten.Image{ebiten.NewImage(16, 16)})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := atlas.Asset("forest_night.png"); ok {
		t.Error("region on an unsupplied page should report missing")
	}
	if !atlas.Has("forest_night.png") {
		t.Error("Has should still see the region")
	}
}

func TestLoadAtlasErrors(t *testing.T) {
	tests := []struct {
		name, json, want string
	}{
		{"malformed", `{`, "parse atlas"},
		{"no frames", `{"meta": {}}`, "neither"},
		{"bad frames", `{"frames": []}`, "parse atlas frames"},
		{"bad textures", `{"textures": {}}`, "parse atlas textures"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadAtlas([]byte(tt.json), nil)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestAssetZero(t *testing.T) {
	if !(Asset{}).IsZero() {
		t.Error("zero Asset should be IsZero")
	}
	if (Asset{}).Image() != nil {
		t.Error("zero Asset Image should be nil")
	}
	if testAsset("x", 1, 1).IsZero() {
		t.Error("real asset reported IsZero")
	}
}
