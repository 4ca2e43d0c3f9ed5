package petsprite

import (
	"bytes"
	"io"
	"log"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- Fixtures shared across tests ---

const (
	testBaseW = 100
	testBaseH = 80
)

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

// syncBuffer is a log sink that is safe to share with background goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func captureLogger() (*log.Logger, *syncBuffer) {
	var buf syncBuffer
	return log.New(&buf, "", 0), &buf
}

// fakeClock advances one millisecond on every read so access order is
// always visible in timestamps.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(time.Millisecond)
	return c.t
}

// countingCompositor records calls without drawing anything.
type countingCompositor struct {
	mu    sync.Mutex
	calls int
	last  []ItemLayer
}

func (c *countingCompositor) Compose(base Asset, layers []ItemLayer, treatment *ColorMatrix) *ebiten.Image {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	c.last = append([]ItemLayer(nil), layers...)
	return nil
}

func (c *countingCompositor) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func testAsset(name string, w, h uint16) Asset {
	return Asset{
		Name:   name,
		Region: TextureRegion{Width: w, Height: h, OriginalW: w, OriginalH: h},
		Page:   ebiten.NewImage(int(w), int(h)),
	}
}

// testRegistry returns seven stage sprites, the default scales and three
// items: hat_01 (order 2), face_02 (order 1), cos_03 (order 0).
func testRegistry() *Registry {
	bases := make([]Asset, numLifeStages)
	for i := range bases {
		bases[i] = testAsset(LifeStage(i).String()+".png", testBaseW, testBaseH)
	}
	items := []ItemLayer{
		{ItemID: "hat_01", Slot: SlotHat, Source: testAsset("hat_01.png", 20, 10), Offset: Vec2{40, 0}, DrawOrder: 2},
		{ItemID: "face_02", Slot: SlotFace, Source: testAsset("face_02.png", 16, 8), Offset: Vec2{42, 20}, DrawOrder: 1},
		{ItemID: "cos_03", Slot: SlotCostume, Source: testAsset("cos_03.png", 60, 40), Offset: Vec2{20, 30}, DrawOrder: 0},
	}
	return NewRegistry(bases, DefaultStageScales[:], items, discardLogger())
}

func testManager(cfg Config, comp Compositor) *Manager {
	opts := []Option{WithLogger(discardLogger())}
	if comp != nil {
		opts = append(opts, WithCompositor(comp))
	}
	envs := NewEnvironmentTable(map[EnvironmentKey]Asset{
		{BiomeForest, PhaseNight}: testAsset("forest_night.png", 32, 32),
	}, testAsset("meadow_day.png", 32, 32), discardLogger())
	return NewManager(cfg, testRegistry(), envs, opts...)
}
