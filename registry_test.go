package petsprite

import (
	"errors"
	"strings"
	"testing"
)

func TestRegistryBaseAsset(t *testing.T) {
	reg := testRegistry()
	for s := StageEgg; s <= StageDead; s++ {
		a, err := reg.BaseAsset(s)
		if err != nil {
			t.Errorf("BaseAsset(%v): %v", s, err)
		}
		if a.Name != s.String()+".png" {
			t.Errorf("BaseAsset(%v) = %q", s, a.Name)
		}
	}
}

func TestRegistryBaseAssetOutOfRangeLogs(t *testing.T) {
	logger, buf := captureLogger()
	reg := NewRegistry([]Asset{testAsset("egg.png", 1, 1)}, nil, nil, logger)
	a, err := reg.BaseAsset(99)
	if !errors.Is(err, ErrStageOutOfRange) {
		t.Errorf("err = %v, want ErrStageOutOfRange", err)
	}
	if !a.IsZero() {
		t.Error("failed lookup should return the empty sentinel")
	}
	if !strings.Contains(buf.String(), "error: base asset for stage 99 (table has 1): life stage out of range") {
		t.Errorf("missing error log in %q", buf.String())
	}
	if strings.Contains(buf.String(), "petsprite: ") {
		t.Errorf("logged error repeats the logger prefix: %q", buf.String())
	}
	if want := "petsprite: base asset for stage 99 (table has 1): life stage out of range"; err.Error() != want {
		t.Errorf("err = %q, want %q", err.Error(), want)
	}
}

func TestRegistryStageScale(t *testing.T) {
	reg := testRegistry()
	if got := reg.StageScale(StageEgg); got != 0.30 {
		t.Errorf("StageScale(egg) = %v, want 0.30", got)
	}
	if got := reg.StageScale(42); got != 1 {
		t.Errorf("StageScale(42) = %v, want 1", got)
	}
}

func TestRegistryItems(t *testing.T) {
	logger, buf := captureLogger()
	reg := NewRegistry(nil, nil, []ItemLayer{
		{ItemID: "a", DrawOrder: 1},
		{ItemID: "a", DrawOrder: 5},
		{ItemID: ""},
	}, logger)
	l, ok := reg.ItemLayer("a")
	if !ok || l.DrawOrder != 5 {
		t.Errorf("ItemLayer(a) = %+v, %v; want later duplicate", l, ok)
	}
	if _, ok := reg.ItemLayer("zzz"); ok {
		t.Error("unknown item reported present")
	}
	if reg.ItemCount() != 1 {
		t.Errorf("ItemCount = %d, want 1", reg.ItemCount())
	}
	for _, want := range []string{"duplicate item layer \"a\"", "empty id"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("logs missing %q", want)
		}
	}
}

func TestRegistryCopiesInput(t *testing.T) {
	bases := []Asset{testAsset("egg.png", 1, 1)}
	reg := NewRegistry(bases, nil, nil, discardLogger())
	bases[0].Name = "changed"
	if a, _ := reg.BaseAsset(StageEgg); a.Name != "egg.png" {
		t.Errorf("registry saw caller mutation: %q", a.Name)
	}
}

func TestEnvironmentTable(t *testing.T) {
	logger, buf := captureLogger()
	envs := NewEnvironmentTable(map[EnvironmentKey]Asset{
		{BiomeBeach, PhaseDusk}: testAsset("beach_dusk.png", 4, 4),
	}, testAsset("default.png", 4, 4), logger)

	if a, ok := envs.Lookup(BiomeBeach, PhaseDusk); !ok || a.Name != "beach_dusk.png" {
		t.Errorf("Lookup(beach, dusk) = %q, %v", a.Name, ok)
	}
	if _, ok := envs.Lookup(BiomeSnow, PhaseDay); ok {
		t.Error("Lookup(snow, day) should miss")
	}
	if a := envs.Asset(BiomeSnow, PhaseDay); a.Name != "default.png" {
		t.Errorf("Asset(snow, day) = %q, want default.png", a.Name)
	}
	if !strings.Contains(buf.String(), "no environment asset for snow/day") {
		t.Errorf("missing fallback warning in %q", buf.String())
	}
}

func TestEnvironmentTableNoDefault(t *testing.T) {
	logger, buf := captureLogger()
	envs := NewEnvironmentTable(nil, Asset{}, logger)
	if !envs.Asset(BiomeMeadow, PhaseDay).IsZero() {
		t.Error("table without default should return the empty sentinel")
	}
	if !strings.Contains(buf.String(), "no default asset") {
		t.Errorf("missing load warning in %q", buf.String())
	}
}

func TestEnumNames(t *testing.T) {
	for b := BiomeMeadow; b <= BiomeSnow; b++ {
		if got, err := ParseBiome(b.String()); err != nil || got != b {
			t.Errorf("ParseBiome(%q) = %v, %v", b, got, err)
		}
	}
	for p := PhaseDawn; p <= PhaseNight; p++ {
		if got, err := ParseTimePhase(p.String()); err != nil || got != p {
			t.Errorf("ParseTimePhase(%q) = %v, %v", p, got, err)
		}
	}
	for s := SlotHat; s <= SlotCostume; s++ {
		if got, err := ParseItemSlot(s.String()); err != nil || got != s {
			t.Errorf("ParseItemSlot(%q) = %v, %v", s, got, err)
		}
	}
	if Biome(9).String() != "Biome(9)" || TimePhase(9).String() != "TimePhase(9)" {
		t.Error("out of range enum names")
	}
	if got := (EnvironmentKey{BiomeForest, PhaseNight}).String(); got != "env|forest|night" {
		t.Errorf("EnvironmentKey = %q", got)
	}
}
