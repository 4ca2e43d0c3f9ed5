package petsprite

import "fmt"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the neutral tint.
var ColorWhite = Color{1, 1, 1, 1}

// Vec2 is a 2D vector used for offsets, scales and sizes.
type Vec2 struct {
	X, Y float64
}

// Scaled returns v with both components multiplied by s.
func (v Vec2) Scaled(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// LifeStage is the discrete phase of a creature's life. The value doubles as
// an index into the per-stage base asset and scale tables.
type LifeStage int

const (
	StageEgg    LifeStage = iota // freshly laid, cosmetics hidden
	StageLarva1                  // first larval stage
	StageLarva2                  // second larval stage
	StageLarva3                  // third larval stage
	StageLarva4                  // fourth larval stage
	StageAdult                   // fully grown
	StageDead                    // dead, rendered muted, cosmetics hidden

	numLifeStages = int(StageDead) + 1
)

var lifeStageNames = [numLifeStages]string{
	"egg", "larva1", "larva2", "larva3", "larva4", "adult", "dead",
}

// Valid reports whether s is one of the seven defined stages.
func (s LifeStage) Valid() bool {
	return s >= StageEgg && s <= StageDead
}

// HidesCosmetics reports whether equipped items are ignored at this stage.
func (s LifeStage) HidesCosmetics() bool {
	return s == StageEgg || s == StageDead
}

func (s LifeStage) String() string {
	if !s.Valid() {
		return fmt.Sprintf("LifeStage(%d)", int(s))
	}
	return lifeStageNames[s]
}

// ParseLifeStage returns the stage with the given lowercase name.
func ParseLifeStage(name string) (LifeStage, error) {
	for i, n := range lifeStageNames {
		if n == name {
			return LifeStage(i), nil
		}
	}
	return 0, fmt.Errorf("petsprite: unknown life stage %q", name)
}

// DefaultStageScales is the display scale applied to the base asset size at
// each life stage, indexed by LifeStage.
var DefaultStageScales = [numLifeStages]float64{0.30, 0.40, 0.55, 0.70, 0.85, 1.00, 1.00}

// ItemSlot identifies where a cosmetic item is worn. A creature carries at
// most one item per slot.
type ItemSlot uint8

const (
	SlotHat     ItemSlot = iota // worn on the head
	SlotFace                    // glasses, masks, face paint
	SlotCostume                 // full-body outfit
)

var itemSlotNames = [...]string{"hat", "face", "costume"}

func (s ItemSlot) String() string {
	if int(s) < len(itemSlotNames) {
		return itemSlotNames[s]
	}
	return fmt.Sprintf("ItemSlot(%d)", s)
}

// ParseItemSlot returns the slot with the given lowercase name.
func ParseItemSlot(name string) (ItemSlot, error) {
	for i, n := range itemSlotNames {
		if n == name {
			return ItemSlot(i), nil
		}
	}
	return 0, fmt.Errorf("petsprite: unknown item slot %q", name)
}
