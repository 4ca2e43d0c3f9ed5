package petsprite

import (
	"slices"
	"strconv"
	"strings"
)

// VisualState is everything that determines how a creature looks: its life
// stage and the item id worn in each slot. An empty id means the slot is
// unequipped.
type VisualState struct {
	Stage     LifeStage
	HatID     string
	FaceID    string
	CostumeID string
}

const (
	keyStageSep = "|"
	keyItemSep  = ","
)

// keyEscaper backslash-escapes the key delimiters inside item ids so distinct
// id sets never share a key.
var keyEscaper = strings.NewReplacer(`\`, `\\`, keyItemSep, `\`+keyItemSep, keyStageSep, `\`+keyStageSep)

// BuildKey returns the canonical cache key for v.
//
// The key is the numeric stage, a '|' and the non-empty item ids sorted
// lexicographically and joined by ','. Slot identity is not part of the key:
// {hat:"A", face:"B"} and {hat:"B", face:"A"} share a key. Egg and dead
// stages never include items. Ids containing '\', ',' or '|' have those
// characters escaped with a backslash.
//
//	Adult, hat_01, cos_03  -> "5|cos_03,hat_01"
//	Adult, "a,b"           -> "5|a\,b"
//	Dead, hat_01           -> "6|"
func BuildKey(v VisualState) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(int(v.Stage)))
	b.WriteString(keyStageSep)
	ids := v.equippedIDs()
	for i, id := range ids {
		if i > 0 {
			b.WriteString(keyItemSep)
		}
		keyEscaper.WriteString(&b, id)
	}
	return b.String()
}

// equippedIDs returns the sorted non-empty item ids that are rendered at v's
// stage.
func (v VisualState) equippedIDs() []string {
	if v.Stage.HidesCosmetics() {
		return nil
	}
	var buf [3]string
	ids := buf[:0]
	for _, id := range [3]string{v.HatID, v.FaceID, v.CostumeID} {
		if id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	slices.Sort(ids)
	return slices.Clone(ids)
}

// slotIDs returns the item ids in slot order, Hat, Face, Costume.
func (v VisualState) slotIDs() [3]string {
	return [3]string{SlotHat: v.HatID, SlotFace: v.FaceID, SlotCostume: v.CostumeID}
}
