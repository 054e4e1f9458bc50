package cube

import "github.com/SeamusWaldron/lettercube/internal/facelet"

// Corner slots.
const (
	URF = iota
	UFL
	ULB
	UBR
	DFR
	DLF
	DBL
	DRB
	NumCorners
)

// Edge slots.
const (
	UR = iota
	UF
	UL
	UB
	DR
	DF
	DL
	DB
	FR
	FL
	BL
	BR
	NumEdges
)

// CornerNames and EdgeNames label the slots for display.
var (
	CornerNames = [NumCorners]string{"URF", "UFL", "ULB", "UBR", "DFR", "DLF", "DBL", "DRB"}
	EdgeNames   = [NumEdges]string{"UR", "UF", "UL", "UB", "DR", "DF", "DL", "DB", "FR", "FL", "BL", "BR"}
)

func at(f facelet.Face, i int) facelet.Position { return facelet.At(f, i) }

// CornerFacelets lists, per corner slot, its stickers starting with the
// U/D sticker and continuing clockwise around the corner.
var CornerFacelets = [NumCorners][3]facelet.Position{
	URF: {at(facelet.U, 8), at(facelet.R, 0), at(facelet.F, 2)},
	UFL: {at(facelet.U, 6), at(facelet.F, 0), at(facelet.L, 2)},
	ULB: {at(facelet.U, 0), at(facelet.L, 0), at(facelet.B, 2)},
	UBR: {at(facelet.U, 2), at(facelet.B, 0), at(facelet.R, 2)},
	DFR: {at(facelet.D, 2), at(facelet.F, 8), at(facelet.R, 6)},
	DLF: {at(facelet.D, 0), at(facelet.L, 8), at(facelet.F, 6)},
	DBL: {at(facelet.D, 6), at(facelet.B, 8), at(facelet.L, 6)},
	DRB: {at(facelet.D, 8), at(facelet.R, 8), at(facelet.B, 6)},
}

// EdgeFacelets lists, per edge slot, its two stickers; the first one is the
// sticker whose orientation is tracked.
var EdgeFacelets = [NumEdges][2]facelet.Position{
	UR: {at(facelet.U, 5), at(facelet.R, 1)},
	UF: {at(facelet.U, 7), at(facelet.F, 1)},
	UL: {at(facelet.U, 3), at(facelet.L, 1)},
	UB: {at(facelet.U, 1), at(facelet.B, 1)},
	DR: {at(facelet.D, 5), at(facelet.R, 7)},
	DF: {at(facelet.D, 1), at(facelet.F, 7)},
	DL: {at(facelet.D, 3), at(facelet.L, 7)},
	DB: {at(facelet.D, 7), at(facelet.B, 7)},
	FR: {at(facelet.F, 5), at(facelet.R, 3)},
	FL: {at(facelet.F, 3), at(facelet.L, 5)},
	BL: {at(facelet.B, 5), at(facelet.L, 3)},
	BR: {at(facelet.B, 3), at(facelet.R, 5)},
}

// CornerColors gives each reference corner piece's colors in the order of
// its home slot's stickers.
var CornerColors = [NumCorners][3]facelet.Color{
	URF: {facelet.White, facelet.Red, facelet.Green},
	UFL: {facelet.White, facelet.Green, facelet.Orange},
	ULB: {facelet.White, facelet.Orange, facelet.Blue},
	UBR: {facelet.White, facelet.Blue, facelet.Red},
	DFR: {facelet.Yellow, facelet.Green, facelet.Red},
	DLF: {facelet.Yellow, facelet.Orange, facelet.Green},
	DBL: {facelet.Yellow, facelet.Blue, facelet.Orange},
	DRB: {facelet.Yellow, facelet.Red, facelet.Blue},
}

// EdgeColors gives each reference edge piece's colors.
var EdgeColors = [NumEdges][2]facelet.Color{
	UR: {facelet.White, facelet.Red},
	UF: {facelet.White, facelet.Green},
	UL: {facelet.White, facelet.Orange},
	UB: {facelet.White, facelet.Blue},
	DR: {facelet.Yellow, facelet.Red},
	DF: {facelet.Yellow, facelet.Green},
	DL: {facelet.Yellow, facelet.Orange},
	DB: {facelet.Yellow, facelet.Blue},
	FR: {facelet.Green, facelet.Red},
	FL: {facelet.Green, facelet.Orange},
	BL: {facelet.Blue, facelet.Orange},
	BR: {facelet.Blue, facelet.Red},
}

type kind uint8

const (
	kindCenter kind = iota
	kindCorner
	kindEdge
)

// slotRef locates a position inside the cubie tables.
type slotRef struct {
	kind  kind
	slot  uint8
	local uint8
}

var positionIndex [facelet.NumPositions]slotRef

func init() {
	for p := range positionIndex {
		positionIndex[p] = slotRef{kind: kindCenter}
	}
	for slot, ps := range CornerFacelets {
		for k, p := range ps {
			positionIndex[p] = slotRef{kind: kindCorner, slot: uint8(slot), local: uint8(k)}
		}
	}
	for slot, ps := range EdgeFacelets {
		for k, p := range ps {
			positionIndex[p] = slotRef{kind: kindEdge, slot: uint8(slot), local: uint8(k)}
		}
	}
}
