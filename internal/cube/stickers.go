package cube

import "github.com/SeamusWaldron/lettercube/internal/facelet"

// Stickers is a plain 54-sticker cube turned by moving facelet rings.
// It knows nothing about pieces, which makes it a useful cross-check for
// State.
type Stickers [facelet.NumPositions]facelet.Color

// NewStickers returns a solved sticker cube.
func NewStickers() *Stickers {
	s := &Stickers{}
	for p := range s {
		s[p] = facelet.Position(p).Face().Color()
	}
	return s
}

// strip is three stickers on one face, listed in cycle order.
type strip struct {
	face facelet.Face
	idx  [3]int
}

// rings lists, per face, the four strips that move on a clockwise turn;
// strip n's stickers move to strip n+1.
var rings = [facelet.NumFaces][4]strip{
	facelet.U: {
		{facelet.F, [3]int{0, 1, 2}},
		{facelet.L, [3]int{0, 1, 2}},
		{facelet.B, [3]int{0, 1, 2}},
		{facelet.R, [3]int{0, 1, 2}},
	},
	facelet.D: {
		{facelet.F, [3]int{6, 7, 8}},
		{facelet.R, [3]int{6, 7, 8}},
		{facelet.B, [3]int{6, 7, 8}},
		{facelet.L, [3]int{6, 7, 8}},
	},
	facelet.F: {
		{facelet.U, [3]int{6, 7, 8}},
		{facelet.R, [3]int{0, 3, 6}},
		{facelet.D, [3]int{2, 1, 0}},
		{facelet.L, [3]int{8, 5, 2}},
	},
	facelet.B: {
		{facelet.U, [3]int{2, 1, 0}},
		{facelet.L, [3]int{0, 3, 6}},
		{facelet.D, [3]int{6, 7, 8}},
		{facelet.R, [3]int{8, 5, 2}},
	},
	facelet.R: {
		{facelet.U, [3]int{2, 5, 8}},
		{facelet.B, [3]int{6, 3, 0}},
		{facelet.D, [3]int{2, 5, 8}},
		{facelet.F, [3]int{2, 5, 8}},
	},
	facelet.L: {
		{facelet.U, [3]int{0, 3, 6}},
		{facelet.F, [3]int{0, 3, 6}},
		{facelet.D, [3]int{0, 3, 6}},
		{facelet.B, [3]int{8, 5, 2}},
	},
}

// Turn applies the clockwise quarter turn of face quarterTurns times.
func (s *Stickers) Turn(face facelet.Face, quarterTurns int) {
	if !face.Valid() {
		return
	}
	n := ((quarterTurns % 4) + 4) % 4
	for i := 0; i < n; i++ {
		s.rotateFace(face)
		s.cycleRing(face)
	}
}

// rotateFace turns the face's own stickers: 0->2->8->6 and 1->5->7->3.
func (s *Stickers) rotateFace(face facelet.Face) {
	at := func(i int) *facelet.Color { return &s[facelet.At(face, i)] }

	tmp := *at(0)
	*at(0) = *at(6)
	*at(6) = *at(8)
	*at(8) = *at(2)
	*at(2) = tmp

	tmp = *at(1)
	*at(1) = *at(3)
	*at(3) = *at(7)
	*at(7) = *at(5)
	*at(5) = tmp
}

func (s *Stickers) cycleRing(face facelet.Face) {
	r := &rings[face]
	for k := 0; k < 3; k++ {
		pos := func(n int) facelet.Position { return facelet.At(r[n].face, r[n].idx[k]) }
		tmp := s[pos(3)]
		s[pos(3)] = s[pos(2)]
		s[pos(2)] = s[pos(1)]
		s[pos(1)] = s[pos(0)]
		s[pos(0)] = tmp
	}
}

// IsSolved reports whether every face is a single color.
func (s *Stickers) IsSolved() bool {
	for p, c := range s {
		if c != facelet.Position(p).Face().Color() {
			return false
		}
	}
	return true
}

// String renders the unfolded net.
func (s *Stickers) String() string {
	return Net(*s)
}
