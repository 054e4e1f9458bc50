// Package cube models a 3x3 cube as cubie permutation and orientation
// vectors. Facelet colors are derived from the vectors on demand.
package cube

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/SeamusWaldron/lettercube/internal/facelet"
)

// ErrInvalidState is returned by Validate.
var ErrInvalidState = errors.New("cube: invalid state")

// State holds which piece sits in each slot and how it is twisted.
// CornerPerm[slot] is the reference corner occupying slot, CornerOri its
// twist (0..2); the edge vectors work the same way with flips (0..1).
type State struct {
	CornerPerm [NumCorners]uint8
	CornerOri  [NumCorners]uint8
	EdgePerm   [NumEdges]uint8
	EdgeOri    [NumEdges]uint8
}

// New returns a solved state.
func New() *State {
	s := &State{}
	s.Reset()
	return s
}

// Reset returns the state to solved.
func (s *State) Reset() {
	for i := range s.CornerPerm {
		s.CornerPerm[i] = uint8(i)
		s.CornerOri[i] = 0
	}
	for i := range s.EdgePerm {
		s.EdgePerm[i] = uint8(i)
		s.EdgeOri[i] = 0
	}
}

// Clone returns an independent copy.
func (s *State) Clone() *State {
	c := *s
	return &c
}

// IsSolved reports whether every piece is home and untwisted.
func (s *State) IsSolved() bool {
	for i := range s.CornerPerm {
		if s.CornerPerm[i] != uint8(i) || s.CornerOri[i] != 0 {
			return false
		}
	}
	for i := range s.EdgePerm {
		if s.EdgePerm[i] != uint8(i) || s.EdgeOri[i] != 0 {
			return false
		}
	}
	return true
}

// generator describes one clockwise quarter turn. Slot a of each cycle
// receives the piece from slot b, b from c, c from d and d from a; the
// twist and flip deltas are indexed by destination slot.
type generator struct {
	corners [4]uint8
	edges   [4]uint8
	twist   [NumCorners]uint8
	flip    [NumEdges]uint8
}

var generators = [facelet.NumFaces]generator{
	facelet.U: {
		corners: [4]uint8{URF, UBR, ULB, UFL},
		edges:   [4]uint8{UR, UB, UL, UF},
	},
	facelet.R: {
		corners: [4]uint8{URF, DFR, DRB, UBR},
		edges:   [4]uint8{UR, FR, DR, BR},
		twist:   [NumCorners]uint8{URF: 2, UBR: 1, DFR: 1, DRB: 2},
	},
	facelet.F: {
		corners: [4]uint8{URF, UFL, DLF, DFR},
		edges:   [4]uint8{UF, FL, DF, FR},
		twist:   [NumCorners]uint8{URF: 1, UFL: 2, DFR: 2, DLF: 1},
		flip:    [NumEdges]uint8{UF: 1, DF: 1, FR: 1, FL: 1},
	},
	facelet.D: {
		corners: [4]uint8{DFR, DLF, DBL, DRB},
		edges:   [4]uint8{DR, DF, DL, DB},
	},
	facelet.L: {
		corners: [4]uint8{UFL, ULB, DBL, DLF},
		edges:   [4]uint8{UL, BL, DL, FL},
		twist:   [NumCorners]uint8{UFL: 1, ULB: 2, DLF: 2, DBL: 1},
	},
	facelet.B: {
		corners: [4]uint8{UBR, DRB, DBL, ULB},
		edges:   [4]uint8{UB, BR, DB, BL},
		twist:   [NumCorners]uint8{ULB: 1, UBR: 2, DBL: 2, DRB: 1},
		flip:    [NumEdges]uint8{UB: 1, DB: 1, BL: 1, BR: 1},
	},
}

func cycle4[T any](arr []T, c [4]uint8) {
	a, b, cc, d := c[0], c[1], c[2], c[3]
	tmp := arr[a]
	arr[a] = arr[b]
	arr[b] = arr[cc]
	arr[cc] = arr[d]
	arr[d] = tmp
}

func (s *State) quarter(f facelet.Face) {
	g := &generators[f]

	cycle4(s.CornerPerm[:], g.corners)
	cycle4(s.CornerOri[:], g.corners)
	cycle4(s.EdgePerm[:], g.edges)
	cycle4(s.EdgeOri[:], g.edges)

	for i := range s.CornerOri {
		s.CornerOri[i] = (s.CornerOri[i] + g.twist[i]) % 3
	}
	for i := range s.EdgeOri {
		s.EdgeOri[i] = (s.EdgeOri[i] + g.flip[i]) % 2
	}
}

// Turn applies the clockwise quarter turn of face quarterTurns times.
// Negative counts turn counter-clockwise.
func (s *State) Turn(face facelet.Face, quarterTurns int) {
	if !face.Valid() {
		return
	}
	n := ((quarterTurns % 4) + 4) % 4
	for i := 0; i < n; i++ {
		s.quarter(face)
	}
}

// ParseToken splits a move token such as "R", "U'", "F2" or "B2'" into a
// face and a clockwise quarter-turn count.
func ParseToken(token string) (facelet.Face, int, bool) {
	// Lower-case letters are wide turns, which are not modelled.
	if token == "" || token[0] < 'A' || token[0] > 'Z' {
		return 0, 0, false
	}
	face, ok := facelet.ParseFace(token[0])
	if !ok {
		return 0, 0, false
	}
	switch token[1:] {
	case "":
		return face, 1, true
	case "'":
		return face, 3, true
	case "2", "2'":
		return face, 2, true
	}
	return 0, 0, false
}

// ApplyMove applies a single move token. Unrecognised tokens leave the
// state untouched and return false.
func (s *State) ApplyMove(token string) bool {
	face, turns, ok := ParseToken(strings.TrimSpace(token))
	if !ok {
		return false
	}
	s.Turn(face, turns)
	return true
}

// ColorAt returns the color currently visible at p.
func (s *State) ColorAt(p facelet.Position) facelet.Color {
	ref := positionIndex[p]
	switch ref.kind {
	case kindCorner:
		piece := s.CornerPerm[ref.slot]
		ori := s.CornerOri[ref.slot]
		return CornerColors[piece][(ref.local+3-ori)%3]
	case kindEdge:
		piece := s.EdgePerm[ref.slot]
		ori := s.EdgeOri[ref.slot]
		return EdgeColors[piece][(ref.local+2-ori)%2]
	default:
		return p.Face().Color()
	}
}

// Colors returns the colors of all 54 positions.
func (s *State) Colors() [facelet.NumPositions]facelet.Color {
	var out [facelet.NumPositions]facelet.Color
	for p := range out {
		out[p] = s.ColorAt(facelet.Position(p))
	}
	return out
}

// FaceletSource returns, for every position, the solved-state position
// whose sticker is now shown there.
func (s *State) FaceletSource() [facelet.NumPositions]facelet.Position {
	var out [facelet.NumPositions]facelet.Position
	for p := range out {
		out[p] = facelet.Position(p)
	}
	for slot := range s.CornerPerm {
		piece, ori := s.CornerPerm[slot], s.CornerOri[slot]
		for k := 0; k < 3; k++ {
			out[CornerFacelets[slot][k]] = CornerFacelets[piece][(k+3-int(ori))%3]
		}
	}
	for slot := range s.EdgePerm {
		piece, ori := s.EdgePerm[slot], s.EdgeOri[slot]
		for k := 0; k < 2; k++ {
			out[EdgeFacelets[slot][k]] = EdgeFacelets[piece][(k+2-int(ori))%2]
		}
	}
	return out
}

// Validate checks that the vectors describe a reachable cube.
func (s *State) Validate() error {
	if err := checkPerm(s.CornerPerm[:]); err != nil {
		return errors.Wrap(err, "corners")
	}
	if err := checkPerm(s.EdgePerm[:]); err != nil {
		return errors.Wrap(err, "edges")
	}

	twist := 0
	for i, o := range s.CornerOri {
		if o > 2 {
			return errors.Wrapf(ErrInvalidState, "corner %s twist %d", CornerNames[i], o)
		}
		twist += int(o)
	}
	if twist%3 != 0 {
		return errors.Wrapf(ErrInvalidState, "corner twist sum %d", twist)
	}

	flip := 0
	for i, o := range s.EdgeOri {
		if o > 1 {
			return errors.Wrapf(ErrInvalidState, "edge %s flip %d", EdgeNames[i], o)
		}
		flip += int(o)
	}
	if flip%2 != 0 {
		return errors.Wrapf(ErrInvalidState, "edge flip sum %d", flip)
	}

	if parity(s.CornerPerm[:]) != parity(s.EdgePerm[:]) {
		return errors.Wrap(ErrInvalidState, "permutation parity mismatch")
	}
	return nil
}

func checkPerm(p []uint8) error {
	seen := make([]bool, len(p))
	for i, v := range p {
		if int(v) >= len(p) {
			return errors.Wrapf(ErrInvalidState, "slot %d holds %d", i, v)
		}
		if seen[v] {
			return errors.Wrapf(ErrInvalidState, "piece %d appears twice", v)
		}
		seen[v] = true
	}
	return nil
}

// parity returns 1 for odd permutations.
func parity(p []uint8) int {
	n := 0
	for i := 0; i < len(p); i++ {
		for j := i + 1; j < len(p); j++ {
			if p[i] > p[j] {
				n++
			}
		}
	}
	return n % 2
}

// String renders the unfolded net of the cube.
func (s *State) String() string {
	return Net(s.Colors())
}

// Net renders a color array as an unfolded cube: U on top, L F R B across
// the middle and D below.
func Net(colors [facelet.NumPositions]facelet.Color) string {
	var b strings.Builder
	row := func(f facelet.Face, r int) {
		for c := 0; c < 3; c++ {
			fmt.Fprintf(&b, "%s ", colors[facelet.At(f, r*3+c)])
		}
	}

	for r := 0; r < 3; r++ {
		b.WriteString("      ")
		row(facelet.U, r)
		b.WriteString("\n")
	}
	for r := 0; r < 3; r++ {
		for _, f := range []facelet.Face{facelet.L, facelet.F, facelet.R, facelet.B} {
			row(f, r)
		}
		b.WriteString("\n")
	}
	for r := 0; r < 3; r++ {
		b.WriteString("      ")
		row(facelet.D, r)
		b.WriteString("\n")
	}
	return b.String()
}
