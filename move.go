package lettercube

import (
	"math/rand"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/SeamusWaldron/lettercube/internal/cube"
	"github.com/SeamusWaldron/lettercube/internal/facelet"
)

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	CW     Turn = 1  // Clockwise (90 degrees)
	CCW    Turn = -1 // Counter-clockwise (90 degrees)
	Double Turn = 2  // Half turn (180 degrees)
)

// Move is a single outer-layer face turn.
type Move struct {
	Face Face
	Turn Turn
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, U, U', U2
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case CCW:
		suffix = "'"
	case Double:
		suffix = "2"
	}
	return m.Face.String() + suffix
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
	}
	return inv
}

// QuarterTurns returns the equivalent number of clockwise quarter turns.
func (m Move) QuarterTurns() int {
	switch m.Turn {
	case CCW:
		return 3
	case Double:
		return 2
	default:
		return 1
	}
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// ParseMove parses a standard notation string into a Move.
// Examples: R, R', R2, R2'
func ParseMove(s string) (Move, error) {
	face, turns, ok := cube.ParseToken(strings.TrimSpace(s))
	if !ok {
		return Move{}, errors.Wrapf(ErrInvalidNotation, "%q", s)
	}
	m := Move{Face: face, Turn: CW}
	switch turns {
	case 2:
		m.Turn = Double
	case 3:
		m.Turn = CCW
	}
	return m, nil
}

// ParseMoves parses a space-separated sequence of moves. The first invalid
// token fails the whole sequence.
// Example: "R U R' U'"
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))
	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}
	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}
	return strings.Join(parts, " ")
}

// RandomMoves returns n random moves in which no face is turned twice in
// a row. Negative n yields no moves.
func RandomMoves(rng *rand.Rand, n int) []Move {
	if n < 0 {
		n = 0
	}
	turns := [...]Turn{CW, CCW, Double}
	moves := make([]Move, 0, n)
	last := facelet.Face(facelet.NumFaces)
	for len(moves) < n {
		f := facelet.Faces[rng.Intn(facelet.NumFaces)]
		if f == last {
			continue
		}
		last = f
		moves = append(moves, Move{Face: f, Turn: turns[rng.Intn(len(turns))]})
	}
	return moves
}

// SimplifyMoves merges consecutive turns of the same face and drops those
// that cancel out. "R R" becomes "R2", "R R'" disappears.
func SimplifyMoves(moves []Move) []Move {
	out := make([]Move, 0, len(moves))
	for _, m := range moves {
		n := len(out)
		if n == 0 || out[n-1].Face != m.Face {
			out = append(out, m)
			continue
		}
		q := (out[n-1].QuarterTurns() + m.QuarterTurns()) % 4
		if q == 0 {
			out = out[:n-1]
			continue
		}
		out[n-1].Turn = turnFromQuarters(q)
	}
	return out
}

// turnFromQuarters maps 1..3 clockwise quarter turns to a Turn.
func turnFromQuarters(q int) Turn {
	switch q {
	case 2:
		return Double
	case 3:
		return CCW
	default:
		return CW
	}
}
