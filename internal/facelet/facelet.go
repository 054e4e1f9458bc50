// Package facelet names the 54 stickers of a 3x3 cube.
//
// Faces are ordered U R F D L B. Each face has 9 facelets indexed
// row-major as seen when looking straight at that face:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// A facelet position is the flat index faceOffset[face] + index (0..53).
package facelet

import (
	"strconv"

	"github.com/cockroachdb/errors"
)

// ErrInvalidID is returned when a facelet identifier cannot be parsed.
var ErrInvalidID = errors.New("facelet: invalid facelet id")

// Face is one of the six cube faces.
type Face uint8

const (
	U Face = iota // Up
	R             // Right
	F             // Front
	D             // Down
	L             // Left
	B             // Back
)

// NumFaces is the number of cube faces.
const NumFaces = 6

// Faces lists the faces in position order.
var Faces = [NumFaces]Face{U, R, F, D, L, B}

func (f Face) String() string {
	switch f {
	case U:
		return "U"
	case R:
		return "R"
	case F:
		return "F"
	case D:
		return "D"
	case L:
		return "L"
	case B:
		return "B"
	default:
		return "?"
	}
}

// Valid reports whether f names a face.
func (f Face) Valid() bool {
	return f < NumFaces
}

// Opposite returns the face on the other side of the cube.
func (f Face) Opposite() Face {
	switch f {
	case U:
		return D
	case D:
		return U
	case R:
		return L
	case L:
		return R
	case F:
		return B
	default:
		return F
	}
}

// SameAxis reports whether a and b are equal or opposite.
func SameAxis(a, b Face) bool {
	return a == b || a.Opposite() == b
}

// Color returns the sticker color of f on a solved cube.
func (f Face) Color() Color {
	return Color(f)
}

// ParseFace parses a single face letter (U R F D L B, case-insensitive).
func ParseFace(b byte) (Face, bool) {
	switch b {
	case 'U', 'u':
		return U, true
	case 'R', 'r':
		return R, true
	case 'F', 'f':
		return F, true
	case 'D', 'd':
		return D, true
	case 'L', 'l':
		return L, true
	case 'B', 'b':
		return B, true
	}
	return 0, false
}

// ID identifies a facelet by face and grid index.
type ID struct {
	Face  Face
	Index uint8
}

// Center is the grid index of a face's center facelet.
const Center = 4

// NewID builds an ID, validating face and index.
func NewID(face Face, index int) (ID, error) {
	if !face.Valid() || index < 0 || index > 8 {
		return ID{}, errors.Wrapf(ErrInvalidID, "%v%d", face, index)
	}
	return ID{Face: face, Index: uint8(index)}, nil
}

// MustID is NewID for static tables; it panics on bad input.
func MustID(face Face, index int) ID {
	id, err := NewID(face, index)
	if err != nil {
		panic(err)
	}
	return id
}

// ParseID parses the "<face><index>" form, e.g. "U5".
func ParseID(s string) (ID, error) {
	if len(s) != 2 {
		return ID{}, errors.Wrapf(ErrInvalidID, "%q", s)
	}
	face, ok := ParseFace(s[0])
	if !ok {
		return ID{}, errors.Wrapf(ErrInvalidID, "%q: unknown face", s)
	}
	index, err := strconv.Atoi(s[1:])
	if err != nil || index > 8 {
		return ID{}, errors.Wrapf(ErrInvalidID, "%q: index out of range", s)
	}
	return ID{Face: face, Index: uint8(index)}, nil
}

// MustParseID is ParseID for literals in tables and tests.
func MustParseID(s string) ID {
	id, err := ParseID(s)
	if err != nil {
		panic(err)
	}
	return id
}

func (id ID) String() string {
	return id.Face.String() + strconv.Itoa(int(id.Index))
}

// Row returns the grid row (0..2).
func (id ID) Row() int { return int(id.Index) / 3 }

// Col returns the grid column (0..2).
func (id ID) Col() int { return int(id.Index) % 3 }

// IsCenter reports whether id is a center facelet.
func (id ID) IsCenter() bool {
	return id.Index == Center
}

// Position returns the flat position of id.
func (id ID) Position() Position {
	return Position(int(id.Face)*9 + int(id.Index))
}

// Position is a flat facelet index 0..53.
type Position int

// NumPositions is the number of facelets on a cube.
const NumPositions = 54

// At returns the position of face/index.
func At(face Face, index int) Position {
	return Position(int(face)*9 + index)
}

// Valid reports whether p is in range.
func (p Position) Valid() bool {
	return p >= 0 && p < NumPositions
}

// ID returns the facelet identifier at p.
func (p Position) ID() ID {
	return ID{Face: Face(p / 9), Index: uint8(p % 9)}
}

// Face returns the face p lies on.
func (p Position) Face() Face {
	return Face(p / 9)
}

func (p Position) String() string {
	return p.ID().String()
}

// All returns every facelet in position order.
func All() []ID {
	ids := make([]ID, 0, NumPositions)
	for p := Position(0); p < NumPositions; p++ {
		ids = append(ids, p.ID())
	}
	return ids
}
