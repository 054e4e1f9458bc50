// Package orientation maps between the physical cube layout (white up,
// green front) and the logical layout the user holds the cube in.
//
// A selection of front and top colors defines a rigid rotation of the
// cube. Rotating every physical face normal and classifying the result
// gives the face permutation; comparing the rotated in-plane axes with the
// logical face's own axes gives how many clockwise quarter turns each
// face's 3x3 grid undergoes.
package orientation

import (
	"fmt"
	"math"

	"github.com/cockroachdb/errors"

	"github.com/SeamusWaldron/lettercube/internal/facelet"
	"github.com/SeamusWaldron/lettercube/internal/geometry"
)

// ErrInvalidOrientation is returned when front and top lie on the same axis.
var ErrInvalidOrientation = errors.New("orientation: front and top must be adjacent faces")

// AxisTolerance is the minimum dot product for two unit axes to count as
// equal when detecting grid rotation.
const AxisTolerance = 0.98

var (
	axisZ = geometry.Vec{Z: 1}
	axisY = geometry.Vec{Y: 1}
)

// ComputeRotation returns the rotation taking the physical front face to
// the viewer (+Z) and the physical top face to +Y.
func ComputeRotation(front, top facelet.Face) (geometry.Rotation, error) {
	if !front.Valid() || !top.Valid() {
		return geometry.Identity, errors.Wrapf(ErrInvalidOrientation, "front %d top %d", front, top)
	}
	if facelet.SameAxis(front, top) {
		return geometry.Identity, errors.Wrapf(ErrInvalidOrientation, "front %s top %s", front, top)
	}

	q1 := geometry.FromUnitVectors(geometry.BasisOf(front).Normal, axisZ)
	up := geometry.Rotate(q1, geometry.BasisOf(top).Normal)
	angle := math.Pi/2 - math.Atan2(up.Y, up.X)
	return geometry.Then(q1, geometry.FromAxisAngle(axisZ, angle)), nil
}

// Mapping is the face permutation and per-face grid rotation produced by
// an orientation. The zero value is not usable; see Identity.
type Mapping struct {
	front, top facelet.Face

	oldToOriented [facelet.NumFaces]facelet.Face
	orientedToOld [facelet.NumFaces]facelet.Face
	// steps is indexed by physical face.
	steps [facelet.NumFaces]int
}

// New returns the mapping for the given physical front and top faces.
func New(front, top facelet.Face) (Mapping, error) {
	q, err := ComputeRotation(front, top)
	if err != nil {
		return Mapping{}, err
	}
	return FromRotation(q), nil
}

// FromColors is New keyed by the colors of the chosen faces.
func FromColors(front, top facelet.Color) (Mapping, error) {
	return New(front.Face(), top.Face())
}

// Identity returns the mapping for white top, green front.
func Identity() Mapping {
	m := Mapping{front: facelet.F, top: facelet.U}
	for _, f := range facelet.Faces {
		m.oldToOriented[f] = f
		m.orientedToOld[f] = f
	}
	return m
}

// FromRotation derives the mapping from an arbitrary cube rotation.
func FromRotation(q geometry.Rotation) Mapping {
	var m Mapping
	for _, f := range facelet.Faces {
		b := geometry.BasisOf(f)
		to := geometry.Classify(geometry.Rotate(q, b.Normal))
		m.oldToOriented[f] = to
		m.orientedToOld[to] = f
		m.steps[f] = gridSteps(geometry.Rotate(q, b.U), geometry.Rotate(q, b.V), geometry.BasisOf(to))
	}
	m.front = m.orientedToOld[facelet.F]
	m.top = m.orientedToOld[facelet.U]
	return m
}

// gridSteps compares the rotated axes u, v with the target basis and
// returns the clockwise quarter turns between them, or 0 if none fits.
func gridSteps(u, v geometry.Vec, target geometry.Basis) int {
	candidates := [4][2]geometry.Vec{
		{target.U, target.V},
		{target.V, geometry.Neg(target.U)},
		{geometry.Neg(target.U), geometry.Neg(target.V)},
		{geometry.Neg(target.V), target.U},
	}
	for k, c := range candidates {
		if geometry.Dot(u, c[0]) > AxisTolerance && geometry.Dot(v, c[1]) > AxisTolerance {
			return k
		}
	}
	return 0
}

// RotateIndexCW rotates a grid index by steps clockwise quarter turns:
// (row, col) becomes (col, 2-row) per step. Negative steps turn
// counter-clockwise.
func RotateIndexCW(index, steps int) int {
	r, c := index/3, index%3
	for n := ((steps % 4) + 4) % 4; n > 0; n-- {
		r, c = c, 2-r
	}
	return r*3 + c
}

// ToOriented converts a physical facelet to the logical facelet the user
// sees at that spot.
func (m Mapping) ToOriented(id facelet.ID) facelet.ID {
	return facelet.ID{
		Face:  m.oldToOriented[id.Face],
		Index: uint8(RotateIndexCW(int(id.Index), m.steps[id.Face])),
	}
}

// ToPhysical is the inverse of ToOriented.
func (m Mapping) ToPhysical(id facelet.ID) facelet.ID {
	old := m.orientedToOld[id.Face]
	return facelet.ID{
		Face:  old,
		Index: uint8(RotateIndexCW(int(id.Index), 4-m.steps[old])),
	}
}

// Front returns the physical face held towards the viewer.
func (m Mapping) Front() facelet.Face { return m.front }

// Top returns the physical face held up.
func (m Mapping) Top() facelet.Face { return m.top }

// Steps returns the clockwise quarter turns applied to the physical face's grid.
func (m Mapping) Steps(physical facelet.Face) int { return m.steps[physical] }

// OrientedFace returns where a physical face ends up.
func (m Mapping) OrientedFace(physical facelet.Face) facelet.Face {
	return m.oldToOriented[physical]
}

// PhysicalFace returns which physical face occupies a logical position.
func (m Mapping) PhysicalFace(oriented facelet.Face) facelet.Face {
	return m.orientedToOld[oriented]
}

// IsIdentity reports whether the mapping changes nothing.
func (m Mapping) IsIdentity() bool {
	for _, f := range facelet.Faces {
		if m.oldToOriented[f] != f || m.steps[f] != 0 {
			return false
		}
	}
	return true
}

func (m Mapping) String() string {
	return fmt.Sprintf("front=%s top=%s", m.front.Color().Name(), m.top.Color().Name())
}

// Selection is a valid front/top pair.
type Selection struct {
	Front facelet.Face
	Top   facelet.Face
}

// All returns the 24 valid selections.
func All() []Selection {
	out := make([]Selection, 0, 24)
	for _, front := range facelet.Faces {
		for _, top := range facelet.Faces {
			if !facelet.SameAxis(front, top) {
				out = append(out, Selection{Front: front, Top: top})
			}
		}
	}
	return out
}
