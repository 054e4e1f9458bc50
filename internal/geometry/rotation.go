package geometry

import (
	"math"

	"github.com/westphae/quaternion"
)

// Rotation is a unit quaternion.
type Rotation = quaternion.Quaternion

// Identity is the rotation that leaves every vector unchanged.
var Identity = Rotation{W: 1}

// FromAxisAngle returns the rotation of angle radians about axis.
func FromAxisAngle(axis Vec, angle float64) Rotation {
	a := Normalize(axis)
	s := math.Sin(angle / 2)
	return Rotation{W: math.Cos(angle / 2), X: a.X * s, Y: a.Y * s, Z: a.Z * s}
}

// FromUnitVectors returns the shortest rotation carrying unit vector from
// onto unit vector to. Antiparallel inputs rotate half a turn about an
// axis perpendicular to from.
func FromUnitVectors(from, to Vec) Rotation {
	r := Dot(from, to) + 1
	var q Rotation
	if r < Epsilon {
		if math.Abs(from.X) > math.Abs(from.Z) {
			q = Rotation{W: 0, X: -from.Y, Y: from.X, Z: 0}
		} else {
			q = Rotation{W: 0, X: 0, Y: -from.Z, Z: from.Y}
		}
	} else {
		c := Cross(from, to)
		q = Rotation{W: r, X: c.X, Y: c.Y, Z: c.Z}
	}
	return unit(q)
}

// Then returns the rotation that applies first and then second.
func Then(first, second Rotation) Rotation {
	return unit(quaternion.Prod(second, first))
}

// Rotate applies q to v as the active rotation q*v*conj(q).
func Rotate(q Rotation, v Vec) Vec {
	return q.RotateVec3(v)
}

func unit(q Rotation) Rotation {
	if quaternion.Norm(q) == 0 {
		return Identity
	}
	return quaternion.Unit(q)
}
