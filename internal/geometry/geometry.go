// Package geometry holds the single geometric definition of the cube:
// per-face basis vectors, sticker centers and re-projection of a point onto
// a face's 3x3 grid. Piece discovery and orientation remapping are both
// derived from these bases.
//
// The cube is centered at the origin with edge length 3 and one unit per
// sticker. +X is right, +Y is up and +Z points at the viewer (front).
package geometry

import (
	"math"

	"github.com/westphae/quaternion"

	"github.com/SeamusWaldron/lettercube/internal/facelet"
)

// Vec is a 3D vector.
type Vec = quaternion.Vec3

// Epsilon is the tolerance used when comparing or rounding coordinates.
const Epsilon = 1e-6

// HalfSize is the distance from the cube center to a face plane.
const HalfSize = 1.5

// Basis describes a face: its outward normal and the directions of
// increasing column (U) and increasing row (V) when the face is viewed
// head-on.
type Basis struct {
	Face   facelet.Face
	Normal Vec
	U      Vec
	V      Vec
}

var bases = [facelet.NumFaces]Basis{
	facelet.U: {Face: facelet.U, Normal: Vec{Y: 1}, U: Vec{X: 1}, V: Vec{Z: 1}},
	facelet.R: {Face: facelet.R, Normal: Vec{X: 1}, U: Vec{Z: -1}, V: Vec{Y: -1}},
	facelet.F: {Face: facelet.F, Normal: Vec{Z: 1}, U: Vec{X: 1}, V: Vec{Y: -1}},
	facelet.D: {Face: facelet.D, Normal: Vec{Y: -1}, U: Vec{X: 1}, V: Vec{Z: -1}},
	facelet.L: {Face: facelet.L, Normal: Vec{X: -1}, U: Vec{Z: 1}, V: Vec{Y: -1}},
	facelet.B: {Face: facelet.B, Normal: Vec{Z: -1}, U: Vec{X: -1}, V: Vec{Y: -1}},
}

// BasisOf returns the basis of face f.
func BasisOf(f facelet.Face) Basis {
	return bases[f]
}

// FaceByNormal returns the face whose normal equals n.
func FaceByNormal(n Vec) (facelet.Face, bool) {
	for _, b := range bases {
		if Equal(b.Normal, n, Epsilon) {
			return b.Face, true
		}
	}
	return 0, false
}

// Classify returns the face whose axis carries the largest component of v.
// Ties are broken Z first, then Y, then X.
func Classify(v Vec) facelet.Face {
	ax, ay, az := math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)
	switch {
	case az >= ax && az >= ay:
		if v.Z >= 0 {
			return facelet.F
		}
		return facelet.B
	case ay >= ax && ay >= az:
		if v.Y >= 0 {
			return facelet.U
		}
		return facelet.D
	default:
		if v.X >= 0 {
			return facelet.R
		}
		return facelet.L
	}
}

// TileCenter returns the 3D center of the sticker id.
func TileCenter(id facelet.ID) Vec {
	b := bases[id.Face]
	p := Scale(b.Normal, HalfSize)
	p = Add(p, Scale(b.U, float64(id.Col()-1)))
	return Add(p, Scale(b.V, float64(id.Row()-1)))
}

// IndexOn projects p onto face f's grid and returns the nearest cell.
func IndexOn(f facelet.Face, p Vec) int {
	b := bases[f]
	col := gridCoord(Dot(p, b.U)) + 1
	row := gridCoord(Dot(p, b.V)) + 1
	return row*3 + col
}

// Locate returns the sticker whose center is nearest to the surface point p.
func Locate(p Vec) facelet.ID {
	f := Classify(p)
	return facelet.ID{Face: f, Index: uint8(IndexOn(f, p))}
}

func gridCoord(x float64) int {
	c := int(math.Floor(x + Epsilon + 0.5))
	if c < -1 {
		return -1
	}
	if c > 1 {
		return 1
	}
	return c
}

// Add returns a+b.
func Add(a, b Vec) Vec {
	return Vec{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z}
}

// Scale returns v*s.
func Scale(v Vec, s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Neg returns -v.
func Neg(v Vec) Vec {
	return Scale(v, -1)
}

// Dot returns the dot product.
func Dot(a, b Vec) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a x b.
func Cross(a, b Vec) Vec {
	return Vec{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// Length returns |v|.
func Length(v Vec) float64 {
	return math.Sqrt(Dot(v, v))
}

// Normalize returns v scaled to unit length; the zero vector is returned unchanged.
func Normalize(v Vec) Vec {
	l := Length(v)
	if l == 0 {
		return v
	}
	return Scale(v, 1/l)
}

// Equal compares component-wise within eps.
func Equal(a, b Vec, eps float64) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

// Sign returns -1, 0 or 1.
func Sign(x int) float64 {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
