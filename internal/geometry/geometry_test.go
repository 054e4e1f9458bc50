package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/lettercube/internal/facelet"
)

func TestBasesAreRightHandedAndOutward(t *testing.T) {
	for _, f := range facelet.Faces {
		b := BasisOf(f)
		assert.InDelta(t, 0, Dot(b.U, b.V), Epsilon, "%v: u and v must be orthogonal", f)
		// Looking at a face head-on, u x v points into the cube.
		assert.True(t, Equal(Cross(b.U, b.V), Neg(b.Normal), Epsilon), "%v: u x v should be -normal", f)
	}
}

func TestTileCenter(t *testing.T) {
	assert.Equal(t, Vec{X: -1, Y: 1.5, Z: -1}, TileCenter(facelet.MustParseID("U0")))
	assert.Equal(t, Vec{X: 1, Y: -1, Z: 1.5}, TileCenter(facelet.MustParseID("F8")))
	assert.Equal(t, Vec{X: 1.5, Y: 1, Z: 1}, TileCenter(facelet.MustParseID("R0")))
}

func TestLocateInvertsTileCenter(t *testing.T) {
	for _, id := range facelet.All() {
		assert.Equal(t, id, Locate(TileCenter(id)), "round trip of %v", id)
	}
}

func TestFaceByNormal(t *testing.T) {
	for _, f := range facelet.Faces {
		got, ok := FaceByNormal(BasisOf(f).Normal)
		require.True(t, ok)
		assert.Equal(t, f, got)
	}
	_, ok := FaceByNormal(Vec{X: 1, Y: 1})
	assert.False(t, ok)
}

func TestClassifyTieBreak(t *testing.T) {
	assert.Equal(t, facelet.F, Classify(Vec{X: 1, Y: 1, Z: 1}))
	assert.Equal(t, facelet.U, Classify(Vec{X: 1, Y: 1}))
	assert.Equal(t, facelet.L, Classify(Vec{X: -2, Y: 1, Z: 1}))
	assert.Equal(t, facelet.B, Classify(Vec{Z: -0.5}))
}

func TestFromAxisAngle(t *testing.T) {
	q := FromAxisAngle(Vec{Z: 1}, math.Pi/2)
	assert.True(t, Equal(Vec{Y: 1}, Rotate(q, Vec{X: 1}), Epsilon))
	assert.True(t, Equal(Vec{X: -1}, Rotate(q, Vec{Y: 1}), Epsilon))
}

func TestFromUnitVectors(t *testing.T) {
	cases := []struct{ from, to Vec }{
		{Vec{X: 1}, Vec{Z: 1}},
		{Vec{Y: 1}, Vec{Z: 1}},
		{Vec{Z: -1}, Vec{Z: 1}},
		{Vec{X: -1}, Vec{X: 1}},
		{Vec{Z: 1}, Vec{Z: 1}},
	}
	for _, c := range cases {
		q := FromUnitVectors(c.from, c.to)
		assert.True(t, Equal(c.to, Rotate(q, c.from), Epsilon), "%v -> %v", c.from, c.to)
	}
}

func TestThenComposesInOrder(t *testing.T) {
	quarterZ := FromAxisAngle(Vec{Z: 1}, math.Pi/2)
	quarterX := FromAxisAngle(Vec{X: 1}, math.Pi/2)
	q := Then(quarterZ, quarterX)
	// X -> Y under Z, then Y -> Z under X.
	assert.True(t, Equal(Vec{Z: 1}, Rotate(q, Vec{X: 1}), Epsilon))
}
