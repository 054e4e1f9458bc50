package scheme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/lettercube/internal/facelet"
)

func id(s string) facelet.ID { return facelet.MustParseID(s) }

func TestCanonical(t *testing.T) {
	s := OldPochmann
	assert.Equal(t, id("U5"), s.Canonical(id("R1")))
	assert.Equal(t, id("U0"), s.Canonical(id("B2")))
	assert.Equal(t, id("U0"), s.Canonical(id("L0")))
	assert.Equal(t, id("F1"), s.Canonical(id("F1")))
	assert.Equal(t, id("U4"), s.Canonical(id("U4")))
}

func TestCanonicalIsIdempotent(t *testing.T) {
	for _, sc := range []Scheme{OldPochmann, M2} {
		for _, f := range facelet.All() {
			once := sc.Canonical(f)
			assert.Equal(t, once, sc.Canonical(once), "%s %s", sc, f)
		}
	}
}

func TestLabelable(t *testing.T) {
	s := OldPochmann
	for _, bad := range []string{"U0", "U5", "R1", "B2", "L0", "U4", "D4", "F4", "B4", "R4", "L4"} {
		assert.False(t, s.Labelable(id(bad)), bad)
	}
	for _, ok := range []string{"U1", "U2", "F1", "D1", "R0", "L2"} {
		assert.True(t, s.Labelable(id(ok)), ok)
	}
	assert.Len(t, s.LabelableIDs(), 54-6-5)
}

func TestM2(t *testing.T) {
	s := M2
	assert.True(t, s.Labelable(id("U5")))
	assert.True(t, s.Labelable(id("R1")))
	assert.False(t, s.Labelable(id("D1")))
	assert.False(t, s.Labelable(id("F7")))
	assert.Equal(t, id("D1"), s.Canonical(id("F7")))
	assert.True(t, s.IsBuffer(id("B2")))
}

func TestDisabled(t *testing.T) {
	var names []string
	for _, d := range OldPochmann.Disabled() {
		names = append(names, d.String())
	}
	assert.Equal(t, []string{"U0", "U5", "R1", "L0", "B2"}, names)
}

func TestLookup(t *testing.T) {
	s, err := Lookup("Old-Pochmann")
	require.NoError(t, err)
	assert.Equal(t, OldPochmann, s)

	s, err = Lookup("M2")
	require.NoError(t, err)
	assert.Equal(t, M2, s)

	s, err = Lookup("")
	require.NoError(t, err)
	assert.Equal(t, Default, s)

	_, err = Lookup("speffz")
	assert.ErrorIs(t, err, ErrUnknownScheme)
	assert.Equal(t, []string{"m2", "oldpochmann"}, Names())
}
