package labels

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/lettercube/internal/facelet"
	"github.com/SeamusWaldron/lettercube/internal/orientation"
	"github.com/SeamusWaldron/lettercube/internal/scheme"
)

func id(s string) facelet.ID { return facelet.MustParseID(s) }

func TestSetNormalizes(t *testing.T) {
	l := New(scheme.OldPochmann)
	require.NoError(t, l.Set(id("F1"), "  a "))
	assert.Equal(t, "A", l.Get(id("F1")))

	require.NoError(t, l.Set(id("F1"), "   "))
	assert.Equal(t, "", l.Get(id("F1")))
	assert.Equal(t, 0, l.Len())
}

func TestSetRejectsCentersAndBuffers(t *testing.T) {
	l := New(scheme.OldPochmann)
	for _, bad := range []string{"U4", "F4", "U5", "R1", "U0", "L0", "B2"} {
		err := l.Set(id(bad), "X")
		assert.ErrorIs(t, err, ErrInvalidTarget, bad)
		assert.ErrorIs(t, l.Delete(id(bad)), ErrInvalidTarget, bad)
	}
	assert.Equal(t, 0, l.Len())
}

func TestGetCanonicalisesAliases(t *testing.T) {
	l := New(scheme.M2)
	require.NoError(t, l.Set(id("U5"), "b"))
	assert.Equal(t, "B", l.Get(id("U5")))
	assert.Equal(t, "", l.Get(id("R1")))
}

func TestCompleteAndMissing(t *testing.T) {
	l := New(scheme.OldPochmann)
	assert.False(t, l.Complete())
	assert.Len(t, l.Missing(), 43)

	for i, target := range l.Missing() {
		require.NoError(t, l.Set(target, string(rune('A'+i%26))))
	}
	assert.True(t, l.Complete())
	assert.Empty(t, l.Missing())
}

func TestImportDropsCentersAndBuffers(t *testing.T) {
	l, err := Import([]byte(`{"U4":"A","U0":"B","F1":" c ","R1":"D","u2":"e","D3":""}`), scheme.OldPochmann)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"F1": "C", "U2": "E"}, l.Strings())
}

func TestImportRejectsMalformedPayloads(t *testing.T) {
	for _, payload := range []string{
		`[]`,
		`"A"`,
		`null`,
		`{"F1": 3}`,
		`{"F1": "A", "F2": null}`,
		`{"X9": "A"}`,
		`{"F1": "A", "f1": "B"}`,
		`{`,
	} {
		_, err := Import([]byte(payload), scheme.OldPochmann)
		assert.ErrorIs(t, err, ErrCorruptData, payload)
	}
}

func TestDecodeCanonicalisesKeys(t *testing.T) {
	raw, err := Decode([]byte(`{"f1":"a","U2":"b"}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"F1": "a", "U2": "b"}, raw)

	for i := 0; i < 20; i++ {
		_, err := Decode([]byte(`{"F1":"A","f1":"B"}`))
		assert.ErrorIs(t, err, ErrCorruptData)
	}
}

func TestExportIsSortedAndIndented(t *testing.T) {
	l := New(scheme.OldPochmann)
	require.NoError(t, l.Set(id("U1"), "a"))
	require.NoError(t, l.Set(id("F1"), "b"))

	out, err := l.Export()
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"F1\": \"B\",\n  \"U1\": \"A\"\n}\n", string(out))

	back, err := Import(out, scheme.OldPochmann)
	require.NoError(t, err)
	assert.Equal(t, l.Strings(), back.Strings())
}

func TestFromStrings(t *testing.T) {
	l, err := FromStrings(map[string]string{"F1": "a", "U4": "Z"}, scheme.OldPochmann)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"F1": "A"}, l.Strings())

	_, err = FromStrings(map[string]string{"F1": " "}, scheme.OldPochmann)
	assert.ErrorIs(t, err, ErrCorruptData)

	_, err = FromStrings(map[string]string{"??": "A"}, scheme.OldPochmann)
	assert.ErrorIs(t, err, ErrCorruptData)
}

func TestMigrateUnderRotation(t *testing.T) {
	m, err := orientation.FromColors(facelet.Red, facelet.White)
	require.NoError(t, err)

	old := map[string]string{
		"U0": "a", // becomes U2
		"F1": "b", // becomes L1
		"U1": "c", // becomes the U5 buffer
		"U4": "d", // center
	}
	l, err := Migrate(old, m, scheme.OldPochmann)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"U2": "A", "L1": "B"}, l.Strings())
}

func TestMigrateIdentityKeepsKeys(t *testing.T) {
	l, err := Migrate(map[string]string{"F1": "A", "D7": "B"}, orientation.Identity(), scheme.OldPochmann)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"F1": "A", "D7": "B"}, l.Strings())
}

func TestCloneIsIndependent(t *testing.T) {
	l := New(scheme.OldPochmann)
	require.NoError(t, l.Set(id("F1"), "A"))
	c := l.Clone()
	require.NoError(t, c.Set(id("F1"), "B"))
	assert.Equal(t, "A", l.Get(id("F1")))

	var decoded map[string]string
	out, err := c.Export()
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "B", decoded["F1"])
}
