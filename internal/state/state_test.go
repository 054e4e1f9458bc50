package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/lettercube/internal/facelet"
)

func TestMissingFileIsEmpty(t *testing.T) {
	sf, err := NewStateFile(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)
	assert.False(t, sf.Completed())

	front, top, ok := sf.Orientation()
	assert.False(t, ok)
	assert.Equal(t, facelet.Green, front)
	assert.Equal(t, facelet.White, top)
}

func TestOrientationPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	sf, err := NewStateFile(path)
	require.NoError(t, err)
	require.NoError(t, sf.SetOrientation(facelet.Red, facelet.Yellow))

	again, err := NewStateFile(path)
	require.NoError(t, err)
	front, top, ok := again.Orientation()
	require.True(t, ok)
	assert.Equal(t, facelet.Red, front)
	assert.Equal(t, facelet.Yellow, top)
	assert.True(t, again.Completed())

	require.NoError(t, again.ClearOrientation())
	_, _, ok = again.Orientation()
	assert.False(t, ok)
}

func TestCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0644))
	_, err := NewStateFile(path)
	assert.Error(t, err)
}

func TestUnknownColorFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"front":"pink","top":"white"}`), 0644))
	sf, err := NewStateFile(path)
	require.NoError(t, err)
	_, _, ok := sf.Orientation()
	assert.False(t, ok)
}
