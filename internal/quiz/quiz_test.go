package quiz

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/lettercube/internal/facelet"
	"github.com/SeamusWaldron/lettercube/internal/pieces"
)

// fakeLabels is a Labeler keyed by physical id.
type fakeLabels map[string]string

func (f fakeLabels) LabelAt(id facelet.ID) string { return f[id.String()] }

func TestCheckFacelet(t *testing.T) {
	r, err := CheckFacelet("a", " A ")
	require.NoError(t, err)
	assert.True(t, r.Correct)
	assert.Equal(t, "A", r.Expected)

	r, err = CheckFacelet("A", "b")
	require.NoError(t, err)
	assert.False(t, r.Correct)

	_, err = CheckFacelet("", "a")
	assert.ErrorIs(t, err, ErrNoLabel)
}

func TestFaceletDrill(t *testing.T) {
	d := NewFaceletDrill(fakeLabels{"F1": "A", "U7": "B"}, rand.New(rand.NewSource(1)))

	_, err := d.Check("A")
	assert.ErrorIs(t, err, ErrNoLabel)

	prev := facelet.ID{}
	for i := 0; i < 10; i++ {
		id, err := d.Next()
		require.NoError(t, err)
		assert.Contains(t, []string{"F1", "U7"}, id.String())
		if i > 0 {
			assert.NotEqual(t, prev, id)
		}
		prev = id
	}

	cur, ok := d.Current()
	require.True(t, ok)
	want := map[string]string{"F1": "A", "U7": "B"}[cur.String()]
	r, err := d.Check(want)
	require.NoError(t, err)
	assert.True(t, r.Correct)
}

func TestFaceletDrillAllowRepeats(t *testing.T) {
	d := NewFaceletDrill(fakeLabels{"F1": "A", "U7": "B"}, rand.New(rand.NewSource(1)), DrillAllowRepeats())

	repeats := 0
	prev := facelet.ID{}
	for i := 0; i < 50; i++ {
		id, err := d.Next()
		require.NoError(t, err)
		if i > 0 && id == prev {
			repeats++
		}
		prev = id
	}
	assert.Positive(t, repeats)
}

func TestFaceletDrillWithoutLabels(t *testing.T) {
	d := NewFaceletDrill(fakeLabels{}, rand.New(rand.NewSource(1)))
	_, err := d.Next()
	assert.ErrorIs(t, err, ErrNoLabel)
}

func TestTrainerPrefersReadyPieces(t *testing.T) {
	cat := pieces.Discover()
	src := fakeLabels{"F1": "A", "U7": "B", "F5": "C", "R3": "D"}
	tr := NewTrainer(pieces.Edge, cat, src, rand.New(rand.NewSource(3)))

	for i := 0; i < 20; i++ {
		p, err := tr.Next()
		require.NoError(t, err)
		assert.Contains(t, []string{"F1+U7", "F5+R3"}, p.Key())
		assert.True(t, tr.Ready(p))
	}
}

func TestTrainerNeverRepeats(t *testing.T) {
	cat := pieces.Discover()
	tr := NewTrainer(pieces.Corner, cat, fakeLabels{}, rand.New(rand.NewSource(5)))

	last := ""
	for i := 0; i < 50; i++ {
		p, err := tr.Next()
		require.NoError(t, err)
		assert.Equal(t, pieces.Corner, p.Kind)
		assert.NotEqual(t, last, p.Key())
		last = p.Key()
	}
}

func TestTrainerSingleReadyPieceRepeats(t *testing.T) {
	cat := pieces.Discover()
	tr := NewTrainer(pieces.Edge, cat, fakeLabels{"F1": "A", "U7": "B"}, rand.New(rand.NewSource(5)))
	for i := 0; i < 3; i++ {
		p, err := tr.Next()
		require.NoError(t, err)
		assert.Equal(t, "F1+U7", p.Key())
	}
}

func TestTrainerCheck(t *testing.T) {
	cat := pieces.Discover()
	tr := NewTrainer(pieces.Edge, cat, fakeLabels{"F1": "A", "U7": "B"}, rand.New(rand.NewSource(1)))

	_, err := tr.Check([]string{"a", "b"})
	assert.ErrorIs(t, err, ErrNoPieces)

	p, err := tr.Next()
	require.NoError(t, err)
	require.Equal(t, "F1+U7", p.Key())
	assert.Equal(t, []string{"A", "B"}, tr.Expected())

	g, err := tr.Check([]string{" a", "b "})
	require.NoError(t, err)
	assert.True(t, g.Passed())
	assert.Equal(t, 2, g.Total)

	g, err = tr.Check([]string{"a"})
	require.NoError(t, err)
	assert.False(t, g.Passed())
	assert.Equal(t, 1, g.Correct)
	assert.Equal(t, []int{1}, g.Wrong)
}

func TestTrainerUnlabelledStickerIsWrong(t *testing.T) {
	cat := pieces.Discover()
	tr := NewTrainer(pieces.Edge, cat, fakeLabels{}, rand.New(rand.NewSource(1)))
	_, err := tr.Next()
	require.NoError(t, err)

	g, err := tr.Check([]string{"", ""})
	require.NoError(t, err)
	assert.Equal(t, 0, g.Correct)
	assert.Equal(t, []int{0, 1}, g.Wrong)
}
