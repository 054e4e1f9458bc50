package cube

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/lettercube/internal/facelet"
)

func TestNewIsSolved(t *testing.T) {
	s := New()
	assert.True(t, s.IsSolved())
	require.NoError(t, s.Validate())
	for p := 0; p < facelet.NumPositions; p++ {
		pos := facelet.Position(p)
		assert.Equal(t, pos.Face().Color(), s.ColorAt(pos), pos.String())
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	s := New()
	require.True(t, s.ApplyMove("R"))
	assert.False(t, s.IsSolved())
	require.NoError(t, s.Validate())
}

func TestFourQuarterTurnsAreIdentity(t *testing.T) {
	for _, f := range facelet.Faces {
		s := New()
		for i := 0; i < 4; i++ {
			s.Turn(f, 1)
		}
		assert.True(t, s.IsSolved(), "%s x4", f)
	}
}

func TestMoveThenInverseIsIdentity(t *testing.T) {
	for _, f := range facelet.Faces {
		s := New()
		require.True(t, s.ApplyMove(f.String()))
		require.True(t, s.ApplyMove(f.String()+"'"))
		assert.True(t, s.IsSolved(), "%s %s'", f, f)

		s.ApplyMove(f.String() + "2")
		s.ApplyMove(f.String() + "2'")
		assert.True(t, s.IsSolved(), "%s2 %s2'", f, f)
	}
}

func TestSexyMoveSixTimesIsIdentity(t *testing.T) {
	s := New()
	for i := 0; i < 6; i++ {
		for _, m := range []string{"R", "U", "R'", "U'"} {
			require.True(t, s.ApplyMove(m))
		}
		if i < 5 {
			assert.False(t, s.IsSolved())
		}
	}
	assert.True(t, s.IsSolved())
}

func TestRMovesFrontStickerUp(t *testing.T) {
	s := New()
	s.ApplyMove("R")

	// The F column under U8 travels up.
	assert.Equal(t, facelet.Green, s.ColorAt(facelet.At(facelet.U, 8)))
	assert.Equal(t, facelet.Green, s.ColorAt(facelet.At(facelet.U, 5)))
	assert.Equal(t, facelet.Blue, s.ColorAt(facelet.At(facelet.D, 8)))
	assert.Equal(t, facelet.Yellow, s.ColorAt(facelet.At(facelet.F, 8)))
	assert.Equal(t, facelet.White, s.ColorAt(facelet.At(facelet.B, 0)))
	assert.Equal(t, facelet.White, s.ColorAt(facelet.At(facelet.U, 0)))
	assert.Equal(t, facelet.Red, s.ColorAt(facelet.At(facelet.R, 0)))
}

func TestInvalidTokensAreIgnored(t *testing.T) {
	s := New()
	for _, tok := range []string{"", "X", "r", "R3", "U''", "M"} {
		assert.False(t, s.ApplyMove(tok), tok)
	}
	assert.True(t, s.IsSolved())
}

func TestParseToken(t *testing.T) {
	tests := []struct {
		token string
		face  facelet.Face
		turns int
	}{
		{"U", facelet.U, 1},
		{"R'", facelet.R, 3},
		{"F2", facelet.F, 2},
		{"B2'", facelet.B, 2},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			face, turns, ok := ParseToken(tt.token)
			require.True(t, ok)
			assert.Equal(t, tt.face, face)
			assert.Equal(t, tt.turns, turns)
		})
	}
}

func TestStateMatchesStickerModel(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		s := New()
		st := NewStickers()
		for i := 0; i < 40; i++ {
			f := facelet.Faces[rng.Intn(facelet.NumFaces)]
			n := rng.Intn(3) + 1
			s.Turn(f, n)
			st.Turn(f, n)
		}
		require.Equal(t, [facelet.NumPositions]facelet.Color(*st), s.Colors(), "trial %d\n%s\nvs\n%s", trial, s, st)
		require.NoError(t, s.Validate())
	}
}

func TestFaceletSourceAgreesWithColors(t *testing.T) {
	s := New()
	for _, m := range []string{"R", "U", "F'", "L2", "D", "B'", "R2", "U'"} {
		s.ApplyMove(m)
	}
	src := s.FaceletSource()
	colors := s.Colors()

	seen := map[facelet.Position]bool{}
	for p := range src {
		assert.Equal(t, src[p].Face().Color(), colors[p], facelet.Position(p).String())
		assert.False(t, seen[src[p]], "source %s used twice", src[p])
		seen[src[p]] = true
	}
}

func TestValidateRejectsBrokenStates(t *testing.T) {
	s := New()
	s.CornerOri[URF] = 1
	assert.ErrorIs(t, s.Validate(), ErrInvalidState)

	s = New()
	s.EdgeOri[UF] = 1
	assert.ErrorIs(t, s.Validate(), ErrInvalidState)

	s = New()
	s.EdgePerm[UR], s.EdgePerm[UF] = s.EdgePerm[UF], s.EdgePerm[UR]
	assert.ErrorIs(t, s.Validate(), ErrInvalidState)

	s = New()
	s.CornerPerm[URF] = s.CornerPerm[UFL]
	assert.ErrorIs(t, s.Validate(), ErrInvalidState)
}

func TestCloneIsIndependent(t *testing.T) {
	s := New()
	c := s.Clone()
	c.ApplyMove("F")
	assert.True(t, s.IsSolved())
	assert.False(t, c.IsSolved())
}

func TestNetLayout(t *testing.T) {
	out := New().String()
	assert.Contains(t, out, "      W W W \n")
	assert.Contains(t, out, "O O O G G G R R R B B B \n")
	assert.Contains(t, out, "      Y Y Y \n")
}
