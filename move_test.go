package lettercube

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		in   string
		want Move
	}{
		{"R", R},
		{"R'", RPrime},
		{"R2", R2},
		{"U2'", U2},
		{" F ", F},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMove(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "X", "R3", "r"} {
		_, err := ParseMove(bad)
		assert.ErrorIs(t, err, ErrInvalidNotation, bad)
	}
}

func TestParseMovesRejectsWholeSequence(t *testing.T) {
	moves, err := ParseMoves("R U R' U'")
	require.NoError(t, err)
	assert.Equal(t, SexyMove, moves)
	assert.Equal(t, "R U R' U'", FormatMoves(moves))

	_, err = ParseMoves("R U M")
	assert.ErrorIs(t, err, ErrInvalidNotation)
}

func TestInverse(t *testing.T) {
	assert.Equal(t, RPrime, R.Inverse())
	assert.Equal(t, R, RPrime.Inverse())
	assert.Equal(t, R2, R2.Inverse())
	assert.Equal(t, 3, RPrime.QuarterTurns())
	assert.Equal(t, 2, R2.QuarterTurns())
}

func TestSimplifyMoves(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"R R", "R2"},
		{"R R R", "R'"},
		{"R R'", ""},
		{"R2 R2", ""},
		{"R2 R'", "R"},
		{"U R R' U", "U2"},
		{"R L R", "R L R"},
		{"R U R' U'", "R U R' U'"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			moves, err := ParseMoves(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, FormatMoves(SimplifyMoves(moves)))
		})
	}
}

func TestRandomMovesNoRepeatedFace(t *testing.T) {
	moves := RandomMoves(rand.New(rand.NewSource(9)), 200)
	require.Len(t, moves, 200)
	for i := 1; i < len(moves); i++ {
		assert.NotEqual(t, moves[i-1].Face, moves[i].Face)
	}
	assert.Len(t, SimplifyMoves(moves), 200)
}
