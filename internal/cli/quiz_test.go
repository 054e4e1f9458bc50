package cli

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/lettercube"
	"github.com/SeamusWaldron/lettercube/internal/facelet"
	"github.com/SeamusWaldron/lettercube/internal/orientation"
	"github.com/SeamusWaldron/lettercube/internal/pieces"
	"github.com/SeamusWaldron/lettercube/internal/storage"
)

func newTestQuiz(t *testing.T, mode string) (*quizModel, *storage.QuizAttemptRepository) {
	t.Helper()

	db, err := storage.OpenMigrated(filepath.Join(t.TempDir(), "quiz.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	s, err := lettercube.NewSession(
		lettercube.WithStore(storage.NewLabelRepository(db)),
		lettercube.WithRand(rand.New(rand.NewSource(3))),
	)
	require.NoError(t, err)
	for i, id := range s.Missing() {
		require.NoError(t, s.SetLabel(id, fmt.Sprintf("L%d", i)))
	}

	attempts := storage.NewQuizAttemptRepository(db)
	m, err := newQuizModel(s, attempts, mode, 0)
	require.NoError(t, err)
	return m, attempts
}

func typeText(m *quizModel, text string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func pressEnter(m *quizModel) {
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

func TestQuizModelEdgeCorrect(t *testing.T) {
	m, attempts := newTestQuiz(t, "edge")
	require.Len(t, m.stickers, 2)

	for _, want := range m.trainer.Expected() {
		require.NotEmpty(t, want)
		typeText(m, strings.ToLower(want))
		pressEnter(m)
	}

	assert.True(t, m.answered)
	assert.Equal(t, 1, m.asked)
	assert.Equal(t, 1, m.passed)
	assert.Empty(t, m.wrong)

	list, err := attempts.List(10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "edge", list[0].Kind)
	assert.Equal(t, m.target(), list[0].Target)
	assert.Equal(t, 2, list[0].Correct)
	assert.Equal(t, 2, list[0].Total)

	// Enter moves on to a fresh question.
	pressEnter(m)
	assert.False(t, m.answered)
	assert.Equal(t, []string{"", ""}, m.inputs)
}

func TestQuizModelCornerPartial(t *testing.T) {
	m, attempts := newTestQuiz(t, "corner")
	require.Len(t, m.stickers, 3)
	expected := m.trainer.Expected()

	typeText(m, expected[0])
	pressEnter(m)
	typeText(m, "ZZZ")
	pressEnter(m)
	typeText(m, expected[2])
	pressEnter(m)

	require.True(t, m.answered)
	assert.Equal(t, 0, m.passed)
	assert.Equal(t, map[int]bool{1: true}, m.wrong)

	stats, err := attempts.Stats()
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, 2, stats[0].Correct)
	assert.Equal(t, 3, stats[0].Total)
	assert.Equal(t, 0, stats[0].Passed)
}

func TestQuizModelFacelet(t *testing.T) {
	m, _ := newTestQuiz(t, "facelet")
	require.Len(t, m.stickers, 1)

	want := m.session.LabelAt(m.stickers[0])
	typeText(m, want+"X")
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, want, m.inputs[0])

	pressEnter(m)
	assert.True(t, m.answered)
	assert.Equal(t, 1, m.passed)
	assert.Contains(t, m.View(), "✓")
}

func TestQuizModelFieldNavigation(t *testing.T) {
	m, _ := newTestQuiz(t, "corner")

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.field)
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 2, m.field)

	// Enter on an empty non-final field submits rather than advancing.
	m.field = 0
	pressEnter(m)
	assert.True(t, m.answered)
	assert.Equal(t, 0, m.passed)
}

func TestQuizModelLimit(t *testing.T) {
	m, _ := newTestQuiz(t, "facelet")
	m.limit = 1

	typeText(m, "?")
	pressEnter(m)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
}

func TestQuizTargetIgnoresOrientation(t *testing.T) {
	targets := make(map[string]map[string]bool)

	for _, sel := range orientation.All() {
		s, err := lettercube.NewSession(lettercube.WithOrientation(sel.Front.Color(), sel.Top.Color()))
		require.NoError(t, err)
		catalog := s.Pieces()

		for _, p := range append(catalog.Kind(pieces.Edge), catalog.Kind(pieces.Corner)...) {
			m := &quizModel{session: s, stickers: p.Facelets}
			got := m.target()

			logical, ok := catalog.Of(s.LogicalID(p.Facelets[0]))
			require.True(t, ok)
			assert.Equal(t, logical.Key(), got, "front %s top %s", sel.Front, sel.Top)

			if targets[logical.Key()] == nil {
				targets[logical.Key()] = make(map[string]bool)
			}
			targets[logical.Key()][got] = true
		}
	}

	require.Len(t, targets, 20)
	for key, seen := range targets {
		assert.Len(t, seen, 1, key)
	}
}

func TestQuizModelRejectsUnknownMode(t *testing.T) {
	s, err := lettercube.NewSession()
	require.NoError(t, err)
	_, err = newQuizModel(s, nil, "wing", 0)
	assert.Error(t, err)
}

func TestQuizModelNeedsLetters(t *testing.T) {
	s, err := lettercube.NewSession()
	require.NoError(t, err)
	_, err = newQuizModel(s, nil, "facelet", 0)
	assert.ErrorIs(t, err, lettercube.ErrNoLabel)
}

func TestRenderNet(t *testing.T) {
	out := renderNet(func(id facelet.ID) (facelet.Color, string) {
		return id.Face.Color(), id.String()
	})

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 9)
	assert.Contains(t, lines[0], "U0")
	assert.NotContains(t, lines[0], "L0")
	assert.Contains(t, lines[3], "L0")
	assert.Contains(t, lines[3], "B2")
	assert.Contains(t, lines[8], "D8")

	// U sits above F.
	assert.Equal(t, strings.Index(lines[3], "F0"), strings.Index(lines[0], "U0"))
}

func TestStickerText(t *testing.T) {
	old := showLetters
	t.Cleanup(func() { showLetters = old })

	showLetters = false
	assert.Empty(t, stickerText(facelet.MustParseID("F1"), "A", true))

	showLetters = true
	assert.Equal(t, "A", stickerText(facelet.MustParseID("F1"), "A", true))
	assert.Equal(t, "F", stickerText(facelet.MustParseID("F4"), "", false))
	assert.Equal(t, "·", stickerText(facelet.MustParseID("U5"), "", false))
}
