package quiz

import (
	"math/rand"

	"github.com/SeamusWaldron/lettercube/internal/labels"
	"github.com/SeamusWaldron/lettercube/internal/pieces"
)

// Grade is the outcome of checking one piece.
type Grade struct {
	Correct int
	Total   int
	// Wrong lists the sticker indexes answered incorrectly.
	Wrong []int
}

// Passed reports whether every sticker was right.
func (g Grade) Passed() bool { return g.Total > 0 && g.Correct == g.Total }

// Trainer quizzes whole pieces of one kind.
type Trainer struct {
	kind        pieces.Kind
	pool        []pieces.Piece
	src         Labeler
	rng         *rand.Rand
	avoidRepeat bool

	current *pieces.Piece
	lastKey string
}

// TrainerOption configures a Trainer.
type TrainerOption func(*Trainer)

// AllowRepeats lets Next return the same piece twice in a row.
func AllowRepeats() TrainerOption {
	return func(t *Trainer) { t.avoidRepeat = false }
}

// NewTrainer returns a trainer over the pieces of kind in cat.
func NewTrainer(kind pieces.Kind, cat pieces.Catalog, src Labeler, rng *rand.Rand, opts ...TrainerOption) *Trainer {
	t := &Trainer{
		kind:        kind,
		pool:        cat.Kind(kind),
		src:         src,
		rng:         rng,
		avoidRepeat: true,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Kind returns the piece kind being trained.
func (t *Trainer) Kind() pieces.Kind { return t.kind }

// Ready reports whether every sticker of p has a label.
func (t *Trainer) Ready(p pieces.Piece) bool {
	for _, id := range p.Facelets {
		if t.src.LabelAt(id) == "" {
			return false
		}
	}
	return true
}

// Next picks the next piece. Fully labelled pieces are preferred; when
// none exist every piece is a candidate. The previous piece is skipped
// whenever another candidate exists.
func (t *Trainer) Next() (pieces.Piece, error) {
	if len(t.pool) == 0 {
		return pieces.Piece{}, ErrNoPieces
	}

	var candidates []pieces.Piece
	for _, p := range t.pool {
		if t.Ready(p) {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		candidates = t.pool
	}

	if t.avoidRepeat && t.lastKey != "" && len(candidates) > 1 {
		filtered := make([]pieces.Piece, 0, len(candidates))
		for _, p := range candidates {
			if p.Key() != t.lastKey {
				filtered = append(filtered, p)
			}
		}
		if len(filtered) > 0 {
			candidates = filtered
		}
	}

	p := candidates[t.rng.Intn(len(candidates))]
	t.current = &p
	t.lastKey = p.Key()
	return p, nil
}

// Current returns the piece last returned by Next.
func (t *Trainer) Current() (pieces.Piece, bool) {
	if t.current == nil {
		return pieces.Piece{}, false
	}
	return *t.current, true
}

// Expected returns the letters of the current piece, in sticker order.
func (t *Trainer) Expected() []string {
	if t.current == nil {
		return nil
	}
	out := make([]string, len(t.current.Facelets))
	for i, id := range t.current.Facelets {
		out[i] = t.src.LabelAt(id)
	}
	return out
}

// Check grades one guess per sticker of the current piece. A sticker with
// no label can never be answered correctly.
func (t *Trainer) Check(guesses []string) (Grade, error) {
	if t.current == nil {
		return Grade{}, ErrNoPieces
	}
	expected := t.Expected()
	g := Grade{Total: len(expected)}
	for i, want := range expected {
		var guess string
		if i < len(guesses) {
			guess = labels.Normalize(guesses[i])
		}
		if want != "" && guess == labels.Normalize(want) {
			g.Correct++
		} else {
			g.Wrong = append(g.Wrong, i)
		}
	}
	return g, nil
}
