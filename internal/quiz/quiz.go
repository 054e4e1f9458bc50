// Package quiz implements the letter drills: single-sticker questions and
// the piece trainer, which asks for every letter on one edge or corner.
package quiz

import (
	"math/rand"

	"github.com/cockroachdb/errors"

	"github.com/SeamusWaldron/lettercube/internal/facelet"
	"github.com/SeamusWaldron/lettercube/internal/labels"
)

var (
	// ErrNoLabel is returned when the asked sticker has no letter.
	ErrNoLabel = errors.New("quiz: no label set")

	// ErrNoPieces is returned when there is nothing to ask about.
	ErrNoPieces = errors.New("quiz: no pieces available")
)

// Labeler resolves the letter shown on a physical sticker, taking the
// current orientation and buffer aliases into account.
type Labeler interface {
	LabelAt(physical facelet.ID) string
}

// Result is the outcome of a single answer.
type Result struct {
	Expected string
	Guess    string
	Correct  bool
}

// CheckFacelet compares a guess with the expected letter, ignoring case
// and surrounding space.
func CheckFacelet(expected, guess string) (Result, error) {
	r := Result{Expected: labels.Normalize(expected), Guess: labels.Normalize(guess)}
	if r.Expected == "" {
		return r, ErrNoLabel
	}
	r.Correct = r.Expected == r.Guess
	return r, nil
}

// FaceletDrill asks for the letter of random labelled stickers.
type FaceletDrill struct {
	src         Labeler
	rng         *rand.Rand
	avoidRepeat bool

	current facelet.ID
	asked   bool
}

// DrillOption configures a FaceletDrill.
type DrillOption func(*FaceletDrill)

// DrillAllowRepeats lets Next return the same sticker twice in a row.
func DrillAllowRepeats() DrillOption {
	return func(d *FaceletDrill) { d.avoidRepeat = false }
}

// NewFaceletDrill returns a drill over src.
func NewFaceletDrill(src Labeler, rng *rand.Rand, opts ...DrillOption) *FaceletDrill {
	d := &FaceletDrill{src: src, rng: rng, avoidRepeat: true}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Next picks a physical sticker that has a label. Buffers are excluded
// through the labeler, which canonicalises aliases onto them.
func (d *FaceletDrill) Next() (facelet.ID, error) {
	var pool []facelet.ID
	for _, id := range facelet.All() {
		if id.IsCenter() {
			continue
		}
		if d.src.LabelAt(id) != "" {
			pool = append(pool, id)
		}
	}
	if len(pool) == 0 {
		return facelet.ID{}, ErrNoLabel
	}
	if d.avoidRepeat && d.asked && len(pool) > 1 {
		pool = without(pool, d.current)
	}
	d.current = pool[d.rng.Intn(len(pool))]
	d.asked = true
	return d.current, nil
}

// Current returns the sticker last returned by Next.
func (d *FaceletDrill) Current() (facelet.ID, bool) {
	return d.current, d.asked
}

// Check grades a guess for the current sticker.
func (d *FaceletDrill) Check(guess string) (Result, error) {
	if !d.asked {
		return Result{}, ErrNoLabel
	}
	return CheckFacelet(d.src.LabelAt(d.current), guess)
}

func without(ids []facelet.ID, drop facelet.ID) []facelet.ID {
	out := make([]facelet.ID, 0, len(ids))
	for _, id := range ids {
		if id != drop {
			out = append(out, id)
		}
	}
	return out
}
