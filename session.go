package lettercube

import (
	"math/rand"
	"strconv"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/lettercube/internal/cube"
	"github.com/SeamusWaldron/lettercube/internal/facelet"
	"github.com/SeamusWaldron/lettercube/internal/labels"
	"github.com/SeamusWaldron/lettercube/internal/orientation"
	"github.com/SeamusWaldron/lettercube/internal/pieces"
	"github.com/SeamusWaldron/lettercube/internal/quiz"
	"github.com/SeamusWaldron/lettercube/internal/scheme"
)

// LabelStore persists the label map. version is labels.VersionPhysical for
// legacy maps keyed by reference sticker and labels.VersionLogical
// otherwise; SaveLabels always writes logical keys.
type LabelStore interface {
	LoadLabels() (labels map[string]string, version int, err error)
	SaveLabels(labels map[string]string) error
}

// Session is the trainer state: cube, orientation, scheme and labels.
// A Session is not safe for concurrent use.
type Session struct {
	log    *zap.SugaredLogger
	scheme scheme.Scheme
	store  LabelStore
	rng    *rand.Rand

	avoidRepeat bool

	cube    *cube.State
	mapping orientation.Mapping
	labels  *labels.Map
	catalog pieces.Catalog
}

// NewSession builds a session and loads labels from the configured store.
// Legacy physical-keyed labels are migrated and written back.
func NewSession(opts ...Option) (*Session, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	mapping, err := orientation.FromColors(cfg.front, cfg.top)
	if err != nil {
		return nil, err
	}

	s := &Session{
		log:         cfg.logger,
		scheme:      cfg.scheme,
		store:       cfg.store,
		rng:         cfg.rng,
		avoidRepeat: cfg.avoidRepeat,
		cube:        cube.New(),
		mapping:     mapping,
		labels:      labels.New(cfg.scheme),
		catalog:     pieces.Discover(),
	}

	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) load() error {
	if s.store == nil {
		return nil
	}

	raw, version, err := s.store.LoadLabels()
	if err != nil {
		return errors.Wrap(err, "failed to load labels")
	}

	switch version {
	case labels.VersionLogical:
		m, err := labels.FromStrings(raw, s.scheme)
		if err != nil {
			return err
		}
		s.labels = m
	case labels.VersionPhysical:
		m, err := labels.Migrate(raw, s.mapping, s.scheme)
		if err != nil {
			return err
		}
		if err := s.store.SaveLabels(m.Strings()); err != nil {
			return errors.Wrap(err, "failed to save migrated labels")
		}
		s.log.Infow("migrated legacy labels", "found", len(raw), "kept", m.Len(), "orientation", s.mapping.String())
		s.labels = m
	default:
		return errors.Wrapf(ErrCorruptData, "unknown labels version %s", strconv.Itoa(version))
	}

	s.log.Debugw("labels loaded", "count", s.labels.Len())
	return nil
}

// commit persists next and adopts it only when the store accepted it.
func (s *Session) commit(next *labels.Map) error {
	if s.store != nil {
		if err := s.store.SaveLabels(next.Strings()); err != nil {
			s.log.Warnw("label save failed", "error", err)
			return errors.Wrap(err, "failed to save labels")
		}
	}
	s.labels = next
	return nil
}

// Scheme returns the buffer preset in use.
func (s *Session) Scheme() scheme.Scheme { return s.scheme }

// SetOrientation selects the physical faces held to the front and top.
// Invalid pairs leave the session unchanged.
func (s *Session) SetOrientation(front, top Color) error {
	m, err := orientation.FromColors(front, top)
	if err != nil {
		return err
	}
	s.mapping = m
	s.log.Infow("orientation changed", "front", front.Name(), "top", top.Name())
	return nil
}

// Orientation returns the selected front and top colors.
func (s *Session) Orientation() (front, top Color) {
	return s.mapping.Front().Color(), s.mapping.Top().Color()
}

// Mapping returns the active orientation mapping.
func (s *Session) Mapping() orientation.Mapping { return s.mapping }

// ApplyMove applies one move token. Unknown tokens are ignored and
// reported as false.
func (s *Session) ApplyMove(token string) bool {
	if !s.cube.ApplyMove(token) {
		s.log.Debugw("ignored move token", "token", token)
		return false
	}
	return true
}

// Apply applies moves in order.
func (s *Session) Apply(moves ...Move) {
	for _, m := range moves {
		s.cube.Turn(m.Face, m.QuarterTurns())
	}
}

// ApplyNotation parses and applies a sequence such as "R U R' U'". Nothing
// is applied when any token is invalid.
func (s *Session) ApplyNotation(notation string) error {
	moves, err := ParseMoves(notation)
	if err != nil {
		return err
	}
	s.Apply(moves...)
	return nil
}

// Scramble applies n random moves and returns them.
// Negative n is treated as zero.
func (s *Session) Scramble(n int) []Move {
	moves := RandomMoves(s.rng, n)
	s.Apply(moves...)
	return moves
}

// Reset returns the cube to solved. Labels are kept.
func (s *Session) Reset() { s.cube.Reset() }

// IsSolved reports whether the cube is solved.
func (s *Session) IsSolved() bool { return s.cube.IsSolved() }

// State returns a copy of the cubie state.
func (s *Session) State() *cube.State { return s.cube.Clone() }

// ColorAt returns the color at a reference position.
func (s *Session) ColorAt(p Position) Color {
	return s.cube.ColorAt(p)
}

// ColorAtPhysical returns the color of a reference sticker.
func (s *Session) ColorAtPhysical(id ID) Color {
	return s.cube.ColorAt(id.Position())
}

// ColorAtLogical returns the color the user sees at a logical sticker.
func (s *Session) ColorAtLogical(id ID) Color {
	return s.ColorAtPhysical(s.mapping.ToPhysical(id))
}

// Colors returns the colors of all reference positions.
func (s *Session) Colors() [facelet.NumPositions]Color {
	return s.cube.Colors()
}

// LogicalColors returns the colors laid out as the user sees the cube.
func (s *Session) LogicalColors() [facelet.NumPositions]Color {
	var out [facelet.NumPositions]Color
	for _, id := range facelet.All() {
		out[id.Position()] = s.ColorAtLogical(id)
	}
	return out
}

// LogicalID converts a reference sticker to the logical sticker.
func (s *Session) LogicalID(physical ID) ID { return s.mapping.ToOriented(physical) }

// PhysicalID converts a logical sticker to the reference sticker.
func (s *Session) PhysicalID(logical ID) ID { return s.mapping.ToPhysical(logical) }

// LabelAt returns the letter shown on a reference sticker.
func (s *Session) LabelAt(physical ID) string {
	return s.labels.Get(s.mapping.ToOriented(physical))
}

// Label returns the letter at a logical sticker.
func (s *Session) Label(logical ID) string {
	return s.labels.Get(logical)
}

// Labelable reports whether a logical sticker can carry a letter.
func (s *Session) Labelable(logical ID) bool {
	return s.scheme.Labelable(s.scheme.Canonical(logical))
}

// SetLabel stores a letter at a logical sticker; empty text clears it.
func (s *Session) SetLabel(logical ID, text string) error {
	next := s.labels.Clone()
	if err := next.Set(logical, text); err != nil {
		return err
	}
	return s.commit(next)
}

// ClearLabel removes the letter at a logical sticker.
func (s *Session) ClearLabel(logical ID) error {
	next := s.labels.Clone()
	if err := next.Delete(logical); err != nil {
		return err
	}
	return s.commit(next)
}

// ResetLabels removes every letter.
func (s *Session) ResetLabels() error {
	return s.commit(labels.New(s.scheme))
}

// Labels returns the letters keyed by logical sticker name.
func (s *Session) Labels() map[string]string { return s.labels.Strings() }

// LabelIDs returns the labelled logical stickers in position order.
func (s *Session) LabelIDs() []ID { return s.labels.IDs() }

// Complete reports whether every labelable sticker has a letter.
func (s *Session) Complete() bool { return s.labels.Complete() }

// Missing lists the labelable logical stickers without a letter.
func (s *Session) Missing() []ID { return s.labels.Missing() }

// Pieces returns the edge and corner catalog.
func (s *Session) Pieces() pieces.Catalog { return s.catalog }

// PieceLabels returns the letters on p's stickers, in sticker order.
func (s *Session) PieceLabels(p Piece) []string {
	out := make([]string, len(p.Facelets))
	for i, id := range p.Facelets {
		out[i] = s.LabelAt(id)
	}
	return out
}

// Import replaces all letters with an exported JSON file. Malformed input
// leaves the current letters untouched.
func (s *Session) Import(data []byte) error {
	next, err := labels.Import(data, s.scheme)
	if err != nil {
		return err
	}
	if err := s.commit(next); err != nil {
		return err
	}
	s.log.Infow("labels imported", "count", next.Len())
	return nil
}

// ImportLegacy replaces all letters with a file keyed by reference
// sticker, converting the keys with the current orientation.
func (s *Session) ImportLegacy(data []byte) error {
	raw, err := labels.Decode(data)
	if err != nil {
		return err
	}
	next, err := labels.Migrate(raw, s.mapping, s.scheme)
	if err != nil {
		return err
	}
	if err := s.commit(next); err != nil {
		return err
	}
	s.log.Infow("legacy labels imported", "found", len(raw), "kept", next.Len())
	return nil
}

// Export encodes the letters as indented JSON with sorted keys.
func (s *Session) Export() ([]byte, error) {
	return s.labels.Export()
}

// FaceletQuiz returns a single-sticker drill over this session's letters.
func (s *Session) FaceletQuiz() *quiz.FaceletDrill {
	var opts []quiz.DrillOption
	if !s.avoidRepeat {
		opts = append(opts, quiz.DrillAllowRepeats())
	}
	return quiz.NewFaceletDrill(s, s.rng, opts...)
}

// PieceTrainer returns a trainer for edges or corners.
func (s *Session) PieceTrainer(kind PieceKind) *quiz.Trainer {
	var opts []quiz.TrainerOption
	if !s.avoidRepeat {
		opts = append(opts, quiz.AllowRepeats())
	}
	return quiz.NewTrainer(kind, s.catalog, s, s.rng, opts...)
}
