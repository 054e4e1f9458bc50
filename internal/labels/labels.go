// Package labels stores the letters a user assigns to stickers. Keys are
// logical facelet ids: the sticker's position as the user holds the cube,
// not where it sits on the reference cube.
package labels

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/SeamusWaldron/lettercube/internal/facelet"
	"github.com/SeamusWaldron/lettercube/internal/scheme"
)

var (
	// ErrInvalidTarget is returned when writing to a center or buffer sticker.
	ErrInvalidTarget = errors.New("labels: sticker cannot carry a label")

	// ErrCorruptData is returned when persisted or imported data is malformed.
	ErrCorruptData = errors.New("labels: corrupt data")
)

// Persistence format markers.
const (
	// VersionPhysical keys labels by reference-cube sticker id.
	VersionPhysical = 1
	// VersionLogical keys labels by oriented sticker id.
	VersionLogical = 2
)

// Map holds labels keyed by canonical logical id. It never contains a
// center, buffer or alias key, nor an empty value.
type Map struct {
	scheme scheme.Scheme
	m      map[facelet.ID]string
}

// New returns an empty map using s for canonicalisation.
func New(s scheme.Scheme) *Map {
	return &Map{scheme: s, m: make(map[facelet.ID]string)}
}

// Normalize trims and upper-cases a label.
func Normalize(text string) string {
	return strings.ToUpper(strings.TrimSpace(text))
}

// Scheme returns the buffer scheme the map canonicalises with.
func (l *Map) Scheme() scheme.Scheme { return l.scheme }

// Get returns the label of id after canonicalisation, or "".
func (l *Map) Get(id facelet.ID) string {
	return l.m[l.scheme.Canonical(id)]
}

// Set stores text at id. An empty label removes the entry.
func (l *Map) Set(id facelet.ID, text string) error {
	key := l.scheme.Canonical(id)
	if !l.scheme.Labelable(key) {
		return errors.Wrapf(ErrInvalidTarget, "%s", id)
	}
	clean := Normalize(text)
	if clean == "" {
		delete(l.m, key)
		return nil
	}
	l.m[key] = clean
	return nil
}

// Delete removes the label at id.
func (l *Map) Delete(id facelet.ID) error {
	key := l.scheme.Canonical(id)
	if !l.scheme.Labelable(key) {
		return errors.Wrapf(ErrInvalidTarget, "%s", id)
	}
	delete(l.m, key)
	return nil
}

// Reset removes every label.
func (l *Map) Reset() {
	l.m = make(map[facelet.ID]string)
}

// Len returns the number of labels.
func (l *Map) Len() int { return len(l.m) }

// Clone returns an independent copy.
func (l *Map) Clone() *Map {
	c := New(l.scheme)
	for k, v := range l.m {
		c.m[k] = v
	}
	return c
}

// IDs returns the labelled ids in position order.
func (l *Map) IDs() []facelet.ID {
	ids := make([]facelet.ID, 0, len(l.m))
	for id := range l.m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].Position() < ids[j].Position() })
	return ids
}

// Strings returns the labels keyed by id string.
func (l *Map) Strings() map[string]string {
	out := make(map[string]string, len(l.m))
	for k, v := range l.m {
		out[k.String()] = v
	}
	return out
}

// Missing returns every labelable id without a label, in position order.
func (l *Map) Missing() []facelet.ID {
	var out []facelet.ID
	for _, id := range l.scheme.LabelableIDs() {
		if l.m[id] == "" {
			out = append(out, id)
		}
	}
	return out
}

// Complete reports whether every labelable sticker has a label.
func (l *Map) Complete() bool {
	return len(l.Missing()) == 0
}

// FromStrings validates persisted labels. Keys that cannot carry a label
// are dropped; unparseable keys or empty values are corrupt.
func FromStrings(raw map[string]string, s scheme.Scheme) (*Map, error) {
	l := New(s)
	for k, v := range raw {
		id, err := facelet.ParseID(k)
		if err != nil {
			return nil, errors.Wrapf(ErrCorruptData, "key %q", k)
		}
		clean := Normalize(v)
		if clean == "" {
			return nil, errors.Wrapf(ErrCorruptData, "empty label at %s", k)
		}
		l.adopt(id, clean)
	}
	return l, nil
}

// adopt stores an already-normalised value, silently skipping keys that
// cannot carry a label.
func (l *Map) adopt(id facelet.ID, text string) bool {
	key := l.scheme.Canonical(id)
	if !l.scheme.Labelable(key) || text == "" {
		return false
	}
	l.m[key] = text
	return true
}
