// Package scheme defines letter-scheme buffers: the stickers a blindfold
// method never memorises, plus the stickers that share a piece with them.
package scheme

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/SeamusWaldron/lettercube/internal/facelet"
)

// ErrUnknownScheme is returned by Lookup.
var ErrUnknownScheme = errors.New("scheme: unknown scheme")

// Scheme names the edge and corner buffers. Aliases are the other stickers
// on the buffer pieces; they canonicalise to the buffer itself.
type Scheme struct {
	Name          string
	EdgeBuffer    facelet.ID
	EdgeAlias     facelet.ID
	CornerBuffer  facelet.ID
	CornerAliases [2]facelet.ID
}

var (
	// OldPochmann buffers the UR edge at U5 and the ULB corner at U0.
	OldPochmann = Scheme{
		Name:          "oldpochmann",
		EdgeBuffer:    facelet.MustParseID("U5"),
		EdgeAlias:     facelet.MustParseID("R1"),
		CornerBuffer:  facelet.MustParseID("U0"),
		CornerAliases: [2]facelet.ID{facelet.MustParseID("L0"), facelet.MustParseID("B2")},
	}

	// M2 buffers the DF edge at D1 and keeps the Old Pochmann corner buffer.
	M2 = Scheme{
		Name:          "m2",
		EdgeBuffer:    facelet.MustParseID("D1"),
		EdgeAlias:     facelet.MustParseID("F7"),
		CornerBuffer:  facelet.MustParseID("U0"),
		CornerAliases: [2]facelet.ID{facelet.MustParseID("L0"), facelet.MustParseID("B2")},
	}

	// Default is the scheme used when none is configured.
	Default = OldPochmann
)

var presets = map[string]Scheme{
	OldPochmann.Name: OldPochmann,
	M2.Name:          M2,
}

// Lookup returns a preset by name, ignoring case and separators.
func Lookup(name string) (Scheme, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	if key == "" {
		return Default, nil
	}
	s, ok := presets[key]
	if !ok {
		return Scheme{}, errors.Wrapf(ErrUnknownScheme, "%q", name)
	}
	return s, nil
}

// Names lists the preset names.
func Names() []string {
	out := make([]string, 0, len(presets))
	for n := range presets {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Canonical maps an alias to its buffer; every other id is returned as is.
func (s Scheme) Canonical(id facelet.ID) facelet.ID {
	switch id {
	case s.EdgeAlias:
		return s.EdgeBuffer
	case s.CornerAliases[0], s.CornerAliases[1]:
		return s.CornerBuffer
	}
	return id
}

// IsBuffer reports whether id is a buffer or one of its aliases.
func (s Scheme) IsBuffer(id facelet.ID) bool {
	return s.Canonical(id) == s.EdgeBuffer || s.Canonical(id) == s.CornerBuffer
}

// IsCenter reports whether id is a center.
func (s Scheme) IsCenter(id facelet.ID) bool {
	return id.IsCenter()
}

// Labelable reports whether a letter may be stored at id.
func (s Scheme) Labelable(id facelet.ID) bool {
	return !id.IsCenter() && !s.IsBuffer(id)
}

// Disabled returns the buffer stickers in position order.
func (s Scheme) Disabled() []facelet.ID {
	ids := []facelet.ID{s.EdgeBuffer, s.EdgeAlias, s.CornerBuffer, s.CornerAliases[0], s.CornerAliases[1]}
	sort.Slice(ids, func(i, j int) bool { return ids[i].Position() < ids[j].Position() })
	return ids
}

// LabelableIDs returns every id that can carry a letter, in position order.
func (s Scheme) LabelableIDs() []facelet.ID {
	var out []facelet.ID
	for _, id := range facelet.All() {
		if s.Labelable(id) {
			out = append(out, id)
		}
	}
	return out
}

func (s Scheme) String() string { return s.Name }
