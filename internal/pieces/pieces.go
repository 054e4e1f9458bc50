// Package pieces derives which stickers belong to the same physical piece
// from the cube's geometry.
package pieces

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/SeamusWaldron/lettercube/internal/facelet"
	"github.com/SeamusWaldron/lettercube/internal/geometry"
)

// ErrInvalidCatalog is returned by Catalog.Validate.
var ErrInvalidCatalog = errors.New("pieces: invalid catalog")

// Kind distinguishes edges from corners.
type Kind int

const (
	Edge Kind = iota
	Corner
)

func (k Kind) String() string {
	switch k {
	case Edge:
		return "edge"
	case Corner:
		return "corner"
	default:
		return "unknown"
	}
}

// Arity returns the number of stickers on a piece of this kind.
func (k Kind) Arity() int {
	if k == Corner {
		return 3
	}
	return 2
}

// ParseKind parses "edge" or "corner".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "edge", "edges":
		return Edge, nil
	case "corner", "corners":
		return Corner, nil
	}
	return 0, errors.Newf("pieces: unknown kind %q", s)
}

// discoveryOrder is the face order pieces are found in.
var discoveryOrder = []facelet.Face{facelet.F, facelet.B, facelet.U, facelet.D, facelet.R, facelet.L}

// Neighbors returns the stickers sharing a piece with id: none for a
// center, one for an edge sticker and two for a corner sticker.
func Neighbors(id facelet.ID) []facelet.ID {
	if id.IsCenter() {
		return nil
	}
	b := geometry.BasisOf(id.Face)
	cubie := geometry.Add(geometry.TileCenter(id), geometry.Scale(b.Normal, -0.5))

	var dirs []geometry.Vec
	if r := id.Row() - 1; r != 0 {
		dirs = append(dirs, geometry.Scale(b.V, geometry.Sign(r)))
	}
	if c := id.Col() - 1; c != 0 {
		dirs = append(dirs, geometry.Scale(b.U, geometry.Sign(c)))
	}

	out := make([]facelet.ID, 0, len(dirs))
	for _, d := range dirs {
		out = append(out, geometry.Locate(geometry.Add(cubie, geometry.Scale(d, 0.5))))
	}
	return out
}

// Piece is a set of stickers on one physical piece, sorted by name.
type Piece struct {
	Kind     Kind
	Facelets []facelet.ID
}

// Key joins the sticker names with "+", e.g. "F1+U7".
func (p Piece) Key() string {
	names := make([]string, len(p.Facelets))
	for i, id := range p.Facelets {
		names[i] = id.String()
	}
	return strings.Join(names, "+")
}

// Contains reports whether id is one of the piece's stickers.
func (p Piece) Contains(id facelet.ID) bool {
	for _, f := range p.Facelets {
		if f == id {
			return true
		}
	}
	return false
}

func (p Piece) String() string { return p.Key() }

// Catalog holds every edge and corner piece.
type Catalog struct {
	Edges   []Piece
	Corners []Piece

	byID map[facelet.ID]Piece
}

// Discover walks every non-center sticker and groups it with its
// neighbors. The result is deterministic.
func Discover() Catalog {
	c := Catalog{byID: make(map[facelet.ID]Piece, 48)}
	seen := make(map[string]bool)

	for _, f := range discoveryOrder {
		for i := 0; i < 9; i++ {
			id := facelet.MustID(f, i)
			if id.IsCenter() {
				continue
			}
			ids := append([]facelet.ID{id}, Neighbors(id)...)
			sort.Slice(ids, func(a, b int) bool { return ids[a].String() < ids[b].String() })

			p := Piece{Kind: Edge, Facelets: ids}
			if len(ids) == 3 {
				p.Kind = Corner
			}
			if seen[p.Key()] {
				continue
			}
			seen[p.Key()] = true

			if p.Kind == Corner {
				c.Corners = append(c.Corners, p)
			} else {
				c.Edges = append(c.Edges, p)
			}
			for _, m := range ids {
				c.byID[m] = p
			}
		}
	}
	return c
}

// Of returns the piece containing id.
func (c Catalog) Of(id facelet.ID) (Piece, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Kind returns the pieces of kind k.
func (c Catalog) Kind(k Kind) []Piece {
	if k == Corner {
		return c.Corners
	}
	return c.Edges
}

// Validate checks piece counts and that every non-center sticker belongs
// to exactly one piece.
func (c Catalog) Validate() error {
	if len(c.Edges) != 12 {
		return errors.Wrapf(ErrInvalidCatalog, "%d edges", len(c.Edges))
	}
	if len(c.Corners) != 8 {
		return errors.Wrapf(ErrInvalidCatalog, "%d corners", len(c.Corners))
	}

	count := make(map[facelet.ID]int)
	for _, k := range []Kind{Edge, Corner} {
		for _, p := range c.Kind(k) {
			if len(p.Facelets) != k.Arity() {
				return errors.Wrapf(ErrInvalidCatalog, "%s %s has %d stickers", k, p.Key(), len(p.Facelets))
			}
			for _, id := range p.Facelets {
				count[id]++
			}
		}
	}
	for _, id := range facelet.All() {
		if id.IsCenter() {
			continue
		}
		if count[id] != 1 {
			return errors.Wrapf(ErrInvalidCatalog, "%s appears %d times", id, count[id])
		}
	}
	return nil
}
