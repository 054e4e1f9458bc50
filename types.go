package lettercube

import (
	"github.com/SeamusWaldron/lettercube/internal/facelet"
	"github.com/SeamusWaldron/lettercube/internal/pieces"
	"github.com/SeamusWaldron/lettercube/internal/scheme"
)

type (
	// Face is one of U R F D L B.
	Face = facelet.Face
	// Color is a sticker color.
	Color = facelet.Color
	// ID names a sticker, e.g. "U5".
	ID = facelet.ID
	// Position is a flat sticker index 0..53.
	Position = facelet.Position
	// Piece is an edge or corner as a set of stickers.
	Piece = pieces.Piece
	// PieceKind is Edge or Corner.
	PieceKind = pieces.Kind
	// Scheme is a buffer preset.
	Scheme = scheme.Scheme
)

// Faces.
const (
	FaceU = facelet.U
	FaceR = facelet.R
	FaceF = facelet.F
	FaceD = facelet.D
	FaceL = facelet.L
	FaceB = facelet.B
)

// Colors.
const (
	White  = facelet.White
	Red    = facelet.Red
	Green  = facelet.Green
	Yellow = facelet.Yellow
	Orange = facelet.Orange
	Blue   = facelet.Blue
)

// Piece kinds.
const (
	Edge   = pieces.Edge
	Corner = pieces.Corner
)

// Buffer presets.
var (
	OldPochmann = scheme.OldPochmann
	M2          = scheme.M2
)

// ParseID parses a sticker name such as "U5".
func ParseID(s string) (ID, error) { return facelet.ParseID(s) }

// MustParseID is ParseID for literals; it panics on bad input.
func MustParseID(s string) ID { return facelet.MustParseID(s) }

// ParseColor parses a color name or letter.
func ParseColor(s string) (Color, error) { return facelet.ParseColor(s) }
