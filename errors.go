package lettercube

import (
	"github.com/cockroachdb/errors"

	"github.com/SeamusWaldron/lettercube/internal/facelet"
	"github.com/SeamusWaldron/lettercube/internal/labels"
	"github.com/SeamusWaldron/lettercube/internal/orientation"
	"github.com/SeamusWaldron/lettercube/internal/quiz"
)

// Sentinel errors for the lettercube package.
var (
	// Input errors
	ErrInvalidNotation = errors.New("lettercube: invalid move notation")
	ErrInvalidID       = facelet.ErrInvalidID
	ErrInvalidColor    = facelet.ErrInvalidColor

	// Orientation errors
	ErrInvalidOrientation = orientation.ErrInvalidOrientation

	// Label errors
	ErrInvalidTarget = labels.ErrInvalidTarget
	ErrCorruptData   = labels.ErrCorruptData

	// Quiz errors
	ErrNoLabel  = quiz.ErrNoLabel
	ErrNoPieces = quiz.ErrNoPieces
)
