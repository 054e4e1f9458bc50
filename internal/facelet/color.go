package facelet

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Color is a sticker color. Each color is numbered after the face it
// belongs to on a solved cube in the reference orientation.
type Color uint8

const (
	White  Color = Color(U)
	Red    Color = Color(R)
	Green  Color = Color(F)
	Yellow Color = Color(D)
	Orange Color = Color(L)
	Blue   Color = Color(B)
)

// Colors lists the colors in face order.
var Colors = [NumFaces]Color{White, Red, Green, Yellow, Orange, Blue}

// ErrInvalidColor is returned by ParseColor.
var ErrInvalidColor = errors.New("facelet: invalid color")

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// Name returns the lower-case color name.
func (c Color) Name() string {
	switch c {
	case White:
		return "white"
	case Yellow:
		return "yellow"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Red:
		return "red"
	case Orange:
		return "orange"
	default:
		return "unknown"
	}
}

// Face returns the face that carries c when solved.
func (c Color) Face() Face {
	return Face(c)
}

// Opposite returns the color on the opposite face.
func (c Color) Opposite() Color {
	return Color(c.Face().Opposite())
}

// ParseColor accepts a color name or its single-letter form.
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return White, nil
	case "yellow", "y":
		return Yellow, nil
	case "green", "g":
		return Green, nil
	case "blue", "b":
		return Blue, nil
	case "red", "r":
		return Red, nil
	case "orange", "o":
		return Orange, nil
	}
	return 0, errors.Wrapf(ErrInvalidColor, "%q", s)
}
