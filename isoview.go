package isoview

import (
	"fmt"
	"image/color"
	"strings"
)

// Point is an integer screen position. The coordinate system has its origin
// at the top-left, with Y increasing downward.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned screen rectangle in pixels.
type Rect struct {
	X, Y, Width, Height int
}

// Contains reports whether the pixel (x, y) lies inside the rectangle.
// The right and bottom edges are exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// Intersect returns the overlap of r and other. The result has zero width or
// height when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x0 := max(r.X, other.X)
	y0 := max(r.Y, other.Y)
	x1 := min(r.X+r.Width, other.X+other.Width)
	y1 := min(r.Y+r.Height, other.Y+other.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Orientation is the compass direction the camera looks towards.
type Orientation uint8

const (
	North Orientation = iota // world corner (x, y) at the top of a tile
	East                     // world corner (x, y+1) at the top of a tile
	South                    // world corner (x+1, y+1) at the top of a tile
	West                     // world corner (x+1, y) at the top of a tile

	numOrientations = 4
)

var orientationNames = [numOrientations]string{"north", "east", "south", "west"}

// Valid reports whether o is one of the four defined orientations.
func (o Orientation) Valid() bool {
	return o < numOrientations
}

func (o Orientation) String() string {
	if !o.Valid() {
		return fmt.Sprintf("Orientation(%d)", uint8(o))
	}
	return orientationNames[o]
}

// Rotate returns the orientation one quarter turn further. A positive
// direction turns clockwise, anything else anti-clockwise.
func (o Orientation) Rotate(direction int) Orientation {
	mustOrientation(o)
	step := numOrientations - 1
	if direction > 0 {
		step = 1
	}
	return Orientation((int(o) + step) % numOrientations)
}

// MarshalText implements encoding.TextMarshaler.
func (o Orientation) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("isoview: invalid orientation %d", uint8(o))
	}
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Orientation) UnmarshalText(text []byte) error {
	v, err := ParseOrientation(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// ParseOrientation converts a compass name ("north", "E", ...) to an
// Orientation.
func ParseOrientation(s string) (Orientation, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range orientationNames {
		if name == n || (len(name) == 1 && name[0] == n[0]) {
			return Orientation(i), nil
		}
	}
	return North, fmt.Errorf("isoview: unknown orientation %q", s)
}

// mustOrientation panics on an orientation outside the four defined values.
// Such a value can only come from a logic error in the caller.
func mustOrientation(o Orientation) {
	if !o.Valid() {
		panic(fmt.Sprintf("isoview: invalid orientation %d", uint8(o)))
	}
}

// MouseButtons is a bitmask of pressed mouse buttons. The low bits hold the
// current state; the window layer may keep the previous state in the high
// nibble (see ButtonsPrevious).
type MouseButtons uint8

const (
	ButtonLeft   MouseButtons = 1 // left button down
	ButtonMiddle MouseButtons = 2 // middle button down
	ButtonRight  MouseButtons = 4 // right button down

	ButtonsCurrent   MouseButtons = 0x07 // mask for the current state
	ButtonsPrevious  MouseButtons = 0x70 // mask for the previous state
	buttonsPrevShift              = 4
)

// WithPrevious packs the current state of b together with prev as the
// previous state.
func (b MouseButtons) WithPrevious(prev MouseButtons) MouseButtons {
	return (b & ButtonsCurrent) | ((prev & ButtonsCurrent) << buttonsPrevShift)
}

// Previous returns the previous-state bits shifted down into the current
// position.
func (b MouseButtons) Previous() MouseButtons {
	return (b & ButtonsPrevious) >> buttonsPrevShift
}

// UnmarshalText implements encoding.TextUnmarshaler for a single button name.
func (b *MouseButtons) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "left":
		*b = ButtonLeft
	case "middle":
		*b = ButtonMiddle
	case "right":
		*b = ButtonRight
	default:
		return fmt.Errorf("isoview: unknown mouse button %q", string(text))
	}
	return nil
}

// MouseMode selects how the viewport reacts to pointer events.
type MouseMode uint8

const (
	MouseInactive      MouseMode = iota // pointer events are ignored
	MouseTileTerraform                  // track the voxel under the cursor, drag to pan

	mouseModeCount
)

func (m MouseMode) String() string {
	switch m {
	case MouseInactive:
		return "inactive"
	case MouseTileTerraform:
		return "tile-terraform"
	default:
		return fmt.Sprintf("MouseMode(%d)", uint8(m))
	}
}

// parseMouseMode accepts "inactive", "tile-terraform" or "terraform".
func parseMouseMode(s string) (MouseMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inactive", "":
		return MouseInactive, nil
	case "tile-terraform", "terraform":
		return MouseTileTerraform, nil
	}
	return 0, fmt.Errorf("isoview: unknown mouse mode %q", s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *MouseMode) UnmarshalText(text []byte) error {
	mode, err := parseMouseMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// Palette indices used by the generated sprites and the surfaces. Index 0 is
// always transparent.
const (
	ColorTransparent uint8 = iota
	ColorBackground
	ColorGrass
	ColorGrassEdge
	ColorSand
	ColorSandEdge
	ColorDirt
	ColorDirtEdge
	ColorRock
	ColorRockEdge
	ColorCursor
)

// Palette maps 8-bit sprite pixels to display colors.
var Palette = color.Palette{
	ColorTransparent: color.RGBA{},
	ColorBackground:  color.RGBA{0, 0, 0, 255},
	ColorGrass:       color.RGBA{0x4c, 0x9a, 0x3b, 255},
	ColorGrassEdge:   color.RGBA{0x2f, 0x66, 0x24, 255},
	ColorSand:        color.RGBA{0xd9, 0xc2, 0x7a, 255},
	ColorSandEdge:    color.RGBA{0xa8, 0x8f, 0x4c, 255},
	ColorDirt:        color.RGBA{0x8a, 0x5a, 0x35, 255},
	ColorDirtEdge:    color.RGBA{0x5c, 0x3a, 0x20, 255},
	ColorRock:        color.RGBA{0x80, 0x80, 0x88, 255},
	ColorRockEdge:    color.RGBA{0x50, 0x50, 0x58, 255},
	ColorCursor:      color.RGBA{0xff, 0xe0, 0x30, 255},
}
