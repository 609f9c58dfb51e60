package isoview

// WorldUnit is the number of fixed-point world units in one tile (horizontal)
// or one voxel level (vertical).
const WorldUnit = 256

// Projector converts fixed-point world coordinates to screen pixels for one
// orientation and tile scale. Screen coordinates are relative to the world
// origin; callers subtract the projected camera focus themselves.
type Projector struct {
	TileWidth   int // screen width of a tile in pixels
	TileHeight  int // screen height of one voxel level in pixels
	Orientation Orientation
}

// ComputeX returns the horizontal screen position of world position (x, y).
//
// The final shift is an arithmetic shift, so negative values round towards
// negative infinity, matching the edges of the rendered tiles exactly.
func (p Projector) ComputeX(x, y int) int {
	switch p.Orientation {
	case North:
		return ((y - x) * p.TileWidth / 2) >> 8
	case West:
		return (-(x + y) * p.TileWidth / 2) >> 8
	case South:
		return ((x - y) * p.TileWidth / 2) >> 8
	case East:
		return ((x + y) * p.TileWidth / 2) >> 8
	}
	mustOrientation(p.Orientation)
	return 0
}

// ComputeY returns the vertical screen position of world position (x, y, z).
func (p Projector) ComputeY(x, y, z int) int {
	switch p.Orientation {
	case North:
		return ((x+y)*p.TileWidth/4 - z*p.TileHeight) >> 8
	case West:
		return ((y-x)*p.TileWidth/4 - z*p.TileHeight) >> 8
	case South:
		return (-(x+y)*p.TileWidth/4 - z*p.TileHeight) >> 8
	case East:
		return ((x-y)*p.TileWidth/4 - z*p.TileHeight) >> 8
	}
	mustOrientation(p.Orientation)
	return 0
}

// Unproject maps a screen position back to the world position at height z
// (all in the same units as ComputeX/ComputeY). The result is exact up to
// the rounding of one screen pixel.
func (p Projector) Unproject(sx, sy, z int) (x, y int) {
	// u and v are the two sheared world axes the screen axes measure.
	// The +128 samples the centre of the pixel instead of its top-left.
	u := (sx*WorldUnit + WorldUnit/2) * 2 / p.TileWidth
	v := (sy*WorldUnit + WorldUnit/2 + z*p.TileHeight) * 4 / p.TileWidth
	switch p.Orientation {
	case North: // u = y-x, v = x+y
		return (v - u) / 2, (u + v) / 2
	case West: // u = -(x+y), v = y-x
		return (-u - v) / 2, (v - u) / 2
	case South: // u = x-y, v = -(x+y)
		return (u - v) / 2, (-u - v) / 2
	case East: // u = x+y, v = x-y
		return (u + v) / 2, (u - v) / 2
	}
	mustOrientation(p.Orientation)
	return 0, 0
}

// Project returns both screen coordinates of (x, y, z).
func (p Projector) Project(x, y, z int) Point {
	return Point{X: p.ComputeX(x, y), Y: p.ComputeY(x, y, z)}
}

// DepthKey returns the painter's-algorithm key of voxel (x, y, z) in tile
// coordinates. Entries drawn in ascending key order paint far to near.
func (p Projector) DepthKey(x, y, z int) int {
	sx, sy := depthSigns(p.Orientation)
	return sx*x + sy*y + z*WorldUnit
}

// depthSigns returns the per-axis multipliers of the depth key.
func depthSigns(o Orientation) (sx, sy int) {
	mustOrientation(o)
	sx, sy = -WorldUnit, -WorldUnit
	if o == North || o == East {
		sx = WorldUnit
	}
	if o == North || o == West {
		sy = WorldUnit
	}
	return sx, sy
}
