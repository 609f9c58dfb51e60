package isoview

import (
	"encoding/json"
	"fmt"
	"image"
	"log"
)

// SpriteStore resolves the sprites of the world. Both lookups return nil
// when no art exists for the combination; the voxel is then not drawn.
type SpriteStore interface {
	SurfaceSprite(ground GroundType, slope Slope, tileWidth int, o Orientation) *Sprite
	CursorSprite(slope Slope, tileWidth int, o Orientation) *Sprite
}

type surfaceKey struct {
	ground    GroundType
	slope     Slope
	tileWidth int
	orient    Orientation
}

type cursorKey struct {
	slope     Slope
	tileWidth int
	orient    Orientation
}

// SpriteSheet is a map-backed SpriteStore.
type SpriteSheet struct {
	surfaces map[surfaceKey]*Sprite
	cursors  map[cursorKey]*Sprite
}

// NewSpriteSheet returns an empty sheet.
func NewSpriteSheet() *SpriteSheet {
	return &SpriteSheet{
		surfaces: make(map[surfaceKey]*Sprite),
		cursors:  make(map[cursorKey]*Sprite),
	}
}

// AddSurface registers the ground sprite for a ground type, slope, tile
// width and orientation, replacing any earlier one.
func (s *SpriteSheet) AddSurface(ground GroundType, slope Slope, tileWidth int, o Orientation, spr *Sprite) {
	s.surfaces[surfaceKey{ground, slope, tileWidth, o}] = spr
}

// AddCursor registers the cursor overlay for a slope, tile width and
// orientation.
func (s *SpriteSheet) AddCursor(slope Slope, tileWidth int, o Orientation, spr *Sprite) {
	s.cursors[cursorKey{slope, tileWidth, o}] = spr
}

// SurfaceSprite implements SpriteStore.
func (s *SpriteSheet) SurfaceSprite(ground GroundType, slope Slope, tileWidth int, o Orientation) *Sprite {
	return s.surfaces[surfaceKey{ground, slope, tileWidth, o}]
}

// CursorSprite implements SpriteStore.
func (s *SpriteSheet) CursorSprite(slope Slope, tileWidth int, o Orientation) *Sprite {
	return s.cursors[cursorKey{slope, tileWidth, o}]
}

// Len returns the number of registered ground and cursor sprites.
func (s *SpriteSheet) Len() int {
	return len(s.surfaces) + len(s.cursors)
}

// --- JSON manifest ---

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonSprite struct {
	Kind        string   `json:"kind"` // "surface" or "cursor"
	Ground      string   `json:"ground"`
	Slope       uint8    `json:"slope"`
	TileWidth   int      `json:"tileWidth"`
	Orientation string   `json:"orientation"`
	Page        int      `json:"page"`
	Frame       jsonRect `json:"frame"`
	OffsetX     int      `json:"offsetX"`
	OffsetY     int      `json:"offsetY"`
}

type jsonManifest struct {
	Sprites []jsonSprite `json:"sprites"`
}

// LoadSpriteSheet parses a JSON sprite manifest and cuts the listed frames
// out of the given paletted pages. Each entry names its kind ("surface" or
// "cursor"), ground type, slope bits, tile width, orientation, page index,
// frame rectangle and anchor offsets.
func LoadSpriteSheet(jsonData []byte, pages []*image.Paletted) (*SpriteSheet, error) {
	var m jsonManifest
	if err := json.Unmarshal(jsonData, &m); err != nil {
		return nil, fmt.Errorf("isoview: failed to parse sprite manifest: %w", err)
	}

	sheet := NewSpriteSheet()
	for i, js := range m.Sprites {
		if js.Page < 0 || js.Page >= len(pages) {
			return nil, fmt.Errorf("isoview: sprite %d: page %d out of range (%d pages)", i, js.Page, len(pages))
		}
		o, err := ParseOrientation(js.Orientation)
		if err != nil {
			return nil, fmt.Errorf("isoview: sprite %d: %w", i, err)
		}
		page := pages[js.Page]
		r := image.Rect(js.Frame.X, js.Frame.Y, js.Frame.X+js.Frame.W, js.Frame.Y+js.Frame.H)
		if r.Empty() || !r.In(page.Bounds()) {
			return nil, fmt.Errorf("isoview: sprite %d: frame %v outside page %v", i, r, page.Bounds())
		}
		spr := NewSprite(page.SubImage(r).(*image.Paletted), js.OffsetX, js.OffsetY)

		switch js.Kind {
		case "surface":
			g, err := parseGroundType(js.Ground)
			if err != nil {
				return nil, fmt.Errorf("isoview: sprite %d: %w", i, err)
			}
			sheet.AddSurface(g, Slope(js.Slope), js.TileWidth, o, spr)
		case "cursor":
			sheet.AddCursor(Slope(js.Slope), js.TileWidth, o, spr)
		default:
			if globalDebug {
				log.Printf("isoview: sprite %d has unknown kind %q, skipped", i, js.Kind)
			}
		}
	}
	return sheet, nil
}

func parseGroundType(name string) (GroundType, error) {
	for g := GroundGrass; g < groundTypeCount; g++ {
		if g.String() == name {
			return g, nil
		}
	}
	return GroundInvalid, fmt.Errorf("unknown ground type %q", name)
}

// --- Generated tiles ---

var groundColors = map[GroundType][2]uint8{
	GroundGrass: {ColorGrass, ColorGrassEdge},
	GroundSand:  {ColorSand, ColorSandEdge},
	GroundDirt:  {ColorDirt, ColorDirtEdge},
	GroundRock:  {ColorRock, ColorRockEdge},
}

// GenerateSpriteSheet draws flat-shaded tiles for every ground type, every
// non-steep slope and every orientation at the given tile size, plus
// matching cursor outlines.
func GenerateSpriteSheet(tileWidth, tileHeight int) *SpriteSheet {
	sheet := NewSpriteSheet()
	for o := North; o < numOrientations; o++ {
		for slope := SlopeFlat; slope <= slopeCornerMask; slope++ {
			for g, cols := range groundColors {
				sheet.AddSurface(g, slope, tileWidth, o, TileSprite(tileWidth, tileHeight, slope, o, cols[0], cols[1]))
			}
			sheet.AddCursor(slope, tileWidth, o, TileSprite(tileWidth, tileHeight, slope, o, ColorTransparent, ColorCursor))
		}
	}
	return sheet
}

// TileSprite draws one isometric tile with the given fill and edge colors.
// The anchor is the top corner of the tile's floor, so the sprite lines up
// with the north corner computed by the walker.
func TileSprite(tileWidth, tileHeight int, slope Slope, o Orientation, fill, edge uint8) *Sprite {
	mustOrientation(o)
	half := tileWidth / 2
	quarter := tileWidth / 4

	// Screen corners top, right, bottom, left show world corners o, o+1, ...
	lift := func(screenCorner int) int {
		return slope.CornerHeight((screenCorner+int(o))%numOrientations) * tileHeight
	}
	poly := [4]Point{
		{0, -lift(0)},
		{half, quarter - lift(1)},
		{0, half - lift(2)},
		{-half, quarter - lift(3)},
	}

	maxLift := 2 * tileHeight
	spr := NewBlankSprite(tileWidth, half+maxLift+1, -half, -maxLift)
	for py := 0; py < spr.Height(); py++ {
		for px := 0; px < spr.Width(); px++ {
			x := px + spr.XOffset
			y := py + spr.YOffset
			if !polygonContains(poly[:], x, y) {
				continue
			}
			c := fill
			if onPolygonEdge(poly[:], x, y) {
				c = edge
			}
			if c != ColorTransparent {
				spr.SetPixel(px, py, c)
			}
		}
	}
	return spr
}

// polygonContains reports whether the pixel centre of (x, y) lies inside
// the polygon (even-odd rule).
func polygonContains(poly []Point, x, y int) bool {
	fx, fy := float64(x)+0.5, float64(y)+0.5
	inside := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		xi, yi := float64(poly[i].X), float64(poly[i].Y)
		xj, yj := float64(poly[j].X), float64(poly[j].Y)
		if (yi > fy) != (yj > fy) && fx < (xj-xi)*(fy-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}

// onPolygonEdge reports whether an inside pixel has a 4-neighbour outside
// the polygon.
func onPolygonEdge(poly []Point, x, y int) bool {
	return !polygonContains(poly, x-1, y) || !polygonContains(poly, x+1, y) ||
		!polygonContains(poly, x, y-1) || !polygonContains(poly, x, y+1)
}
