package isoview

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// TerrainConfig controls GenerateTerrain.
type TerrainConfig struct {
	Width, Height int     // world size in columns
	Seed          int64   // noise seed
	BaseLevel     int     // height of the lowest possible surface
	Amplitude     int     // maximum levels above BaseLevel
	Scale         float64 // noise frequency; smaller values give wider hills
}

// DefaultTerrainConfig returns a gently rolling 64x64 landscape.
func DefaultTerrainConfig() TerrainConfig {
	return TerrainConfig{
		Width:     64,
		Height:    64,
		Seed:      1,
		BaseLevel: 4,
		Amplitude: 8,
		Scale:     0.08,
	}
}

// GenerateTerrain builds a Grid with one surface voxel per column. Corner
// heights come from 2D Perlin noise, smoothed so that neighbouring corners
// differ by at most one level; each tile sits at its lowest corner and the
// corners one level higher become its slope.
func GenerateTerrain(cfg TerrainConfig) *Grid {
	corners, ch := terrainCorners(cfg)

	g := NewGrid(cfg.Width, cfg.Height)
	for x := 0; x < cfg.Width; x++ {
		for y := 0; y < cfg.Height; y++ {
			h := tileCorners(corners, ch, x, y)
			base := min(h[0], h[1], h[2], h[3])
			var slope Slope
			for c, v := range h {
				if v > base {
					slope |= 1 << c
				}
			}
			g.SetGround(x, y, base, groundForLevel(base-cfg.BaseLevel, cfg.Amplitude), slope)
		}
	}
	return g
}

// terrainCorners returns the (Width+1) x (Height+1) corner heights,
// column-major with stride ch.
func terrainCorners(cfg TerrainConfig) (corners []int, ch int) {
	if cfg.Scale <= 0 {
		cfg.Scale = DefaultTerrainConfig().Scale
	}
	noise := perlin.NewPerlin(2, 2, 3, cfg.Seed)

	cw := cfg.Width + 1
	ch = cfg.Height + 1
	corners = make([]int, cw*ch)
	for x := 0; x < cw; x++ {
		for y := 0; y < ch; y++ {
			n := (noise.Noise2D(float64(x)*cfg.Scale, float64(y)*cfg.Scale) + 1) / 2
			corners[x*ch+y] = cfg.BaseLevel + int(math.Round(n*float64(cfg.Amplitude)))
		}
	}
	smoothCorners(corners, cw, ch)
	return corners, ch
}

// smoothCorners lowers corners until no corner is more than one level above
// any of its eight neighbours. Every tile then has corners at base or
// base+1, which a non-steep Slope can show.
func smoothCorners(corners []int, cw, ch int) {
	for changed := true; changed; {
		changed = false
		for x := 0; x < cw; x++ {
			for y := 0; y < ch; y++ {
				h := corners[x*ch+y]
				for nx := max(x-1, 0); nx <= min(x+1, cw-1); nx++ {
					for ny := max(y-1, 0); ny <= min(y+1, ch-1); ny++ {
						h = min(h, corners[nx*ch+ny]+1)
					}
				}
				if h != corners[x*ch+y] {
					corners[x*ch+y] = h
					changed = true
				}
			}
		}
	}
}

// tileCorners returns the heights of tile (x, y) in Slope bit order:
// N(x,y), E(x,y+1), S(x+1,y+1), W(x+1,y).
func tileCorners(corners []int, ch, x, y int) [4]int {
	return [4]int{
		corners[x*ch+y],
		corners[x*ch+y+1],
		corners[(x+1)*ch+y+1],
		corners[(x+1)*ch+y],
	}
}

// groundForLevel picks a ground type by relative height.
func groundForLevel(level, amplitude int) GroundType {
	if amplitude <= 0 {
		return GroundGrass
	}
	switch f := float64(level) / float64(amplitude); {
	case f < 0.25:
		return GroundSand
	case f < 0.7:
		return GroundGrass
	case f < 0.85:
		return GroundDirt
	default:
		return GroundRock
	}
}
