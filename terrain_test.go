package isoview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallTerrain(seed int64) TerrainConfig {
	cfg := DefaultTerrainConfig()
	cfg.Width, cfg.Height, cfg.Seed = 24, 16, seed
	return cfg
}

func TestGenerateTerrain_Deterministic(t *testing.T) {
	a := GenerateTerrain(smallTerrain(7))
	b := GenerateTerrain(smallTerrain(7))
	assert.Equal(t, a, b)
}

func TestGenerateTerrain_OneSurfacePerColumn(t *testing.T) {
	cfg := smallTerrain(3)
	g := GenerateTerrain(cfg)
	xs, ys := g.Size()
	require.Equal(t, 24, xs)
	require.Equal(t, 16, ys)

	for x := 0; x < xs; x++ {
		for y := 0; y < ys; y++ {
			s := g.Stack(x, y)
			require.NotNil(t, s)
			require.Equal(t, 1, s.Height(), "column (%d,%d)", x, y)
			v := s.Voxels[0]
			assert.Equal(t, VoxelSurface, v.Type)
			assert.NotEqual(t, GroundInvalid, v.Surface.Ground.Type)
			assert.NotEqual(t, slopeCornerMask, v.Surface.Ground.Slope&slopeCornerMask, "all corners raised at (%d,%d)", x, y)
			assert.Zero(t, v.Surface.Ground.Slope&SlopeSteep)
			assert.GreaterOrEqual(t, s.Base, cfg.BaseLevel)
			assert.LessOrEqual(t, s.Base, cfg.BaseLevel+cfg.Amplitude)
		}
	}
}

func TestGenerateTerrain_SlopesMatchCorners(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		cfg := DefaultTerrainConfig()
		cfg.Seed = seed
		corners, ch := terrainCorners(cfg)
		g := GenerateTerrain(cfg)

		for x := 0; x < cfg.Width; x++ {
			for y := 0; y < cfg.Height; y++ {
				s := g.Stack(x, y)
				slope := s.Voxels[0].Surface.Ground.Slope
				h := tileCorners(corners, ch, x, y)
				for c := 0; c < 4; c++ {
					if got := s.Base + slope.CornerHeight(c); got != h[c] {
						t.Fatalf("seed %d tile (%d,%d) corner %d drawn at %d, terrain is at %d",
							seed, x, y, c, got, h[c])
					}
				}
			}
		}
	}
}

func TestSmoothCorners(t *testing.T) {
	// A 4-level spike and a 3-level ridge in a 4x3 corner grid; every
	// raised corner touches a zero so it ends one level up.
	corners := []int{
		0, 0, 0,
		0, 4, 0,
		0, 0, 3,
		0, 0, 3,
	}
	smoothCorners(corners, 4, 3)
	assert.Equal(t, []int{
		0, 0, 0,
		0, 1, 0,
		0, 0, 1,
		0, 0, 1,
	}, corners)
}

func TestGenerateTerrain_DefaultScale(t *testing.T) {
	cfg := smallTerrain(5)
	cfg.Scale = 0
	withDefault := smallTerrain(5)
	assert.Equal(t, GenerateTerrain(withDefault), GenerateTerrain(cfg))
}

func TestGroundForLevel(t *testing.T) {
	assert.Equal(t, GroundGrass, groundForLevel(3, 0))
	assert.Equal(t, GroundSand, groundForLevel(0, 8))
	assert.Equal(t, GroundGrass, groundForLevel(4, 8))
	assert.Equal(t, GroundDirt, groundForLevel(6, 8))
	assert.Equal(t, GroundRock, groundForLevel(8, 8))
}
