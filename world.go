package isoview

// World is the read-only voxel world a viewport looks at. Columns are
// addressed by tile coordinates 0 <= x < xsize, 0 <= y < ysize.
type World interface {
	// Size returns the number of columns along the x and y axes.
	Size() (xsize, ysize int)
	// Stack returns the voxel column at (x, y). It may return nil for a
	// column without voxels.
	Stack(x, y int) *VoxelStack
}

// VoxelType selects which variant of Voxel is in use.
type VoxelType uint8

const (
	VoxelEmpty     VoxelType = iota // nothing in the voxel
	VoxelSurface                    // ground surface (Voxel.Surface is valid)
	VoxelReference                  // part of an object stored in another voxel
)

// GroundType is the kind of terrain drawn on a surface voxel.
type GroundType uint8

const (
	GroundInvalid GroundType = iota // no ground; never drawn
	GroundGrass
	GroundSand
	GroundDirt
	GroundRock

	groundTypeCount
)

func (g GroundType) String() string {
	switch g {
	case GroundInvalid:
		return "invalid"
	case GroundGrass:
		return "grass"
	case GroundSand:
		return "sand"
	case GroundDirt:
		return "dirt"
	case GroundRock:
		return "rock"
	default:
		return "unknown"
	}
}

// Slope describes which corners of a surface voxel are raised one level.
// Corner bits are in world directions, independent of the view.
type Slope uint8

const (
	SlopeFlat  Slope = 0
	SlopeNorth Slope = 1 << 0 // corner (x, y)
	SlopeEast  Slope = 1 << 1 // corner (x, y+1)
	SlopeSouth Slope = 1 << 2 // corner (x+1, y+1)
	SlopeWest  Slope = 1 << 3 // corner (x+1, y)
	SlopeSteep Slope = 1 << 4 // the single raised corner is raised two levels

	slopeCornerMask = SlopeNorth | SlopeEast | SlopeSouth | SlopeWest
)

// CornerHeight returns how many levels world corner c (0=N, 1=E, 2=S, 3=W)
// sits above the voxel floor.
func (s Slope) CornerHeight(c int) int {
	if s&(1<<c) == 0 {
		return 0
	}
	if s&SlopeSteep != 0 {
		return 2
	}
	return 1
}

// Ground is the terrain carried by a surface voxel.
type Ground struct {
	Type  GroundType
	Slope Slope
}

// SurfaceData is the payload of a VoxelSurface voxel.
type SurfaceData struct {
	Ground Ground
}

// Voxel is one cell of the world. Only the field matching Type is meaningful.
type Voxel struct {
	Type    VoxelType
	Surface SurfaceData
}

// SurfaceVoxel returns a surface voxel with the given ground.
func SurfaceVoxel(g GroundType, s Slope) Voxel {
	return Voxel{Type: VoxelSurface, Surface: SurfaceData{Ground: Ground{Type: g, Slope: s}}}
}

// VoxelStack is a contiguous run of voxels in one column, starting at
// height Base.
type VoxelStack struct {
	Base   int
	Voxels []Voxel
}

// Height returns the number of voxels in the stack.
func (s *VoxelStack) Height() int {
	return len(s.Voxels)
}

// Get returns the voxel at height z, or nil when z is outside the stack.
func (s *VoxelStack) Get(z int) *Voxel {
	i := z - s.Base
	if i < 0 || i >= len(s.Voxels) {
		return nil
	}
	return &s.Voxels[i]
}

// Set stores v at height z, growing the stack with empty voxels as needed.
func (s *VoxelStack) Set(z int, v Voxel) {
	if len(s.Voxels) == 0 {
		s.Base = z
		s.Voxels = append(s.Voxels[:0], v)
		return
	}
	if z < s.Base {
		grown := make([]Voxel, s.Base-z+len(s.Voxels))
		copy(grown[s.Base-z:], s.Voxels)
		s.Voxels = grown
		s.Base = z
	}
	for z >= s.Base+len(s.Voxels) {
		s.Voxels = append(s.Voxels, Voxel{})
	}
	s.Voxels[z-s.Base] = v
}

// VoxelPos is the tile position of a voxel.
type VoxelPos struct {
	X, Y, Z int
}

// Grid is an in-memory World. All columns live in one row-major slice owned
// by the grid.
type Grid struct {
	xsize, ysize int
	stacks       []VoxelStack
}

// NewGrid creates an empty world of xsize by ysize columns.
func NewGrid(xsize, ysize int) *Grid {
	return &Grid{
		xsize:  xsize,
		ysize:  ysize,
		stacks: make([]VoxelStack, xsize*ysize),
	}
}

// Size implements World.
func (g *Grid) Size() (int, int) {
	return g.xsize, g.ysize
}

// Stack implements World. Out-of-range coordinates return nil.
func (g *Grid) Stack(x, y int) *VoxelStack {
	if x < 0 || x >= g.xsize || y < 0 || y >= g.ysize {
		return nil
	}
	return &g.stacks[x*g.ysize+y]
}

// SetVoxel stores v at (x, y, z). Out-of-range columns are ignored.
func (g *Grid) SetVoxel(x, y, z int, v Voxel) {
	if s := g.Stack(x, y); s != nil {
		s.Set(z, v)
	}
}

// SetGround places a surface voxel with the given ground at (x, y, z).
func (g *Grid) SetGround(x, y, z int, gt GroundType, slope Slope) {
	g.SetVoxel(x, y, z, SurfaceVoxel(gt, slope))
}

// Fill places a flat surface of ground type gt at height z in every column.
func (g *Grid) Fill(z int, gt GroundType) {
	for x := 0; x < g.xsize; x++ {
		for y := 0; y < g.ysize; y++ {
			g.SetGround(x, y, z, gt, SlopeFlat)
		}
	}
}
