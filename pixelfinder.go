package isoview

// PixelFinder finds the topmost non-transparent sprite pixel at a screen
// point. Configure it with a 1x1 window at the probe point.
type PixelFinder struct {
	Walker

	Found    bool     // a pixel was found
	Distance int      // depth key of the voxel owning the pixel
	Pixel    uint8    // palette index of the pixel
	Voxel    VoxelPos // voxel owning the pixel

	store SpriteStore
}

// NewPixelFinder creates a pixel finder for the camera's current view.
func NewPixelFinder(cam *Camera, store SpriteStore) *PixelFinder {
	return &PixelFinder{
		Walker: NewWalker(cam),
		store:  store,
	}
}

// Find walks world and records the nearest opaque pixel under the probe.
func (f *PixelFinder) Find(world World) {
	f.Found = false
	f.Walk(world, f.collectVoxel)
}

// collectVoxel tests whether the voxel's ground sprite covers the probe
// point and is nearer than the best candidate so far.
func (f *PixelFinder) collectVoxel(v *Voxel, x, y, z int, northX, northY int) {
	if v.Type != VoxelSurface {
		return
	}
	ground := v.Surface.Ground
	if ground.Type == GroundInvalid {
		return
	}
	spr := f.store.SurfaceSprite(ground.Type, ground.Slope, f.TileWidth, f.Orientation)
	if spr == nil {
		return
	}
	dist := f.DepthKey(x, y, z)
	if f.Found && dist <= f.Distance {
		return // only a strictly nearer voxel replaces the candidate
	}

	xoffset := f.Rect.X - northX - spr.XOffset
	yoffset := f.Rect.Y - northY - spr.YOffset
	if xoffset < 0 || yoffset < 0 {
		return
	}
	pixel := spr.Pixel(xoffset, yoffset)
	if pixel == ColorTransparent {
		return // probe misses the drawn shape of this ground tile
	}

	f.Found = true
	f.Distance = dist
	f.Pixel = pixel
	f.Voxel = VoxelPos{X: x, Y: y, Z: z}
}
