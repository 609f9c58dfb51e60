package isoview

// SpriteCollector gathers the sprites of all voxels visible in a window into
// a depth-ordered DrawList.
type SpriteCollector struct {
	Walker

	// XOffset and YOffset are the screen position of the window's top-left
	// corner.
	XOffset, YOffset int

	// Images receives the collected sprites.
	Images *DrawList

	store SpriteStore

	drawCursor bool
	cursor     VoxelPos
}

// NewSpriteCollector creates a collector for the camera's current view that
// resolves sprites from store.
func NewSpriteCollector(cam *Camera, store SpriteStore) *SpriteCollector {
	return &SpriteCollector{
		Walker: NewWalker(cam),
		Images: NewDrawList(),
		store:  store,
	}
}

// SetXYOffset sets the screen position of the window's top-left corner.
func (c *SpriteCollector) SetXYOffset(xoffset, yoffset int) {
	c.XOffset = xoffset
	c.YOffset = yoffset
}

// SetMouseCursor adds the cursor overlay to the ground of voxel (x, y, z).
func (c *SpriteCollector) SetMouseCursor(x, y, z int) {
	c.drawCursor = true
	c.cursor = VoxelPos{X: x, Y: y, Z: z}
}

// Collect walks world and fills Images.
func (c *SpriteCollector) Collect(world World) {
	c.Walk(world, c.collectVoxel)
}

// collectVoxel adds the sprites of one voxel to the draw list.
func (c *SpriteCollector) collectVoxel(v *Voxel, x, y, z int, northX, northY int) {
	if v.Type != VoxelSurface {
		return
	}
	ground := v.Surface.Ground
	if ground.Type == GroundInvalid {
		return
	}
	spr := c.store.SurfaceSprite(ground.Type, ground.Slope, c.TileWidth, c.Orientation)
	if spr == nil {
		return
	}
	var cursor *Sprite
	if c.drawCursor && c.cursor == (VoxelPos{X: x, Y: y, Z: z}) {
		cursor = c.store.CursorSprite(ground.Slope, c.TileWidth, c.Orientation)
	}
	c.Images.Insert(DrawEntry{
		Depth:  c.DepthKey(x, y, z),
		Sprite: spr,
		Cursor: cursor,
		Base: Point{
			X: c.XOffset + northX + spr.XOffset - c.Rect.X,
			Y: c.YOffset + northY + spr.YOffset - c.Rect.Y,
		},
	})
}
