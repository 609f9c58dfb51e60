package isoview

// VoxelHandler is called by Walker.Walk for each voxel whose projection
// touches the walker's screen rectangle. northX and northY are the projected
// screen coordinates of the column's top corner at the voxel's height.
type VoxelHandler func(v *Voxel, x, y, z int, northX, northY int)

// Walker scans the world for voxels visible inside a screen rectangle.
// The rectangle is positioned relative to the projected camera focus.
type Walker struct {
	Projector

	// XView, YView and ZView are the fixed-point world position the
	// rectangle is anchored to.
	XView, YView, ZView int

	// Rect is the screen area of interest in projected coordinates. Set it
	// with SetWindowSize.
	Rect Rect

	// Scanned and Visited count columns tested and voxels handed to the
	// handler by the last Walk.
	Scanned, Visited int
}

// NewWalker creates a walker looking from the camera's focus point.
func NewWalker(cam *Camera) Walker {
	return Walker{
		Projector: cam.Projector(),
		XView:     cam.X,
		YView:     cam.Y,
		ZView:     cam.Z,
	}
}

// SetWindowSize sets the screen area of interest. xpos and ypos are the
// offset of its top-left corner from the projected focus point.
func (w *Walker) SetWindowSize(xpos, ypos, width, height int) {
	w.Rect = Rect{
		X:      w.ComputeX(w.XView, w.YView) + xpos,
		Y:      w.ComputeY(w.XView, w.YView, w.ZView) + ypos,
		Width:  width,
		Height: height,
	}
}

// Walk calls fn once for every voxel whose tile footprint may overlap the
// rectangle. Voxels are visited column by column, bottom to top, in no
// particular depth order.
//
// TODO: every column of the world is tested on each call; index the columns
// by screen position once worlds get large.
func (w *Walker) Walk(world World, fn VoxelHandler) {
	w.Scanned, w.Visited = 0, 0
	xsize, ysize := world.Size()

	// Tile offset of the column corner that is at the top of the screen.
	var dx, dy int
	if w.Orientation == South || w.Orientation == West {
		dx = 1
	}
	if w.Orientation == South || w.Orientation == East {
		dy = 1
	}

	halfWidth := w.TileWidth / 2
	left, right := w.Rect.X, w.Rect.X+w.Rect.Width
	top, bottom := w.Rect.Y, w.Rect.Y+w.Rect.Height

	for xpos := 0; xpos < xsize; xpos++ {
		worldX := (xpos + dx) * WorldUnit
		for ypos := 0; ypos < ysize; ypos++ {
			worldY := (ypos + dy) * WorldUnit
			w.Scanned++

			northX := w.ComputeX(worldX, worldY)
			if northX+halfWidth <= left {
				continue // column is left of the rectangle
			}
			if northX-halfWidth >= right {
				continue // column is right of the rectangle
			}

			stack := world.Stack(xpos, ypos)
			if stack == nil {
				continue
			}
			for i := range stack.Voxels {
				zpos := stack.Base + i
				northY := w.ComputeY(worldX, worldY, zpos*WorldUnit)
				if northY-w.TileHeight >= bottom {
					continue // below the rectangle
				}
				if northY+halfWidth+w.TileHeight <= top {
					break // above the rectangle, and higher voxels only rise further
				}
				w.Visited++
				fn(&stack.Voxels[i], xpos, ypos, zpos, northX, northY)
			}
		}
	}
}
