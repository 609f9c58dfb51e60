// Package isoview renders isometric voxel worlds for [Ebitengine].
//
// A world is a grid of voxel columns. Each column stacks voxels from a base
// level upward; surface voxels carry a ground type and a corner slope. The
// package projects the world onto the screen in one of four orientations,
// draws the visible part through a rectangular [Viewport] and answers the
// inverse question of which voxel owns a given screen pixel.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	cfg := isoview.DefaultRunConfig()
//	vp := isoview.NewViewportFromConfig(cfg)
//	vp.SetMouseMode(isoview.MouseTileTerraform)
//	if err := isoview.Run(vp, cfg); err != nil {
//		log.Fatal(err)
//	}
//
// For full control, implement [ebiten.Game] yourself, wrap the screen in an
// [EbitenSurface] and call [Viewport.Draw]. Feed mouse events to
// [Viewport.OnMouseMove], [Viewport.OnMouseButton] and friends.
//
// # Coordinates
//
// World positions are fixed point with [WorldUnit] units per tile, so the
// column (x, y) spans [x*256, (x+1)*256). Screen positions are integer
// pixels with Y growing downward. A [Projector] maps one to the other for a
// tile size and [Orientation]; [Projector.DepthKey] orders voxels back to
// front for that orientation.
//
// # Rendering
//
// A frame is produced in three steps. A [Walker] visits every voxel whose
// footprint may overlap the window. A [SpriteCollector] resolves each
// surface voxel to a [Sprite] from a [SpriteStore] and inserts it into a
// [DrawList]. The viewport then blits the list in depth order into a
// [Surface]. [ImageSurface] renders into an 8-bit paletted image without a
// GPU; [EbitenSurface] renders into an ebiten image.
//
// Picking runs the same walk over a 1x1 window: a [PixelFinder] keeps the
// nearest voxel whose sprite has an opaque pixel under the probe.
//
// # Assets
//
// [GenerateSpriteSheet] draws flat-shaded tiles for every ground type,
// slope and orientation at any tile size. [LoadSpriteSheet] reads a JSON
// manifest of frames cut from paletted pages. [GenerateTerrain] builds a
// Perlin-noise [Grid] to look at.
//
// # Testing
//
// Input can be scripted with [Viewport.InjectMove], [Viewport.InjectDrag]
// and friends, or with a JSON [TestRunner] that also captures screenshots.
// View changes are published to an optional [EntityStore]; the ecs
// submodule bridges them into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package isoview
