package isoview

import (
	"errors"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	// ErrSurfaceLocked is returned by Lock when the surface is already locked.
	ErrSurfaceLocked = errors.New("isoview: surface already locked")
	// ErrSurfaceNotLocked is returned by Unlock on an unlocked surface.
	ErrSurfaceNotLocked = errors.New("isoview: surface not locked")
	// ErrNoTarget is returned when an EbitenSurface has no target image.
	ErrNoTarget = errors.New("isoview: surface has no target image")
)

// Surface is the display the viewport draws into. Fill and Blit may only be
// called between a successful Lock and the matching Unlock.
type Surface interface {
	Lock() error
	Unlock() error
	// Fill sets every pixel to the palette color index c.
	Fill(c uint8)
	// Blit draws spr with its top-left pixel at base. Transparent pixels are
	// skipped and nothing is drawn outside clip.
	Blit(base Point, spr *Sprite, clip Rect)
}

// withLock runs fn with s locked and always unlocks afterwards.
func withLock(s Surface, fn func()) (err error) {
	if err := s.Lock(); err != nil {
		return err
	}
	defer func() {
		if uerr := s.Unlock(); err == nil {
			err = uerr
		}
	}()
	fn()
	return nil
}

// surfaceLock tracks the lock state shared by the surface implementations.
type surfaceLock struct {
	locked bool
}

func (l *surfaceLock) lock() error {
	if l.locked {
		return ErrSurfaceLocked
	}
	l.locked = true
	return nil
}

func (l *surfaceLock) unlock() error {
	if !l.locked {
		return ErrSurfaceNotLocked
	}
	l.locked = false
	return nil
}

// mustLocked panics on a pixel write outside Lock/Unlock.
func (l *surfaceLock) mustLocked(op string) {
	if !l.locked {
		panic(fmt.Sprintf("isoview: %s on unlocked surface", op))
	}
}

// --- Software surface ---

// ImageSurface is an 8-bit paletted software surface.
type ImageSurface struct {
	surfaceLock
	img *image.Paletted

	// Blits counts Blit calls since creation.
	Blits int
}

// NewImageSurface creates a width x height surface using Palette.
func NewImageSurface(width, height int) *ImageSurface {
	return &ImageSurface{img: image.NewPaletted(image.Rect(0, 0, width, height), Palette)}
}

// Lock implements Surface.
func (s *ImageSurface) Lock() error { return s.lock() }

// Unlock implements Surface.
func (s *ImageSurface) Unlock() error { return s.unlock() }

// Fill implements Surface.
func (s *ImageSurface) Fill(c uint8) {
	s.mustLocked("Fill")
	for i := range s.img.Pix {
		s.img.Pix[i] = c
	}
}

// Blit implements Surface.
func (s *ImageSurface) Blit(base Point, spr *Sprite, clip Rect) {
	s.mustLocked("Blit")
	s.Blits++
	b := s.img.Bounds()
	area := clip.Intersect(Rect{X: b.Min.X, Y: b.Min.Y, Width: b.Dx(), Height: b.Dy()}).
		Intersect(Rect{X: base.X, Y: base.Y, Width: spr.Width(), Height: spr.Height()})
	if area.Empty() {
		return
	}
	for y := area.Y; y < area.Y+area.Height; y++ {
		row := y * s.img.Stride
		for x := area.X; x < area.X+area.Width; x++ {
			if c := spr.Pixel(x-base.X, y-base.Y); c != ColorTransparent {
				s.img.Pix[row+x] = c
			}
		}
	}
}

// Pixel returns the palette index at (x, y), or ColorTransparent outside
// the surface.
func (s *ImageSurface) Pixel(x, y int) uint8 {
	if !(image.Point{X: x, Y: y}).In(s.img.Rect) {
		return ColorTransparent
	}
	return s.img.Pix[y*s.img.Stride+x]
}

// Image returns the surface pixels.
func (s *ImageSurface) Image() *image.Paletted {
	return s.img
}

// --- Ebiten surface ---

// EbitenSurface draws into an ebiten image, usually the screen passed to
// ebiten.Game.Draw.
type EbitenSurface struct {
	surfaceLock
	target *ebiten.Image
	op     ebiten.DrawImageOptions
}

// NewEbitenSurface creates a surface drawing into target.
func NewEbitenSurface(target *ebiten.Image) *EbitenSurface {
	return &EbitenSurface{target: target}
}

// SetTarget changes the image drawn into. Ebiten hands out a new screen
// image per frame.
func (s *EbitenSurface) SetTarget(target *ebiten.Image) {
	s.target = target
}

// Lock implements Surface.
func (s *EbitenSurface) Lock() error {
	if s.target == nil {
		return ErrNoTarget
	}
	return s.lock()
}

// Unlock implements Surface.
func (s *EbitenSurface) Unlock() error { return s.unlock() }

// Fill implements Surface.
func (s *EbitenSurface) Fill(c uint8) {
	s.mustLocked("Fill")
	s.target.Fill(Palette[c])
}

// Blit implements Surface.
func (s *EbitenSurface) Blit(base Point, spr *Sprite, clip Rect) {
	s.mustLocked("Blit")
	b := s.target.Bounds()
	area := clip.Intersect(Rect{X: b.Min.X, Y: b.Min.Y, Width: b.Dx(), Height: b.Dy()})
	if area.Empty() {
		return
	}
	dst := s.target.SubImage(image.Rect(area.X, area.Y, area.X+area.Width, area.Y+area.Height)).(*ebiten.Image)
	s.op.GeoM.Reset()
	s.op.GeoM.Translate(float64(base.X), float64(base.Y))
	dst.DrawImage(spr.EbitenImage(), &s.op)
}
