package isoview

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite is an immutable 8-bit paletted image with an anchor. XOffset and
// YOffset give the position of the top-left pixel relative to the projected
// anchor point (the north corner of a tile). Pixel value 0 is transparent.
type Sprite struct {
	XOffset, YOffset int

	img   *image.Paletted
	ebImg *ebiten.Image // built on first blit to an ebiten target
}

// NewSprite wraps img. The image bounds are normalised so its top-left
// pixel is (0, 0).
func NewSprite(img *image.Paletted, xoffset, yoffset int) *Sprite {
	if b := img.Bounds(); b.Min != (image.Point{}) {
		img = img.SubImage(b).(*image.Paletted)
		img.Rect = image.Rect(0, 0, b.Dx(), b.Dy())
	}
	return &Sprite{XOffset: xoffset, YOffset: yoffset, img: img}
}

// NewBlankSprite returns a transparent width x height sprite using Palette.
func NewBlankSprite(width, height, xoffset, yoffset int) *Sprite {
	img := image.NewPaletted(image.Rect(0, 0, width, height), Palette)
	return &Sprite{XOffset: xoffset, YOffset: yoffset, img: img}
}

// Width returns the sprite width in pixels.
func (s *Sprite) Width() int { return s.img.Rect.Dx() }

// Height returns the sprite height in pixels.
func (s *Sprite) Height() int { return s.img.Rect.Dy() }

// Pixel returns the palette index at sprite-local (x, y). Positions outside
// the sprite are transparent.
func (s *Sprite) Pixel(x, y int) uint8 {
	if x < 0 || y < 0 || x >= s.Width() || y >= s.Height() {
		return ColorTransparent
	}
	return s.img.Pix[y*s.img.Stride+x]
}

// SetPixel writes palette index c at sprite-local (x, y). Only meant for
// building sprites before they are handed to a sprite store.
func (s *Sprite) SetPixel(x, y int, c uint8) {
	if x < 0 || y < 0 || x >= s.Width() || y >= s.Height() {
		return
	}
	s.img.Pix[y*s.img.Stride+x] = c
}

// Paletted returns the sprite pixels. The image must not be modified.
func (s *Sprite) Paletted() *image.Paletted {
	return s.img
}

// EbitenImage returns the sprite as an ebiten image, creating it on first use.
func (s *Sprite) EbitenImage() *ebiten.Image {
	if s.ebImg == nil {
		s.ebImg = ebiten.NewImageFromImage(s.img)
	}
	return s.ebImg
}
