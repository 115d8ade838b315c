// Package raster defines the pixel buffers the painting and text packages draw into.
//
// A Canvas is addressed by (x, y) in [0, Width()) × [0, Height()) regardless of
// where the backing image's bounds start, and exposes its pixels as fixed-size
// channel arrays so color arithmetic can work on any channel count.
package raster

import (
	"image"
	"image/draw"
)

// Channels is the set of 8-bit pixel layouts a Canvas can hold.
type Channels interface {
	~[1]uint8 | ~[2]uint8 | ~[3]uint8 | ~[4]uint8
}

// Canvas is a mutable 2-D grid of pixels with channel layout C.
//
// Canvases also implement draw.Image so the image/draw and x/image/draw
// primitives can resample and composite them.
type Canvas[C Channels] interface {
	draw.Image

	Width() int
	Height() int

	// Pixel returns the pixel at (x, y). The coordinates must be in range.
	Pixel(x, y int) C
	// SetPixel replaces the pixel at (x, y). The coordinates must be in range.
	SetPixel(x, y int, c C)

	// Blank returns a new zeroed canvas of the same kind.
	Blank(width, height int) Canvas[C]
}

// Allocator creates blank canvases of one concrete kind.
type Allocator[C Channels] func(width, height int) Canvas[C]

// Allocators for the canvas kinds provided by this package.
var (
	AllocNRGBA Allocator[[4]uint8] = func(width, height int) Canvas[[4]uint8] { return NewNRGBA(width, height) }
	AllocRGBA  Allocator[[4]uint8] = func(width, height int) Canvas[[4]uint8] { return NewRGBA(width, height) }
	AllocGray  Allocator[[1]uint8] = func(width, height int) Canvas[[1]uint8] { return NewGray(width, height) }
)

// From converts img into a new canvas, going through the canvas color model.
func (a Allocator[C]) From(img image.Image) Canvas[C] {
	b := img.Bounds()
	dst := a(b.Dx(), b.Dy())
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// NRGBA is a canvas of non-premultiplied RGBA pixels.
type NRGBA struct{ *image.NRGBA }

// NewNRGBA allocates a transparent width×height canvas.
func NewNRGBA(width, height int) *NRGBA {
	return &NRGBA{image.NewNRGBA(image.Rect(0, 0, width, height))}
}

func (c *NRGBA) Width() int  { return c.Rect.Dx() }
func (c *NRGBA) Height() int { return c.Rect.Dy() }

func (c *NRGBA) Pixel(x, y int) [4]uint8 {
	i := c.PixOffset(c.Rect.Min.X+x, c.Rect.Min.Y+y)
	return [4]uint8(c.Pix[i : i+4])
}

func (c *NRGBA) SetPixel(x, y int, px [4]uint8) {
	i := c.PixOffset(c.Rect.Min.X+x, c.Rect.Min.Y+y)
	copy(c.Pix[i:i+4], px[:])
}

func (c *NRGBA) Blank(width, height int) Canvas[[4]uint8] { return NewNRGBA(width, height) }

// RGBA is a canvas of alpha-premultiplied RGBA pixels.
type RGBA struct{ *image.RGBA }

// NewRGBA allocates a transparent width×height canvas.
func NewRGBA(width, height int) *RGBA {
	return &RGBA{image.NewRGBA(image.Rect(0, 0, width, height))}
}

func (c *RGBA) Width() int  { return c.Rect.Dx() }
func (c *RGBA) Height() int { return c.Rect.Dy() }

func (c *RGBA) Pixel(x, y int) [4]uint8 {
	i := c.PixOffset(c.Rect.Min.X+x, c.Rect.Min.Y+y)
	return [4]uint8(c.Pix[i : i+4])
}

func (c *RGBA) SetPixel(x, y int, px [4]uint8) {
	i := c.PixOffset(c.Rect.Min.X+x, c.Rect.Min.Y+y)
	copy(c.Pix[i:i+4], px[:])
}

func (c *RGBA) Blank(width, height int) Canvas[[4]uint8] { return NewRGBA(width, height) }

// Gray is a single-channel canvas.
type Gray struct{ *image.Gray }

// NewGray allocates a black width×height canvas.
func NewGray(width, height int) *Gray {
	return &Gray{image.NewGray(image.Rect(0, 0, width, height))}
}

func (c *Gray) Width() int  { return c.Rect.Dx() }
func (c *Gray) Height() int { return c.Rect.Dy() }

func (c *Gray) Pixel(x, y int) [1]uint8 {
	return [1]uint8{c.Pix[c.PixOffset(c.Rect.Min.X+x, c.Rect.Min.Y+y)]}
}

func (c *Gray) SetPixel(x, y int, px [1]uint8) {
	c.Pix[c.PixOffset(c.Rect.Min.X+x, c.Rect.Min.Y+y)] = px[0]
}

func (c *Gray) Blank(width, height int) Canvas[[1]uint8] { return NewGray(width, height) }
