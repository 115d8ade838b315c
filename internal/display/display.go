// Package display shows rendered canvases on the Linux framebuffer console.
//
// On other platforms every entry point returns ErrUnsupported, so the
// drivers fall back to writing PNG files.
package display

import (
	"errors"
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// ErrUnsupported is returned where no framebuffer console exists.
var ErrUnsupported = errors.New("display: not supported on this platform")

// DefaultDevice is the framebuffer the drivers open.
const DefaultDevice = "/dev/fb0"

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Blit scales src to cover dst with nearest-neighbor sampling. The
// framebuffer has no alpha, so every written pixel is opaque.
func Blit(dst draw.Image, src image.Image) {
	bounds := dst.Bounds()
	if bounds.Empty() || src.Bounds().Empty() {
		return
	}
	scaled := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	xdraw.NearestNeighbor.Scale(scaled, scaled.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			p := scaled.NRGBAAt(x, y)
			dst.Set(bounds.Min.X+x, bounds.Min.Y+y, color.RGBA{R: p.R, G: p.G, B: p.B, A: 0xFF})
		}
	}
}
