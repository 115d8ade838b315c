package raster

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// Clone copies src pixel by pixel into a new canvas of the same kind and size.
func Clone[C Channels](src Canvas[C]) Canvas[C] {
	w, h := src.Width(), src.Height()
	dst := src.Blank(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.SetPixel(x, y, src.Pixel(x, y))
		}
	}
	return dst
}

// ResizeNearest returns src resampled to width×height with nearest-neighbor
// sampling. Empty target sizes yield an empty canvas.
func ResizeNearest[C Channels](src Canvas[C], width, height int) Canvas[C] {
	dst := src.Blank(width, height)
	if width <= 0 || height <= 0 || src.Width() == 0 || src.Height() == 0 {
		return dst
	}
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// Overlay composites src over dst with its top-left corner at (x, y).
// Parts of src outside dst are clipped; x and y may be negative.
func Overlay[C Channels](dst, src Canvas[C], x, y int) {
	at := dst.Bounds().Min.Add(image.Pt(x, y))
	r := image.Rectangle{Min: at, Max: at.Add(image.Pt(src.Width(), src.Height()))}
	draw.Draw(dst, r, src, src.Bounds().Min, draw.Over)
}
