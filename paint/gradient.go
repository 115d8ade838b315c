package paint

import (
	"image"

	"github.com/rook-computer/imageutil/layout"
	"github.com/rook-computer/imageutil/raster"
)

// LinearGradient blends StartColor at Start into EndColor at End across the
// rectangle the two points span. The blend factor of a pixel is the average
// of its normalized horizontal and vertical offsets, so colors change along
// the diagonal of the rectangle.
type LinearGradient[C raster.Channels] struct {
	StartColor C
	EndColor   C
	Start      image.Point
	End        image.Point
}

// Region returns the rectangle the gradient covers on a width×height canvas.
// Both points are clamped to [0, width] × [0, height] first; if the clamped
// end lies left of or above the clamped start a *GeometryError is returned.
func (g LinearGradient[C]) Region(width, height int) (image.Rectangle, error) {
	start := layout.ClampPoint(g.Start, width, height)
	end := layout.ClampPoint(g.End, width, height)
	if end.X < start.X || end.Y < start.Y {
		return image.Rectangle{}, &GeometryError{Start: start, End: end}
	}
	return image.Rectangle{Min: start, Max: end}, nil
}

// FillLinearGradient paints g onto dst in place.
func FillLinearGradient[C raster.Channels](dst raster.Canvas[C], g LinearGradient[C]) error {
	region, err := g.Region(dst.Width(), dst.Height())
	if err != nil {
		return err
	}
	width, height := region.Dx(), region.Dy()
	fw, fh := float32(width), float32(height)
	for dx := 0; dx < width; dx++ {
		for dy := 0; dy < height; dy++ {
			p := (float32(dx)/fw + float32(dy)/fh) / 2.0
			dst.SetPixel(region.Min.X+dx, region.Min.Y+dy, Mix(g.StartColor, g.EndColor, p))
		}
	}
	return nil
}

// LinearGradientCopy paints g onto a copy of src and returns the copy.
// src is left untouched.
func LinearGradientCopy[C raster.Channels](src raster.Canvas[C], g LinearGradient[C]) (raster.Canvas[C], error) {
	if _, err := g.Region(src.Width(), src.Height()); err != nil {
		return nil, err
	}
	dst := raster.Clone(src)
	if err := FillLinearGradient(dst, g); err != nil {
		return nil, err
	}
	return dst, nil
}
