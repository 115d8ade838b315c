// Package layout holds integer rectangle and size helpers used to place
// text boxes and embedded images.
package layout

import (
	"image"
	"math"
)

// Inset shrinks rect by paddingPx on all sides.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	out := image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
	return Normalize(out)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// SplitHorizontal splits rect into top and bottom parts.
// topHeightPx is clamped to [0, rect.Dy()].
func SplitHorizontal(rect image.Rectangle, topHeightPx int) (top image.Rectangle, bottom image.Rectangle) {
	rect = Normalize(rect)
	mid := rect.Min.Y + clamp(topHeightPx, 0, rect.Dy())
	return image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, mid), image.Rect(rect.Min.X, mid, rect.Max.X, rect.Max.Y)
}

// ClampPoint clamps p into [0, width] × [0, height].
// The upper bounds are inclusive so a point may sit on the far edge.
func ClampPoint(p image.Point, width, height int) image.Point {
	return image.Pt(clamp(p.X, 0, width), clamp(p.Y, 0, height))
}

// FitSize returns the largest size with the aspect ratio of widthPx×heightPx
// that fits into maxWidthPx×maxHeightPx. Each side is rounded to the nearest
// pixel and never drops below 1. An empty source yields (0, 0).
func FitSize(widthPx, heightPx, maxWidthPx, maxHeightPx int) (int, int) {
	if widthPx <= 0 || heightPx <= 0 {
		return 0, 0
	}
	ratio := math.Min(float64(maxWidthPx)/float64(widthPx), float64(maxHeightPx)/float64(heightPx))
	w := int(math.Round(float64(widthPx) * ratio))
	h := int(math.Round(float64(heightPx) * ratio))
	return max(w, 1), max(h, 1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
