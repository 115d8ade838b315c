package text

import "github.com/rook-computer/imageutil/raster"

// Run is one segment of resolved content, drawn left to right in sequence
// order. It holds either literal text or, when Image is set, an embedded
// canvas sharing the destination's channel layout.
type Run[C raster.Channels] struct {
	Text  string
	Image raster.Canvas[C]
}

// TextRun returns a run of literal text.
func TextRun[C raster.Channels](s string) Run[C] { return Run[C]{Text: s} }

// ImageRun returns a run that embeds img.
func ImageRun[C raster.Channels](img raster.Canvas[C]) Run[C] { return Run[C]{Image: img} }

// IsImage reports whether the run embeds a canvas.
func (r Run[C]) IsImage() bool { return r.Image != nil }
