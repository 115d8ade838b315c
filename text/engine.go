// Package text lays out and composites text, interleaved with embedded
// images, onto raster canvases.
//
// Glyphs are laid out one rune at a time with no kerning or shaping. Each
// rune is drawn with the first font in a Fonts list that has it, and the
// glyph coverage is blended over the existing destination pixels.
package text

import (
	"context"

	"github.com/rook-computer/imageutil/layout"
	"github.com/rook-computer/imageutil/paint"
	"github.com/rook-computer/imageutil/raster"
)

// Engine draws resolved text onto canvases with channel layout C.
// An Engine holds no per-call state; one canvas must not be drawn to from
// several goroutines at once.
type Engine[C raster.Channels] struct {
	Fonts  *Fonts
	Logger Logger
}

// NewEngine returns an engine that draws with fonts.
func NewEngine[C raster.Channels](fonts *Fonts) *Engine[C] {
	return &Engine[C]{Fonts: fonts}
}

// Box is the horizontal extent DrawCentered centers text in.
type Box struct {
	X, Y  int
	Width int
	// Shrink scales text that is wider than the box down to fit, drawing it
	// flush with X instead of letting it start left of the box.
	Shrink bool
}

// Measure returns the size s takes at scale; see Fonts.Measure.
func (e *Engine[C]) Measure(ctx context.Context, s string, scale Scale, resolver MeasureResolver) (width, height int, err error) {
	return e.Fonts.Measure(ctx, s, scale, resolver)
}

// Draw resolves s into runs and draws them onto dst left to right, starting
// with the top of the line at (x, y). It returns the cursor position after
// the last run. Pixels outside dst are skipped.
//
// Resolver errors are returned unchanged.
func (e *Engine[C]) Draw(ctx context.Context, dst raster.Canvas[C], s string, scale Scale, color C, x, y int, resolver RenderResolver[C]) (int, error) {
	if resolver == nil {
		resolver = SingleRun[C]()
	}
	runs, err := resolver.ResolveRender(ctx, s, scale)
	if err != nil {
		return x, err
	}
	if err := ctx.Err(); err != nil {
		return x, err
	}

	spacing := scale.Spacing()
	for _, run := range runs {
		if run.IsImage() {
			x = e.drawImage(dst, run.Image, scale, x, y)
			continue
		}
		for _, r := range run.Text {
			font, err := e.Fonts.Resolve(r)
			if err != nil {
				return x, err
			}
			l := LayoutGlyph(scale, font, r)
			if l.Visible {
				drawGlyph(dst, l.Glyph, color, x, y)
			}
			x += l.Width + spacing
		}
	}
	return x, nil
}

// DrawCentered draws s horizontally centered in box. The width used for
// centering comes from measure, which may differ from what render draws.
//
// When the text is wider than the box and box.Shrink is set, the scale is
// reduced by box.Width/width and the text starts at box.X.
func (e *Engine[C]) DrawCentered(ctx context.Context, dst raster.Canvas[C], s string, scale Scale, color C, box Box, render RenderResolver[C], measure MeasureResolver) (int, error) {
	textWidth, _, err := e.Measure(ctx, s, scale, measure)
	if err != nil {
		return box.X, err
	}
	x := box.X + (box.Width-textWidth)/2
	if x < box.X && box.Shrink && textWidth > 0 {
		factor := float32(box.Width) / float32(textWidth)
		if e.Logger != nil {
			e.Logger.Infof("text", "shrinking %q by %.3f to fit %dpx", s, factor, box.Width)
		}
		scale = scale.Mul(factor)
		x = box.X
	}
	return e.Draw(ctx, dst, s, scale, color, x, box.Y, render)
}

// drawImage fits img into 90% of the scale, overlays it after a small left
// margin and returns the advanced cursor.
func (e *Engine[C]) drawImage(dst, img raster.Canvas[C], scale Scale, x, y int) int {
	w, h := layout.FitSize(img.Width(), img.Height(), int(scale.X*0.9), int(scale.Y*0.9))
	if w == 0 || h == 0 {
		if e.Logger != nil {
			e.Logger.Errorf("text", "skipping empty image run %dx%d", img.Width(), img.Height())
		}
		return x + int(scale.X)/5
	}
	resized := raster.ResizeNearest(img, w, h)
	raster.Overlay(dst, resized, x+int(scale.X)/10, y)
	return x + resized.Width() + int(scale.X)/5
}

// drawGlyph blends color over dst wherever g has coverage. Full coverage
// yields color; zero coverage keeps the destination pixel.
func drawGlyph[C raster.Channels](dst raster.Canvas[C], g Glyph, color C, x, y int) {
	width, height := dst.Width(), dst.Height()
	for dy := 0; dy < g.Bounds.Dy(); dy++ {
		py := y + g.Bounds.Min.Y + dy
		if py < 0 || py >= height {
			continue
		}
		for dx := 0; dx < g.Bounds.Dx(); dx++ {
			px := x + g.Bounds.Min.X + dx
			if px < 0 || px >= width {
				continue
			}
			coverage := g.Coverage(dx, dy)
			dst.SetPixel(px, py, paint.Mix(color, dst.Pixel(px, py), 1.0-coverage))
		}
	}
}
