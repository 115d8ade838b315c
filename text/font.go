package text

import "image"

// Scale is the horizontal and vertical glyph size in pixels. Y is the pixel
// height of a font's ascent-to-descent extent; X is its horizontal counterpart.
type Scale struct {
	X, Y float32
}

// Uniform returns a Scale with equal horizontal and vertical size.
func Uniform(s float32) Scale { return Scale{X: s, Y: s} }

// Mul scales both axes by f.
func (s Scale) Mul(f float32) Scale { return Scale{X: s.X * f, Y: s.Y * f} }

// Spacing is the gap the layout adds after every glyph at this scale.
func (s Scale) Spacing() int { return int(s.X) / 15 }

// Font is a read-only glyph source. Implementations must be safe for
// concurrent use; the same fonts are shared across draw calls.
type Font interface {
	// HasGlyph reports whether r maps to a glyph other than the missing-glyph glyph.
	HasGlyph(r rune) bool
	// Ascent returns the distance in pixels from the top of the line to the baseline.
	Ascent(scale Scale) float32
	// Glyph rasterizes r with its origin at (0, baseline). ok is false when
	// the glyph has no visible pixels.
	Glyph(r rune, scale Scale, baseline float32) (g Glyph, ok bool)
}

// Glyph is a rasterized glyph.
type Glyph struct {
	// Bounds is the pixel bounding box relative to the layout origin.
	Bounds image.Rectangle
	// Mask carries coverage in its alpha channel. The mask pixel at
	// MaskOrigin corresponds to Bounds.Min.
	Mask       image.Image
	MaskOrigin image.Point
}

// Coverage returns the coverage in [0, 1] at offset (dx, dy) from Bounds.Min.
func (g Glyph) Coverage(dx, dy int) float32 {
	x, y := g.MaskOrigin.X+dx, g.MaskOrigin.Y+dy
	switch m := g.Mask.(type) {
	case nil:
		return 0
	case *image.Alpha:
		return float32(m.AlphaAt(x, y).A) / 0xff
	default:
		_, _, _, a := m.At(x, y).RGBA()
		return float32(a) / 0xffff
	}
}

// Layout is a glyph placed on a common baseline at horizontal offset zero.
type Layout struct {
	// Width is the right edge of the glyph's pixel box, excluding spacing.
	Width int
	// Height is the bottom edge of the glyph's pixel box.
	Height int

	Glyph   Glyph
	Visible bool
}

// LayoutGlyph positions r from font with its baseline at the font's ascent.
// Glyphs without visible pixels, such as spaces, lay out to a zero Layout.
func LayoutGlyph(scale Scale, font Font, r rune) Layout {
	g, ok := font.Glyph(r, scale, font.Ascent(scale))
	if !ok || g.Bounds.Empty() {
		return Layout{}
	}
	return Layout{
		Width:   max(0, g.Bounds.Max.X),
		Height:  max(0, g.Bounds.Max.Y),
		Glyph:   g,
		Visible: true,
	}
}
