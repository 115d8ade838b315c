package text

import (
	"context"
	"errors"
)

// ErrNoFontAvailable is returned when a glyph is requested from an empty font list.
var ErrNoFontAvailable = errors.New("text: no font available")

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Fonts is an ordered font list, most preferred first.
type Fonts struct {
	fonts  []Font
	Logger Logger
}

// NewFonts returns a font list that keeps its own copy of fonts.
func NewFonts(fonts ...Font) *Fonts {
	return &Fonts{fonts: append([]Font(nil), fonts...)}
}

// Len returns the number of fonts.
func (f *Fonts) Len() int {
	if f == nil {
		return 0
	}
	return len(f.fonts)
}

// Resolve returns the first font that has a glyph for r. When no font does,
// the last font is returned so something is always rendered, typically its
// missing-glyph box. A nil list behaves like an empty one.
func (f *Fonts) Resolve(r rune) (Font, error) {
	if f == nil || len(f.fonts) == 0 {
		return nil, ErrNoFontAvailable
	}
	for _, font := range f.fonts {
		if font.HasGlyph(r) {
			return font, nil
		}
	}
	if f.Logger != nil {
		f.Logger.Infof("text", "no font has a glyph for %q, using font %d", r, len(f.fonts)-1)
	}
	return f.fonts[len(f.fonts)-1], nil
}

// Measure resolves s through resolver and returns the width and height it
// takes at scale. The width includes the spacing after every glyph.
func (f *Fonts) Measure(ctx context.Context, s string, scale Scale, resolver MeasureResolver) (width, height int, err error) {
	if resolver == nil {
		resolver = PlainText
	}
	resolved, err := resolver.ResolveMeasure(ctx, s, scale)
	if err != nil {
		return 0, 0, err
	}
	spacing := scale.Spacing()
	for _, r := range resolved {
		font, err := f.Resolve(r)
		if err != nil {
			return 0, 0, err
		}
		l := LayoutGlyph(scale, font, r)
		width += l.Width + spacing
		height = max(height, l.Height)
	}
	return width, height, nil
}
