package text

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"
	"testing"
)

// blockFont draws every supported rune as a solid block half as wide as the
// scale, from the top of the line down to the baseline. Runes it does not
// support still render, as its missing-glyph box. Spaces have no pixels.
type blockFont struct {
	name     string
	runes    string
	coverage uint8
}

func newBlockFont(name, runes string) *blockFont {
	return &blockFont{name: name, runes: runes, coverage: 0xff}
}

func (f *blockFont) HasGlyph(r rune) bool       { return strings.ContainsRune(f.runes, r) }
func (f *blockFont) Ascent(scale Scale) float32 { return scale.Y * 0.8 }
func (f *blockFont) String() string             { return f.name }

func (f *blockFont) Glyph(r rune, scale Scale, baseline float32) (Glyph, bool) {
	if r == ' ' {
		return Glyph{}, false
	}
	w := int(scale.X / 2)
	if !f.HasGlyph(r) {
		w = int(scale.X / 3)
	}
	top := int(baseline - f.Ascent(scale))
	bounds := image.Rect(0, top, w, int(baseline))
	return Glyph{
		Bounds: bounds,
		Mask:   image.NewUniform(color.Alpha{A: f.coverage}),
	}, true
}

func TestResolvePrefersFirstSupportingFont(t *testing.T) {
	a := newBlockFont("A", "abc")
	b := newBlockFont("B", "abcあ")
	fonts := NewFonts(a, b)

	cases := []struct {
		r    rune
		want Font
	}{
		{'a', a},
		{'あ', b},
		{'漢', b}, // no font has it: last font, not an error
	}
	for _, tc := range cases {
		got, err := fonts.Resolve(tc.r)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", tc.r, err)
		}
		if got != tc.want {
			t.Errorf("Resolve(%q) = %v, want %v", tc.r, got, tc.want)
		}
	}
}

func TestResolveEmptyFontList(t *testing.T) {
	if _, err := NewFonts().Resolve('a'); !errors.Is(err, ErrNoFontAvailable) {
		t.Fatalf("expected ErrNoFontAvailable, got %v", err)
	}
	if _, _, err := NewFonts().Measure(context.Background(), "a", Uniform(30), nil); !errors.Is(err, ErrNoFontAvailable) {
		t.Fatalf("Measure on empty list: expected ErrNoFontAvailable, got %v", err)
	}
	if _, _, err := NewFonts().Measure(context.Background(), "", Uniform(30), nil); err != nil {
		t.Fatalf("measuring empty text needs no font, got %v", err)
	}
}

func TestResolveNilFontList(t *testing.T) {
	var fonts *Fonts
	if fonts.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", fonts.Len())
	}
	if _, err := fonts.Resolve('a'); !errors.Is(err, ErrNoFontAvailable) {
		t.Fatalf("expected ErrNoFontAvailable, got %v", err)
	}
}

func TestNewFontsCopiesList(t *testing.T) {
	list := []Font{newBlockFont("A", "a"), newBlockFont("B", "b")}
	fonts := NewFonts(list...)
	list[1] = newBlockFont("C", "c")

	got, _ := fonts.Resolve('z')
	if got.(*blockFont).name != "B" {
		t.Fatalf("fallback font changed with caller's slice: %v", got)
	}
}

func TestLayoutGlyph(t *testing.T) {
	font := newBlockFont("A", "a")
	scale := Uniform(30)

	l := LayoutGlyph(scale, font, 'a')
	if !l.Visible || l.Width != 15 || l.Height != 24 {
		t.Fatalf("LayoutGlyph('a') = %+v, want visible 15x24", l)
	}
	if l.Glyph.Bounds.Min.Y != 0 {
		t.Fatalf("glyph not positioned at the ascent: %v", l.Glyph.Bounds)
	}

	if space := LayoutGlyph(scale, font, ' '); space.Visible || space.Width != 0 || space.Height != 0 {
		t.Fatalf("space should lay out empty, got %+v", space)
	}
}

func TestGlyphCoverage(t *testing.T) {
	mask := image.NewAlpha(image.Rect(0, 0, 4, 4))
	mask.SetAlpha(3, 2, color.Alpha{A: 0xff})
	mask.SetAlpha(1, 1, color.Alpha{A: 0x33})
	g := Glyph{Bounds: image.Rect(10, 10, 12, 12), Mask: mask, MaskOrigin: image.Pt(2, 1)}

	if got := g.Coverage(1, 1); got != 1 {
		t.Fatalf("Coverage(1,1) = %v, want 1", got)
	}
	if got := g.Coverage(0, 0); got != 0 {
		t.Fatalf("Coverage(0,0) = %v, want 0", got)
	}
	if got := (Glyph{}).Coverage(0, 0); got != 0 {
		t.Fatalf("empty glyph coverage = %v", got)
	}
	uniform := Glyph{Mask: image.NewUniform(color.Alpha{A: 0xff})}
	if got := uniform.Coverage(5, 5); got != 1 {
		t.Fatalf("uniform coverage = %v, want 1", got)
	}
	if got := (Glyph{Mask: mask}).Coverage(1, 1); fmt.Sprintf("%.1f", got) != "0.2" {
		t.Fatalf("partial coverage = %v, want 0.2", got)
	}
}

func TestMeasure(t *testing.T) {
	fonts := NewFonts(newBlockFont("A", "ab"))
	ctx := context.Background()
	scale := Uniform(30) // glyph width 15, spacing 2

	w, h, err := fonts.Measure(ctx, "ab", scale, PlainText)
	if err != nil {
		t.Fatal(err)
	}
	if w != 34 || h != 24 {
		t.Fatalf("Measure(ab) = %dx%d, want 34x24", w, h)
	}

	wa, _, _ := fonts.Measure(ctx, "a", scale, nil)
	wb, _, _ := fonts.Measure(ctx, "b", scale, nil)
	if w != wa+wb {
		t.Fatalf("width not additive: %d != %d + %d", w, wa, wb)
	}

	// a space contributes only the spacing
	ws, hs, _ := fonts.Measure(ctx, " ", scale, nil)
	if ws != 2 || hs != 0 {
		t.Fatalf("Measure(space) = %dx%d, want 2x0", ws, hs)
	}
}

func TestMeasureUsesResolverResult(t *testing.T) {
	fonts := NewFonts(newBlockFont("A", "abcdef"))
	calls := 0
	resolver := MeasureResolverFunc(func(_ context.Context, s string, _ Scale) (string, error) {
		calls++
		return s + s, nil
	})

	w, _, err := fonts.Measure(context.Background(), "abc", Uniform(30), resolver)
	if err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Fatalf("resolver called %d times, want 1", calls)
	}
	if w != 6*17 {
		t.Fatalf("width %d does not reflect the resolved text", w)
	}

	sentinel := errors.New("catalog offline")
	failing := MeasureResolverFunc(func(context.Context, string, Scale) (string, error) { return "", sentinel })
	if _, _, err := fonts.Measure(context.Background(), "abc", Uniform(30), failing); !errors.Is(err, sentinel) {
		t.Fatalf("resolver error not passed through: %v", err)
	}
}

func TestScaleHelpers(t *testing.T) {
	if got := Uniform(44.9).Spacing(); got != 2 {
		t.Fatalf("Spacing(44.9) = %d, want 2", got)
	}
	if got := (Scale{X: 10, Y: 20}).Mul(0.5); got != (Scale{X: 5, Y: 10}) {
		t.Fatalf("Mul = %+v", got)
	}
}
