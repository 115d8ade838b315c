package fontsource

import (
	"context"
	"sync"
	"testing"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/rook-computer/imageutil/text"
)

func mustTrueType(t *testing.T) *Font {
	t.Helper()
	f, err := ParseTrueType("goregular", goregular.TTF)
	if err != nil {
		t.Fatalf("ParseTrueType: %v", err)
	}
	return f
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := ParseTrueType("junk", []byte("not a font")); err == nil {
		t.Fatal("expected truetype parse error")
	}
	if _, err := ParseOpenType("junk", []byte("not a font")); err == nil {
		t.Fatal("expected opentype parse error")
	}
}

func TestHasGlyph(t *testing.T) {
	mono, err := ParseOpenType("gomono", gomono.TTF)
	if err != nil {
		t.Fatalf("ParseOpenType: %v", err)
	}
	fonts := []*Font{mustTrueType(t), mono, Basic()}
	for _, f := range fonts {
		if !f.HasGlyph('A') {
			t.Errorf("%s: expected glyph for 'A'", f)
		}
		if f.HasGlyph('あ') {
			t.Errorf("%s: unexpected glyph for 'あ'", f)
		}
	}
}

func TestTrueTypeGlyphSitsOnBaseline(t *testing.T) {
	f := mustTrueType(t)
	scale := text.Uniform(40)
	ascent := f.Ascent(scale)
	if ascent <= 0 || ascent >= 40 {
		t.Fatalf("ascent %v outside (0, 40)", ascent)
	}

	g, ok := f.Glyph('H', scale, ascent)
	if !ok {
		t.Fatal("no glyph for 'H'")
	}
	if g.Bounds.Min.Y < 0 || g.Bounds.Max.Y > int(ascent)+1 {
		t.Fatalf("'H' bounds %v not between line top and baseline %v", g.Bounds, ascent)
	}
	full := 0
	for y := 0; y < g.Bounds.Dy(); y++ {
		for x := 0; x < g.Bounds.Dx(); x++ {
			if g.Coverage(x, y) >= 0.99 {
				full++
			}
		}
	}
	if full == 0 {
		t.Fatal("'H' has no fully covered pixels")
	}

	if _, ok := f.Glyph(' ', scale, ascent); ok {
		t.Fatal("space should have no visible pixels")
	}
	if _, ok := f.Glyph('H', text.Scale{}, 0); ok {
		t.Fatal("zero scale should not rasterize")
	}
}

func TestHorizontalScaleStretches(t *testing.T) {
	f := mustTrueType(t)
	narrow, ok := f.Glyph('H', text.Scale{X: 40, Y: 40}, 30)
	if !ok {
		t.Fatal("no glyph")
	}
	wide, ok := f.Glyph('H', text.Scale{X: 80, Y: 40}, 30)
	if !ok {
		t.Fatal("no glyph")
	}
	if wide.Bounds.Dx() < 2*narrow.Bounds.Dx()-2 {
		t.Fatalf("wide glyph %v is not about twice as wide as %v", wide.Bounds, narrow.Bounds)
	}
	if wide.Bounds.Dy() != narrow.Bounds.Dy() {
		t.Fatalf("horizontal scale changed height: %v vs %v", wide.Bounds, narrow.Bounds)
	}
}

func TestBasicScalesBitmapCell(t *testing.T) {
	f := Basic()
	scale := text.Uniform(26)
	ascent := f.Ascent(scale)
	if ascent != 22 {
		t.Fatalf("ascent = %v, want 22", ascent)
	}
	// the 13px cell doubles on both axes
	l := text.LayoutGlyph(scale, f, 'a')
	wantWidth := 2 * basicfont.Face7x13.Width
	if !l.Visible || l.Width != wantWidth || l.Height != 26 {
		t.Fatalf("layout = %dx%d (visible %v), want %dx26", l.Width, l.Height, l.Visible, wantWidth)
	}
}

func TestBasicBlankGlyphsAreInvisible(t *testing.T) {
	f := Basic()
	scale := text.Uniform(26)
	for _, r := range []rune{' ', '\u00a0'} {
		if l := text.LayoutGlyph(scale, f, r); l.Visible || l.Width != 0 || l.Height != 0 {
			t.Fatalf("layout of %q = %dx%d (visible %v), want an empty cell", r, l.Width, l.Height, l.Visible)
		}
	}

	// a space only adds the spacing after it
	fonts := text.NewFonts(f)
	ctx := context.Background()
	spaced, _, err := fonts.Measure(ctx, "a b", scale, nil)
	if err != nil {
		t.Fatal(err)
	}
	packed, _, _ := fonts.Measure(ctx, "ab", scale, nil)
	if spaced != packed+scale.Spacing() {
		t.Fatalf("Measure(a b) = %d, want %d", spaced, packed+scale.Spacing())
	}
}

func TestFontsAreSafeToShare(t *testing.T) {
	f := mustTrueType(t)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(size float32) {
			defer wg.Done()
			for _, r := range "shared" {
				text.LayoutGlyph(text.Uniform(size), f, r)
			}
		}(float32(20 + i))
	}
	wg.Wait()
	if len(f.faces) > maxCachedFaces {
		t.Fatalf("face cache grew to %d", len(f.faces))
	}
}

func TestFallbackAcrossParsers(t *testing.T) {
	regular := mustTrueType(t)
	basic := Basic()
	fonts := text.NewFonts(regular, basic)

	got, err := fonts.Resolve('あ')
	if err != nil {
		t.Fatal(err)
	}
	if got != text.Font(basic) {
		t.Fatalf("expected the last font for an unsupported rune, got %v", got)
	}

	ctx := context.Background()
	w1, h1, err := fonts.Measure(ctx, "Hi", text.Uniform(30), nil)
	if err != nil {
		t.Fatal(err)
	}
	w2, _, _ := fonts.Measure(ctx, "H", text.Uniform(30), nil)
	w3, _, _ := fonts.Measure(ctx, "i", text.Uniform(30), nil)
	if w1 <= 0 || h1 <= 0 {
		t.Fatalf("Measure(Hi) = %dx%d", w1, h1)
	}
	if w1 != w2+w3 {
		t.Fatalf("width not additive: %d != %d + %d", w1, w2, w3)
	}
}
