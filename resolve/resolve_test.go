package resolve

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/text/language"

	"github.com/rook-computer/imageutil/fontsource"
	"github.com/rook-computer/imageutil/raster"
	"github.com/rook-computer/imageutil/text"
)

var red = [4]uint8{0xFF, 0x00, 0x00, 0xFF}

func newCatalog() *Catalog {
	return NewCatalog(language.English, map[language.Tag]map[string]string{
		language.English:  {"hello": "Hello", "scan": "Scan {qr:https://example.com} now"},
		language.German:   {"hello": "Hallo"},
		language.Japanese: {"hello": "こんにちは"},
	})
}

func TestCatalogLookup(t *testing.T) {
	c := newCatalog()
	tests := []struct {
		lang string
		key  string
		want string
		ok   bool
	}{
		{"en", "hello", "Hello", true},
		{"de", "hello", "Hallo", true},
		{"de-AT", "hello", "Hallo", true},
		{"ja-JP", "hello", "こんにちは", true},
		{"fr", "hello", "Hello", true},
		{"de", "scan", "Scan {qr:https://example.com} now", true},
		{"de", "missing", "", false},
	}
	for _, tt := range tests {
		got, ok := c.Lookup(language.MustParse(tt.lang), tt.key)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Lookup(%s, %s) = %q, %v; want %q, %v", tt.lang, tt.key, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCatalogMatch(t *testing.T) {
	c := newCatalog()
	if got := c.Match(language.MustParse("de-CH")); got != language.German {
		t.Fatalf("Match(de-CH) = %v, want de", got)
	}
	if got := c.Match(language.MustParse("fr")); got != language.English {
		t.Fatalf("Match(fr) = %v, want fallback en", got)
	}
}

func TestLocalizerKeepsUnknownText(t *testing.T) {
	l := newCatalog().Localizer(language.German)
	ctx := context.Background()

	got, err := l.ResolveMeasure(ctx, "hello", text.Uniform(10))
	if err != nil || got != "Hallo" {
		t.Fatalf("ResolveMeasure(hello) = %q, %v", got, err)
	}
	got, err = l.ResolveMeasure(ctx, "plain words", text.Uniform(10))
	if err != nil || got != "plain words" {
		t.Fatalf("ResolveMeasure(plain words) = %q, %v", got, err)
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []token
	}{
		{"", nil},
		{"plain", []token{{text: "plain"}}},
		{"Scan {qr:hi} now", []token{{text: "Scan "}, {text: "hi", kind: qrPrefix}, {text: " now"}}},
		{"{img:logo}", []token{{text: "logo", kind: imgPrefix}}},
		{"a{b}c", []token{{text: "a{b}c"}}},
		{"open {brace", []token{{text: "open {brace"}}},
		{"{x{img:logo}", []token{{text: "{x"}, {text: "logo", kind: imgPrefix}}},
	}
	for _, tt := range tests {
		got := tokenize(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("tokenize(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("tokenize(%q)[%d] = %v, want %v", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}

func newLogo() *raster.NRGBA {
	logo := raster.NewNRGBA(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			logo.SetPixel(x, y, red)
		}
	}
	return logo
}

func TestMarkupRuns(t *testing.T) {
	logo := newLogo()
	m := &Markup[[4]uint8]{
		Images: map[string]raster.Canvas[[4]uint8]{"logo": logo},
		QRSize: 64,
		Alloc:  raster.AllocNRGBA,
	}

	runs, err := m.ResolveRender(context.Background(), "{img:logo} go {qr:https://example.com}", text.Uniform(20))
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 3 {
		t.Fatalf("got %d runs, want 3", len(runs))
	}
	if runs[0].Image != raster.Canvas[[4]uint8](logo) {
		t.Fatal("first run is not the registered image")
	}
	if runs[1].IsImage() || runs[1].Text != " go " {
		t.Fatalf("second run = %+v, want text %q", runs[1], " go ")
	}
	qr := runs[2].Image
	if qr == nil || qr.Width() != 64 || qr.Height() != 64 {
		t.Fatalf("qr run = %v, want a 64x64 canvas", qr)
	}
	// QR codes have a dark finder pattern in the top-left corner.
	if got := qr.Pixel(0, 0); got != [4]uint8{0, 0, 0, 0xFF} {
		t.Fatalf("qr corner = %v, want black", got)
	}
}

func TestMarkupErrors(t *testing.T) {
	ctx := context.Background()

	m := &Markup[[4]uint8]{Alloc: raster.AllocNRGBA}
	if _, err := m.ResolveRender(ctx, "{img:nope}", text.Uniform(20)); !errors.Is(err, ErrUnknownImage) {
		t.Fatalf("expected ErrUnknownImage, got %v", err)
	}

	m = &Markup[[4]uint8]{}
	if _, err := m.ResolveRender(ctx, "{qr:x}", text.Uniform(20)); !errors.Is(err, ErrNoAllocator) {
		t.Fatalf("expected ErrNoAllocator, got %v", err)
	}

	sentinel := errors.New("catalog offline")
	m = &Markup[[4]uint8]{Translate: text.MeasureResolverFunc(func(context.Context, string, text.Scale) (string, error) {
		return "", sentinel
	})}
	if _, err := m.ResolveRender(ctx, "hello", text.Uniform(20)); !errors.Is(err, sentinel) {
		t.Fatalf("expected translate error, got %v", err)
	}
	if _, err := m.ResolveMeasure(ctx, "hello", text.Uniform(20)); !errors.Is(err, sentinel) {
		t.Fatalf("expected translate error from measure, got %v", err)
	}
}

func TestMarkupTranslatesBeforeParsing(t *testing.T) {
	ctx := context.Background()
	m := &Markup[[4]uint8]{
		Translate: newCatalog().Localizer(language.German),
		Alloc:     raster.AllocNRGBA,
	}

	measured, err := m.ResolveMeasure(ctx, "scan", text.Uniform(20))
	if err != nil {
		t.Fatal(err)
	}
	if measured != "Scan  now" {
		t.Fatalf("ResolveMeasure(scan) = %q, want tokens stripped", measured)
	}

	runs, err := m.ResolveRender(ctx, "scan", text.Uniform(20))
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 3 || !runs[1].IsImage() {
		t.Fatalf("translated message not split around its qr token: %+v", runs)
	}
}

func TestQRCodeEmptyPayload(t *testing.T) {
	img, err := QRCode("", 100)
	if img != nil || err != nil {
		t.Fatalf("QRCode(\"\") = %v, %v; want nil, nil", img, err)
	}
	img, err = QRCode("x", 0)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != defaultQRCodeSizePx {
		t.Fatalf("default size = %d, want %d", img.Bounds().Dx(), defaultQRCodeSizePx)
	}
}

func TestMarkupDrawsThroughEngine(t *testing.T) {
	e := text.NewEngine[[4]uint8](text.NewFonts(fontsource.Basic()))
	dst := raster.NewNRGBA(60, 20)
	m := &Markup[[4]uint8]{Images: map[string]raster.Canvas[[4]uint8]{"logo": newLogo()}}

	scale := text.Uniform(13)
	end, err := e.Draw(context.Background(), dst, "{img:logo}", scale, [4]uint8{0, 0, 0, 0xFF}, 0, 0, m)
	if err != nil {
		t.Fatal(err)
	}
	// 4x4 fits into 11x11, placed at 13/10 and advanced by 11 + 13/5
	if end != 11+2 {
		t.Fatalf("cursor = %d, want 13", end)
	}
	if got := dst.Pixel(1, 0); got != red {
		t.Fatalf("image pixel = %v, want red", got)
	}
	if got := dst.Pixel(12, 0); got == red {
		t.Fatal("image drawn past its fitted width")
	}
}
