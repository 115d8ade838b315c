// Package fontsource provides text.Font implementations backed by
// golang.org/x/image font faces: TrueType fonts parsed with
// github.com/golang/freetype, OpenType fonts parsed with
// golang.org/x/image/font/opentype, and the basicfont bitmap face.
package fontsource

import (
	"errors"
	"image"
	"image/draw"
	"math"
	"sync"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/rook-computer/imageutil/text"
)

// ErrNoMetrics is returned for fonts whose ascent and descent add up to nothing.
var ErrNoMetrics = errors.New("fontsource: font has no vertical metrics")

const (
	probeSize      = 100
	maxCachedFaces = 16
)

// Font is a text.Font drawing from x/image faces.
//
// Scalable fonts get a face per size, sized so that ascent plus descent
// equals the vertical scale; a differing horizontal scale stretches the
// rasterized glyph. Fixed-size fonts are stretched on both axes.
// Faces are not safe for concurrent use, so every face access holds mu and
// masks are copied out before it is released.
type Font struct {
	name      string
	hasGlyph  func(r rune) bool
	newFace   func(size float64) (font.Face, error)
	fixedSize bool
	// face size per pixel of ascent plus descent
	sizePerPixel float64

	mu    sync.Mutex
	faces map[fixed.Int26_6]font.Face
}

var _ text.Font = (*Font)(nil)

func newFont(name string, hasGlyph func(rune) bool, newFace func(float64) (font.Face, error), fixedSize bool) (*Font, error) {
	f := &Font{
		name:      name,
		hasGlyph:  hasGlyph,
		newFace:   newFace,
		fixedSize: fixedSize,
		faces:     map[fixed.Int26_6]font.Face{},
	}
	face, err := f.faceLocked(probeSize)
	if err != nil {
		return nil, err
	}
	h := lineHeight(face.Metrics())
	if h <= 0 {
		return nil, ErrNoMetrics
	}
	f.sizePerPixel = probeSize / h
	return f, nil
}

// Name returns the name the font was created with.
func (f *Font) Name() string   { return f.name }
func (f *Font) String() string { return f.name }

// HasGlyph reports whether the font maps r to a real glyph.
func (f *Font) HasGlyph(r rune) bool { return f.hasGlyph(r) }

// Ascent returns the ascent in pixels at scale.
func (f *Font) Ascent(scale text.Scale) float32 {
	f.mu.Lock()
	defer f.mu.Unlock()

	face, err := f.faceLocked(f.size(scale))
	if err != nil {
		return 0
	}
	m := face.Metrics()
	ascent := float64(m.Ascent) / 64
	if f.fixedSize {
		ascent *= float64(scale.Y) / lineHeight(m)
	}
	return float32(ascent)
}

// Glyph rasterizes r with its origin at (0, baseline). Glyphs without inked
// pixels, such as a bitmap font's space cell, are reported as missing.
func (f *Font) Glyph(r rune, scale text.Scale, baseline float32) (text.Glyph, bool) {
	if scale.X <= 0 || scale.Y <= 0 {
		return text.Glyph{}, false
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	face, err := f.faceLocked(f.size(scale))
	if err != nil {
		return text.Glyph{}, false
	}

	var dot fixed.Point26_6
	sx, sy := float64(scale.X)/float64(scale.Y), 1.0
	if f.fixedSize {
		h := lineHeight(face.Metrics())
		sx, sy = float64(scale.X)/h, float64(scale.Y)/h
	} else {
		dot.Y = fixed.Int26_6(math.Round(float64(baseline) * 64))
	}

	dr, mask, maskp, _, ok := face.Glyph(dot, r)
	if !ok || dr.Empty() {
		return text.Glyph{}, false
	}
	alpha := image.NewAlpha(image.Rect(0, 0, dr.Dx(), dr.Dy()))
	draw.Draw(alpha, alpha.Bounds(), mask, maskp, draw.Src)
	if blank(alpha) {
		return text.Glyph{}, false
	}

	bounds := dr
	if sx != 1 || sy != 1 {
		bounds, alpha = stretch(dr, alpha, sx, sy)
	}
	if f.fixedSize {
		bounds = bounds.Add(image.Pt(0, int(math.Round(float64(baseline)))))
	}
	return text.Glyph{Bounds: bounds, Mask: alpha}, true
}

func blank(m *image.Alpha) bool {
	for _, a := range m.Pix {
		if a != 0 {
			return false
		}
	}
	return true
}

func (f *Font) size(scale text.Scale) float64 {
	if f.fixedSize {
		return probeSize
	}
	return float64(scale.Y) * f.sizePerPixel
}

func (f *Font) faceLocked(size float64) (font.Face, error) {
	key := fixed.Int26_6(math.Round(size * 64))
	if face, ok := f.faces[key]; ok {
		return face, nil
	}
	if len(f.faces) >= maxCachedFaces {
		for k, face := range f.faces {
			_ = face.Close()
			delete(f.faces, k)
		}
	}
	face, err := f.newFace(float64(key) / 64)
	if err != nil {
		return nil, err
	}
	f.faces[key] = face
	return face, nil
}

func lineHeight(m font.Metrics) float64 {
	return float64(m.Ascent+m.Descent) / 64
}

// stretch resamples mask by (sx, sy) and moves its bounds accordingly.
func stretch(dr image.Rectangle, mask *image.Alpha, sx, sy float64) (image.Rectangle, *image.Alpha) {
	minX := int(math.Floor(float64(dr.Min.X) * sx))
	minY := int(math.Floor(float64(dr.Min.Y) * sy))
	w := max(1, int(math.Round(float64(dr.Dx())*sx)))
	h := max(1, int(math.Round(float64(dr.Dy())*sy)))
	out := image.NewAlpha(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(out, out.Bounds(), mask, mask.Bounds(), xdraw.Src, nil)
	return image.Rect(minX, minY, minX+w, minY+h), out
}
