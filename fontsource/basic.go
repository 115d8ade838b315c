package fontsource

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Basic returns the 7x13 basicfont face as a font. It covers ASCII and
// Latin-1 and needs no font data, which makes it a usable last resort.
func Basic() *Font {
	face := basicfont.Face7x13
	hasGlyph := func(r rune) bool {
		for _, rng := range face.Ranges {
			if rng.Low <= r && r < rng.High {
				return true
			}
		}
		return false
	}
	newFace := func(float64) (font.Face, error) { return face, nil }
	f, err := newFont("basicfont 7x13", hasGlyph, newFace, true)
	if err != nil {
		// Face7x13 always has metrics.
		panic(err)
	}
	return f
}
