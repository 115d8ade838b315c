package fontsource

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// ParseOpenType parses an OpenType or TrueType font with x/image/font/opentype.
func ParseOpenType(name string, data []byte) (*Font, error) {
	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse opentype %s: %w", name, err)
	}
	// sfnt.Font is safe for concurrent use as long as each caller has its own Buffer.
	hasGlyph := func(r rune) bool {
		var buf sfnt.Buffer
		idx, err := otf.GlyphIndex(&buf, r)
		return err == nil && idx != 0
	}
	newFace := func(size float64) (font.Face, error) {
		face, err := opentype.NewFace(otf, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingNone})
		if err != nil {
			return nil, fmt.Errorf("opentype face %s at %.2fpx: %w", name, size, err)
		}
		return face, nil
	}
	return newFont(name, hasGlyph, newFace, false)
}
