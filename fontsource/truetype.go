package fontsource

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// ParseTrueType parses a TrueType font with the freetype rasterizer.
func ParseTrueType(name string, data []byte) (*Font, error) {
	tt, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse truetype %s: %w", name, err)
	}
	newFace := func(size float64) (font.Face, error) {
		return truetype.NewFace(tt, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingNone}), nil
	}
	return newFont(name, func(r rune) bool { return tt.Index(r) != 0 }, newFace, false)
}
