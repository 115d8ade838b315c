// Package export writes rendered canvases to document formats.
package export

import (
	"errors"
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
)

// ErrEmptyImage is returned for images with no pixels.
var ErrEmptyImage = errors.New("export: empty image")

// A4LandscapeWidthMM is the width of a landscape A4 page.
const A4LandscapeWidthMM = 297

// Meta is written to the PDF information dictionary.
type Meta struct {
	Title    string
	Subject  string
	Keywords []string
	Author   string
	Creator  string
}

// PDF writes img as a single page widthMM wide; the page height follows the
// image's aspect ratio.
func PDF(w io.Writer, img image.Image, widthMM float64, meta Meta) error {
	b := img.Bounds()
	if b.Empty() {
		return ErrEmptyImage
	}
	if widthMM <= 0 {
		return fmt.Errorf("export: page width %vmm must be positive", widthMM)
	}
	dpmm := float64(b.Dx()) / widthMM
	heightMM := float64(b.Dy()) / dpmm

	writer := pdf.New(w, widthMM, heightMM, nil)
	writer.SetInfo(meta.Title, meta.Subject, strings.Join(meta.Keywords, ", "), meta.Author, meta.Creator)

	c := canvas.New(widthMM, heightMM)
	ctx := canvas.NewContext(c)
	// top-left origin, like the raster
	ctx.SetCoordSystem(canvas.CartesianIV)
	ctx.DrawImage(0, 0, img, canvas.DPMM(dpmm))
	c.RenderTo(writer)

	if err := writer.Close(); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
