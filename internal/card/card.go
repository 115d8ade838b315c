// Package card composes the demo card: a gradient band with a localized
// title, a subtitle, and a line with an embedded QR code.
package card

import (
	"context"
	"fmt"
	"image"

	"golang.org/x/text/language"

	"github.com/rook-computer/imageutil/internal/assets"
	"github.com/rook-computer/imageutil/internal/config"
	"github.com/rook-computer/imageutil/layout"
	"github.com/rook-computer/imageutil/paint"
	"github.com/rook-computer/imageutil/raster"
	"github.com/rook-computer/imageutil/resolve"
	"github.com/rook-computer/imageutil/text"
)

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type Options struct {
	Width, Height int
	Language      language.Tag
	Engine        *text.Engine[[4]uint8]
	Catalog       *resolve.Catalog
	Logger        Logger
}

// Render draws the card. Text that does not fit its line is shrunk.
func Render(ctx context.Context, opts Options) (*raster.NRGBA, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("card size %dx%d is empty", opts.Width, opts.Height)
	}
	canvas := raster.NewNRGBA(opts.Width, opts.Height)
	for y := 0; y < opts.Height; y++ {
		for x := 0; x < opts.Width; x++ {
			canvas.SetPixel(x, y, config.Background)
		}
	}

	content := layout.Inset(canvas.Bounds(), opts.Height/20)
	band, rest := layout.SplitHorizontal(content, content.Dy()*3/5)

	g := paint.LinearGradient[[4]uint8]{
		StartColor: config.GradientFrom,
		EndColor:   config.GradientTo,
		Start:      band.Min,
		End:        band.Max,
	}
	if err := paint.FillLinearGradient[[4]uint8](canvas, g); err != nil {
		return nil, fmt.Errorf("gradient band: %w", err)
	}

	markup := &resolve.Markup[[4]uint8]{
		Translate: opts.Catalog.Localizer(opts.Language),
		Alloc:     raster.AllocNRGBA,
	}
	lines := []struct {
		key  string
		area image.Rectangle
		size int
	}{
		{assets.MsgHello, band, band.Dy() / 3},
		{assets.MsgSubtitle, image.Rect(rest.Min.X, rest.Min.Y, rest.Max.X, rest.Min.Y+rest.Dy()/2), rest.Dy() / 4},
		{assets.MsgScan, image.Rect(rest.Min.X, rest.Min.Y+rest.Dy()/2, rest.Max.X, rest.Max.Y), rest.Dy() / 4},
	}
	for _, l := range lines {
		box := text.Box{
			X:      l.area.Min.X,
			Y:      l.area.Min.Y + (l.area.Dy()-l.size)/2,
			Width:  l.area.Dx(),
			Shrink: true,
		}
		scale := text.Uniform(float32(l.size))
		if _, err := opts.Engine.DrawCentered(ctx, canvas, l.key, scale, config.Foreground, box, markup, markup); err != nil {
			return nil, fmt.Errorf("draw %s: %w", l.key, err)
		}
	}
	if opts.Logger != nil {
		opts.Logger.Infof("card", "rendered %dx%d card in %v", opts.Width, opts.Height, opts.Catalog.Match(opts.Language))
	}
	return canvas, nil
}
