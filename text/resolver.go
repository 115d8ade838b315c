package text

import (
	"context"

	"github.com/rook-computer/imageutil/raster"
)

// MeasureResolver rewrites text before it is measured, for example to
// localize it. It may block; it is called once per measurement.
type MeasureResolver interface {
	ResolveMeasure(ctx context.Context, s string, scale Scale) (string, error)
}

// RenderResolver turns text into the runs that are drawn. It may block; it
// is called once per draw. A render resolver and the measure resolver used
// to center the same text are independent, so measurement can use a cheaper
// plain-text rendition.
type RenderResolver[C raster.Channels] interface {
	ResolveRender(ctx context.Context, s string, scale Scale) ([]Run[C], error)
}

// MeasureResolverFunc adapts a function to MeasureResolver.
type MeasureResolverFunc func(ctx context.Context, s string, scale Scale) (string, error)

func (f MeasureResolverFunc) ResolveMeasure(ctx context.Context, s string, scale Scale) (string, error) {
	return f(ctx, s, scale)
}

// RenderResolverFunc adapts a function to RenderResolver.
type RenderResolverFunc[C raster.Channels] func(ctx context.Context, s string, scale Scale) ([]Run[C], error)

func (f RenderResolverFunc[C]) ResolveRender(ctx context.Context, s string, scale Scale) ([]Run[C], error) {
	return f(ctx, s, scale)
}

// PlainText measures text as given.
var PlainText MeasureResolver = MeasureResolverFunc(func(_ context.Context, s string, _ Scale) (string, error) {
	return s, nil
})

// SingleRun returns a resolver that draws text as given, in one text run.
func SingleRun[C raster.Channels]() RenderResolver[C] {
	return RenderResolverFunc[C](func(_ context.Context, s string, _ Scale) ([]Run[C], error) {
		return []Run[C]{TextRun[C](s)}, nil
	})
}
