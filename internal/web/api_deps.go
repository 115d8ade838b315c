package web

import (
	"errors"

	"golang.org/x/text/language"

	"github.com/rook-computer/imageutil/internal/config"
	"github.com/rook-computer/imageutil/raster"
	"github.com/rook-computer/imageutil/resolve"
	"github.com/rook-computer/imageutil/text"
)

const (
	defaultMaxSide = 4096
)

// APIV1Deps are the collaborators the API renders with.
type APIV1Deps struct {
	Engine  *text.Engine[[4]uint8]
	Catalog *resolve.Catalog
	// Images are available to {img:name} tokens in rendered text.
	Images map[string]raster.Canvas[[4]uint8]
	// Language is used when a request names none.
	Language language.Tag
	// MaxSide bounds the width and height of rendered images.
	MaxSide int
	Logger  Logger
}

func (d APIV1Deps) withDefaults() APIV1Deps {
	out := d
	if out.Engine == nil {
		out.Engine = text.NewEngine[[4]uint8](text.NewFonts())
	}
	if out.Catalog == nil {
		out.Catalog = resolve.NewCatalog(config.DefaultLanguage, nil)
	}
	if out.Language == language.Und {
		out.Language = config.DefaultLanguage
	}
	if out.MaxSide <= 0 {
		out.MaxSide = defaultMaxSide
	}
	if out.Logger == nil {
		out.Logger = noopLogger{}
	}
	return out
}

var errBadParam = errors.New("bad parameter")
