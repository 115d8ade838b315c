// Package assets bundles the default fonts, messages and the preview page.
package assets

import (
	"embed"
	"io/fs"

	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/language"

	"github.com/rook-computer/imageutil/fontsource"
	"github.com/rook-computer/imageutil/text"
)

//go:embed web
var webFS embed.FS

// WebUI is an embedded filesystem rooted at internal/assets/web.
var WebUI fs.FS

func init() {
	// Embed paths include the leading directory; strip it for serving at '/'.
	sub, err := fs.Sub(webFS, "web")
	if err != nil {
		panic(err)
	}
	WebUI = sub
}

// DefaultFonts returns Go Regular, then Go Mono, then the 7x13 bitmap font
// as the font of last resort.
func DefaultFonts() (*text.Fonts, error) {
	regular, err := fontsource.ParseTrueType("goregular", goregular.TTF)
	if err != nil {
		return nil, err
	}
	mono, err := fontsource.ParseOpenType("gomono", gomono.TTF)
	if err != nil {
		return nil, err
	}
	return text.NewFonts(regular, mono, fontsource.Basic()), nil
}

// Message keys used by the demo card and the preview server.
const (
	MsgHello    = "hello"
	MsgSubtitle = "subtitle"
	MsgScan     = "scan"
)

// Messages are the built-in translations, English first as the fallback.
var Messages = map[language.Tag]map[string]string{
	language.English: {
		MsgHello:    "hello",
		MsgSubtitle: "Text and gradients in pure Go",
		MsgScan:     "Scan {qr:https://github.com/rook-computer/imageutil} for the source",
	},
	language.German: {
		MsgHello:    "hallo",
		MsgSubtitle: "Text und Verläufe in reinem Go",
		MsgScan:     "Quelltext: {qr:https://github.com/rook-computer/imageutil}",
	},
	language.French: {
		MsgHello:    "bonjour",
		MsgSubtitle: "Texte et dégradés en Go pur",
		MsgScan:     "Code source : {qr:https://github.com/rook-computer/imageutil}",
	},
}
