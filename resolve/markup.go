package resolve

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rook-computer/imageutil/raster"
	"github.com/rook-computer/imageutil/text"
)

var (
	// ErrUnknownImage is returned for {img:name} tokens naming no registered image.
	ErrUnknownImage = errors.New("resolve: unknown image")
	// ErrNoAllocator is returned when a {qr:...} token needs a canvas and Markup.Alloc is nil.
	ErrNoAllocator = errors.New("resolve: no canvas allocator")
)

const (
	qrPrefix  = "qr:"
	imgPrefix = "img:"
)

// Markup splits text into runs at embedded tokens:
//
//	{qr:payload}  a QR code encoding payload
//	{img:name}    the image registered under name
//
// Braces that do not form a known token are kept as text. When Translate is
// set, the whole string is passed through it before tokens are parsed, so a
// translated message may carry its own tokens.
type Markup[C raster.Channels] struct {
	Images    map[string]raster.Canvas[C]
	Translate text.MeasureResolver
	// QRSize is the pixel size QR codes are generated at. Zero uses the
	// vertical scale; the engine fits images to the line either way.
	QRSize int
	Alloc  raster.Allocator[C]
}

var (
	_ text.RenderResolver[[4]uint8] = (*Markup[[4]uint8])(nil)
	_ text.MeasureResolver          = (*Markup[[4]uint8])(nil)
)

type token struct {
	text string
	kind string // "", qrPrefix or imgPrefix
}

// ResolveRender returns text and image runs in order. Empty text runs are
// dropped.
func (m *Markup[C]) ResolveRender(ctx context.Context, s string, scale text.Scale) ([]text.Run[C], error) {
	s, err := m.translate(ctx, s, scale)
	if err != nil {
		return nil, err
	}

	var runs []text.Run[C]
	for _, tok := range tokenize(s) {
		switch tok.kind {
		case qrPrefix:
			img, err := m.qrCode(tok.text, scale)
			if err != nil {
				return nil, err
			}
			runs = append(runs, text.ImageRun[C](img))
		case imgPrefix:
			img, ok := m.Images[tok.text]
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownImage, tok.text)
			}
			runs = append(runs, text.ImageRun[C](img))
		default:
			if tok.text != "" {
				runs = append(runs, text.TextRun[C](tok.text))
			}
		}
	}
	return runs, nil
}

// ResolveMeasure returns the text with all tokens removed.
func (m *Markup[C]) ResolveMeasure(ctx context.Context, s string, scale text.Scale) (string, error) {
	s, err := m.translate(ctx, s, scale)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, tok := range tokenize(s) {
		if tok.kind == "" {
			b.WriteString(tok.text)
		}
	}
	return b.String(), nil
}

func (m *Markup[C]) translate(ctx context.Context, s string, scale text.Scale) (string, error) {
	if m.Translate == nil {
		return s, nil
	}
	return m.Translate.ResolveMeasure(ctx, s, scale)
}

func (m *Markup[C]) qrCode(payload string, scale text.Scale) (raster.Canvas[C], error) {
	if m.Alloc == nil {
		return nil, ErrNoAllocator
	}
	size := m.QRSize
	if size <= 0 {
		size = int(scale.Y)
	}
	img, err := QRCode(payload, size)
	if err != nil {
		return nil, fmt.Errorf("qr code for %q: %w", payload, err)
	}
	if img == nil {
		return m.Alloc(0, 0), nil
	}
	return m.Alloc.From(img), nil
}

// tokenize splits s into literal text and {qr:...} / {img:...} tokens.
// Adjacent literal pieces are merged.
func tokenize(s string) []token {
	var out []token
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			out = append(out, token{text: lit.String()})
			lit.Reset()
		}
	}

	for len(s) > 0 {
		open := strings.IndexByte(s, '{')
		if open < 0 {
			lit.WriteString(s)
			break
		}
		lit.WriteString(s[:open])
		s = s[open:]

		end := strings.IndexByte(s, '}')
		if end < 0 {
			lit.WriteString(s)
			break
		}
		body := s[1:end]
		switch {
		case strings.HasPrefix(body, qrPrefix):
			flush()
			out = append(out, token{text: body[len(qrPrefix):], kind: qrPrefix})
		case strings.HasPrefix(body, imgPrefix):
			flush()
			out = append(out, token{text: body[len(imgPrefix):], kind: imgPrefix})
		default:
			// not a token: keep the brace and rescan after it
			lit.WriteByte('{')
			s = s[1:]
			continue
		}
		s = s[end+1:]
	}
	flush()
	return out
}
