package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"image/png"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/text/language"

	"github.com/rook-computer/imageutil/internal/card"
	"github.com/rook-computer/imageutil/internal/config"
	"github.com/rook-computer/imageutil/internal/export"
	"github.com/rook-computer/imageutil/paint"
	"github.com/rook-computer/imageutil/raster"
	"github.com/rook-computer/imageutil/resolve"
	"github.com/rook-computer/imageutil/text"
)

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type languagesResponse struct {
	Default   string   `json:"default"`
	Languages []string `json:"languages"`
}

const (
	defaultGradientWidth  = 640
	defaultGradientHeight = 360
	defaultCardWidth      = 960
	defaultCardHeight     = 540
	defaultTextWidth      = 640
	defaultTextSize       = 60
	maxTextSize           = 1000
)

func apiV1Router(deps APIV1Deps) http.Handler {
	deps = deps.withDefaults()
	mux := http.NewServeMux()
	mux.HandleFunc("/gradient", func(w http.ResponseWriter, r *http.Request) { handleGradient(w, r, deps) })
	mux.HandleFunc("/text", func(w http.ResponseWriter, r *http.Request) { handleText(w, r, deps) })
	mux.HandleFunc("/card", func(w http.ResponseWriter, r *http.Request) { handleCard(w, r, deps) })
	mux.HandleFunc("/languages", func(w http.ResponseWriter, r *http.Request) { handleLanguages(w, r, deps) })
	return mux
}

// handleGradient renders GET /gradient?w=&h=&from=&to=[&x0=&y0=&x1=&y1=] as PNG.
// The region defaults to the whole image.
func handleGradient(w http.ResponseWriter, r *http.Request, deps APIV1Deps) {
	if r.Method != http.MethodGet {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	q := r.URL.Query()

	width, err := intParam(q, "w", defaultGradientWidth, 1, deps.MaxSide)
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	height, err := intParam(q, "h", defaultGradientHeight, 1, deps.MaxSide)
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	from, err := colorParam(q, "from", config.GradientFrom)
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	to, err := colorParam(q, "to", config.GradientTo)
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	g := paint.LinearGradient[[4]uint8]{StartColor: from, EndColor: to}
	coords := []struct {
		name string
		dst  *int
		def  int
	}{
		{"x0", &g.Start.X, 0},
		{"y0", &g.Start.Y, 0},
		{"x1", &g.End.X, width},
		{"y1", &g.End.Y, height},
	}
	for _, c := range coords {
		v, err := intParam(q, c.name, c.def, -deps.MaxSide, 2*deps.MaxSide)
		if err != nil {
			writeAPIError(w, http.StatusBadRequest, "bad_request", err.Error())
			return
		}
		*c.dst = v
	}

	canvas := raster.NewNRGBA(width, height)
	if err := paint.FillLinearGradient[[4]uint8](canvas, g); err != nil {
		if errors.Is(err, paint.ErrGeometry) {
			writeAPIError(w, http.StatusBadRequest, "bad_geometry", err.Error())
			return
		}
		deps.Logger.Errorf("web", "gradient: %v", err)
		writeAPIError(w, http.StatusInternalServerError, "render_failed", err.Error())
		return
	}
	writePNG(w, canvas, deps.Logger)
}

// handleText renders GET /text?text=&size=&lang=&w=&h=[&fg=&bg=] as PNG. The
// text may be a message key and may carry {qr:...} or {img:name} tokens. It
// is centered horizontally and shrunk to fit the width.
func handleText(w http.ResponseWriter, r *http.Request, deps APIV1Deps) {
	if r.Method != http.MethodGet {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	q := r.URL.Query()

	s := q.Get("text")
	if s == "" {
		writeAPIError(w, http.StatusBadRequest, "bad_request", "text is required")
		return
	}
	size, err := intParam(q, "size", defaultTextSize, 1, maxTextSize)
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	width, err := intParam(q, "w", defaultTextWidth, 1, deps.MaxSide)
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	height, err := intParam(q, "h", min(2*size, deps.MaxSide), 1, deps.MaxSide)
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	fg, err := colorParam(q, "fg", config.Foreground)
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	bg, err := colorParam(q, "bg", config.Background)
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	lang := deps.Language
	if raw := q.Get("lang"); raw != "" {
		lang, err = language.Parse(raw)
		if err != nil {
			writeAPIError(w, http.StatusBadRequest, "bad_request", fmt.Sprintf("lang %q: %v", raw, err))
			return
		}
	}

	canvas := raster.NewNRGBA(width, height)
	fill(canvas, bg)

	markup := &resolve.Markup[[4]uint8]{
		Images:    deps.Images,
		Translate: deps.Catalog.Localizer(lang),
		Alloc:     raster.AllocNRGBA,
	}
	scale := text.Uniform(float32(size))
	box := text.Box{X: 0, Y: (height - size) / 2, Width: width, Shrink: true}
	if _, err := deps.Engine.DrawCentered(r.Context(), canvas, s, scale, fg, box, markup, markup); err != nil {
		if errors.Is(err, resolve.ErrUnknownImage) {
			writeAPIError(w, http.StatusBadRequest, "unknown_image", err.Error())
			return
		}
		deps.Logger.Errorf("web", "text %q: %v", s, err)
		writeAPIError(w, http.StatusInternalServerError, "render_failed", err.Error())
		return
	}
	writePNG(w, canvas, deps.Logger)
}

// handleCard renders GET /card?w=&h=&lang=&format=png|pdf.
func handleCard(w http.ResponseWriter, r *http.Request, deps APIV1Deps) {
	if r.Method != http.MethodGet {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	q := r.URL.Query()

	width, err := intParam(q, "w", defaultCardWidth, 1, deps.MaxSide)
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	height, err := intParam(q, "h", defaultCardHeight, 1, deps.MaxSide)
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	lang := deps.Language
	if raw := q.Get("lang"); raw != "" {
		lang, err = language.Parse(raw)
		if err != nil {
			writeAPIError(w, http.StatusBadRequest, "bad_request", fmt.Sprintf("lang %q: %v", raw, err))
			return
		}
	}
	format := q.Get("format")
	if format == "" {
		format = "png"
	}
	if format != "png" && format != "pdf" {
		writeAPIError(w, http.StatusBadRequest, "bad_request", fmt.Sprintf("format must be png or pdf (got %q)", format))
		return
	}

	c, err := card.Render(r.Context(), card.Options{
		Width:    width,
		Height:   height,
		Language: lang,
		Engine:   deps.Engine,
		Catalog:  deps.Catalog,
		Logger:   deps.Logger,
	})
	if err != nil {
		deps.Logger.Errorf("web", "card: %v", err)
		writeAPIError(w, http.StatusInternalServerError, "render_failed", err.Error())
		return
	}
	if format == "png" {
		writePNG(w, c, deps.Logger)
		return
	}

	var buf bytes.Buffer
	meta := export.Meta{Title: "imageutil card", Keywords: []string{lang.String()}, Creator: "imageutil"}
	if err := export.PDF(&buf, c, export.A4LandscapeWidthMM, meta); err != nil {
		deps.Logger.Errorf("web", "card pdf: %v", err)
		writeAPIError(w, http.StatusInternalServerError, "encode_failed", err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `inline; filename="card.pdf"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func handleLanguages(w http.ResponseWriter, r *http.Request, deps APIV1Deps) {
	if r.Method != http.MethodGet {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	resp := languagesResponse{Default: deps.Catalog.Match(deps.Language).String()}
	for _, tag := range deps.Catalog.Languages() {
		resp.Languages = append(resp.Languages, tag.String())
	}
	writeJSON(w, http.StatusOK, resp)
}

func intParam(q url.Values, name string, def, lo, hi int) (int, error) {
	raw := q.Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer (got %q)", errBadParam, name, raw)
	}
	if v < lo || v > hi {
		return 0, fmt.Errorf("%w: %s must be between %d and %d (got %d)", errBadParam, name, lo, hi, v)
	}
	return v, nil
}

func colorParam(q url.Values, name string, def [4]uint8) ([4]uint8, error) {
	raw := q.Get(name)
	if raw == "" {
		return def, nil
	}
	c, err := config.ParseHexColor(raw)
	if err != nil {
		return def, fmt.Errorf("%w: %s: %v", errBadParam, name, err)
	}
	return c, nil
}

func fill(c raster.Canvas[[4]uint8], px [4]uint8) {
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			c.SetPixel(x, y, px)
		}
	}
}

// writePNG encodes before writing so encoding errors can still produce a 500.
func writePNG(w http.ResponseWriter, c *raster.NRGBA, logger Logger) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, c.NRGBA); err != nil {
		logger.Errorf("web", "png encode: %v", err)
		writeAPIError(w, http.StatusInternalServerError, "encode_failed", err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeAPIError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, apiError{Error: code, Message: message})
}
