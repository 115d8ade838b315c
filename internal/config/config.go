// Package config holds the drawing defaults and the environment settings
// shared by the imageutil binaries.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

const (
	EnvListenAddr = "IMAGEUTIL_LISTEN"
	EnvDevMode    = "IMAGEUTIL_DEV"
	EnvLanguage   = "IMAGEUTIL_LANG"
	EnvStdioLog   = "IMAGEUTIL_STDIO_LOG"
)

// Drawing defaults, as non-premultiplied RGBA.
var (
	Foreground = [4]uint8{0x90, 0x00, 0xFF, 0xFF} // #9000ff
	Background = [4]uint8{0xFF, 0xDC, 0x00, 0xFF} // #ffdc00

	GradientFrom = [4]uint8{0x00, 0x00, 0xFF, 0xFF} // #0000ff
	GradientTo   = [4]uint8{0xFF, 0xFF, 0xFF, 0xFF} // #ffffff

	// Logical canvas size; scaled to the framebuffer.
	CanvasWidth  = 1920
	CanvasHeight = 1080

	DefaultLanguage = language.English
)

// Config contains the settings read from the environment.
//
// The intended listen defaults differ per binary:
// - card renderer: none, it does not serve
// - preview:       :8080
type Config struct {
	ListenAddr string
	DevMode    bool
	Language   language.Tag
	StdioLog   string
}

func FromEnv(defaultListenAddr string) (Config, error) {
	listenAddr := os.Getenv(EnvListenAddr)
	if listenAddr == "" {
		listenAddr = defaultListenAddr
	}

	devMode := false
	if raw := os.Getenv(EnvDevMode); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be a boolean (got %q): %w", EnvDevMode, raw, err)
		}
		devMode = parsed
	}

	lang := DefaultLanguage
	if raw := os.Getenv(EnvLanguage); raw != "" {
		parsed, err := language.Parse(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be a BCP 47 language tag (got %q): %w", EnvLanguage, raw, err)
		}
		lang = parsed
	}

	return Config{
		ListenAddr: listenAddr,
		DevMode:    devMode,
		Language:   lang,
		StdioLog:   os.Getenv(EnvStdioLog),
	}, nil
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa"; the leading '#' is optional.
func ParseHexColor(s string) ([4]uint8, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return [4]uint8{}, fmt.Errorf("color %q: want 6 or 8 hex digits", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return [4]uint8{}, fmt.Errorf("color %q: %w", s, err)
	}
	return [4]uint8{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}
