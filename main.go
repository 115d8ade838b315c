// Command imageutil renders the demo card to a PNG file or the Linux
// framebuffer.
package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/text/language"

	"github.com/rook-computer/imageutil/internal/assets"
	"github.com/rook-computer/imageutil/internal/card"
	"github.com/rook-computer/imageutil/internal/config"
	"github.com/rook-computer/imageutil/internal/display"
	"github.com/rook-computer/imageutil/internal/export"
	"github.com/rook-computer/imageutil/internal/logging"
	"github.com/rook-computer/imageutil/raster"
	"github.com/rook-computer/imageutil/resolve"
	"github.com/rook-computer/imageutil/text"
)

func main() {
	cfg, err := config.FromEnv("")
	if err != nil {
		fmt.Println("config error:", err)
		os.Exit(2)
	}

	// Flags
	out := flag.String("out", "card.png", "write the card as PNG to this file; empty to skip")
	pdfOut := flag.String("pdf", "", "also write the card as a single-page PDF to this file")
	useFB := flag.Bool("fb", false, "show the card on "+display.DefaultDevice+" until F4 or interrupt")
	lang := flag.String("lang", cfg.Language.String(), "message language; also configurable via "+config.EnvLanguage)
	width := flag.Int("width", config.CanvasWidth, "card width in pixels")
	height := flag.Int("height", config.CanvasHeight, "card height in pixels")
	debug := flag.Bool("debug", false, "enable debug logging to ./imageutil-debug.log")
	stdioLog := flag.String("stdio-log", cfg.StdioLog, "redirect stdout+stderr (including panics) to this file; also configurable via "+config.EnvStdioLog)
	flag.Parse()

	// Best-effort: redirect all stdout/stderr output (including panic stack traces)
	// to a file so crashes are diagnosable even when the console is left in graphics mode.
	if err := logging.RedirectStdIO(*stdioLog); err != nil {
		fmt.Println("stdio log redirect error:", err)
	}

	var logger logging.Logger = logging.NoopLogger{}
	if *debug {
		l, f, err := logging.OpenDebugLog("./imageutil-debug.log")
		if err == nil {
			defer f.Close()
			logger = l
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	tag, err := language.Parse(*lang)
	if err != nil {
		fmt.Printf("invalid -lang %q: %v\n", *lang, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	targets := outputs{png: *out, pdf: *pdfOut, framebuffer: *useFB}
	if err := run(ctx, logger, tag, *width, *height, targets); err != nil {
		logger.Errorf("main", "%v", err)
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

type outputs struct {
	png, pdf    string
	framebuffer bool
}

func run(ctx context.Context, logger logging.Logger, lang language.Tag, width, height int, out outputs) error {
	fonts, err := assets.DefaultFonts()
	if err != nil {
		return fmt.Errorf("load fonts: %w", err)
	}
	fonts.Logger = logger
	engine := text.NewEngine[[4]uint8](fonts)
	engine.Logger = logger

	c, err := card.Render(ctx, card.Options{
		Width:    width,
		Height:   height,
		Language: lang,
		Engine:   engine,
		Catalog:  resolve.NewCatalog(config.DefaultLanguage, assets.Messages),
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	if out.png != "" {
		if err := writePNG(out.png, c); err != nil {
			return err
		}
		fmt.Println("wrote", out.png)
	}
	if out.pdf != "" {
		if err := writePDF(out.pdf, c, lang); err != nil {
			return err
		}
		fmt.Println("wrote", out.pdf)
	}
	if out.framebuffer {
		return show(ctx, logger, c)
	}
	return nil
}

func writePNG(path string, c *raster.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, c.NRGBA); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

func writePDF(path string, c *raster.NRGBA, lang language.Tag) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	meta := export.Meta{Title: "imageutil card", Keywords: []string{lang.String()}, Creator: "imageutil"}
	if err := export.PDF(f, c, export.A4LandscapeWidthMM, meta); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// show keeps the card on the framebuffer until F4 is pressed or ctx ends.
func show(ctx context.Context, logger logging.Logger, c *raster.NRGBA) error {
	fb, err := display.OpenFramebuffer(display.DefaultDevice, logger)
	if err != nil {
		return fmt.Errorf("open framebuffer: %w", err)
	}
	defer fb.Close()

	restore := display.EnterGraphicsMode(logger)
	defer restore()

	if err := fb.Show(c); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	display.WatchExitKey(ctx, logger, display.KeyF4, cancel)
	<-ctx.Done()
	return nil
}
